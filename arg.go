package fastfmt

import (
	"fmt"
	"math"
	"strconv"
	"unsafe"
)

// Kind identifies the category of an [Arg].
type Kind uint8

const (
	KindNil Kind = iota
	KindString
	KindBytes
	KindRunes
	KindUTF16
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
)

var kindNames = [...]string{
	KindNil:     "nil",
	KindString:  "str",
	KindBytes:   "bytes",
	KindRunes:   "wstr",
	KindUTF16:   "utf16",
	KindInt8:    "i8",
	KindInt16:   "i16",
	KindInt32:   "i32",
	KindInt64:   "i64",
	KindUint8:   "u8",
	KindUint16:  "u16",
	KindUint32:  "u32",
	KindUint64:  "u64",
	KindFloat32: "f32",
	KindFloat64: "f64",
}

// String returns the short kind name used by [ParseKind].
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Signed reports whether k is a signed integer kind.
func (k Kind) Signed() bool { return k >= KindInt8 && k <= KindInt64 }

// Unsigned reports whether k is an unsigned integer kind.
func (k Kind) Unsigned() bool { return k >= KindUint8 && k <= KindUint64 }

// Float reports whether k is a floating point kind.
func (k Kind) Float() bool { return k == KindFloat32 || k == KindFloat64 }

// Kinds returns every argument kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// ParseKind parses a short kind name such as "u8", "i64" or "wstr".
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
}

// Arg is one formatting argument: a tagged value over the closed set of
// supported types. Numbers are stored inline; text is referenced in place
// and never copied. The zero Arg is [Nil].
//
// An Arg built from a slice or string must not outlive the data it refers to
// being modified; it is meant to be built at the call site.
type Arg struct {
	num  uint64         // integer bits, float bits, or text length
	ptr  unsafe.Pointer // text data; nil for numbers and null text
	kind Kind
}

// Kind returns the category of a.
func (a Arg) Kind() Kind { return a.kind }

// IsNil reports whether a renders as the null literal.
func (a Arg) IsNil() bool {
	switch a.kind {
	case KindNil:
		return true
	case KindBytes, KindRunes, KindUTF16:
		return a.ptr == nil
	}
	return false
}

// Nil returns the null argument.
func Nil() Arg { return Arg{} }

// String returns a narrow text argument.
func String(s string) Arg {
	return Arg{num: uint64(len(s)), ptr: unsafe.Pointer(unsafe.StringData(s)), kind: KindString}
}

// Bytes returns a narrow text argument. A nil slice is the null argument.
func Bytes(b []byte) Arg {
	return Arg{num: uint64(len(b)), ptr: unsafe.Pointer(unsafe.SliceData(b)), kind: KindBytes}
}

// Runes returns a wide text argument. A nil slice is the null argument.
func Runes(r []rune) Arg {
	return Arg{num: uint64(len(r)), ptr: unsafe.Pointer(unsafe.SliceData(r)), kind: KindRunes}
}

// UTF16 returns a wide text argument of UTF-16 code units. A nil slice is
// the null argument.
func UTF16(u []uint16) Arg {
	return Arg{num: uint64(len(u)), ptr: unsafe.Pointer(unsafe.SliceData(u)), kind: KindUTF16}
}

// Int returns a signed integer argument. It renders like [Int64].
func Int(v int) Arg { return Int64(int64(v)) }

// Int8 returns an 8-bit signed integer argument.
func Int8(v int8) Arg { return Arg{num: uint64(v), kind: KindInt8} }

// Int16 returns a 16-bit signed integer argument.
func Int16(v int16) Arg { return Arg{num: uint64(v), kind: KindInt16} }

// Int32 returns a 32-bit signed integer argument.
func Int32(v int32) Arg { return Arg{num: uint64(v), kind: KindInt32} }

// Int64 returns a 64-bit signed integer argument.
func Int64(v int64) Arg { return Arg{num: uint64(v), kind: KindInt64} }

// Uint returns an unsigned integer argument. It renders like [Uint64].
func Uint(v uint) Arg { return Uint64(uint64(v)) }

// Uint8 returns an 8-bit unsigned integer argument.
func Uint8(v uint8) Arg { return Arg{num: uint64(v), kind: KindUint8} }

// Uint16 returns a 16-bit unsigned integer argument.
func Uint16(v uint16) Arg { return Arg{num: uint64(v), kind: KindUint16} }

// Uint32 returns a 32-bit unsigned integer argument.
func Uint32(v uint32) Arg { return Arg{num: uint64(v), kind: KindUint32} }

// Uint64 returns a 64-bit unsigned integer argument.
func Uint64(v uint64) Arg { return Arg{num: v, kind: KindUint64} }

// Float32 returns a 32-bit float argument, rendered with the formatter's
// float32 digit count (8 by default).
func Float32(v float32) Arg { return Arg{num: uint64(math.Float32bits(v)), kind: KindFloat32} }

// Float64 returns a 64-bit float argument, rendered with the formatter's
// float64 digit count (16 by default).
func Float64(v float64) Arg { return Arg{num: math.Float64bits(v), kind: KindFloat64} }

// Value is the closed set of element types [FormatArray] and [Of] accept.
type Value interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		string | []byte | []rune | []uint16 | Arg
}

// Of returns the Arg for v.
func Of[E Value](v E) Arg {
	switch x := any(v).(type) {
	case int:
		return Int(x)
	case int8:
		return Int8(x)
	case int16:
		return Int16(x)
	case int32:
		return Int32(x)
	case int64:
		return Int64(x)
	case uint:
		return Uint(x)
	case uint8:
		return Uint8(x)
	case uint16:
		return Uint16(x)
	case uint32:
		return Uint32(x)
	case uint64:
		return Uint64(x)
	case float32:
		return Float32(x)
	case float64:
		return Float64(x)
	case string:
		return String(x)
	case []byte:
		return Bytes(x)
	case []rune:
		return Runes(x)
	case []uint16:
		return UTF16(x)
	case Arg:
		return x
	}
	return Nil()
}

func (a *Arg) text() string {
	if a.num == 0 {
		return ""
	}
	return unsafe.String((*byte)(a.ptr), int(a.num))
}

func (a *Arg) bytes() []byte { return unsafe.Slice((*byte)(a.ptr), int(a.num)) }

func (a *Arg) runes() []rune { return unsafe.Slice((*rune)(a.ptr), int(a.num)) }

func (a *Arg) utf16() []uint16 { return unsafe.Slice((*uint16)(a.ptr), int(a.num)) }

func (a *Arg) float() float64 {
	if a.kind == KindFloat32 {
		return float64(math.Float32frombits(uint32(a.num)))
	}
	return math.Float64frombits(a.num)
}
