// Package argspec parses command-line tokens of the form "kind:value" into
// formatting arguments.
package argspec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/bjaus/fastfmt"
)

// ErrInvalidToken is returned for tokens that cannot be turned into an Arg.
var ErrInvalidToken = errors.New("invalid token")

// Parse parses one "kind:value" token. The bare token "nil" is the null
// argument; text kinds take the rest of the token verbatim, colons included.
func Parse(token string) (fastfmt.Arg, error) {
	if token == "nil" {
		return fastfmt.Nil(), nil
	}
	name, value, ok := strings.Cut(token, ":")
	if !ok {
		return fastfmt.Arg{}, fmt.Errorf("%w: %q has no kind prefix", ErrInvalidToken, token)
	}
	kind, err := fastfmt.ParseKind(name)
	if err != nil {
		return fastfmt.Arg{}, err
	}
	return Value(kind, value)
}

// ParseAll parses every token, stopping at the first error.
func ParseAll(tokens []string) ([]fastfmt.Arg, error) {
	args := make([]fastfmt.Arg, 0, len(tokens))
	for _, tok := range tokens {
		a, err := Parse(tok)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	return args, nil
}

// Value converts value to an Arg of the given kind, range-checking numbers
// against the kind's width.
func Value(kind fastfmt.Kind, value string) (fastfmt.Arg, error) {
	switch kind {
	case fastfmt.KindNil:
		return fastfmt.Nil(), nil
	case fastfmt.KindString:
		return fastfmt.String(value), nil
	case fastfmt.KindBytes:
		return fastfmt.Bytes([]byte(value)), nil
	case fastfmt.KindRunes:
		return fastfmt.Runes([]rune(value)), nil
	case fastfmt.KindUTF16:
		return fastfmt.UTF16(utf16.Encode([]rune(value))), nil
	case fastfmt.KindFloat32, fastfmt.KindFloat64:
		bits := 64
		if kind == fastfmt.KindFloat32 {
			bits = 32
		}
		f, err := strconv.ParseFloat(value, bits)
		if err != nil {
			return fastfmt.Arg{}, fmt.Errorf("%w: %s: %s", ErrInvalidToken, kind, err)
		}
		if bits == 32 {
			return fastfmt.Float32(float32(f)), nil
		}
		return fastfmt.Float64(f), nil
	}
	if kind.Signed() {
		v, err := strconv.ParseInt(value, 10, bitSize(kind))
		if err != nil {
			return fastfmt.Arg{}, fmt.Errorf("%w: %s: %s", ErrInvalidToken, kind, err)
		}
		switch kind {
		case fastfmt.KindInt8:
			return fastfmt.Int8(int8(v)), nil
		case fastfmt.KindInt16:
			return fastfmt.Int16(int16(v)), nil
		case fastfmt.KindInt32:
			return fastfmt.Int32(int32(v)), nil
		}
		return fastfmt.Int64(v), nil
	}
	if kind.Unsigned() {
		v, err := strconv.ParseUint(value, 10, bitSize(kind))
		if err != nil {
			return fastfmt.Arg{}, fmt.Errorf("%w: %s: %s", ErrInvalidToken, kind, err)
		}
		switch kind {
		case fastfmt.KindUint8:
			return fastfmt.Uint8(uint8(v)), nil
		case fastfmt.KindUint16:
			return fastfmt.Uint16(uint16(v)), nil
		case fastfmt.KindUint32:
			return fastfmt.Uint32(uint32(v)), nil
		}
		return fastfmt.Uint64(v), nil
	}
	return fastfmt.Arg{}, fmt.Errorf("%w: kind %s", fastfmt.ErrUnsupportedKind, kind)
}

func bitSize(k fastfmt.Kind) int {
	switch k {
	case fastfmt.KindInt8, fastfmt.KindUint8:
		return 8
	case fastfmt.KindInt16, fastfmt.KindUint16:
		return 16
	case fastfmt.KindInt32, fastfmt.KindUint32:
		return 32
	}
	return 64
}
