package fastfmt

import (
	"math"
	"strconv"
)

// MaxFracDigits is the largest fractional digit count a [Formatter] accepts.
// 10^18 is the largest power of ten a uint64 holds with headroom.
const MaxFracDigits = 18

const (
	defaultFloat32Digits = 8
	defaultFloat64Digits = 16
)

var pow10 = [MaxFracDigits + 1]uint64{
	1, 10, 100, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18,
}

// maxWholeDigits covers the integral part of math.MaxFloat64.
const maxWholeDigits = 320

// twoTo64 is the first float64 whose integral part does not fit a uint64.
const twoTo64 = 1 << 64

// fixed is a float split into the pieces of its fixed-point text form.
type fixed struct {
	special string // "nan", "inf" or "-inf"; empty for finite values
	neg     bool
	whole   []byte // base-10 digits of the integral part
	frac    uint64 // fractional digits, truncated
	digits  int    // fractional digit count
}

// splitFloat breaks v into its sign, integral digits and the first digits
// fractional digits of its remainder, truncating toward zero. The integral
// digits are appended to scratch.
func splitFloat(v float64, digits int, scratch []byte) fixed {
	switch {
	case math.IsNaN(v):
		return fixed{special: "nan"}
	case math.IsInf(v, 1):
		return fixed{special: "inf"}
	case math.IsInf(v, -1):
		return fixed{special: "-inf"}
	}

	f := fixed{neg: v < 0, digits: digits}
	if f.neg {
		v = -v
	}
	whole := math.Trunc(v)
	if whole < twoTo64 {
		f.whole = strconv.AppendUint(scratch, uint64(whole), 10)
	} else {
		// Integral floats this large have no fractional part and print
		// exactly with zero precision.
		f.whole = strconv.AppendFloat(scratch, whole, 'f', 0, 64)
	}

	if digits > 0 {
		scale := pow10[digits]
		f.frac = uint64((v - whole) * float64(scale))
		if f.frac >= scale {
			f.frac = scale - 1
		}
	}
	return f
}

func (f *fixed) width() int {
	if f.special != "" {
		return len(f.special)
	}
	n := len(f.whole)
	if f.neg {
		n++
	}
	if f.digits > 0 {
		n += 1 + f.digits
	}
	return n
}

// writeFloat renders v as sign, integral digits, '.', then digits
// zero-padded fractional digits.
func writeFloat[C Char](c *cursor[C], v float64, digits int) bool {
	var scratch [maxWholeDigits]byte
	f := splitFloat(v, digits, scratch[:0])
	if f.special != "" {
		return c.writeString(f.special)
	}
	w, ok := c.reserve(f.width())
	if !ok {
		return false
	}
	i := 0
	if f.neg {
		w[0] = '-'
		i++
	}
	for _, d := range f.whole {
		w[i] = C(d)
		i++
	}
	if digits > 0 {
		w[i] = '.'
		putDigits(w[i+1:], f.frac)
	}
	return true
}

func floatLen(v float64, digits int) int {
	var scratch [maxWholeDigits]byte
	f := splitFloat(v, digits, scratch[:0])
	return f.width()
}
