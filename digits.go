package fastfmt

// Integer is the set of integral types the digit counter accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// CountRequiredCharacters returns how many characters v needs in base 10,
// including one for the leading '-' of a negative value.
func CountRequiredCharacters[T Integer](v T) int {
	if v < 0 {
		// uint64(v) sign-extends, so negating it gives the magnitude even
		// for the minimum value of the type.
		return 1 + countDigits(-uint64(v))
	}
	return countDigits(uint64(v))
}

func countDigits(u uint64) int {
	n := 1
	for u >= 10 {
		u /= 10
		n++
	}
	return n
}

// magnitude returns |v| without overflowing on math.MinInt64.
func magnitude(v int64) uint64 {
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	return u
}

// putDigits writes u right-aligned into w, most significant digit first.
// Positions left of the digits are zero-filled, so len(w) must be at least
// countDigits(u).
func putDigits[C Char](w []C, u uint64) {
	i := len(w)
	for u >= 10 {
		i--
		w[i] = C('0' + u%10)
		u /= 10
	}
	i--
	w[i] = C('0' + u)
	for i > 0 {
		i--
		w[i] = '0'
	}
}
