package fastfmt

import (
	"unicode"
	"unicode/utf16"
	"unsafe"
)

// Char is the set of code unit types a destination buffer may hold:
// []byte for narrow text, []uint16 for UTF-16 and []rune for UTF-32.
//
// Narrow input widens one-to-one. Wide text keeps its characters between
// the two wide buffers: runes above U+FFFF become surrogate pairs in a
// UTF-16 buffer, and UTF-16 surrogate pairs join into single runes in a
// UTF-32 buffer. Everything else, unpaired surrogates included, is copied
// one code unit at a time and converted by value, so a narrow buffer keeps
// only the low byte of each wide code unit.
type Char interface {
	~byte | ~uint16 | ~rune
}

// unitSize is the size in bytes of one code unit of C.
func unitSize[C Char]() uintptr {
	var c C
	return unsafe.Sizeof(c)
}

// runesLen returns the number of C code units r occupies.
func runesLen[C Char](r []rune) int {
	n := len(r)
	if unitSize[C]() != 2 {
		return n
	}
	for _, ch := range r {
		if needsPair(ch) {
			n++
		}
	}
	return n
}

// utf16Len returns the number of C code units u occupies.
func utf16Len[C Char](u []uint16) int {
	if unitSize[C]() != 4 {
		return len(u)
	}
	n := 0
	for i := 0; i < len(u); i++ {
		if i+1 < len(u) {
			if _, ok := joinPair(u[i], u[i+1]); ok {
				i++
			}
		}
		n++
	}
	return n
}

func needsPair(r rune) bool {
	return r > 0xFFFF && r <= unicode.MaxRune
}

// joinPair decodes hi, lo when they form a valid surrogate pair.
func joinPair(hi, lo uint16) (rune, bool) {
	if !utf16.IsSurrogate(rune(hi)) {
		return 0, false
	}
	r := utf16.DecodeRune(rune(hi), rune(lo))
	return r, r != unicode.ReplacementChar
}

// cursor is the bounds-checked write position shared by every renderer in
// one call. 0 <= off <= len(buf) holds at every return.
type cursor[C Char] struct {
	buf []C
	off int
}

// reserve commits n characters and returns the window to fill. When n does
// not fit, the cursor is left unchanged and ok is false.
func (c *cursor[C]) reserve(n int) (w []C, ok bool) {
	if n < 0 || n > len(c.buf)-c.off {
		return nil, false
	}
	w = c.buf[c.off : c.off+n : c.off+n]
	c.off += n
	return w, true
}

func (c *cursor[C]) written() int { return c.off }

func (c *cursor[C]) writeString(s string) bool {
	w, ok := c.reserve(len(s))
	if !ok {
		return false
	}
	for i := 0; i < len(s); i++ {
		w[i] = C(s[i])
	}
	return true
}

func (c *cursor[C]) writeBytes(b []byte) bool {
	w, ok := c.reserve(len(b))
	if !ok {
		return false
	}
	for i, ch := range b {
		w[i] = C(ch)
	}
	return true
}

func (c *cursor[C]) writeRunes(r []rune) bool {
	w, ok := c.reserve(runesLen[C](r))
	if !ok {
		return false
	}
	if len(w) == len(r) {
		for i, ch := range r {
			w[i] = C(ch)
		}
		return true
	}
	i := 0
	for _, ch := range r {
		if needsPair(ch) {
			hi, lo := utf16.EncodeRune(ch)
			w[i], w[i+1] = C(hi), C(lo)
			i += 2
			continue
		}
		w[i] = C(ch)
		i++
	}
	return true
}

func (c *cursor[C]) writeUTF16(u []uint16) bool {
	w, ok := c.reserve(utf16Len[C](u))
	if !ok {
		return false
	}
	if len(w) == len(u) {
		for i, ch := range u {
			w[i] = C(ch)
		}
		return true
	}
	i := 0
	for j := 0; j < len(u); j++ {
		if j+1 < len(u) {
			if r, ok := joinPair(u[j], u[j+1]); ok {
				w[i] = C(r)
				i++
				j++
				continue
			}
		}
		w[i] = C(u[j])
		i++
	}
	return true
}

// terminate writes a zero code unit after the content without counting it.
func (c *cursor[C]) terminate() bool {
	if c.off >= len(c.buf) {
		return false
	}
	c.buf[c.off] = 0
	return true
}

// DecodeUTF16 is a convenience for reading back a UTF-16 buffer filled by
// [Format]. It allocates and is not meant for hot paths.
func DecodeUTF16(buf []uint16, r Result) string {
	return string(utf16.Decode(buf[:r.Count()]))
}
