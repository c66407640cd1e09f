package fastfmt

// render writes the text form of a through c. It reports false, having
// written nothing for a, when the text does not fit.
func render[C Char](f *Formatter, c *cursor[C], a *Arg) bool {
	if a.IsNil() {
		return c.writeString(f.nilText)
	}
	switch a.kind {
	case KindString:
		return c.writeString(a.text())
	case KindBytes:
		return c.writeBytes(a.bytes())
	case KindRunes:
		return c.writeRunes(a.runes())
	case KindUTF16:
		return c.writeUTF16(a.utf16())
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return writeInt(c, int64(a.num))
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return writeUint(c, a.num)
	case KindFloat32:
		return writeFloat(c, a.float(), f.float32Digits)
	case KindFloat64:
		return writeFloat(c, a.float(), f.float64Digits)
	}
	return false
}

// width returns the number of C code units render writes for a.
func width[C Char](f *Formatter, a *Arg) int {
	if a.IsNil() {
		return len(f.nilText)
	}
	switch a.kind {
	case KindString, KindBytes:
		return int(a.num)
	case KindRunes:
		return runesLen[C](a.runes())
	case KindUTF16:
		return utf16Len[C](a.utf16())
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return CountRequiredCharacters(int64(a.num))
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return CountRequiredCharacters(a.num)
	case KindFloat32:
		return floatLen(a.float(), f.float32Digits)
	case KindFloat64:
		return floatLen(a.float(), f.float64Digits)
	}
	return 0
}

func writeUint[C Char](c *cursor[C], u uint64) bool {
	w, ok := c.reserve(countDigits(u))
	if !ok {
		return false
	}
	putDigits(w, u)
	return true
}

func writeInt[C Char](c *cursor[C], v int64) bool {
	w, ok := c.reserve(CountRequiredCharacters(v))
	if !ok {
		return false
	}
	if v < 0 {
		w[0] = '-'
		w = w[1:]
	}
	putDigits(w, magnitude(v))
	return true
}
