package fastfmt

// FormatArray renders elems as "[e0, e1, ..., eN]" into buf with the default
// [Formatter]. An empty slice renders "[]". Errors follow [Format].
func FormatArray[C Char, E Value](buf []C, elems []E) Result {
	return FormatArrayWith(&std, buf, elems)
}

// FormatArrayWith is [FormatArray] with the settings of f. A nil f means
// [Default].
func FormatArrayWith[C Char, E Value](f *Formatter, buf []C, elems []E) Result {
	if r := check(buf); r != 0 {
		return r
	}
	f = orDefault(f)
	c := cursor[C]{buf: buf}
	if !c.writeString(f.open) {
		return NotEnoughSpace
	}
	for i := range elems {
		if i > 0 && !c.writeString(f.sep) {
			return NotEnoughSpace
		}
		a := Of(elems[i])
		if !render(f, &c, &a) {
			return NotEnoughSpace
		}
	}
	if !c.writeString(f.close) {
		return NotEnoughSpace
	}
	return finish(f, &c)
}
