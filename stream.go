package fastfmt

import "iter"

// FormatSeq renders the values of seq as an array, exactly like
// [FormatArray] would render them collected into a slice. Iteration stops
// at the first element that does not fit.
func FormatSeq[C Char, E Value](buf []C, seq iter.Seq[E]) Result {
	return FormatSeqWith(&std, buf, seq)
}

// FormatSeqWith is [FormatSeq] with the settings of f. A nil f means
// [Default].
func FormatSeqWith[C Char, E Value](f *Formatter, buf []C, seq iter.Seq[E]) Result {
	if r := check(buf); r != 0 {
		return r
	}
	f = orDefault(f)
	c := cursor[C]{buf: buf}
	if !c.writeString(f.open) {
		return NotEnoughSpace
	}
	first := true
	failed := false
	seq(func(e E) bool {
		if !first && !c.writeString(f.sep) {
			failed = true
			return false
		}
		first = false
		a := Of(e)
		if !render(f, &c, &a) {
			failed = true
			return false
		}
		return true
	})
	if failed || !c.writeString(f.close) {
		return NotEnoughSpace
	}
	return finish(f, &c)
}
