package fastfmt

// Measure returns the number of code units [Format] needs to render args
// into a []C buffer. A buffer of exactly that length succeeds; one unit less
// fails with [NotEnoughSpace]. The terminator, if any, is not included.
//
// C is named explicitly because wide text can take a different number of
// units in UTF-16 than in UTF-32:
//
//	n := fastfmt.Measure[uint16](args...)
func Measure[C Char](args ...Arg) int {
	return MeasureWith[C](&std, args...)
}

// MeasureWith is [Measure] with the settings of f. A nil f means [Default].
func MeasureWith[C Char](f *Formatter, args ...Arg) int {
	f = orDefault(f)
	n := 0
	for i := range args {
		n += width[C](f, &args[i])
	}
	return n
}

// MeasureArray returns the number of code units [FormatArray] needs to
// render elems into a []C buffer.
func MeasureArray[C Char, E Value](elems []E) int {
	return MeasureArrayWith[C](&std, elems)
}

// MeasureArrayWith is [MeasureArray] with the settings of f.
func MeasureArrayWith[C Char, E Value](f *Formatter, elems []E) int {
	f = orDefault(f)
	n := len(f.open) + len(f.close)
	if len(elems) > 1 {
		n += (len(elems) - 1) * len(f.sep)
	}
	for i := range elems {
		a := Of(elems[i])
		n += width[C](f, &a)
	}
	return n
}
