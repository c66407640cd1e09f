package fastfmt

// Format renders args left to right into buf with the default [Formatter]
// and returns the number of characters written.
//
// A nil buf yields [InvalidBufferPointer] and an empty one
// [InvalidBufferCapacity]; in both cases nothing is written. If an argument
// does not fit, Format stops and returns [NotEnoughSpace]. Text already
// written by earlier arguments stays in buf and must be treated as garbage.
func Format[C Char](buf []C, args ...Arg) Result {
	return FormatWith(&std, buf, args...)
}

// FormatWith is [Format] with the settings of f. A nil f means [Default].
func FormatWith[C Char](f *Formatter, buf []C, args ...Arg) Result {
	if r := check(buf); r != 0 {
		return r
	}
	f = orDefault(f)
	c := cursor[C]{buf: buf}
	for i := range args {
		if !render(f, &c, &args[i]) {
			return NotEnoughSpace
		}
	}
	return finish(f, &c)
}

// check validates the destination once per call. It returns 0 when buf is
// usable.
func check[C Char](buf []C) Result {
	if buf == nil {
		return InvalidBufferPointer
	}
	if len(buf) == 0 {
		return InvalidBufferCapacity
	}
	return 0
}

// finish applies the terminator policy and turns the cursor into a Result.
func finish[C Char](f *Formatter, c *cursor[C]) Result {
	if f.terminate && !c.terminate() {
		return NotEnoughSpace
	}
	return Result(c.written())
}
