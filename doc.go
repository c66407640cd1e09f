// Package fastfmt renders typed values into caller-owned fixed buffers
// without allocating.
//
// It is a typed replacement for printf-style formatting on hot paths. There
// is no format string: each argument is an [Arg] built by a constructor
// such as [Uint8], [Int64], [Float32], [String] or [Runes], and arguments are
// rendered back to back with no separators:
//
//	var buf [64]rune
//	r := fastfmt.Format(buf[:], fastfmt.String("count: "), fastfmt.Int32(-153))
//	if r.Ok() {
//		use(string(buf[:r]))
//	}
//
// # Buffers
//
// The destination may hold narrow text ([]byte), UTF-16 ([]uint16) or UTF-32
// ([]rune); see [Char]. Its length is the capacity and counts are in its
// code units. Narrow arguments widen one code unit per byte. Wide text keeps
// its characters in either wide buffer, so a rune above U+FFFF takes two
// units in a []uint16. Nothing beyond the rendered text is written unless
// [WithTerminator] is set.
//
// # Rendering Rules
//
//   - Null arguments ([Nil], nil slices) render "nullptr".
//   - Integers render in base 10 with a leading '-' when negative.
//   - Floats render in fixed point, truncated toward zero and zero-padded to
//     8 fractional digits for float32 and 16 for float64. NaN and infinities
//     render "nan", "inf" and "-inf".
//   - [FormatArray] renders "[e0, e1, ..., eN]".
//
// # Results
//
// Every call returns a [Result]. A non-negative Result is the number of
// characters written. A failure is one of the negative codes
// [InvalidBufferPointer], [InvalidBufferCapacity] or [NotEnoughSpace], and
// compares directly:
//
//	if r == fastfmt.NotEnoughSpace { ... }
//
// After a failure the buffer may hold a partial prefix and must not be used.
// [Result.Err] maps codes to the sentinel errors [ErrInvalidBufferPointer],
// [ErrInvalidBufferCapacity] and [ErrNotEnoughSpace].
//
// # Configuration
//
// [Format] and [FormatArray] use [Default]. Build a [Formatter] with [New]
// and options, or from a YAML [Profile] with [LoadProfile], and pass it to
// [FormatWith] or [FormatArrayWith]. A Formatter is immutable and safe for
// concurrent use.
//
// Use [Measure] to size a buffer ahead of time:
//
//	buf := make([]uint16, fastfmt.Measure[uint16](args...))
package fastfmt
