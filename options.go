package fastfmt

import "fmt"

// Formatter holds the rendering settings for a family of calls. It is
// immutable once built by [New], so one Formatter may serve any number of
// goroutines.
type Formatter struct {
	float32Digits int
	float64Digits int
	terminate     bool
	nilText       string
	open          string
	sep           string
	close         string
}

// Option configures a [Formatter].
type Option func(*Formatter)

// WithFloat32Digits sets the fractional digit count for 32-bit floats.
// Default: 8.
func WithFloat32Digits(n int) Option {
	return func(f *Formatter) { f.float32Digits = n }
}

// WithFloat64Digits sets the fractional digit count for 64-bit floats.
// Default: 16.
func WithFloat64Digits(n int) Option {
	return func(f *Formatter) { f.float64Digits = n }
}

// WithTerminator appends a zero code unit after the rendered text. The
// terminator is not part of the returned count, but it must fit: a call
// whose text fills the buffer exactly fails with [NotEnoughSpace].
// Default: off.
func WithTerminator(on bool) Option {
	return func(f *Formatter) { f.terminate = on }
}

// WithNilText sets the literal rendered for null arguments.
// Default: "nullptr".
func WithNilText(s string) Option {
	return func(f *Formatter) { f.nilText = s }
}

// WithArrayDelimiters sets the text written before, between and after array
// elements. Default: "[", ", ", "]".
func WithArrayDelimiters(open, sep, close string) Option {
	return func(f *Formatter) {
		f.open = open
		f.sep = sep
		f.close = close
	}
}

var std = Formatter{
	float32Digits: defaultFloat32Digits,
	float64Digits: defaultFloat64Digits,
	nilText:       "nullptr",
	open:          "[",
	sep:           ", ",
	close:         "]",
}

// Default returns a copy of the settings used by [Format] and
// [FormatArray]. Changing the copy does not affect them.
func Default() *Formatter {
	f := std
	return &f
}

// New returns a Formatter with the defaults changed by opts.
func New(opts ...Option) (*Formatter, error) {
	f := std
	for _, opt := range opts {
		if opt != nil {
			opt(&f)
		}
	}
	if f.float32Digits < 0 || f.float32Digits > MaxFracDigits {
		return nil, fmt.Errorf("%w: float32 digits %d not in [0, %d]", ErrInvalidOption, f.float32Digits, MaxFracDigits)
	}
	if f.float64Digits < 0 || f.float64Digits > MaxFracDigits {
		return nil, fmt.Errorf("%w: float64 digits %d not in [0, %d]", ErrInvalidOption, f.float64Digits, MaxFracDigits)
	}
	return &f, nil
}

// Float32Digits returns the fractional digit count for 32-bit floats.
func (f *Formatter) Float32Digits() int { return f.float32Digits }

// Float64Digits returns the fractional digit count for 64-bit floats.
func (f *Formatter) Float64Digits() int { return f.float64Digits }

// Terminates reports whether the Formatter appends a zero code unit.
func (f *Formatter) Terminates() bool { return f.terminate }

func orDefault(f *Formatter) *Formatter {
	if f == nil {
		return &std
	}
	return f
}
