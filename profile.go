package fastfmt

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Profile is the YAML form of a [Formatter]'s settings. Unset fields keep
// their defaults.
//
//	float32_digits: 6
//	float64_digits: 12
//	terminate: true
//	nil_text: "<nil>"
//	array:
//	  open: "{"
//	  separator: "; "
//	  close: "}"
type Profile struct {
	Float32Digits *int          `yaml:"float32_digits"`
	Float64Digits *int          `yaml:"float64_digits"`
	Terminate     bool          `yaml:"terminate"`
	NilText       *string       `yaml:"nil_text"`
	Array         *ArrayProfile `yaml:"array"`
}

// ArrayProfile holds the array delimiters of a [Profile].
type ArrayProfile struct {
	Open      string `yaml:"open"`
	Separator string `yaml:"separator"`
	Close     string `yaml:"close"`
}

// Options returns the options that apply p.
func (p Profile) Options() []Option {
	var opts []Option
	if p.Float32Digits != nil {
		opts = append(opts, WithFloat32Digits(*p.Float32Digits))
	}
	if p.Float64Digits != nil {
		opts = append(opts, WithFloat64Digits(*p.Float64Digits))
	}
	if p.Terminate {
		opts = append(opts, WithTerminator(true))
	}
	if p.NilText != nil {
		opts = append(opts, WithNilText(*p.NilText))
	}
	if p.Array != nil {
		opts = append(opts, WithArrayDelimiters(p.Array.Open, p.Array.Separator, p.Array.Close))
	}
	return opts
}

// DecodeProfile decodes a YAML [Profile] from r. Unknown keys are rejected.
// An empty document yields the zero Profile.
func DecodeProfile(r io.Reader) (Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, fmt.Errorf("%w: %s", ErrInvalidProfile, err)
	}
	return p, nil
}

// LoadProfile decodes a YAML [Profile] from r and builds a [Formatter] from
// it.
func LoadProfile(r io.Reader) (*Formatter, error) {
	p, err := DecodeProfile(r)
	if err != nil {
		return nil, err
	}
	return New(p.Options()...)
}
