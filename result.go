package fastfmt

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidBufferPointer  = errors.New("invalid buffer pointer")
	ErrInvalidBufferCapacity = errors.New("invalid buffer capacity")
	ErrNotEnoughSpace        = errors.New("not enough space")
	ErrInvalidOption         = errors.New("invalid option")
	ErrUnsupportedKind       = errors.New("unsupported kind")
	ErrInvalidProfile        = errors.New("invalid profile")
)

// Result is the outcome of a formatting call.
//
// A non-negative Result is the number of characters written. A negative
// Result is one of the error codes below. Both forms compare directly:
//
//	r := fastfmt.Format(buf, fastfmt.Uint8(255))
//	r == 3                       // true
//	r == fastfmt.NotEnoughSpace  // false
type Result int

// Error codes. No success count can equal any of them.
const (
	InvalidBufferPointer  Result = -1
	InvalidBufferCapacity Result = -2
	NotEnoughSpace        Result = -3
)

// Ok reports whether r is a success count.
func (r Result) Ok() bool { return r >= 0 }

// Count returns the number of characters written, or 0 for an error code.
func (r Result) Count() int {
	if r < 0 {
		return 0
	}
	return int(r)
}

// Err returns nil on success and the matching sentinel error otherwise.
func (r Result) Err() error {
	switch r {
	case InvalidBufferPointer:
		return ErrInvalidBufferPointer
	case InvalidBufferCapacity:
		return ErrInvalidBufferCapacity
	case NotEnoughSpace:
		return ErrNotEnoughSpace
	}
	if r < 0 {
		return fmt.Errorf("unknown result code %d", int(r))
	}
	return nil
}

// String returns the count in base 10, or the error text for an error code.
func (r Result) String() string {
	if r >= 0 {
		return strconv.Itoa(int(r))
	}
	return r.Err().Error()
}
