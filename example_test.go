package fastfmt_test

import (
	"fmt"

	"github.com/bjaus/fastfmt"
)

func ExampleFormat() {
	var buf [64]rune
	r := fastfmt.Format(buf[:],
		fastfmt.Runes([]rune("I am a wide string.")),
		fastfmt.Uint8(4),
		fastfmt.Int64(-230512443),
		fastfmt.String("I am a normal string."),
	)
	fmt.Println(r, string(buf[:r]))
	// Output: 51 I am a wide string.4-230512443I am a normal string.
}

func ExampleFormat_notEnoughSpace() {
	var buf [2]rune
	r := fastfmt.Format(buf[:], fastfmt.String("I am a big string!"))
	fmt.Println(r == fastfmt.NotEnoughSpace, r.Err())
	// Output: true not enough space
}

func ExampleFormatArray() {
	buf := make([]byte, 32)
	r := fastfmt.FormatArray(buf, []int32{1, 2, 3, 4, 5})
	fmt.Println(r, string(buf[:r]))
	// Output: 15 [1, 2, 3, 4, 5]
}

func ExampleMeasure() {
	args := []fastfmt.Arg{fastfmt.String("pi="), fastfmt.Float32(3.25)}
	buf := make([]byte, fastfmt.Measure[byte](args...))
	r := fastfmt.Format(buf, args...)
	fmt.Println(string(buf[:r]))
	// Output: pi=3.25000000
}
