package fastfmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorReserve(t *testing.T) {
	t.Parallel()
	c := cursor[rune]{buf: make([]rune, 4)}

	w, ok := c.reserve(3)
	require.True(t, ok)
	assert.Len(t, w, 3)
	assert.Equal(t, 3, cap(w))
	assert.Equal(t, 3, c.written())

	// A request that does not fit leaves the offset alone.
	_, ok = c.reserve(2)
	assert.False(t, ok)
	assert.Equal(t, 3, c.written())

	_, ok = c.reserve(-1)
	assert.False(t, ok)

	_, ok = c.reserve(1)
	assert.True(t, ok)
	assert.Equal(t, 4, c.written())

	_, ok = c.reserve(0)
	assert.True(t, ok)
}

func TestCursorWritesAreAllOrNothing(t *testing.T) {
	t.Parallel()
	buf := []byte("......")
	c := cursor[byte]{buf: buf}
	require.True(t, c.writeString("ab"))
	assert.False(t, c.writeString("cdefg"))
	assert.False(t, c.writeRunes([]rune("cdefg")))
	assert.False(t, c.writeUTF16([]uint16{'c', 'd', 'e', 'f', 'g'}))
	assert.False(t, c.writeBytes([]byte("cdefg")))
	assert.Equal(t, "ab....", string(buf))
	assert.Equal(t, 2, c.written())
}

func TestCursorTerminate(t *testing.T) {
	t.Parallel()
	c := cursor[uint16]{buf: []uint16{9, 9}}
	require.True(t, c.writeString("a"))
	assert.True(t, c.terminate())
	assert.Equal(t, []uint16{'a', 0}, c.buf)
	assert.Equal(t, 1, c.written())

	require.True(t, c.writeString("b"))
	assert.False(t, c.terminate())
}

func TestPutDigits(t *testing.T) {
	t.Parallel()
	w := make([]byte, 5)
	putDigits(w, 42)
	assert.Equal(t, "00042", string(w))

	w = make([]byte, 1)
	putDigits(w, 0)
	assert.Equal(t, "0", string(w))

	w = make([]byte, 20)
	putDigits(w, math.MaxUint64)
	assert.Equal(t, "18446744073709551615", string(w))
}

func TestMagnitude(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint64(1<<63), magnitude(math.MinInt64))
	assert.Equal(t, uint64(math.MaxInt64), magnitude(math.MaxInt64))
	assert.Equal(t, uint64(5), magnitude(-5))
	assert.Equal(t, uint64(0), magnitude(0))
}

func TestSplitFloat(t *testing.T) {
	t.Parallel()
	var scratch [maxWholeDigits]byte

	f := splitFloat(-12.5, 3, scratch[:0])
	assert.True(t, f.neg)
	assert.Equal(t, "12", string(f.whole))
	assert.Equal(t, uint64(500), f.frac)
	assert.Equal(t, 7, f.width())

	f = splitFloat(0.75, 0, scratch[:0])
	assert.Equal(t, "0", string(f.whole))
	assert.Equal(t, uint64(0), f.frac)
	assert.Equal(t, 1, f.width())

	f = splitFloat(math.Inf(-1), 8, scratch[:0])
	assert.Equal(t, "-inf", f.special)
	assert.Equal(t, 4, f.width())

	f = splitFloat(math.MaxFloat64, 2, scratch[:0])
	assert.Len(t, f.whole, 309)
	assert.Equal(t, uint64(0), f.frac)
}

func TestSplitFloatFractionStaysInRange(t *testing.T) {
	t.Parallel()
	var scratch [maxWholeDigits]byte
	for digits := 1; digits <= MaxFracDigits; digits++ {
		f := splitFloat(math.Nextafter(1, 0), digits, scratch[:0])
		assert.Equal(t, "0", string(f.whole))
		assert.Less(t, f.frac, pow10[digits], digits)
		assert.Equal(t, 2+digits, f.width())
	}
}

func TestWidthMatchesRender(t *testing.T) {
	t.Parallel()
	args := []Arg{
		Nil(), String("abc"), Bytes(nil), Runes([]rune("xy")), UTF16([]uint16{1}),
		Runes([]rune("😀 \U0010FFFF")), UTF16([]uint16{0xD83D, 0xDE00, 0xDE00}),
		Int8(-128), Int16(0), Int32(math.MaxInt32), Int64(math.MinInt64),
		Uint8(255), Uint16(10), Uint32(0), Uint64(math.MaxUint64),
		Float32(-1.5), Float64(math.NaN()), Float64(-1e30),
	}
	checkWidths[byte](t, args)
	checkWidths[uint16](t, args)
	checkWidths[rune](t, args)
}

func checkWidths[C Char](t *testing.T, args []Arg) {
	t.Helper()
	for i := range args {
		c := cursor[C]{buf: make([]C, 512)}
		require.True(t, render(&std, &c, &args[i]), args[i].Kind().String())
		assert.Equal(t, width[C](&std, &args[i]), c.written(), args[i].Kind().String())
	}
}

func TestWideTextLengths(t *testing.T) {
	t.Parallel()
	r := []rune("a😀b")
	assert.Equal(t, 3, runesLen[rune](r))
	assert.Equal(t, 3, runesLen[byte](r))
	assert.Equal(t, 4, runesLen[uint16](r))

	u := []uint16{'a', 0xD83D, 0xDE00, 0xD83D}
	assert.Equal(t, 4, utf16Len[uint16](u))
	assert.Equal(t, 4, utf16Len[byte](u))
	assert.Equal(t, 3, utf16Len[rune](u))
}

func TestJoinPair(t *testing.T) {
	t.Parallel()
	r, ok := joinPair(0xD83D, 0xDE00)
	assert.True(t, ok)
	assert.Equal(t, rune(0x1F600), r)

	_, ok = joinPair(0xDE00, 0xD83D)
	assert.False(t, ok)
	_, ok = joinPair('a', 0xDE00)
	assert.False(t, ok)
	_, ok = joinPair(0xD83D, 'a')
	assert.False(t, ok)
}

func TestRenderUnknownKind(t *testing.T) {
	t.Parallel()
	a := Arg{kind: Kind(200)}
	c := cursor[rune]{buf: make([]rune, 8)}
	assert.False(t, render(&std, &c, &a))
	assert.Equal(t, 0, width[rune](&std, &a))
	assert.Equal(t, "kind(200)", a.Kind().String())
}
