package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/bjaus/fastfmt"
	"github.com/bjaus/fastfmt/internal/argspec"
	"github.com/mattn/go-runewidth"
	"github.com/urfave/cli/v3"
)

var kindSamples = map[fastfmt.Kind]string{
	fastfmt.KindNil:     "",
	fastfmt.KindString:  "hello",
	fastfmt.KindBytes:   "raw",
	fastfmt.KindRunes:   "日本語",
	fastfmt.KindUTF16:   "ünï",
	fastfmt.KindInt8:    "-128",
	fastfmt.KindInt16:   "-32768",
	fastfmt.KindInt32:   "-2147483647",
	fastfmt.KindInt64:   "-9223372036854775807",
	fastfmt.KindUint8:   "255",
	fastfmt.KindUint16:  "65535",
	fastfmt.KindUint32:  "4294967295",
	fastfmt.KindUint64:  "18446744073709551615",
	fastfmt.KindFloat32: "-0.12345678",
	fastfmt.KindFloat64: "-0.12345678912345",
}

func category(k fastfmt.Kind) string {
	switch {
	case k == fastfmt.KindNil:
		return "null"
	case k.Signed():
		return "signed"
	case k.Unsigned():
		return "unsigned"
	case k.Float():
		return "float"
	case k == fastfmt.KindRunes || k == fastfmt.KindUTF16:
		return "wide text"
	}
	return "narrow text"
}

func kindsAction(ctx context.Context, cmd *cli.Command) error {
	rows := [][]string{{"KIND", "CATEGORY", "SAMPLE", "RENDERS", "CHARS"}}
	buf := make([]rune, 64)
	for _, k := range fastfmt.Kinds() {
		a, err := argspec.Value(k, kindSamples[k])
		if err != nil {
			return err
		}
		r := fastfmt.Format(buf, a)
		if !r.Ok() {
			return fmt.Errorf("rendering %s sample: %w", k, r.Err())
		}
		rows = append(rows, []string{k.String(), category(k), kindSamples[k], string(buf[:r]), r.String()})
	}
	_, err := fmt.Fprint(cmd.Root().Writer, layout(rows))
	return err
}

// layout pads every column to its widest cell, measured in terminal
// columns so wide characters line up.
func layout(rows [][]string) string {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i == len(row)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	return b.String()
}
