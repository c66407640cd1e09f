package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf16"

	"github.com/bjaus/fastfmt"
	"github.com/bjaus/fastfmt/internal/argspec"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const (
	widthNarrow = "narrow"
	widthUTF16  = "utf16"
	widthWide   = "wide"
)

func newCommand(stdout, stderr io.Writer) *cli.Command {
	bufferFlags := []cli.Flag{
		&cli.IntFlag{
			Name:  "cap",
			Usage: "Buffer capacity in characters",
			Value: 256,
		},
		&cli.StringFlag{
			Name:    "width",
			Aliases: []string{"w"},
			Usage:   "Buffer code unit: narrow, utf16 or wide",
			Value:   widthWide,
		},
		&cli.StringFlag{
			Name:    "profile",
			Aliases: []string{"p"},
			Usage:   "YAML render profile",
		},
		&cli.BoolFlag{
			Name:  "terminate",
			Usage: "Append a zero terminator after the text",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Report format: text or yaml",
			Value:   "text",
		},
	}

	return &cli.Command{
		Name:      "fastfmt",
		Usage:     "Render typed values into fixed buffers",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log debug details to stderr",
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Aliases: []string{"C"},
				Usage:   "Disable ANSI color output",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "render",
				Usage:     "Format kind:value tokens back to back",
				ArgsUsage: "<kind:value>...",
				Flags:     bufferFlags,
				Action:    renderAction,
			},
			{
				Name:      "array",
				Usage:     "Format values as an array",
				ArgsUsage: "<value>...",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "kind",
						Aliases: []string{"k"},
						Usage:   "Element kind (see 'fastfmt kinds')",
						Value:   "i64",
					},
				}, bufferFlags...),
				Action: arrayAction,
			},
			{
				Name:      "measure",
				Usage:     "Print the code units kind:value tokens need",
				ArgsUsage: "<kind:value>...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "width",
						Aliases: []string{"w"},
						Usage:   "Buffer code unit: narrow, utf16 or wide",
						Value:   widthWide,
					},
					&cli.StringFlag{
						Name:    "profile",
						Aliases: []string{"p"},
						Usage:   "YAML render profile",
					},
				},
				Action: measureAction,
			},
			{
				Name:   "kinds",
				Usage:  "List argument kinds",
				Action: kindsAction,
			},
		},
	}
}

// job is one formatting request assembled from flags and arguments.
type job struct {
	formatter *fastfmt.Formatter
	args      []fastfmt.Arg
	array     bool
}

// report is what a job produced, as printed by --output yaml.
type report struct {
	Result   int    `yaml:"result"`
	Status   string `yaml:"status"`
	Text     string `yaml:"text"`
	Capacity int    `yaml:"capacity"`
	Width    string `yaml:"width"`
}

func renderAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return errors.New("usage: fastfmt render [flags] <kind:value>...")
	}
	args, err := argspec.ParseAll(cmd.Args().Slice())
	if err != nil {
		return err
	}
	return runJob(ctx, cmd, args, false)
}

func arrayAction(ctx context.Context, cmd *cli.Command) error {
	kind, err := fastfmt.ParseKind(cmd.String("kind"))
	if err != nil {
		return err
	}
	elems := make([]fastfmt.Arg, 0, cmd.NArg())
	for _, v := range cmd.Args().Slice() {
		a, err := argspec.Value(kind, v)
		if err != nil {
			return err
		}
		elems = append(elems, a)
	}
	return runJob(ctx, cmd, elems, true)
}

func measureAction(ctx context.Context, cmd *cli.Command) error {
	args, err := argspec.ParseAll(cmd.Args().Slice())
	if err != nil {
		return err
	}
	f, err := loadFormatter(cmd)
	if err != nil {
		return err
	}
	var n int
	switch width := cmd.String("width"); width {
	case widthNarrow:
		n = fastfmt.MeasureWith[byte](f, args...)
	case widthUTF16:
		n = fastfmt.MeasureWith[uint16](f, args...)
	case widthWide:
		n = fastfmt.MeasureWith[rune](f, args...)
	default:
		return unknownWidth(width)
	}
	logger(cmd).DebugContext(ctx, "measured", "args", len(args), "width", cmd.String("width"), "units", n)
	_, err = fmt.Fprintln(cmd.Root().Writer, n)
	return err
}

func runJob(ctx context.Context, cmd *cli.Command, args []fastfmt.Arg, array bool) error {
	log := logger(cmd)
	capacity := int(cmd.Int("cap"))
	if capacity < 0 {
		return fmt.Errorf("capacity must not be negative, got %d", capacity)
	}
	f, err := loadFormatter(cmd)
	if err != nil {
		return err
	}
	j := job{formatter: f, args: args, array: array}

	var rep report
	switch width := cmd.String("width"); width {
	case widthNarrow:
		rep = execute(j, make([]byte, capacity), func(b []byte) string { return string(b) })
	case widthUTF16:
		rep = execute(j, make([]uint16, capacity), func(b []uint16) string { return string(utf16.Decode(b)) })
	case widthWide:
		rep = execute(j, make([]rune, capacity), func(b []rune) string { return string(b) })
	default:
		return unknownWidth(width)
	}
	log.DebugContext(ctx, "formatted",
		"args", len(args),
		"array", array,
		"width", rep.Width,
		"capacity", rep.Capacity,
		"result", rep.Result,
	)

	if err := writeReport(cmd, rep); err != nil {
		return err
	}
	if rep.Result < 0 {
		return fmt.Errorf("format: %w", fastfmt.Result(rep.Result).Err())
	}
	return nil
}

// execute runs j against buf and decodes what it wrote.
func execute[C fastfmt.Char](j job, buf []C, decode func([]C) string) report {
	var r fastfmt.Result
	if j.array {
		r = fastfmt.FormatArrayWith(j.formatter, buf, j.args)
	} else {
		r = fastfmt.FormatWith(j.formatter, buf, j.args...)
	}
	rep := report{
		Result:   int(r),
		Status:   "ok",
		Capacity: len(buf),
		Width:    widthOf(buf),
	}
	if r.Ok() {
		rep.Text = decode(buf[:r])
	} else {
		rep.Status = r.Err().Error()
	}
	return rep
}

func unknownWidth(width string) error {
	return fmt.Errorf("unknown width %q (want %s, %s or %s)", width, widthNarrow, widthUTF16, widthWide)
}

func widthOf[C fastfmt.Char](buf []C) string {
	switch any(buf).(type) {
	case []byte:
		return widthNarrow
	case []uint16:
		return widthUTF16
	}
	return widthWide
}

func writeReport(cmd *cli.Command, rep report) error {
	out := cmd.Root().Writer
	switch cmd.String("output") {
	case "yaml":
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		if rep.Result >= 0 {
			if _, err := fmt.Fprintln(out, rep.Text); err != nil {
				return err
			}
		}
		return writeStatus(cmd, rep)
	default:
		return fmt.Errorf("unknown output %q (want text or yaml)", cmd.String("output"))
	}
}

func writeStatus(cmd *cli.Command, rep report) error {
	errw := cmd.Root().ErrWriter
	color := useColor(cmd, errw)
	if rep.Result >= 0 {
		_, err := fmt.Fprintf(errw, "%s %d of %d characters\n", paint(color, "32", "ok:"), rep.Result, rep.Capacity)
		return err
	}
	_, err := fmt.Fprintf(errw, "%s %s (capacity %d)\n", paint(color, "31", "failed:"), rep.Status, rep.Capacity)
	return err
}

func loadFormatter(cmd *cli.Command) (*fastfmt.Formatter, error) {
	var p fastfmt.Profile
	if path := cmd.String("profile"); path != "" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening profile: %w", err)
		}
		defer fh.Close()
		if p, err = fastfmt.DecodeProfile(fh); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if cmd.Bool("terminate") {
		p.Terminate = true
	}
	return fastfmt.New(p.Options()...)
}

func logger(cmd *cli.Command) *slog.Logger {
	level := slog.LevelWarn
	if cmd.Root().Bool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.Root().ErrWriter, &slog.HandlerOptions{Level: level}))
}

// useColor mirrors the usual NO_COLOR convention and only colors terminals.
func useColor(cmd *cli.Command, w io.Writer) bool {
	if cmd.Root().Bool("no-color") || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func paint(on bool, code, s string) string {
	if !on {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}
