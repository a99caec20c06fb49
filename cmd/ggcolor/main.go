// Command ggcolor parses colors and prints their notations and derived properties.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	ggcolor "github.com/gogpu/gg-color"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status:
// 0 on success, 1 if any color fails to parse, 2 on usage errors.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ggcolor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: ggcolor [flags] COLOR...")
		fs.PrintDefaults()
	}

	var (
		strict     = fs.Bool("strict", false, "reject sources with an unknown leading character")
		named      = fs.Bool("named", false, "accept SVG color keywords")
		precision  = fs.Int("precision", 0, "bits to drop per channel (0, 2, 4 or 6)")
		compare    = fs.String("compare", "", "color to measure distance against")
		format     = fs.String("format", formatText, "output format: text, hex, rgb or rgba")
		configPath = fs.String("config", "", "TOML config file")
		verbose    = fs.Bool("v", false, "log parser activity to stderr")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "ggcolor: %v\n", err)
		return 2
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strict":
			cfg.Strict = *strict
		case "named":
			cfg.Named = *named
		case "precision":
			cfg.Precision = *precision
		case "compare":
			cfg.Compare = *compare
		case "format":
			cfg.Format = *format
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "ggcolor: %v\n", err)
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	if *verbose {
		ggcolor.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer ggcolor.SetLogger(nil)
	}

	opts := cfg.ParseOptions()
	var ref *ggcolor.Color
	if cfg.Compare != "" {
		ref, err = ggcolor.Parse(cfg.Compare, opts...)
		if err != nil {
			fmt.Fprintf(stderr, "compare: %v\n", err)
			return 2
		}
	}

	status := 0
	for _, src := range fs.Args() {
		c, err := ggcolor.Parse(src, opts...)
		if err != nil {
			fmt.Fprintln(stderr, err)
			status = 1
			continue
		}
		if err := describe(stdout, cfg, c, ref); err != nil {
			fmt.Fprintf(stderr, "ggcolor: %v\n", err)
			return 1
		}
	}
	return status
}

// describe writes c in the configured format.
func describe(w io.Writer, cfg Config, c, ref *ggcolor.Color) error {
	p := ggcolor.Precision(cfg.Precision) //nolint:gosec // G115: validated to [0,7]
	dropped := c.Clone()
	if err := dropped.DropPrecisionTo(p); err != nil {
		return err
	}

	var err error
	switch cfg.Format {
	case formatHex:
		_, err = fmt.Fprintln(w, dropped.Hex())
	case formatRGB:
		_, err = fmt.Fprintln(w, dropped.RGBNotation())
	case formatRGBA:
		_, err = fmt.Fprintln(w, dropped.RGBANotation())
	default:
		err = describeText(w, c, dropped, p, ref)
	}
	return err
}

func describeText(w io.Writer, c, dropped *ggcolor.Color, p ggcolor.Precision, ref *ggcolor.Color) error {
	tone := "mid"
	switch {
	case c.IsDark():
		tone = "dark"
	case c.IsLight():
		tone = "light"
	}

	lines := [][2]string{
		{"hex8", c.Hex8()},
		{"rgb", c.RGBNotation()},
		{"rgba", c.RGBANotation()},
		{"luminance", fmt.Sprintf("%d (%s)", c.Luminance(), tone)},
	}
	if ref != nil {
		lines = append(lines, [2]string{"distance", fmt.Sprintf("%.2f to %s", c.DistanceTo(ref), ref.Hex())})
	}
	if p != ggcolor.Precision32 {
		lines = append(lines, [2]string{"precision", fmt.Sprintf("%s (%s)", dropped.Hex(), p)})
	}

	if _, err := fmt.Fprintln(w, c.Hex()); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "  %-10s %s\n", l[0], l[1]); err != nil {
			return err
		}
	}
	return nil
}
