// Command pdfreplay renders one decoded or filtered page content stream to
// PNG or SVG.
//
// Usage:
//
//	pdfreplay [flags] content-file
//
// A content file of "-" reads standard input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/tsawler/pdfreplay"
	"github.com/tsawler/pdfreplay/canvas"
	"github.com/tsawler/pdfreplay/internal/filters"
	"github.com/tsawler/pdfreplay/model"
	"github.com/tsawler/pdfreplay/textlayout"
)

// config holds the parsed command line
type config struct {
	width, height float64
	margin        float64
	format        string
	output        string
	filter        string
	shaped        bool
	pageBox       bool
	verbose       bool
	input         string
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "pdfreplay:", err)
		os.Exit(1)
	}
}

// parseFlags reads args into a config
func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}

	fs := flag.NewFlagSet("pdfreplay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&cfg.width, "width", 612, "page width in points")
	fs.Float64Var(&cfg.height, "height", 792, "page height in points")
	fs.Float64Var(&cfg.margin, "margin", 10, "margin around the page in points")
	fs.StringVar(&cfg.format, "format", "png", "output format: png or svg")
	fs.StringVar(&cfg.output, "o", "-", "output file, - for standard output")
	fs.StringVar(&cfg.filter, "filter", "auto", "stream filters: auto, none, or a comma separated chain such as ASCII85Decode,FlateDecode")
	fs.BoolVar(&cfg.shaped, "shaped", false, "measure text by shaping the substitute font")
	fs.BoolVar(&cfg.pageBox, "pagebox", true, "draw the page rectangle before the content")
	fs.BoolVar(&cfg.verbose, "v", false, "log every instruction diagnostic")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: pdfreplay [flags] content-file")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errors.New("expected exactly one content file")
	}
	cfg.input = fs.Arg(0)

	if cfg.format != "png" && cfg.format != "svg" {
		return nil, fmt.Errorf("unknown format %q", cfg.format)
	}
	if cfg.width <= 0 || cfg.height <= 0 || cfg.margin < 0 {
		return nil, errors.New("page size must be positive and margin non-negative")
	}
	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	content, err := readInput(cfg.input, stdin)
	if err != nil {
		return err
	}
	content, err = decodeContent(content, cfg.filter)
	if err != nil {
		return err
	}

	page, err := model.ParsePage(cfg.width, cfg.height, content)
	if err != nil {
		return fmt.Errorf("parse content: %w", err)
	}
	page.Number = 1

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	r := pdfreplay.Replay(page).
		Margin(cfg.margin).
		PageBox(cfg.pageBox).
		Logger(logger)
	if cfg.shaped {
		r = r.Layout(textlayout.NewCached(textlayout.NewShaped(), 1024))
	}

	out, closeOut, err := openOutput(cfg, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	w := cfg.width + 2*cfg.margin
	h := cfg.height + 2*cfg.margin

	var warnings []pdfreplay.Warning
	switch cfg.format {
	case "svg":
		svg := canvas.NewSVG(w, h)
		if warnings, err = r.To(svg); err != nil {
			return err
		}
		if _, err := svg.WriteTo(out); err != nil {
			return err
		}
	default:
		raster := canvas.NewRaster(int(math.Ceil(w)), int(math.Ceil(h)))
		if warnings, err = r.To(raster); err != nil {
			return err
		}
		if err := raster.Err(); err != nil {
			logger.Warn("text drawing failed", "error", err)
		}
		if err := raster.WritePNG(out); err != nil {
			return err
		}
	}

	logger.Info("rendered", "operations", len(page.Operations), "warnings", len(warnings))
	return nil
}

// readInput reads the named file, or stdin for "-"
func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return data, nil
}

// decodeContent applies the filter chain selected by spec
func decodeContent(data []byte, spec string) ([]byte, error) {
	var chain []string
	switch spec {
	case "none", "":
		return data, nil
	case "auto":
		chain = filters.Detect(data)
		decoded, err := filters.Decode(data, chain...)
		if err != nil {
			// a guess that does not decode means the content was plain
			return data, nil
		}
		return decoded, nil
	default:
		for _, name := range strings.Split(spec, ",") {
			if name = strings.TrimSpace(name); name != "" {
				chain = append(chain, name)
			}
		}
	}

	decoded, err := filters.Decode(data, chain...)
	if err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	return decoded, nil
}

// openOutput returns the destination writer and its closer. PNG bytes are
// never written to a terminal.
func openOutput(cfg *config, stdout io.Writer) (io.Writer, func() error, error) {
	if cfg.output != "-" {
		f, err := os.Create(cfg.output)
		if err != nil {
			return nil, nil, fmt.Errorf("create output: %w", err)
		}
		return f, f.Close, nil
	}

	if f, ok := stdout.(*os.File); ok && cfg.format == "png" && term.IsTerminal(int(f.Fd())) {
		return nil, nil, errors.New("refusing to write PNG to a terminal; use -o or redirect output")
	}
	return stdout, func() error { return nil }, nil
}
