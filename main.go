package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/go-errors/errors"

	"pie/internal/config"
	"pie/internal/export"
	"pie/internal/picker"
	"pie/internal/raster"
	"pie/internal/state"
	"pie/internal/ui"
)

func main() {
	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "pie: %v\nRun 'pie -h' for usage.\n", err)
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		report(err, opts.debug)
		os.Exit(1)
	}
}

func run(opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	c, err := openCanvas(opts, cfg, os.Stdin)
	if err != nil {
		return err
	}

	ui.Run(cfg, c, newPicker(cfg))

	return saveImage(opts, c.Image, os.Stdout)
}

// openCanvas loads the input image, or creates a blank white canvas, and
// applies the configured brush.
func openCanvas(opts *options, cfg config.Config, stdin io.Reader) (*state.Canvas, error) {
	var (
		img *raster.Buffer
		err error
	)
	switch {
	case opts.stdin:
		img, err = export.Read(stdin)
		if err != nil {
			return nil, errors.WrapPrefix(err, "standard input", 0)
		}
		log.Printf("Loaded %dx%d image from standard input", img.Width(), img.Height())
	case opts.input != "":
		img, err = export.Open(opts.input)
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded %dx%d image from %s", img.Width(), img.Height(), opts.input)
	default:
		w, h := cfg.Canvas.Width, cfg.Canvas.Height
		if opts.width > 0 {
			w = opts.width
		}
		if opts.height > 0 {
			h = opts.height
		}
		img, err = raster.NewBuffer(w, h)
		if err != nil {
			return nil, err
		}
		img.Fill(raster.White)
		log.Printf("Created blank %dx%d canvas", w, h)
	}
	if opts.hasInput() && (opts.width > 0 || opts.height > 0) {
		log.Println("Ignoring -width/-height: the canvas takes the input image's size")
	}

	c, err := state.NewCanvas(img)
	if err != nil {
		return nil, err
	}
	if c.Color, err = cfg.BrushColor(); err != nil {
		return nil, err
	}
	c.BrushStep = cfg.Brush.Step
	c.MaxBrush = cfg.Brush.Max
	c.SetBrushSize(cfg.Brush.Size)
	return c, nil
}

// newPicker returns nil when the configured command is unusable; the editor
// then reports that no picker is available.
func newPicker(cfg config.Config) ui.ColorSource {
	p, err := picker.New(cfg.Picker.Command)
	if err != nil {
		log.Printf("Color picker disabled: %v", err)
		return nil
	}
	if cfg.Picker.MaxRead > 0 {
		p.MaxRead = cfg.Picker.MaxRead
	}
	p.Timeout = time.Duration(cfg.Picker.Timeout)
	return p
}

func saveImage(opts *options, img *raster.Buffer, stdout io.Writer) error {
	switch {
	case opts.stdout:
		if err := export.Write(img, stdout); err != nil {
			return errors.WrapPrefix(err, "standard output", 0)
		}
	case opts.output != "":
		if err := export.Save(img, opts.output); err != nil {
			return err
		}
		log.Printf("Saved %dx%d image to %s", img.Width(), img.Height(), opts.output)
	default:
		log.Println("No output given; discarding the image")
	}
	return nil
}

func report(err error, debug bool) {
	var stack *errors.Error
	if debug && errors.As(err, &stack) {
		fmt.Fprintln(os.Stderr, stack.ErrorStack())
		return
	}
	log.Printf("Error: %v", err)
}
