package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/go-errors/errors"
)

const usageHeader = `pie - personal image editor

Usage: pie [-i file | -stdin] [-o file | -stdout] [-width n -height n]

Without an input a blank white canvas is created. The image is written when
the window is closed; without an output the edit is discarded.

`

type options struct {
	input      string
	output     string
	stdin      bool
	stdout     bool
	width      int // zero means the configured default
	height     int
	configPath string
	debug      bool
}

func (o *options) hasInput() bool  { return o.input != "" || o.stdin }
func (o *options) hasOutput() bool { return o.output != "" || o.stdout }

// parseOptions parses the command line. It returns flag.ErrHelp for -h.
func parseOptions(args []string, stderr io.Writer) (*options, error) {
	var o options
	fs := flag.NewFlagSet("pie", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageHeader)
		fs.PrintDefaults()
	}
	fs.StringVar(&o.input, "i", "", "read the image from `file`")
	fs.StringVar(&o.output, "o", "", "write the PNG to `file`")
	fs.BoolVar(&o.stdin, "stdin", false, "read the image from standard input")
	fs.BoolVar(&o.stdout, "stdout", false, "write the PNG to standard output")
	fs.IntVar(&o.width, "width", 0, "width of a new blank canvas (default from config)")
	fs.IntVar(&o.height, "height", 0, "height of a new blank canvas (default from config)")
	fs.StringVar(&o.configPath, "config", "", "read settings from `file` instead of ~/.config/pie/config.toml")
	fs.BoolVar(&o.debug, "debug", false, "print stack traces with errors")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected argument %q", fs.Arg(0))
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	switch {
	case set["i"] && o.input == "":
		return nil, errors.Errorf("-i needs a file name")
	case set["o"] && o.output == "":
		return nil, errors.Errorf("-o needs a file name")
	case o.input != "" && o.stdin:
		return nil, errors.Errorf("-i and -stdin are mutually exclusive")
	case o.output != "" && o.stdout:
		return nil, errors.Errorf("-o and -stdout are mutually exclusive")
	case set["width"] && o.width < 1:
		return nil, errors.Errorf("-width must be positive, got %d", o.width)
	case set["height"] && o.height < 1:
		return nil, errors.Errorf("-height must be positive, got %d", o.height)
	}
	return &o, nil
}
