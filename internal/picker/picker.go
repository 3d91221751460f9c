// Package picker asks an external program for a color. The program prints
// the color on standard output as 8 hex digits, RRGGBBAA.
package picker

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/go-errors/errors"
	"github.com/mattn/go-shellwords"
	"github.com/mitchellh/go-homedir"

	"pie/internal/raster"
)

// DefaultMaxRead bounds how much of the program's output is read.
const DefaultMaxRead = 16

var ErrNoCommand = errors.Errorf("no color picker command configured")

type Picker struct {
	Command []string
	MaxRead int
	// Timeout bounds how long Pick waits for the program. Zero waits
	// forever, so a hung program blocks the caller.
	Timeout time.Duration
}

// New parses a shell-style command line, e.g. `~/bin/pick --alpha`.
func New(command string) (*Picker, error) {
	args, err := shellwords.Parse(command)
	if err != nil {
		return nil, errors.Errorf("parse picker command %q: %w", command, err)
	}
	if len(args) == 0 {
		return nil, ErrNoCommand
	}
	args[0], err = homedir.Expand(args[0])
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return &Picker{Command: args, MaxRead: DefaultMaxRead}, nil
}

// Pick runs the program and parses what it prints. Surrounding whitespace,
// such as a trailing newline, is ignored.
func (p *Picker) Pick(ctx context.Context) (raster.Color, error) {
	if len(p.Command) == 0 {
		return raster.Color{}, ErrNoCommand
	}
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	maxRead := p.MaxRead
	if maxRead <= 0 {
		maxRead = DefaultMaxRead
	}
	out := &limitedBuffer{max: maxRead}
	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, p.Command[0], p.Command[1:]...)
	cmd.Stdout = out
	cmd.Stderr = &stderr
	// children of a killed picker may keep the pipe open
	cmd.WaitDelay = time.Second

	if err := cmd.Run(); err != nil {
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			return raster.Color{}, errors.Errorf("%s: %w: %s", p.Command[0], err, msg)
		}
		return raster.Color{}, errors.Errorf("%s: %w", p.Command[0], err)
	}

	return raster.ParseHex(string(bytes.TrimSpace(out.buf.Bytes())))
}

// limitedBuffer keeps the first max bytes written to it and discards the
// rest, so a chatty program never blocks on a full pipe.
type limitedBuffer struct {
	buf bytes.Buffer
	max int
}

func (b *limitedBuffer) Write(p []byte) (int, error) {
	if room := b.max - b.buf.Len(); room > 0 {
		b.buf.Write(p[:min(room, len(p))])
	}
	return len(p), nil
}
