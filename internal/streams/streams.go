// Package streams wraps an output stream with terminal detection.
package streams

import (
	"io"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

type fder interface {
	Fd() uintptr
}

// Out is an output stream that knows whether a terminal is attached.
type Out struct {
	out        io.Writer
	isTerminal bool
}

// NewOut returns a new Out from an io.Writer.
func NewOut(w io.Writer) *Out {
	o := &Out{out: w}
	if f, ok := w.(fder); ok {
		fd := f.Fd()
		o.isTerminal = term.IsTerminal(int(fd)) || isatty.IsCygwinTerminal(fd)
	}
	return o
}

func (o *Out) Write(p []byte) (int, error) {
	return o.out.Write(p)
}

// IsTerminal returns true if this stream is connected to a terminal.
func (o *Out) IsTerminal() bool {
	return o.isTerminal
}

// SetIsTerminal overrides terminal detection.
func (o *Out) SetIsTerminal(isTerminal bool) {
	o.isTerminal = isTerminal
}
