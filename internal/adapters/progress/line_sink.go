package progress

import (
	"context"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/deployergen/internal/usecase"
)

// LineSink drops progress events and prints info lines. Used for
// non-interactive runs where a spinner would only add noise.
type LineSink struct {
	out io.Writer
}

// NewLineSink creates a line sink writing to out
func NewLineSink(out io.Writer) *LineSink {
	return &LineSink{out: out}
}

func (l *LineSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {}

// Info prints an info message
func (l *LineSink) Info(message string) {
	color.New(color.FgCyan).Fprintln(l.out, message)
}

var _ usecase.ProgressSink = (*LineSink)(nil)
