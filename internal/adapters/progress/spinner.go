package progress

import (
	"context"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/deployergen/internal/usecase"
)

// SpinnerSink shows a spinner while contracts load and render
type SpinnerSink struct {
	spinner *spinner.Spinner
	out     io.Writer
	stage   string
}

// NewSpinnerSink creates a spinner sink writing to out. The spinner stays
// silent when out is not a terminal.
func NewSpinnerSink(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{
		spinner: s,
		out:     out,
	}
}

// OnProgress handles progress events
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.stage = event.Stage

	if event.Stage == usecase.StageCompleted || !event.Spinner {
		if r.spinner.Active() {
			r.spinner.Stop()
		}
		return
	}

	r.spinner.Suffix = " " + event.Message
	if !r.spinner.Active() {
		r.spinner.Start()
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.printPaused(color.New(color.FgCyan), message)
}

// Stage returns the last reported stage
func (r *SpinnerSink) Stage() string {
	return r.stage
}

func (r *SpinnerSink) printPaused(c *color.Color, message string) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	c.Fprintln(r.out, message)

	if wasActive {
		r.spinner.Start()
	}
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
