package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/trebuchet-org/nounsgov/internal/config"
	"github.com/trebuchet-org/nounsgov/internal/usecase"
)

// SpinnerProgressReporter shows a spinner on stderr while data loads or a
// transaction is pending
type SpinnerProgressReporter struct {
	mu      sync.Mutex
	spinner *spinner.Spinner
	out     io.Writer
	stage   string
	started time.Time
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter
func NewSpinnerProgressReporter(out io.Writer) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		spinner: s,
		out:     out,
	}
}

// NewProgressSink picks the spinner for interactive terminals and a no-op
// sink when output is machine readable or stderr is not a terminal
func NewProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.JSON || cfg.YAML || cfg.NonInteractive || !isatty.IsTerminal(os.Stderr.Fd()) {
		return NewNopSink()
	}
	return NewSpinnerProgressReporter(os.Stderr)
}

// OnProgress starts the spinner for spinner events and stops it otherwise
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.Spinner {
		if event.Stage != r.stage {
			r.stage = event.Stage
			r.started = time.Now()
		}
		r.spinner.Suffix = " " + event.Message
		if elapsed := r.elapsed(); elapsed >= time.Second {
			r.spinner.Suffix += fmt.Sprintf(" (%s)", elapsed.Truncate(time.Second))
		}
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		return
	}

	if r.spinner.Active() {
		r.spinner.Stop()
	}
	r.stage = ""
}

// elapsed returns how long the current stage has been running. Callers
// hold r.mu.
func (r *SpinnerProgressReporter) elapsed() time.Duration {
	if r.stage == "" {
		return 0
	}
	return time.Since(r.started)
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.println(color.New(color.FgCyan), message)
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.println(color.New(color.FgRed), message)
}

// println pauses the spinner so the message is not overwritten
func (r *SpinnerProgressReporter) println(c *color.Color, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	c.Fprintln(r.out, message)

	if wasActive {
		r.spinner.Start()
	}
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
