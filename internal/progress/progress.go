// Package progress provides terminal capability detection and a spinner
// shown while the generation collaborator is working. On non-TTY output
// the spinner degrades to a plain printed line.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// TerminalCapabilities describes what the output terminal supports.
type TerminalCapabilities struct {
	IsTTY         bool
	SupportsColor bool
}

// DetectCapabilities inspects stdout and the environment.
func DetectCapabilities() TerminalCapabilities {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	supportsColor := isTTY && os.Getenv("NO_COLOR") == "" && os.Getenv("TERM") != "dumb"
	return TerminalCapabilities{IsTTY: isTTY, SupportsColor: supportsColor}
}

// Reporter is the progress surface strategies depend on.
type Reporter interface {
	// Start begins showing progress with the given message.
	Start(message string)
	// Stop clears the current progress indicator.
	Stop()
}

// Display shows spinner-based progress on TTYs and plain lines otherwise.
type Display struct {
	caps TerminalCapabilities
	out  io.Writer
	spin *spinner.Spinner
}

// NewDisplay creates a display writing plain-mode output to out.
func NewDisplay(caps TerminalCapabilities, out io.Writer) *Display {
	return &Display{caps: caps, out: out}
}

// Start begins a spinner with the message as suffix. Non-TTY mode just
// prints the message.
func (d *Display) Start(message string) {
	if !d.caps.IsTTY {
		fmt.Fprintln(d.out, message)
		return
	}
	d.Stop()
	// Spinner writes to stderr so piped stdout stays clean.
	d.spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	d.spin.Writer = os.Stderr
	d.spin.Suffix = " " + message
	d.spin.Start()
}

// Stop halts the spinner if one is running.
func (d *Display) Stop() {
	if d.spin != nil {
		d.spin.Stop()
		d.spin = nil
	}
}

// Silent is a no-op Reporter for tests and --quiet style callers.
type Silent struct{}

func (Silent) Start(string) {}
func (Silent) Stop()        {}
