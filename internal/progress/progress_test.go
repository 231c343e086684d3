package progress

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayNonTTYPrintsPlainLines(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	d := NewDisplay(TerminalCapabilities{IsTTY: false}, &out)

	d.Start("Generating RD_BUDGET...")
	d.Stop()
	d.Start("Generating RISK_FACTORS...")
	d.Stop()

	assert.Equal(t, "Generating RD_BUDGET...\nGenerating RISK_FACTORS...\n", out.String())
}

func TestDisplayStopWithoutStart(t *testing.T) {
	t.Parallel()

	d := NewDisplay(TerminalCapabilities{}, &strings.Builder{})
	assert.NotPanics(t, d.Stop)
}

func TestSilentIsNoOp(t *testing.T) {
	t.Parallel()

	var s Silent
	assert.NotPanics(t, func() {
		s.Start("anything")
		s.Stop()
	})
}
