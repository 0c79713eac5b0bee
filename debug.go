package panzoom

import (
	"fmt"
	"io"
	"os"
)

// debugOut is where debug diagnostics are written.
var debugOut io.Writer = os.Stderr

// SetDebugMode enables or disables debug mode. When enabled, dropped events
// and rejected updates are reported on stderr.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// debugf prints a diagnostic line when debug mode is on.
func (e *Engine) debugf(format string, args ...any) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[panzoom] "+format+"\n", args...)
}
