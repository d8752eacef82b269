package swipe

import (
	"fmt"
	"os"
)

// debugf prints a "[swipe]" prefixed line to stderr when enabled is true.
// Both Element.SetDebug and Config.Debug route through here.
func debugf(enabled bool, format string, args ...any) {
	if !enabled {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[swipe] "+format+"\n", args...)
}
