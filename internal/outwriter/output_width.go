package outwriter

import (
	"os"

	"github.com/angela-xuanye/MSDS-Colorado/internal/contract"
	"golang.org/x/term"
)

// fallbackWidth is used when the output is not a terminal.
const fallbackWidth = 120

// compactWidthThreshold is the terminal width below which the heatmap
// table drops the share percentages from its cells.
const compactWidthThreshold = 100

// terminalWidth returns the configured width override, or the detected
// terminal width, or the fallback.
func terminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackWidth
}
