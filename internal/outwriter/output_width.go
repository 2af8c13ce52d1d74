package outwriter

import (
	"os"

	"github.com/oceanplan/sizecard/internal/contract"
	"golang.org/x/term"
)

// getTermWidth returns the --width override, the detected terminal width or 80.
func getTermWidth(cfg *contract.Config) int {
	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return 80 // Conservative default for narrow terminals and CI
	}
	return detectedWidth
}

// GetMaxLabelWidth calculates the maximum width of the first (boundary or sketch name)
// column of a card table, given the number of other columns it shares the line with.
func GetMaxLabelWidth(cfg *contract.Config, otherColumns int) int {
	// Each metric column needs roughly 14 cells with borders and padding
	available := getTermWidth(cfg) - otherColumns*14 - 4
	if available < 12 {
		return 12
	}
	if available > 40 {
		return 40
	}
	return available
}
