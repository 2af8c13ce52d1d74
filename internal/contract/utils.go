package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Coverage label constants.
const (
	MetValue     = "Met"     // Target met
	PartialValue = "Partial" // Some coverage, target not met
	NoneValue    = "None"    // No coverage
)

// Color variables for console output.
var (
	TitleColor   = color.New(color.FgCyan, color.Bold) // TitleColor emphasises card and section titles.
	MetColor     = color.New(color.FgGreen)
	PartialColor = color.New(color.FgYellow)
	NoneColor    = color.New(color.FgWhite)
	GapColor     = color.New(color.FgRed, color.Bold) // GapColor marks cells without a baseline.
)

// GetPlainLabel returns a plain text coverage label for a ratio compared to its target.
// A target of zero or less means no objective is configured, so any coverage counts as met.
func GetPlainLabel(ratio, target float64) string {
	switch {
	case ratio <= 0:
		return NoneValue
	case target <= 0 || ratio >= target:
		return MetValue
	default:
		return PartialValue
	}
}

// GetColorLabel returns text coloured by the coverage label of ratio against target.
func GetColorLabel(text string, ratio, target float64) string {
	switch GetPlainLabel(ratio, target) {
	case MetValue:
		return MetColor.Sprint(text)
	case PartialValue:
		return PartialColor.Sprint(text)
	default:
		return NoneColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetDBFilePath returns the path to the SQLite DB file for results storage.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".sizecard_results.db"
	}
	return filepath.Join(homeDir, ".sizecard_results.db")
}

// TruncateText truncates text to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the ellipsis and at least one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// SplitList splits a comma separated flag value, dropping blank entries.
func SplitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
