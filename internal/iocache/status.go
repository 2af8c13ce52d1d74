package iocache

import (
	"fmt"
	"io"

	"github.com/oceanplan/sizecard/schema"
)

// PrintResultsStatus prints results store status information.
func PrintResultsStatus(w io.Writer, status schema.ResultsStatus) {
	_, _ = fmt.Fprintf(w, "Results Backend: %s\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	_, _ = fmt.Fprintf(w, "Total Entries: %d\n", status.TotalEntries)
	_, _ = fmt.Fprintf(w, "Functions: %d\n", status.TotalFunctions)
	if status.TotalEntries > 0 {
		_, _ = fmt.Fprintf(w, "Last Entry: %s\n", status.LastEntryTime.Format("2006-01-02 15:04:05"))
		_, _ = fmt.Fprintf(w, "Oldest Entry: %s\n", status.OldestEntryTime.Format("2006-01-02 15:04:05"))
	}
}
