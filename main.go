// main is the entry point of the sizecard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/oceanplan/sizecard/cmd"
	"github.com/oceanplan/sizecard/internal/iocache"
)

func main() {
	cmd.SetResultsManager(iocache.Manager)
	defer iocache.CloseStores()

	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "❌", err)
		iocache.CloseStores()
		os.Exit(1)
	}
}
