package cmd

import (
	"github.com/oceanplan/sizecard/core"
	"github.com/oceanplan/sizecard/internal/contract"
	"github.com/spf13/cobra"
)

// sizeCmd renders the size card of a sketch.
var sizeCmd = &cobra.Command{
	Use:   "size <sketch.json>",
	Short: "Show how much of the planning area a sketch covers.",
	Long: `Render the size card of a sketch or sketch collection.

Reads the boundaryAreaOverlap results of the sketch and compares them with the
precalculated area of the chosen geography. The card shows:
- Area within each boundary class and its share of the boundary
- Progress toward the class objective when one is set
- A per-sketch table for collections
- The sketch's attributes

Examples:
  # Size card in the terminal
  sizecard size sketches/north-reef.json --project ./project

  # Card against another geography, in Spanish
  sizecard size sketches/north-reef.json --geography lagoon --locale es

  # Card for a collection, read from the results store
  sizecard size sketches/network.json --source store --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSizeCard(rootCtx, cfg, resultsManager); err != nil {
			contract.LogFatal("Cannot render size card", err)
		}
	},
}
