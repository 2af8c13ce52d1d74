package cmd

import (
	"github.com/oceanplan/sizecard/core"
	"github.com/oceanplan/sizecard/internal/contract"
	"github.com/oceanplan/sizecard/internal/outwriter"
	"github.com/oceanplan/sizecard/schema"
	"github.com/spf13/cobra"
)

// downloadCmd exports the raw size metrics of a sketch.
var downloadCmd = &cobra.Command{
	Use:   "download <sketch.json>",
	Short: "Export the raw size metrics of a sketch.",
	Long: `Export the boundaryAreaOverlap metrics of a sketch unchanged.

Writes size.csv, size.json or size.parquet unless --output-file is given.

Examples:
  # CSV export (default)
  sizecard download sketches/north-reef.json

  # Parquet export to a chosen file
  sizecard download sketches/north-reef.json --format parquet --output-file reef.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.OutputFile == "" {
			cfg.OutputFile = outwriter.DownloadFileName(schema.SizeDownloadName, cfg.DownloadFormat)
		}
		if err := core.ExecuteDownload(rootCtx, cfg, resultsManager); err != nil {
			contract.LogFatal("Cannot export size metrics", err)
		}
	},
}
