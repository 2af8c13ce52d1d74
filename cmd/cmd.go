// Package cmd defines the command-line interface for sizecard.
package cmd

import (
	"github.com/oceanplan/sizecard/internal/contract"
	"github.com/oceanplan/sizecard/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the results subcommands to the parent results command
	resultsCmd.AddCommand(resultsImportCmd)
	resultsCmd.AddCommand(resultsStatusCmd)
	resultsCmd.AddCommand(resultsClearCmd)
	resultsCmd.AddCommand(resultsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("project", "p", contract.DefaultProjectDir, "Project directory with basic.json, metrics.json, precalc.json and geographies.json")
	rootCmd.PersistentFlags().StringP("geography", "g", "", "Geography ID to report against (default: the project's default boundary)")
	rootCmd.PersistentFlags().String("locale", contract.DefaultLocale, "Locale for labels and number formatting")
	rootCmd.PersistentFlags().String("priority", "", "Comma-separated class IDs shown first (overrides the default order)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("source", string(schema.FileSource), "Results source: file or store or s3")
	rootCmd.PersistentFlags().String("results-dir", contract.DefaultResultsDir, "Directory with precomputed results for the file source")
	rootCmd.PersistentFlags().String("s3-bucket", "", "Bucket holding precomputed results for the s3 source")
	rootCmd.PersistentFlags().String("s3-prefix", "", "Key prefix of precomputed results in the bucket")
	rootCmd.PersistentFlags().String("s3-region", contract.DefaultS3Region, "Region of the results bucket")
	rootCmd.PersistentFlags().String("s3-endpoint", "", "Custom endpoint for S3 compatible stores")
	rootCmd.PersistentFlags().Bool("s3-path-style", false, "Use path-style addressing for the results bucket")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Results store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("emoji", "no", "Enable emojis in status lines (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of downloadCmd to Viper
	downloadCmd.Flags().String("format", string(schema.CSVOut), "Download format: csv or json or parquet")
	if err := viper.BindPFlags(downloadCmd.Flags()); err != nil {
		contract.LogFatal("Error binding download flags", err)
	}

	// Bind all flags of resultsMigrateCmd to Viper
	resultsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(resultsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding results migrate flags", err)
	}
}
