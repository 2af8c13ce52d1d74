package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/oceanplan/sizecard/internal/contract"
	"github.com/oceanplan/sizecard/internal/iocache"
	"github.com/oceanplan/sizecard/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// resultsManager is the global persistence manager instance.
var resultsManager contract.ResultsManager

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "sizecard",
	Short:              "Report how much of a planning area a sketch covers.",
	Long:               `SizeCard turns precomputed overlap results into a size report for a sketch or a sketch collection.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	setConfigFile()

	viper.SetEnvPrefix("SIZECARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("project", contract.DefaultProjectDir)
	viper.SetDefault("locale", contract.DefaultLocale)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("format", schema.CSVOut)
	viper.SetDefault("source", schema.FileSource)
	viper.SetDefault("results-dir", contract.DefaultResultsDir)
	viper.SetDefault("s3-region", contract.DefaultS3Region)
	viper.SetDefault("store-backend", schema.SQLiteBackend)
	viper.SetDefault("store-db-connect", "")
	viper.SetDefault("color", "yes")
	viper.SetDefault("emoji", "no")
}

// setConfigFile points viper at an explicit config file or the default search paths.
func setConfigFile() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		return
	}
	viper.SetConfigName(".sizecard")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")
}

// loadConfigFile handles config file loading logic common to all setup functions.
func loadConfigFile() error {
	setConfigFile()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ context.Context, _ *cobra.Command, args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := loadConfigFile(); err != nil {
		return err
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle positional arguments (which Viper doesn't do).
	input.SketchPathStr = ""
	if len(args) == 1 {
		input.SketchPathStr = args[0]
	}

	// 4. Run all validation and complex parsing.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	// 5. Only the store source reads through the persistence layer.
	if cfg.Source == schema.StoreSource {
		if err := iocache.InitStores(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
			return fmt.Errorf("failed to initialize persistence: %w", err)
		}
	}

	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetResultsManager sets the global results manager.
func SetResultsManager(mgr contract.ResultsManager) {
	resultsManager = mgr
}
