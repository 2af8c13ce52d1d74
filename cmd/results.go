package cmd

import (
	"fmt"
	"os"

	"github.com/oceanplan/sizecard/internal/contract"
	"github.com/oceanplan/sizecard/internal/iocache"
	"github.com/oceanplan/sizecard/internal/results"
	"github.com/oceanplan/sizecard/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeConfigSetup loads the store backend settings without the full shared setup.
func storeConfigSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("store-backend"))
	connStr := viper.GetString("store-db-connect")
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", backend)
	}
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr
	return nil
}

// resultsSetupWrapper loads the store settings and opens the results store.
func resultsSetupWrapper(_ *cobra.Command, _ []string) error {
	if err := storeConfigSetup(); err != nil {
		return err
	}
	if err := iocache.InitStores(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return fmt.Errorf("failed to initialize results store: %w", err)
	}
	return nil
}

// storeConfigSetupWrapper loads the store settings for commands that manage the database directly.
func storeConfigSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeConfigSetup()
}

// sqliteFilePath returns the database file used by the sqlite backend.
func sqliteFilePath() string {
	if cfg.StoreDBConnect != "" {
		return cfg.StoreDBConnect
	}
	return contract.GetDBFilePath()
}

// resultsCmd focused on results store management.
var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Manage the store of precomputed report results",
	Long: `Manage the database that holds precomputed report results for the store source.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (in-memory)

Subcommands:
  import  - Load result JSON files from a directory
  status  - Show store statistics and connection info
  clear   - Remove all stored results
  migrate - Run database schema migrations`,
}

// resultsImportCmd loads result files into the store.
var resultsImportCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Import result JSON files into the results store",
	Long: `Import precomputed results laid out as <dir>/<function>.json or
<dir>/<sketchId>/<function>.json into the configured results store.

Examples:
  # Import into the default SQLite store
  sizecard results import ./results

  # Import into PostgreSQL
  SIZECARD_STORE_BACKEND=postgresql SIZECARD_STORE_DB_CONNECT="..." sizecard results import ./results`,
	Args:    cobra.ExactArgs(1),
	PreRunE: resultsSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		n, err := results.ImportDir(iocache.Manager.GetResultsStore(), args[0])
		if err != nil {
			contract.LogFatal("Failed to import results", err)
		}
		fmt.Printf("Imported %d results from %s.\n", n, args[0])
	},
}

// resultsStatusCmd shows results store status.
var resultsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display results store statistics and connection details",
	Long: `Show detailed information about the results store.

Displays:
- Backend type and connection status
- Total number of stored results and report functions
- Last and oldest entry timestamps`,
	PreRunE: resultsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetResultsStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get results status", err)
		}
		iocache.PrintResultsStatus(os.Stdout, status)
	},
}

// resultsClearCmd clears the results store.
var resultsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored results",
	Long: `Delete all stored results from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the results table`,
	PreRunE: storeConfigSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearResults(cfg.StoreBackend, sqliteFilePath(), cfg.StoreDBConnect); err != nil {
			contract.LogFatal("Failed to clear results", err)
		}
		fmt.Println("Results cleared successfully.")
	},
}

// resultsMigrateCmd runs database migrations for the results store.
var resultsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations for the results store",
	Long: `Apply or roll back schema migrations of the results store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  sizecard results migrate

  # Roll back all migrations
  sizecard results migrate --target-version 0`,
	PreRunE: storeConfigSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateResults(os.Stdout, cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to migrate results store", err)
		}
	},
}
