package iocache

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/oceanplan/sizecard/schema"
)

// Global Manager instance for main logic.
var (
	Manager   = &ResultsStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitStores initializes the global manager with the results store.
// An empty backend leaves the store unset.
func InitStores(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		if backend == "" {
			return
		}
		store, err := NewResultsStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize results store: %w", err)
			return
		}

		Manager.Lock()
		defer Manager.Unlock()
		Manager.results = store
	})

	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.results != nil {
			_ = Manager.results.Close()
		}
	})
}

// ClearResults removes every stored result for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the results and migration tables.
// For NoneBackend, it does nothing.
func ClearResults(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return clearSQLTables("mysql", connStr, resultsTable, migrationsTable)

	case schema.PostgreSQLBackend:
		return clearSQLTables("pgx", connStr, resultsTable, migrationsTable)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported results backend for clearing: %s", backend)
	}
}

// clearSQLTables connects to the SQL database and drops the tables that exist.
func clearSQLTables(driverName, connStr string, tableNames ...string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	for _, tableName := range tableNames {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName)
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", tableName, err)
		}
	}

	return nil
}
