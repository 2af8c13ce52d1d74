package iocache

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/oceanplan/sizecard/internal/contract"
	"github.com/oceanplan/sizecard/schema"
	_ "modernc.org/sqlite" // SQLite driver
)

// resultsTable is the name of the table holding result objects.
const resultsTable = "report_results"

// timeNow is swapped in tests.
var timeNow = time.Now

// ResultsStoreImpl handles durable storage of result objects using various database backends.
type ResultsStoreImpl struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
}

var _ contract.ResultsStore = &ResultsStoreImpl{} // Compile-time check

// driverFor returns the database/sql driver name of a backend.
func driverFor(backend schema.DatabaseBackend) (string, error) {
	switch backend {
	case schema.SQLiteBackend:
		return "sqlite", nil
	case schema.MySQLBackend:
		return "mysql", nil
	case schema.PostgreSQLBackend:
		return "pgx", nil
	default:
		return "", fmt.Errorf("unsupported results backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}
}

// openDB opens and pings the database of a backend. An empty SQLite connection
// string selects the default database file.
func openDB(backend schema.DatabaseBackend, connStr string) (*sql.DB, string, error) {
	driverName, err := driverFor(backend)
	if err != nil {
		return nil, "", err
	}
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetDBFilePath()
	}

	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s database: %w", backend, err)
	}
	if backend == schema.SQLiteBackend {
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}
	return db, driverName, nil
}

// NewResultsStore initializes and returns a new ResultsStore based on the backend type.
func NewResultsStore(backend schema.DatabaseBackend, connStr string) (contract.ResultsStore, error) {
	if backend == schema.NoneBackend {
		// Return a no-op store for a disabled results store
		return &ResultsStoreImpl{backend: backend}, nil
	}

	db, driverName, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(getCreateTableQuery(backend)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", resultsTable, err)
	}

	return &ResultsStoreImpl{
		db:         db,
		backend:    backend,
		driverName: driverName,
	}, nil
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
func getCreateTableQuery(backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return `
			CREATE TABLE IF NOT EXISTS report_results (
				function_name VARCHAR(255) NOT NULL,
				sketch_id VARCHAR(255) NOT NULL,
				result_json LONGBLOB NOT NULL,
				updated_at BIGINT NOT NULL,
				PRIMARY KEY (function_name, sketch_id)
			);`

	case schema.PostgreSQLBackend:
		return `
			CREATE TABLE IF NOT EXISTS report_results (
				function_name TEXT NOT NULL,
				sketch_id TEXT NOT NULL,
				result_json BYTEA NOT NULL,
				updated_at BIGINT NOT NULL,
				PRIMARY KEY (function_name, sketch_id)
			);`

	default: // SQLite
		return `
			CREATE TABLE IF NOT EXISTS report_results (
				function_name TEXT NOT NULL,
				sketch_id TEXT NOT NULL,
				result_json BLOB NOT NULL,
				updated_at INTEGER NOT NULL,
				PRIMARY KEY (function_name, sketch_id)
			);`
	}
}

// Get retrieves the result object of a function for a sketch. A missing row is (nil, nil).
func (rs *ResultsStoreImpl) Get(functionName, sketchID string) ([]byte, error) {
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT result_json FROM report_results WHERE function_name = %s AND sketch_id = %s`,
		rs.placeholder(1), rs.placeholder(2))

	var value []byte
	err := rs.db.QueryRow(query, functionName, sketchID).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read result %s/%s: %w", functionName, sketchID, err)
	}
	return value, nil
}

// Put inserts or replaces the result object of a function for a sketch.
func (rs *ResultsStoreImpl) Put(functionName, sketchID string, result []byte) error {
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return nil
	}
	_, err := rs.db.Exec(rs.getUpsertQuery(), functionName, sketchID, result, timeNow().Unix())
	return err
}

// placeholder returns the n-th parameter placeholder for the backend.
func (rs *ResultsStoreImpl) placeholder(n int) string {
	if rs.backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// getUpsertQuery returns the UPSERT query for the backend.
func (rs *ResultsStoreImpl) getUpsertQuery() string {
	switch rs.backend {
	case schema.MySQLBackend:
		return `INSERT INTO report_results (function_name, sketch_id, result_json, updated_at) VALUES (?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE result_json = new.result_json, updated_at = new.updated_at`

	case schema.PostgreSQLBackend:
		return `INSERT INTO report_results (function_name, sketch_id, result_json, updated_at) VALUES ($1, $2, $3, $4)
			ON CONFLICT (function_name, sketch_id) DO UPDATE SET result_json = EXCLUDED.result_json, updated_at = EXCLUDED.updated_at`

	default: // SQLite
		return `INSERT OR REPLACE INTO report_results (function_name, sketch_id, result_json, updated_at) VALUES (?, ?, ?, ?)`
	}
}

// Close closes the underlying DB connection.
func (rs *ResultsStoreImpl) Close() error {
	if rs.db != nil {
		return rs.db.Close()
	}
	return nil
}

// GetStatus returns status information about the results store.
func (rs *ResultsStoreImpl) GetStatus() (schema.ResultsStatus, error) {
	status := schema.ResultsStatus{
		Backend:   string(rs.backend),
		Connected: rs.db != nil,
	}

	if rs.backend == schema.NoneBackend || rs.db == nil {
		return status, nil
	}

	row := rs.db.QueryRow(`SELECT COUNT(*), COUNT(DISTINCT function_name) FROM report_results`)
	if err := row.Scan(&status.TotalEntries, &status.TotalFunctions); err != nil {
		return status, fmt.Errorf("failed to get total entries: %w", err)
	}

	if status.TotalEntries == 0 {
		return status, nil
	}

	var lastTs, oldestTs int64
	row = rs.db.QueryRow(`SELECT MAX(updated_at), MIN(updated_at) FROM report_results`)
	if err := row.Scan(&lastTs, &oldestTs); err != nil {
		return status, fmt.Errorf("failed to get entry times: %w", err)
	}
	status.LastEntryTime = time.Unix(lastTs, 0)
	status.OldestEntryTime = time.Unix(oldestTs, 0)

	return status, nil
}
