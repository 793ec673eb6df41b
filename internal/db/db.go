package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"wealth-projector/internal/logger"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	sql *sql.DB
}

func dbPath() string {
	// Prefer working directory so the DB is stable across go run / go build.
	// Fall back to executable directory for deployed builds.
	if wd, err := os.Getwd(); err == nil {
		return filepath.Join(wd, "projector.db")
	}
	exe, _ := os.Executable()
	return filepath.Join(filepath.Dir(exe), "projector.db")
}

// Open opens (or creates) the SQLite database at its default location and
// runs migrations.
func Open() (*DB, error) {
	return OpenAt(dbPath())
}

// OpenAt opens (or creates) a SQLite database at the given path and runs
// migrations. ":memory:" yields a throwaway in-memory database.
func OpenAt(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}
	d := &DB{sql: sqlDB}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	logger.Success("DB", fmt.Sprintf("Opened %s", path))
	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

// Computed projections are deliberately not persisted; the engine is pure and
// cheap, so only the inputs (plan settings and positions) live here.
func (d *DB) migrate() error {
	version := 0
	d.sql.QueryRow("SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)

	if version < 1 {
		_, err := d.sql.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS config (
				key   TEXT PRIMARY KEY,
				value TEXT NOT NULL
			);

			CREATE TABLE IF NOT EXISTS positions (
				id                TEXT PRIMARY KEY,
				symbol            TEXT NOT NULL,
				asset_class       TEXT NOT NULL,
				expected_return   REAL NOT NULL,
				investment_amount REAL NOT NULL,
				added_at          TEXT NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_positions_symbol ON positions(symbol);

			INSERT OR IGNORE INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
		logger.Info("DB", "Applied migration v1")
	}

	return nil
}
