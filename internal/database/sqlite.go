// Package database opens the external source databases (Anki, KOReader,
// Proseuche) read-only through a SQLite driver that carries the custom scalar
// functions the aggregation queries depend on.
package database

import (
	"database/sql"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/iBelieve/anki-bible-stats-server/internal/bible"
	"github.com/iBelieve/anki-bible-stats-server/internal/dateutil"
)

// DriverName is the database/sql driver carrying the custom scalar functions.
const DriverName = "sqlite3_stats"

func init() {
	sql.Register(DriverName, &sqlite3.SQLiteDriver{
		ConnectHook: registerFunctions,
	})
}

// registerFunctions installs the scalar functions on a new connection. All of
// them are registered pure (deterministic), which lets SQLite memoize results
// within a statement, so each must always return the same output for the same
// input.
//
// The parse functions use their error-swallowing forms: a malformed reference
// degrades that row (excluded from book grouping, counted as one verse)
// instead of aborting the whole aggregate scan.
func registerFunctions(conn *sqlite3.SQLiteConn) error {
	// parse_book_name returns '' for unparsable references; queries wrap it
	// in NULLIF(..., '') so grouping sees NULL.
	if err := conn.RegisterFunc("parse_book_name", func(reference string) string {
		name, ok := bible.ParseBookName(reference)
		if !ok {
			return ""
		}
		return name
	}, true); err != nil {
		return fmt.Errorf("failed to register parse_book_name: %w", err)
	}

	if err := conn.RegisterFunc("count_verses", bible.CountVerses, true); err != nil {
		return fmt.Errorf("failed to register count_verses: %w", err)
	}

	if err := conn.RegisterFunc("date_str_from_ms", dateutil.DateStringFromMs, true); err != nil {
		return fmt.Errorf("failed to register date_str_from_ms: %w", err)
	}

	if err := conn.RegisterFunc("date_str_from_sec", func(sec int64) (string, error) {
		return dateutil.DateStringFromMs(sec * 1000)
	}, true); err != nil {
		return fmt.Errorf("failed to register date_str_from_sec: %w", err)
	}

	if err := conn.RegisterFunc("week_str_from_ms", dateutil.WeekStringFromMs, true); err != nil {
		return fmt.Errorf("failed to register week_str_from_ms: %w", err)
	}

	if err := conn.RegisterFunc("week_str_from_sec", func(sec int64) (string, error) {
		return dateutil.WeekStringFromMs(sec * 1000)
	}, true); err != nil {
		return fmt.Errorf("failed to register week_str_from_sec: %w", err)
	}

	return nil
}

// OpenReadOnly opens a SQLite database in read-only mode with the custom
// scalar functions available.
func OpenReadOnly(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", path)
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database %s read-only: %w", path, err)
	}
	return db, nil
}

// Open opens a SQLite database read-write with the custom scalar functions
// available. Used by tests to build fixture databases; the application itself
// only reads.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	return db, nil
}
