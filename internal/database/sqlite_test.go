package database

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func queryString(t *testing.T, db *sql.DB, query string, args ...any) string {
	t.Helper()
	var out string
	require.NoError(t, db.QueryRow(query, args...).Scan(&out))
	return out
}

func queryInt(t *testing.T, db *sql.DB, query string, args ...any) int64 {
	t.Helper()
	var out int64
	require.NoError(t, db.QueryRow(query, args...).Scan(&out))
	return out
}

func TestParseBookNameFunction(t *testing.T) {
	db := openTestDB(t)

	t.Run("extracts book names", func(t *testing.T) {
		assert.Equal(t, "Genesis", queryString(t, db, `SELECT parse_book_name('Genesis 1:1')`))
		assert.Equal(t, "2 Timothy", queryString(t, db, `SELECT parse_book_name('2 Timothy 3:16-17')`))
		assert.Equal(t, "Psalms", queryString(t, db, `SELECT parse_book_name('Psalm 23:1')`))
	})

	t.Run("returns empty string for unparsable references", func(t *testing.T) {
		assert.Equal(t, "", queryString(t, db, `SELECT parse_book_name('garbage')`))
	})

	t.Run("NULLIF wrapping yields NULL for unparsable references", func(t *testing.T) {
		var book sql.NullString
		err := db.QueryRow(`SELECT NULLIF(parse_book_name('garbage'), '')`).Scan(&book)
		require.NoError(t, err)
		assert.False(t, book.Valid)
	})
}

func TestCountVersesFunction(t *testing.T) {
	db := openTestDB(t)

	assert.Equal(t, int64(1), queryInt(t, db, `SELECT count_verses('Genesis 1:1')`))
	assert.Equal(t, int64(5), queryInt(t, db, `SELECT count_verses('Genesis 1:1-5')`))
	assert.Equal(t, int64(2), queryInt(t, db, `SELECT count_verses('Jude 24-25')`))
	assert.Equal(t, int64(4), queryInt(t, db, `SELECT count_verses('Colossians 1:9a-12')`))

	// Unparsable references degrade to one verse instead of failing the scan
	assert.Equal(t, int64(1), queryInt(t, db, `SELECT count_verses('Romans 8')`))
}

func TestDateFunctions(t *testing.T) {
	db := openTestDB(t)

	// Mon 2024-01-15 12:00 CST
	const middayMs = int64(1705341600000)
	// Mon 2024-01-15 02:00 CST, before the 4 AM rollover
	const earlyMs = int64(1705305600000)

	t.Run("date_str_from_ms applies rollover", func(t *testing.T) {
		assert.Equal(t, "2024-01-15", queryString(t, db, `SELECT date_str_from_ms(?)`, middayMs))
		assert.Equal(t, "2024-01-14", queryString(t, db, `SELECT date_str_from_ms(?)`, earlyMs))
	})

	t.Run("date_str_from_sec matches its ms counterpart", func(t *testing.T) {
		assert.Equal(t, "2024-01-15", queryString(t, db, `SELECT date_str_from_sec(?)`, middayMs/1000))
	})

	t.Run("week_str_from_ms maps to the week's Sunday", func(t *testing.T) {
		assert.Equal(t, "2024-01-14", queryString(t, db, `SELECT week_str_from_ms(?)`, middayMs))
	})

	t.Run("week_str_from_sec matches its ms counterpart", func(t *testing.T) {
		assert.Equal(t, "2024-01-14", queryString(t, db, `SELECT week_str_from_sec(?)`, middayMs/1000))
	})
}

func TestFunctionsInGroupByQuery(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`CREATE TABLE refs (sfld TEXT)`)
	require.NoError(t, err)

	refs := []string{
		"Genesis 1:1",
		"Genesis 1:1-5",
		"John 3:16",
		"not a reference",
	}
	for _, ref := range refs {
		_, err := db.Exec(`INSERT INTO refs (sfld) VALUES (?)`, ref)
		require.NoError(t, err)
	}

	rows, err := db.Query(`
		SELECT NULLIF(parse_book_name(sfld), '') AS book, SUM(count_verses(sfld))
		FROM refs
		GROUP BY book
		HAVING book IS NOT NULL
		ORDER BY book`)
	require.NoError(t, err)
	defer rows.Close()

	type result struct {
		book   string
		verses int64
	}
	var results []result
	for rows.Next() {
		var r result
		require.NoError(t, rows.Scan(&r.book, &r.verses))
		results = append(results, r)
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, []result{{"Genesis", 6}, {"John", 1}}, results)
}

func TestOpenReadOnly(t *testing.T) {
	t.Run("opens an existing database", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ro.db")

		rw, err := Open(path)
		require.NoError(t, err)
		_, err = rw.Exec(`CREATE TABLE t (x INTEGER)`)
		require.NoError(t, err)
		require.NoError(t, rw.Close())

		ro, err := OpenReadOnly(path)
		require.NoError(t, err)
		defer ro.Close()

		// Writes must be rejected
		_, err = ro.Exec(`INSERT INTO t (x) VALUES (1)`)
		assert.Error(t, err)
	})

	t.Run("fails on a missing database", func(t *testing.T) {
		_, err := OpenReadOnly(filepath.Join(t.TempDir(), "missing.db"))
		assert.Error(t, err)
	})
}
