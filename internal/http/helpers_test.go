package http

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/iBelieve/anki-bible-stats-server/internal/database"
	"github.com/iBelieve/anki-bible-stats-server/internal/faithstats"
)

// setupSources builds fixture databases for every source: a minimal Anki
// collection with one mature card, a KOReader statistics database with one
// Bible page read today, a prayer database with one session today, and an
// Arc export with one church visit.
func setupSources(t *testing.T) faithstats.Sources {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	nowMs := time.Now().UnixMilli()

	ankiPath := filepath.Join(dir, "collection.anki2")
	db, err := database.Open(ankiPath)
	require.NoError(t, err)
	stmts := []string{
		`CREATE TABLE decks (id INTEGER PRIMARY KEY, name TEXT)`,
		`CREATE TABLE notetypes (id INTEGER PRIMARY KEY, name TEXT)`,
		`CREATE TABLE notes (id INTEGER PRIMARY KEY, mid INTEGER, sfld TEXT)`,
		`CREATE TABLE cards (id INTEGER PRIMARY KEY, nid INTEGER, did INTEGER, ord INTEGER, queue INTEGER, ivl INTEGER)`,
		`CREATE TABLE revlog (id INTEGER PRIMARY KEY, cid INTEGER, time INTEGER, lastIvl INTEGER, ivl INTEGER)`,
		`INSERT INTO decks (id, name) VALUES (1, 'Bible` + "\x1f" + `Verses')`,
		`INSERT INTO notetypes (id, name) VALUES (100, 'Bible Verse')`,
		`INSERT INTO notes (id, mid, sfld) VALUES (1, 100, 'John 3:16')`,
		`INSERT INTO cards (id, nid, did, ord, queue, ivl) VALUES (1, 1, 1, 0, 2, 30)`,
	}
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	_, err = db.Exec(`INSERT INTO revlog (id, cid, time, lastIvl, ivl) VALUES (?, 1, 120000, 15, 30)`, nowMs)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	koPath := filepath.Join(dir, "statistics.sqlite3")
	db, err = database.Open(koPath)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE book (id INTEGER PRIMARY KEY, title TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE page_stat_data (id_book INTEGER, page INTEGER, start_time INTEGER, duration INTEGER)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO book (id, title) VALUES (1, 'ESV Bible')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO page_stat_data (id_book, page, start_time, duration) VALUES (1, 1, ?, 300)`, nowMs/1000)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	prayerPath := filepath.Join(dir, "prayer.db")
	db, err = database.Open(prayerPath)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE sessions (id INTEGER PRIMARY KEY, started_at INTEGER, duration_seconds INTEGER)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO sessions (started_at, duration_seconds) VALUES (?, 600)`, nowMs)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	arcPath := filepath.Join(dir, "arc-export")
	require.NoError(t, os.MkdirAll(filepath.Join(arcPath, "places"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(arcPath, "items"), 0o755))

	appleNow := float64(time.Now().Unix() - 978307200)
	writeFile(t, filepath.Join(arcPath, "metadata.json"), `{"schemaVersion":"1.0","stats":{"itemCount":1,"placeCount":1}}`)
	writeFile(t, filepath.Join(arcPath, "places", "00.json"),
		`[{"id":"p1","name":"Grace Church"}]`)
	writeFile(t, filepath.Join(arcPath, "items", "2024-01.json"),
		`[{"base":{"id":"i1","isVisit":true,"deleted":false,"startDate":`+jsonFloat(appleNow-7200)+`,"endDate":`+jsonFloat(appleNow-3600)+`},`+
			`"visit":{"itemId":"i1","placeId":"p1","latitude":30.27,"longitude":-97.74,"radiusMean":20.5,"radiusSD":4.1,"confirmedPlace":true,"uncertainPlace":false}}]`)

	return faithstats.Sources{
		AnkiDBPath:          ankiPath,
		KOReaderDBPath:      koPath,
		PrayerDBPath:        prayerPath,
		ArcExportPath:       arcPath,
		ReadingTitlePattern: "%bible%",
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func jsonFloat(f float64) string {
	data, _ := json.Marshal(f)
	return string(data)
}
