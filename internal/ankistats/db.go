// Package ankistats reads Bible memorization statistics out of an Anki
// collection database. Cards live in a dedicated "Bible::Verses" deck with a
// "Bible Verse" note type whose sort field is a Scripture reference; the
// parse_book_name and count_verses scalar functions fold those references
// into per-book aggregates inside SQL.
package ankistats

import (
	"database/sql"
	"fmt"

	"github.com/iBelieve/anki-bible-stats-server/internal/bible"
	"github.com/iBelieve/anki-bible-stats-server/internal/database"
	"github.com/iBelieve/anki-bible-stats-server/internal/dateutil"
)

// Anki queue type constants.
// See https://github.com/ankitects/anki/blob/76d3237139b3e73b98f5a5b4dfeeeea2f0554644/pylib/anki/consts.py#L22C1-L29
const (
	queueManuallyBuried  = -3
	queueSiblingBuried   = -2
	queueSuspended       = -1
	queueNew             = 0
	queueLearning        = 1
	queueReview          = 2
	queueDayLearnRelearn = 3
)

// matureIntervalDays is Anki's threshold: a card with a review interval of at
// least 21 days counts as mature.
const matureIntervalDays = 21

// unitSeparator is the character Anki uses between deck name segments.
const unitSeparator = "\x1f"

// deckName is the deck holding Bible verse cards ("Bible::Verses" in the UI).
var deckName = "Bible" + unitSeparator + "Verses"

// noteTypeName is the note type whose sort field holds the verse reference.
const noteTypeName = "Bible Verse"

// OpenDatabase opens an Anki collection database in read-only mode with the
// reference-parsing scalar functions registered.
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := database.OpenReadOnly(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Anki database: %w", err)
	}
	return db, nil
}

// DeckID looks up the ID of the Bible verses deck.
func DeckID(db *sql.DB) (int64, error) {
	var id int64
	err := db.QueryRow("SELECT id FROM decks WHERE LOWER(name) = LOWER(?)", deckName).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to find deck %q: %w", "Bible::Verses", err)
	}
	return id, nil
}

// ModelID looks up the ID of the Bible verse note type.
func ModelID(db *sql.DB) (int64, error) {
	var id int64
	err := db.QueryRow("SELECT id FROM notetypes WHERE LOWER(name) = LOWER(?)", noteTypeName).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to find note type %q: %w", noteTypeName, err)
	}
	return id, nil
}

// AllBooksStats gets statistics for every Bible book in a single GROUP BY
// query. Cards whose reference cannot be parsed into a book name group under
// NULL and are dropped by the HAVING clause.
func AllBooksStats(db *sql.DB, deckID, modelID int64) (map[string]BookStats, error) {
	query := fmt.Sprintf(`
		SELECT
			NULLIF(parse_book_name(sfld), '') AS book,
			SUM(CASE WHEN queue IN (%[1]d,%[2]d,%[3]d) AND ivl >= %[4]d THEN 1 ELSE 0 END) AS mature_passages,
			SUM(CASE WHEN queue IN (%[5]d,%[6]d) OR
			          (queue IN (%[1]d,%[2]d,%[3]d) AND ivl < %[4]d) THEN 1 ELSE 0 END) AS young_passages,
			SUM(CASE WHEN queue = %[7]d THEN 1 ELSE 0 END) AS unseen_passages,
			SUM(CASE WHEN queue < %[7]d THEN 1 ELSE 0 END) AS suspended_passages,
			SUM(CASE WHEN queue IN (%[1]d,%[2]d,%[3]d) AND ivl >= %[4]d THEN count_verses(sfld) ELSE 0 END) AS mature_verses,
			SUM(CASE WHEN queue IN (%[5]d,%[6]d) OR
			          (queue IN (%[1]d,%[2]d,%[3]d) AND ivl < %[4]d) THEN count_verses(sfld) ELSE 0 END) AS young_verses,
			SUM(CASE WHEN queue = %[7]d THEN count_verses(sfld) ELSE 0 END) AS unseen_verses,
			SUM(CASE WHEN queue < %[7]d THEN count_verses(sfld) ELSE 0 END) AS suspended_verses
		FROM cards
		JOIN notes ON notes.id = cards.nid
		WHERE ord = 0 AND mid = ? AND did = ?
		GROUP BY book
		HAVING book IS NOT NULL`,
		queueReview, queueSiblingBuried, queueManuallyBuried, matureIntervalDays,
		queueLearning, queueDayLearnRelearn, queueNew)

	rows, err := db.Query(query, modelID, deckID)
	if err != nil {
		return nil, fmt.Errorf("failed to query book stats: %w", err)
	}
	defer rows.Close()

	books := make(map[string]BookStats)
	for rows.Next() {
		var s BookStats
		err := rows.Scan(&s.Book,
			&s.MaturePassages, &s.YoungPassages, &s.UnseenPassages, &s.SuspendedPassages,
			&s.MatureVerses, &s.YoungVerses, &s.UnseenVerses, &s.SuspendedVerses)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book stats: %w", err)
		}
		books[s.Book] = s
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book stats: %w", err)
	}

	return books, nil
}

// studyMinutes sums revlog review time for the deck between two millisecond
// timestamps. Revlog IDs are epoch milliseconds.
func studyMinutes(db *sql.DB, deckID, startMs, endMs int64) (float64, error) {
	var totalMs int64
	err := db.QueryRow(`
		SELECT COALESCE(SUM(r.time), 0)
		FROM revlog r
		JOIN cards c ON c.id = r.cid
		WHERE c.did = ? AND r.id >= ? AND r.id < ?`,
		deckID, startMs, endMs).Scan(&totalMs)
	if err != nil {
		return 0, fmt.Errorf("failed to query study time: %w", err)
	}
	return float64(totalMs) / 60000.0, nil
}

// passageProgress counts passages that matured and that were lost between two
// millisecond timestamps, based on review interval transitions in the revlog.
func passageProgress(db *sql.DB, deckID, modelID, startMs, endMs int64) (matured, lost int64, err error) {
	query := fmt.Sprintf(`
		SELECT
			COUNT(CASE WHEN r.lastIvl < %[1]d AND r.ivl >= %[1]d THEN 1 END) AS matured,
			COUNT(CASE WHEN r.lastIvl >= %[1]d AND r.ivl < %[1]d THEN 1 END) AS lost
		FROM revlog r
		JOIN cards c ON c.id = r.cid
		JOIN notes n ON n.id = c.nid
		WHERE c.did = ? AND n.mid = ? AND c.ord = 0
			AND c.queue != %d
			AND r.id >= ? AND r.id < ?`,
		matureIntervalDays, queueSuspended)

	err = db.QueryRow(query, deckID, modelID, startMs, endMs).Scan(&matured, &lost)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query passage progress: %w", err)
	}
	return matured, lost, nil
}

// TodayStudyMinutes returns the total study time for today in minutes.
func TodayStudyMinutes(db *sql.DB) (float64, error) {
	todayStartMs, err := dateutil.TodayStartMs()
	if err != nil {
		return 0, err
	}
	deckID, err := DeckID(db)
	if err != nil {
		return 0, err
	}

	var totalMs int64
	err = db.QueryRow(`
		SELECT COALESCE(SUM(r.time), 0)
		FROM revlog r
		JOIN cards c ON c.id = r.cid
		WHERE c.did = ? AND r.id >= ?`,
		deckID, todayStartMs).Scan(&totalMs)
	if err != nil {
		return 0, fmt.Errorf("failed to query today's study time: %w", err)
	}
	return float64(totalMs) / 60000.0, nil
}

// Last30DaysStats returns study time and passage progress for each of the
// last 30 days, oldest first.
func Last30DaysStats(db *sql.DB) ([]DayStats, error) {
	deckID, err := DeckID(db)
	if err != nil {
		return nil, err
	}
	modelID, err := ModelID(db)
	if err != nil {
		return nil, err
	}

	results := make([]DayStats, 0, 30)
	var cumulative int64

	for offset := 29; offset >= 0; offset-- {
		startMs, endMs, date, err := dateutil.DayBoundaries(offset)
		if err != nil {
			return nil, err
		}

		minutes, err := studyMinutes(db, deckID, startMs, endMs)
		if err != nil {
			return nil, err
		}
		matured, lost, err := passageProgress(db, deckID, modelID, startMs, endMs)
		if err != nil {
			return nil, err
		}
		cumulative += matured - lost

		results = append(results, DayStats{
			Date:               date,
			Minutes:            minutes,
			MaturedPassages:    matured,
			LostPassages:       lost,
			CumulativePassages: cumulative,
		})
	}

	return results, nil
}

// Last12WeeksStats returns study time and passage progress for each of the
// last 12 weeks, oldest first.
func Last12WeeksStats(db *sql.DB) ([]WeekStats, error) {
	deckID, err := DeckID(db)
	if err != nil {
		return nil, err
	}
	modelID, err := ModelID(db)
	if err != nil {
		return nil, err
	}

	results := make([]WeekStats, 0, 12)
	var cumulative int64

	for offset := 11; offset >= 0; offset-- {
		startMs, endMs, weekStart, err := dateutil.WeekBoundaries(offset)
		if err != nil {
			return nil, err
		}

		minutes, err := studyMinutes(db, deckID, startMs, endMs)
		if err != nil {
			return nil, err
		}
		matured, lost, err := passageProgress(db, deckID, modelID, startMs, endMs)
		if err != nil {
			return nil, err
		}
		cumulative += matured - lost

		results = append(results, WeekStats{
			WeekStart:          weekStart,
			Minutes:            minutes,
			MaturedPassages:    matured,
			LostPassages:       lost,
			CumulativePassages: cumulative,
		})
	}

	return results, nil
}

// AllReferences returns every distinct verse reference in the deck, sorted
// alphabetically. Used by canon validation tooling.
func AllReferences(db *sql.DB, deckID, modelID int64) ([]string, error) {
	rows, err := db.Query(`
		SELECT DISTINCT n.sfld
		FROM notes n
		JOIN cards c ON c.nid = n.id
		WHERE c.did = ? AND n.mid = ?
		ORDER BY n.sfld`, deckID, modelID)
	if err != nil {
		return nil, fmt.Errorf("failed to query references: %w", err)
	}
	defer rows.Close()

	var references []string
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, fmt.Errorf("failed to scan reference: %w", err)
		}
		references = append(references, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating references: %w", err)
	}

	return references, nil
}

// GetBibleStats retrieves per-book statistics from an Anki database and
// arranges them by testament in canon order. Books with no cards get zero
// rows so reports always show all 66 books.
func GetBibleStats(dbPath string) (BibleStats, error) {
	db, err := OpenDatabase(dbPath)
	if err != nil {
		return BibleStats{}, err
	}
	defer db.Close()

	deckID, err := DeckID(db)
	if err != nil {
		return BibleStats{}, err
	}
	modelID, err := ModelID(db)
	if err != nil {
		return BibleStats{}, err
	}

	books, err := AllBooksStats(db, deckID, modelID)
	if err != nil {
		return BibleStats{}, err
	}

	stats := NewBibleStats()
	for _, book := range bible.OldTestament {
		s := books[book]
		s.Book = book
		stats.OldTestament.AddBook(s)
	}
	for _, book := range bible.NewTestament {
		s := books[book]
		s.Book = book
		stats.NewTestament.AddBook(s)
	}

	return stats, nil
}

// GetAllReferences returns every distinct verse reference in the deck,
// sorted alphabetically.
func GetAllReferences(dbPath string) ([]string, error) {
	db, err := OpenDatabase(dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	deckID, err := DeckID(db)
	if err != nil {
		return nil, err
	}
	modelID, err := ModelID(db)
	if err != nil {
		return nil, err
	}

	return AllReferences(db, deckID, modelID)
}

// GetTodayStudyMinutes returns today's study time in minutes.
func GetTodayStudyMinutes(dbPath string) (float64, error) {
	db, err := OpenDatabase(dbPath)
	if err != nil {
		return 0, err
	}
	defer db.Close()
	return TodayStudyMinutes(db)
}

// GetLast30DaysStats returns per-day stats for the last 30 days.
func GetLast30DaysStats(dbPath string) ([]DayStats, error) {
	db, err := OpenDatabase(dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return Last30DaysStats(db)
}

// GetLast12WeeksStats returns per-week stats for the last 12 weeks.
func GetLast12WeeksStats(dbPath string) ([]WeekStats, error) {
	db, err := OpenDatabase(dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return Last12WeeksStats(db)
}
