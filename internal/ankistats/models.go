package ankistats

// BookStats holds memorization statistics for a single Bible book. Passage
// counts tally flashcards; verse counts weight each card by the number of
// verses its reference spans.
type BookStats struct {
	Book              string `json:"book"`
	MaturePassages    int64  `json:"mature_passages"`
	YoungPassages     int64  `json:"young_passages"`
	UnseenPassages    int64  `json:"unseen_passages"`
	SuspendedPassages int64  `json:"suspended_passages"`
	MatureVerses      int64  `json:"mature_verses"`
	YoungVerses       int64  `json:"young_verses"`
	UnseenVerses      int64  `json:"unseen_verses"`
	SuspendedVerses   int64  `json:"suspended_verses"`
}

// TotalPassages sums passage counts across all card states.
func (s *BookStats) TotalPassages() int64 {
	return s.MaturePassages + s.YoungPassages + s.UnseenPassages + s.SuspendedPassages
}

// TotalVerses sums verse counts across all card states.
func (s *BookStats) TotalVerses() int64 {
	return s.MatureVerses + s.YoungVerses + s.UnseenVerses + s.SuspendedVerses
}

// AggregateStats rolls up BookStats for a collection of books (a testament).
type AggregateStats struct {
	Label             string      `json:"label"`
	MaturePassages    int64       `json:"mature_passages"`
	YoungPassages     int64       `json:"young_passages"`
	UnseenPassages    int64       `json:"unseen_passages"`
	SuspendedPassages int64       `json:"suspended_passages"`
	MatureVerses      int64       `json:"mature_verses"`
	YoungVerses       int64       `json:"young_verses"`
	UnseenVerses      int64       `json:"unseen_verses"`
	SuspendedVerses   int64       `json:"suspended_verses"`
	BookStats         []BookStats `json:"book_stats"`
}

// NewAggregateStats creates an empty aggregate with the given label.
func NewAggregateStats(label string) AggregateStats {
	return AggregateStats{Label: label, BookStats: []BookStats{}}
}

// AddBook folds a book's statistics into the aggregate.
func (a *AggregateStats) AddBook(stats BookStats) {
	a.MaturePassages += stats.MaturePassages
	a.YoungPassages += stats.YoungPassages
	a.UnseenPassages += stats.UnseenPassages
	a.SuspendedPassages += stats.SuspendedPassages
	a.MatureVerses += stats.MatureVerses
	a.YoungVerses += stats.YoungVerses
	a.UnseenVerses += stats.UnseenVerses
	a.SuspendedVerses += stats.SuspendedVerses
	a.BookStats = append(a.BookStats, stats)
}

// TotalPassages sums passage counts across all card states.
func (a *AggregateStats) TotalPassages() int64 {
	return a.MaturePassages + a.YoungPassages + a.UnseenPassages + a.SuspendedPassages
}

// TotalVerses sums verse counts across all card states.
func (a *AggregateStats) TotalVerses() int64 {
	return a.MatureVerses + a.YoungVerses + a.UnseenVerses + a.SuspendedVerses
}

// BibleStats is the complete memorization report, split by testament.
type BibleStats struct {
	OldTestament AggregateStats `json:"old_testament"`
	NewTestament AggregateStats `json:"new_testament"`
}

// NewBibleStats creates an empty report.
func NewBibleStats() BibleStats {
	return BibleStats{
		OldTestament: NewAggregateStats("Old Testament"),
		NewTestament: NewAggregateStats("New Testament"),
	}
}

// TotalPassages sums passage counts across both testaments.
func (b *BibleStats) TotalPassages() int64 {
	return b.OldTestament.TotalPassages() + b.NewTestament.TotalPassages()
}

// TotalVerses sums verse counts across both testaments.
func (b *BibleStats) TotalVerses() int64 {
	return b.OldTestament.TotalVerses() + b.NewTestament.TotalVerses()
}

// DayStats holds study activity for a single day.
type DayStats struct {
	// Date in YYYY-MM-DD format.
	Date string `json:"date"`
	// Study time in minutes.
	Minutes float64 `json:"minutes"`
	// Passages whose review interval crossed the mature threshold this day.
	MaturedPassages int64 `json:"matured_passages"`
	// Passages that fell back below the mature threshold this day.
	LostPassages int64 `json:"lost_passages"`
	// Running net count of mature passages at end of day.
	CumulativePassages int64 `json:"cumulative_passages"`
}

// WeekStats holds study activity for a single Sunday-based week.
type WeekStats struct {
	// Week start date (Sunday) in YYYY-MM-DD format.
	WeekStart string `json:"week_start"`
	// Study time in minutes.
	Minutes float64 `json:"minutes"`
	// Passages whose review interval crossed the mature threshold this week.
	MaturedPassages int64 `json:"matured_passages"`
	// Passages that fell back below the mature threshold this week.
	LostPassages int64 `json:"lost_passages"`
	// Running net count of mature passages at end of week.
	CumulativePassages int64 `json:"cumulative_passages"`
}
