package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/iBelieve/anki-bible-stats-server/internal/ankistats"
	"github.com/iBelieve/anki-bible-stats-server/internal/config"
)

// BooksCommand prints per-book memorization statistics from an Anki
// database.
type BooksCommand struct {
	DatabasePath string
	All          bool
}

func NewBooksCommand() *BooksCommand {
	return &BooksCommand{}
}

func (cmd *BooksCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("books", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", cfg.Anki.DatabasePath, "Path to the Anki collection database (default $ANKI_DATABASE_PATH)")
	fs.BoolVar(&cmd.All, "all", false, "Include books with no cards")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s books [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Show Bible memorization progress per book, grouped by testament.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.DatabasePath == "" {
		return fmt.Errorf("Anki database path not set (use -db or ANKI_DATABASE_PATH)")
	}

	return nil
}

func (cmd *BooksCommand) Run() error {
	stats, err := ankistats.GetBibleStats(cmd.DatabasePath)
	if err != nil {
		return err
	}

	cmd.printTestament(stats.OldTestament)
	fmt.Println()
	cmd.printTestament(stats.NewTestament)

	fmt.Println()
	fmt.Printf("Total: %d passages, %d verses\n", stats.TotalPassages(), stats.TotalVerses())
	return nil
}

func (cmd *BooksCommand) printTestament(agg ankistats.AggregateStats) {
	table := NewTable(agg.Label, "Book", "Mature", "Young", "Unseen", "Suspended", "Passages", "Verses")

	for _, book := range agg.BookStats {
		if !cmd.All && book.TotalPassages() == 0 {
			continue
		}
		table.AddRow(
			book.Book,
			strconv.FormatInt(book.MaturePassages, 10),
			strconv.FormatInt(book.YoungPassages, 10),
			strconv.FormatInt(book.UnseenPassages, 10),
			strconv.FormatInt(book.SuspendedPassages, 10),
			strconv.FormatInt(book.TotalPassages(), 10),
			strconv.FormatInt(book.TotalVerses(), 10),
		)
	}
	table.AddRow(
		"Total",
		strconv.FormatInt(agg.MaturePassages, 10),
		strconv.FormatInt(agg.YoungPassages, 10),
		strconv.FormatInt(agg.UnseenPassages, 10),
		strconv.FormatInt(agg.SuspendedPassages, 10),
		strconv.FormatInt(agg.TotalPassages(), 10),
		strconv.FormatInt(agg.TotalVerses(), 10),
	)

	fmt.Print(table.Render())
}
