package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/iBelieve/anki-bible-stats-server/internal/ankistats"
	"github.com/iBelieve/anki-bible-stats-server/internal/bible"
	"github.com/iBelieve/anki-bible-stats-server/internal/config"
)

// ReferencesCommand lists every Scripture reference in the Anki deck along
// with how the parser reads it. Useful for spotting malformed references.
type ReferencesCommand struct {
	DatabasePath string
	OnlyInvalid  bool
}

func NewReferencesCommand() *ReferencesCommand {
	return &ReferencesCommand{}
}

func (cmd *ReferencesCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("references", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", cfg.Anki.DatabasePath, "Path to the Anki collection database (default $ANKI_DATABASE_PATH)")
	fs.BoolVar(&cmd.OnlyInvalid, "invalid", false, "Only show references that fail to parse cleanly")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s references [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List the Scripture references in the Anki deck and how each one parses.\n\n")
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

func (cmd *ReferencesCommand) Run() error {
	refs, err := ankistats.GetAllReferences(cmd.DatabasePath)
	if err != nil {
		return err
	}

	table := NewTable("References", "Reference", "Book", "Verses", "Problems")
	invalid := 0
	for _, ref := range refs {
		book, bookErr := bible.TryParseBookName(ref)
		verses, verseErr := bible.TryCountVerses(ref)

		var problems []string
		if bookErr != nil {
			problems = append(problems, bookErr.Error())
		} else if !bible.IsCanonicalBook(book) {
			problems = append(problems, fmt.Sprintf("unknown book %q", book))
		}
		if verseErr != nil {
			problems = append(problems, verseErr.Error())
		}

		if len(problems) > 0 {
			invalid++
		} else if cmd.OnlyInvalid {
			continue
		}

		verseStr := strconv.FormatInt(verses, 10)
		if verseErr != nil {
			verseStr = "-"
		}
		table.AddRow(ref, book, verseStr, joinProblems(problems))
	}

	fmt.Print(table.Render())
	fmt.Printf("\n%d references, %d with problems\n", len(refs), invalid)
	return nil
}

func joinProblems(problems []string) string {
	if len(problems) == 0 {
		return ""
	}
	out := problems[0]
	for _, p := range problems[1:] {
		out += "; " + p
	}
	return out
}
