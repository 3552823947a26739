package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/iBelieve/anki-bible-stats-server/internal/faithstats"
)

// WeeklyCommand prints combined faith activity for the last 12 weeks.
type WeeklyCommand struct {
	Sources faithstats.Sources
}

func NewWeeklyCommand() *WeeklyCommand {
	return &WeeklyCommand{}
}

func (cmd *WeeklyCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("weekly", flag.ExitOnError)
	addSourceFlags(fs, &cmd.Sources)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s weekly [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Show combined faith activity for each of the last 12 weeks.\n")
		fmt.Fprintf(os.Stderr, "Weeks start on Sunday. Church time requires an Arc export.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	return validateSources(&cmd.Sources)
}

func (cmd *WeeklyCommand) Run() error {
	stats, err := faithstats.GetWeeklyStats(cmd.Sources)
	if err != nil {
		return err
	}

	table := NewTable("Last 12 Weeks", "Week", "Memorize", "Read", "Pray", "Church", "Total", "Matured", "Lost", "Cumulative")
	for i := range stats.Weeks {
		w := &stats.Weeks[i]
		table.AddRow(
			w.WeekStart,
			formatMinutes(w.AnkiMinutes),
			formatMinutes(w.ReadingMinutes),
			formatMinutes(w.PrayerMinutes),
			formatMinutes(w.ChurchMinutes),
			formatMinutes(w.TotalMinutes()),
			strconv.FormatInt(w.AnkiMaturedPassages, 10),
			strconv.FormatInt(w.AnkiLostPassages, 10),
			strconv.FormatInt(w.AnkiCumulativePassages, 10),
		)
	}
	fmt.Print(table.Render())

	printSummary(stats.Summary, "weeks")
	return nil
}
