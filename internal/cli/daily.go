package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/iBelieve/anki-bible-stats-server/internal/faithstats"
)

// DailyCommand prints combined faith activity for the last 30 days.
type DailyCommand struct {
	Sources faithstats.Sources
}

func NewDailyCommand() *DailyCommand {
	return &DailyCommand{}
}

func (cmd *DailyCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("daily", flag.ExitOnError)
	addSourceFlags(fs, &cmd.Sources)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s daily [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Show combined faith activity for each of the last 30 days.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	return validateSources(&cmd.Sources)
}

func (cmd *DailyCommand) Run() error {
	stats, err := faithstats.GetDailyStats(cmd.Sources)
	if err != nil {
		return err
	}

	table := NewTable("Last 30 Days", "Date", "Memorize", "Read", "Pray", "Total", "Matured", "Lost", "Cumulative")
	for i := range stats.Days {
		d := &stats.Days[i]
		table.AddRow(
			d.Date,
			formatMinutes(d.AnkiMinutes),
			formatMinutes(d.ReadingMinutes),
			formatMinutes(d.PrayerMinutes),
			formatMinutes(d.TotalMinutes()),
			strconv.FormatInt(d.AnkiMaturedPassages, 10),
			strconv.FormatInt(d.AnkiLostPassages, 10),
			strconv.FormatInt(d.AnkiCumulativePassages, 10),
		)
	}
	fmt.Print(table.Render())

	printSummary(stats.Summary, "days")
	return nil
}

// printSummary prints the totals block shared by the daily and weekly
// commands. periodNoun is "days" or "weeks".
func printSummary(s faithstats.Summary, periodNoun string) {
	fmt.Println()
	fmt.Println("Summary")
	fmt.Println("=======")
	fmt.Printf("Memorization: %s total, %s/period, active %d/%d %s\n",
		formatMinutes(s.AnkiTotalMinutes), formatMinutes(s.AnkiAverageMinutes), s.AnkiActivePeriods, s.TotalPeriods, periodNoun)
	fmt.Printf("Reading:      %s total, %s/period, active %d/%d %s\n",
		formatMinutes(s.ReadingTotalMinutes), formatMinutes(s.ReadingAverageMinutes), s.ReadingActivePeriods, s.TotalPeriods, periodNoun)
	fmt.Printf("Prayer:       %s total, %s/period, active %d/%d %s\n",
		formatMinutes(s.PrayerTotalMinutes), formatMinutes(s.PrayerAverageMinutes), s.PrayerActivePeriods, s.TotalPeriods, periodNoun)
	fmt.Printf("Combined:     %s total (%.1f hours)\n", formatMinutes(s.TotalMinutes), s.TotalHours)
	fmt.Printf("Passages:     +%d matured, -%d lost, net %+d\n",
		s.AnkiTotalMaturedPassages, s.AnkiTotalLostPassages, s.AnkiNetProgress)
}
