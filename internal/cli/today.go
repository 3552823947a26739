package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/iBelieve/anki-bible-stats-server/internal/faithstats"
)

// TodayCommand prints today's combined faith activity.
type TodayCommand struct {
	Sources faithstats.Sources
}

func NewTodayCommand() *TodayCommand {
	return &TodayCommand{}
}

func (cmd *TodayCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("today", flag.ExitOnError)
	addSourceFlags(fs, &cmd.Sources)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s today [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Show today's combined memorization, reading, and prayer time.\n")
		fmt.Fprintf(os.Stderr, "The day rolls over at 4 AM Central time.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	return validateSources(&cmd.Sources)
}

func (cmd *TodayCommand) Run() error {
	stats, err := faithstats.GetTodayStats(cmd.Sources)
	if err != nil {
		return err
	}

	fmt.Println("Today")
	fmt.Println("=====")
	fmt.Printf("Memorization: %s\n", formatMinutes(stats.AnkiMinutes))
	fmt.Printf("Reading:      %s\n", formatMinutes(stats.ReadingMinutes))
	fmt.Printf("Prayer:       %s\n", formatMinutes(stats.PrayerMinutes))
	fmt.Printf("Total:        %s\n", formatMinutes(stats.TotalMinutes))
	return nil
}
