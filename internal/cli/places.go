package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/iBelieve/anki-bible-stats-server/internal/arcstats"
	"github.com/iBelieve/anki-bible-stats-server/internal/config"
)

// PlacesCommand prints the most-visited places from an Arc Timeline export.
type PlacesCommand struct {
	ExportPath string
	Limit      int
}

func NewPlacesCommand() *PlacesCommand {
	return &PlacesCommand{}
}

func (cmd *PlacesCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("places", flag.ExitOnError)

	fs.StringVar(&cmd.ExportPath, "arc-export", cfg.Arc.ExportPath, "Path to an Arc Timeline export directory (default $ARC_EXPORT_PATH)")
	fs.IntVar(&cmd.Limit, "limit", 10, "Number of places to show")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s places [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Show the places with the most time spent over the last six months.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.ExportPath == "" {
		return fmt.Errorf("Arc export path not set (use -arc-export or ARC_EXPORT_PATH)")
	}
	if cmd.Limit <= 0 {
		return fmt.Errorf("limit must be positive")
	}

	return nil
}

func (cmd *PlacesCommand) Run() error {
	places, err := arcstats.TopPlaces(cmd.ExportPath, cmd.Limit)
	if err != nil {
		return err
	}

	if len(places) == 0 {
		fmt.Println("No visits found in the last six months")
		return nil
	}

	table := NewTable("Top Places (last 6 months)", "Place", "Visits", "Hours")
	for _, p := range places {
		table.AddRow(p.Name, strconv.Itoa(p.Visits), fmt.Sprintf("%.1f", p.Hours))
	}
	fmt.Print(table.Render())
	return nil
}
