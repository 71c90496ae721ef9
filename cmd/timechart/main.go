package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"git.sr.ht/~whereswaldon/timechart/chart"
	"git.sr.ht/~whereswaldon/timechart/internal/config"
	"git.sr.ht/~whereswaldon/timechart/internal/logger"
)

var (
	// Flags
	configPath string
	debug      bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Error already printed by cobra
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "timechart",
		Short: "Render time-series charts from CSV traces",
		Long: `timechart draws event, min/max, percentage, state, single-state and
duration charts from CSV traces.

  timechart render trace.csv --kind state -o state.png
  timechart query trace.csv --kind events --x 120 --y 40
  timechart palette -n 8 --dark`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.config/timechart/timechart.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newRenderCmd(),
		newQueryCmd(),
		newPaletteCmd(),
	)
	return rootCmd
}

// env is what every subcommand needs once flags are parsed.
type env struct {
	cfg   *config.Config
	style chart.Style
	log   *slog.Logger
}

func setup() (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	level := cfg.Log.Level
	if debug {
		level = "debug"
	}
	log, err := logger.Init(level, cfg.Log.Path)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	style, err := cfg.Style()
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, style: style, log: log}, nil
}

// parseEntryID parses key@timestamp. The key itself may contain '@'.
func parseEntryID(s string) (chart.EntryID, error) {
	i := strings.LastIndexByte(s, '@')
	if i <= 0 {
		return chart.EntryID{}, fmt.Errorf("entry %q is not of the form key@timestamp", s)
	}
	ts, err := strconv.ParseInt(s[i+1:], 10, 64)
	if err != nil {
		return chart.EntryID{}, fmt.Errorf("entry %q: parsing timestamp: %w", s, err)
	}
	return chart.EntryID{Key: s[:i], Timestamp: ts}, nil
}
