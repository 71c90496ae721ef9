package main

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"git.sr.ht/~whereswaldon/timechart/chart"
	"git.sr.ht/~whereswaldon/timechart/internal/logger"
)

// newPaletteCmd creates the palette subcommand
func newPaletteCmd() *cobra.Command {
	var (
		count int
		dark  bool
	)
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Print the colors assigned to the first series",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer logger.Close()
			if !cmd.Flags().Changed("dark") {
				dark = e.cfg.Dark()
			}
			p := chart.NewPalette()
			for i := 0; i < count; i++ {
				c, _ := colorful.MakeColor(p.Color(i, dark))
				fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", i, c.Hex())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 8, "number of series")
	cmd.Flags().BoolVar(&dark, "dark", false, "use the dark theme colors (default from config)")
	return cmd
}
