package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"gioui.org/f32"
	"github.com/spf13/cobra"

	"git.sr.ht/~whereswaldon/timechart/internal/logger"
)

var errNoEntry = errors.New("no entry found")

// queryResult is the JSON form of a hit.
type queryResult struct {
	Key       string   `json:"key"`
	Timestamp int64    `json:"timestamp"`
	X         float32  `json:"x"`
	Y         float32  `json:"y"`
	Line      int      `json:"line"`
	Fields    []string `json:"fields"`
}

// newQueryCmd creates the query subcommand
func newQueryCmd() *cobra.Command {
	var (
		flags      chartFlags
		x, y       float32
		radius     float32
		jsonOutput bool
	)
	cmd := &cobra.Command{
		Use:   "query TRACE",
		Short: "Find the entry drawn closest to a pixel",
		Long: `Render a chart the way the render subcommand would and report the entry
drawn closest to the pixel at --x,--y, within --radius pixels. The radius
defaults to chart.hit_radius from the configuration; zero means any
distance.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer logger.Close()
			if !cmd.Flags().Changed("radius") {
				radius = float32(e.cfg.Chart.HitRadius)
			}
			_, layout, err := flags.draw(cmd, e, args[0])
			if err != nil {
				return err
			}
			hit, ok := layout.Query(f32.Pt(x, y), radius)
			if !ok {
				return fmt.Errorf("%w within %v px of (%v,%v)", errNoEntry, radius, x, y)
			}
			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(queryResult{
					Key:       hit.ID.Key,
					Timestamp: hit.ID.Timestamp,
					X:         hit.Point.X,
					Y:         hit.Point.Y,
					Line:      hit.Record.Line,
					Fields:    hit.Record.Fields,
				})
			}
			fmt.Fprintf(out, "%s at (%.1f,%.1f) from %s\n", hit.ID, hit.Point.X, hit.Point.Y, hit.Record)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().Float32Var(&x, "x", 0, "horizontal pixel")
	cmd.Flags().Float32Var(&y, "y", 0, "vertical pixel")
	cmd.Flags().Float32Var(&radius, "radius", 0, "search radius in pixels")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	return cmd
}
