package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"git.sr.ht/~whereswaldon/timechart/chart"
	"git.sr.ht/~whereswaldon/timechart/ggsurface"
	"git.sr.ht/~whereswaldon/timechart/internal/logger"
	"git.sr.ht/~whereswaldon/timechart/internal/tracefile"
)

// chartFlags are shared by every subcommand that draws a trace.
type chartFlags struct {
	kind      string
	highlight string
	selected  string
	hovered   string
	from, to  int64
}

func (f *chartFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.kind, "kind", "k", string(tracefile.MinMax), "chart kind: events, minmax, percentage, state, single or duration")
	cmd.Flags().StringVar(&f.highlight, "highlight", "", "series key to highlight")
	cmd.Flags().StringVar(&f.selected, "select", "", "entry to mark as selected, as key@timestamp")
	cmd.Flags().StringVar(&f.hovered, "hover", "", "entry to mark as hovered, as key@timestamp")
	cmd.Flags().Int64Var(&f.from, "from", 0, "first visible timestamp (default: first entry)")
	cmd.Flags().Int64Var(&f.to, "to", 0, "last visible timestamp (default: last entry)")
}

func (f *chartFlags) interaction() (chart.Interaction, error) {
	var in chart.Interaction
	if f.highlight != "" {
		in.Highlighted = &chart.ChartKey{Key: f.highlight}
	}
	for _, entry := range []struct {
		flag string
		dst  **chart.EntryID
	}{{f.selected, &in.Selected}, {f.hovered, &in.Hovered}} {
		if entry.flag == "" {
			continue
		}
		id, err := parseEntryID(entry.flag)
		if err != nil {
			return in, err
		}
		*entry.dst = &id
	}
	return in, nil
}

// frame returns the visible time frame, defaulting each end to the data.
func (f *chartFlags) frame(cmd *cobra.Command, tr *tracefile.Trace, kind tracefile.Kind) (chart.TimeFrame, error) {
	data, _ := tr.Frame(kind)
	start, end := data.Start(), data.End()
	if cmd.Flags().Changed("from") {
		start = f.from
	}
	if cmd.Flags().Changed("to") {
		end = f.to
	}
	return chart.NewTimeFrame(start, end)
}

// draw renders the trace at path onto a new raster surface.
func (f *chartFlags) draw(cmd *cobra.Command, e *env, path string) (*ggsurface.Surface, *tracefile.Layout, error) {
	kind, err := tracefile.ParseKind(f.kind)
	if err != nil {
		return nil, nil, err
	}
	in, err := f.interaction()
	if err != nil {
		return nil, nil, err
	}
	tr, err := tracefile.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	frame, err := f.frame(cmd, tr, kind)
	if err != nil {
		return nil, nil, err
	}
	surface, err := ggsurface.New(e.cfg.Surface.Width, e.cfg.Surface.Height)
	if err != nil {
		return nil, nil, err
	}
	surface.Fill(e.style.Background)
	layout, err := tr.Render(kind, chart.Pass{
		Surface: surface,
		Frame:   frame,
		Style:   e.style,
		Palette: chart.NewPalette(),
		Logger:  e.log,
	}, in)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("rendered trace", "path", path, "kind", kind, "frame", frame.String(), "entries", layout.Len())
	return surface, layout, nil
}

// newRenderCmd creates the render subcommand
func newRenderCmd() *cobra.Command {
	var (
		flags  chartFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "render TRACE",
		Short: "Render one chart of a trace to a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer logger.Close()
			surface, _, err := flags.draw(cmd, e, args[0])
			if err != nil {
				return err
			}
			if err := surface.SavePNG(output); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "chart.png", "PNG file to write")
	return cmd
}
