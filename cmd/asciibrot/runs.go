package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/asciibrot/internal/analysis"
	"github.com/san-kum/asciibrot/internal/config"
	"github.com/san-kum/asciibrot/internal/glyph"
	"github.com/san-kum/asciibrot/internal/storage"
	"github.com/san-kum/asciibrot/internal/viz"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list named regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(config.Regions))
			for _, name := range config.ListPresets() {
				cfg, err := config.GetPreset(name)
				if err != nil {
					return err
				}
				v := cfg.Viewport
				rows = append(rows, []string{
					name,
					fmt.Sprintf("%g..%g", v.XMin, v.XMax),
					fmt.Sprintf("%g..%g", v.YMin, v.YMax),
					fmt.Sprintf("%d", cfg.MaxIters),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), viz.Table([]string{"NAME", "X", "Y", "ITERS"}, rows))
			return nil
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list saved frames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := storage.New(opts.dataDir).List()
			if err != nil {
				return err
			}

			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no frames found")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				c := run.Config
				rows = append(rows, []string{
					run.ID,
					run.Timestamp.Format("2006-01-02 15:04:05"),
					fmt.Sprintf("%dx%d", c.Width, c.Height),
					fmt.Sprintf("%d", c.MaxIters),
					fmt.Sprintf("[%g,%g]x[%g,%g]", c.Viewport.XMin, c.Viewport.XMax, c.Viewport.YMin, c.Viewport.YMax),
					run.Elapsed.String(),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), viz.Table([]string{"ID", "TIME", "SIZE", "ITERS", "REGION", "ELAPSED"}, rows))
			return nil
		},
	}
}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show [run_id]",
		Short: "print a saved frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frame, err := storage.New(opts.dataDir).LoadFrame(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), frame)
			return err
		},
	}
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [run_id]",
		Short: "escape count statistics of a saved frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := storage.New(opts.dataDir)
			meta, err := st.Load(args[0])
			if err != nil {
				return err
			}
			grid, err := st.LoadGrid(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, viz.HeaderStyle.Render("frame "+meta.ID))
			fmt.Fprintf(out, "%s %s\n", viz.MetricLabel.Render("size:"), viz.MetricValue.Render(fmt.Sprintf("%dx%d", grid.Width, grid.Height)))
			fmt.Fprintf(out, "%s %s\n", viz.MetricLabel.Render("interior:"),
				viz.MetricValue.Render(fmt.Sprintf("%.1f%%", 100*analysis.InteriorFraction(grid, meta.Config.MaxIters))))
			fmt.Fprintln(out)

			fmt.Fprint(out, viz.HistogramBars(analysis.Histogram(grid, glyph.DefaultRamp), glyph.DefaultRamp))
			fmt.Fprintln(out)
			fmt.Fprintln(out, viz.RowProfile(analysis.RowMeans(grid), 10, 80))
			return nil
		},
	}
}
