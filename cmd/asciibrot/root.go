package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/asciibrot/internal/analysis"
	"github.com/san-kum/asciibrot/internal/config"
	"github.com/san-kum/asciibrot/internal/escape"
	"github.com/san-kum/asciibrot/internal/glyph"
	"github.com/san-kum/asciibrot/internal/storage"
)

type options struct {
	dataDir    string
	configFile string
	preset     string
	workers    int
	save       bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "asciibrot [max_iters x_min x_max y_min y_max width height]",
		Short: "render the mandelbrot set as ascii text",
		Long: `Render one frame of the Mandelbrot set to standard output.

A point that has not escaped after max_iters iterations is considered a
member of the set. x_min, x_max, y_min and y_max bound the region of the
complex plane to sample; width and height give the output size in
characters.`,
		Args:         frameArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFrame(cmd, args, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.dataDir, "data", ".asciibrot", "data directory for saved frames")
	rootCmd.Flags().StringVar(&opts.configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&opts.preset, "preset", "", "use a named region")
	rootCmd.Flags().IntVar(&opts.workers, "workers", config.DefaultWorkers, "goroutines computing rows (1 = sequential)")
	rootCmd.Flags().BoolVar(&opts.save, "save", false, "archive the frame in the data directory")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log timing to stderr")
	// Flags go before the positional bounds so "-2.0" is not read as a shorthand.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(
		newPresetsCmd(),
		newListCmd(opts),
		newShowCmd(opts),
		newStatsCmd(opts),
	)
	return rootCmd
}

func frameArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != len(config.ArgNames) {
		return fmt.Errorf("expected 0 or %d arguments (%v), got %d", len(config.ArgNames), config.ArgNames, len(args))
	}
	return nil
}

// resolveConfig layers defaults, preset, config file, positional
// arguments and explicitly set flags, later sources winning.
func resolveConfig(cmd *cobra.Command, args []string, opts *options) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if opts.preset != "" {
		p, err := config.GetPreset(opts.preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	if opts.configFile != "" {
		fileCfg, err := config.LoadOver(opts.configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	if len(args) == len(config.ArgNames) {
		var positional [7]string
		copy(positional[:], args)
		if err := cfg.ApplyArgs(positional); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("workers") {
		cfg.Workers = opts.workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func computeGrid(cfg *config.Config) *escape.Grid {
	if cfg.Workers > 1 {
		return escape.ComputeParallel(cfg.GetViewport(), cfg.GetResolution(), cfg.MaxIters, cfg.Workers)
	}
	return escape.Compute(cfg.GetViewport(), cfg.GetResolution(), cfg.MaxIters)
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	if !verbose {
		w = io.Discard
	}
	return log.New(w, "asciibrot: ", log.Lmsgprefix|log.Ltime)
}

func runFrame(cmd *cobra.Command, args []string, opts *options) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

	cfg, err := resolveConfig(cmd, args, opts)
	if err != nil {
		return err
	}

	logger.Printf("computing %dx%d frame, max_iters=%d, workers=%d", cfg.Width, cfg.Height, cfg.MaxIters, cfg.Workers)
	start := time.Now()
	grid := computeGrid(cfg)
	elapsed := time.Since(start)
	logger.Printf("computed in %v", elapsed)

	if err := glyph.Render(cmd.OutOrStdout(), grid); err != nil {
		return err
	}

	if !opts.save {
		return nil
	}

	st := storage.New(opts.dataDir)
	runID, err := st.Save(cfg, grid, glyph.DefaultRamp.String(grid), elapsed, analysis.Summary(grid, cfg.MaxIters, glyph.DefaultRamp))
	if err != nil {
		return fmt.Errorf("failed to save frame: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "run id: %s\n", runID)
	return nil
}
