package main

import (
	"fmt"

	"github.com/Conceptual-Machines/magda-chords/internal/config"
	"github.com/Conceptual-Machines/magda-chords/internal/patterns"
	"github.com/Conceptual-Machines/magda-chords/internal/rhythm"
	"github.com/spf13/cobra"
)

func newSliceCmd() *cobra.Command {
	var (
		grid     string
		name     string
		step     int
		start    int
		duration int
	)

	cmd := &cobra.Command{
		Use:   "slice",
		Short: "Projects a repeating rhythm pattern onto a time window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if limit := cfg.SpanLimit(); duration > limit {
				return fmt.Errorf("--duration %d exceeds the limit of %d ticks", duration, limit)
			}

			var (
				pattern rhythm.Pattern
				err     error
			)
			switch {
			case grid != "" && name != "":
				return fmt.Errorf("--grid and --pattern are mutually exclusive")
			case grid != "":
				pattern, err = rhythm.ParseGrid(grid, step)
			case name != "":
				named, ok := patterns.Builtin(name, cfg.TicksPerQuarter)
				if !ok {
					return fmt.Errorf("%w: %s", patterns.ErrNotFound, name)
				}
				pattern = named.Pattern
			default:
				return fmt.Errorf("--grid or --pattern is required")
			}
			if err != nil {
				return err
			}

			events, err := rhythm.Slice(pattern, start, duration)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cycle %d ticks, %d events\n", pattern.CycleLength(), len(events))
			for _, e := range events {
				fmt.Fprintf(out, "%d\t%d\t%s\n", e.Tick, e.Duration, e.Voicing)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&grid, "grid", "", "pattern grid such as x_x_b_n_")
	cmd.Flags().StringVar(&name, "pattern", "", "built-in pattern name")
	cmd.Flags().IntVar(&step, "step", rhythm.DefaultStep, "grid step in ticks")
	cmd.Flags().IntVar(&start, "start", 0, "window start tick")
	cmd.Flags().IntVar(&duration, "duration", 1920, "window length in ticks")
	return cmd
}
