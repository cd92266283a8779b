package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Conceptual-Machines/magda-chords/internal/config"
	"github.com/Conceptual-Machines/magda-chords/internal/midiexport"
	"github.com/Conceptual-Machines/magda-chords/internal/models"
	"github.com/Conceptual-Machines/magda-chords/internal/patterns"
	"github.com/Conceptual-Machines/magda-chords/internal/services"
	"github.com/spf13/cobra"
)

func newExpandCmd() *cobra.Command {
	var (
		raw     bool
		entire  bool
		pattern string
		grid    string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "expand <chart-file>",
		Short: "Expands a chord chart into notes",
		Long: `Expands a chord chart written in the chart DSL, for example

    chord(symbol="Cmaj7", tick=0); chord(symbol="7/E", tick=1920); rhythm(name="bossa"); end(tick=3840)

The result is printed as JSON, or written as a Standard MIDI File with --out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			cfg := config.Load()
			store := patterns.NewMemoryStore(cfg.TicksPerQuarter)
			service := services.NewExpansionService(cfg, store, nil)

			req := models.ExpandRequest{
				Chart:            string(code),
				UseEntirePattern: entire,
				PatternSource:    models.PatternSource{PatternName: pattern, Grid: grid},
			}
			if raw {
				req.Mode = "raw"
			}

			resp, err := service.Expand(cmd.Context(), "cli", req)
			if err != nil {
				return err
			}

			if outPath == "" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := midiexport.Write(f, resp.Notes, cfg.MIDI()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d notes from %d chords to %s\n", len(resp.Notes), resp.Expanded, outPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "keep every chord degree instead of the condensed voicing")
	cmd.Flags().BoolVar(&entire, "entire", false, "run the pattern across the whole chart instead of restarting it per chord")
	cmd.Flags().StringVar(&pattern, "pattern", "", "built-in pattern name, overrides the chart's rhythm()")
	cmd.Flags().StringVar(&grid, "grid", "", "pattern grid such as x_x_b_n_, overrides the chart's rhythm()")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write a MIDI file instead of JSON")
	return cmd
}
