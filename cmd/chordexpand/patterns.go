package main

import (
	"fmt"

	"github.com/Conceptual-Machines/magda-chords/internal/config"
	"github.com/Conceptual-Machines/magda-chords/internal/patterns"
	"github.com/Conceptual-Machines/magda-chords/internal/rhythm"
	"github.com/spf13/cobra"
)

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "Lists the built-in rhythm patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tpq := config.Load().TicksPerQuarter
			out := cmd.OutOrStdout()
			for _, name := range patterns.BuiltinNames() {
				p, _ := patterns.Builtin(name, tpq)
				fmt.Fprintf(out, "%-14s %-18s %s\n", name, rhythm.Grid(p.Pattern, gridStep(p.Pattern, tpq/2)), p.Description)
			}
			return nil
		},
	}
}

// gridStep is the largest step up to an eighth note that divides every item, so the grid
// has no fractional cells
func gridStep(p rhythm.Pattern, eighth int) int {
	step := eighth
	for _, item := range p {
		step = gcd(step, item.Duration)
	}
	if step <= 0 {
		return rhythm.DefaultStep
	}
	return step
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
