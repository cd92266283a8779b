package main

import (
	"fmt"

	"github.com/Conceptual-Machines/magda-chords/internal/chords"
	"github.com/Conceptual-Machines/magda-chords/internal/config"
	"github.com/spf13/cobra"
)

func newCompileCmd() *cobra.Command {
	var (
		raw  bool
		root string
	)

	cmd := &cobra.Command{
		Use:   "compile <symbol>...",
		Short: "Compiles chord symbols to MIDI pitches",
		Long: `Compiles each chord symbol in order. A symbol without a root letter,
such as "7" or "/E", takes the root of the symbol before it.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if root != "" {
				cfg.DefaultRoot = root
			}
			start, err := cfg.Root()
			if err != nil {
				return err
			}

			mode := chords.ModeCondensed
			if raw {
				mode = chords.ModeRaw
			}

			state := chords.RootState{}
			if start != nil {
				state = chords.NewRootState(*start)
			}

			out := cmd.OutOrStdout()
			for _, symbol := range args {
				chord, next, err := chords.Compile(symbol, cfg.Compile(mode), state)
				state = next
				if err != nil {
					fmt.Fprintf(out, "%s\terror: %v\n", symbol, err)
					continue
				}
				fmt.Fprintf(out, "%s\t%v\n", chord.Symbol, chord.Pitches)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "keep every chord degree instead of the condensed voicing")
	cmd.Flags().StringVar(&root, "root", "", "root for a leading symbol without one, e.g. F#")
	return cmd
}
