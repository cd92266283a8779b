package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chordexpand",
		Short: "Chord symbol compiler and rhythm expander",
		Long: `chordexpand compiles chord symbols such as Cmaj7/G or 7b9 to MIDI pitches,
lays them out against repeating rhythm patterns and writes the result as
JSON or as a Standard MIDI File.`,
		SilenceUsage: true,
	}
	root.AddCommand(newCompileCmd())
	root.AddCommand(newExpandCmd())
	root.AddCommand(newSliceCmd())
	root.AddCommand(newPatternsCmd())
	return root
}

// Execute runs the root command
func Execute() {
	_ = godotenv.Load()
	cobra.CheckErr(rootCmd.ExecuteContext(context.Background()))
}
