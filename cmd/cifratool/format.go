package main

import (
	"fmt"
	"os"

	"github.com/dmelo/cifrabot/internal/chords"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(formatCmd)
}

var formatCmd = &cobra.Command{
	Use:   "format <file>",
	Short: "Render canonical content as two-row stacked text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), chords.FormatStacked(string(raw)))
		return nil
	},
}
