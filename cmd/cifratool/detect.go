package main

import (
	"fmt"
	"os"

	"github.com/dmelo/cifrabot/internal/chords"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(detectCmd)
}

var detectCmd = &cobra.Command{
	Use:   "detect <file>",
	Short: "Detect the key of a stacked chord sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		_, key := chords.ConvertStacked(string(raw))
		fmt.Fprintln(cmd.OutOrStdout(), key)
		return nil
	},
}
