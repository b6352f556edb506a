package main

import (
	"fmt"
	"os"

	"github.com/dmelo/cifrabot/internal/chords"
	"github.com/spf13/cobra"
)

var transposeOutput string

func init() {
	transposeCmd.Flags().StringVarP(&transposeOutput, "output", "o", "", "write transposed content to a file instead of stdout")
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <file> <fromKey> <toKey>",
	Short: "Transpose canonical content between two keys",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		content, err := chords.TransposeContent(string(raw), args[1], args[2])
		if err != nil {
			return err
		}

		if transposeOutput != "" {
			return os.WriteFile(transposeOutput, []byte(content), 0644)
		}
		fmt.Fprintln(cmd.OutOrStdout(), content)
		return nil
	},
}
