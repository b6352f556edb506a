package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dmelo/cifrabot/internal/lyrics"
	"github.com/spf13/cobra"
)

var importOutput string

func init() {
	importCmd.Flags().StringVarP(&importOutput, "output", "o", "", "write canonical content to a file instead of stdout")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <url|file>",
	Short: "Convert a stacked chord sheet to canonical content",
	Long: `Converts a two-row stacked chord sheet into inline bracket
notation and reports the detected key. The argument is either a
supported cifra URL or a local text file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		service := lyrics.NewService()

		var result *lyrics.ImportResult
		if strings.HasPrefix(args[0], "http://") || strings.HasPrefix(args[0], "https://") {
			ctx, cancel := context.WithTimeout(cmd.Context(), 90*time.Second)
			defer cancel()

			var err error
			result, err = service.Import(ctx, args[0])
			if err != nil {
				return err
			}
		} else {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			result = service.ImportText(string(raw))
		}

		if result.ChordLines == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning: no chord lines found, imported as lyrics only")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "detected key: %s\n", result.DetectedKey)
		if importOutput != "" {
			return os.WriteFile(importOutput, []byte(result.Content), 0644)
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Content)
		return nil
	},
}
