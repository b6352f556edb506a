package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cifratool",
	Short: "Offline chord sheet toolbox",
	Long: `cifratool runs the chord engine from the command line:
import stacked sheets, transpose canonical content between keys,
detect a sheet's key and format content back to two rows.`,
}

// Execute runs the root command.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
