// Package cmd provides the command-line interface for the cache simulator.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "cachesim",
	Short: "Cachesim replays address traces against an N-way " +
		"set-associative cache model.",
	Long: `Cachesim replays address traces against an N-way set-associative ` +
		`cache model and reports hit, miss, and eviction statistics. ` +
		`Flag defaults can be placed in a .env file as CACHESIM_* variables.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	// A missing .env file is fine; flags keep their built-in defaults.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
