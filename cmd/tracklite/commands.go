// Package main is the entry point of the tracklite CLI.
package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "tracklite",
	Short:         "Single-device project tracker",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Run executes the CLI.
func Run() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}

	return 0
}
