package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stockwise",
	Short: "Financial education chat backend",
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(assessCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
