package cmd

import (
	"github.com/spf13/cobra"
)

var issueCmd = &cobra.Command{
	Use:     "issue",
	Aliases: []string{"issues", "i"},
	Short:   "Search, view, and create issues",
}

func init() {
	rootCmd.AddCommand(issueCmd)
}
