package cmd

import (
	"github.com/spf13/cobra"
)

var teamCmd = &cobra.Command{
	Use:     "team",
	Aliases: []string{"teams"},
	Short:   "List and resolve teams",
}

func init() {
	rootCmd.AddCommand(teamCmd)
}
