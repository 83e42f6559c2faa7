package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/toba/glint/internal/display"
	"github.com/toba/glint/internal/output"
)

var teamListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		teams, err := client.Teams(cmd.Context())
		if err != nil {
			return apiError(jsonOut, err)
		}

		if jsonOut {
			return output.SuccessTeams(teams)
		}

		display.RenderTeams(os.Stdout, teams)
		return nil
	},
}

func init() {
	teamCmd.AddCommand(teamListCmd)
}
