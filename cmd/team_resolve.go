package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/toba/glint/internal/display"
	"github.com/toba/glint/internal/output"
	"github.com/toba/glint/internal/tracker"
)

var teamResolveCmd = &cobra.Command{
	Use:   "resolve <identifier>",
	Short: "Resolve a team identifier",
	Long: `Resolves a team identifier to a concrete team record.

The identifier may be a UUID (trusted as-is, no lookup), a team key
("ENG", "ABC1"), or a team name ("Engineering"). Key and name lookups
are validated against the original identifier: a team is only accepted
if its key or name matches case-insensitively.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		team, err := client.ResolveTeam(cmd.Context(), args[0])
		if err != nil {
			return apiError(jsonOut, err)
		}

		if jsonOut {
			return output.SuccessTeam(team)
		}

		display.RenderTeam(os.Stdout, team, tracker.ClassifyIdentifier(args[0]))
		return nil
	},
}

func init() {
	teamCmd.AddCommand(teamResolveCmd)
}
