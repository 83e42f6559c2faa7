package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/toba/glint/internal/display"
	"github.com/toba/glint/internal/output"
	"github.com/toba/glint/internal/tracker"
	"golang.org/x/sync/errgroup"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user and their teams",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		var (
			viewer *tracker.Viewer
			teams  []tracker.Team
		)

		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			var err error
			viewer, err = client.Viewer(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			teams, err = client.Teams(ctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return apiError(jsonOut, err)
		}

		if jsonOut {
			return output.SuccessViewer(viewer, teams)
		}

		display.RenderViewer(os.Stdout, viewer, teams)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
