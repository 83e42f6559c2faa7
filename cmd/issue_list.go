package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/toba/glint/internal/display"
	"github.com/toba/glint/internal/output"
	"github.com/toba/glint/internal/tracker"
	"golang.org/x/term"
)

var (
	listTeam   string
	listState  []string
	listSearch string
	listLimit  int
	listQuiet  bool
)

var issueListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "search"},
	Short:   "List issues",
	Long: `Lists issues, optionally filtered by team, state, and title text.

The --team value may be a UUID, a team key ("ENG", "ABC1"), or a team
name ("Engineering"); it is resolved before the search runs, and a team
that does not resolve aborts the whole command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		opts := tracker.IssueSearchOptions{
			Team:   defaultTeam(listTeam),
			States: listState,
			Query:  listSearch,
			Limit:  listLimit,
		}

		issues, err := client.SearchIssues(cmd.Context(), opts)
		if err != nil {
			return apiError(jsonOut, err)
		}

		if jsonOut {
			return output.SuccessIssues(issues)
		}

		if listQuiet {
			for _, issue := range issues {
				fmt.Println(issue.Identifier)
			}
			return nil
		}

		termWidth := 80
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			termWidth = w
		}

		display.RenderIssues(os.Stdout, issues, termWidth)
		return nil
	},
}

func init() {
	issueListCmd.Flags().StringVarP(&listTeam, "team", "t", "", "Team identifier: UUID, key, or name")
	issueListCmd.Flags().StringArrayVarP(&listState, "state", "s", nil, "Filter by workflow state (can be repeated)")
	issueListCmd.Flags().StringVarP(&listSearch, "query", "S", "", "Filter by title text")
	issueListCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum number of issues to return")
	issueListCmd.Flags().BoolVarP(&listQuiet, "quiet", "q", false, "Only output identifiers (one per line)")
	issueCmd.AddCommand(issueListCmd)
}
