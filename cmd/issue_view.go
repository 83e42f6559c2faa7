package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/toba/glint/internal/display"
	"github.com/toba/glint/internal/output"
)

var viewBodyOnly bool

var issueViewCmd = &cobra.Command{
	Use:     "view <id>",
	Aliases: []string{"show"},
	Short:   "Show an issue",
	Long:    `Displays a single issue with its description rendered as markdown.`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		issue, err := client.Issue(cmd.Context(), args[0])
		if err != nil {
			return apiError(jsonOut, err)
		}

		if jsonOut {
			return output.SuccessIssue(issue, "")
		}

		if viewBodyOnly {
			fmt.Print(issue.Description)
			return nil
		}

		display.RenderIssueHeader(os.Stdout, issue)

		if issue.Description != "" {
			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(80),
			)
			if err != nil {
				return fmt.Errorf("creating renderer: %w", err)
			}
			rendered, err := renderer.Render(issue.Description)
			if err != nil {
				return fmt.Errorf("rendering markdown: %w", err)
			}
			fmt.Print(rendered)
		}

		return nil
	},
}

func init() {
	issueViewCmd.Flags().BoolVar(&viewBodyOnly, "body-only", false, "Output only the description")
	issueCmd.AddCommand(issueViewCmd)
}
