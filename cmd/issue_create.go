package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/toba/glint/internal/output"
	"github.com/toba/glint/internal/tracker"
)

var (
	createTeam        string
	createDescription string
	createBodyFile    string
	createPriority    int
	createCopy        bool
)

var issueCreateCmd = &cobra.Command{
	Use:     "create <title>",
	Aliases: []string{"c", "new"},
	Short:   "Create a new issue",
	Long: `Creates an issue in the given team.

The --team value may be a UUID, a team key ("ENG", "ABC1"), or a team
name ("Engineering"); it is resolved and validated before the issue is
created.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")

		client, err := newClient()
		if err != nil {
			return err
		}

		team := defaultTeam(createTeam)
		if team == "" {
			return cmdError(jsonOut, output.ErrValidation, "no team given: pass --team or set default_team in .glint.yaml")
		}

		description, err := resolveContent(createDescription, createBodyFile)
		if err != nil {
			return cmdError(jsonOut, output.ErrValidation, "%s", err)
		}

		opts := tracker.IssueCreateOptions{
			Team:        team,
			Title:       title,
			Description: description,
		}
		if cmd.Flags().Changed("priority") {
			opts.Priority = &createPriority
		}

		issue, err := client.CreateIssue(cmd.Context(), opts)
		if err != nil {
			return apiError(jsonOut, err)
		}

		if createCopy && issue.URL != "" {
			if err := clipboard.WriteAll(issue.URL); err != nil {
				fmt.Fprintf(os.Stderr, "warning: copying URL to clipboard: %v\n", err)
			}
		}

		if jsonOut {
			return output.SuccessIssue(issue, "Created issue")
		}

		fmt.Printf("Created %s: %s\n", issue.Identifier, issue.Title)
		if issue.URL != "" {
			fmt.Println(issue.URL)
		}
		return nil
	},
}

// resolveContent returns inline content or, when a file is given instead,
// the file's contents.
func resolveContent(inline, fromFile string) (string, error) {
	if inline != "" && fromFile != "" {
		return "", fmt.Errorf("--description and --description-file are mutually exclusive")
	}
	if fromFile == "" {
		return inline, nil
	}
	data, err := os.ReadFile(fromFile)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", fromFile, err)
	}
	return string(data), nil
}

func init() {
	issueCreateCmd.Flags().StringVarP(&createTeam, "team", "t", "", "Team identifier: UUID, key, or name (required unless configured)")
	issueCreateCmd.Flags().StringVarP(&createDescription, "description", "d", "", "Issue description (markdown)")
	issueCreateCmd.Flags().StringVar(&createBodyFile, "description-file", "", "Read the description from a file")
	issueCreateCmd.Flags().IntVarP(&createPriority, "priority", "p", 0, "Priority (1=urgent, 2=high, 3=normal, 4=low)")
	issueCreateCmd.Flags().BoolVar(&createCopy, "copy", false, "Copy the new issue URL to the clipboard")
	issueCmd.AddCommand(issueCreateCmd)
}
