package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"github.com/toba/glint/internal/tracker"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

var queryVariables string

var graphqlCmd = &cobra.Command{
	Use:     "graphql <query>",
	Aliases: []string{"query"},
	Short:   "Execute a raw GraphQL query or mutation",
	Long: `Executes a GraphQL query or mutation against the API.

The document is syntax-checked locally before anything is sent. All
parameterization should go through variables (-v), never through values
interpolated into the document text.

Examples:
  # List teams
  glint graphql '{ teams { nodes { id key name } } }'

  # Use variables
  glint graphql -v '{"teamKey":"ENG","teamName":null}' \
    'query ResolveTeams($teamKey: String, $teamName: String) { ... }'

  # Read from stdin
  echo '{ viewer { id } }' | glint graphql`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var query string
		if len(args) == 1 {
			query = args[0]
		} else {
			stdinQuery, err := readFromStdin()
			if err != nil {
				return err
			}
			if stdinQuery == "" {
				return errors.New("no query provided (pass as argument or pipe to stdin)")
			}
			query = stdinQuery
		}

		if _, err := tracker.ParseOperation(query); err != nil {
			var gqlErr *gqlerror.Error
			if errors.As(err, &gqlErr) {
				return fmt.Errorf("invalid query: %s", gqlErr.Message)
			}
			return fmt.Errorf("invalid query: %w", err)
		}

		var variables map[string]any
		if queryVariables != "" {
			if err := json.Unmarshal([]byte(queryVariables), &variables); err != nil {
				return fmt.Errorf("invalid variables JSON: %w", err)
			}
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		var result json.RawMessage
		if err := client.RawRequest(cmd.Context(), query, variables, &result); err != nil {
			return err
		}

		if jsonOut {
			fmt.Println(string(pretty.Pretty(result)))
		} else {
			fmt.Println(string(pretty.Color(pretty.Pretty(result), nil)))
		}
		return nil
	},
}

func readFromStdin() (string, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return "", fmt.Errorf("checking stdin: %w", err)
	}
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func init() {
	graphqlCmd.Flags().StringVarP(&queryVariables, "variables", "v", "", "Variables as a JSON object")
	rootCmd.AddCommand(graphqlCmd)
}
