// Package cmd implements the glint command line interface.
package cmd

import (
	"cmp"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/toba/glint/internal/config"
	"github.com/toba/glint/internal/output"
	"github.com/toba/glint/internal/tracker"
)

var (
	cfgPath string
	jsonOut bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "glint",
	Short: "CLI client for a GraphQL issue tracker",
	Long: `glint is a command line client for a GraphQL issue-tracking API.

Team identifiers accepted by --team may be a UUID, a short team key
(like "ENG" or "ABC1"), or a full team name (like "Engineering").`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default .glint.yaml, searched upward)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output as JSON")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig loads configuration once per invocation.
func loadConfig() (*config.Config, error) {
	if cfg != nil {
		return cfg, nil
	}

	var err error
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
	} else if env := os.Getenv("GLINT_CONFIG"); env != "" {
		cfg, err = config.Load(env)
	} else {
		cwd, wdErr := os.Getwd()
		if wdErr != nil {
			return nil, fmt.Errorf("getting current directory: %w", wdErr)
		}
		cfg, err = config.LoadFromDirectory(cwd)
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// newClient builds the API client from config and the token env var.
func newClient() (*tracker.Client, error) {
	c, err := loadConfig()
	if err != nil {
		return nil, cmdError(jsonOut, output.ErrConfig, "%s", err)
	}
	token, err := c.Token()
	if err != nil {
		return nil, cmdError(jsonOut, output.ErrConfig, "%s", err)
	}
	endpoint := cmp.Or(c.Endpoint, tracker.DefaultEndpoint)
	return tracker.NewHTTP(endpoint, token), nil
}

// defaultTeam returns the flag value, falling back to the configured
// default team.
func defaultTeam(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg != nil {
		return cfg.DefaultTeam
	}
	return ""
}

// cmdError reports an error as JSON when requested, or as a plain error.
func cmdError(asJSON bool, code string, format string, a ...any) error {
	if asJSON {
		return output.Error(code, fmt.Sprintf(format, a...))
	}
	return fmt.Errorf(format, a...)
}

// apiError maps client errors to response codes.
func apiError(asJSON bool, err error) error {
	if !asJSON {
		return err
	}
	var nf *tracker.NotFoundError
	if errors.As(err, &nf) {
		return output.ErrorFrom(output.ErrNotFound, err)
	}
	return output.ErrorFrom(output.ErrAPIError, err)
}
