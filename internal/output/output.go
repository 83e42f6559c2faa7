// Package output renders glint's machine-readable JSON responses.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/toba/glint/internal/tracker"
)

// Error codes for JSON responses
const (
	ErrNotFound   = "NOT_FOUND"
	ErrValidation = "VALIDATION_ERROR"
	ErrAPIError   = "API_ERROR"
	ErrConfig     = "CONFIG_ERROR"
)

// Response is the standard JSON response envelope.
type Response struct {
	Success bool              `json:"success"`
	Issue   *tracker.Issue    `json:"issue,omitempty"`
	Issues  []tracker.Issue   `json:"issues,omitempty"`
	Team    *tracker.Team     `json:"team,omitempty"`
	Teams   []tracker.Team    `json:"teams,omitempty"`
	Viewer  *tracker.Viewer   `json:"viewer,omitempty"`
	Count   int               `json:"count,omitempty"`
	Message string            `json:"message,omitempty"`
	Error   string            `json:"error,omitempty"`
	Code    string            `json:"code,omitempty"`
}

// JSON outputs a response as JSON to stdout.
func JSON(resp Response) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

// SuccessIssue outputs a successful single-issue response.
func SuccessIssue(issue *tracker.Issue, message string) error {
	return JSON(Response{Success: true, Issue: issue, Message: message})
}

// SuccessIssues outputs a successful issue-list response.
func SuccessIssues(issues []tracker.Issue) error {
	return JSON(Response{Success: true, Issues: issues, Count: len(issues)})
}

// SuccessTeam outputs a successful single-team response.
func SuccessTeam(team *tracker.Team) error {
	return JSON(Response{Success: true, Team: team})
}

// SuccessTeams outputs a successful team-list response.
func SuccessTeams(teams []tracker.Team) error {
	return JSON(Response{Success: true, Teams: teams, Count: len(teams)})
}

// SuccessViewer outputs a successful viewer response.
func SuccessViewer(viewer *tracker.Viewer, teams []tracker.Team) error {
	return JSON(Response{Success: true, Viewer: viewer, Teams: teams})
}

// Error outputs an error response as JSON and returns the message as an
// error so the command still exits non-zero.
func Error(code string, message string) error {
	_ = JSON(Response{Success: false, Error: message, Code: code})
	return fmt.Errorf("%s", message)
}

// ErrorFrom outputs an error response from an existing error.
func ErrorFrom(code string, err error) error {
	return Error(code, err.Error())
}
