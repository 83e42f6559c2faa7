// Package display renders issues and teams for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toba/glint/internal/tracker"
)

var (
	identifierStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true) // cyan
	titleStyle      = lipgloss.NewStyle().Bold(true)
	stateStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // gray
	keyStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("5")) // magenta
	urlStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Underline(true)
)

// priorityLabels maps API priority numbers to display labels.
var priorityLabels = map[int]string{
	1: "urgent",
	2: "high",
	3: "normal",
	4: "low",
}

// RenderIssues writes one styled row per issue, truncating titles to fit
// the terminal width.
func RenderIssues(w io.Writer, issues []tracker.Issue, termWidth int) {
	if len(issues) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No issues found."))
		return
	}

	idWidth := 0
	for _, issue := range issues {
		if len(issue.Identifier) > idWidth {
			idWidth = len(issue.Identifier)
		}
	}

	for _, issue := range issues {
		id := fmt.Sprintf("%-*s", idWidth, issue.Identifier)
		state := issue.State.Name
		if state == "" {
			state = "unknown"
		}

		meta := " " + stateStyle.Render(state)
		if label, ok := priorityLabels[issue.Priority]; ok {
			meta += " " + mutedStyle.Render(label)
		}

		title := issue.Title
		// id + padding + meta eat into the row budget
		budget := termWidth - idWidth - lipgloss.Width(meta) - 3
		if budget > 3 && len(title) > budget {
			title = title[:budget-1] + "…"
		}

		fmt.Fprintf(w, "%s  %s%s\n", identifierStyle.Render(id), titleStyle.Render(title), meta)
	}
}

// RenderTeams writes one styled row per team.
func RenderTeams(w io.Writer, teams []tracker.Team) {
	if len(teams) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No teams found."))
		return
	}

	keyWidth := 0
	for _, team := range teams {
		if len(team.Key) > keyWidth {
			keyWidth = len(team.Key)
		}
	}

	for _, team := range teams {
		fmt.Fprintf(w, "%s  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-*s", keyWidth, team.Key)),
			titleStyle.Render(team.Name),
			mutedStyle.Render(team.ID))
	}
}

// RenderTeam writes a resolved team with the classification that produced it.
func RenderTeam(w io.Writer, team *tracker.Team, kind tracker.IdentifierKind) {
	fmt.Fprintf(w, "%s %s\n", mutedStyle.Render("resolved via:"), kind)
	fmt.Fprintf(w, "%s %s\n", mutedStyle.Render("id:  "), team.ID)
	if team.Key != "" {
		fmt.Fprintf(w, "%s %s\n", mutedStyle.Render("key: "), keyStyle.Render(team.Key))
	}
	if team.Name != "" {
		fmt.Fprintf(w, "%s %s\n", mutedStyle.Render("name:"), titleStyle.Render(team.Name))
	}
}

// RenderViewer writes the authenticated user and their teams.
func RenderViewer(w io.Writer, viewer *tracker.Viewer, teams []tracker.Team) {
	fmt.Fprintf(w, "%s %s\n", titleStyle.Render(viewer.Name), mutedStyle.Render("<"+viewer.Email+">"))
	if len(teams) == 0 {
		return
	}
	fmt.Fprintln(w, mutedStyle.Render(strings.Repeat("─", 30)))
	RenderTeams(w, teams)
}

// RenderIssueHeader writes the header block for a single issue view. The
// markdown body is rendered separately.
func RenderIssueHeader(w io.Writer, issue *tracker.Issue) {
	var header strings.Builder
	header.WriteString(identifierStyle.Render(issue.Identifier))
	if issue.State.Name != "" {
		header.WriteString(" ")
		header.WriteString(stateStyle.Render(issue.State.Name))
	}
	if label, ok := priorityLabels[issue.Priority]; ok {
		header.WriteString(" ")
		header.WriteString(mutedStyle.Render(label))
	}
	if issue.Team.Key != "" {
		header.WriteString("  ")
		header.WriteString(keyStyle.Render(issue.Team.Key))
	}
	header.WriteString("\n")
	header.WriteString(titleStyle.Render(issue.Title))
	if issue.URL != "" {
		header.WriteString("\n")
		header.WriteString(urlStyle.Render(issue.URL))
	}
	header.WriteString("\n")
	header.WriteString(mutedStyle.Render(strings.Repeat("─", 50)))

	fmt.Fprintln(w, lipgloss.NewStyle().MarginBottom(1).Render(header.String()))
}
