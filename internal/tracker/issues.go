package tracker

import (
	"context"
	"fmt"
)

// Issue is an issue record as returned by search and create operations.
type Issue struct {
	ID          string `json:"id"`
	Identifier  string `json:"identifier"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    int    `json:"priority,omitempty"`
	URL         string `json:"url,omitempty"`
	State       struct {
		Name string `json:"name"`
	} `json:"state"`
	Team Team `json:"team"`
}

// IssueSearchOptions filters an issue search. Team may be a UUID, key, or
// name; it is resolved before the search runs.
type IssueSearchOptions struct {
	Team   string
	States []string
	Query  string
	Limit  int
}

// IssueCreateOptions describes a new issue. Team is required and may be a
// UUID, key, or name.
type IssueCreateOptions struct {
	Team        string
	Title       string
	Description string
	Priority    *int
}

type issuesResponse struct {
	Issues struct {
		Nodes []Issue `json:"nodes"`
	} `json:"issues"`
}

type issueResponse struct {
	Issue Issue `json:"issue"`
}

type issueCreateResponse struct {
	IssueCreate struct {
		Success bool  `json:"success"`
		Issue   Issue `json:"issue"`
	} `json:"issueCreate"`
}

const defaultSearchLimit = 50

// SearchIssues resolves opts.Team (when set) and returns matching issues.
// A team that does not resolve aborts the search with the resolver's
// NotFoundError.
func (c *Client) SearchIssues(ctx context.Context, opts IssueSearchOptions) ([]Issue, error) {
	filter := map[string]any{}

	if opts.Team != "" {
		team, err := c.teams.Resolve(ctx, opts.Team)
		if err != nil {
			return nil, err
		}
		filter["team"] = map[string]any{"id": map[string]any{"eq": team.ID}}
	}
	if len(opts.States) > 0 {
		filter["state"] = map[string]any{"name": map[string]any{"in": opts.States}}
	}
	if opts.Query != "" {
		filter["title"] = map[string]any{"containsIgnoreCase": opts.Query}
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	variables := map[string]any{
		"filter": filter,
		"first":  limit,
	}

	var resp issuesResponse
	if err := c.gw.RawRequest(ctx, queryIssues, variables, &resp); err != nil {
		return nil, fmt.Errorf("searching issues: %w", err)
	}
	return resp.Issues.Nodes, nil
}

// CreateIssue resolves opts.Team and creates an issue in it. A team that
// does not resolve aborts the creation with the resolver's NotFoundError.
func (c *Client) CreateIssue(ctx context.Context, opts IssueCreateOptions) (*Issue, error) {
	if opts.Team == "" {
		return nil, fmt.Errorf("creating issue: team is required")
	}
	if opts.Title == "" {
		return nil, fmt.Errorf("creating issue: title is required")
	}

	team, err := c.teams.Resolve(ctx, opts.Team)
	if err != nil {
		return nil, err
	}

	input := map[string]any{
		"teamId": team.ID,
		"title":  opts.Title,
	}
	if opts.Description != "" {
		input["description"] = opts.Description
	}
	if opts.Priority != nil {
		input["priority"] = *opts.Priority
	}

	var resp issueCreateResponse
	if err := c.gw.RawRequest(ctx, mutationCreateIssue, map[string]any{"input": input}, &resp); err != nil {
		return nil, fmt.Errorf("creating issue: %w", err)
	}
	if !resp.IssueCreate.Success {
		return nil, fmt.Errorf("creating issue: server reported failure")
	}

	issue := resp.IssueCreate.Issue
	return &issue, nil
}

// Issue fetches a single issue by its ID.
func (c *Client) Issue(ctx context.Context, id string) (*Issue, error) {
	var resp issueResponse
	if err := c.gw.RawRequest(ctx, queryIssue, map[string]any{"id": id}, &resp); err != nil {
		return nil, fmt.Errorf("getting issue %s: %w", id, err)
	}
	if resp.Issue.ID == "" {
		return nil, &NotFoundError{Resource: "Issue", Identifier: id}
	}
	return &resp.Issue, nil
}
