package tracker

import (
	"context"
	"fmt"
	"strings"
)

// Team is a resolved team record. ID is a stable opaque identifier; Key and
// Name are human-chosen labels for which an exact or case-insensitive match
// is treated as authoritative.
type Team struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// teamLookupVariables carries the key/name pair for a batch team lookup.
// Exactly one field is non-nil. Neither field uses omitempty: the server's
// OR filter treats a missing variable as an unconstrained branch that
// matches every team, so the inactive field must serialize as an explicit
// JSON null rather than be dropped.
type teamLookupVariables struct {
	TeamKey  *string `json:"teamKey"`
	TeamName *string `json:"teamName"`
}

// lookupVariables builds the variables for a non-UUID identifier according
// to its classification.
func lookupVariables(raw string) teamLookupVariables {
	if ClassifyIdentifier(raw) == KindKey {
		return teamLookupVariables{TeamKey: &raw}
	}
	return teamLookupVariables{TeamName: &raw}
}

type teamsResponse struct {
	Teams struct {
		Nodes []Team `json:"nodes"`
	} `json:"teams"`
}

// TeamResolver resolves a raw team identifier (UUID, key, or name) into a
// Team. The gateway is injected at construction so the resolver can be
// exercised against a substitute in tests.
type TeamResolver struct {
	gw Gateway
}

// NewTeamResolver creates a resolver over the given gateway.
func NewTeamResolver(gw Gateway) *TeamResolver {
	return &TeamResolver{gw: gw}
}

// Resolve classifies raw and returns the matching team.
//
// A UUID-shaped identifier is trusted as an opaque reference and returned
// without any lookup; a nonexistent UUID surfaces later, from whatever
// operation consumes it. Anything else costs exactly one gateway round
// trip, never retried here, followed by validation of the returned record.
func (r *TeamResolver) Resolve(ctx context.Context, raw string) (*Team, error) {
	if ClassifyIdentifier(raw) == KindUUID {
		return &Team{ID: raw}, nil
	}

	var resp teamsResponse
	if err := r.gw.RawRequest(ctx, queryResolveTeams, lookupVariables(raw), &resp); err != nil {
		return nil, fmt.Errorf("resolving team %q: %w", raw, err)
	}

	return resolveTeamFromCandidates(raw, resp.Teams.Nodes)
}

// resolveTeamFromCandidates picks and validates a team from one lookup's
// candidate set. A candidate is never trusted merely because the server
// returned it: an unconstrained OR branch in the lookup filter can match an
// unrelated record, so the first candidate must itself match raw by key or
// name (case-insensitively) to be accepted. An empty set and a
// non-matching candidate produce the same NotFoundError.
//
// When the server returns several candidates only the first is considered;
// there is no ambiguous-match error.
func resolveTeamFromCandidates(raw string, candidates []Team) (*Team, error) {
	if len(candidates) == 0 {
		return nil, &NotFoundError{Resource: "Team", Identifier: raw}
	}

	first := candidates[0]
	if strings.EqualFold(first.Key, raw) || strings.EqualFold(first.Name, raw) {
		return &first, nil
	}

	return nil, &NotFoundError{Resource: "Team", Identifier: raw}
}

// ResolveTeam resolves a team identifier through the client's gateway.
func (c *Client) ResolveTeam(ctx context.Context, raw string) (*Team, error) {
	return c.teams.Resolve(ctx, raw)
}
