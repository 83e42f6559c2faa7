package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// fakeGateway is an in-memory Gateway that records every call and serves
// canned payloads keyed on the operation document.
type fakeGateway struct {
	calls []gatewayCall

	teams  []Team
	issues []Issue
	err    error
}

type gatewayCall struct {
	query     string
	variables any
}

func (g *fakeGateway) RawRequest(ctx context.Context, query string, variables any, result any) error {
	g.calls = append(g.calls, gatewayCall{query: query, variables: variables})
	if g.err != nil {
		return g.err
	}

	switch query {
	case queryResolveTeams, queryTeams:
		return respond(result, map[string]any{
			"teams": map[string]any{"nodes": g.teams},
		})
	case queryIssues:
		return respond(result, map[string]any{
			"issues": map[string]any{"nodes": g.issues},
		})
	case mutationCreateIssue:
		issue := Issue{ID: "issue-uuid-1", Identifier: "T-1", Title: "created"}
		if len(g.issues) > 0 {
			issue = g.issues[0]
		}
		return respond(result, map[string]any{
			"issueCreate": map[string]any{"success": true, "issue": issue},
		})
	default:
		return nil
	}
}

// respond round-trips a payload through JSON into result, mimicking the
// real gateway's decoding of the data field.
func respond(result any, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, result)
}

func marshalJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshaling %v: %v", v, err)
	}
	return string(b)
}

const testUUID = "123e4567-e89b-12d3-a456-426614174000"

func TestResolveUUIDPassthrough(t *testing.T) {
	gw := &fakeGateway{}
	r := NewTeamResolver(gw)

	team, err := r.Resolve(context.Background(), testUUID)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if team.ID != testUUID {
		t.Errorf("team.ID = %q, want %q", team.ID, testUUID)
	}
	if len(gw.calls) != 0 {
		t.Errorf("gateway calls = %d, want 0 (UUIDs skip lookup)", len(gw.calls))
	}
}

func TestResolveKeyCandidateVariables(t *testing.T) {
	gw := &fakeGateway{teams: []Team{{ID: "id-1", Key: "ABC1", Name: "Alpha Bravo Charlie"}}}
	r := NewTeamResolver(gw)

	team, err := r.Resolve(context.Background(), "ABC1")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if team.Key != "ABC1" {
		t.Errorf("team.Key = %q, want ABC1", team.Key)
	}

	if len(gw.calls) != 1 {
		t.Fatalf("gateway calls = %d, want 1", len(gw.calls))
	}
	got := marshalJSON(t, gw.calls[0].variables)
	want := `{"teamKey":"ABC1","teamName":null}`
	if got != want {
		t.Errorf("lookup variables = %s, want %s", got, want)
	}
}

func TestResolveNameCandidateVariables(t *testing.T) {
	gw := &fakeGateway{teams: []Team{{ID: "id-1", Key: "PLT", Name: "Platform Team"}}}
	r := NewTeamResolver(gw)

	if _, err := r.Resolve(context.Background(), "Platform Team"); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	got := marshalJSON(t, gw.calls[0].variables)
	want := `{"teamKey":null,"teamName":"Platform Team"}`
	if got != want {
		t.Errorf("lookup variables = %s, want %s", got, want)
	}
}

func TestResolveNoCandidates(t *testing.T) {
	gw := &fakeGateway{}
	r := NewTeamResolver(gw)

	_, err := r.Resolve(context.Background(), "GHOST")
	if err == nil {
		t.Fatal("Resolve() expected error for empty candidate set")
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want *NotFoundError", err)
	}
	if !strings.Contains(err.Error(), `Team "GHOST" not found`) {
		t.Errorf("error message = %q, want it to contain %q", err.Error(), `Team "GHOST" not found`)
	}
}

// A returned candidate must actually match the requested identifier. The
// lookup filter ORs two branches and an unconstrained branch matches every
// team, so the server handing back a record proves nothing by itself.
func TestResolveRejectsNonMatchingCandidate(t *testing.T) {
	gw := &fakeGateway{teams: []Team{{ID: "id-9", Key: "OTHER", Name: "Other Team"}}}
	r := NewTeamResolver(gw)

	_, err := r.Resolve(context.Background(), "NONEXISTENT")
	if err == nil {
		t.Fatal("Resolve() expected error for non-matching candidate")
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want *NotFoundError", err)
	}
	if nf.Identifier != "NONEXISTENT" {
		t.Errorf("Identifier = %q, want NONEXISTENT", nf.Identifier)
	}
	// Same message as the empty case: a non-matching record and no record
	// are indistinguishable to callers.
	if got, want := err.Error(), `Team "NONEXISTENT" not found`; got != want {
		t.Errorf("error message = %q, want %q", got, want)
	}
}

func TestResolveCaseInsensitiveMatch(t *testing.T) {
	candidate := Team{ID: "id-1", Key: "ENG", Name: "Engineering"}

	tests := []struct {
		name string
		raw  string
	}{
		{"exact key", "ENG"},
		{"lowercase key", "eng"},
		{"mixed case key", "eNg"},
		{"exact name", "Engineering"},
		{"lowercase name", "engineering"},
		{"uppercase name", "ENGINEERING"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{teams: []Team{candidate}}
			r := NewTeamResolver(gw)

			team, err := r.Resolve(context.Background(), tt.raw)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.raw, err)
			}
			if *team != candidate {
				t.Errorf("Resolve(%q) = %+v, want candidate unchanged %+v", tt.raw, *team, candidate)
			}
		})
	}
}

// Current behavior with multiple candidates: only the first is considered.
// If it fails validation the whole resolution fails even when a later
// candidate would have matched.
func TestResolveFirstCandidateOnly(t *testing.T) {
	gw := &fakeGateway{teams: []Team{
		{ID: "id-1", Key: "OPS", Name: "Operations"},
		{ID: "id-2", Key: "ENG", Name: "Engineering"},
	}}
	r := NewTeamResolver(gw)

	team, err := r.Resolve(context.Background(), "OPS")
	if err != nil {
		t.Fatalf("Resolve(OPS) error = %v", err)
	}
	if team.ID != "id-1" {
		t.Errorf("team.ID = %q, want id-1", team.ID)
	}

	gw2 := &fakeGateway{teams: gw.teams}
	if _, err := NewTeamResolver(gw2).Resolve(context.Background(), "ENG"); err == nil {
		t.Error("Resolve(ENG) succeeded via second candidate; only the first should be considered")
	}
}

func TestResolveSingleRoundTrip(t *testing.T) {
	gw := &fakeGateway{}
	r := NewTeamResolver(gw)

	_, _ = r.Resolve(context.Background(), "GHOST")
	if len(gw.calls) != 1 {
		t.Errorf("gateway calls = %d, want exactly 1 (no retries)", len(gw.calls))
	}
}

func TestResolveGatewayErrorPropagates(t *testing.T) {
	gwErr := errors.New("boom")
	gw := &fakeGateway{err: gwErr}
	r := NewTeamResolver(gw)

	_, err := r.Resolve(context.Background(), "ENG")
	if !errors.Is(err, gwErr) {
		t.Errorf("error = %v, want wrapped gateway error", err)
	}
}
