package tracker

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// End-to-end scenarios through the public operations, with the gateway
// substituted. Both operations delegate team resolution to the resolver
// and abort on its NotFoundError.

func TestSearchIssuesRejectsUnresolvedTeam(t *testing.T) {
	gw := &fakeGateway{teams: []Team{{ID: "id-9", Key: "OTHER", Name: "Other Team"}}}
	c := New(gw)

	_, err := c.SearchIssues(context.Background(), IssueSearchOptions{Team: "NONEXISTENT"})
	if err == nil {
		t.Fatal("SearchIssues() expected error")
	}
	if got, want := err.Error(), `Team "NONEXISTENT" not found`; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}

	// The search itself must not run after a failed resolution.
	for _, call := range gw.calls {
		if call.query == queryIssues {
			t.Error("issues query executed despite failed team resolution")
		}
	}
}

func TestCreateIssueResolvesKeyWithDigits(t *testing.T) {
	created := Issue{ID: "issue-1", Identifier: "ABC1-7", Title: "Fix the filter"}
	gw := &fakeGateway{
		teams:  []Team{{ID: "team-abc1", Key: "ABC1", Name: "Alpha Bravo Charlie"}},
		issues: []Issue{created},
	}
	c := New(gw)

	issue, err := c.CreateIssue(context.Background(), IssueCreateOptions{
		Team:  "ABC1",
		Title: "Fix the filter",
	})
	if err != nil {
		t.Fatalf("CreateIssue() error = %v", err)
	}
	if issue.Identifier != "ABC1-7" {
		t.Errorf("issue.Identifier = %q, want ABC1-7", issue.Identifier)
	}

	if len(gw.calls) != 2 {
		t.Fatalf("gateway calls = %d, want 2 (resolve + create)", len(gw.calls))
	}
	if gw.calls[0].query != queryResolveTeams {
		t.Fatalf("first call = %q, want team resolution", gw.calls[0].query)
	}
	// "ABC1" contains a digit but is still a key candidate; the name
	// branch must be an explicit null.
	got := marshalJSON(t, gw.calls[0].variables)
	if got != `{"teamKey":"ABC1","teamName":null}` {
		t.Errorf("resolve variables = %s", got)
	}

	vars := marshalJSON(t, gw.calls[1].variables)
	if !strings.Contains(vars, `"teamId":"team-abc1"`) {
		t.Errorf("create variables = %s, want resolved team id", vars)
	}
}

func TestSearchIssuesUUIDTeamSkipsResolution(t *testing.T) {
	gw := &fakeGateway{issues: []Issue{{ID: "issue-1", Identifier: "ENG-1", Title: "A bug"}}}
	c := New(gw)

	issues, err := c.SearchIssues(context.Background(), IssueSearchOptions{Team: testUUID})
	if err != nil {
		t.Fatalf("SearchIssues() error = %v", err)
	}
	if len(issues) != 1 {
		t.Fatalf("issues = %d, want 1", len(issues))
	}

	// Exactly one gateway call total: the search itself, none for
	// resolution.
	if len(gw.calls) != 1 {
		t.Fatalf("gateway calls = %d, want 1", len(gw.calls))
	}
	if gw.calls[0].query != queryIssues {
		t.Errorf("call = %q, want issues query", gw.calls[0].query)
	}
	vars := marshalJSON(t, gw.calls[0].variables)
	if !strings.Contains(vars, `"eq":"`+testUUID+`"`) {
		t.Errorf("search variables = %s, want team filter on UUID", vars)
	}
}

func TestSearchIssuesLowercaseNameResolves(t *testing.T) {
	gw := &fakeGateway{
		teams:  []Team{{ID: "team-eng", Key: "ENG", Name: "Engineering"}},
		issues: []Issue{{ID: "issue-1", Identifier: "ENG-1"}},
	}
	c := New(gw)

	if _, err := c.SearchIssues(context.Background(), IssueSearchOptions{Team: "engineering"}); err != nil {
		t.Fatalf("SearchIssues() error = %v", err)
	}

	vars := marshalJSON(t, gw.calls[1].variables)
	if !strings.Contains(vars, `"eq":"team-eng"`) {
		t.Errorf("search variables = %s, want resolved team id", vars)
	}
}

func TestCreateIssueRejectsUnresolvedTeam(t *testing.T) {
	gw := &fakeGateway{}
	c := New(gw)

	_, err := c.CreateIssue(context.Background(), IssueCreateOptions{Team: "GHOST", Title: "x"})

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want *NotFoundError", err)
	}
	for _, call := range gw.calls {
		if call.query == mutationCreateIssue {
			t.Error("create mutation executed despite failed team resolution")
		}
	}
}

func TestCreateIssueRequiresTeamAndTitle(t *testing.T) {
	c := New(&fakeGateway{})

	if _, err := c.CreateIssue(context.Background(), IssueCreateOptions{Title: "x"}); err == nil {
		t.Error("CreateIssue() without team expected error")
	}
	if _, err := c.CreateIssue(context.Background(), IssueCreateOptions{Team: testUUID}); err == nil {
		t.Error("CreateIssue() without title expected error")
	}
}

func TestSearchIssuesNoTeamFilter(t *testing.T) {
	gw := &fakeGateway{issues: []Issue{{ID: "issue-1"}}}
	c := New(gw)

	if _, err := c.SearchIssues(context.Background(), IssueSearchOptions{Query: "login"}); err != nil {
		t.Fatalf("SearchIssues() error = %v", err)
	}
	if len(gw.calls) != 1 || gw.calls[0].query != queryIssues {
		t.Fatalf("calls = %+v, want single issues query", gw.calls)
	}
}
