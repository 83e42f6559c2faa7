package tracker

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Operation documents sent to the API. All parameterization goes through
// GraphQL variables; values are never interpolated into the document text.
const (
	// queryResolveTeams looks a team up by key or name. The filter is a
	// logical OR across both variables, and the server treats an omitted
	// variable as an unconstrained branch that matches every team, so
	// callers must always supply both variables with the inactive one
	// explicitly null. See teamLookupVariables.
	queryResolveTeams = `query ResolveTeams($teamKey: String, $teamName: String) {
  teams(filter: { or: [{ key: { eqIgnoreCase: $teamKey } }, { name: { eqIgnoreCase: $teamName } }] }, first: 10) {
    nodes { id key name }
  }
}`

	queryTeams = `query Teams {
  teams {
    nodes { id key name }
  }
}`

	queryIssues = `query Issues($filter: IssueFilter, $first: Int) {
  issues(filter: $filter, first: $first) {
    nodes {
      id
      identifier
      title
      description
      priority
      url
      state { name }
      team { id key name }
    }
  }
}`

	queryIssue = `query Issue($id: String!) {
  issue(id: $id) {
    id
    identifier
    title
    description
    priority
    url
    state { name }
    team { id key name }
  }
}`

	queryViewer = `query Viewer {
  viewer { id name email }
}`

	mutationCreateIssue = `mutation CreateIssue($input: IssueCreateInput!) {
  issueCreate(input: $input) {
    success
    issue {
      id
      identifier
      title
      description
      priority
      url
      state { name }
      team { id key name }
    }
  }
}`
)

// ParseOperation parses a GraphQL document and returns its first operation
// name, or "" for anonymous operations. A syntactically invalid document is
// an error; commands use this to reject bad queries before any network call.
func ParseOperation(document string) (string, error) {
	doc, err := parser.ParseQuery(&ast.Source{Input: document})
	if err != nil {
		return "", err
	}
	if len(doc.Operations) == 0 {
		return "", nil
	}
	return doc.Operations[0].Name, nil
}

// operationName extracts the operation name from one of the documents
// above, ignoring parse errors (the documents are parse-checked in tests).
func operationName(document string) string {
	name, err := ParseOperation(document)
	if err != nil {
		return ""
	}
	return name
}
