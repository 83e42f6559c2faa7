package tracker

import (
	"fmt"
	"strings"
)

// NotFoundError reports that an identifier did not resolve to a record,
// either because the API returned nothing or because the returned record
// failed validation against the requested identifier. The two cases are
// deliberately indistinguishable to callers.
type NotFoundError struct {
	Resource   string
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Identifier)
}

// GraphQLError carries the errors array of a GraphQL response.
type GraphQLError struct {
	Errors []GraphQLErrorItem
}

// GraphQLErrorItem is a single entry in a GraphQL errors array.
type GraphQLErrorItem struct {
	Message string   `json:"message"`
	Path    []string `json:"path,omitempty"`
}

func (e *GraphQLError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, item := range e.Errors {
		msgs[i] = item.Message
	}
	return fmt.Sprintf("graphql: %s", strings.Join(msgs, "; "))
}

// RateLimitError represents an API rate limit response.
type RateLimitError struct {
	Status     int
	RetryAfter string
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter != "" {
		return fmt.Sprintf("rate limit: HTTP %d (retry after %s)", e.Status, e.RetryAfter)
	}
	return fmt.Sprintf("rate limit: HTTP %d", e.Status)
}

// TransientError represents a server-side failure that may be retried.
type TransientError struct {
	Status int
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient error: HTTP %d", e.Status)
}
