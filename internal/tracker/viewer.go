package tracker

import (
	"context"
	"fmt"
)

// Viewer is the authenticated user.
type Viewer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type viewerResponse struct {
	Viewer Viewer `json:"viewer"`
}

// Viewer fetches the user associated with the API token.
func (c *Client) Viewer(ctx context.Context) (*Viewer, error) {
	var resp viewerResponse
	if err := c.gw.RawRequest(ctx, queryViewer, nil, &resp); err != nil {
		return nil, fmt.Errorf("getting viewer: %w", err)
	}
	return &resp.Viewer, nil
}
