package tracker

import (
	"context"
	"fmt"
)

// Teams lists all teams visible to the authenticated user.
func (c *Client) Teams(ctx context.Context) ([]Team, error) {
	var resp teamsResponse
	if err := c.gw.RawRequest(ctx, queryTeams, nil, &resp); err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	return resp.Teams.Nodes, nil
}
