package api

import "context"

// DashboardService wraps the /dashboard endpoint.
type DashboardService struct {
	c *Client
}

// Get returns aggregate stats and recent items.
func (s *DashboardService) Get(ctx context.Context) (Dashboard, error) {
	var out Dashboard
	err := s.c.get(ctx, "/dashboard", nil, &out)
	return out, err
}
