package doctor

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/meditrack/meditrack/internal/core/config"
)

// BackendCheck verifies the backend API is reachable.
type BackendCheck struct {
	config *config.Config
	client *http.Client
}

// NewBackendCheck creates a new backend reachability check.
func NewBackendCheck(cfg *config.Config) *BackendCheck {
	return &BackendCheck{
		config: cfg,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *BackendCheck) Name() string {
	return "Backend"
}

func (c *BackendCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	if c.config == nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "Reachable",
			Status: StatusFail,
			Detail: "configuration not loaded",
		})
		return result
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/suggestions/record-types", nil)
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "Reachable",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "Reachable",
			Status: StatusFail,
			Detail: fmt.Sprintf("%s: %v", c.config.BaseURL, err),
		})
		return result
	}
	defer resp.Body.Close()

	elapsed := time.Since(start).Round(time.Millisecond)

	// Any HTTP response means the server is up; auth failures are fine here.
	result.Items = append(result.Items, CheckItem{
		Label:  "Reachable",
		Status: StatusPass,
		Detail: fmt.Sprintf("%s (%s)", c.config.BaseURL, elapsed),
	})

	return result
}
