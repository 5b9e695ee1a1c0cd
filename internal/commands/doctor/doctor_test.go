package doctor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meditrack/meditrack/internal/core/config"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pass", StatusPass.String())
	assert.Equal(t, "warn", StatusWarn.String())
	assert.Equal(t, "fail", StatusFail.String())
}

func TestSummary(t *testing.T) {
	results := []Result{
		{Name: "a", Items: []CheckItem{
			{Status: StatusPass},
			{Status: StatusPass},
			{Status: StatusWarn},
		}},
		{Name: "b", Items: []CheckItem{
			{Status: StatusFail},
		}},
	}

	passed, warned, failed := Summary(results)
	assert.Equal(t, 2, passed)
	assert.Equal(t, 1, warned)
	assert.Equal(t, 1, failed)
}

func TestRunAll_SetsStatusStrings(t *testing.T) {
	cfg := &config.Config{
		BaseURL:        "http://localhost:8081/api",
		TimeoutSeconds: 30,
		DataDir:        t.TempDir(),
	}

	results := RunAll(context.Background(), []Check{
		NewConfigCheck(cfg, "/nonexistent/config.yaml"),
	})

	require.Len(t, results, 1)
	for _, item := range results[0].Items {
		assert.NotEmpty(t, item.StatusStr)
	}
}

func TestConfigCheck_NilConfig(t *testing.T) {
	result := NewConfigCheck(nil, "").Run(context.Background())

	require.Len(t, result.Items, 1)
	assert.Equal(t, StatusFail, result.Items[0].Status)
}

func TestConfigCheck_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		BaseURL:        "http://localhost:8081/api",
		TimeoutSeconds: 30,
		DataDir:        dir,
	}

	result := NewConfigCheck(cfg, "/nonexistent/config.yaml").Run(context.Background())

	require.Len(t, result.Items, 3)
	assert.Equal(t, StatusPass, result.Items[0].Status, "config should be valid")
	assert.Equal(t, StatusWarn, result.Items[1].Status, "missing config file warns")
	assert.Equal(t, StatusPass, result.Items[2].Status, "data dir exists")
}
