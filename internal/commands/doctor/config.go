package doctor

import (
	"context"
	"os"

	"github.com/meditrack/meditrack/internal/core/config"
)

// ConfigCheck validates the configuration and data directory.
type ConfigCheck struct {
	config     *config.Config
	configPath string
}

// NewConfigCheck creates a new configuration check.
func NewConfigCheck(cfg *config.Config, configPath string) *ConfigCheck {
	return &ConfigCheck{
		config:     cfg,
		configPath: configPath,
	}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	if c.config == nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "Config loaded",
			Status: StatusFail,
			Detail: "configuration not loaded",
		})
		return result
	}

	if err := c.config.Validate(); err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "Config valid",
			Status: StatusFail,
			Detail: err.Error(),
		})
	} else {
		result.Items = append(result.Items, CheckItem{
			Label:  "Config valid",
			Status: StatusPass,
			Detail: c.config.BaseURL,
		})
	}

	if _, err := os.Stat(c.configPath); err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "Config file",
			Status: StatusWarn,
			Detail: "no config file at " + c.configPath + " (using defaults)",
		})
	} else {
		result.Items = append(result.Items, CheckItem{
			Label:  "Config file",
			Status: StatusPass,
			Detail: c.configPath,
		})
	}

	if info, err := os.Stat(c.config.DataDir); err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "Data directory",
			Status: StatusWarn,
			Detail: "missing " + c.config.DataDir + " (created on first sign-in)",
		})
	} else if !info.IsDir() {
		result.Items = append(result.Items, CheckItem{
			Label:  "Data directory",
			Status: StatusFail,
			Detail: c.config.DataDir + " is not a directory",
		})
	} else {
		result.Items = append(result.Items, CheckItem{
			Label:  "Data directory",
			Status: StatusPass,
			Detail: c.config.DataDir,
		})
	}

	return result
}
