package usecase

import (
	"context"

	"github.com/trebuchet-org/nounsgov/internal/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Config     *config.RuntimeConfig
	ConfigPath string
	Exists     bool
}

// ShowConfig is a use case for showing the resolved configuration
type ShowConfig struct {
	cfg *config.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig) *ShowConfig {
	return &ShowConfig{
		cfg: cfg,
	}
}

// Run returns the runtime config with secrets redacted
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	return &ShowConfigResult{
		Config:     uc.cfg.Redacted(),
		ConfigPath: uc.cfg.ConfigPath,
		Exists:     uc.cfg.ConfigPath != "",
	}, nil
}
