// Package e2b is a placeholder provider for an E2B or other self-hosted
// sandbox integration. It satisfies the full provider interface but has no
// remote control plane behind it: every operation warns loudly and the
// handles it returns are marked unusable so downstream callers fail visibly
// instead of appearing to succeed.
package e2b

import (
	"context"
	"fmt"

	"github.com/agentbox/agentbox/internal/log"
	"github.com/agentbox/agentbox/internal/model"
)

// ProviderName is the backend selection name for this provider.
const ProviderName = "e2b"

// ProviderConfig is the configuration for the E2B placeholder provider.
type ProviderConfig struct {
	Logger log.Logger
}

func (c *ProviderConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "provider.E2B"})
	return nil
}

// Provider is the E2B placeholder implementation of the provider interface.
type Provider struct {
	logger log.Logger
}

// NewProvider creates a new E2B placeholder provider.
func NewProvider(cfg ProviderConfig) (*Provider, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.Logger.Debugf("Initializing E2B sandbox provider (placeholder, no remote integration)")
	return &Provider{logger: cfg.Logger}, nil
}

// Name returns the backend name.
func (p *Provider) Name() string { return ProviderName }

// GetOrStartSandbox returns an unusable handle for the requested id. The
// remote state is never checked because there is no remote integration.
func (p *Provider) GetOrStartSandbox(ctx context.Context, sandboxID string) (*model.SandboxHandle, error) {
	p.logger.Warningf("E2B provider get-or-start is not implemented, returning unusable handle for %s", sandboxID)

	return &model.SandboxHandle{
		Provider: ProviderName,
		Usable:   false,
		Sandbox:  model.Sandbox{ID: sandboxID},
	}, nil
}

// CreateSandbox fails: creation allocates billable remote resources, so a
// placeholder pretending to succeed would be worse than failing fast.
func (p *Provider) CreateSandbox(ctx context.Context, cfg model.CreateConfig) (*model.SandboxHandle, error) {
	p.logger.Warningf("E2B provider create is not implemented")
	return nil, fmt.Errorf("e2b provider cannot create sandboxes: %w", model.ErrNotImplemented)
}

// StartSupervisordSession has no effect, there is no sandbox to bootstrap.
func (p *Provider) StartSupervisordSession(ctx context.Context, handle *model.SandboxHandle) error {
	p.logger.Warningf("E2B provider supervisord bootstrap is not implemented")
	return nil
}
