// Package registry selects the configured sandbox backend and exposes the
// unified lifecycle API over it. Selection is lazy and happens at most once
// per process, which guarantees a single control plane client (and a single
// credential handshake) no matter how many concurrent callers race the first
// lifecycle request.
package registry

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/agentbox/agentbox/internal/config"
	"github.com/agentbox/agentbox/internal/log"
	"github.com/agentbox/agentbox/internal/model"
	"github.com/agentbox/agentbox/internal/provider"
	"github.com/agentbox/agentbox/internal/provider/daytona"
	"github.com/agentbox/agentbox/internal/provider/docker"
	"github.com/agentbox/agentbox/internal/provider/e2b"
)

// Factory constructs a sandbox backend.
type Factory func() (provider.Provider, error)

// RegistryConfig is the configuration for the provider registry.
type RegistryConfig struct {
	Config *config.Config
	// Factories maps backend names to constructors. Defaults to the known
	// backends, overridable for tests.
	Factories map[string]Factory
	Logger    log.Logger
}

func (c *RegistryConfig) defaults() error {
	if c.Config == nil {
		return fmt.Errorf("configuration is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "provider.Registry"})

	if c.Factories == nil {
		cfg := *c.Config
		logger := c.Logger
		c.Factories = map[string]Factory{
			daytona.ProviderName: func() (provider.Provider, error) {
				return daytona.NewProvider(daytona.ProviderConfig{
					APIKey:       cfg.APIKey,
					ServerURL:    cfg.ServerURL,
					Target:       cfg.Target,
					SandboxImage: cfg.SandboxImage,
					Logger:       logger,
				})
			},
			e2b.ProviderName: func() (provider.Provider, error) {
				return e2b.NewProvider(e2b.ProviderConfig{Logger: logger})
			},
			docker.ProviderName: func() (provider.Provider, error) {
				return docker.NewProvider(docker.ProviderConfig{
					SandboxImage: cfg.SandboxImage,
					Logger:       logger,
				})
			},
		}
	}
	return nil
}

var _ provider.Provider = (*Registry)(nil)

// Registry resolves the configured backend once and delegates the lifecycle
// operations to it. Safe for concurrent use.
type Registry struct {
	selection string
	factories map[string]Factory
	logger    log.Logger

	once     sync.Once
	provider provider.Provider
	err      error
}

// NewRegistry creates a new provider registry. The backend is not
// constructed here: construction is deferred to the first lifecycle call so
// misconfiguration surfaces there, once, and is then memoized.
func NewRegistry(cfg RegistryConfig) (*Registry, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Registry{
		selection: cfg.Config.Provider,
		factories: cfg.Factories,
		logger:    cfg.Logger,
	}, nil
}

// Provider returns the selected backend, constructing it on first use. Every
// call returns the identical instance (or the identical construction error).
// It is the escape hatch for callers needing direct backend access.
func (r *Registry) Provider() (provider.Provider, error) {
	r.once.Do(func() {
		name := strings.ToLower(r.selection)
		factory, ok := r.factories[name]
		if !ok {
			if name != "" {
				r.logger.Warningf("Unknown sandbox provider %q, falling back to %s", r.selection, config.DefaultProvider)
			}
			name = config.DefaultProvider
			factory = r.factories[name]
		}

		r.provider, r.err = factory()
		if r.err != nil {
			r.err = fmt.Errorf("could not create %q sandbox provider: %w", name, r.err)
			return
		}

		r.logger.Infof("Using sandbox provider: %s", name)
	})

	return r.provider, r.err
}

// Name returns the name of the selected backend, or an empty string if the
// backend could not be constructed.
func (r *Registry) Name() string {
	p, err := r.Provider()
	if err != nil {
		return ""
	}
	return p.Name()
}

// CreateSandbox delegates to the selected backend.
func (r *Registry) CreateSandbox(ctx context.Context, cfg model.CreateConfig) (*model.SandboxHandle, error) {
	p, err := r.Provider()
	if err != nil {
		return nil, err
	}
	return p.CreateSandbox(ctx, cfg)
}

// GetOrStartSandbox delegates to the selected backend.
func (r *Registry) GetOrStartSandbox(ctx context.Context, sandboxID string) (*model.SandboxHandle, error) {
	p, err := r.Provider()
	if err != nil {
		return nil, err
	}
	return p.GetOrStartSandbox(ctx, sandboxID)
}

// StartSupervisordSession delegates to the selected backend.
func (r *Registry) StartSupervisordSession(ctx context.Context, handle *model.SandboxHandle) error {
	p, err := r.Provider()
	if err != nil {
		return err
	}
	return p.StartSupervisordSession(ctx, handle)
}
