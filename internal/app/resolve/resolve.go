package resolve

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agentbox/agentbox/internal/log"
	"github.com/agentbox/agentbox/internal/model"
	"github.com/agentbox/agentbox/internal/provider"
	"github.com/agentbox/agentbox/internal/storage"
)

// ServiceConfig is the configuration for the resolve service.
type ServiceConfig struct {
	Provider   provider.Provider
	Repository storage.Repository
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Provider == nil {
		return fmt.Errorf("provider is required")
	}
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Resolve"})
	return nil
}

// Service resolves a sandbox to a usable state: fetches it from the backend,
// starting it first if it is dormant.
type Service struct {
	provider provider.Provider
	repo     storage.Repository
	logger   log.Logger
}

// NewService creates a new resolve service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		provider: cfg.Provider,
		repo:     cfg.Repository,
		logger:   cfg.Logger,
	}, nil
}

// Run resolves the sandbox with the given id.
func (s *Service) Run(ctx context.Context, sandboxID string) (*model.SandboxHandle, error) {
	if sandboxID == "" {
		return nil, fmt.Errorf("sandbox id is required: %w", model.ErrNotValid)
	}

	handle, err := s.provider.GetOrStartSandbox(ctx, sandboxID)
	if err != nil {
		return nil, fmt.Errorf("could not resolve sandbox %s: %w", sandboxID, err)
	}

	// Sandboxes created elsewhere have no local record, that is fine.
	err = s.repo.TouchSandboxRecord(ctx, sandboxID, time.Now().UTC())
	switch {
	case errors.Is(err, model.ErrNotFound):
		s.logger.Debugf("No local record for sandbox %s", sandboxID)
	case err != nil:
		s.logger.Warningf("Could not update local record for sandbox %s: %v", sandboxID, err)
	}

	return handle, nil
}
