package create

import (
	"context"
	"fmt"
	"time"

	"github.com/agentbox/agentbox/internal/log"
	"github.com/agentbox/agentbox/internal/model"
	"github.com/agentbox/agentbox/internal/provider"
	"github.com/agentbox/agentbox/internal/storage"
)

// ServiceConfig is the configuration for the create service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Create"})
	return nil
}

// Service handles sandbox creation business logic.
type Service struct {
	provider provider.Provider
	repo     storage.Repository
	logger   log.Logger
}

// NewService creates a new create service.
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

// Request represents the create request parameters.
type Request struct {
	// Password is the VNC password set on the sandbox display session.
	Password string
	// ProjectID is the optional project the sandbox belongs to.
	ProjectID string
}

// Run creates a new sandbox on the backend and records it locally.
func (s *Service) Run(ctx context.Context, req Request) (*model.SandboxHandle, error) {
	cfg := model.CreateConfig{
		Password:  req.Password,
		ProjectID: req.ProjectID,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid create request: %w", err)
	}

	handle, err := s.provider.CreateSandbox(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create sandbox: %w", err)
	}

	// The sandbox already exists on the backend at this point, so a
	// bookkeeping failure must not lose the handle.
	rec := model.SandboxRecord{
		ID:        handle.Sandbox.ID,
		Provider:  handle.Provider,
		ProjectID: req.ProjectID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateSandboxRecord(ctx, rec); err != nil {
		s.logger.Warningf("Could not record sandbox %s locally: %v", handle.Sandbox.ID, err)
	}

	s.logger.Infof("Created sandbox: %s", handle.Sandbox.ID)

	return handle, nil
}
