package list

import (
	"context"
	"fmt"

	"github.com/agentbox/agentbox/internal/log"
	"github.com/agentbox/agentbox/internal/model"
	"github.com/agentbox/agentbox/internal/storage"
)

// ServiceConfig is the configuration for the list service.
type ServiceConfig struct {
	Repository storage.Repository
	Logger     log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.List"})
	return nil
}

// Service lists the locally recorded sandboxes.
type Service struct {
	repo   storage.Repository
	logger log.Logger
}

// NewService creates a new list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		repo:   cfg.Repository,
		logger: cfg.Logger,
	}, nil
}

// Run returns all locally recorded sandboxes ordered by creation time.
func (s *Service) Run(ctx context.Context) ([]model.SandboxRecord, error) {
	recs, err := s.repo.ListSandboxRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list sandbox records: %w", err)
	}

	s.logger.Debugf("Listed %d sandbox records", len(recs))

	return recs, nil
}
