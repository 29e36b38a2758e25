package daytona

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/agentbox/agentbox/internal/log"
	"github.com/agentbox/agentbox/internal/model"
)

const (
	// ProviderName is the backend selection name for this provider.
	ProviderName = "daytona"

	// supervisordSessionID is the well-known execution session name used for
	// the supervisord bootstrap. A fixed name makes the bootstrap idempotent
	// at the session level: a second invocation targets the same session
	// instead of leaking a new one.
	supervisordSessionID = "supervisord-session"

	supervisordCommand = "exec /usr/bin/supervisord -n -c /etc/supervisor/conf.d/supervisord.conf"
)

// ProviderConfig is the configuration for the Daytona provider.
type ProviderConfig struct {
	// Client is the control plane API client. When nil a default HTTP client
	// is built from APIKey, ServerURL and Target.
	Client       APIClient
	APIKey       string
	ServerURL    string
	Target       string
	SandboxImage string
	Logger       log.Logger
}

func (c *ProviderConfig) defaults() error {
	if c.SandboxImage == "" {
		return fmt.Errorf("sandbox image is required")
	}
	if c.Client == nil {
		client, err := NewClient(ClientConfig{
			APIKey:    c.APIKey,
			ServerURL: c.ServerURL,
			Target:    c.Target,
		})
		if err != nil {
			return fmt.Errorf("could not create control plane client: %w", err)
		}
		c.Client = client
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "provider.Daytona"})
	return nil
}

// Provider is the Daytona implementation of the sandbox provider interface.
// It talks to the Daytona control plane and normalizes its heterogeneous
// sandbox states into the run-or-start retrieval protocol.
type Provider struct {
	client APIClient
	image  string
	logger log.Logger
}

// NewProvider creates a new Daytona provider.
func NewProvider(cfg ProviderConfig) (*Provider, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Provider{
		client: cfg.Client,
		image:  cfg.SandboxImage,
		logger: cfg.Logger,
	}, nil
}

// Name returns the backend name.
func (p *Provider) Name() string { return ProviderName }

// GetOrStartSandbox resolves a sandbox id to a handle over a running
// instance.
//
// The remote state is fetched once; only stopped and archived sandboxes get
// a start command, followed by a single re-fetch and the supervisord
// bootstrap. Exactly one restart attempt is made per call, transient
// failures propagate to the caller which may re-invoke the whole operation.
func (p *Provider) GetOrStartSandbox(ctx context.Context, sandboxID string) (*model.SandboxHandle, error) {
	p.logger.Infof("Getting or starting sandbox: %s", sandboxID)

	sb, err := p.client.GetSandbox(ctx, sandboxID)
	if err != nil {
		return nil, fmt.Errorf("could not get sandbox: %w", err)
	}

	if normalizeState(sb.State).Dormant() {
		p.logger.Infof("Sandbox %s is in %s state, starting", sandboxID, sb.State)

		if err := p.client.StartSandbox(ctx, sandboxID); err != nil {
			return nil, fmt.Errorf("could not start sandbox: %w", err)
		}

		sb, err = p.client.GetSandbox(ctx, sandboxID)
		if err != nil {
			return nil, fmt.Errorf("could not refresh sandbox after start: %w", err)
		}

		// A freshly started sandbox has no supervisor running, bootstrap it
		// before handing the handle back. Already running sandboxes keep
		// their supervisor alive, so they skip this.
		if err := p.StartSupervisordSession(ctx, p.handle(sb)); err != nil {
			return nil, fmt.Errorf("could not bootstrap supervisord: %w", err)
		}
	}

	return p.handle(sb), nil
}

// CreateSandbox provisions a new sandbox with the fixed runtime image, the
// default resource envelope and the display/browser environment, then
// bootstraps the supervisord session so the returned handle is immediately
// usable.
func (p *Provider) CreateSandbox(ctx context.Context, cfg model.CreateConfig) (*model.SandboxHandle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	p.logger.Debugf("Creating new sandbox environment")

	sb, err := p.client.CreateSandbox(ctx, CreateSandboxRequest{
		Image:   p.image,
		Public:  true,
		Labels:  cfg.Labels(),
		EnvVars: model.DisplayEnv(cfg.Password),
		Resources: Resources{
			CPU:    model.DefaultResources.CPUs,
			Memory: model.DefaultResources.MemoryGB,
			Disk:   model.DefaultResources.DiskGB,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not create sandbox: %w", err)
	}

	handle := p.handle(sb)
	if err := p.StartSupervisordSession(ctx, handle); err != nil {
		return nil, fmt.Errorf("could not bootstrap supervisord: %w", err)
	}

	p.logger.Debugf("Sandbox %s created", sb.ID)
	return handle, nil
}

// StartSupervisordSession ensures supervisord is running inside the sandbox.
//
// The command is issued fire-and-forget against the well-known session name,
// a session that already exists is reused. Readiness polling is the caller's
// concern.
func (p *Provider) StartSupervisordSession(ctx context.Context, handle *model.SandboxHandle) error {
	sandboxID := handle.Sandbox.ID
	p.logger.Infof("Creating session %s for supervisord", supervisordSessionID)

	err := p.client.CreateSession(ctx, sandboxID, supervisordSessionID)
	if err != nil && !errors.Is(err, model.ErrAlreadyExists) {
		return fmt.Errorf("could not create session: %w", err)
	}

	err = p.client.ExecuteSessionCommand(ctx, sandboxID, supervisordSessionID, SessionExecuteRequest{
		Command: supervisordCommand,
		Async:   true,
	})
	if err != nil {
		return fmt.Errorf("could not execute supervisord command: %w", err)
	}

	p.logger.Infof("Supervisord started in session %s", supervisordSessionID)
	return nil
}

func (p *Provider) handle(sb *Sandbox) *model.SandboxHandle {
	return &model.SandboxHandle{
		Provider: ProviderName,
		Usable:   true,
		Sandbox: model.Sandbox{
			ID:     sb.ID,
			State:  normalizeState(sb.State),
			Labels: sb.Labels,
		},
	}
}

// normalizeState maps control plane states onto the common state set.
// Unknown states pass through unmodified (lowercased) and are treated as
// already usable by the retrieval protocol.
func normalizeState(s string) model.SandboxState {
	return model.SandboxState(strings.ToLower(s))
}
