// Package docker implements the sandbox provider interface against a local
// Docker daemon. It is mainly useful for development and CI, where a remote
// control plane is not available but the lifecycle semantics must match.
package docker

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	"github.com/oklog/ulid/v2"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/agentbox/agentbox/internal/log"
	"github.com/agentbox/agentbox/internal/model"
)

const (
	// ProviderName is the backend selection name for this provider.
	ProviderName = "docker"

	supervisordCommand = "exec /usr/bin/supervisord -n -c /etc/supervisor/conf.d/supervisord.conf"
)

// DockerClient is the interface for the Docker operations that we use.
// This allows us to mock the Docker client for testing.
type DockerClient interface {
	ImagePull(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error)
	ContainerCreate(ctx context.Context, config *container.Config, hostConfig *container.HostConfig, networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, containerName string) (container.CreateResponse, error)
	ContainerStart(ctx context.Context, containerID string, options container.StartOptions) error
	ContainerInspect(ctx context.Context, containerID string) (container.InspectResponse, error)
	ContainerExecCreate(ctx context.Context, containerID string, options container.ExecOptions) (container.ExecCreateResponse, error)
	ContainerExecStart(ctx context.Context, execID string, options container.ExecStartOptions) error
}

// ProviderConfig is the configuration for the Docker provider.
type ProviderConfig struct {
	// Client defaults to a Docker client built from the environment.
	Client       DockerClient
	SandboxImage string
	Logger       log.Logger
}

func (c *ProviderConfig) defaults() error {
	if c.SandboxImage == "" {
		return fmt.Errorf("sandbox image is required")
	}
	if c.Client == nil {
		cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
		if err != nil {
			return fmt.Errorf("could not create Docker client: %w", err)
		}
		c.Client = cli
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "provider.Docker"})
	return nil
}

// Provider is the Docker implementation of the sandbox provider interface.
type Provider struct {
	client DockerClient
	image  string
	logger log.Logger
}

// NewProvider creates a new Docker provider.
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

// CreateSandbox pulls the sandbox image, creates and starts a container with
// the display environment, the default resource envelope and the optional
// project label, then bootstraps supervisord inside it.
func (p *Provider) CreateSandbox(ctx context.Context, cfg model.CreateConfig) (*model.SandboxHandle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	id := ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
	name := containerName(id)

	p.logger.Infof("Pulling image: %s", p.image)
	pullResp, err := p.client.ImagePull(ctx, p.image, image.PullOptions{})
	if err != nil {
		return nil, fmt.Errorf("could not pull image %s: %v: %w", p.image, err, model.ErrRejected)
	}
	_, _ = io.Copy(io.Discard, pullResp)
	pullResp.Close()

	var envVars []string
	for k, v := range model.DisplayEnv(cfg.Password) {
		envVars = append(envVars, fmt.Sprintf("%s=%s", k, v))
	}

	containerConfig := &container.Config{
		Image:  p.image,
		Env:    envVars,
		Labels: cfg.Labels(),
		Cmd:    []string{"tail", "-f", "/dev/null"}, // Keep container running.
	}
	hostConfig := &container.HostConfig{
		Resources: container.Resources{
			NanoCPUs: int64(model.DefaultResources.CPUs) * 1e9,
			Memory:   int64(model.DefaultResources.MemoryGB) * 1024 * 1024 * 1024,
		},
	}

	p.logger.Infof("Creating container: %s", name)
	resp, err := p.client.ContainerCreate(ctx, containerConfig, hostConfig, nil, nil, name)
	if err != nil {
		return nil, fmt.Errorf("could not create container: %w", err)
	}

	if err := p.client.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	handle := &model.SandboxHandle{
		Provider: ProviderName,
		Usable:   true,
		Sandbox: model.Sandbox{
			ID:     id,
			State:  model.SandboxStateRunning,
			Labels: cfg.Labels(),
		},
	}

	if err := p.StartSupervisordSession(ctx, handle); err != nil {
		return nil, fmt.Errorf("could not bootstrap supervisord: %w", err)
	}

	p.logger.Infof("Created Docker sandbox: %s", id)
	return handle, nil
}

// GetOrStartSandbox inspects the sandbox container and starts it when its
// state is dormant, re-inspecting and bootstrapping supervisord afterwards.
func (p *Provider) GetOrStartSandbox(ctx context.Context, sandboxID string) (*model.SandboxHandle, error) {
	p.logger.Infof("Getting or starting sandbox: %s", sandboxID)

	sb, err := p.inspect(ctx, sandboxID)
	if err != nil {
		return nil, err
	}

	if sb.State.Dormant() {
		p.logger.Infof("Sandbox %s is in %s state, starting", sandboxID, sb.State)

		if err := p.client.ContainerStart(ctx, containerName(sandboxID), container.StartOptions{}); err != nil {
			return nil, fmt.Errorf("could not start container: %w", err)
		}

		sb, err = p.inspect(ctx, sandboxID)
		if err != nil {
			return nil, fmt.Errorf("could not refresh sandbox after start: %w", err)
		}

		handle := &model.SandboxHandle{Provider: ProviderName, Usable: true, Sandbox: *sb}
		if err := p.StartSupervisordSession(ctx, handle); err != nil {
			return nil, fmt.Errorf("could not bootstrap supervisord: %w", err)
		}
	}

	return &model.SandboxHandle{Provider: ProviderName, Usable: true, Sandbox: *sb}, nil
}

// StartSupervisordSession runs supervisord inside the sandbox container with
// a detached exec.
//
// Docker has no named-session API, so this backend cannot reuse an existing
// session the way remote control planes do: each invocation issues a new
// detached exec and relies on supervisord refusing to double-start against
// the same pidfile. That is the narrower idempotence contract it guarantees.
func (p *Provider) StartSupervisordSession(ctx context.Context, handle *model.SandboxHandle) error {
	name := containerName(handle.Sandbox.ID)
	p.logger.Infof("Starting supervisord in container %s", name)

	execResp, err := p.client.ContainerExecCreate(ctx, name, container.ExecOptions{
		Cmd:    []string{"sh", "-c", supervisordCommand},
		Detach: true,
	})
	if err != nil {
		return fmt.Errorf("could not create exec: %w", err)
	}

	if err := p.client.ContainerExecStart(ctx, execResp.ID, container.ExecStartOptions{Detach: true}); err != nil {
		return fmt.Errorf("could not start exec: %w", err)
	}

	return nil
}

func (p *Provider) inspect(ctx context.Context, sandboxID string) (*model.Sandbox, error) {
	name := containerName(sandboxID)

	info, err := p.client.ContainerInspect(ctx, name)
	if err != nil {
		if strings.Contains(err.Error(), "No such container") {
			return nil, fmt.Errorf("container %s: %w", name, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not inspect container %s: %w", name, model.ErrTransient)
	}

	return &model.Sandbox{
		ID:     sandboxID,
		State:  mapContainerState(info.State.Status),
		Labels: info.Config.Labels,
	}, nil
}

// mapContainerState maps Docker container states onto the common state set.
// Created and exited containers are dormant, anything unknown passes through
// unmodified like remote provider-specific states do.
func mapContainerState(status string) model.SandboxState {
	switch status {
	case "running":
		return model.SandboxStateRunning
	case "created", "exited":
		return model.SandboxStateStopped
	case "dead":
		return model.SandboxStateError
	default:
		return model.SandboxState(status)
	}
}

func containerName(id string) string {
	return fmt.Sprintf("agentbox-%s", strings.ToLower(id))
}
