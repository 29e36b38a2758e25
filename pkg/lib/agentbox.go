package lib

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentbox/agentbox/internal/app/create"
	"github.com/agentbox/agentbox/internal/app/list"
	"github.com/agentbox/agentbox/internal/app/resolve"
	"github.com/agentbox/agentbox/internal/config"
	"github.com/agentbox/agentbox/internal/log"
	"github.com/agentbox/agentbox/internal/model"
	"github.com/agentbox/agentbox/internal/provider/registry"
	"github.com/agentbox/agentbox/internal/storage/sqlite"
)

const (
	defaultDataDir = ".agentbox"
	defaultDBFile  = "agentbox.db"
)

// Config configures the SDK client.
//
// All fields are optional and have sensible defaults. At minimum, an empty
// Config{} will use ~/.agentbox/agentbox.db for storage and read the backend
// configuration from the environment.
type Config struct {
	// DBPath is the SQLite database path.
	// Default: ~/.agentbox/agentbox.db.
	DBPath string

	// ConfigFile is an optional YAML configuration file path. A missing file
	// is not an error.
	ConfigFile string

	// EnvFile is an optional dotenv file path. A missing file is not an error.
	EnvFile string

	// Provider selects the sandbox backend. When empty the value comes from
	// the configuration file or the AGENTBOX_PROVIDER environment variable,
	// falling back to the default backend.
	Provider string

	// APIKey is the backend API key. Overrides file and environment values.
	APIKey string

	// ServerURL is the backend API URL. Overrides file and environment values.
	ServerURL string

	// Target is the backend deployment region. Overrides file and environment
	// values.
	Target string

	// SandboxImage is the image used for new sandboxes. Overrides file and
	// environment values.
	SandboxImage string

	// Logger receives structured log output from the SDK.
	// Default: noop (silent). See the log sub-package for the interface.
	Logger log.Logger
}

func (c *Config) defaults() error {
	if c.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("could not get user home dir: %w", err)
		}
		c.DBPath = filepath.Join(home, defaultDataDir, defaultDBFile)
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Client is the main SDK entry point for managing sandboxes programmatically.
//
// Create a Client with [New] and release its resources with [Client.Close].
// A Client is safe for concurrent use.
type Client struct {
	registry   *registry.Registry
	createSvc  *create.Service
	resolveSvc *resolve.Service
	listSvc    *list.Service
	closeFn    func() error
}

// New creates a new SDK client backed by a SQLite database.
//
// The caller must call [Client.Close] when done to release the database
// connection. Typically used with defer:
//
//	client, err := lib.New(ctx, lib.Config{})
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
func New(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	appCfg, err := config.Load(config.LoadConfig{
		ConfigFile: cfg.ConfigFile,
		EnvFile:    cfg.EnvFile,
	})
	if err != nil {
		return nil, fmt.Errorf("could not load configuration: %w", err)
	}

	// Explicit client settings take precedence over file and environment.
	if cfg.Provider != "" {
		appCfg.Provider = cfg.Provider
	}
	if cfg.APIKey != "" {
		appCfg.APIKey = cfg.APIKey
	}
	if cfg.ServerURL != "" {
		appCfg.ServerURL = cfg.ServerURL
	}
	if cfg.Target != "" {
		appCfg.Target = cfg.Target
	}
	if cfg.SandboxImage != "" {
		appCfg.SandboxImage = cfg.SandboxImage
	}

	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: cfg.DBPath,
		Logger: cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create repository: %w", err)
	}

	reg, err := registry.NewRegistry(registry.RegistryConfig{
		Config: appCfg,
		Logger: cfg.Logger,
	})
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("could not create provider registry: %w", err)
	}

	createSvc, err := create.NewService(create.ServiceConfig{
		Provider:   reg,
		Repository: repo,
		Logger:     cfg.Logger,
	})
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	resolveSvc, err := resolve.NewService(resolve.ServiceConfig{
		Provider:   reg,
		Repository: repo,
		Logger:     cfg.Logger,
	})
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	listSvc, err := list.NewService(list.ServiceConfig{
		Repository: repo,
		Logger:     cfg.Logger,
	})
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	return &Client{
		registry:   reg,
		createSvc:  createSvc,
		resolveSvc: resolveSvc,
		listSvc:    listSvc,
		closeFn:    repo.Close,
	}, nil
}

// Close releases resources held by the client, including the database connection.
// After Close returns, the client must not be used.
func (c *Client) Close() error {
	if c.closeFn != nil {
		return c.closeFn()
	}
	return nil
}

// CreateSandbox creates a new sandbox on the configured backend and waits for
// its display session to be bootstrapped.
//
// Returns [ErrNotValid] on invalid options and [ErrNotImplemented] when the
// selected backend does not support creation.
func (c *Client) CreateSandbox(ctx context.Context, opts CreateSandboxOpts) (*SandboxHandle, error) {
	handle, err := c.createSvc.Run(ctx, create.Request{
		Password:  opts.Password,
		ProjectID: opts.ProjectID,
	})
	if err != nil {
		return nil, err
	}

	h := fromInternalHandle(*handle)
	return &h, nil
}

// GetOrStartSandbox fetches a sandbox by id, starting it first if it is
// stopped or archived. Always round-trips to the backend: the returned state
// is current, never cached.
//
// Returns [ErrNotFound] if the sandbox does not exist and [ErrTransient] on
// backend outages.
func (c *Client) GetOrStartSandbox(ctx context.Context, sandboxID string) (*SandboxHandle, error) {
	handle, err := c.resolveSvc.Run(ctx, sandboxID)
	if err != nil {
		return nil, err
	}

	h := fromInternalHandle(*handle)
	return &h, nil
}

// Provider returns direct access to the selected backend, an escape hatch for
// advanced callers. The backend is constructed lazily on first use and shared
// with the [Client] methods: calling this never builds a second instance.
func (c *Client) Provider() Provider {
	return &providerFacade{registry: c.registry}
}

type providerFacade struct {
	registry *registry.Registry
}

func (p *providerFacade) Name() string { return p.registry.Name() }

func (p *providerFacade) CreateSandbox(ctx context.Context, opts CreateSandboxOpts) (*SandboxHandle, error) {
	handle, err := p.registry.CreateSandbox(ctx, model.CreateConfig{
		Password:  opts.Password,
		ProjectID: opts.ProjectID,
	})
	if err != nil {
		return nil, err
	}

	h := fromInternalHandle(*handle)
	return &h, nil
}

func (p *providerFacade) GetOrStartSandbox(ctx context.Context, sandboxID string) (*SandboxHandle, error) {
	handle, err := p.registry.GetOrStartSandbox(ctx, sandboxID)
	if err != nil {
		return nil, err
	}

	h := fromInternalHandle(*handle)
	return &h, nil
}

func (p *providerFacade) StartSupervisordSession(ctx context.Context, handle *SandboxHandle) error {
	return p.registry.StartSupervisordSession(ctx, toInternalHandle(handle))
}

// ListSandboxes returns the locally recorded sandboxes ordered by creation
// time. Only sandboxes created from this machine are listed.
func (c *Client) ListSandboxes(ctx context.Context) ([]SandboxRecord, error) {
	recs, err := c.listSvc.Run(ctx)
	if err != nil {
		return nil, err
	}

	return fromInternalRecordList(recs), nil
}
