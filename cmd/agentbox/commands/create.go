package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/google/uuid"

	"github.com/agentbox/agentbox/internal/app/create"
	"github.com/agentbox/agentbox/internal/config"
	"github.com/agentbox/agentbox/internal/printer"
	"github.com/agentbox/agentbox/internal/provider/registry"
	"github.com/agentbox/agentbox/internal/storage/sqlite"
)

type CreateCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	password string
	project  string
	format   string
}

// NewCreateCommand returns the create command.
func NewCreateCommand(rootCmd *RootCommand, app *kingpin.Application) *CreateCommand {
	c := &CreateCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("create", "Create a new sandbox.")
	c.Cmd.Flag("password", "VNC password for the sandbox display session (generated when empty).").StringVar(&c.password)
	c.Cmd.Flag("project", "Project the sandbox belongs to.").StringVar(&c.project)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c CreateCommand) Name() string { return c.Cmd.FullCommand() }

func (c CreateCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	password := c.password
	if password == "" {
		password = uuid.New().String()
	}

	// Load provider configuration.
	cfg, err := config.Load(config.LoadConfig{
		ConfigFile: c.rootCmd.ConfigFile,
		EnvFile:    c.rootCmd.EnvFile,
	})
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}

	// Initialize storage (SQLite).
	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: c.rootCmd.DBPath,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}
	defer repo.Close()

	// Initialize provider registry.
	reg, err := registry.NewRegistry(registry.RegistryConfig{
		Config: cfg,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create provider registry: %w", err)
	}

	// Create service.
	svc, err := create.NewService(create.ServiceConfig{
		Provider:   reg,
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute create.
	handle, err := svc.Run(ctx, create.Request{
		Password:  password,
		ProjectID: c.project,
	})
	if err != nil {
		return fmt.Errorf("could not create sandbox: %w", err)
	}

	// Print output.
	var p printer.Printer
	switch c.format {
	case "json":
		p = printer.NewJSONPrinter(c.rootCmd.Stdout)
	default:
		p = printer.NewTablePrinter(c.rootCmd.Stdout)
	}

	if err := p.PrintHandle(*handle); err != nil {
		return fmt.Errorf("could not print sandbox: %w", err)
	}

	return nil
}
