package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/agentbox/agentbox/internal/app/resolve"
	"github.com/agentbox/agentbox/internal/config"
	"github.com/agentbox/agentbox/internal/printer"
	"github.com/agentbox/agentbox/internal/provider/registry"
	"github.com/agentbox/agentbox/internal/storage/sqlite"
)

type GetCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	sandboxID string
	format    string
}

// NewGetCommand returns the get command.
func NewGetCommand(rootCmd *RootCommand, app *kingpin.Application) *GetCommand {
	c := &GetCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("get", "Get a sandbox, starting it first if it is stopped or archived.")
	c.Cmd.Arg("sandbox-id", "Sandbox id to resolve.").Required().StringVar(&c.sandboxID)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c GetCommand) Name() string { return c.Cmd.FullCommand() }

func (c GetCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

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

	// Resolve service.
	svc, err := resolve.NewService(resolve.ServiceConfig{
		Provider:   reg,
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute resolve.
	handle, err := svc.Run(ctx, c.sandboxID)
	if err != nil {
		return fmt.Errorf("could not resolve sandbox: %w", err)
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
