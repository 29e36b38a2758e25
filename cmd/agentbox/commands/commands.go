package commands

import (
	"context"
	"io"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"
	"k8s.io/client-go/util/homedir"

	"github.com/agentbox/agentbox/internal/log"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug      bool
	NoLog      bool
	NoColor    bool
	LoggerType string
	DBPath     string
	ConfigFile string
	EnvFile    string

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)

	defaultDBPath := filepath.Join(homedir.HomeDir(), ".agentbox", "agentbox.db")
	app.Flag("db-path", "Path to the SQLite database file.").Envar("AGENTBOX_DB_PATH").Default(defaultDBPath).StringVar(&c.DBPath)

	defaultConfigFile := filepath.Join(homedir.HomeDir(), ".agentbox", "config.yaml")
	app.Flag("config-file", "Path to the YAML configuration file.").Envar("AGENTBOX_CONFIG_FILE").Default(defaultConfigFile).StringVar(&c.ConfigFile)
	app.Flag("env-file", "Path to an optional dotenv file.").Envar("AGENTBOX_ENV_FILE").Default(".env").StringVar(&c.EnvFile)

	return c
}
