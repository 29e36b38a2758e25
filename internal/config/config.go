package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultProvider is the backend used when no provider is configured.
	DefaultProvider = "daytona"
	// DefaultSandboxImage is the runtime image new sandboxes boot from.
	DefaultSandboxImage = "agentbox/browser-sandbox:latest"
)

// Config is the application configuration. The lifecycle layer consumes it,
// it does not own it: values come from an optional YAML file, an optional
// dotenv file and the process environment, in increasing precedence.
type Config struct {
	// Provider selects the sandbox backend (case-insensitive). Unrecognized
	// or absent values fall back to the default backend.
	Provider string `yaml:"provider"`
	// APIKey authenticates against the remote control plane.
	APIKey string `yaml:"api_key"`
	// ServerURL is the remote control plane endpoint.
	ServerURL string `yaml:"server_url"`
	// Target is the control plane deployment target (e.g. region).
	Target string `yaml:"target"`
	// SandboxImage is the fixed runtime image used at creation time.
	SandboxImage string `yaml:"sandbox_image"`
}

// LoadConfig configures Load.
type LoadConfig struct {
	// ConfigFile is an optional YAML configuration file path. A missing file
	// is not an error, a malformed one is.
	ConfigFile string
	// EnvFile is an optional dotenv file path loaded into the process
	// environment before reading it. A missing file is not an error.
	EnvFile string
}

// Load loads the application configuration.
func Load(cfg LoadConfig) (*Config, error) {
	c := &Config{
		Provider:     DefaultProvider,
		SandboxImage: DefaultSandboxImage,
	}

	if cfg.ConfigFile != "" {
		data, err := os.ReadFile(cfg.ConfigFile)
		switch {
		case os.IsNotExist(err):
			// Optional file.
		case err != nil:
			return nil, fmt.Errorf("could not read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, c); err != nil {
				return nil, fmt.Errorf("could not parse config file %q: %w", cfg.ConfigFile, err)
			}
		}
	}

	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("could not load env file %q: %w", cfg.EnvFile, err)
		}
	}

	applyEnv(&c.Provider, "AGENTBOX_PROVIDER")
	applyEnv(&c.APIKey, "AGENTBOX_API_KEY")
	applyEnv(&c.ServerURL, "AGENTBOX_SERVER_URL")
	applyEnv(&c.Target, "AGENTBOX_TARGET")
	applyEnv(&c.SandboxImage, "AGENTBOX_SANDBOX_IMAGE")

	return c, nil
}

func applyEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
