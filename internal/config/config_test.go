package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentbox/agentbox/internal/config"
)

func TestLoad(t *testing.T) {
	tests := map[string]struct {
		configFile string
		envFile    string
		env        map[string]string
		expConfig  config.Config
		expErr     bool
	}{
		"defaults apply when nothing is configured": {
			expConfig: config.Config{
				Provider:     "daytona",
				SandboxImage: "agentbox/browser-sandbox:latest",
			},
		},

		"environment variables override defaults": {
			env: map[string]string{
				"AGENTBOX_PROVIDER":   "e2b",
				"AGENTBOX_API_KEY":    "k-123",
				"AGENTBOX_SERVER_URL": "https://api.example.com",
				"AGENTBOX_TARGET":     "eu",
			},
			expConfig: config.Config{
				Provider:     "e2b",
				APIKey:       "k-123",
				ServerURL:    "https://api.example.com",
				Target:       "eu",
				SandboxImage: "agentbox/browser-sandbox:latest",
			},
		},

		"yaml file values load and environment wins over them": {
			configFile: "provider: docker\napi_key: from-file\nsandbox_image: custom/image:1\n",
			env: map[string]string{
				"AGENTBOX_API_KEY": "from-env",
			},
			expConfig: config.Config{
				Provider:     "docker",
				APIKey:       "from-env",
				SandboxImage: "custom/image:1",
			},
		},

		"dotenv file values load into the environment": {
			envFile: "AGENTBOX_SERVER_URL=https://dotenv.example.com\n",
			expConfig: config.Config{
				Provider:     "daytona",
				ServerURL:    "https://dotenv.example.com",
				SandboxImage: "agentbox/browser-sandbox:latest",
			},
		},

		"a malformed yaml file fails": {
			configFile: "provider: [unclosed\n",
			expErr:     true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			for k, v := range test.env {
				t.Setenv(k, v)
			}
			// Dotenv loading mutates the process environment, make sure the
			// keys it may set are restored after the test.
			t.Setenv("AGENTBOX_SERVER_URL", os.Getenv("AGENTBOX_SERVER_URL"))

			loadCfg := config.LoadConfig{}
			dir := t.TempDir()
			if test.configFile != "" {
				loadCfg.ConfigFile = filepath.Join(dir, "config.yaml")
				require.NoError(os.WriteFile(loadCfg.ConfigFile, []byte(test.configFile), 0o600))
			}
			if test.envFile != "" {
				loadCfg.EnvFile = filepath.Join(dir, ".env")
				require.NoError(os.WriteFile(loadCfg.EnvFile, []byte(test.envFile), 0o600))
			}

			cfg, err := config.Load(loadCfg)
			if test.expErr {
				require.Error(err)
				return
			}
			require.NoError(err)
			assert.Equal(t, test.expConfig, *cfg)
		})
	}
}

func TestLoadMissingFilesAreNotAnError(t *testing.T) {
	cfg, err := config.Load(config.LoadConfig{
		ConfigFile: filepath.Join(t.TempDir(), "missing.yaml"),
		EnvFile:    filepath.Join(t.TempDir(), "missing.env"),
	})
	require.NoError(t, err)
	assert.Equal(t, "daytona", cfg.Provider)
}
