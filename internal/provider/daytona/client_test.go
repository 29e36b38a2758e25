package daytona_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentbox/agentbox/internal/model"
	"github.com/agentbox/agentbox/internal/provider/daytona"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *daytona.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := daytona.NewClient(daytona.ClientConfig{
		APIKey:    "test-key",
		ServerURL: server.URL,
		Target:    "eu",
	})
	require.NoError(t, err)

	return client
}

func TestNewClient(t *testing.T) {
	tests := map[string]struct {
		config daytona.ClientConfig
		expErr bool
	}{
		"valid config should create client": {
			config: daytona.ClientConfig{APIKey: "k", ServerURL: "https://api.example.com"},
		},
		"missing api key should fail": {
			config: daytona.ClientConfig{ServerURL: "https://api.example.com"},
			expErr: true,
		},
		"missing server url should fail": {
			config: daytona.ClientConfig{APIKey: "k"},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := daytona.NewClient(test.config)
			if test.expErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestClientGetSandbox(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/sandbox/sbx-1", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "eu", r.Header.Get("X-Daytona-Target"))

		_ = json.NewEncoder(w).Encode(daytona.Sandbox{ID: "sbx-1", State: "RUNNING"})
	})

	sb, err := client.GetSandbox(context.TODO(), "sbx-1")
	require.NoError(t, err)
	assert.Equal(t, &daytona.Sandbox{ID: "sbx-1", State: "RUNNING"}, sb)
}

func TestClientCreateSandbox(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sandbox", r.URL.Path)

		req := daytona.CreateSandboxRequest{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "agentbox/browser-sandbox:latest", req.Image)
		assert.Equal(t, daytona.Resources{CPU: 2, Memory: 4, Disk: 5}, req.Resources)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(daytona.Sandbox{ID: "sbx-new", State: "running"})
	})

	sb, err := client.CreateSandbox(context.TODO(), daytona.CreateSandboxRequest{
		Image:     "agentbox/browser-sandbox:latest",
		Public:    true,
		Resources: daytona.Resources{CPU: 2, Memory: 4, Disk: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, "sbx-new", sb.ID)
}

func TestClientSessionCalls(t *testing.T) {
	var gotPaths []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.Method+" "+r.URL.Path)
	})

	require.NoError(t, client.StartSandbox(context.TODO(), "sbx-1"))
	require.NoError(t, client.CreateSession(context.TODO(), "sbx-1", "supervisord-session"))
	require.NoError(t, client.ExecuteSessionCommand(context.TODO(), "sbx-1", "supervisord-session", daytona.SessionExecuteRequest{
		Command: "exec /usr/bin/supervisord -n -c /etc/supervisor/conf.d/supervisord.conf",
		Async:   true,
	}))

	assert.Equal(t, []string{
		"POST /sandbox/sbx-1/start",
		"POST /sandbox/sbx-1/process/session",
		"POST /sandbox/sbx-1/process/session/supervisord-session/exec",
	}, gotPaths)
}

func TestClientErrorMapping(t *testing.T) {
	tests := map[string]struct {
		status int
		expErr error
	}{
		"a 404 maps to not found":              {status: http.StatusNotFound, expErr: model.ErrNotFound},
		"a 409 maps to already exists":         {status: http.StatusConflict, expErr: model.ErrAlreadyExists},
		"a 429 maps to a transient failure":    {status: http.StatusTooManyRequests, expErr: model.ErrTransient},
		"a 503 maps to a transient failure":    {status: http.StatusServiceUnavailable, expErr: model.ErrTransient},
		"a 400 maps to a provisioning reject":  {status: http.StatusBadRequest, expErr: model.ErrRejected},
		"a 401 maps to a provisioning reject":  {status: http.StatusUnauthorized, expErr: model.ErrRejected},
		"a 422 maps to a provisioning reject ": {status: http.StatusUnprocessableEntity, expErr: model.ErrRejected},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", test.status)
			})

			_, err := client.GetSandbox(context.TODO(), "sbx-1")
			require.ErrorIs(t, err, test.expErr)
		})
	}
}

func TestClientUnreachableControlPlaneIsTransient(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // Connection refused from now on.

	client, err := daytona.NewClient(daytona.ClientConfig{APIKey: "k", ServerURL: server.URL})
	require.NoError(t, err)

	_, err = client.GetSandbox(context.TODO(), "sbx-1")
	require.ErrorIs(t, err, model.ErrTransient)
}
