package daytona

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/agentbox/agentbox/internal/model"
)

// Sandbox is a sandbox resource as returned by the control plane API.
type Sandbox struct {
	ID     string            `json:"id"`
	State  string            `json:"state"`
	Labels map[string]string `json:"labels,omitempty"`
}

// Resources is the compute envelope attached to a creation request.
type Resources struct {
	CPU    int `json:"cpu"`
	Memory int `json:"memory"`
	Disk   int `json:"disk"`
}

// CreateSandboxRequest is the control plane creation request.
type CreateSandboxRequest struct {
	Image     string            `json:"image"`
	Public    bool              `json:"public"`
	Labels    map[string]string `json:"labels,omitempty"`
	EnvVars   map[string]string `json:"envVars"`
	Resources Resources         `json:"resources"`
	Target    string            `json:"target,omitempty"`
}

// SessionExecuteRequest executes a command inside a named execution session.
type SessionExecuteRequest struct {
	Command string `json:"command"`
	// Async makes the control plane return without waiting for the command
	// to finish (fire-and-forget).
	Async bool `json:"async"`
}

// APIClient is the interface for the control plane operations we use. It
// allows mocking the remote API for testing.
type APIClient interface {
	CreateSandbox(ctx context.Context, req CreateSandboxRequest) (*Sandbox, error)
	GetSandbox(ctx context.Context, id string) (*Sandbox, error)
	StartSandbox(ctx context.Context, id string) error
	CreateSession(ctx context.Context, sandboxID, sessionID string) error
	ExecuteSessionCommand(ctx context.Context, sandboxID, sessionID string, req SessionExecuteRequest) error
}

// ClientConfig is the configuration for the control plane HTTP client.
type ClientConfig struct {
	APIKey    string
	ServerURL string
	Target    string
	// HTTPClient defaults to a client with a 60s timeout.
	HTTPClient *http.Client
}

func (c *ClientConfig) defaults() error {
	if c.APIKey == "" {
		return fmt.Errorf("api key is required")
	}
	if c.ServerURL == "" {
		return fmt.Errorf("server url is required")
	}
	c.ServerURL = strings.TrimRight(c.ServerURL, "/")
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}
	return nil
}

// Client is the HTTP implementation of APIClient.
type Client struct {
	apiKey     string
	serverURL  string
	target     string
	httpClient *http.Client
}

// NewClient creates a new control plane HTTP client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Client{
		apiKey:     cfg.APIKey,
		serverURL:  cfg.ServerURL,
		target:     cfg.Target,
		httpClient: cfg.HTTPClient,
	}, nil
}

// CreateSandbox creates a new sandbox instance on the control plane.
func (c *Client) CreateSandbox(ctx context.Context, req CreateSandboxRequest) (*Sandbox, error) {
	sb := &Sandbox{}
	if err := c.do(ctx, http.MethodPost, "/sandbox", req, sb); err != nil {
		return nil, err
	}
	return sb, nil
}

// GetSandbox fetches a sandbox by id, including its current lifecycle state.
func (c *Client) GetSandbox(ctx context.Context, id string) (*Sandbox, error) {
	sb := &Sandbox{}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/sandbox/%s", id), nil, sb); err != nil {
		return nil, err
	}
	return sb, nil
}

// StartSandbox asks the control plane to start a dormant sandbox.
func (c *Client) StartSandbox(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/sandbox/%s/start", id), nil, nil)
}

// CreateSession creates a named execution session inside a sandbox.
func (c *Client) CreateSession(ctx context.Context, sandboxID, sessionID string) error {
	req := struct {
		SessionID string `json:"sessionId"`
	}{SessionID: sessionID}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/sandbox/%s/process/session", sandboxID), req, nil)
}

// ExecuteSessionCommand executes a command inside a named session.
func (c *Client) ExecuteSessionCommand(ctx context.Context, sandboxID, sessionID string, req SessionExecuteRequest) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/sandbox/%s/process/session/%s/exec", sandboxID, sessionID), req, nil)
}

func (c *Client) do(ctx context.Context, method, path string, reqBody, respBody interface{}) error {
	var body io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("could not marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.serverURL+path, body)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if c.target != "" {
		req.Header.Set("X-Daytona-Target", c.target)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("control plane unreachable: %v: %w", err, model.ErrTransient)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if respBody == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("could not decode response: %w", err)
		}
		return nil
	}

	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %s: %w", method, path, strings.TrimSpace(string(msg)), model.ErrNotFound)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s %s: %s: %w", method, path, strings.TrimSpace(string(msg)), model.ErrAlreadyExists)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return fmt.Errorf("%s %s: status %d: %s: %w", method, path, resp.StatusCode, strings.TrimSpace(string(msg)), model.ErrTransient)
	default:
		return fmt.Errorf("%s %s: status %d: %s: %w", method, path, resp.StatusCode, strings.TrimSpace(string(msg)), model.ErrRejected)
	}
}
