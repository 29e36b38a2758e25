package model

import (
	"fmt"
	"time"
)

// SandboxState is the lifecycle state a sandbox reports from its control
// plane. Provider-specific states outside the known set pass through
// unmodified.
type SandboxState string

const (
	// SandboxStateRunning indicates the sandbox is running.
	SandboxStateRunning SandboxState = "running"
	// SandboxStateStopped indicates the sandbox is stopped.
	SandboxStateStopped SandboxState = "stopped"
	// SandboxStateArchived indicates the sandbox has been archived by the
	// control plane and needs a start to be usable again.
	SandboxStateArchived SandboxState = "archived"
	// SandboxStateStarting indicates the sandbox is transitioning to running.
	SandboxStateStarting SandboxState = "starting"
	// SandboxStateError indicates the control plane reports the sandbox failed.
	SandboxStateError SandboxState = "error"
)

// Dormant returns true when the state is eligible for the start transition.
// Every other state (including transitional ones like starting) is treated
// as already usable and returned as-is to the caller.
func (s SandboxState) Dormant() bool {
	return s == SandboxStateStopped || s == SandboxStateArchived
}

// Sandbox is a remote sandbox instance as last reported by its control plane.
type Sandbox struct {
	ID     string
	State  SandboxState
	Labels map[string]string
}

// SandboxHandle is an opaque reference to a live sandbox instance. A handle
// reflects the remote state at resolution time and is never cached: it
// becomes stale as soon as the remote state changes and must be re-resolved.
type SandboxHandle struct {
	// Provider is the name of the backend that resolved the handle.
	Provider string
	// Sandbox is the remote instance snapshot the handle wraps.
	Sandbox Sandbox
	// Usable is false when the handle comes from a placeholder backend and
	// has no real remote sandbox behind it.
	Usable bool
}

// CreateConfig is the configuration for creating a new sandbox.
type CreateConfig struct {
	// Password protects the sandbox remote display (VNC).
	Password string
	// ProjectID, when set, is attached as a queryable label on the created
	// sandbox for later grouping.
	ProjectID string
}

// Validate validates the creation configuration.
func (c *CreateConfig) Validate() error {
	if c.Password == "" {
		return fmt.Errorf("password is required: %w", ErrNotValid)
	}
	return nil
}

// Labels returns the labels to attach at creation time, nil when there are
// none.
func (c *CreateConfig) Labels() map[string]string {
	if c.ProjectID == "" {
		return nil
	}
	return map[string]string{"id": c.ProjectID}
}

// Resources is the compute envelope requested for a sandbox.
type Resources struct {
	CPUs     int
	MemoryGB int
	DiskGB   int
}

// DefaultResources is the envelope attached to every created sandbox.
var DefaultResources = Resources{CPUs: 2, MemoryGB: 4, DiskGB: 5}

// DisplayEnv returns the environment variable set configuring the embedded
// browser and remote display subsystem of a new sandbox. The lifecycle layer
// treats these as an opaque key/value set attached at creation time.
func DisplayEnv(password string) map[string]string {
	return map[string]string{
		"CHROME_PERSISTENT_SESSION": "true",
		"RESOLUTION":                "1024x768x24",
		"RESOLUTION_WIDTH":          "1024",
		"RESOLUTION_HEIGHT":         "768",
		"VNC_PASSWORD":              password,
		"ANONYMIZED_TELEMETRY":      "false",
		"CHROME_PATH":               "",
		"CHROME_USER_DATA":          "",
		"CHROME_DEBUGGING_PORT":     "9222",
		"CHROME_DEBUGGING_HOST":     "localhost",
		"CHROME_CDP":                "",
	}
}

// SandboxRecord is the local bookkeeping entry for a sandbox created from
// this machine. It never stores lifecycle state: the control plane is the
// only source of truth for that.
type SandboxRecord struct {
	ID             string
	Provider       string
	ProjectID      string
	CreatedAt      time.Time
	LastResolvedAt *time.Time
}
