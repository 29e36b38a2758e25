package lib

import (
	"context"
	"time"

	"github.com/agentbox/agentbox/internal/model"
)

// Errors returned by the SDK, inspectable with errors.Is.
var (
	// ErrNotFound is returned when a sandbox does not exist on the backend.
	ErrNotFound = model.ErrNotFound
	// ErrAlreadyExists is returned when a resource already exists.
	ErrAlreadyExists = model.ErrAlreadyExists
	// ErrNotValid is returned on invalid input or a backend rejection.
	ErrNotValid = model.ErrNotValid
	// ErrTransient is returned on infrastructure hiccups that are safe to retry.
	ErrTransient = model.ErrTransient
	// ErrNotImplemented is returned when the selected backend does not support
	// the operation.
	ErrNotImplemented = model.ErrNotImplemented
)

// SandboxState represents the lifecycle state of a sandbox on the backend.
type SandboxState string

const (
	// SandboxStateRunning indicates the sandbox is running.
	SandboxStateRunning SandboxState = "running"
	// SandboxStateStopped indicates the sandbox is stopped and can be started again.
	SandboxStateStopped SandboxState = "stopped"
	// SandboxStateArchived indicates the sandbox is archived and can be started again.
	SandboxStateArchived SandboxState = "archived"
)

// Sandbox is a read-only snapshot of a sandbox on the backend.
type Sandbox struct {
	// ID is the backend-assigned sandbox identifier.
	ID string
	// State is the lifecycle state at the time of the API call.
	State SandboxState
	// Labels are the backend labels attached at creation time.
	Labels map[string]string
}

// SandboxHandle is a resolved sandbox bound to the backend that owns it.
type SandboxHandle struct {
	// Provider is the name of the backend that owns the sandbox.
	Provider string
	// Sandbox is the sandbox snapshot.
	Sandbox Sandbox
	// Usable indicates the sandbox is ready for use. Placeholder backends
	// return handles with Usable set to false.
	Usable bool
}

// SandboxRecord is a locally recorded sandbox.
type SandboxRecord struct {
	// ID is the sandbox identifier.
	ID string
	// Provider is the backend that created the sandbox.
	Provider string
	// ProjectID is the project the sandbox belongs to. Empty when none.
	ProjectID string
	// CreatedAt is when the sandbox was created from this machine.
	CreatedAt time.Time
	// LastResolvedAt is when the sandbox was last resolved. Nil if never.
	LastResolvedAt *time.Time
}

// CreateSandboxOpts configures sandbox creation.
type CreateSandboxOpts struct {
	// Password is the VNC password for the sandbox display session (required).
	Password string
	// ProjectID is the project the sandbox belongs to. When set, the sandbox
	// is labeled with it on the backend.
	ProjectID string
}

// Provider is the direct backend access interface, an escape hatch for
// advanced callers. Most applications should use the [Client] methods, which
// add local bookkeeping on top.
type Provider interface {
	// Name returns the backend name.
	Name() string
	// CreateSandbox creates a sandbox without recording it locally.
	CreateSandbox(ctx context.Context, opts CreateSandboxOpts) (*SandboxHandle, error)
	// GetOrStartSandbox resolves a sandbox without touching local records.
	GetOrStartSandbox(ctx context.Context, sandboxID string) (*SandboxHandle, error)
	// StartSupervisordSession bootstraps the supervisord session inside the
	// sandbox. Idempotent, fire-and-forget.
	StartSupervisordSession(ctx context.Context, handle *SandboxHandle) error
}

func fromInternalHandle(h model.SandboxHandle) SandboxHandle {
	return SandboxHandle{
		Provider: h.Provider,
		Sandbox: Sandbox{
			ID:     h.Sandbox.ID,
			State:  SandboxState(h.Sandbox.State),
			Labels: h.Sandbox.Labels,
		},
		Usable: h.Usable,
	}
}

func toInternalHandle(h *SandboxHandle) *model.SandboxHandle {
	if h == nil {
		return nil
	}
	return &model.SandboxHandle{
		Provider: h.Provider,
		Sandbox: model.Sandbox{
			ID:     h.Sandbox.ID,
			State:  model.SandboxState(h.Sandbox.State),
			Labels: h.Sandbox.Labels,
		},
		Usable: h.Usable,
	}
}

func fromInternalRecordList(recs []model.SandboxRecord) []SandboxRecord {
	result := make([]SandboxRecord, len(recs))
	for i, r := range recs {
		result[i] = SandboxRecord{
			ID:             r.ID,
			Provider:       r.Provider,
			ProjectID:      r.ProjectID,
			CreatedAt:      r.CreatedAt,
			LastResolvedAt: r.LastResolvedAt,
		}
	}
	return result
}
