package provider

import (
	"context"

	"github.com/agentbox/agentbox/internal/model"
)

// Provider is the capability interface every sandbox backend implements.
//
// Handles returned by any operation are fresh: they reflect the remote state
// observed during the call and must be re-resolved once that state changes.
type Provider interface {
	// Name returns the backend name, used for logging and handle attribution.
	Name() string

	// CreateSandbox provisions a brand-new sandbox with the configured
	// runtime image, the default resource envelope and the display/browser
	// environment. The supervisord session is bootstrapped before the handle
	// is returned, so it is immediately usable. Allocates billable remote
	// resources. Fails with model.ErrRejected when the control plane refuses
	// the request.
	CreateSandbox(ctx context.Context, cfg model.CreateConfig) (*model.SandboxHandle, error)

	// GetOrStartSandbox resolves an existing sandbox id to a handle over a
	// running instance, starting it first when the remote state is dormant
	// (stopped or archived). Fails with model.ErrNotFound when the id does
	// not exist remotely and model.ErrTransient when the control plane is
	// unreachable; it never retries internally.
	GetOrStartSandbox(ctx context.Context, sandboxID string) (*model.SandboxHandle, error)

	// StartSupervisordSession idempotently ensures the in-sandbox process
	// supervisor is running. It must not fail because a session with the
	// well-known name already exists; backends that cannot guarantee this
	// document the narrower contract they do guarantee.
	StartSupervisordSession(ctx context.Context, handle *model.SandboxHandle) error
}
