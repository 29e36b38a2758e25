package storage

import (
	"context"
	"time"

	"github.com/agentbox/agentbox/internal/model"
)

// Repository is the interface for local sandbox record persistence.
//
// Records are bookkeeping only (which sandboxes were created from this
// machine, for which project, when they were last resolved). Lifecycle state
// is never stored: the remote control plane is the single source of truth
// and every resolution round-trips to it.
type Repository interface {
	CreateSandboxRecord(ctx context.Context, r model.SandboxRecord) error
	GetSandboxRecord(ctx context.Context, id string) (*model.SandboxRecord, error)
	ListSandboxRecords(ctx context.Context) ([]model.SandboxRecord, error)
	// TouchSandboxRecord updates the last-resolved timestamp of a record.
	TouchSandboxRecord(ctx context.Context, id string, resolvedAt time.Time) error
	DeleteSandboxRecord(ctx context.Context, id string) error
}
