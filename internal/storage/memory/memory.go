package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/agentbox/agentbox/internal/model"
)

// Repository is an in-memory implementation of storage.Repository, used for
// tests and ephemeral runs.
type Repository struct {
	mu      sync.RWMutex
	records map[string]model.SandboxRecord
}

// NewRepository creates a new in-memory repository.
func NewRepository() *Repository {
	return &Repository{records: map[string]model.SandboxRecord{}}
}

// CreateSandboxRecord creates a new sandbox record.
func (r *Repository) CreateSandboxRecord(ctx context.Context, rec model.SandboxRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[rec.ID]; ok {
		return fmt.Errorf("sandbox record %s: %w", rec.ID, model.ErrAlreadyExists)
	}

	r.records[rec.ID] = rec
	return nil
}

// GetSandboxRecord retrieves a sandbox record by id.
func (r *Repository) GetSandboxRecord(ctx context.Context, id string) (*model.SandboxRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, fmt.Errorf("sandbox record %s: %w", id, model.ErrNotFound)
	}

	return &rec, nil
}

// ListSandboxRecords lists all sandbox records ordered by creation time.
func (r *Repository) ListSandboxRecords(ctx context.Context) ([]model.SandboxRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recs := make([]model.SandboxRecord, 0, len(r.records))
	for _, rec := range r.records {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].CreatedAt.Before(recs[j].CreatedAt) })

	return recs, nil
}

// TouchSandboxRecord updates the last-resolved timestamp of a record.
func (r *Repository) TouchSandboxRecord(ctx context.Context, id string, resolvedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return fmt.Errorf("sandbox record %s: %w", id, model.ErrNotFound)
	}

	rec.LastResolvedAt = &resolvedAt
	r.records[id] = rec
	return nil
}

// DeleteSandboxRecord deletes a sandbox record.
func (r *Repository) DeleteSandboxRecord(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return fmt.Errorf("sandbox record %s: %w", id, model.ErrNotFound)
	}

	delete(r.records, id)
	return nil
}
