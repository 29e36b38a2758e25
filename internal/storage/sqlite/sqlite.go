package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/agentbox/agentbox/internal/log"
	"github.com/agentbox/agentbox/internal/model"
	"github.com/agentbox/agentbox/internal/storage/sqlite/migrations"
)

// RepositoryConfig is the configuration for the SQLite repository.
type RepositoryConfig struct {
	DBPath string
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.SQLite"})
	return nil
}

// Repository is a SQLite implementation of storage.Repository.
type Repository struct {
	db     *sql.DB
	logger log.Logger
}

// NewRepository creates a new SQLite repository.
func NewRepository(ctx context.Context, cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	dir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", cfg.DBPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	migrator, err := migrations.NewMigrator(db, cfg.Logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	if err := migrator.Up(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not run migrations: %w", err)
	}

	cfg.Logger.Debugf("SQLite repository initialized at %s", cfg.DBPath)

	return &Repository{db: db, logger: cfg.Logger}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error { return r.db.Close() }

// CreateSandboxRecord creates a new sandbox record.
func (r *Repository) CreateSandboxRecord(ctx context.Context, rec model.SandboxRecord) error {
	var lastResolvedAt *int64
	if rec.LastResolvedAt != nil {
		u := rec.LastResolvedAt.Unix()
		lastResolvedAt = &u
	}

	query := `
		INSERT INTO sandboxes (id, provider, project_id, created_at, last_resolved_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, rec.ID, rec.Provider, rec.ProjectID, rec.CreatedAt.Unix(), lastResolvedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: sandboxes.") {
			return fmt.Errorf("sandbox record already exists: %w", model.ErrAlreadyExists)
		}
		return fmt.Errorf("could not insert sandbox record: %w", err)
	}

	r.logger.Debugf("Created sandbox record: %s", rec.ID)
	return nil
}

// GetSandboxRecord retrieves a sandbox record by id.
func (r *Repository) GetSandboxRecord(ctx context.Context, id string) (*model.SandboxRecord, error) {
	query := `
		SELECT id, provider, project_id, created_at, last_resolved_at
		FROM sandboxes
		WHERE id = ?
	`

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("sandbox record %s: %w", id, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get sandbox record: %w", err)
	}

	return rec, nil
}

// ListSandboxRecords lists all sandbox records ordered by creation time.
func (r *Repository) ListSandboxRecords(ctx context.Context) ([]model.SandboxRecord, error) {
	query := `
		SELECT id, provider, project_id, created_at, last_resolved_at
		FROM sandboxes
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not list sandbox records: %w", err)
	}
	defer rows.Close()

	var recs []model.SandboxRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan sandbox record: %w", err)
		}
		recs = append(recs, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate sandbox records: %w", err)
	}

	return recs, nil
}

// TouchSandboxRecord updates the last-resolved timestamp of a record.
func (r *Repository) TouchSandboxRecord(ctx context.Context, id string, resolvedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `UPDATE sandboxes SET last_resolved_at = ? WHERE id = ?`, resolvedAt.Unix(), id)
	if err != nil {
		return fmt.Errorf("could not update sandbox record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("sandbox record %s: %w", id, model.ErrNotFound)
	}

	return nil
}

// DeleteSandboxRecord deletes a sandbox record.
func (r *Repository) DeleteSandboxRecord(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sandboxes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("could not delete sandbox record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("sandbox record %s: %w", id, model.ErrNotFound)
	}

	r.logger.Debugf("Deleted sandbox record: %s", id)
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*model.SandboxRecord, error) {
	var rec model.SandboxRecord
	var createdAt int64
	var lastResolvedAt *int64

	if err := s.Scan(&rec.ID, &rec.Provider, &rec.ProjectID, &createdAt, &lastResolvedAt); err != nil {
		return nil, err
	}

	rec.CreatedAt = time.Unix(createdAt, 0).UTC()
	if lastResolvedAt != nil {
		t := time.Unix(*lastResolvedAt, 0).UTC()
		rec.LastResolvedAt = &t
	}

	return &rec, nil
}
