package secretstore

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/otpserver/pkg/pg"
)

// Migrations holds the goose migrations creating the otp_secrets table.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations to pass to goose.
const MigrationsDir = "migrations"

const (
	selectRecordSQL = `SELECT record FROM otp_secrets WHERE name = $1`
	upsertRecordSQL = `INSERT INTO otp_secrets (name, record, updated_at) VALUES ($1, $2, now())
ON CONFLICT (name) DO UPDATE SET record = EXCLUDED.record, updated_at = now()`
)

// PgxQuerier is the subset of *pgxpool.Pool the backend needs.
type PgxQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresBackend keeps the record as one row of otp_secrets keyed by name. The upsert
// is a single statement, so readers see either the previous row or the new one.
type PostgresBackend struct {
	db   PgxQuerier
	name string
}

// NewPostgresBackend stores the record in the row identified by name.
func NewPostgresBackend(db PgxQuerier, name string) *PostgresBackend {
	return &PostgresBackend{db: db, name: name}
}

func (b *PostgresBackend) Name() string { return "postgres" }

func (b *PostgresBackend) Read(ctx context.Context) ([]byte, error) {
	var record []byte
	if err := b.db.QueryRow(ctx, selectRecordSQL, b.name).Scan(&record); err != nil {
		if pg.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: otp_secrets row %q", ErrNotFound, b.name)
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return record, nil
}

func (b *PostgresBackend) Write(ctx context.Context, data []byte) error {
	if _, err := b.db.Exec(ctx, upsertRecordSQL, b.name, data); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
