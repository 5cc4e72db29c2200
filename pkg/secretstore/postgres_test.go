package secretstore_test

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/otpserver/pkg/secretstore"
)

// MockPgxQuerier is a mock implementation of the PgxQuerier interface
type MockPgxQuerier struct {
	mock.Mock
}

func (m *MockPgxQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return m.Called(ctx, sql, args).Get(0).(pgx.Row)
}

func (m *MockPgxQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	ret := m.Called(ctx, sql, args)
	return ret.Get(0).(pgconn.CommandTag), ret.Error(1)
}

// row scans a fixed record or fails with err.
type row struct {
	record []byte
	err    error
}

func (r row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.record
	return nil
}

func TestPostgresBackend(t *testing.T) {
	t.Parallel()

	selectSQL := mock.MatchedBy(func(sql string) bool { return strings.HasPrefix(sql, "SELECT record FROM otp_secrets") })
	upsertSQL := mock.MatchedBy(func(sql string) bool { return strings.Contains(sql, "ON CONFLICT (name) DO UPDATE") })

	t.Run("read", func(t *testing.T) {
		t.Parallel()
		db := &MockPgxQuerier{}
		db.On("QueryRow", mock.Anything, selectSQL, []any{"otpserver"}).Return(row{record: []byte(rfcSecretText)})

		data, err := secretstore.NewPostgresBackend(db, "otpserver").Read(context.Background())
		require.NoError(t, err)
		assert.Equal(t, rfcSecretText, string(data))
		db.AssertExpectations(t)
	})

	t.Run("no rows", func(t *testing.T) {
		t.Parallel()
		db := &MockPgxQuerier{}
		db.On("QueryRow", mock.Anything, selectSQL, mock.Anything).Return(row{err: pgx.ErrNoRows})

		_, err := secretstore.NewPostgresBackend(db, "otpserver").Read(context.Background())
		assert.ErrorIs(t, err, secretstore.ErrNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		t.Parallel()
		db := &MockPgxQuerier{}
		db.On("QueryRow", mock.Anything, selectSQL, mock.Anything).
			Return(row{err: &pgconn.PgError{Code: "42P01", Message: `relation "otp_secrets" does not exist`}})

		_, err := secretstore.NewPostgresBackend(db, "otpserver").Read(context.Background())
		assert.ErrorIs(t, err, secretstore.ErrStoreUnavailable)
	})

	t.Run("upsert", func(t *testing.T) {
		t.Parallel()
		db := &MockPgxQuerier{}
		db.On("Exec", mock.Anything, upsertSQL, []any{"otpserver", []byte(rfcSecretText)}).
			Return(pgconn.NewCommandTag("INSERT 0 1"), nil)

		err := secretstore.NewPostgresBackend(db, "otpserver").Write(context.Background(), []byte(rfcSecretText))
		require.NoError(t, err)
		db.AssertExpectations(t)
	})

	t.Run("upsert error", func(t *testing.T) {
		t.Parallel()
		db := &MockPgxQuerier{}
		db.On("Exec", mock.Anything, upsertSQL, mock.Anything).
			Return(pgconn.CommandTag{}, errors.New("conn closed"))

		err := secretstore.NewPostgresBackend(db, "otpserver").Write(context.Background(), []byte(rfcSecretText))
		assert.ErrorIs(t, err, secretstore.ErrStoreUnavailable)
	})
}

func TestMigrationsEmbedded(t *testing.T) {
	t.Parallel()

	files, err := fs.Glob(secretstore.Migrations, secretstore.MigrationsDir+"/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	body, err := fs.ReadFile(secretstore.Migrations, files[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS otp_secrets")
}
