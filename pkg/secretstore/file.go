package secretstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBackend keeps the record in a single file. Writes go to a temporary file in the
// same directory which is synced and then renamed over the target, so readers never
// see a partial record.
type FileBackend struct {
	path string
	perm fs.FileMode
}

// NewFileBackend stores the record at path with mode 0600.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path, perm: 0o600}
}

func (b *FileBackend) Name() string { return "file" }

// Path returns the record location.
func (b *FileBackend) Path() string { return b.path }

func (b *FileBackend) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, b.path)
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return data, nil
}

func (b *FileBackend) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	if err := b.writeAtomic(data); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (b *FileBackend) writeAtomic(data []byte) (err error) {
	dir := filepath.Dir(b.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(b.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	closed := false
	defer func() {
		if !closed {
			_ = tmp.Close()
		}
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if err = tmp.Chmod(b.perm); err != nil {
		return err
	}
	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	closed = true
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Rename(tmpName, b.path); err != nil {
		return err
	}

	// Persist the rename itself. Not every platform can sync a directory, so failure
	// here is ignored once the rename has succeeded.
	if d, derr := os.Open(dir); derr == nil {
		_ = d.Sync()
		_ = d.Close()
	}
	return nil
}
