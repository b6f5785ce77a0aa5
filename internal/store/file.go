package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"hotelsys/shared/constant"
)

const (
	dirPermission  = 0o755
	filePermission = 0o644
)

// FileBackend stores each collection as <dir>/<name>.json.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

func (f *FileBackend) Path(name string) string {
	return filepath.Join(f.dir, name+constant.FileExtensionJSON)
}

func (f *FileBackend) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotExist
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.Path(name), err)
	}

	return data, nil
}

// Write replaces the collection file through a temp file in the same directory
// so a concurrent reader sees either the old or the new document.
func (f *FileBackend) Write(ctx context.Context, name string, data []byte) (err error) {
	if err = ctx.Err(); err != nil {
		return err
	}

	if err = os.MkdirAll(f.dir, dirPermission); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", f.dir, err)
	}

	tmp, err := os.CreateTemp(f.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}

	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}

	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("failed to sync %s: %w", tmp.Name(), err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}

	if err = os.Chmod(tmp.Name(), filePermission); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", tmp.Name(), err)
	}

	if err = os.Rename(tmp.Name(), f.Path(name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", f.Path(name), err)
	}

	return nil
}
