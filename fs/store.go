package fs

import (
	"context"
	"os"

	"github.com/fwojciec/docsweep"
)

// Ensure Store implements docsweep.FileStore at compile time.
var _ docsweep.FileStore = (*Store)(nil)

// Store reads and writes whole files on the local filesystem.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// ReadFile returns the full contents of the file at path.
func (s *Store) ReadFile(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", docsweep.Errorf(docsweep.ENOTFOUND, "file %q not found", path)
		}
		return "", err
	}
	return string(data), nil
}

// WriteFile overwrites the file at path, keeping the existing file mode
// when the file already exists.
func (s *Store) WriteFile(ctx context.Context, path, content string) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, []byte(content), mode)
}
