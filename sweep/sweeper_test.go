package sweep_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docsweep"
	"github.com/fwojciec/docsweep/mock"
	"github.com/fwojciec/docsweep/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweeper_Run(t *testing.T) {
	t.Parallel()

	t.Run("rewrites changed files and reports them sorted", func(t *testing.T) {
		t.Parallel()

		root := filepath.FromSlash("/docs")
		contents := map[string]string{
			filepath.FromSlash("/docs/z.md"):       "fast—done\n",
			filepath.FromSlash("/docs/sub/a.md"):   "It's not just speed, it's also safety.\n",
			filepath.FromSlash("/docs/another.md"): "already clean\n",
		}
		written := map[string]string{}

		scanner := &mock.Scanner{
			ScanFn: func(ctx context.Context, got string) ([]string, error) {
				assert.Equal(t, root, got)
				return []string{
					filepath.FromSlash("/docs/z.md"),
					filepath.FromSlash("/docs/sub/a.md"),
					filepath.FromSlash("/docs/another.md"),
				}, nil
			},
		}
		store := &mock.FileStore{
			ReadFileFn: func(ctx context.Context, path string) (string, error) {
				return contents[path], nil
			},
			WriteFileFn: func(ctx context.Context, path, content string) error {
				written[path] = content
				return nil
			},
		}

		sweeper := &sweep.Sweeper{Files: scanner, Store: store}
		report, err := sweeper.Run(context.Background(), root)

		require.NoError(t, err)
		assert.NotEmpty(t, report.RunID)
		assert.Equal(t, root, report.Root)
		assert.Equal(t, 3, report.Scanned)
		assert.Equal(t, []string{"sub/a.md", "z.md"}, report.Changed)
		assert.Equal(t, map[string]string{
			filepath.FromSlash("/docs/z.md"):     "fast - done\n",
			filepath.FromSlash("/docs/sub/a.md"): "It includes speed and safety.\n",
		}, written)
	})

	t.Run("unchanged files are never written", func(t *testing.T) {
		t.Parallel()

		scanner := &mock.Scanner{
			ScanFn: func(ctx context.Context, root string) ([]string, error) {
				return []string{"/docs/a.md"}, nil
			},
		}
		store := &mock.FileStore{
			ReadFileFn: func(ctx context.Context, path string) (string, error) {
				return "nothing to fix\n", nil
			},
			WriteFileFn: func(ctx context.Context, path, content string) error {
				t.Errorf("unexpected write to %s", path)
				return nil
			},
		}

		sweeper := &sweep.Sweeper{Files: scanner, Store: store}
		report, err := sweeper.Run(context.Background(), "/docs")

		require.NoError(t, err)
		assert.Empty(t, report.Changed)
		assert.Equal(t, "No changes needed.", report.Format())
	})

	t.Run("scan failure aborts the run", func(t *testing.T) {
		t.Parallel()

		scanner := &mock.Scanner{
			ScanFn: func(ctx context.Context, root string) ([]string, error) {
				return nil, docsweep.Errorf(docsweep.ENOTFOUND, "root %q not found", root)
			},
		}

		sweeper := &sweep.Sweeper{Files: scanner, Store: &mock.FileStore{}}
		_, err := sweeper.Run(context.Background(), "/missing")

		require.Error(t, err)
		assert.Equal(t, docsweep.ENOTFOUND, docsweep.ErrorCode(err))
	})

	t.Run("read failure aborts the run", func(t *testing.T) {
		t.Parallel()

		scanner := &mock.Scanner{
			ScanFn: func(ctx context.Context, root string) ([]string, error) {
				return []string{"/docs/a.md", "/docs/b.md"}, nil
			},
		}
		store := &mock.FileStore{
			ReadFileFn: func(ctx context.Context, path string) (string, error) {
				return "", docsweep.Errorf(docsweep.ENOTFOUND, "file %q not found", path)
			},
		}

		sweeper := &sweep.Sweeper{Files: scanner, Store: store}
		_, err := sweeper.Run(context.Background(), "/docs")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "read /docs/a.md")
	})

	t.Run("write failure aborts the run", func(t *testing.T) {
		t.Parallel()

		scanner := &mock.Scanner{
			ScanFn: func(ctx context.Context, root string) ([]string, error) {
				return []string{"/docs/a.md"}, nil
			},
		}
		store := &mock.FileStore{
			ReadFileFn: func(ctx context.Context, path string) (string, error) {
				return "fast—done\n", nil
			},
			WriteFileFn: func(ctx context.Context, path, content string) error {
				return docsweep.Errorf(docsweep.EINTERNAL, "disk full")
			},
		}

		sweeper := &sweep.Sweeper{Files: scanner, Store: store}
		_, err := sweeper.Run(context.Background(), "/docs")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "write /docs/a.md")
	})

	t.Run("canceled context aborts between files", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		scanner := &mock.Scanner{
			ScanFn: func(ctx context.Context, root string) ([]string, error) {
				return []string{"/docs/a.md"}, nil
			},
		}

		sweeper := &sweep.Sweeper{Files: scanner, Store: &mock.FileStore{}}
		_, err := sweeper.Run(ctx, "/docs")

		assert.ErrorIs(t, err, context.Canceled)
	})
}
