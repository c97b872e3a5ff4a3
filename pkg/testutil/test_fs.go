package testutil

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotools/pkg/filesystem"
	"github.com/arthur-debert/dotools/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// NewReadOnlyFS returns an in-memory filesystem seeded with files that
// rejects every write.
func NewReadOnlyFS(t *testing.T, files map[string]string) types.FS {
	t.Helper()

	base := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(base, name, []byte(content), 0644))
	}
	return filesystem.NewAferoFS(afero.NewReadOnlyFs(base))
}

// WriteFile writes content to name on fs, creating parents
func WriteFile(t *testing.T, fsys types.FS, name, content string) {
	t.Helper()

	require.NoError(t, fsys.MkdirAll(filepath.Dir(name), 0755))
	require.NoError(t, fsys.WriteFile(name, []byte(content), 0644))
}

// ReadFile returns the content of name on fs
func ReadFile(t *testing.T, fsys types.FS, name string) string {
	t.Helper()

	content, err := fsys.ReadFile(name)
	require.NoError(t, err)
	return string(content)
}

// FaultyFS fails the operations that have an error set and delegates
// everything else.
type FaultyFS struct {
	types.FS

	ReadErr   error
	WriteErr  error
	RenameErr error
}

func (f *FaultyFS) ReadFile(name string) ([]byte, error) {
	if f.ReadErr != nil {
		return nil, f.ReadErr
	}
	return f.FS.ReadFile(name)
}

func (f *FaultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if f.WriteErr != nil {
		return f.WriteErr
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FaultyFS) Rename(oldpath, newpath string) error {
	if f.RenameErr != nil {
		return f.RenameErr
	}
	return f.FS.Rename(oldpath, newpath)
}
