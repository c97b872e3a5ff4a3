package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotools/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImplementations(t *testing.T) {
	tests := []struct {
		name  string
		newFS func() types.FS
		root  func(t *testing.T) string
	}{
		{"os", NewOS, func(t *testing.T) string { return t.TempDir() }},
		{"memory", NewMemory, func(t *testing.T) string { return "/mem" }},
		{"afero_os", func() types.FS { return NewAferoFS(afero.NewOsFs()) }, func(t *testing.T) string { return t.TempDir() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := tt.newFS()
			root := tt.root(t)
			dir := filepath.Join(root, "sub", "dir")
			file := filepath.Join(dir, "store.json")

			require.NoError(t, fs.MkdirAll(dir, 0755))
			require.NoError(t, fs.WriteFile(file, []byte("{}"), 0644))

			info, err := fs.Stat(file)
			require.NoError(t, err)
			assert.Equal(t, "store.json", info.Name())
			assert.Equal(t, int64(2), info.Size())

			content, err := fs.ReadFile(file)
			require.NoError(t, err)
			assert.Equal(t, []byte("{}"), content)

			resolved, err := fs.EvalSymlinks(file)
			require.NoError(t, err)
			assert.Equal(t, "store.json", filepath.Base(resolved))
			_, err = fs.EvalSymlinks(filepath.Join(dir, "missing.json"))
			assert.Error(t, err)

			_, err = fs.ReadFile(dir)
			assert.Error(t, err, "reading a directory must fail")

			moved := filepath.Join(dir, "moved.json")
			require.NoError(t, fs.Rename(file, moved))
			_, err = fs.Stat(file)
			assert.True(t, os.IsNotExist(err))

			require.NoError(t, fs.Remove(moved))
			_, err = fs.Stat(moved)
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestEvalSymlinks_FollowsLinks(t *testing.T) {
	for name, fs := range map[string]types.FS{
		"os":       NewOS(),
		"afero_os": NewAferoFS(afero.NewOsFs()),
	} {
		t.Run(name, func(t *testing.T) {
			root, err := filepath.EvalSymlinks(t.TempDir())
			require.NoError(t, err)
			target := filepath.Join(root, "target.json")
			link := filepath.Join(root, "link.json")
			require.NoError(t, os.WriteFile(target, []byte("{}"), 0644))
			if err := os.Symlink(target, link); err != nil {
				t.Skipf("symlinks not supported: %v", err)
			}

			resolved, err := fs.EvalSymlinks(link)
			require.NoError(t, err)
			assert.Equal(t, target, resolved)
		})
	}
}
