// pkg/paths/paths_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Environment variables only
// PURPOSE: Test XDG resolution, overrides and path normalization

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotools/pkg/errors"
	"github.com/arthur-debert/dotools/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_XDGDefaults(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))
	t.Setenv(paths.EnvDataDir, "")
	t.Setenv(paths.EnvConfigDir, "")
	t.Setenv(paths.EnvStateDir, "")

	p, err := paths.New()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "data", "dotools"), p.DataDir())
	assert.Equal(t, p.DataDir(), p.StoreDir())
	assert.Equal(t, filepath.Join(base, "config", "dotools"), p.ConfigDir())
	assert.Equal(t, filepath.Join(base, "config", "dotools", "config.toml"), p.ConfigFile())
	assert.Equal(t, filepath.Join(base, "state", "dotools"), p.StateDir())
	assert.Equal(t, filepath.Join(base, "state", "dotools", "dotools.log"), p.LogFilePath())
}

func TestNew_EnvOverrides(t *testing.T) {
	base := t.TempDir()
	t.Setenv(paths.EnvDataDir, filepath.Join(base, "d"))
	t.Setenv(paths.EnvConfigDir, filepath.Join(base, "c"))
	t.Setenv(paths.EnvStateDir, filepath.Join(base, "s"))

	p, err := paths.New()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "d"), p.DataDir())
	assert.Equal(t, filepath.Join(base, "c"), p.ConfigDir())
	assert.Equal(t, filepath.Join(base, "s"), p.StateDir())
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"bare_tilde", "~", home},
		{"tilde_slash", "~/projects", filepath.Join(home, "projects")},
		{"other_user", "~other/projects", "~other/projects"},
		{"absolute", "/abs/path", "/abs/path"},
		{"relative", "rel/path", "rel/path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.ExpandHome(tt.in))
		})
	}
}

func TestNormalizePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cwd, err := os.Getwd()
	require.NoError(t, err)

	got, err := paths.NormalizePath("~/a/../b/")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "b"), got)

	got, err = paths.NormalizePath("rel")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "rel"), got)

	_, err = paths.NormalizePath("  ")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
