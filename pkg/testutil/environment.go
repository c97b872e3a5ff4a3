package testutil

import (
	"path/filepath"
	"testing"
)

// Env holds the directories of an isolated dotools environment
type Env struct {
	Root      string
	Home      string
	DataDir   string
	ConfigDir string
	StateDir  string
}

// SetupEnv points HOME and every dotools directory override at a fresh
// temp dir. Variables are restored when the test ends.
func SetupEnv(t *testing.T) *Env {
	t.Helper()

	root := t.TempDir()
	env := &Env{
		Root:      root,
		Home:      filepath.Join(root, "home"),
		DataDir:   filepath.Join(root, "data"),
		ConfigDir: filepath.Join(root, "config"),
		StateDir:  filepath.Join(root, "state"),
	}

	t.Setenv("HOME", env.Home)
	t.Setenv("DOTOOLS_DATA_DIR", env.DataDir)
	t.Setenv("DOTOOLS_CONFIG_DIR", env.ConfigDir)
	t.Setenv("DOTOOLS_STATE_DIR", env.StateDir)
	t.Setenv("DOTOOLS_STORE_DIR", "")
	t.Setenv("DOTOOLS_OUTPUT_FORMAT", "")
	t.Setenv("DOTOOLS_OUTPUT_COLOR", "")

	return env
}
