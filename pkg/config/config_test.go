// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Temp directories, environment variables
// PURPOSE: Test configuration layering, resolution and validation

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/dotools/pkg/config"
	"github.com/arthur-debert/dotools/pkg/errors"
	"github.com/arthur-debert/dotools/pkg/paths"
	"github.com/arthur-debert/dotools/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*testutil.Env, paths.Paths) {
	t.Helper()
	env := testutil.SetupEnv(t)
	p, err := paths.New()
	require.NoError(t, err)
	return env, p
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	env, p := setup(t)

	cfg, err := config.Load(config.Options{Paths: p})
	require.NoError(t, err)

	assert.Equal(t, env.DataDir, cfg.Store.Dir)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Equal(t, filepath.Join(env.StateDir, "dotools.log"), cfg.Log.File)
}

func TestLoad_Precedence(t *testing.T) {
	env, p := setup(t)
	writeConfig(t, p.ConfigFile(), `
[store]
dir = "~/from-file"

[output]
format = "yaml"
color = "never"
`)

	t.Run("file_over_defaults", func(t *testing.T) {
		cfg, err := config.Load(config.Options{Paths: p})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(env.Home, "from-file"), cfg.Store.Dir)
		assert.Equal(t, "yaml", cfg.Output.Format)
		assert.Equal(t, "never", cfg.Output.Color)
	})

	t.Run("env_over_file", func(t *testing.T) {
		t.Setenv("DOTOOLS_OUTPUT_FORMAT", "json")
		t.Setenv("DOTOOLS_STORE_DIR", filepath.Join(env.Root, "from-env"))

		cfg, err := config.Load(config.Options{Paths: p})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(env.Root, "from-env"), cfg.Store.Dir)
		assert.Equal(t, "json", cfg.Output.Format)
		assert.Equal(t, "never", cfg.Output.Color)
	})

	t.Run("overrides_over_env", func(t *testing.T) {
		t.Setenv("DOTOOLS_OUTPUT_FORMAT", "json")

		cfg, err := config.Load(config.Options{
			Paths: p,
			Overrides: map[string]interface{}{
				"output.format": "toml",
				"store.dir":     "",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "toml", cfg.Output.Format)
		assert.Equal(t, filepath.Join(env.Home, "from-file"), cfg.Store.Dir, "empty override is ignored")
	})
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	env, p := setup(t)
	explicit := filepath.Join(env.Root, "custom.toml")
	writeConfig(t, explicit, "[output]\nformat = \"JSON\"\n")

	cfg, err := config.Load(config.Options{ConfigFile: explicit, Paths: p})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format, "format is case-insensitive")

	_, err = config.Load(config.Options{ConfigFile: filepath.Join(env.Root, "missing.toml"), Paths: p})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_MalformedFile(t *testing.T) {
	_, p := setup(t)
	writeConfig(t, p.ConfigFile(), "[store\ndir = ")

	_, err := config.Load(config.Options{Paths: p})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	assert.Equal(t, p.ConfigFile(), errors.GetErrorDetails(err)["path"])
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantKey string
	}{
		{"bad_format", "output.format", "xml", "output.format"},
		{"bad_color", "output.color", "sometimes", "output.color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, p := setup(t)
			_, err := config.Load(config.Options{
				Paths:     p,
				Overrides: map[string]interface{}{tt.key: tt.value},
			})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
			assert.Equal(t, tt.wantKey, errors.GetErrorDetails(err)["key"])
		})
	}
}

func TestLoad_NoPathsRequiresStoreDir(t *testing.T) {
	testutil.SetupEnv(t)

	_, err := config.Load(config.Options{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	cfg, err := config.Load(config.Options{Overrides: map[string]interface{}{"store.dir": "/srv/dotools"}})
	require.NoError(t, err)
	assert.Equal(t, "/srv/dotools", cfg.Store.Dir)
}

func TestGenerateConfigContent(t *testing.T) {
	content := config.GenerateConfigContent()

	assert.Contains(t, content, "[store]")
	assert.Contains(t, content, `# dir = ""`)
	assert.Contains(t, content, `# format = "text"`)
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "[") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), "line %q should be commented", line)
	}
}
