package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotools/pkg/errors"
	"github.com/arthur-debert/dotools/pkg/types"
)

// Environment variable names
const (
	// EnvDataDir overrides the XDG data directory for dotools
	EnvDataDir = "DOTOOLS_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for dotools
	EnvConfigDir = "DOTOOLS_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for dotools
	EnvStateDir = "DOTOOLS_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directory and file names
const (
	// AppDirName is the directory name used under each XDG base
	AppDirName = "dotools"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "dotools.log"
)

// Paths provides centralized path management for dotools
type Paths interface {
	types.Pather
	ConfigFile() string
	LogFilePath() string
}

type paths struct {
	xdgData   string
	xdgConfig string
	xdgState  string
}

// New resolves the dotools directories from the environment.
// xdg is reloaded first so that changes to XDG_* variables made after
// process start are honoured.
func New() (Paths, error) {
	xdg.Reload()

	p := &paths{
		xdgData:   dirFromEnv(EnvDataDir, xdg.DataHome),
		xdgConfig: dirFromEnv(EnvConfigDir, xdg.ConfigHome),
		xdgState:  dirFromEnv(EnvStateDir, xdg.StateHome),
	}

	for _, dir := range []*string{&p.xdgData, &p.xdgConfig, &p.xdgState} {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrIO, "failed to get absolute path for %s", *dir)
		}
		*dir = abs
	}

	return p, nil
}

// dirFromEnv returns the override in env, or base/dotools
func dirFromEnv(env, base string) string {
	if dir := os.Getenv(env); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(base, AppDirName)
}

// DataDir returns the XDG data directory for dotools
func (p *paths) DataDir() string {
	return p.xdgData
}

// ConfigDir returns the XDG config directory for dotools
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// StateDir returns the XDG state directory for dotools
func (p *paths) StateDir() string {
	return p.xdgState
}

// StoreDir returns the default directory for store.json
func (p *paths) StoreDir() string {
	return p.xdgData
}

// ConfigFile returns the path of the user configuration file
func (p *paths) ConfigFile() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// LogFilePath returns the path of the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// ExpandHome expands a leading ~ to the home directory.
// ~user forms are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

// NormalizePath expands ~, resolves the path against the working
// directory and cleans it.
func NormalizePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New(errors.ErrInvalidInput, "path is empty")
	}

	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrIO, "failed to get absolute path for %s", path).
			WithDetail("path", path)
	}
	return filepath.Clean(abs), nil
}
