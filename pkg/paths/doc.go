// Package paths resolves the directories dotools keeps its files in.
//
// It follows the XDG Base Directory specification and is the one place
// that decides where the store, the configuration file and the log file
// live. Callers hand the resulting directories to the packages that do
// the actual I/O; nothing in this package touches the filesystem beyond
// resolving the home directory.
//
// # Environment Variables
//
//   - DOTOOLS_DATA_DIR: Override the data directory (default: $XDG_DATA_HOME/dotools)
//   - DOTOOLS_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/dotools)
//   - DOTOOLS_STATE_DIR: Override the state directory (default: $XDG_STATE_HOME/dotools)
//
// # Layout
//
//   - Data: store.json
//   - Config: config.toml
//   - State: dotools.log
package paths
