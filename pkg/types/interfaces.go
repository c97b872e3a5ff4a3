package types

import (
	"io/fs"
)

// FS is the filesystem interface the store performs its I/O through
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Link operations
	EvalSymlinks(path string) (string, error)

	// Other operations
	Remove(name string) error
	Rename(oldpath, newpath string) error
}

// Pather provides the directories dotools reads and writes
type Pather interface {
	// DataDir returns the XDG data directory for dotools
	DataDir() string

	// ConfigDir returns the XDG config directory for dotools
	ConfigDir() string

	// StateDir returns the XDG state directory for dotools
	StateDir() string

	// StoreDir returns the directory holding store.json
	StoreDir() string
}
