package datastore

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"maps"
	"path/filepath"
	"slices"
	"sync"

	"github.com/arthur-debert/dotools/pkg/errors"
	"github.com/arthur-debert/dotools/pkg/filesystem"
	"github.com/arthur-debert/dotools/pkg/logging"
	"github.com/arthur-debert/dotools/pkg/types"
	"github.com/rs/zerolog"
)

const (
	// FileName is the name of the backing file inside the store directory
	FileName = "store.json"

	filePerm fs.FileMode = 0644
	dirPerm  fs.FileMode = 0755
)

// Store is an in-memory mapping of keys to JSON values backed by one file.
type Store struct {
	mu     sync.RWMutex
	fs     types.FS
	path   string
	data   map[string]any
	logger zerolog.Logger
}

// New opens the store in dir on the OS filesystem.
func New(dir string) (*Store, error) {
	return NewWithFS(filesystem.NewOS(), dir)
}

// NewWithFS opens the store in dir using fs for all I/O.
//
// If dir/store.json exists it is loaded. If it does not, an empty store is
// saved so the file exists on return. Any other failure, including a file
// that does not parse, is returned and no Store is produced.
func NewWithFS(fs types.FS, dir string) (*Store, error) {
	s := &Store{
		fs:     fs,
		path:   filepath.Join(dir, FileName),
		data:   make(map[string]any),
		logger: logging.GetLogger("datastore"),
	}

	err := s.Load()
	switch {
	case err == nil:
		s.logger.Debug().Str("path", s.path).Int("keys", s.Len()).Msg("Store loaded")
	case errors.IsErrorCode(err, errors.ErrNotFound):
		s.logger.Info().Str("path", s.path).Msg("Store file missing, creating empty store")
		if err := s.Save(); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s, nil
}

// Path returns the location of the backing file
func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory mapping with the file's contents.
//
// A missing file fails with ErrNotFound, content that is not a JSON object
// with ErrParse and any other read failure with ErrIO. On failure the
// in-memory mapping is left as it was.
func (s *Store) Load() error {
	defer logging.LogOperationStart(s.logger, "load")()

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.fs.ReadFile(s.path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(err, errors.ErrNotFound, "store file %s does not exist", s.path).
				WithDetail("path", s.path)
		}
		return errors.Wrapf(err, errors.ErrIO, "failed to read store file %s", s.path).
			WithDetail("path", s.path)
	}

	data, err := decodeObject(raw)
	if err != nil {
		return errors.Wrapf(err, errors.ErrParse, "failed to parse store file %s", s.path).
			WithDetail("path", s.path)
	}

	s.data = data
	s.logger.Trace().Str("path", s.path).Int("bytes", len(raw)).Msg("Read store file")
	return nil
}

// Save writes the in-memory mapping to the file, replacing its contents.
//
// The data is written to a sibling temporary file which is then renamed
// over the target, so a failed Save leaves the previous contents intact.
func (s *Store) Save() error {
	defer logging.LogOperationStart(s.logger, "save")()

	// Exclusive: concurrent saves would race on the temp file.
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(s.data)
	if err != nil {
		// Set only admits values that already round-tripped through JSON.
		return errors.Wrap(err, errors.ErrInternal, "failed to encode store")
	}

	if err := s.writeFile(raw); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to write store file %s", s.path).
			WithDetail("path", s.path)
	}

	s.logger.Debug().Str("path", s.path).Int("keys", len(s.data)).Msg("Store saved")
	return nil
}

// writeFile replaces the store file with raw. A symlinked store file is
// resolved so the link survives and its target gets the new contents, and
// an existing file keeps its permissions.
func (s *Store) writeFile(raw []byte) error {
	target, mode := s.path, filePerm
	if resolved, err := s.fs.EvalSymlinks(s.path); err == nil {
		target = resolved
		if info, err := s.fs.Stat(target); err == nil {
			mode = info.Mode().Perm()
		}
	}

	if err := s.fs.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp := target + ".tmp"
	// A stale temp file would keep its old mode through WriteFile
	_ = s.fs.Remove(tmp)
	if err := s.fs.WriteFile(tmp, raw, mode); err != nil {
		_ = s.fs.Remove(tmp)
		return err
	}
	if err := s.fs.Rename(tmp, target); err != nil {
		_ = s.fs.Remove(tmp)
		return err
	}
	return nil
}

// Get returns a copy of the value stored under key
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, false
	}
	return deepCopy(v), true
}

// Decode unmarshals the value under key into out, which must be a pointer.
// It reports false without touching out if the key is absent.
func (s *Store) Decode(key string, out any) (bool, error) {
	s.mu.RLock()
	v, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return true, errors.Wrapf(err, errors.ErrInternal, "failed to encode value for key %q", key)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, errors.Wrapf(err, errors.ErrInvalidInput, "value for key %q does not fit %T", key, out).
			WithDetail("key", key)
	}
	return true, nil
}

// Set stores value under key, replacing any previous value.
// Nothing is written to disk until Save.
func (s *Store) Set(key string, value any) error {
	v, err := normalize(value)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "value for key %q is not JSON-serializable", key).
			WithDetail("key", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = v
	return nil
}

// Delete removes key and reports whether it was present
func (s *Store) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return false
	}
	delete(s.data, key)
	return true
}

// Keys returns all keys in sorted order
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.data))
}

// Len returns the number of keys
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// All returns a deep copy of the whole mapping
func (s *Store) All() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deepCopy(s.data).(map[string]any)
}
