// Package locations keeps named directory bookmarks in a datastore.
//
// Each bookmark is one store key (the name) whose value is an object
// {"path": "/abs/dir", "added": "<RFC3339>"}. Keys holding anything else
// are left alone and skipped by List, so the store can be shared with
// other data.
package locations

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/arthur-debert/dotools/pkg/datastore"
	"github.com/arthur-debert/dotools/pkg/errors"
	"github.com/arthur-debert/dotools/pkg/logging"
	"github.com/arthur-debert/dotools/pkg/paths"
	"github.com/rs/zerolog"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Location is a named directory
type Location struct {
	Name  string    `json:"name" yaml:"name" toml:"name"`
	Path  string    `json:"path" yaml:"path" toml:"path"`
	Added time.Time `json:"added" yaml:"added" toml:"added"`
}

// entry is the stored form of a Location
type entry struct {
	Path  string    `json:"path"`
	Added time.Time `json:"added"`
}

// Locations manages bookmarks on top of a Store
type Locations struct {
	store  *datastore.Store
	now    func() time.Time
	logger zerolog.Logger
}

// Open wraps store
func Open(store *datastore.Store) *Locations {
	return &Locations{
		store:  store,
		now:    time.Now,
		logger: logging.GetLogger("locations"),
	}
}

// ValidateName checks that name can be used as a bookmark
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return errors.Newf(errors.ErrLocationInvalid,
			"invalid location name %q: use letters, digits, '.', '_' or '-', starting with a letter or digit", name).
			WithDetail("name", name)
	}
	return nil
}

// Add bookmarks path under name and saves the store. The path is made
// absolute. An existing name is only replaced when force is set.
func (l *Locations) Add(name, path string, force bool) (Location, error) {
	if err := ValidateName(name); err != nil {
		return Location{}, err
	}

	abs, err := paths.NormalizePath(path)
	if err != nil {
		return Location{}, errors.Wrapf(err, errors.ErrLocationInvalid, "invalid path for location %q", name).
			WithDetail("name", name)
	}

	if !force {
		if existing, ok := l.lookup(name); ok {
			return Location{}, errors.Newf(errors.ErrAlreadyExists,
				"location %q already points to %s", name, existing.Path).
				WithDetail("name", name)
		}
		if _, ok := l.store.Get(name); ok {
			return Location{}, errors.Newf(errors.ErrAlreadyExists,
				"key %q already holds a value that is not a location", name).
				WithDetail("name", name)
		}
	}

	loc := Location{Name: name, Path: abs, Added: l.now().UTC().Truncate(time.Second)}
	if err := l.store.Set(name, entry{Path: loc.Path, Added: loc.Added}); err != nil {
		return Location{}, err
	}
	if err := l.store.Save(); err != nil {
		return Location{}, err
	}

	l.logger.Info().Str("name", name).Str("path", abs).Msg("Location added")
	return loc, nil
}

// Lookup returns the bookmark called name
func (l *Locations) Lookup(name string) (Location, error) {
	loc, ok := l.lookup(name)
	if !ok {
		return Location{}, errors.Newf(errors.ErrLocationNotFound, "no location named %q", name).
			WithDetail("name", name)
	}
	return loc, nil
}

// Remove deletes the bookmark called name and saves the store
func (l *Locations) Remove(name string) error {
	if _, ok := l.lookup(name); !ok {
		return errors.Newf(errors.ErrLocationNotFound, "no location named %q", name).
			WithDetail("name", name)
	}

	l.store.Delete(name)
	if err := l.store.Save(); err != nil {
		return err
	}

	l.logger.Info().Str("name", name).Msg("Location removed")
	return nil
}

// List returns every bookmark sorted by name
func (l *Locations) List() []Location {
	var out []Location
	for _, name := range l.store.Keys() {
		if loc, ok := l.lookup(name); ok {
			out = append(out, loc)
		}
	}
	slices.SortFunc(out, func(a, b Location) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// lookup decodes name, treating values that are not bookmarks as absent
func (l *Locations) lookup(name string) (Location, bool) {
	var e entry
	found, err := l.store.Decode(name, &e)
	if !found || err != nil || e.Path == "" {
		if err != nil {
			l.logger.Trace().Err(err).Str("key", name).Msg("Skipping non-location key")
		}
		return Location{}, false
	}
	return Location{Name: name, Path: e.Path, Added: e.Added}, true
}
