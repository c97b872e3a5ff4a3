// Package datastore provides a JSON-file-backed key-value store.
//
// A Store keeps a mapping from string keys to JSON values in memory and
// mirrors it to exactly one file, <dir>/store.json. Mutations (Set, Delete)
// only touch memory; Save makes them durable and Load replaces memory with
// what is on disk. New guarantees the file exists on return: a missing file
// is treated as a first run and an empty store ({}) is written, while a
// file that exists but cannot be parsed is reported rather than replaced.
//
// Values are held in their natural decoded JSON form (nil, bool, float64,
// string, []any, map[string]any). Set normalizes whatever it is given into
// that form, so what Get returns before a Save is what it returns after a
// Save and Load.
//
// A Store is safe for concurrent use within one process. It does not
// coordinate with other processes using the same file.
package datastore
