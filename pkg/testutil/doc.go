// Package testutil provides utilities for testing dotools components.
//
// Key components:
//   - NewTestFS / NewReadOnlyFS: in-memory filesystems backed by afero
//   - FaultyFS: wraps a filesystem and fails selected operations
//   - SetupEnv: points every dotools directory at a temp dir
//
// Usage guidelines:
//   - Prefer the in-memory filesystem; use t.TempDir with the OS
//     filesystem only where real file semantics matter
//   - Each test should be completely isolated with no shared state
package testutil
