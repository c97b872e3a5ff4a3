// Package types holds the small interfaces shared across dotools packages.
package types
