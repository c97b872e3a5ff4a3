package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/dotools/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/dotools/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/dotools/internal/version.Date={{.Date}}
)

// String returns the version line printed by "dotools version"
func String() string {
	return fmt.Sprintf("dotools %s (commit %s, built %s)", Version, Commit, Date)
}
