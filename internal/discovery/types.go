// pattern: Functional Core

package discovery

import "time"

// Repo represents a git repository found during directory scanning.
// Records are immutable once produced by a scan; Path is the identity.
type Repo struct {
	Name         string    // Directory name (used as display name)
	Path         string    // Absolute path to the repository root
	LastModified time.Time // Last commit activity (zero if unknown)
}
