// pattern: Imperative Shell

package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// ErrBaseDirNotFound indicates the configured base directory is missing
// or unreadable. The previous result set stays valid when this is returned.
var ErrBaseDirNotFound = errors.New("base directory not found")

// Scanner discovers git repositories one level below a base directory.
type Scanner struct{}

// NewScanner creates a new repository scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan enumerates the immediate subdirectories of baseDir and returns
// those containing a .git entry. Nested repositories inside non-repository
// folders are not discovered. The result is sorted by name so rescanning
// an unchanged tree yields an identical slice.
func (s *Scanner) Scan(baseDir string) ([]Repo, error) {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBaseDirNotFound, baseDir)
	}

	var repos []Repo
	seen := make(map[string]bool)

	for _, entry := range entries {
		if !entry.IsDir() && entry.Type()&os.ModeSymlink == 0 {
			continue
		}
		repoPath := filepath.Join(baseDir, entry.Name())

		// Resolve symlinks to get canonical path
		resolved, err := filepath.EvalSymlinks(repoPath)
		if err != nil {
			resolved = repoPath
		}
		if seen[resolved] {
			continue
		}
		seen[resolved] = true

		info, err := os.Stat(resolved)
		if err != nil || !info.IsDir() {
			continue
		}

		gitPath := filepath.Join(resolved, ".git")
		if _, err := os.Stat(gitPath); err != nil {
			continue
		}

		repos = append(repos, Repo{
			Name:         entry.Name(),
			Path:         resolved,
			LastModified: lastCommitTime(gitPath),
		})
	}

	sort.Slice(repos, func(i, j int) bool {
		return repos[i].Name < repos[j].Name
	})

	return repos, nil
}

// lastCommitTime returns the mtime of .git/COMMIT_EDITMSG, which tracks
// the most recent local commit. Repositories that were cloned but never
// committed to fall back to the .git entry's own mtime.
func lastCommitTime(gitPath string) time.Time {
	if info, err := os.Stat(filepath.Join(gitPath, "COMMIT_EDITMSG")); err == nil {
		return info.ModTime()
	}
	if info, err := os.Stat(gitPath); err == nil {
		return info.ModTime()
	}
	return time.Time{}
}
