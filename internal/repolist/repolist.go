// pattern: Functional Core

// package repolist derives the visible, ordered repository list from the
// raw scan result and the current filter/sort state. Everything here is
// pure; the TUI owns the state and calls in on every change.
package repolist

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"repodash/internal/discovery"
)

// SortKey selects the column the visible list is ordered by.
type SortKey int

const (
	SortByName SortKey = iota
	SortByModified
)

// State holds the user-controlled filter and sort configuration.
type State struct {
	Filter    string
	Key       SortKey
	Ascending bool
}

// DefaultState returns the initial presentation state: no filter,
// sorted by name ascending.
func DefaultState() State {
	return State{Key: SortByName, Ascending: true}
}

// ToggleSort activates key, flipping the direction when key is already
// active and otherwise starting from the key's default direction
// (name: ascending, last-modified: descending).
func (s State) ToggleSort(key SortKey) State {
	if s.Key == key {
		s.Ascending = !s.Ascending
		return s
	}
	s.Key = key
	s.Ascending = key == SortByName
	return s
}

// Visible returns the repositories matching the filter, ordered by the
// sort configuration. Ties are always broken by name ascending so the
// output is deterministic for a given input. The input slice is not
// modified.
func Visible(repos []discovery.Repo, state State) []discovery.Repo {
	needle := strings.ToLower(state.Filter)

	out := make([]discovery.Repo, 0, len(repos))
	for _, r := range repos {
		if needle == "" || strings.Contains(strings.ToLower(r.Name), needle) {
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch state.Key {
		case SortByModified:
			if !a.LastModified.Equal(b.LastModified) {
				if state.Ascending {
					return a.LastModified.Before(b.LastModified)
				}
				return a.LastModified.After(b.LastModified)
			}
			return lessName(a.Name, b.Name)
		default:
			an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
			if an != bn {
				if state.Ascending {
					return an < bn
				}
				return an > bn
			}
			return lessName(a.Name, b.Name)
		}
	})

	return out
}

// lessName is the deterministic tie-break: name ascending, case-insensitive
// first, raw bytes second.
func lessName(a, b string) bool {
	al, bl := strings.ToLower(a), strings.ToLower(b)
	if al != bl {
		return al < bl
	}
	return a < b
}

// Age formats how long ago t was relative to now: "42s ago", "5m ago",
// "3h ago", "12d ago". A zero time renders as "never".
func Age(now, t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}
	s := int64(d.Seconds())
	switch {
	case s < 60:
		return fmt.Sprintf("%ds ago", s)
	case s < 3600:
		return fmt.Sprintf("%dm ago", s/60)
	case s < 86400:
		return fmt.Sprintf("%dh ago", s/3600)
	default:
		return fmt.Sprintf("%dd ago", s/86400)
	}
}
