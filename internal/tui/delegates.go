// pattern: Imperative Shell

package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"repodash/internal/discovery"
	"repodash/internal/repolist"
)

// repoItem wraps a repository for display in a list.
type repoItem struct {
	repo discovery.Repo
	age  string
}

// Title returns the repository name for display.
func (i repoItem) Title() string {
	return i.repo.Name
}

// Description returns repository details for display.
func (i repoItem) Description() string {
	return fmt.Sprintf("last commit %s | %s", i.age, i.repo.Path)
}

// FilterValue returns the value to filter on.
func (i repoItem) FilterValue() string {
	return i.repo.Name
}

// repoDelegate handles rendering of repository items in a list.
type repoDelegate struct {
	styles *Styles
}

// newRepoDelegate creates a new repository delegate with the given styles.
func newRepoDelegate(styles *Styles) repoDelegate {
	return repoDelegate{styles: styles}
}

// Height returns the height of a single item.
func (d repoDelegate) Height() int {
	return 2
}

// Spacing returns the spacing between items.
func (d repoDelegate) Spacing() int {
	return 0
}

// Update handles item-specific updates.
func (d repoDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render renders a single repository item.
func (d repoDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ri, ok := item.(repoItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(d.styles.flavor.Text().Hex))
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(d.styles.flavor.Subtext0().Hex))

	indicator := "  "
	if isSelected {
		titleStyle = titleStyle.
			Bold(true).
			Foreground(lipgloss.Color(d.styles.flavor.Mauve().Hex))
		descStyle = descStyle.
			Foreground(lipgloss.Color(d.styles.flavor.Overlay0().Hex))
		indicator = lipgloss.NewStyle().
			Foreground(lipgloss.Color(d.styles.flavor.Mauve().Hex)).
			Render("▸ ")
	}

	title := titleStyle.Render(ri.repo.Name)
	desc := descStyle.Render(ri.Description())

	_, _ = fmt.Fprintf(w, "%s%s\n%s%s", indicator, title, "  ", desc)
}

// toListItems converts repositories to list items, formatting the commit
// age relative to now.
func toListItems(repos []discovery.Repo, now time.Time) []list.Item {
	items := make([]list.Item, len(repos))
	for i, r := range repos {
		items[i] = repoItem{repo: r, age: repolist.Age(now, r.LastModified)}
	}
	return items
}
