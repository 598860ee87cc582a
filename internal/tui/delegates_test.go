package tui

import (
	"strings"
	"testing"
	"time"

	"repodash/internal/discovery"
)

func TestRepoItem_TitleAndDescription(t *testing.T) {
	now := time.Now()
	item := repoItem{
		repo: discovery.Repo{
			Name:         "proj-a",
			Path:         "/base/proj-a",
			LastModified: now.Add(-2 * time.Hour),
		},
		age: "2h ago",
	}

	if item.Title() != "proj-a" {
		t.Errorf("Title() = %q, want proj-a", item.Title())
	}
	desc := item.Description()
	if !strings.Contains(desc, "2h ago") || !strings.Contains(desc, "/base/proj-a") {
		t.Errorf("Description() = %q, missing age or path", desc)
	}
	if item.FilterValue() != "proj-a" {
		t.Errorf("FilterValue() = %q, want proj-a", item.FilterValue())
	}
}

func TestToListItems(t *testing.T) {
	now := time.Now()
	repos := []discovery.Repo{
		{Name: "a", Path: "/a", LastModified: now.Add(-30 * time.Second)},
		{Name: "b", Path: "/b"},
	}

	items := toListItems(repos, now)
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if items[0].(repoItem).age != "30s ago" {
		t.Errorf("age = %q, want 30s ago", items[0].(repoItem).age)
	}
	if items[1].(repoItem).age != "never" {
		t.Errorf("zero-time age = %q, want never", items[1].(repoItem).age)
	}
}

func TestRepoDelegate_Dimensions(t *testing.T) {
	d := newRepoDelegate(NewStyles("mocha"))
	if d.Height() != 2 {
		t.Errorf("Height() = %d, want 2", d.Height())
	}
	if d.Spacing() != 0 {
		t.Errorf("Spacing() = %d, want 0", d.Spacing())
	}
}
