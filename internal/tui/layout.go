// pattern: Functional Core

package tui

// Region defines a rectangular area within the terminal.
type Region struct {
	Width  int // Width in cells
	Height int // Height in lines
}

// Layout holds computed regions for all UI components.
type Layout struct {
	Header    Region // App title + base dir line
	Search    Region // Search input (1 line)
	Content   Region // Repository list (dynamic)
	Separator Region // Separator above logs (1 line when logs open)
	Logs      Region // Log panel when open (40% of content area)
	StatusBar Region // Status bar (1 line)
}

// Fixed heights for chrome elements
const (
	headerHeight    = 2 // Title + base dir
	searchHeight    = 1
	statusBarHeight = 1
	marginHeight    = 1
	separatorHeight = 1
)

// ComputeLayout calculates regions based on terminal dimensions.
// When logPanelOpen is true, the content area splits 60/40 vertically
// between the repository list and the log panel.
func ComputeLayout(width, height int, logPanelOpen bool) Layout {
	fixedHeight := headerHeight + searchHeight + statusBarHeight + marginHeight
	availableHeight := height - fixedHeight
	if availableHeight < 4 {
		availableHeight = 4
	}

	var contentHeight, logsHeight int
	if logPanelOpen {
		logsHeight = int(float64(availableHeight) * 0.4)
		contentHeight = availableHeight - logsHeight - separatorHeight
		if contentHeight < 1 {
			contentHeight = 1
		}
	} else {
		contentHeight = availableHeight
	}

	layout := Layout{
		Header:    Region{Width: width, Height: headerHeight},
		Search:    Region{Width: width, Height: searchHeight},
		Content:   Region{Width: width, Height: contentHeight},
		StatusBar: Region{Width: width, Height: statusBarHeight},
	}
	if logPanelOpen {
		layout.Separator = Region{Width: width, Height: separatorHeight}
		layout.Logs = Region{Width: width, Height: logsHeight}
	}
	return layout
}

// ContentListHeight returns the height available for the repository list
// after accounting for list chrome.
func (l Layout) ContentListHeight() int {
	h := l.Content.Height - 1
	if h < 1 {
		h = 1
	}
	return h
}
