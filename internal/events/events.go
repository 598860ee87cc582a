// package events contains message types shared between the filesystem
// watcher and the tui package.
package events

// RescanRequestMsg asks the TUI to rescan the base directory. Sent by the
// watcher when the directory's children change.
type RescanRequestMsg struct{}
