// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.2.0"

// Milestones:
// 0.2.0 - Epoch scrubber TUI, orbit plan view, JSON table export
// 0.1.0 - Initial release: Pluto99 series engine, table mode, headless position
