// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Window host, PNG snapshots, YAML config
// 0.2.0 - Debounced resize, seeded scenes, status line
// 0.1.0 - Initial release: terminal sky with moon, twinkling stars and meteors
