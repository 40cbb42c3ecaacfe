// Package version holds the build version, overridden at link time with
// -ldflags "-X github.com/battlesnakeio/termsnake/version.Version=...".
package version

// Version is the current termsnake version.
var Version = "dev"
