// Package buildinfo carries the version stamped in by the linker:
//
//	go build -ldflags "-X eegscope/internal/buildinfo.Version=v0.3.0"
package buildinfo

import "fmt"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the window title.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String is the full build line printed by -version.
func String() string {
	return fmt.Sprintf("eegscope %s (commit %s, built %s)", Short(), Commit, Date)
}
