// Package build holds version information stamped into the projsync binary.
package build

// Version is the projsync release version.
// Release builds set it with -ldflags "-X go.trai.ch/projsync/internal/build.Version=...".
var Version = "dev"
