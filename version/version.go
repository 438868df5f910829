// Package version holds build metadata injected at link time.
package version

import "runtime"

// Populated via -ldflags "-X github.com/jackzampolin/promptgen/version.GitRelease=..."
var (
	GitRelease    = "dev"
	GitCommit     = "unknown"
	GitCommitDate = "unknown"
)

// GoInfo reports the Go toolchain the binary was built with.
var GoInfo = runtime.Version()
