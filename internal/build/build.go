package build

import "fmt"

// Overridden at build time via -ldflags.
var (
	Version   = "0.0.0"
	GitCommit = "unknown"
)

var (
	ShortVersion = Version
	LongVersion  = fmt.Sprintf("%s (%s)", Version, GitCommit)
)
