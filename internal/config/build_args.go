package config

import "fmt"

// The following vars are automatically injected via -ldflags.
// See Makefile target "make go-build" for the injection mechanism.
var (
	ModuleName = "build.local/misses/ldflags"               // e.g. github/custodia/signing-service
	Commit     = "< 40 chars git commit hash via ldflags >" // e.g. 3358bf3...
	BuildDate  = "1970-01-01T00:00:00+00:00"                // e.g. RFC3339 build date
)

func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v @ %v (%v)", ModuleName, Commit, BuildDate)
}
