package version

import "fmt"

// VERSION and GITCOMMIT are injected at build time via -ldflags "-X".
var (
	VERSION   string
	GITCOMMIT string
)

// VersionToString returns "version - commit", or "dev" for builds without injected version information.
func VersionToString() string {
	if VERSION == "" && GITCOMMIT == "" {
		return "dev"
	}
	return fmt.Sprintf("%s - %s", VERSION, GITCOMMIT)
}
