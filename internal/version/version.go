/**
 * @description
 * Build metadata for the /api/version endpoint. The variables are
 * populated at build time via -ldflags, e.g.:
 *
 *   go build -ldflags "\
 *     -X github.com/VII-77/Levqor-9.0-sub003/internal/version.Commit=$(git rev-parse HEAD) \
 *     -X github.com/VII-77/Levqor-9.0-sub003/internal/version.Branch=$(git rev-parse --abbrev-ref HEAD) \
 *     -X github.com/VII-77/Levqor-9.0-sub003/internal/version.GeneratedAt=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
 *
 * Builds without ldflags report "unknown" fields.
 */
package version

import "runtime"

var (
	// Name is the service name reported by the version endpoint.
	Name = "levqor-web"
	// Commit is the full git commit hash of the build.
	Commit = "unknown"
	// Branch is the git branch the build was produced from.
	Branch = "unknown"
	// GeneratedAt is the UTC build timestamp.
	GeneratedAt = "unknown"
)

// Info is the build metadata payload of the version endpoint.
type Info struct {
	Name        string `json:"name"`
	Commit      string `json:"commit"`
	CommitShort string `json:"commitShort"`
	Branch      string `json:"branch"`
	GeneratedAt string `json:"generatedAt"`
	Runtime     string `json:"runtime"`
}

// Get assembles the current build metadata.
func Get() Info {
	short := Commit
	if len(short) > 7 {
		short = short[:7]
	}
	return Info{
		Name:        Name,
		Commit:      Commit,
		CommitShort: short,
		Branch:      Branch,
		GeneratedAt: GeneratedAt,
		Runtime:     runtime.Version(),
	}
}
