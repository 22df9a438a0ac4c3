// Version control information injected with go's -ldflags option, e.g.
//
//	go build -ldflags "-X mergington.dev/backend/internal/pkg/bininfo.Version=v1.2.0"
//
// DO NOT RENAME THE VARIABLES WITHOUT UPDATING THE BUILD SCRIPTS.
package bininfo

var (
	// Version is the SemVer version of the binary.
	// Git commit is appended, if available, separated by a plus sign [+].
	Version = "v0.0.0-dev"

	// BuildTime is the time at which the application was built.
	BuildTime = "1970-01-01T00:00:00Z"
)
