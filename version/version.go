// Package version exposes build metadata, populated at link time via
// -ldflags "-X github.com/farcloser/serpentarium/version.version=...".
package version

//nolint:gochecknoglobals // populated by the linker
var (
	name    = "serpentarium"
	version = "dev"
	commit  = "unknown"
)

func Name() string {
	return name
}

func Version() string {
	return version
}

func Commit() string {
	return commit
}
