package geosteiner

var (
	Version         = "v0.0.0-in-progress"
	UpstreamRelease = "5.3"
	UpstreamDir     = "geosteiner"
)

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}

// UpstreamVersion returns the pinned GeoSteiner release the bindings were
// written against.
func UpstreamVersion() string {
	return UpstreamRelease
}

// NativeAvailable reports whether the native bindings were compiled in.
func NativeAvailable() bool {
	return nativeBuilt
}
