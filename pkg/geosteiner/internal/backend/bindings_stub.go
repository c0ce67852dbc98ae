//go:build !cgo || !geosteiner || windows

package backend

import "github.com/geosteiner-go/geosteiner/pkg/geosteiner/geom"

// Stub implementations for builds without cgo or without the geosteiner tag.
// These allow the package to compile but return ErrNotBuilt when called.

// Native reports whether this binary links the GeoSteiner library.
const Native = false

func Open() error { return ErrNotBuilt }

func Close() error { return ErrNotBuilt }

func ComputeESMT([]float64, int, bool) (geom.ESMT, error) {
	return geom.ESMT{}, ErrNotBuilt
}
