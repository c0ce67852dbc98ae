package geosteiner

import (
	"github.com/geosteiner-go/geosteiner/pkg/geosteiner/geom"
	"github.com/geosteiner-go/geosteiner/pkg/geosteiner/internal/backend"
)

// Pack lays points out as the flat buffer [x0 y0 x1 y1 ...] expected by the
// native routine. An empty input yields an empty, non-nil buffer.
func Pack(points []geom.Point) []float64 {
	coords := make([]float64, 2*len(points))
	for i, p := range points {
		coords[2*i] = p.X
		coords[2*i+1] = p.Y
	}
	return coords
}

// PackInto is the fixed-size variant of Pack. dst must hold exactly
// 2*len(points) values; this is the only dynamic size check on the packing
// path.
func PackInto(dst []float64, points []geom.Point) error {
	if len(dst) != 2*len(points) {
		return backend.SizeMismatch("dst", len(points), len(dst))
	}
	for i, p := range points {
		dst[2*i] = p.X
		dst[2*i+1] = p.Y
	}
	return nil
}

// PackTerms packs points after checking them against a stated terminal
// count.
func PackTerms(nterms int, points []geom.Point) ([]float64, error) {
	if nterms != len(points) {
		return nil, backend.SizeMismatch("points", nterms, 2*len(points))
	}
	return Pack(points), nil
}

// Points reads a flat coordinate buffer back into points. It is the inverse
// of Pack and rejects odd-length buffers.
func Points(coords []float64) ([]geom.Point, error) {
	if len(coords)%2 != 0 {
		return nil, backend.SizeMismatch("coords", len(coords)/2, len(coords))
	}
	points := make([]geom.Point, len(coords)/2)
	for i := range points {
		points[i] = geom.Pt(coords[2*i], coords[2*i+1])
	}
	return points, nil
}
