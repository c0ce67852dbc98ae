// Package geosteiner exposes a Go API for computing Euclidean Steiner minimal
// trees with the native GeoSteiner library.
//
// The package owns the boundary between Go and the native routine: terminals
// are packed into a flat coordinate buffer, the routine runs under an open
// Session, and its result record is copied into a geom.ESMT before the call
// returns. No value handed to callers refers to native memory.
//
//	s, err := geosteiner.Open(geosteiner.Config{})
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	tree, err := s.Compute(ctx, []geom.Point{
//	    geom.Pt(0, 0), geom.Pt(0, 1), geom.Pt(1, 0), geom.Pt(1, 1),
//	})
//
// The native binding is only compiled with cgo and the geosteiner build tag;
// other builds return ErrNotBuilt from Open.
//
// # Threading
//
// The GeoSteiner library is NOT thread-safe. At most one Session may be open
// per process, and a Session serializes its own calls.
package geosteiner
