package backend

import (
	"math"
	"unsafe"

	"github.com/geosteiner-go/geosteiner/pkg/geosteiner/geom"
)

// maxTerms bounds the terminal count. Every count Unpack accepts is derived
// from it, which keeps 2*(nterms+NSPS) and 2*NEdges inside a 32-bit int.
const maxTerms = math.MaxInt32 / 4

// RawRecord is a borrowed view of the native ESMT result. SPS points at
// 2*NSPS C doubles and Edges at 2*NEdges C ints. The memory belongs to the
// native side and is only valid until the next call into the library, so a
// RawRecord must be handed to Unpack immediately and never stored.
type RawRecord struct {
	Length float64

	NSPS int
	SPS  unsafe.Pointer

	// HasEdges is false for the basic variant that carries no edge data.
	HasEdges bool
	NEdges   int
	Edges    unsafe.Pointer
}

// Unpack copies every element of rec into Go-owned memory. nterms is the
// number of terminals that were passed to the routine and fixes the valid
// edge index range [0, nterms+NSPS).
//
// A tree over nterms terminals has at most max(nterms-2, 0) Steiner points
// and at most max(nterms+NSPS-1, 0) edges. Larger counts are rejected before
// any read, so Unpack reads at most 2*NSPS doubles and 2*NEdges ints, which
// stays within the scratch buffers the native shim sizes from nterms. On any
// violation it returns the zero ESMT and a *MarshalError; it never returns a
// partially filled tree.
func Unpack(rec RawRecord, nterms int) (geom.ESMT, error) {
	if nterms < 0 || nterms > maxTerms {
		return geom.ESMT{}, newError(KindInvalidCount, "nterms", -1, "%d", nterms)
	}
	if err := checkBuffer("sps", rec.NSPS, max(nterms-2, 0), rec.SPS); err != nil {
		return geom.ESMT{}, err
	}
	if rec.HasEdges {
		if err := checkBuffer("edges", rec.NEdges, max(nterms+rec.NSPS-1, 0), rec.Edges); err != nil {
			return geom.ESMT{}, err
		}
	}
	if math.IsNaN(rec.Length) || rec.Length < 0 {
		return geom.ESMT{}, newError(KindNegativeLength, "length", -1, "%g", rec.Length)
	}

	out := geom.ESMT{
		Length:        rec.Length,
		SteinerPoints: make([]geom.Point, rec.NSPS),
	}
	if rec.NSPS > 0 {
		flat := unsafe.Slice((*float64)(rec.SPS), 2*rec.NSPS)
		for i := range out.SteinerPoints {
			out.SteinerPoints[i] = geom.Pt(flat[2*i], flat[2*i+1])
		}
	}

	if !rec.HasEdges {
		return out, nil
	}

	nodes := nterms + rec.NSPS
	out.Edges = make([]geom.Edge, rec.NEdges)
	if rec.NEdges > 0 {
		flat := unsafe.Slice((*int32)(rec.Edges), 2*rec.NEdges)
		for i := range out.Edges {
			e := geom.NewEdge(int(flat[2*i]), int(flat[2*i+1]))
			if e.A < 0 || e.A >= nodes || e.B < 0 || e.B >= nodes {
				return geom.ESMT{}, newError(KindInvalidEdge, "edges", i, "edge %s outside [0,%d)", e, nodes)
			}
			if e.A == e.B {
				return geom.ESMT{}, newError(KindInvalidEdge, "edges", i, "edge %s is a self loop", e)
			}
			out.Edges[i] = e
		}
	}
	return out, nil
}

func checkBuffer(field string, n, limit int, p unsafe.Pointer) error {
	if n < 0 || n > limit {
		return newError(KindInvalidCount, field, -1, "count %d outside [0,%d]", n, limit)
	}
	if n > 0 && p == nil {
		return newError(KindNullBuffer, field, -1, "count %d with nil pointer", n)
	}
	return nil
}
