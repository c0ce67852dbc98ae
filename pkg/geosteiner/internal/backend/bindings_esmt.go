//go:build cgo && geosteiner && !windows

package backend

/*
#cgo CFLAGS: -I${SRCDIR}/../../../../geosteiner
#cgo LDFLAGS: -L${SRCDIR}/../../../../geosteiner -lgeosteiner -lm
#include <stdlib.h>
#include <string.h>
#include "geosteiner.h"

typedef struct {
	double length;
	int nsps;
	double *sps;
	int nedges;
	int *edges;
	int rc;
} gsgo_esmt_t;

// Scratch buffers handed to gst_esmt. They stay valid until the next call
// or until gsgo_release.
static double *gsgo_sps;
static int *gsgo_edges;
static size_t gsgo_cap;

// An ESMT over n terminals has at most n-2 Steiner points and 2n-3 edges.
static int gsgo_reserve(int nterms) {
	size_t n = nterms > 0 ? (size_t)nterms : 1;
	if (n <= gsgo_cap) {
		return 0;
	}
	double *sps = realloc(gsgo_sps, 2 * n * sizeof(double));
	if (sps == NULL) {
		return -1;
	}
	gsgo_sps = sps;
	int *edges = realloc(gsgo_edges, 4 * n * sizeof(int));
	if (edges == NULL) {
		return -1;
	}
	gsgo_edges = edges;
	gsgo_cap = n;
	return 0;
}

static gsgo_esmt_t gsgo_esmt(int nterms, double *terms, int with_edges) {
	gsgo_esmt_t out;
	memset(&out, 0, sizeof(out));
	if (gsgo_reserve(nterms) != 0) {
		out.rc = -1;
		return out;
	}
	out.rc = gst_esmt(nterms, terms, &out.length, &out.nsps, gsgo_sps,
		with_edges ? &out.nedges : NULL,
		with_edges ? gsgo_edges : NULL,
		NULL, NULL);
	out.sps = gsgo_sps;
	out.edges = with_edges ? gsgo_edges : NULL;
	return out;
}

static void gsgo_release(void) {
	free(gsgo_sps);
	free(gsgo_edges);
	gsgo_sps = NULL;
	gsgo_edges = NULL;
	gsgo_cap = 0;
}
*/
import "C"

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/geosteiner-go/geosteiner/pkg/geosteiner/geom"
)

// Native reports whether this binary links the GeoSteiner library.
const Native = true

// Open initializes the GeoSteiner environment.
func Open() error {
	if rc := C.gst_open_geosteiner(); rc != 0 {
		return fmt.Errorf("%w: gst_open_geosteiner returned %d", ErrForeignFailure, int(rc))
	}
	return nil
}

// Close releases the scratch buffers and tears down the GeoSteiner
// environment.
func Close() error {
	C.gsgo_release()
	if rc := C.gst_close_geosteiner(); rc != 0 {
		return fmt.Errorf("%w: gst_close_geosteiner returned %d", ErrForeignFailure, int(rc))
	}
	return nil
}

// ComputeESMT runs gst_esmt over the flat coordinate buffer and copies the
// result into Go memory before returning. coords is only borrowed for the
// duration of the call. The environment must be open and the caller must
// serialize calls. nterms must fit a C int; counts above maxTerms are
// rejected before the library is touched.
func ComputeESMT(coords []float64, nterms int, withEdges bool) (geom.ESMT, error) {
	if nterms < 0 || nterms > maxTerms || len(coords) != 2*nterms {
		return geom.ESMT{}, SizeMismatch("coords", nterms, len(coords))
	}

	var terms *C.double
	if len(coords) > 0 {
		terms = (*C.double)(unsafe.Pointer(&coords[0]))
	}
	var flag C.int
	if withEdges {
		flag = 1
	}

	out := C.gsgo_esmt(C.int(nterms), terms, flag)
	runtime.KeepAlive(coords)
	if out.rc != 0 {
		return geom.ESMT{}, fmt.Errorf("%w: gst_esmt returned %d", ErrForeignFailure, int(out.rc))
	}

	return Unpack(RawRecord{
		Length:   float64(out.length),
		NSPS:     int(out.nsps),
		SPS:      unsafe.Pointer(out.sps),
		HasEdges: withEdges,
		NEdges:   int(out.nedges),
		Edges:    unsafe.Pointer(out.edges),
	}, nterms)
}
