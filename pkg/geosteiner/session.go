package geosteiner

import (
	"context"
	"sync"

	"github.com/geosteiner-go/geosteiner/pkg/geosteiner/geom"
	"github.com/geosteiner-go/geosteiner/pkg/geosteiner/internal/backend"
	"github.com/geosteiner-go/geosteiner/pkg/geosteiner/logging"
)

const nativeBuilt = backend.Native

// Native entry points, replaced in tests.
var (
	openNative    = backend.Open
	closeNative   = backend.Close
	computeNative = backend.ComputeESMT
)

// The native library keeps process-wide state, so only one Session may be
// open at a time.
var (
	sessionMu   sync.Mutex
	sessionOpen bool
)

// Session is an open GeoSteiner environment. Every computation runs through
// a Session, which makes the open/close bracket explicit in the API.
type Session struct {
	cfg Config
	log logging.Logger

	mu     sync.Mutex
	closed bool
}

// Open initializes the native library and returns the process-wide Session.
// It fails with ErrSessionBusy while another Session is open.
func Open(cfg Config) (*Session, error) {
	sessionMu.Lock()
	defer sessionMu.Unlock()

	if sessionOpen {
		return nil, ErrSessionBusy
	}
	if err := openNative(); err != nil {
		return nil, RemapError(err)
	}
	sessionOpen = true

	s := &Session{cfg: cfg, log: cfg.logger()}
	s.log.Debug(context.Background(), "geosteiner session opened", "edges", !cfg.SkipEdges)
	return s, nil
}

// Close tears down the native library. Closing twice returns
// ErrSessionClosed.
//
// The Session and the process-wide session slot are released even when the
// native close reports an error. In that case the native library may still
// hold its state, and a later Open calls gst_open_geosteiner over it.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}

	sessionMu.Lock()
	defer sessionMu.Unlock()
	s.closed = true
	sessionOpen = false

	if err := closeNative(); err != nil {
		s.log.Warn(context.Background(), "geosteiner close failed", "err", err)
		return RemapError(err)
	}
	s.log.Debug(context.Background(), "geosteiner session closed")
	return nil
}

// Compute packs points as terminals, runs the native ESMT routine and returns
// an owned copy of its result.
func (s *Session) Compute(ctx context.Context, points []geom.Point) (geom.ESMT, error) {
	return s.compute(ctx, Pack(points), len(points))
}

// ComputeTerms is the fixed-size form of Compute: nterms must equal
// len(points), otherwise ErrSizeMismatch is returned before any native call.
func (s *Session) ComputeTerms(ctx context.Context, nterms int, points []geom.Point) (geom.ESMT, error) {
	coords, err := PackTerms(nterms, points)
	if err != nil {
		return geom.ESMT{}, err
	}
	return s.compute(ctx, coords, nterms)
}

// ComputeCoords runs the routine over an already packed buffer. coords is
// only read during the call.
func (s *Session) ComputeCoords(ctx context.Context, coords []float64) (geom.ESMT, error) {
	if len(coords)%2 != 0 {
		return geom.ESMT{}, backend.SizeMismatch("coords", len(coords)/2, len(coords))
	}
	return s.compute(ctx, coords, len(coords)/2)
}

func (s *Session) compute(ctx context.Context, coords []float64, nterms int) (geom.ESMT, error) {
	if s == nil {
		return geom.ESMT{}, ErrSessionClosed
	}
	if err := ctx.Err(); err != nil {
		return geom.ESMT{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return geom.ESMT{}, ErrSessionClosed
	}

	tree, err := computeNative(coords, nterms, !s.cfg.SkipEdges)
	if err != nil {
		err = RemapError(err)
		if IsIntegrityError(err) {
			s.log.Warn(ctx, "esmt result rejected", "terminals", nterms, "err", err)
		}
		return geom.ESMT{}, err
	}

	s.log.Debug(ctx, "esmt computed",
		"terminals", nterms,
		"steiner_points", len(tree.SteinerPoints),
		"edges", len(tree.Edges),
		"length", tree.Length,
	)
	return tree, nil
}
