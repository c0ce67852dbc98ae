package geosteiner

import "github.com/geosteiner-go/geosteiner/pkg/geosteiner/logging"

// Config expresses the knobs passed to Open.
type Config struct {
	// Logger receives session lifecycle and computation events. Leaving it
	// nil logs through slog.Default().
	Logger logging.Logger

	// SkipEdges requests the basic result variant without edge data. Trees
	// computed this way carry a nil Edges slice.
	SkipEdges bool
}

func (c Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.New(nil)
	}
	return c.Logger
}
