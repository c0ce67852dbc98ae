// Package logging provides a minimal logging facade for the GeoSteiner
// bindings.
//
// The Logger interface wraps the context-aware subset of log/slog used by the
// session:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// Three implementations ship with the package:
//
//	logger := logging.New(nil)            // slog.Default()
//	logger = logging.New(slog.New(h))     // any slog handler
//	logger = logging.NewZap(zapLogger)    // a *zap.Logger
//	logger = logging.Nop()                // discard everything
//
// Arguments follow the slog convention of alternating keys and values:
//
//	logger.Debug(ctx, "esmt computed", "terminals", 4, "steiner_points", 2)
package logging
