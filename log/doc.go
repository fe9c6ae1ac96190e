// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information,
// and output formats that are applied at logger creation time using
// functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("parse complete", slog.Int("call_count", n))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//
// # Zero Value
//
// The zero Logger discards everything. Library code can therefore accept a
// Logger without nil checks, and callers enable diagnostics by passing a
// configured one.
//
// # Levels
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Trace sits below slog's Debug and is used
// for per-node conversion events.
//
// # Formats
//
// [FormatJSON] (default) and [FormatText] are supported; text output is
// colorized when pretty printing is enabled and suppressed otherwise.
package log
