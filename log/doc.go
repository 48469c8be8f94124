// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Messages carry only typed [slog.Attr] attributes. Time layout, caller
// information, level, format and styling are applied at logger creation time
// using functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("input opened", slog.String("path", path))
//	logger.Error("read failed", slog.Any("error", err))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// The package-level functions ([Debug], [Info], [Warn], [Error] and their
// Context variants) write through a default logger on standard error, which
// [Config] reconfigures in place.
//
// # Output Formats
//
// [FormatText] (default) writes key=value pairs. With [WithPretty] enabled,
// keys and values are styled according to the color support of the output,
// and plain text is written when the output is not a terminal. [FormatJSON]
// writes one JSON object per line.
package log
