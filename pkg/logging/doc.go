// Package logging provides subsystem-tagged structured logging for shellkit.
//
// The package wraps Go's standard slog package. Every entry carries a
// subsystem attribute so diagnostics from the dispatcher, the pager, the
// preference watcher and the prompt renderer can be told apart.
//
// # Usage
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//	logging.Debug("Dispatch", "executing %q", line)
//	logging.Error("Config", err, "failed to read %s", path)
//
// # File Output
//
// While the interactive console owns the terminal, logs must not interleave
// with prompts. InitForFile routes them to a size-rotated file:
//
//	logging.InitForFile(logging.LevelDebug, logging.DefaultFileConfig(path))
//	defer logging.Close()
//
// Rotation is handled by lumberjack.
package logging
