// Package logging provides structured logging utilities for Lyric Atlas
// components.
//
// # Overview
//
// This package wraps the standard library slog package with project-wide
// defaults and conventions so every binary logs the same way. It supports
// environment-based log level configuration, module/version context
// injection, and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: detailed diagnostic information with source location
//   - INFO: general informational messages (default)
//   - WARN/WARNING: potentially problematic situations
//   - ERROR: failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("lyric-atlas-api", version)
//
//	    slog.Info("processing request", "id", "req-123")
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("atlas-cli", "v1.0.0", "debug")
//	logger.Info("starting", "format", outFormat)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity:
//
//	LOG_LEVEL=debug lyricatlasd
//
// If LOG_LEVEL is not set, the level defaults to INFO.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "server started",
//	    "module": "lyric-atlas-api",
//	    "version": "v1.0.0",
//	    "port": 8080
//	}
//
// # Collaborator Logging
//
// Components that should not depend on a concrete logging backend accept the
// narrow Logger interface declared here. *slog.Logger satisfies it
// structurally, so no adapter type is needed.
package logging
