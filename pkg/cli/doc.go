// Package cli implements the command-line interface for the Lyric Atlas atlas tool.
//
// # Overview
//
// The atlas CLI runs the Lyric Atlas API server and exercises the upstream
// lyric-data service directly from the terminal. It is designed for operators
// debugging upstream content without standing up the HTTP gateway.
//
// # Commands
//
// serve - Run the API server:
//
//	atlas serve
//
// Starts the HTTP gateway in the foreground and blocks until SIGINT/SIGTERM.
// Listens on PORT (default 8080) and resolves the upstream from
// LYRICS_API_URL per request.
//
// search - Search for lyrics:
//
//	atlas search --id ID [--fallback] [--fixed-version V] [--output FILE] [--format json|yaml|table]
//
// Queries the upstream directly, bypassing HTTP. Probes synced formats in
// preference order (lrc, srt) and plain text when --fallback is set, then
// prints the same result envelope the /api/search endpoint returns. With
// --ids-file the command searches every id listed in a JSON or YAML file
// (or URL) and emits the envelopes as an array in input order.
//
// meta - Probe format availability:
//
//	atlas meta --id ID [--output FILE] [--format json|yaml|table]
//
// Reports which lyric formats the upstream holds for a track without
// downloading document bodies.
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: json, yaml, table (default: json)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// JSON (default):
//   - Matches the HTTP API response bodies
//   - Suitable for programmatic consumption
//
// YAML:
//   - Human-readable, preserves structure
//   - Suitable for version control
//
// Table:
//   - Hierarchical text representation
//   - Suitable for terminal viewing
//
// # Usage Examples
//
// Search for a track with the plain-text fallback enabled:
//
//	LYRICS_API_URL=https://lyrics.example.com atlas search --id 1989 --fallback
//
// Pin a document revision and write the envelope to a file:
//
//	atlas search --id 1989 --fixed-version 42 --output result.yaml --format yaml
//
// Audit a catalog of track ids from a file:
//
//	atlas search --ids-file catalog.yaml --output results.json
//
// Probe format availability:
//
//	atlas meta --id 1989
//
// # Environment Variables
//
//	LYRICS_API_URL            Base URL of the upstream lyric-data service
//	LOG_LEVEL                 Set logging verbosity (debug, info, warn, error)
//	PORT                      API server listen port (serve)
//	SHUTDOWN_TIMEOUT_SECONDS  API server graceful shutdown window (serve)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/api - API server assembly
//   - pkg/lyrics - Upstream search and metadata lookup
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/IamFurina/Lyric-Atlas-API/pkg/cli.version=1.0.0'"
package cli
