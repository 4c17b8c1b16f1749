// Package api provides the HTTP API layer for the Lyric Atlas service.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with the lyric gateway routes. It exposes the read-only
// search and metadata surface backed by the upstream lyric-data service.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/IamFurina/Lyric-Atlas-API/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Starting the lyric document cache janitor before traffic arrives
//   - Mounting the gateway handlers under the /api base path
//   - Delegating server lifecycle management to pkg/server
//
// The pkg/server package handles:
//   - HTTP server setup and graceful shutdown
//   - Middleware (request IDs, logging, metrics, panic recovery) and CORS
//   - Health and readiness endpoints
//   - Prometheus metrics
//
// # Endpoints
//
// Application endpoints (behind the middleware chain):
//   - GET /api/search      - Search lyrics by track identifier
//   - GET /api/lyrics/meta - List available lyric formats for a track
//   - GET /api/            - Liveness message for any other /api path
//
// System endpoints:
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters (GET /api/search)
//
//   - id: Track identifier at the upstream service (required)
//   - fallback: Enable plain-text lyrics when no synced format exists
//     (1, true, yes, on; case-insensitive)
//   - fixedVersion: Pin the upstream document revision
//
// # Query Parameters (GET /api/lyrics/meta)
//
//   - id: Track identifier at the upstream service (required)
//
// # Configuration
//
// The server is configured via environment variables:
//   - LYRICS_API_URL: Base URL of the upstream lyric-data service (required
//     for search and metadata to return results)
//   - PORT: HTTP server port (default: 8080)
//   - LOG_LEVEL: Logging level (debug, info, warn, error)
//   - SHUTDOWN_TIMEOUT_SECONDS: Graceful shutdown budget
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/IamFurina/Lyric-Atlas-API/pkg/api.version=1.0.0'"
package api
