/*
Copyright © 2025 Lyric Atlas Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/IamFurina/Lyric-Atlas-API/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the Lyric Atlas API server",
		Description: `# Run the Lyric Atlas API server

Starts the HTTP gateway in the foreground and blocks until the process
receives SIGINT or SIGTERM, then shuts down gracefully.

## Endpoints

  GET /api/              - liveness message
  GET /api/search        - lyric search (id, fallback, fixedVersion)
  GET /api/lyrics/meta   - lyric format availability (id)
  GET /health, /ready    - probes
  GET /metrics           - Prometheus metrics

## Environment

  LYRICS_API_URL           - base URL of the upstream lyric-data service
  PORT                     - listen port (default: 8080)
  LOG_LEVEL                - log level (default: info)
  SHUTDOWN_TIMEOUT_SECONDS - graceful shutdown window (default: 30)

## Examples

  # Run with the default port
  LYRICS_API_URL=https://lyrics.example.com atlas serve

  # Run on a custom port with debug logging
  PORT=9090 LOG_LEVEL=debug atlas serve`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Serve()
		},
	}
}
