package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/IamFurina/Lyric-Atlas-API/pkg/gateway"
	"github.com/IamFurina/Lyric-Atlas-API/pkg/logging"
	"github.com/IamFurina/Lyric-Atlas-API/pkg/lyrics"
	"github.com/IamFurina/Lyric-Atlas-API/pkg/server"
)

const (
	name           = "lyric-atlas-api"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/IamFurina/Lyric-Atlas-API/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	// The document cache janitor has to be running before the first request
	lyrics.StartCacheCleanup(ctx)

	gw := gateway.New()

	r := map[string]http.HandlerFunc{
		"/api/":            gw.HandleRoot,
		"/api/search":      gw.HandleSearch,
		"/api/lyrics/meta": gw.HandleMetadata,
	}

	// Create and run server
	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(r),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
