// Copyright (c) 2025, Lyric Atlas authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server provides the HTTP host for the Lyric Atlas API.
//
// It is a thin, reusable layer: the lyric-specific handlers live in
// pkg/gateway and are mounted through Config.Handlers, while this package
// owns the listener, the middleware chain, and the operational endpoints.
//
// # Architecture
//
// The server implements a stateless HTTP host with the following key
// components:
//
//   - Request ID tracking for distributed tracing (X-Request-Id)
//   - Panic recovery as a last line of defense behind the handlers
//   - Prometheus metrics for request rate, latency, and in-flight count
//   - CORS on the mounted handlers (any origin, GET and OPTIONS)
//   - Graceful shutdown on SIGINT/SIGTERM with systemd readiness notification
//   - Health and readiness probes for Kubernetes
//
// # Usage
//
// Basic server startup:
//
//	routes := map[string]http.HandlerFunc{
//	    "/api/search": gw.HandleSearch,
//	}
//
//	s := server.New(
//	    server.WithName("lyric-atlas"),
//	    server.WithVersion("1.0.0"),
//	    server.WithHandler(routes),
//	)
//
//	if err := s.Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
// Custom configuration:
//
//	cfg := server.NewConfig()
//	cfg.Port = 9090
//	cfg.ShutdownTimeout = 10 * time.Second
//	cfg.Handlers = routes
//
//	s := server.New(server.WithConfig(cfg))
//
// # Endpoints
//
// Mounted handlers run behind the middleware chain. The built-in routes do
// not:
//
//	GET /health  - liveness probe, always 200 while the process is up
//	GET /ready   - readiness probe, 503 until Start has been called
//	GET /metrics - Prometheus metrics in text exposition format
//
// When no handler claims "/", a default root handler answers with the server
// name, version, readiness, and the list of mounted routes.
//
// # Configuration
//
// Config values come from defaults and can be overridden through the
// environment:
//
//	PORT                     - listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS - graceful shutdown budget, useful to align
//	                           with the pod termination grace period
//
// # Observability
//
// All requests accept an optional X-Request-Id header (UUID format). If the
// header is missing or not a valid UUID, the server generates one. The
// request ID is returned in the X-Request-Id response header and attached to
// error envelopes produced by the middleware.
//
// Prometheus metrics exported by this package:
//
//	atlas_http_requests_total{method,path,status}
//	atlas_http_request_duration_seconds{method,path}
//	atlas_http_requests_in_flight
//	atlas_panic_recoveries_total
//
// # Deployment
//
// Kubernetes probes map directly onto the built-in routes:
//
//	livenessProbe:
//	  httpGet:
//	    path: /health
//	    port: 8080
//	readinessProbe:
//	  httpGet:
//	    path: /ready
//	    port: 8080
//
// Under systemd, use Type=notify; the server signals READY=1 once the
// listener is up and STOPPING=1 when shutdown begins.
package server
