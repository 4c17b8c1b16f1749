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

// Package defaults provides centralized configuration constants for the Lyric Atlas API.
//
// This package defines timeout values, cache tuning, and other configuration
// defaults used across the codebase. Centralizing these values ensures consistency
// and makes tuning easier.
//
// # Timeout Categories
//
// Timeouts are organized by component:
//
//   - Handler timeouts: For HTTP request processing in the gateway
//   - Server timeouts: For HTTP server configuration
//   - HTTP client timeouts: For outbound requests to the lyric-data service
//   - Lyric provider tuning: For the document cache and sidecar fetches
//   - CLI timeouts: For one-shot command-line lookups
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/IamFurina/Lyric-Atlas-API/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.SearchHandlerTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
// When choosing timeout values:
//
//   - HTTP handlers: 30s for search, 15s for metadata
//   - Upstream fetches: 30s total, 5s to connect
//   - Sidecar fetches: 10s so translations cannot stall a complete result
//   - Server shutdown: 30s for graceful shutdown
package defaults
