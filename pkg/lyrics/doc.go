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

// Package lyrics talks to the upstream lyric-data service and turns its
// documents into search results and format metadata.
//
// The package has two entry points:
//
//   - Provider.Search probes the upstream for a lyric document, walking
//     the synced formats (lrc, srt) and optionally falling back to plain
//     text, and returns a Result describing what it found.
//   - Lookup reports which formats exist for an id via concurrent HEAD
//     probes, returning a Metadata summary.
//
// Providers are cheap to construct and are expected to be built per
// request:
//
//	p := lyrics.NewProvider(baseURL)
//	res, err := p.Search(ctx, id, lyrics.SearchOptions{Fallback: "true"})
//
// Fetched documents are cached process-wide with a short TTL, keyed by
// id, format, and pinned version, so per-request providers still share
// upstream reads. Call StartCacheCleanup once during startup to begin
// background expiry.
//
// Neither Search nor Lookup treats a missing document as a Go error:
// not-found, rate-limited, and bad-gateway outcomes are carried in the
// Result/Metadata StatusCode and Error fields so callers can relay them.
// Error returns are reserved for invalid input and transport failures.
package lyrics
