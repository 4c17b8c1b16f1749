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

// Package cache provides a generic in-memory TTL cache.
//
// Entries expire after a fixed duration. Expired entries are dropped lazily
// on Get and swept in bulk by a background janitor:
//
//	c := cache.New[string]("lyrics", 10*time.Minute, time.Minute)
//	c.StartJanitor(ctx)
//
//	c.Set("track-001/lrc", doc)
//	if doc, ok := c.Get("track-001/lrc"); ok {
//	    // serve from cache
//	}
//
// StartJanitor is idempotent; only the first call launches the sweep
// goroutine, and the goroutine exits when the context is canceled.
//
// Every cache reports hit/miss/eviction counters and its entry count as
// Prometheus metrics labeled with the cache name, plus an in-process
// snapshot via Stats.
package cache
