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

// Package gateway is the request-orchestration layer between the HTTP
// surface and the lyric collaborators.
//
// Each handler follows the same discipline: validate the query string,
// delegate to a collaborator, and map the collaborator's outcome onto a
// status code and the uniform JSON envelope. A result with found=false is a
// normal outcome carried through with the collaborator's own status code
// (404 when it names none); only returned errors and contained panics
// become generic 500 responses. Every branch logs, and every branch ends in
// a response.
//
// Two inherited quirks are deliberate and must survive refactoring:
//
//   - The search handler checks the upstream configuration before
//     validating the id; the metadata handler validates the id and never
//     checks configuration at all (its collaborator resolves the upstream
//     itself).
//   - A request hitting the missing-configuration path logs the error
//     again every time; there is no deduplication.
//
// The search collaborator is constructed fresh per request, parameterized
// only by the resolved base URL.
package gateway
