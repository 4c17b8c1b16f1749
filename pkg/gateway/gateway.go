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

package gateway

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/IamFurina/Lyric-Atlas-API/pkg/defaults"
	apierrors "github.com/IamFurina/Lyric-Atlas-API/pkg/errors"
	"github.com/IamFurina/Lyric-Atlas-API/pkg/logging"
	"github.com/IamFurina/Lyric-Atlas-API/pkg/lyrics"
	"github.com/IamFurina/Lyric-Atlas-API/pkg/serializer"
)

// LivenessMessage is the static payload served by the root route.
const LivenessMessage = "Lyric Atlas API is running."

// searchFunc performs a lyric search against the upstream at baseURL.
type searchFunc func(ctx context.Context, baseURL, id string, opts lyrics.SearchOptions) (*lyrics.Result, error)

// lookupFunc performs a lyric metadata lookup.
type lookupFunc func(ctx context.Context, id string, log logging.Logger) (*lyrics.Metadata, error)

// Gateway orchestrates the two read endpoints: it validates query
// parameters, delegates to the lyric collaborators, and maps their
// found/not-found results and failures onto HTTP status codes and the
// JSON envelope. It holds no per-request state.
type Gateway struct {
	log    logging.Logger
	search searchFunc
	lookup lookupFunc
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithLogger sets the logger the gateway and its metadata collaborator
// report through.
func WithLogger(log logging.Logger) Option {
	return func(g *Gateway) {
		g.log = log
	}
}

// New creates a Gateway wired to the lyric collaborators.
func New(opts ...Option) *Gateway {
	g := &Gateway{
		log:    slog.Default(),
		search: searchUpstream,
		lookup: lyrics.Lookup,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// searchUpstream constructs a provider scoped to this request only and runs
// the search. Handlers stay stateless; the document cache behind the
// provider is the collaborator's own concern.
func searchUpstream(ctx context.Context, baseURL, id string, opts lyrics.SearchOptions) (*lyrics.Result, error) {
	return lyrics.NewProvider(baseURL).Search(ctx, id, opts)
}

// statusResponse is the root liveness payload.
type statusResponse struct {
	Message string `json:"message"`
}

// errorResponse is the envelope for requests rejected before any
// collaborator is involved.
type errorResponse struct {
	Found bool   `json:"found"`
	Error string `json:"error"`
}

// HandleRoot serves the static liveness payload. It answers independent of
// configuration and collaborator state, and, like any subtree-mounted
// default route, for every path no other route claimed.
func (g *Gateway) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if g.rejectNonGet(w, r) {
		return
	}

	g.log.Debug("handling root route",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
	)

	serializer.RespondJSON(w, http.StatusOK, statusResponse{Message: LivenessMessage})
}

// HandleSearch serves GET /search?id=&fallback=&fixedVersion=.
//
// The configuration check runs before input validation: a misconfigured
// server answers 500 regardless of what the client sent. The id check
// follows, then a provider is constructed for this request alone and its
// result is mapped onto the response. Collaborator failures, including
// contained panics, terminate in a 500 here; nothing propagates further.
func (g *Gateway) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if g.rejectNonGet(w, r) {
		return
	}

	q := r.URL.Query()
	id := q.Get("id")
	fallback := q.Get("fallback")
	fixedVersion := q.Get("fixedVersion")

	baseURL := g.resolveUpstreamBaseURL()
	if baseURL == "" {
		serializer.RespondJSON(w, http.StatusInternalServerError, &lyrics.Result{
			Found: false,
			ID:    id,
			Error: "Server configuration error.",
		})
		return
	}

	if id == "" {
		g.log.Warn("search request missing id parameter")
		serializer.RespondJSON(w, http.StatusBadRequest, errorResponse{
			Found: false,
			Error: "Missing id parameter",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.SearchHandlerTimeout)
	defer cancel()

	res, err := g.callSearch(ctx, baseURL, id, lyrics.SearchOptions{
		FixedVersion: fixedVersion,
		Fallback:     fallback,
	})
	if err != nil {
		msg := err.Error()
		g.log.Error("lyric search failed",
			"id", id, "code", apierrors.CodeOf(err), "error", msg)
		serializer.RespondJSON(w, http.StatusInternalServerError, &lyrics.Result{
			Found: false,
			ID:    id,
			Error: "Failed to process lyric request: " + msg,
		})
		return
	}

	if !res.Found {
		status := res.StatusCode
		if status == 0 {
			status = http.StatusNotFound
		}
		g.log.Warn("lyric search found nothing",
			"id", id, "status", status, "reason", res.Error)
		serializer.RespondJSON(w, status, res)
		return
	}

	g.log.Info("lyric search resolved",
		"id", id, "format", res.Format, "source", res.Source)
	if res.Translation != "" {
		g.log.Debug("translation attached", "id", id)
	}
	if res.Romaji != "" {
		g.log.Debug("romaji attached", "id", id)
	}

	serializer.RespondJSON(w, http.StatusOK, res)
}

// HandleMetadata serves GET /lyrics/meta?id=.
//
// Unlike search, the id check comes first and no configuration check
// happens here at all; the metadata collaborator resolves the upstream
// itself and reports a missing base URL as one more not-found outcome.
// This asymmetry is part of the inherited contract.
func (g *Gateway) HandleMetadata(w http.ResponseWriter, r *http.Request) {
	if g.rejectNonGet(w, r) {
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		g.log.Warn("metadata request missing id parameter")
		serializer.RespondJSON(w, http.StatusBadRequest, errorResponse{
			Found: false,
			Error: "Missing id parameter",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.MetadataHandlerTimeout)
	defer cancel()

	meta, err := g.callLookup(ctx, id)
	if err != nil {
		msg := err.Error()
		g.log.Error("lyric metadata lookup failed",
			"id", id, "code", apierrors.CodeOf(err), "error", msg,
			"stack", string(stackOf(err)))
		serializer.RespondJSON(w, http.StatusInternalServerError, &lyrics.Metadata{
			Found: false,
			ID:    id,
			Error: "Failed to process lyric metadata request: " + msg,
		})
		return
	}

	if !meta.Found {
		status := meta.StatusCode
		if status == 0 {
			status = http.StatusNotFound
		}
		g.log.Warn("lyric metadata found nothing",
			"id", id, "status", status, "reason", meta.Error)
		serializer.RespondJSON(w, status, meta)
		return
	}

	g.log.Info("lyric metadata resolved",
		"id", id, "formats", strings.Join(meta.AvailableFormats, ","))
	serializer.RespondJSON(w, http.StatusOK, meta)
}

// rejectNonGet answers 405 for anything but GET. OPTIONS preflights are
// handled by the CORS middleware before a handler runs.
func (g *Gateway) rejectNonGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return false
	}

	g.log.Warn("method not allowed", "method", r.Method, "path", r.URL.Path)
	w.Header().Set("Allow", http.MethodGet)
	serializer.RespondJSON(w, http.StatusMethodNotAllowed, errorResponse{
		Found: false,
		Error: "Method not allowed",
	})
	return true
}

// callSearch invokes the search collaborator with panics contained.
func (g *Gateway) callSearch(ctx context.Context, baseURL, id string, opts lyrics.SearchOptions) (res *lyrics.Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			res = nil
			err = &panicError{cause: normalizePanic(rec), stack: debug.Stack()}
		}
	}()
	return g.search(ctx, baseURL, id, opts)
}

// callLookup invokes the metadata collaborator with panics contained.
func (g *Gateway) callLookup(ctx context.Context, id string) (meta *lyrics.Metadata, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			meta = nil
			err = &panicError{cause: normalizePanic(rec), stack: debug.Stack()}
		}
	}()
	return g.lookup(ctx, id, g.log)
}

// panicError carries a contained collaborator panic and the stack captured
// at the recovery point.
type panicError struct {
	cause error
	stack []byte
}

func (e *panicError) Error() string {
	return e.cause.Error()
}

func (e *panicError) Unwrap() error {
	return e.cause
}

// normalizePanic turns a recovered value into an error. Error-shaped values
// keep their message; anything else collapses to a fixed literal so clients
// never see raw panic payloads.
func normalizePanic(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return errors.New("Unknown processing error")
}

// stackOf returns the stack captured when err was recovered from a panic,
// or the current stack for plain errors.
func stackOf(err error) []byte {
	var pe *panicError
	if errors.As(err, &pe) {
		return pe.stack
	}
	return debug.Stack()
}
