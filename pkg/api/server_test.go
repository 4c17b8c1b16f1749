package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/IamFurina/Lyric-Atlas-API/pkg/gateway"
	"github.com/IamFurina/Lyric-Atlas-API/pkg/lyrics"
)

// Test Coverage Note:
// The pkg/api package contains a single Serve() function that:
// 1. Initializes logging
// 2. Starts the lyric document cache janitor
// 3. Configures routes
// 4. Starts a blocking HTTP server
//
// Direct unit testing of Serve() is impractical because:
// - It's a blocking function that runs until shutdown
// - It requires full server initialization
// - It integrates with the pkg/server package
//
// Instead, these tests verify:
// - Package constants and build variables are correct
// - Route configuration structure is valid
// - Gateway handler integration works correctly
// - HTTP handlers respond properly to various inputs
// - Concurrent request handling is safe
//
// The Serve() function itself is best tested via:
// - End-to-end integration tests (separate test suite)
// - Manual testing during development
// - System/acceptance testing in deployed environments

// TestConstants verifies package constants are properly defined
func TestConstants(t *testing.T) {
	if name != "lyric-atlas-api" {
		t.Errorf("name = %q, want %q", name, "lyric-atlas-api")
	}

	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}

	// Verify buildtime variables exist (they may have default values)
	if version == "" {
		t.Error("version should not be empty")
	}
	if commit == "" {
		t.Error("commit should not be empty")
	}
	if date == "" {
		t.Error("date should not be empty")
	}
}

// TestRouteConfiguration verifies that the correct routes are set up
func TestRouteConfiguration(t *testing.T) {
	gw := gateway.New()

	routes := map[string]http.HandlerFunc{
		"/api/":            gw.HandleRoot,
		"/api/search":      gw.HandleSearch,
		"/api/lyrics/meta": gw.HandleMetadata,
	}

	for _, path := range []string{"/api/", "/api/search", "/api/lyrics/meta"} {
		if handler, exists := routes[path]; !exists {
			t.Errorf("expected %s route to exist", path)
		} else if handler == nil {
			t.Errorf("expected %s handler to be non-nil", path)
		}
	}

	// Verify no extra routes
	if len(routes) != 3 {
		t.Errorf("expected exactly 3 routes, got %d", len(routes))
	}
}

// TestRootEndpoint verifies the liveness message on the base path
func TestRootEndpoint(t *testing.T) {
	gw := gateway.New()

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	w := httptest.NewRecorder()

	gw.HandleRoot(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if !strings.Contains(w.Body.String(), gateway.LivenessMessage) {
		t.Errorf("expected liveness message in body, got %s", w.Body.String())
	}
}

// TestSearchEndpointRequiresID verifies the id parameter is mandatory
func TestSearchEndpointRequiresID(t *testing.T) {
	t.Setenv(lyrics.EnvUpstreamBaseURL, "http://upstream.test")

	gw := gateway.New()

	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	w := httptest.NewRecorder()

	gw.HandleSearch(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	contentType := w.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", contentType)
	}
}

// TestSearchEndpointWithoutUpstream verifies the configuration guard
func TestSearchEndpointWithoutUpstream(t *testing.T) {
	t.Setenv(lyrics.EnvUpstreamBaseURL, "")

	gw := gateway.New()

	req := httptest.NewRequest(http.MethodGet, "/api/search?id=song-1", nil)
	w := httptest.NewRecorder()

	gw.HandleSearch(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

// TestSearchEndpointMethods verifies only GET is allowed
func TestSearchEndpointMethods(t *testing.T) {
	t.Setenv(lyrics.EnvUpstreamBaseURL, "http://upstream.test")

	gw := gateway.New()

	disallowedMethods := []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch}

	for _, method := range disallowedMethods {
		t.Run(method+"_not_allowed", func(t *testing.T) {
			req := httptest.NewRequest(method, "/api/search?id=song-1", nil)
			w := httptest.NewRecorder()

			gw.HandleSearch(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("expected status %d for method %s, got %d",
					http.StatusMethodNotAllowed, method, w.Code)
			}

			allow := w.Header().Get("Allow")
			if allow == "" {
				t.Error("expected Allow header to be set")
			}
		})
	}
}

// TestMetadataEndpointRequiresID verifies the id parameter is mandatory
func TestMetadataEndpointRequiresID(t *testing.T) {
	gw := gateway.New()

	req := httptest.NewRequest(http.MethodGet, "/api/lyrics/meta", nil)
	w := httptest.NewRecorder()

	gw.HandleMetadata(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

// TestSearchEndpointContextHandling verifies canceled contexts surface as
// processing failures instead of hanging or panicking
func TestSearchEndpointContextHandling(t *testing.T) {
	t.Setenv(lyrics.EnvUpstreamBaseURL, "http://127.0.0.1:1")

	gw := gateway.New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodGet, "/api/search?id=song-1", nil)
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	gw.HandleSearch(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d for canceled context, got %d",
			http.StatusInternalServerError, w.Code)
	}
}

// TestRootEndpointConcurrency tests that the handler is safe for concurrent use
func TestRootEndpointConcurrency(t *testing.T) {
	gw := gateway.New()

	const numRequests = 10
	done := make(chan bool, numRequests)

	for i := 0; i < numRequests; i++ {
		go func() {
			req := httptest.NewRequest(http.MethodGet, "/api/", nil)
			w := httptest.NewRecorder()
			gw.HandleRoot(w, req)
			done <- true
		}()
	}

	// Wait for all requests to complete with timeout
	timeout := time.After(5 * time.Second)
	for i := 0; i < numRequests; i++ {
		select {
		case <-done:
			// Request completed
		case <-timeout:
			t.Fatal("timeout waiting for concurrent requests to complete")
		}
	}
}
