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

package serializer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

type testData struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func TestRespondJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := testData{
		Message: "success",
		Code:    200,
	}

	RespondJSON(w, http.StatusOK, data)

	// Verify status code
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	// Verify content type
	contentType := w.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", contentType)
	}

	// Verify response body
	var result testData
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if result.Message != data.Message {
		t.Errorf("expected message %s, got %s", data.Message, result.Message)
	}

	if result.Code != data.Code {
		t.Errorf("expected code %d, got %d", data.Code, result.Code)
	}
}

func TestRespondJSON_PrettyPrinted(t *testing.T) {
	w := httptest.NewRecorder()
	data := testData{Message: "success", Code: 200}

	RespondJSON(w, http.StatusOK, data)

	body := w.Body.String()
	if !strings.Contains(body, "\n  \"message\"") {
		t.Errorf("expected two-space indented JSON, got %q", body)
	}
}

func TestRespondJSON_DifferentStatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"OK", http.StatusOK},
		{"BadRequest", http.StatusBadRequest},
		{"NotFound", http.StatusNotFound},
		{"TooManyRequests", http.StatusTooManyRequests},
		{"InternalServerError", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			data := testData{Message: tt.name, Code: tt.statusCode}

			RespondJSON(w, tt.statusCode, data)

			if w.Code != tt.statusCode {
				t.Errorf("expected status %d, got %d", tt.statusCode, w.Code)
			}
		})
	}
}

func TestRespondJSON_EncodingError(t *testing.T) {
	w := httptest.NewRecorder()

	// Channels cannot be marshaled to JSON
	badData := make(chan int)

	RespondJSON(w, http.StatusOK, badData)

	// Should return internal server error
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d for encoding error, got %d", http.StatusInternalServerError, w.Code)
	}

	// Should have error message
	if w.Body.Len() == 0 {
		t.Error("expected error message in body")
	}
}

func TestRespondJSON_BuffersBeforeWritingHeaders(t *testing.T) {
	w := httptest.NewRecorder()

	// Encoding fails, so the original status must never be written
	RespondJSON(w, http.StatusCreated, make(chan int))

	if w.Code == http.StatusCreated {
		t.Error("status was written before encoding succeeded")
	}
}

func TestNewHttpReader_Defaults(t *testing.T) {
	r := NewHttpReader()

	if r.UserAgent != HttpReaderUserAgent {
		t.Errorf("expected user agent %s, got %s", HttpReaderUserAgent, r.UserAgent)
	}

	if r.TotalTimeout != HttpReaderDefaultTimeout {
		t.Errorf("expected timeout %v, got %v", HttpReaderDefaultTimeout, r.TotalTimeout)
	}

	if r.Client == nil {
		t.Fatal("expected non-nil client")
	}

	if r.Client.Timeout != HttpReaderDefaultTimeout {
		t.Errorf("expected client timeout %v, got %v", HttpReaderDefaultTimeout, r.Client.Timeout)
	}
}

func TestNewHttpReader_WithOptions(t *testing.T) {
	r := NewHttpReader(
		WithUserAgent("atlas-test/0.1"),
		WithTotalTimeout(5*time.Second),
		WithMaxIdleConnsPerHost(20),
	)

	if r.UserAgent != "atlas-test/0.1" {
		t.Errorf("expected custom user agent, got %s", r.UserAgent)
	}

	if r.Client.Timeout != 5*time.Second {
		t.Errorf("expected client timeout 5s, got %v", r.Client.Timeout)
	}

	tr, ok := r.Client.Transport.(*http.Transport)
	if !ok {
		t.Fatal("expected *http.Transport")
	}
	if tr.MaxIdleConnsPerHost != 20 {
		t.Errorf("expected MaxIdleConnsPerHost 20, got %d", tr.MaxIdleConnsPerHost)
	}
}

func TestNewHttpReader_WithCustomClient(t *testing.T) {
	custom := &http.Client{Timeout: 3 * time.Second}
	r := NewHttpReader(WithClient(custom))

	if r.Client != custom {
		t.Error("expected custom client to be used")
	}

	if r.Client.Timeout != 3*time.Second {
		t.Errorf("expected custom client timeout preserved, got %v", r.Client.Timeout)
	}
}

func TestHttpReader_Read_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[00:12.00]First line"))
	}))
	defer server.Close()

	r := NewHttpReader()
	data, err := r.Read(server.URL)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if string(data) != "[00:12.00]First line" {
		t.Errorf("unexpected data: %s", data)
	}
}

func TestHttpReader_Read_EmptyURL(t *testing.T) {
	r := NewHttpReader()
	_, err := r.Read("")
	if err == nil {
		t.Error("expected error for empty URL")
	}
}

func TestHttpReader_Read_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	r := NewHttpReader()
	_, err := r.Read(server.URL)
	if err == nil {
		t.Error("expected error for 404 response")
	}
}

func TestHttpReader_Read_SetsUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	r := NewHttpReader()
	if _, err := r.Read(server.URL); err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if gotAgent != HttpReaderUserAgent {
		t.Errorf("expected user agent %s, got %s", HttpReaderUserAgent, gotAgent)
	}
}

func TestHttpReader_ReadWithContext_Canceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewHttpReader()
	_, err := r.ReadWithContext(ctx, server.URL)
	if err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestHttpReader_Fetch_ReturnsStatusWithoutError(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"ok", http.StatusOK},
		{"not found", http.StatusNotFound},
		{"rate limited", http.StatusTooManyRequests},
		{"server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte("body"))
			}))
			defer server.Close()

			r := NewHttpReader()
			result, err := r.Fetch(context.Background(), server.URL)
			if err != nil {
				t.Fatalf("Fetch failed: %v", err)
			}

			if result.StatusCode != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, result.StatusCode)
			}

			if string(result.Body) != "body" {
				t.Errorf("unexpected body: %s", result.Body)
			}
		})
	}
}

func TestHttpReader_Fetch_ReturnsHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Lyrics-Source", "mirror-eu")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	r := NewHttpReader()
	result, err := r.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if got := result.Header.Get("X-Lyrics-Source"); got != "mirror-eu" {
		t.Errorf("expected header mirror-eu, got %s", got)
	}
}

func TestHttpReader_Probe_UsesHead(t *testing.T) {
	var gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.Header().Set("Content-Length", "128")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	r := NewHttpReader()
	result, err := r.Probe(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}

	if gotMethod != http.MethodHead {
		t.Errorf("expected HEAD request, got %s", gotMethod)
	}

	if result.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", result.StatusCode)
	}

	if len(result.Body) != 0 {
		t.Errorf("expected empty body for HEAD, got %d bytes", len(result.Body))
	}
}

func TestHttpReader_RateLimiter_Throttles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// 1 request per 100ms after the initial burst
	limiter := rate.NewLimiter(rate.Every(100*time.Millisecond), 1)
	r := NewHttpReader(WithRateLimiter(limiter))

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := r.Fetch(context.Background(), server.URL); err != nil {
			t.Fatalf("Fetch %d failed: %v", i, err)
		}
	}
	elapsed := time.Since(start)

	// Third request cannot start before two limiter intervals pass
	if elapsed < 150*time.Millisecond {
		t.Errorf("expected throttled requests to take at least 150ms, took %v", elapsed)
	}
}

func TestHttpReader_RateLimiter_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	r := NewHttpReader(WithRateLimiter(limiter))

	// Exhaust the burst
	if _, err := r.Fetch(context.Background(), server.URL); err != nil {
		t.Fatalf("first Fetch failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := r.Fetch(ctx, server.URL); err == nil {
		t.Error("expected error when limiter wait exceeds context deadline")
	}
}

func TestHttpReader_Download_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[ti:Test Track]\n[00:01.00]Hello"))
	}))
	defer server.Close()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "track.lrc")

	r := NewHttpReader()
	if err := r.Download(server.URL, path); err != nil {
		t.Fatalf("Download failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read downloaded file: %v", err)
	}

	if !strings.Contains(string(content), "[ti:Test Track]") {
		t.Errorf("unexpected file content: %s", content)
	}
}

func TestHttpReader_Download_ReadError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "track.lrc")

	r := NewHttpReader()
	if err := r.Download(server.URL, path); err == nil {
		t.Error("expected error for 404 download")
	}
}
