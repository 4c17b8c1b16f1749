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

package lyrics

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/IamFurina/Lyric-Atlas-API/pkg/cache"
	"github.com/IamFurina/Lyric-Atlas-API/pkg/defaults"
	"github.com/IamFurina/Lyric-Atlas-API/pkg/errors"
	"github.com/IamFurina/Lyric-Atlas-API/pkg/logging"
	"github.com/IamFurina/Lyric-Atlas-API/pkg/retry"
	"github.com/IamFurina/Lyric-Atlas-API/pkg/serializer"
)

const (
	// EnvUpstreamBaseURL names the environment variable holding the
	// lyric-data service base URL.
	EnvUpstreamBaseURL = "LYRICS_API_URL"

	// DefaultSource is reported when the upstream response does not name
	// its originating collection.
	DefaultSource = "upstream"

	// sourceHeader is the upstream response header naming the collection
	// a document came from.
	sourceHeader = "X-Lyrics-Source"

	sidecarTranslation = "trans.lrc"
	sidecarRomaji      = "romaji.lrc"
)

// outboundLimiter paces calls to the lyric-data service across all
// provider instances. Providers are per-request; pacing has to be
// process-wide to mean anything.
var outboundLimiter = rate.NewLimiter(rate.Limit(20), 40)

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithLogger sets the logger the provider reports through.
func WithLogger(log logging.Logger) ProviderOption {
	return func(p *Provider) {
		p.log = log
	}
}

// WithReader replaces the outbound HTTP reader. Mostly useful in tests.
func WithReader(reader *serializer.HttpReader) ProviderOption {
	return func(p *Provider) {
		p.reader = reader
	}
}

// WithCache replaces the shared document cache. Mostly useful in tests.
func WithCache(c *cache.TTLCache[cachedDocument]) ProviderOption {
	return func(p *Provider) {
		p.cache = c
	}
}

// WithRetryConfig overrides the retry policy for upstream fetches.
func WithRetryConfig(cfg retry.Config) ProviderOption {
	return func(p *Provider) {
		p.retryCfg = cfg
	}
}

// Provider retrieves lyric documents from the lyric-data service. A
// Provider is constructed fresh for each request, parameterized only by
// the resolved base URL; the document cache and outbound limiter it uses
// are shared process-wide.
type Provider struct {
	baseURL  string
	reader   *serializer.HttpReader
	cache    *cache.TTLCache[cachedDocument]
	retryCfg retry.Config
	log      logging.Logger
}

// NewProvider creates a Provider bound to the given upstream base URL.
func NewProvider(baseURL string, opts ...ProviderOption) *Provider {
	p := &Provider{
		baseURL:  strings.TrimRight(baseURL, "/"),
		cache:    documentCache,
		retryCfg: retry.DefaultConfig(),
		log:      slog.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.reader == nil {
		p.reader = serializer.NewHttpReader(
			serializer.WithRateLimiter(outboundLimiter),
			serializer.WithTotalTimeout(defaults.HTTPClientTimeout),
		)
	}

	return p
}

// Search retrieves the lyric document for id, probing formats in
// preference order (lrc, srt, then txt when opts.Fallback is truthy).
//
// A Result with Found=false describes a domain outcome (nothing upstream,
// upstream refusal) and is not an error. An error return means the fetch
// itself failed after retries; callers map that to their own failure
// surface.
func (p *Provider) Search(ctx context.Context, id string, opts SearchOptions) (*Result, error) {
	if id == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "lyric id is required")
	}
	if p.baseURL == "" {
		return nil, errors.New(errors.ErrCodeConfig, "upstream base URL is not configured")
	}

	formats := searchFormats
	if truthy(opts.Fallback) {
		formats = append(append([]string{}, searchFormats...), FormatTXT)
	}

	for _, format := range formats {
		doc, status, err := p.fetch(ctx, id, format, opts.FixedVersion)
		if err != nil {
			return nil, errors.WrapWithContext(
				errors.ErrCodeUpstream,
				"failed to fetch lyric document",
				err,
				map[string]any{"id": id, "format": format},
			)
		}

		switch {
		case status == http.StatusNotFound:
			p.log.Debug("lyric format not available", "id", id, "format", format)
			continue
		case status == http.StatusTooManyRequests:
			return &Result{
				Found:      false,
				ID:         id,
				StatusCode: http.StatusTooManyRequests,
				Error:      fmt.Sprintf("upstream rate limited for id %s", id),
			}, nil
		case status != http.StatusOK:
			return &Result{
				Found:      false,
				ID:         id,
				StatusCode: http.StatusBadGateway,
				Error:      fmt.Sprintf("upstream returned status %d for format %s", status, format),
			}, nil
		}

		parsed := parseDocument(format, doc.Body)
		if isSyncedFormat(format) && parsed.lines == 0 {
			p.log.Warn("lyric document has no cues, continuing probe",
				"id", id, "format", format)
			continue
		}

		result := &Result{
			Found:      true,
			ID:         id,
			Format:     format,
			Source:     doc.Source,
			Lyrics:     doc.Body,
			Language:   parsed.language,
			Lines:      parsed.lines,
			DurationMS: parsed.durationMS,
		}

		p.attachSidecars(ctx, id, opts.FixedVersion, result)

		p.log.Debug("lyric document resolved",
			"id", id,
			"format", format,
			"source", result.Source,
			"lines", result.Lines)
		return result, nil
	}

	return &Result{
		Found:      false,
		ID:         id,
		StatusCode: http.StatusNotFound,
		Error:      fmt.Sprintf("no lyrics found for id %s", id),
	}, nil
}

// fetch returns the document for id in the given format, consulting the
// shared cache first. The status is the upstream HTTP status (200 for
// cache hits); transport failures are retried and surface as an error
// only after the retry budget is exhausted.
func (p *Provider) fetch(ctx context.Context, id, format, version string) (cachedDocument, int, error) {
	key := cacheKey(id, format, version)
	if doc, ok := p.cache.Get(key); ok {
		return doc, http.StatusOK, nil
	}

	target := p.documentURL(id, format, version)
	res, err := retry.DoWithResult(ctx, p.retryCfg, func() (*serializer.FetchResult, error) {
		return p.reader.Fetch(ctx, target)
	})
	if err != nil {
		return cachedDocument{}, 0, err
	}

	if res.StatusCode != http.StatusOK {
		return cachedDocument{}, res.StatusCode, nil
	}

	source := res.Header.Get(sourceHeader)
	if source == "" {
		source = DefaultSource
	}

	doc := cachedDocument{Body: string(res.Body), Source: source}
	p.cache.Set(key, doc)
	return doc, http.StatusOK, nil
}

// attachSidecars fetches the optional translation and romaji documents
// concurrently and folds them into result. Sidecar absence and sidecar
// failures both leave the fields empty; they never fail the search.
func (p *Provider) attachSidecars(ctx context.Context, id, version string, result *Result) {
	var translation, romaji string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		translation = p.fetchSidecar(gctx, id, sidecarTranslation, version)
		return nil
	})
	g.Go(func() error {
		romaji = p.fetchSidecar(gctx, id, sidecarRomaji, version)
		return nil
	})
	_ = g.Wait() // the goroutines never return errors

	result.Translation = translation
	result.Romaji = romaji
}

func (p *Provider) fetchSidecar(ctx context.Context, id, kind, version string) string {
	sctx, cancel := context.WithTimeout(ctx, defaults.SidecarFetchTimeout)
	defer cancel()

	doc, status, err := p.fetch(sctx, id, kind, version)
	if err != nil {
		p.log.Warn("sidecar fetch failed", "id", id, "kind", kind, "error", err)
		return ""
	}
	if status != http.StatusOK {
		return ""
	}
	return doc.Body
}

func (p *Provider) documentURL(id, format, version string) string {
	u := fmt.Sprintf("%s/lyrics/%s.%s", p.baseURL, url.PathEscape(id), format)
	if version != "" {
		u += "?v=" + url.QueryEscape(version)
	}
	return u
}

func cacheKey(id, format, version string) string {
	return id + "/" + format + "/" + version
}

// truthy evaluates the fallback query value. Only 1, true, yes, and on
// (case-insensitive) enable the plain-text probe.
func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
