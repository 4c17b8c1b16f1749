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
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/IamFurina/Lyric-Atlas-API/pkg/errors"
	"github.com/IamFurina/Lyric-Atlas-API/pkg/logging"
	"github.com/IamFurina/Lyric-Atlas-API/pkg/serializer"
)

// Lookup reports which lyric formats the upstream holds for id, probing
// every known format concurrently with HEAD requests.
//
// Unlike the search provider, Lookup resolves the upstream base URL itself:
// callers pass only the id and the logger to report through. A missing base
// URL is a domain outcome (Found=false, statusCode 500), not an error
// return, so the caller maps it like any other collaborator-chosen status.
func Lookup(ctx context.Context, id string, log logging.Logger) (*Metadata, error) {
	if log == nil {
		log = slog.Default()
	}
	if id == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "lyric id is required")
	}

	base := strings.TrimRight(os.Getenv(EnvUpstreamBaseURL), "/")
	if base == "" {
		log.Error("lyric metadata lookup without configured upstream", "env", EnvUpstreamBaseURL)
		return &Metadata{
			Found:      false,
			ID:         id,
			StatusCode: http.StatusInternalServerError,
			Error:      "upstream base URL not configured",
		}, nil
	}

	reader := serializer.NewHttpReader(serializer.WithRateLimiter(outboundLimiter))

	available := make([]bool, len(knownFormats))
	g, gctx := errgroup.WithContext(ctx)
	for i, format := range knownFormats {
		g.Go(func() error {
			target := fmt.Sprintf("%s/lyrics/%s.%s", base, url.PathEscape(id), format)
			res, err := reader.Probe(gctx, target)
			if err != nil {
				return err
			}
			available[i] = res.StatusCode == http.StatusOK
			log.Debug("lyric format probe", "id", id, "format", format, "status", res.StatusCode)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.WrapWithContext(
			errors.ErrCodeUpstream,
			"failed to probe lyric formats",
			err,
			map[string]any{"id": id},
		)
	}

	formats := make([]string, 0, len(knownFormats))
	for i, ok := range available {
		if ok {
			formats = append(formats, knownFormats[i])
		}
	}

	if len(formats) == 0 {
		return &Metadata{
			Found:      false,
			ID:         id,
			StatusCode: http.StatusNotFound,
			Error:      fmt.Sprintf("no lyric formats available for id %s", id),
		}, nil
	}

	return &Metadata{
		Found:            true,
		ID:               id,
		AvailableFormats: formats,
	}, nil
}
