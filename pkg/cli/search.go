/*
Copyright © 2025 Lyric Atlas Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/IamFurina/Lyric-Atlas-API/pkg/defaults"
	"github.com/IamFurina/Lyric-Atlas-API/pkg/lyrics"
	"github.com/IamFurina/Lyric-Atlas-API/pkg/serializer"
)

// batchConcurrency caps concurrent upstream queries in --ids-file mode.
const batchConcurrency = 4

// searchCmdOptions holds the parsed search command flags.
type searchCmdOptions struct {
	id           string
	idsFile      string
	baseURL      string
	fallback     bool
	fixedVersion string
	timeout      time.Duration
	output       string
}

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:                  "search",
		EnableShellCompletion: true,
		Usage:                 "Search the upstream lyric-data service for a track",
		Description: `# Search the upstream lyric-data service for a track

Queries the upstream directly, bypassing the HTTP gateway. Probes the
synced formats in preference order (lrc, then srt) and, when --fallback
is set, plain text last. Translation and romanization sidecars are
attached when the upstream carries them.

The result envelope is the same one the /api/search endpoint returns:
a found=false envelope with a status code is a normal outcome, not an
error. The command fails only when the upstream cannot be reached.

With --ids-file the command searches every id listed in a JSON or YAML
file (or URL) and emits the envelopes as an array in input order.

## Examples

  # Search by track id
  atlas search --id 1989 --base-url https://lyrics.example.com

  # Same, with the upstream taken from the environment
  LYRICS_API_URL=https://lyrics.example.com atlas search --id 1989

  # Allow the plain-text fallback and pin a document revision
  atlas search --id 1989 --fallback --fixed-version 42

  # Audit a catalog of track ids
  atlas search --ids-file catalog.yaml -o results.json

  # Write the result envelope to a file as YAML
  atlas search --id 1989 -o result.yaml -t yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "id",
				Usage: "Track identifier to search for",
			},
			&cli.StringFlag{
				Name:  "ids-file",
				Usage: "JSON or YAML file (or URL) listing track identifiers to search for",
			},
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "Base URL of the upstream lyric-data service",
				Sources: cli.EnvVars(lyrics.EnvUpstreamBaseURL),
			},
			&cli.BoolFlag{
				Name:  "fallback",
				Usage: "Allow the plain-text format when no synced lyrics exist",
			},
			&cli.StringFlag{
				Name:  "fixed-version",
				Usage: "Pin the upstream document revision",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.CLIQueryTimeout,
				Usage: "Upper bound for the whole query",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			opts := parseSearchCmdOptions(cmd)
			if opts.baseURL == "" {
				return fmt.Errorf("upstream base URL is required (set --base-url or %s)",
					lyrics.EnvUpstreamBaseURL)
			}
			if opts.id == "" && opts.idsFile == "" {
				return fmt.Errorf("either --id or --ids-file is required")
			}

			searchOpts := lyrics.SearchOptions{FixedVersion: opts.fixedVersion}
			if opts.fallback {
				searchOpts.Fallback = "true"
			}

			qctx, cancel := context.WithTimeout(ctx, opts.timeout)
			defer cancel()

			provider := lyrics.NewProvider(opts.baseURL)

			var payload any
			if opts.idsFile != "" {
				results, err := searchBatch(qctx, provider, opts.idsFile, searchOpts)
				if err != nil {
					return err
				}
				payload = results
			} else {
				slog.Info("searching lyrics",
					"id", opts.id,
					"fallback", opts.fallback,
					"fixedVersion", opts.fixedVersion)

				result, err := provider.Search(qctx, opts.id, searchOpts)
				if err != nil {
					return fmt.Errorf("lyric search failed: %w", err)
				}
				payload = result
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, opts.output)
			defer closeSerializer(ser)

			return ser.Serialize(ctx, payload)
		},
	}
}

// searchBatch searches every id listed in the given file, preserving input
// order in the returned slice.
func searchBatch(ctx context.Context, provider *lyrics.Provider, path string, opts lyrics.SearchOptions) ([]*lyrics.Result, error) {
	ids, err := serializer.FromFile[[]string](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load ids file: %w", err)
	}
	if len(*ids) == 0 {
		return nil, fmt.Errorf("ids file %s lists no track ids", path)
	}

	slog.Info("searching lyrics batch", "idsFile", path, "count", len(*ids))

	results := make([]*lyrics.Result, len(*ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, id := range *ids {
		g.Go(func() error {
			res, err := provider.Search(gctx, id, opts)
			if err != nil {
				return fmt.Errorf("lyric search failed for id %s: %w", id, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func parseSearchCmdOptions(cmd *cli.Command) searchCmdOptions {
	return searchCmdOptions{
		id:           cmd.String("id"),
		idsFile:      cmd.String("ids-file"),
		baseURL:      cmd.String("base-url"),
		fallback:     cmd.Bool("fallback"),
		fixedVersion: cmd.String("fixed-version"),
		timeout:      cmd.Duration("timeout"),
		output:       cmd.String("output"),
	}
}
