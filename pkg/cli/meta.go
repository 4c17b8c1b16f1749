/*
Copyright © 2025 Lyric Atlas Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/IamFurina/Lyric-Atlas-API/pkg/defaults"
	"github.com/IamFurina/Lyric-Atlas-API/pkg/lyrics"
	"github.com/IamFurina/Lyric-Atlas-API/pkg/serializer"
)

func metaCmd() *cli.Command {
	return &cli.Command{
		Name:                  "meta",
		EnableShellCompletion: true,
		Usage:                 "Report which lyric formats the upstream holds for a track",
		Description: `# Report which lyric formats the upstream holds for a track

Probes the upstream lyric-data service for every known format without
downloading document bodies. Like the /api/lyrics/meta endpoint, the
upstream is resolved from the LYRICS_API_URL environment variable.

## Examples

  # List available formats for a track
  LYRICS_API_URL=https://lyrics.example.com atlas meta --id 1989

  # Write the availability envelope to a file as YAML
  atlas meta --id 1989 -o meta.yaml -t yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Track identifier to probe",
				Required: true,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.CLIQueryTimeout,
				Usage: "Upper bound for the whole probe",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			id := cmd.String("id")
			slog.Info("looking up lyric metadata", "id", id)

			qctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			meta, err := lyrics.Lookup(qctx, id, slog.Default())
			if err != nil {
				return fmt.Errorf("lyric metadata lookup failed: %w", err)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			return ser.Serialize(ctx, meta)
		},
	}
}
