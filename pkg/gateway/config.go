package gateway

import (
	"os"

	"github.com/IamFurina/Lyric-Atlas-API/pkg/lyrics"
)

// resolveUpstreamBaseURL returns the configured lyric-data service base URL
// or the empty string. Absence is logged at error level on every call;
// there is no deduplication across requests. Never panics.
func (g *Gateway) resolveUpstreamBaseURL() string {
	base := os.Getenv(lyrics.EnvUpstreamBaseURL)
	if base == "" {
		g.log.Error("upstream base URL is not configured",
			"env", lyrics.EnvUpstreamBaseURL)
	}
	return base
}
