package lyrics

import (
	"context"

	"github.com/IamFurina/Lyric-Atlas-API/pkg/cache"
	"github.com/IamFurina/Lyric-Atlas-API/pkg/defaults"
)

// cachedDocument is a fetched upstream document plus the collection it
// came from, kept so cache hits can reconstruct the full envelope.
type cachedDocument struct {
	Body   string
	Source string
}

// documentCache is shared across all provider instances. Providers are
// constructed per request; the cache is the one piece of cross-request
// state the collaborator keeps, invisible to the gateway.
var documentCache = cache.New[cachedDocument](
	"lyrics",
	defaults.LyricCacheTTL,
	defaults.LyricCacheCleanupInterval,
)

// StartCacheCleanup starts the shared document cache's background cleanup
// cycle. Call it once at process initialization, before the listener
// accepts traffic; repeated calls have no effect. The cycle stops when ctx
// is canceled.
func StartCacheCleanup(ctx context.Context) {
	documentCache.StartJanitor(ctx)
}
