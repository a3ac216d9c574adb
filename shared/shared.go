package shared

import (
	"context"
	"strings"

	"github.com/alexfurtado22/djangobnb/shared/cache"

	"github.com/rs/zerolog/log"
)

// BuildCacheKey joins a prefix and its parts into a single cache key.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}

// InvalidateCaches drops every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+":*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
