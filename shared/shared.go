package shared

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"posada/shared/cache"
)

// BuildCacheKey joins a cache prefix with its discriminating parts.
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

// InvalidateCaches clears every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, c cache.Cache, prefix string) {
	if err := c.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
	}
}
