// ABOUTME: Builds the process-wide feed manager from configuration
// ABOUTME: Selects the cache backend and wires external clients

package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"feedscout/core/feed"
	"feedscout/core/interfaces"
	"feedscout/core/rss"
	"feedscout/core/youtube"
	"feedscout/infrastructure/cache/memory"
	"feedscout/infrastructure/cache/redis"
	"feedscout/infrastructure/feedparser"
	stdhttp "feedscout/infrastructure/http/standard"
	logruslogger "feedscout/infrastructure/logger/logrus"
	"feedscout/infrastructure/youtube/googleapi"
	"feedscout/pkg/config"
)

// cacheCleanupInterval controls how often the memory backend purges
// expired entries.
const cacheCleanupInterval = 5 * time.Minute

// newManager loads configuration and wires the orchestrator exactly
// once per invocation.
func newManager(ctx context.Context) (*rss.Manager, error) {
	// A missing .env file is fine; plain environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logruslogger.New(cfg.Log.Level)

	caches := rss.Caches{
		DisplayNames: newCache(cfg, logger, rss.DisplayNameCacheSize),
		Resolutions:  newCache(cfg, logger, youtube.ResolutionCacheSize),
		Documents:    newCache(cfg, logger, feed.DocumentCacheSize),
	}

	// Built lazily: web-only invocations never need the credential.
	api := googleapi.NewLazyClient(cfg.YouTube.APIKey)

	deps := interfaces.Dependencies{
		HTTPClient: stdhttp.NewClient(10*time.Second, config.UserAgent),
		Logger:     logger,
		FeedParser: feedparser.NewClient(config.UserAgent),
	}

	return rss.NewManager(deps, api, caches), nil
}

// newCache selects the configured cache backend, falling back to memory
// when Redis is unreachable.
func newCache(cfg *config.Config, logger interfaces.Logger, maxEntries int) interfaces.Cache {
	if cfg.Cache.Type == "redis" {
		redisCache, err := redis.NewClient(cfg.Cache.Redis)
		if err == nil {
			return redisCache
		}
		logger.Error("failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return memory.NewClient(maxEntries, cacheCleanupInterval)
}
