// ABOUTME: Web feed adapter producing the canonical latest-entry record
// ABOUTME: Fetches through the shared document cache and filters pinned posts

package feed

import (
	"context"
	"encoding/json"
	"time"

	"feedscout/core/domain"
	"feedscout/core/interfaces"
	"feedscout/pkg/textutil"
)

const (
	// fetchTimeout bounds a single remote feed fetch
	fetchTimeout = 9 * time.Second

	// documentTTL is how long a parsed document is reused before refetching
	documentTTL = time.Hour

	cacheKeyPrefix = "feeddoc:"
)

// DocumentCacheSize is the entry bound of the shared document cache.
const DocumentCacheSize = 1000

// Service is the adapter for generic web feeds.
type Service struct {
	deps interfaces.Dependencies
	docs interfaces.Cache
}

// NewService creates a web feed adapter using the given document cache.
func NewService(deps interfaces.Dependencies, docs interfaces.Cache) *Service {
	return &Service{
		deps: deps,
		docs: docs,
	}
}

// GetLastPost returns the most recent genuine entry of the feed at url,
// or nil when the feed cannot be fetched, parsed, or yields no usable
// entry. Failures are logged at warning level and never propagated.
func (s *Service) GetLastPost(ctx context.Context, url string) *domain.ParsedEntry {
	doc := s.getDocument(ctx, url)
	if doc == nil {
		return nil
	}

	items := FilterPinned(doc.Items)
	if len(items) == 0 {
		return nil
	}

	entry, err := BuildEntry(doc, &items[0], url)
	if err != nil {
		s.warn("discarding unusable feed entry", url, err)
		return nil
	}
	return entry
}

// getDocument returns the parsed feed document for url, reusing a cached
// copy within the TTL window instead of refetching.
func (s *Service) getDocument(ctx context.Context, url string) *domain.Document {
	if cached := s.cachedDocument(ctx, url); cached != nil {
		return cached
	}

	doc, err := s.deps.FeedParser.FetchDocument(ctx, url, fetchTimeout)
	if err != nil {
		s.warn("error while fetching feed", url, err)
		return nil
	}

	if len(doc.Items) == 0 {
		s.deps.Logger.Debug("no items found in feed", map[string]interface{}{
			"url": textutil.SanitizeForLog(url),
		})
		return nil
	}

	// Cache errors only cost a refetch next time.
	_ = s.cacheDocument(ctx, url, doc)

	return doc
}

// cachedDocument retrieves a document from the cache, or nil on a miss.
func (s *Service) cachedDocument(ctx context.Context, url string) *domain.Document {
	data, err := s.docs.Get(ctx, cacheKeyPrefix+url)
	if err != nil {
		return nil
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	return &doc
}

// cacheDocument stores a parsed document
func (s *Service) cacheDocument(ctx context.Context, url string, doc *domain.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return s.docs.Set(ctx, cacheKeyPrefix+url, data, documentTTL)
}

// warn logs a soft failure with the remote-supplied URL sanitized.
func (s *Service) warn(msg, url string, err error) {
	s.deps.Logger.Warn(msg, map[string]interface{}{
		"url":   textutil.SanitizeForLog(url),
		"error": err.Error(),
	})
}
