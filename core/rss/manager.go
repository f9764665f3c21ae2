// ABOUTME: Orchestrator dispatching feed operations by source type
// ABOUTME: Owns the display-name cache and the two feed adapters

package rss

import (
	"context"
	"strings"
	"time"

	"feedscout/core/domain"
	"feedscout/core/feed"
	"feedscout/core/interfaces"
	"feedscout/core/youtube"
)

// displayNameTTL is how long a resolved display name is reused.
const displayNameTTL = 12 * time.Hour

// DisplayNameCacheSize is the entry bound of the display-name cache.
const DisplayNameCacheSize = 100

// Caches holds the three process-wide cache instances used by the
// manager and its adapters. Each has its own bound and TTL; see the
// *CacheSize constants for the bounds.
type Caches struct {
	// DisplayNames caches resolved feed labels (12 h TTL)
	DisplayNames interfaces.Cache

	// Resolutions caches channel term resolutions (12 h TTL)
	Resolutions interfaces.Cache

	// Documents caches parsed web feed documents (1 h TTL)
	Documents interfaces.Cache
}

// Manager is the process-wide entry point for feed operations. One
// instance is constructed at startup and shared by all requests; it
// holds no per-request state.
type Manager struct {
	deps         interfaces.Dependencies
	displayNames interfaces.Cache
	web          *feed.Service
	youtube      *youtube.Service
}

// NewManager wires the adapters to their caches and external
// collaborators.
func NewManager(deps interfaces.Dependencies, api interfaces.ChannelAPI, caches Caches) *Manager {
	return &Manager{
		deps:         deps,
		displayNames: caches.DisplayNames,
		web:          feed.NewService(deps, caches.Documents),
		youtube:      youtube.NewService(deps, api, caches.Resolutions),
	}
}

// GetDisplayName returns a human-friendly label for the feed, or "" when
// none can be resolved. Successful results are cached; a miss on an
// unsupported type is not, so the type can be retried once support
// lands.
func (m *Manager) GetDisplayName(ctx context.Context, ref domain.FeedRef) string {
	cacheKey := ref.Type + ":" + ref.Link
	if cached, err := m.displayNames.Get(ctx, cacheKey); err == nil {
		return string(cached)
	}

	var displayName string
	switch ref.Type {
	case domain.SourceYouTube:
		displayName = m.youtube.GetDisplayName(ctx, ref.Link)
	case domain.SourceMinecraft:
		displayName = minecraftDisplayName(ref.Link)
	default:
		return ""
	}

	if displayName != "" {
		_ = m.displayNames.Set(ctx, cacheKey, []byte(displayName), displayNameTTL)
	}
	return displayName
}

// TestFeed fetches the latest entry of a feed a user is about to save.
// Unsupported types yield nil without any network access.
func (m *Manager) TestFeed(ctx context.Context, feedType, link string) *domain.ParsedEntry {
	switch feedType {
	case domain.SourceYouTube:
		return m.youtube.GetLastPost(ctx, link)
	case domain.SourceWeb:
		return m.web.GetLastPost(ctx, link)
	default:
		return nil
	}
}

// minecraftDisplayName strips the port separator a server address keeps
// when stored without an explicit port. No network access involved.
func minecraftDisplayName(link string) string {
	return strings.TrimSuffix(link, ":")
}
