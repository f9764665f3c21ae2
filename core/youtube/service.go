// ABOUTME: YouTube adapter: channel resolution chain, video feed fetch, display names
// ABOUTME: Resolves arbitrary channel references to canonical ids with caching

package youtube

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"time"

	"feedscout/core/domain"
	coreerrors "feedscout/core/errors"
	"feedscout/core/interfaces"
	"feedscout/pkg/textutil"
)

const (
	// fetchTimeout bounds a video feed fetch
	fetchTimeout = 7 * time.Second

	// resolutionTTL is how long a resolved channel id is reused
	resolutionTTL = 12 * time.Hour

	// Channel ids are always this long; anything else is rejected
	// without a network call.
	channelIDMinLength = 15
	channelIDMaxLength = 25

	// minTermLength rejects search terms too short to mean anything
	minTermLength = 3

	videoFeedURL    = "https://www.youtube.com/feeds/videos.xml?channel_id=%s"
	channelProbeURL = "https://www.youtube.com/channel/%s"
)

// ResolutionCacheSize is the entry bound of the channel resolution cache.
const ResolutionCacheSize = 1000

// channelURLPattern recognizes the known YouTube URL shapes and captures
// the channel id or handle segment.
var channelURLPattern = regexp.MustCompile(`(?:https?://)?(?:www\.|m\.)?(?:youtube\.com|youtu\.be)/(?:channel/|user/|c/)?@?([^/\s?]+).*$`)

// Service is the adapter for YouTube channel video feeds.
type Service struct {
	deps        interfaces.Dependencies
	api         interfaces.ChannelAPI
	resolutions interfaces.Cache
}

// NewService creates a YouTube adapter using the given resolution cache.
func NewService(deps interfaces.Dependencies, api interfaces.ChannelAPI, resolutions interfaces.Cache) *Service {
	return &Service{
		deps:        deps,
		api:         api,
		resolutions: resolutions,
	}
}

// GetDisplayName returns the channel title for a canonical channel id, or
// "" when the id is malformed or unknown. Malformed ids are rejected
// before any network call.
func (s *Service) GetDisplayName(ctx context.Context, channelID string) string {
	if len(channelID) < channelIDMinLength || len(channelID) > channelIDMaxLength {
		s.deps.Logger.Warn("invalid YouTube channel ID", map[string]interface{}{
			"channel_id": textutil.SanitizeForLog(channelID),
		})
		return ""
	}

	title, err := s.api.ChannelTitleByID(ctx, channelID)
	if err != nil {
		s.deps.Logger.Warn("failed to fetch YouTube channel name", map[string]interface{}{
			"channel_id": textutil.SanitizeForLog(channelID),
			"error":      err.Error(),
		})
		return ""
	}
	return title
}

// GetLastPost resolves term to a channel and returns its newest video
// entry, or nil when the term resolves to nothing or the feed is
// unusable.
func (s *Service) GetLastPost(ctx context.Context, term string) *domain.ParsedEntry {
	channelID := s.resolveChannel(ctx, term)
	if channelID == "" {
		return nil
	}

	feedURL := fmt.Sprintf(videoFeedURL, url.QueryEscape(channelID))
	doc, err := s.deps.FeedParser.FetchDocument(ctx, feedURL, fetchTimeout)
	if err != nil {
		s.deps.Logger.Warn("error while fetching video feed", map[string]interface{}{
			"url":   textutil.SanitizeForLog(feedURL),
			"error": err.Error(),
		})
		return nil
	}
	if len(doc.Items) == 0 {
		return nil
	}

	entry, err := buildEntry(&doc.Items[0])
	if err != nil {
		s.deps.Logger.Warn("discarding unusable video entry", map[string]interface{}{
			"url":   textutil.SanitizeForLog(feedURL),
			"error": err.Error(),
		})
		return nil
	}
	return entry
}

// resolveChannel turns an arbitrary channel reference (bare id, channel
// URL, or handle) into a canonical channel id, or "" when nothing
// matches. Results are cached by the input term, not the resolved id, so
// two aliases of the same channel resolve independently.
func (s *Service) resolveChannel(ctx context.Context, term string) string {
	if len(term) < minTermLength {
		s.deps.Logger.Warn("channel search term too short", map[string]interface{}{
			"term": textutil.SanitizeForLog(term),
		})
		return ""
	}

	if m := channelURLPattern.FindStringSubmatch(term); m != nil {
		term = m[1]
	}

	if cached, err := s.resolutions.Get(ctx, term); err == nil {
		return string(cached)
	}

	channelID := s.lookupChannel(ctx, term)
	if channelID == "" {
		return ""
	}

	_ = s.resolutions.Set(ctx, term, []byte(channelID), resolutionTTL)
	return channelID
}

// lookupChannel treats a successful probe of the public channel page as
// proof term is already a valid id, and otherwise falls back to the
// handle lookup API.
func (s *Service) lookupChannel(ctx context.Context, term string) string {
	if s.probeChannelID(ctx, term) {
		return term
	}

	channelID, err := s.api.ChannelIDByHandle(ctx, term)
	if err != nil {
		s.deps.Logger.Warn("failed to resolve YouTube channel", map[string]interface{}{
			"term":  textutil.SanitizeForLog(term),
			"error": err.Error(),
		})
		return ""
	}
	return channelID
}

// probeChannelID checks for a 2xx response on the fixed channel URL.
func (s *Service) probeChannelID(ctx context.Context, term string) bool {
	resp, err := s.deps.HTTPClient.Get(ctx, fmt.Sprintf(channelProbeURL, url.PathEscape(term)))
	if err != nil {
		return false
	}
	defer resp.Body().Close()

	return resp.StatusCode() >= 200 && resp.StatusCode() < 300
}

// buildEntry maps the first feed item onto a ParsedEntry. The upstream
// feed format is not trusted to always fill the required fields; any
// absence makes the entry unusable.
func buildEntry(item *domain.Item) (*domain.ParsedEntry, error) {
	entryID := item.ID
	if entryID == "" {
		entryID = item.GUID
	}

	switch {
	case item.Link == "":
		return nil, &coreerrors.ParseError{Source: "video feed", Message: "entry has no link"}
	case item.Title == "":
		return nil, &coreerrors.ParseError{Source: "video feed", Message: "entry has no title"}
	case item.Published == nil:
		return nil, &coreerrors.ParseError{Source: "video feed", Message: "entry has no parseable timestamp"}
	case entryID == "":
		return nil, &coreerrors.ParseError{Source: "video feed", Message: "entry has no id"}
	case item.Author == "":
		return nil, &coreerrors.ParseError{Source: "video feed", Message: "entry has no author"}
	}

	return &domain.ParsedEntry{
		URL:         item.Link,
		Title:       item.Title,
		PublishedAt: *item.Published,
		EntryID:     entryID,
		Author:      item.Author,
		ChannelName: item.Author,
		Image:       item.Thumbnail,
		ShortText:   item.Snippet,
	}, nil
}
