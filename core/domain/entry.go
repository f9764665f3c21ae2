// ABOUTME: ParsedEntry domain model is the canonical normalized "latest post" record
// ABOUTME: Produced by the feed adapters and consumed by the surrounding service

package domain

import "time"

// Feed source types the adapters recognize. Unknown values are accepted
// by callers and resolve to "not found".
const (
	SourceWeb       = "web"
	SourceYouTube   = "youtube"
	SourceMinecraft = "minecraft"
)

// ParsedEntry is the normalized latest entry of a feed, independent of
// the source type. Optional fields use the empty string for "absent".
type ParsedEntry struct {
	// URL is the canonical link to the post
	URL string

	// Title is never empty; adapters substitute a placeholder when the
	// source omits it
	Title string

	// PublishedAt is always set; entries without a parseable timestamp
	// are discarded instead of being emitted with a zero time
	PublishedAt time.Time

	// EntryID is a best-effort stable identifier for caller-side dedup
	EntryID string

	// Best-effort metadata
	Author      string
	ChannelName string
	Image       string
	ShortText   string
	Description string
}

// FeedRef identifies a configured feed as stored by the surrounding
// service: a declared source type plus a raw address or channel term.
type FeedRef struct {
	Type string
	Link string
}
