// ABOUTME: Ports to the genuine external services the feed core depends on
// ABOUTME: Feed fetching/parsing and the channel lookup API

package interfaces

import (
	"context"
	"time"

	"feedscout/core/domain"
)

// FeedParser fetches a remote feed and parses it into the domain model.
// Implementations send a fixed identifying user agent and bound every
// request with the given timeout; there is no caller cancellation beyond
// that bound.
type FeedParser interface {
	// FetchDocument retrieves and parses the feed at url.
	FetchDocument(ctx context.Context, url string, timeout time.Duration) (*domain.Document, error)
}

// ChannelAPI is the channel lookup API used for YouTube display names
// and handle resolution. It is a rate-limited third party; both calls
// must carry a bounded timeout.
type ChannelAPI interface {
	// ChannelTitleByID returns the title of the channel with the exact id.
	ChannelTitleByID(ctx context.Context, id string) (string, error)

	// ChannelIDByHandle resolves a handle to its canonical channel id.
	ChannelIDByHandle(ctx context.Context, handle string) (string, error)
}
