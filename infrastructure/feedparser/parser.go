// ABOUTME: FeedParser implementation backed by the gofeed library
// ABOUTME: Converts parsed RSS/Atom feeds into the domain document model

package feedparser

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"

	"feedscout/core/domain"
	coreerrors "feedscout/core/errors"
	"feedscout/pkg/textutil"
)

// Client fetches remote feeds and parses them into domain documents.
// A single instance is shared by all requests; each fetch uses its own
// gofeed parser, which is not safe for concurrent reuse.
type Client struct {
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a feed parser sending the given user agent.
func NewClient(userAgent string) *Client {
	return &Client{
		userAgent: userAgent,
		// Timeouts come from the per-call context, not the client.
		httpClient: &http.Client{},
	}
}

// FetchDocument retrieves and parses the feed at feedURL, bounded by timeout.
func (c *Client) FetchDocument(ctx context.Context, feedURL string, timeout time.Duration) (*domain.Document, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	parser := gofeed.NewParser()
	parser.UserAgent = c.userAgent
	parser.Client = c.httpClient

	parsed, err := parser.ParseURLWithContext(feedURL, fetchCtx)
	if err != nil {
		return nil, classifyError(err)
	}
	if parsed == nil {
		return nil, &coreerrors.ParseError{Source: "feed", Message: "empty document"}
	}

	return convertFeed(parsed), nil
}

// classifyError sorts gofeed failures into the core taxonomy. Callers
// treat every class identically, so a borderline case only affects logs.
func classifyError(err error) error {
	var httpErr gofeed.HTTPError
	var urlErr *url.Error
	switch {
	case errors.As(err, &httpErr),
		errors.As(err, &urlErr),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return &coreerrors.NetworkError{Operation: "fetch feed", Err: err}
	default:
		return &coreerrors.ParseError{Source: "feed", Message: err.Error()}
	}
}

// convertFeed maps a gofeed feed onto the domain document model.
func convertFeed(parsed *gofeed.Feed) *domain.Document {
	doc := &domain.Document{
		Title: parsed.Title,
		Link:  parsed.Link,
		Items: make([]domain.Item, 0, len(parsed.Items)),
	}

	atom := parsed.FeedType == "atom"
	for _, item := range parsed.Items {
		doc.Items = append(doc.Items, convertItem(item, atom))
	}

	return doc
}

// convertItem maps a single gofeed item. Atom entries carry their <id>
// in the ID field and their <summary> in Summary; RSS entries carry
// <guid> in GUID and fold <description> into the content body, matching
// how the upstream formats use those elements.
func convertItem(item *gofeed.Item, atom bool) domain.Item {
	out := domain.Item{
		Title:     item.Title,
		Link:      item.Link,
		Thumbnail: mediaThumbnail(item),
	}

	if atom {
		out.ID = item.GUID
		out.Summary = item.Description
		out.Content = item.Content
	} else {
		out.GUID = item.GUID
		out.Content = item.Content
		if out.Content == "" {
			out.Content = item.Description
		}
	}

	if item.PublishedParsed != nil {
		published := *item.PublishedParsed
		out.Published = &published
	} else if item.UpdatedParsed != nil {
		updated := *item.UpdatedParsed
		out.Published = &updated
	}

	if item.Author != nil {
		out.Author = item.Author.Name
	}
	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 {
		out.Byline = item.DublinCoreExt.Creator[0]
	}

	if out.Content != "" {
		out.Snippet = textutil.StripHTML(out.Content)
	} else if desc := mediaDescription(item); desc != "" {
		// YouTube video feeds carry their text only inside media:group.
		out.Snippet = textutil.CollapseWhitespace(desc)
	}

	for _, enc := range item.Enclosures {
		if enc == nil {
			continue
		}
		out.Enclosures = append(out.Enclosures, domain.Enclosure{
			URL:  enc.URL,
			Type: enc.Type,
		})
	}

	return out
}

// mediaThumbnail extracts a media:thumbnail URL from the item, either
// declared directly or nested inside a media:group.
func mediaThumbnail(item *gofeed.Item) string {
	media, ok := item.Extensions["media"]
	if !ok {
		return ""
	}

	for _, thumb := range media["thumbnail"] {
		if url := thumb.Attrs["url"]; url != "" {
			return url
		}
	}

	for _, group := range media["group"] {
		for _, thumb := range group.Children["thumbnail"] {
			if url := thumb.Attrs["url"]; url != "" {
				return url
			}
		}
	}

	return ""
}

// mediaDescription extracts a media:group description, when present.
func mediaDescription(item *gofeed.Item) string {
	media, ok := item.Extensions["media"]
	if !ok {
		return ""
	}

	for _, group := range media["group"] {
		for _, desc := range group.Children["description"] {
			if desc.Value != "" {
				return desc.Value
			}
		}
	}

	return ""
}
