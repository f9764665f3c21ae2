// ABOUTME: Pure extraction heuristics turning a raw feed item into a ParsedEntry
// ABOUTME: Multi-field fallback chains for URL, title, id, author and image

package feed

import (
	"regexp"
	"strings"

	"feedscout/core/domain"
	coreerrors "feedscout/core/errors"
)

// titlePlaceholder substitutes a missing entry title.
const titlePlaceholder = "?"

// contentImagePattern matches the first image-looking URL inside a raw
// content body.
var contentImagePattern = regexp.MustCompile(`(?i)(http(s?):)([/|.\w\s-])*\.(jpe?g|gif|png|webp)`)

// BuildEntry normalizes a surviving feed item into a ParsedEntry. An item
// without a parseable timestamp is unusable and yields a ParseError
// instead of a record with an undefined time.
func BuildEntry(doc *domain.Document, item *domain.Item, requestURL string) (*domain.ParsedEntry, error) {
	if item.Published == nil {
		return nil, &coreerrors.ParseError{Source: "feed item", Message: "entry has no parseable timestamp"}
	}

	return &domain.ParsedEntry{
		URL:         firstNonEmpty(item.Link, doc.Link, requestURL),
		Title:       firstNonEmpty(item.Title, titlePlaceholder),
		PublishedAt: *item.Published,
		EntryID:     firstNonEmpty(item.ID, item.GUID, item.Title),
		Author:      ExtractAuthor(doc, item),
		ChannelName: doc.Title,
		Image:       ExtractImage(item),
		ShortText:   item.Snippet,
		Description: item.Summary,
	}, nil
}

// ExtractAuthor picks the entry byline, then the entry author, then the
// feed-level title.
func ExtractAuthor(doc *domain.Document, item *domain.Item) string {
	return firstNonEmpty(item.Byline, item.Author, doc.Title)
}

// ExtractImage resolves an illustration for the entry by priority: a
// structured media thumbnail, then an image-typed enclosure, then the
// first image URL embedded in the content body.
func ExtractImage(item *domain.Item) string {
	if item.Thumbnail != "" {
		return item.Thumbnail
	}
	if url := imageFromEnclosures(item.Enclosures); url != "" {
		return url
	}
	return contentImagePattern.FindString(item.Content)
}

// imageFromEnclosures returns the first enclosure declaring an image MIME
// type.
func imageFromEnclosures(enclosures []domain.Enclosure) string {
	for _, enc := range enclosures {
		if enc.URL != "" && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	return ""
}

// firstNonEmpty returns the first non-empty value
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
