// ABOUTME: Document domain model represents a fetched and parsed remote feed
// ABOUTME: Carries the raw per-item fields the extraction heuristics work on

package domain

import "time"

// Document is a parsed remote feed.
type Document struct {
	// Title is the feed-level title
	Title string

	// Link is the website URL the feed declares for itself
	Link string

	// Items are the feed entries, in the order the source listed them
	Items []Item
}

// Item is a single entry of a Document.
type Item struct {
	// Title is the entry headline
	Title string

	// Link is the URL of the entry
	Link string

	// Published is nil when the source carried no parseable timestamp
	Published *time.Time

	// ID is the Atom entry identifier, GUID the RSS one; a feed fills
	// at most one of the two
	ID   string
	GUID string

	// Author is the entry author, Byline the dc:creator credit when the
	// source declares one separately
	Author string
	Byline string

	// Content is the raw content body, possibly HTML
	Content string

	// Snippet is a plain-text rendering of the content body
	Snippet string

	// Summary is the entry's own summary field, when present
	Summary string

	// Thumbnail is a structured media thumbnail URL, when declared
	Thumbnail string

	// Enclosures are attached media resources
	Enclosures []Enclosure
}

// Enclosure is a media attachment declared by an item.
type Enclosure struct {
	URL  string
	Type string
}
