// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the feed core

package interfaces

// Dependencies holds the external collaborators shared by the core
// packages. The caches are passed to each service separately because
// every service owns a differently-sized instance.
type Dependencies struct {
	// HTTPClient performs plain HTTP probes
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// FeedParser fetches and parses remote feed documents
	FeedParser FeedParser
}
