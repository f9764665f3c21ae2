package rss

import (
	"context"
	"io"
	"strings"
	"time"

	"feedscout/core/domain"
	"feedscout/core/interfaces"
)

// mockChannelAPI is a mock implementation of the ChannelAPI interface
type mockChannelAPI struct {
	titleFunc   func(ctx context.Context, id string) (string, error)
	titleCalls  int
	handleCalls int
}

func (m *mockChannelAPI) ChannelTitleByID(ctx context.Context, id string) (string, error) {
	m.titleCalls++
	if m.titleFunc != nil {
		return m.titleFunc(ctx, id)
	}
	return "", nil
}

func (m *mockChannelAPI) ChannelIDByHandle(ctx context.Context, handle string) (string, error) {
	m.handleCalls++
	return "", nil
}

// mockParser is a mock implementation of the FeedParser interface
type mockParser struct {
	fetchFunc func(ctx context.Context, url string, timeout time.Duration) (*domain.Document, error)
	calls     int
}

func (m *mockParser) FetchDocument(ctx context.Context, url string, timeout time.Duration) (*domain.Document, error) {
	m.calls++
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, url, timeout)
	}
	return &domain.Document{}, nil
}

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	calls int
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.calls++
	return &mockResponse{statusCode: 200}, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(""))
}

func (m *mockResponse) Header(key string) string {
	return ""
}

// mapCache is an unbounded Cache backed by a plain map, ignoring TTLs.
type mapCache struct {
	values map[string][]byte
	sets   int
}

func newMapCache() *mapCache {
	return &mapCache{values: map[string][]byte{}}
}

func (m *mapCache) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := m.values[key]
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}
	return value, nil
}

func (m *mapCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.sets++
	m.values[key] = value
	return nil
}

func (m *mapCache) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

type fixture struct {
	manager *Manager
	parser  *mockParser
	client  *mockHTTPClient
	api     *mockChannelAPI
	names   *mapCache
}

func newFixture(api *mockChannelAPI, parser *mockParser) *fixture {
	client := &mockHTTPClient{}
	names := newMapCache()
	deps := interfaces.Dependencies{
		HTTPClient: client,
		Logger:     &mockLogger{},
		FeedParser: parser,
	}
	manager := NewManager(deps, api, Caches{
		DisplayNames: names,
		Resolutions:  newMapCache(),
		Documents:    newMapCache(),
	})
	return &fixture{manager: manager, parser: parser, client: client, api: api, names: names}
}
