package feed

import (
	"context"
	"io"
	"strings"
	"time"

	"feedscout/core/domain"
	"feedscout/core/interfaces"
)

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
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
	calls   int
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.calls++
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return &mockResponse{statusCode: 200}, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// mapCache is an unbounded in-memory Cache backed by a plain map,
// ignoring TTLs. Good enough for exercising hit/miss paths.
type mapCache struct {
	values map[string][]byte
	sets   int
	ttls   []time.Duration
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

func (m *mapCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.sets++
	m.ttls = append(m.ttls, ttl)
	m.values[key] = value
	return nil
}

func (m *mapCache) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	warnFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	if m.warnFunc != nil {
		m.warnFunc(msg, fields)
	}
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func testDeps(parser *mockParser) interfaces.Dependencies {
	return interfaces.Dependencies{
		HTTPClient: &mockHTTPClient{},
		Logger:     &mockLogger{},
		FeedParser: parser,
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
