// ABOUTME: ChannelAPI implementation on the official YouTube Data API client
// ABOUTME: API-key auth, shared rate limiter and bounded per-call timeouts

package googleapi

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	youtubeapi "google.golang.org/api/youtube/v3"

	coreerrors "feedscout/core/errors"
)

// callTimeout bounds every request against the Data API.
const callTimeout = 7 * time.Second

// Client talks to the YouTube Data v3 channels endpoint.
type Client struct {
	service *youtubeapi.Service
	limiter *rate.Limiter
}

// NewClient builds an API-key authenticated client. The shared limiter
// keeps lookup bursts inside the per-key quota of the Data API.
func NewClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := youtubeapi.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		service: service,
		limiter: rate.NewLimiter(rate.Limit(5), 10),
	}, nil
}

// ChannelTitleByID returns the title of the channel with the exact id,
// requesting only the title field.
func (c *Client) ChannelTitleByID(ctx context.Context, id string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return "", &coreerrors.NetworkError{Operation: "channel title lookup", Err: err}
	}

	resp, err := c.service.Channels.List([]string{"snippet"}).
		Id(id).
		MaxResults(1).
		Fields("items(snippet(title))").
		Context(ctx).
		Do()
	if err != nil {
		return "", &coreerrors.NetworkError{Operation: "channel title lookup", Err: err}
	}

	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return "", &coreerrors.ValidationError{Field: "id", Message: "no channel found"}
	}

	return resp.Items[0].Snippet.Title, nil
}

// ChannelIDByHandle resolves a handle to its canonical channel id.
func (c *Client) ChannelIDByHandle(ctx context.Context, handle string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return "", &coreerrors.NetworkError{Operation: "handle lookup", Err: err}
	}

	resp, err := c.service.Channels.List([]string{"id"}).
		ForHandle(handle).
		MaxResults(5).
		Context(ctx).
		Do()
	if err != nil {
		return "", &coreerrors.NetworkError{Operation: "handle lookup", Err: err}
	}

	if len(resp.Items) == 0 || resp.Items[0].Id == "" {
		return "", &coreerrors.ValidationError{Field: "handle", Message: "no channel found"}
	}

	return resp.Items[0].Id, nil
}

// LazyClient defers Data API service construction until the first
// lookup, so callers that never touch a channel are unaffected by a
// missing or invalid credential. Construction happens at most once; a
// construction failure is returned by every subsequent call.
type LazyClient struct {
	apiKey string
	opts   []option.ClientOption

	once   sync.Once
	client *Client
	err    error
}

// NewLazyClient prepares a client without building the underlying
// service yet.
func NewLazyClient(apiKey string, opts ...option.ClientOption) *LazyClient {
	return &LazyClient{apiKey: apiKey, opts: opts}
}

func (l *LazyClient) get(ctx context.Context) (*Client, error) {
	l.once.Do(func() {
		l.client, l.err = NewClient(ctx, l.apiKey, l.opts...)
	})
	return l.client, l.err
}

// ChannelTitleByID builds the service on first use and delegates.
func (l *LazyClient) ChannelTitleByID(ctx context.Context, id string) (string, error) {
	client, err := l.get(ctx)
	if err != nil {
		return "", &coreerrors.NetworkError{Operation: "channel title lookup", Err: err}
	}
	return client.ChannelTitleByID(ctx, id)
}

// ChannelIDByHandle builds the service on first use and delegates.
func (l *LazyClient) ChannelIDByHandle(ctx context.Context, handle string) (string, error) {
	client, err := l.get(ctx)
	if err != nil {
		return "", &coreerrors.NetworkError{Operation: "handle lookup", Err: err}
	}
	return client.ChannelIDByHandle(ctx, handle)
}
