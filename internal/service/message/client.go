package message

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	applog "github.com/janisto/hello-fullstack/internal/platform/logging"
)

const (
	// DefaultURL is where the API server answers on a developer machine.
	DefaultURL   = "http://localhost:5000/api"
	acceptHeader = "application/json"
)

// Client implements Service over HTTP.
type Client struct {
	httpClient *http.Client
	url        string
}

// Option configures a Client.
type Option func(*Client)

// WithURL points the client at a different endpoint (useful for testing).
func WithURL(url string) Option {
	return func(c *Client) {
		c.url = url
	}
}

// NewClient creates a new message API client. A nil httpClient uses
// http.DefaultClient, which has no timeout.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		httpClient: httpClient,
		url:        DefaultURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL reports the endpoint the client fetches.
func (c *Client) URL() string {
	return c.url
}

// GetMessage performs one GET against the API and returns its message field.
// Only transport failures and bodies that are not a single JSON document are
// errors. The status code is not consulted, and a document without a usable
// message field yields "".
func (c *Client) GetMessage(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	if id := applog.TraceIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-Id", id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching message: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		applog.LogWarn(ctx, "message api returned non-success status", zap.Int("status", resp.StatusCode))
	}

	doc, err := decodeDocument(resp.Body)
	if err != nil {
		return "", fmt.Errorf("decoding message response: %w", err)
	}
	return messageText(doc)
}

// decodeDocument reads exactly one JSON value, keeping numbers as written.
func decodeDocument(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Join(ErrMalformedBody, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrMalformedBody)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: null document", ErrMalformedBody)
	}
	return doc, nil
}

// messageText extracts the displayable message. Non-object documents, absent
// or null fields, and booleans all display as empty text.
func messageText(doc any) (string, error) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return "", nil
	}
	switch v := obj["message"].(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case map[string]any, []any:
		return "", ErrUnsupportedMessage
	default:
		return "", nil
	}
}
