package slicingdice

import (
	"bytes"
	"context"
	"crypto/tls"
	"net/http"
	"net/url"
)

// HTTPClient is the interface for HTTP client.
type HTTPClient interface {
	// Get sends a GET request to the SlicingDice API.
	Get(context.Context, *url.URL, http.Header) (*http.Response, error)
	// Post sends a POST request to the SlicingDice API.
	Post(context.Context, *url.URL, http.Header, []byte) (*http.Response, error)
	// Put sends a PUT request to the SlicingDice API.
	Put(context.Context, *url.URL, http.Header, []byte) (*http.Response, error)
	// Delete sends a DELETE request to the SlicingDice API.
	Delete(context.Context, *url.URL, http.Header) (*http.Response, error)
	// Close releases idle connections held by the client.
	Close()
}

type httpClient struct {
	client *http.Client
}

// NewHTTPClient creates a new internal HTTP client.
func NewHTTPClient(config *Config) HTTPClient {
	client := &http.Client{Timeout: config.Timeout}
	if config.InsecureSkipVerify {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		client.Transport = transport
	}
	return &httpClient{client: client}
}

// Ensure httpClient implements HTTPClient.
var _ HTTPClient = (*httpClient)(nil)

func (c *httpClient) Get(ctx context.Context, u *url.URL, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	applyHeader(req, header)
	resp, err := c.client.Do(req)
	return resp, err
}

func (c *httpClient) Post(ctx context.Context, u *url.URL, header http.Header, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	applyHeader(req, header)
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	return resp, err
}

func (c *httpClient) Put(ctx context.Context, u *url.URL, header http.Header, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	applyHeader(req, header)
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	return resp, err
}

func (c *httpClient) Delete(ctx context.Context, u *url.URL, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u.String(), nil)
	if err != nil {
		return nil, err
	}
	applyHeader(req, header)
	resp, err := c.client.Do(req)
	return resp, err
}

func (c *httpClient) Close() {
	c.client.CloseIdleConnections()
}

func applyHeader(req *http.Request, header http.Header) {
	for key, values := range header {
		req.Header[key] = values
	}
}

// Client is a client for a SlicingDice database.
type Client struct {
	config *Config
	http   HTTPClient
}

// NewClient creates a new client with the given config.
//
// It fails with a *ConfigurationError when no API key is configured or the
// endpoint is not a valid URL.
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		return nil, &ConfigurationError{Reason: "config must not be nil"}
	}
	if !config.hasKey() {
		return nil, &ConfigurationError{Reason: "at least one API key must be configured"}
	}
	config = config.withDefaults()
	if _, err := url.Parse(config.Endpoint); err != nil {
		return nil, &ConfigurationError{Reason: "invalid endpoint: " + err.Error()}
	}
	return &Client{
		config: config,
		http:   NewHTTPClient(config),
	}, nil
}

// Config returns a copy of the client's effective configuration, defaults
// applied.
func (c *Client) Config() Config {
	return *c.config
}

// Close closes the client and releases its idle connections.
//
// You don't typically need to call this as the garbage collector will release
// the resources when the client is no longer referenced. However, it can be
// useful to call this if you want to release the resources immediately.
func (c *Client) Close() {
	c.http.Close()
}
