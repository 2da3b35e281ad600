package transport

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/agentstation/contactsync/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = 30 * time.Second

// Client provides HTTP client functionality with authentication and the
// PSA's required identification headers.
type Client struct {
	http      *http.Client
	auth      Authenticator
	clientID  string
	mediaType string
}

// New creates a new transport client with the specified authenticator.
// clientID is sent on every request as the clientId header; mediaType is
// the versioned media type sent as the Accept header.
func New(auth Authenticator, clientID, mediaType string) *Client {
	return &Client{
		http:      &http.Client{Timeout: DefaultHTTPTimeout},
		auth:      auth,
		clientID:  clientID,
		mediaType: mediaType,
	}
}

// Do performs an HTTP request with authentication and common headers applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.auth != nil {
		c.auth.Apply(req)
	}

	if c.clientID != "" {
		req.Header.Set("clientId", c.clientID)
	}

	// Versioned Accept header; fall back to plain JSON when unset.
	accept := c.mediaType
	if accept == "" {
		accept = "application/json"
	}
	req.Header.Set("Accept", accept)

	if req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+url, err)
	}
	return c.Do(req)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, url string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WrapResource("create", "request", "PUT "+url, err)
	}
	return c.Do(req)
}
