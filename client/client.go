// Package client is a Go SDK for the Leonardo AI REST API.
//
// A Client is immutable after New and safe for concurrent use. Image, upscale
// and motion jobs run remotely; the corresponding methods block while polling
// the job status at a fixed interval until it completes, fails, or the
// attempt budget (see WithPolling) is spent.
package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/api"
	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/errors"
	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/poll"
	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/types"
	"github.com/PoliTwit1984/LeonardoAIGenPy/client/templates"
)

// DefaultBaseURL is the Leonardo REST API root.
const DefaultBaseURL = "https://cloud.leonardo.ai/api/rest/v1"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL   string
	http      *http.Client
	apiKey    string // bearer credential attached to every API request
	templates templates.Set
	poll      poll.Config
	debug     bool
}

// New constructs a Client authenticating with apiKey.
// Additional options can be provided via functional arguments.
func New(apiKey string, opts ...Option) (*Client, error) {
	if err := types.ValidateRequired("new client", apiKey, "apiKey"); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		http:      &http.Client{Timeout: 30 * time.Second},
		templates: templates.Set{},
		poll: poll.Config{
			Interval:    poll.DefaultInterval,
			MaxAttempts: poll.DefaultMaxAttempts,
		},
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.debug {
		c.http.Transport = &debugTransport{base: c.http.Transport}
	}
	// Wrap HTTP transport to automatically add Authorization header
	if err := c.wrapTransportWithAPIKey(); err != nil {
		return nil, err
	}

	return c, nil
}

// wrapTransportWithAPIKey wraps the HTTP client's transport so that requests
// to the API host carry the bearer credential. Requests to other hosts, such
// as the image CDN, are forwarded untouched.
func (c *Client) wrapTransportWithAPIKey() error {
	u, err := url.Parse(c.baseURL)
	if err != nil || u.Host == "" {
		return errors.Validation("new client", "invalid base URL %q", c.baseURL)
	}
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &apiKeyTransport{
		base:   baseTransport,
		apiKey: c.apiKey,
		host:   u.Host,
	}
	return nil
}

// apiKeyTransport wraps an http.RoundTripper to automatically add Authorization header
type apiKeyTransport struct {
	base   http.RoundTripper
	apiKey string
	host   string
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Host != t.host {
		return t.base.RoundTrip(req)
	}
	// Clone so the caller's request is left untouched
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.apiKey)
	return t.base.RoundTrip(cloned)
}

// Templates returns a copy of the loaded template presets.
func (c *Client) Templates() templates.Set {
	return c.templates.Clone()
}

// --------------------------------------------------------------------
// Synchronous operations - delegated to internal/api
// --------------------------------------------------------------------

// GetModels lists the platform models in the order the service returns them.
func (c *Client) GetModels(ctx context.Context) ([]Model, error) {
	return api.ListModels(ctx, c.http, c.baseURL)
}

// ImprovePrompt asks the service to rewrite prompt.
func (c *Client) ImprovePrompt(ctx context.Context, prompt string) (*ImprovedPrompt, error) {
	return api.ImprovePrompt(ctx, c.http, c.baseURL, prompt)
}

// GetUserInfo returns the authenticated user's details and token balances.
func (c *Client) GetUserInfo(ctx context.Context) (*UserInfo, error) {
	return api.GetMe(ctx, c.http, c.baseURL)
}

// GetGeneration fetches a generation once, whatever its status.
func (c *Client) GetGeneration(ctx context.Context, generationID string) (*Generation, error) {
	return api.GetGeneration(ctx, c.http, c.baseURL, generationID)
}

// ListImageIDs returns the IDs of the images of a generation.
func (c *Client) ListImageIDs(ctx context.Context, generationID string) ([]string, error) {
	g, err := api.GetGeneration(ctx, c.http, c.baseURL, generationID)
	if err != nil {
		return nil, err
	}
	return g.ImageIDs(), nil
}
