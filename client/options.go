package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/errors"
	"github.com/PoliTwit1984/LeonardoAIGenPy/client/templates"
)

// Option configures a Client during construction in New.
//
// Options are applied before the authorization transport wrapper is installed,
// so transport-related options (like debug logging) end up underneath the
// API-key wrapper and never see the credential.
type Option func(*Client) error

// WithBaseURL overrides the API root, e.g. for a proxy or a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if strings.TrimSpace(baseURL) == "" {
			return errors.Validation("new client", "base URL must not be empty")
		}
		c.baseURL = strings.TrimRight(baseURL, "/")
		return nil
	}
}

// WithHTTPClient uses a copy of hc for all requests. The caller's client is
// not modified. If hc has no Timeout, the timeout configured so far is kept.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.Validation("new client", "http client must not be nil")
		}
		cp := *hc
		if cp.Timeout == 0 {
			cp.Timeout = c.http.Timeout
		}
		c.http = &cp
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout bounds a
// single HTTP request, not a whole polling loop. The value must be greater
// than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithTemplateFile loads template presets from path. A missing file adds
// nothing; malformed JSON makes New fail. Presets loaded later replace
// earlier ones with the same name.
func WithTemplateFile(path string) Option {
	return func(c *Client) error {
		set, err := templates.Load(path)
		if err != nil {
			return &errors.Error{Kind: errors.KindValidation, Op: "new client", Message: err.Error(), Err: err}
		}
		for name, p := range set {
			c.templates[name] = p
		}
		return nil
	}
}

// WithTemplates adds the given presets.
func WithTemplates(set templates.Set) Option {
	return func(c *Client) error {
		for name, p := range set.Clone() {
			c.templates[name] = p
		}
		return nil
	}
}

// WithBuiltinTemplates adds the presets shipped with this module
// (square, portrait, landscape, draft, photoreal).
func WithBuiltinTemplates() Option {
	return WithTemplates(templates.Builtin())
}

// WithPolling sets the delay between job status queries and the maximum
// number of queries before a job is reported as timed out.
func WithPolling(interval time.Duration, maxAttempts int) Option {
	return func(c *Client) error {
		if interval <= 0 {
			return fmt.Errorf("poll interval must be > 0")
		}
		if maxAttempts <= 0 {
			return fmt.Errorf("poll max attempts must be > 0")
		}
		c.poll.Interval = interval
		c.poll.MaxAttempts = maxAttempts
		return nil
	}
}

// WithDebugLogging logs each request/response at debug level when enabled.
//
// Do not enable this option in production environments: bodies are dumped
// verbatim. The credential itself is added above the debug transport and is
// never logged.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.debug = enabled
		return nil
	}
}
