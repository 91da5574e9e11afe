package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/errors"
	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/types"
)

// HTTPClient interface for dependency injection
type HTTPClient = types.HTTPClient

// endpoint joins baseURL and a path built from format/args.
func endpoint(baseURL, format string, args ...any) string {
	return strings.TrimRight(baseURL, "/") + "/" + fmt.Sprintf(format, args...)
}

// do sends one JSON request and decodes a 2xx body into out (if non-nil).
// Every failure comes back as *errors.Error.
func do(ctx context.Context, httpClient HTTPClient, op, method, url string, in, out any) error {
	if err := ctx.Err(); err != nil {
		return errors.NewNetworkError(op, err)
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errors.Validation(op, "encode request: %v", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return errors.Validation(op, "build request: %v", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		requestsTotal.WithLabelValues(op, "error").Inc()
		return errors.NewNetworkError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()
	requestsTotal.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewNetworkError(op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.NewHTTPError(op, resp.StatusCode, raw)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.NewDecodeError(op, resp.StatusCode, err)
	}
	return nil
}
