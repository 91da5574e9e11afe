package api

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/PoliTwit1984/LeonardoAIGenPy/client/internal/errors"
)

// DownloadFile fetches an asset URL into path. Asset URLs live on the CDN and
// are public, so the request goes through httpClient unchanged.
func DownloadFile(ctx context.Context, httpClient HTTPClient, url, path string) error {
	const op = "download image"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Validation(op, "build request for %q: %v", url, err)
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		requestsTotal.WithLabelValues(op, "error").Inc()
		return errors.NewNetworkError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()
	requestsTotal.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return errors.NewHTTPError(op, resp.StatusCode, body)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fileError(op, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fileError(op, err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return errors.NewNetworkError(op, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fileError(op, err)
	}
	return nil
}

// fileError reports a local filesystem failure. The destination is caller
// supplied, so it is a validation error rather than a remote one.
func fileError(op string, err error) *errors.Error {
	return &errors.Error{Kind: errors.KindValidation, Op: op, Message: "write destination: " + err.Error(), Err: err}
}
