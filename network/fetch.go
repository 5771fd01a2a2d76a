package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Header is one request header. Headers are applied in order.
type Header struct {
	Name  string
	Value string
}

// HTTPError is a response outside the 2xx range.
type HTTPError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("GET %s: %s", e.URL, e.Status)
}

// Get performs a GET and returns the response when it is 2xx. The caller closes the body.
// Headers with a blank name are skipped.
func Get(ctx context.Context, url string, headers []Header, opts Options) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for _, h := range headers {
		if strings.TrimSpace(h.Name) == "" {
			continue
		}
		req.Header.Add(h.Name, h.Value)
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", opts.userAgent())
	}

	resp, err := ClientFor(opts).Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		return nil, &HTTPError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return resp, nil
}

// Fetch performs a GET and returns the body as a string.
// Unless ctx already ends sooner, the request is bounded by the connect and read timeouts.
func Fetch(ctx context.Context, url string, headers []Header, opts Options) (string, error) {
	if budget := opts.ConnectTimeout + opts.ReadTimeout; budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, budget)
		defer cancel()
	}

	resp, err := Get(ctx, url, headers, opts)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	return string(body), nil
}

// Fetcher binds Options to Fetch.
type Fetcher struct {
	Options Options
}

func (f Fetcher) Fetch(ctx context.Context, url string, headers []Header) (string, error) {
	return Fetch(ctx, url, headers, f.Options)
}
