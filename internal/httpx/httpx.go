package httpx

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

// HTTPError carries status/body for non-2xx responses.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: %s %s status=%d body=%s", e.Method, e.URL, e.StatusCode, snippet(e.Body, 900))
}

func snippet(b []byte, max int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// Result is the outcome of a fail-soft fetch. Value is always usable:
// on failure it is the zero value of T and Err says why.
type Result[T any] struct {
	Value T
	Err   error
}

// OK reports whether the fetch produced a decoded value.
func (r Result[T]) OK() bool { return r.Err == nil }

// Do executes a single GET-style request and returns the decoded body.
// Non-2xx answers come back as *HTTPError. No retries.
func Do(client *http.Client, req *http.Request) (*http.Response, []byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if req.Header.Get("Accept-Encoding") == "" {
		req.Header.Set("Accept-Encoding", "br, gzip")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}

	raw, err := readAndClose(resp.Body)
	if err != nil {
		return resp, nil, fmt.Errorf("read body: %w", err)
	}

	body, err := decodeBody(resp.Header.Get("Content-Encoding"), raw)
	if err != nil {
		return resp, raw, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp, body, &HTTPError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Header:     resp.Header.Clone(),
			Body:       body,
		}
	}
	return resp, body, nil
}

// GetJSON fetches url and unmarshals the body into T. It never returns an
// error to the caller: any failure (transport, status, decoding, parsing)
// yields Result{Value: zero T, Err: cause}.
func GetJSON[T any](ctx context.Context, client *http.Client, url string) Result[T] {
	var zero T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result[T]{Value: zero, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	_, body, err := Do(client, req)
	if err != nil {
		return Result[T]{Value: zero, Err: err}
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return Result[T]{Value: zero, Err: fmt.Errorf("json parse error: %w body=%s", err, snippet(body, 300))}
	}
	return Result[T]{Value: out}
}

func readAndClose(rc io.ReadCloser) ([]byte, error) {
	defer rc.Close()
	return io.ReadAll(rc)
}

func decodeBody(encoding string, raw []byte) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "identity":
		return raw, nil
	case "br":
		b, err := io.ReadAll(brotli.NewReader(bytes.NewReader(raw)))
		if err != nil {
			return nil, fmt.Errorf("brotli decode: %w", err)
		}
		return b, nil
	case "gzip":
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("gzip decode: %w", err)
		}
		defer zr.Close()
		b, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("gzip decode: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", encoding)
	}
}
