package omdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/text/unicode/norm"

	"omdb-search/internal/httpx"
)

type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTP: &http.Client{
			Timeout: timeout, // per request
		},
	}
}

/* -------- API -------- */

// Search requests one page of results for term. Fail-soft: see httpx.GetJSON.
func (c *Client) Search(ctx context.Context, term string, page int) httpx.Result[SearchResponse] {
	if page < 1 {
		page = 1
	}

	q := url.Values{}
	q.Set("s", norm.NFC.String(term))
	q.Set("page", strconv.Itoa(page))

	u, err := c.endpoint(q)
	if err != nil {
		return httpx.Result[SearchResponse]{Err: err}
	}
	return httpx.GetJSON[SearchResponse](ctx, c.HTTP, u)
}

// Details requests the extended record of one title, short plot unless full.
func (c *Client) Details(ctx context.Context, imdbID string, full bool) httpx.Result[DetailRecord] {
	plot := "short"
	if full {
		plot = "full"
	}

	q := url.Values{}
	q.Set("i", imdbID)
	q.Set("plot", plot)

	u, err := c.endpoint(q)
	if err != nil {
		return httpx.Result[DetailRecord]{Err: err}
	}
	return httpx.GetJSON[DetailRecord](ctx, c.HTTP, u)
}

// endpoint builds <base>?apikey=<key>&r=json&<params>.
func (c *Client) endpoint(params url.Values) (string, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("omdb: invalid base url %q", c.BaseURL)
	}

	q := u.Query()
	q.Set("apikey", c.APIKey)
	q.Set("r", "json")
	for k, vs := range params {
		for _, v := range vs {
			q.Set(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
