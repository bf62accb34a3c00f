package sunapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	DefaultURL = "https://api.sunrise-sunset.org/json"

	apiKeyParam = "apiKey"
)

var ErrNoResults = errors.New("response has no results")

// Client queries the API at URL. The zero HTTP client means
// http.DefaultClient, which has no timeout.
type Client struct {
	HTTP   *http.Client
	URL    string
	APIKey string
}

// New returns a Client for the API at addr, authenticating with apiKey if it
// is not empty.
func New(addr, apiKey string) *Client {
	if addr == "" {
		addr = DefaultURL
	}
	return &Client{
		URL:    addr,
		APIKey: apiKey,
	}
}

// Get fetches the results record for q. The record is returned exactly as
// decoded.
func (c *Client) Get(ctx context.Context, q Query) (*Results, error) {
	var result Response

	// Build request URL first
	addr, err := c.url(q)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode %s results: %w", q.Date, err)
	}
	if result.Results == nil {
		return nil, ErrNoResults
	}

	return result.Results, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}

func (c *Client) url(q Query) (*url.URL, error) {
	addr, err := url.Parse(c.URL)
	if err != nil {
		return nil, fmt.Errorf("bad api url %q: %w", c.URL, err)
	}
	vals := addr.Query()
	for k, vs := range q.build() {
		vals[k] = vs
	}
	if c.APIKey != "" {
		vals.Set(apiKeyParam, c.APIKey)
	}
	addr.RawQuery = vals.Encode()
	return addr, nil
}

func (q *Query) build() url.Values {
	vals := make(url.Values)
	vals.Add("formatted", "0")
	vals.Add("date", string(q.Date))
	vals.Add("timezone", "auto")
	vals.Add("location", q.Location)
	return vals
}
