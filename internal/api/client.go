// internal/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is the only component that talks to the backend. Everything else
// goes through the typed resource clients built on top of it.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError carries the backend's error detail for non-2xx responses.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
}

// do issues one request. A bearer header is attached when token is non-empty.
// GETs are retried once on transport failure; mutations never are.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body, out any) error {
	err := c.doOnce(ctx, method, path, query, token, body, out)
	if err == nil {
		return nil
	}
	if _, isAPIErr := err.(*APIError); !isAPIErr && method == http.MethodGet {
		// single retry for reads, matching the old client's retry: 1 policy
		return c.doOnce(ctx, method, path, query, token, body, out)
	}
	return err
}

func (c *Client) doOnce(ctx context.Context, method, path string, query url.Values, token string, body, out any) error {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var payload struct {
		Detail string `json:"detail"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Detail != "" {
		apiErr.Detail = payload.Detail
		return apiErr
	}

	if resp.StatusCode >= 500 {
		apiErr.Detail = "something went wrong on the server"
	} else {
		apiErr.Detail = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

func (c *Client) get(ctx context.Context, path string, query url.Values, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, query, token, nil, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, token string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, token, body, out)
}

func (c *Client) put(ctx context.Context, path string, token string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, token, body, out)
}

func (c *Client) delete(ctx context.Context, path string, token string) error {
	return c.do(ctx, http.MethodDelete, path, nil, token, nil, nil)
}

// Detail extracts the user-facing message from an API client error. Transport
// failures get a generic fallback so raw dial errors never reach a page.
func Detail(err error, fallback string) string {
	if apiErr, ok := err.(*APIError); ok && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}

// IsUnauthorized reports whether err is a 401-class backend rejection.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}
