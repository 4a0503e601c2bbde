// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/danielhkuo/zip-finder/models"
)

// TransportError is a network or decoding failure on the UI side.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "lookup transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError is a non-success response from the lookup API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("lookup returned status %d", e.StatusCode)
}

// Client calls the lookup API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a lookup API client rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Lookup fetches the record for zip. The value is sent as typed.
func (c *Client) Lookup(ctx context.Context, zip string) (models.ZipRecord, error) {
	u := c.baseURL + "/api/search?" + url.Values{"zip": {zip}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.ZipRecord{}, &TransportError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.ZipRecord{}, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return models.ZipRecord{}, &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.ZipRecord{}, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	env, err := DecodeEnvelope(body)
	if err != nil {
		return models.ZipRecord{}, &TransportError{Err: err}
	}

	return env.Record, nil
}
