// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/danielhkuo/zip-finder/models"
)

// PostgRESTStore reads the reference table through a hosted PostgREST
// endpoint (for example a Supabase project URL and its anon key).
type PostgRESTStore struct {
	baseURL    string
	key        string
	table      string
	httpClient *http.Client
}

// NewPostgRESTStore creates a REST-backed store. baseURL is the project
// URL without the /rest/v1 suffix.
func NewPostgRESTStore(baseURL, key, table string, timeout time.Duration) *PostgRESTStore {
	return &PostgRESTStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		table:   table,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// postgrestError is the error body PostgREST returns on failure.
type postgrestError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// FindByZip implements ZipStore.
func (s *PostgRESTStore) FindByZip(ctx context.Context, zip string) (models.ZipRecord, error) {
	params := url.Values{
		"select":   {"zip_code,state,msa"},
		"zip_code": {"eq." + zip},
		"limit":    {"1"},
	}
	u := fmt.Sprintf("%s/rest/v1/%s?%s", s.baseURL, url.PathEscape(s.table), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.ZipRecord{}, &QueryError{Err: err}
	}
	req.Header.Set("apikey", s.key)
	req.Header.Set("Authorization", "Bearer "+s.key)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return models.ZipRecord{}, &QueryError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return models.ZipRecord{}, &QueryError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr postgrestError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return models.ZipRecord{}, &QueryError{Err: errors.New(apiErr.Message)}
		}
		return models.ZipRecord{}, &QueryError{Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var rows []models.ZipRecord
	if err := json.Unmarshal(body, &rows); err != nil {
		return models.ZipRecord{}, &QueryError{Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(rows) == 0 {
		return models.ZipRecord{}, ErrNotFound
	}

	return rows[0], nil
}
