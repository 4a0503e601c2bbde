// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/danielhkuo/zip-finder/models"
)

// ErrNotFound is returned when no row matches the requested ZIP code.
var ErrNotFound = errors.New("zip not found")

// ZipStore looks up reference records by ZIP code.
type ZipStore interface {
	// FindByZip returns the first record whose zip_code equals zip exactly.
	FindByZip(ctx context.Context, zip string) (models.ZipRecord, error)
}

// QueryError reports a failure to execute a lookup against the store.
// Its message is the underlying driver or API message.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string {
	return e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
