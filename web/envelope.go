// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/danielhkuo/zip-finder/models"
)

// ErrEmptyRecord is returned when a response decodes to a record without a ZIP code.
var ErrEmptyRecord = errors.New("response has no zip_code")

// EnvelopeKind tells which response shape a lookup body used.
type EnvelopeKind int

const (
	// EnvelopeBare is a flat record: {"zip_code": ..., "state": ..., "msa": ...}
	EnvelopeBare EnvelopeKind = iota + 1
	// EnvelopeWrapped is the older shape: {"result": {...}}
	EnvelopeWrapped
)

func (k EnvelopeKind) String() string {
	switch k {
	case EnvelopeBare:
		return "bare"
	case EnvelopeWrapped:
		return "wrapped"
	default:
		return "unknown"
	}
}

// Envelope is a decoded lookup response.
type Envelope struct {
	Kind   EnvelopeKind
	Record models.ZipRecord
}

// DecodeEnvelope decodes a successful lookup body. A non-null "result" key
// selects the wrapped shape; anything else is read as a bare record.
func DecodeEnvelope(body []byte) (Envelope, error) {
	var head struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &head); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}

	kind, payload := EnvelopeBare, body
	if len(head.Result) > 0 && !bytes.Equal(head.Result, []byte("null")) {
		kind, payload = EnvelopeWrapped, head.Result
	}

	var rec models.ZipRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return Envelope{}, fmt.Errorf("decode %s record: %w", kind, err)
	}
	if rec.ZipCode == "" {
		return Envelope{}, ErrEmptyRecord
	}

	return Envelope{Kind: kind, Record: rec}, nil
}
