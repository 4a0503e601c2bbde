// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/zip-finder/models"
)

func TestDecodeEnvelope(t *testing.T) {
	sf := models.ZipRecord{ZipCode: "94105", State: "CA", MSA: "San Francisco-Oakland-Berkeley"}

	tests := []struct {
		name string
		body string
		kind EnvelopeKind
	}{
		{
			name: "bare record",
			body: `{"zip_code":"94105","state":"CA","msa":"San Francisco-Oakland-Berkeley"}`,
			kind: EnvelopeBare,
		},
		{
			name: "wrapped record",
			body: `{"result":{"zip_code":"94105","state":"CA","msa":"San Francisco-Oakland-Berkeley"}}`,
			kind: EnvelopeWrapped,
		},
		{
			name: "null result falls back to bare",
			body: `{"result":null,"zip_code":"94105","state":"CA","msa":"San Francisco-Oakland-Berkeley"}`,
			kind: EnvelopeBare,
		},
		{
			name: "extra columns ignored",
			body: `{"id":7,"zip_code":"94105","state":"CA","msa":"San Francisco-Oakland-Berkeley","county":"SF"}`,
			kind: EnvelopeBare,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := DecodeEnvelope([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.kind, env.Kind)
			assert.Equal(t, sf, env.Record)
		})
	}
}

func TestDecodeEnvelope_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>`},
		{"array", `[{"zip_code":"10001"}]`},
		{"result wrong type", `{"result":"10001"}`},
		{"message body", `{"message":"ZIP not found"}`},
		{"empty wrapped", `{"result":{}}`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeEnvelope([]byte(tt.body))
			assert.Error(t, err)
		})
	}

	_, err := DecodeEnvelope([]byte(`{"message":"ZIP not found"}`))
	assert.ErrorIs(t, err, ErrEmptyRecord)
}

func TestEnvelopeKindString(t *testing.T) {
	assert.Equal(t, "bare", EnvelopeBare.String())
	assert.Equal(t, "wrapped", EnvelopeWrapped.String())
	assert.Equal(t, "unknown", EnvelopeKind(0).String())
}
