// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/zip-finder/models"
)

func newAPI(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()
	var gotZip string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/search" {
			http.NotFound(w, r)
			return
		}
		gotZip = r.URL.Query().Get("zip")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &gotZip
}

func TestClientLookup_Bare(t *testing.T) {
	srv, gotZip := newAPI(t, http.StatusOK, `{"zip_code":"10001","state":"NY","msa":"New York-Newark-Jersey City"}`)

	rec, err := NewClient(srv.URL+"/", time.Second).Lookup(context.Background(), "10001")
	require.NoError(t, err)

	assert.Equal(t, "10001", *gotZip)
	assert.Equal(t, "NY", rec.State)
	assert.Equal(t, "New York-Newark-Jersey City", rec.MSA)
}

func TestClientLookup_Wrapped(t *testing.T) {
	legacy, err := json.Marshal(models.WrappedRecord{Result: &models.ZipRecord{
		ZipCode: "94105", State: "CA", MSA: "San Francisco-Oakland-Berkeley",
	}})
	require.NoError(t, err)
	srv, _ := newAPI(t, http.StatusOK, string(legacy))

	rec, err := NewClient(srv.URL, time.Second).Lookup(context.Background(), "94105")
	require.NoError(t, err)
	assert.Equal(t, "San Francisco-Oakland-Berkeley", rec.MSA)
}

func TestClientLookup_EscapesInput(t *testing.T) {
	srv, gotZip := newAPI(t, http.StatusNotFound, `{"message":"ZIP not found"}`)

	_, err := NewClient(srv.URL, time.Second).Lookup(context.Background(), "1&x=2")
	require.Error(t, err)
	assert.Equal(t, "1&x=2", *gotZip)
}

func TestClientLookup_StatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"bad request", http.StatusBadRequest, `{"error":"ZIP code missing"}`},
		{"not found", http.StatusNotFound, `{"message":"ZIP not found"}`},
		{"server error", http.StatusInternalServerError, `{"error":"connection refused"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newAPI(t, tt.status, tt.body)

			_, err := NewClient(srv.URL, time.Second).Lookup(context.Background(), "10001")

			var se *StatusError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.status, se.StatusCode)
			assert.Equal(t, tt.body, se.Body)
		})
	}
}

func TestClientLookup_TransportErrors(t *testing.T) {
	t.Run("undecodable body", func(t *testing.T) {
		srv, _ := newAPI(t, http.StatusOK, `<html>oops</html>`)
		_, err := NewClient(srv.URL, time.Second).Lookup(context.Background(), "10001")

		var te *TransportError
		assert.True(t, errors.As(err, &te))
	})

	t.Run("server down", func(t *testing.T) {
		srv, _ := newAPI(t, http.StatusOK, `{}`)
		url := srv.URL
		srv.Close()

		_, err := NewClient(url, time.Second).Lookup(context.Background(), "10001")

		var te *TransportError
		assert.True(t, errors.As(err, &te))
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		_, err := NewClient(srv.URL, 50*time.Millisecond).Lookup(context.Background(), "10001")

		var te *TransportError
		assert.True(t, errors.As(err, &te))
	})
}
