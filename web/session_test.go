// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/zip-finder/models"
)

var newYork = models.ZipRecord{ZipCode: "10001", State: "NY", MSA: "New York-Newark-Jersey City"}

// fakeLooker answers from a map and counts calls
type fakeLooker struct {
	mu      sync.Mutex
	records map[string]models.ZipRecord
	err     error
	calls   []string
}

func (f *fakeLooker) Lookup(_ context.Context, zip string) (models.ZipRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, zip)
	if f.err != nil {
		return models.ZipRecord{}, f.err
	}
	rec, ok := f.records[zip]
	if !ok {
		return models.ZipRecord{}, &StatusError{StatusCode: 404}
	}
	return rec, nil
}

func TestSession_Success(t *testing.T) {
	looker := &fakeLooker{records: map[string]models.ZipRecord{"10001": newYork}}
	s := NewSession(looker)

	require.NoError(t, s.Search(context.Background(), "10001"))

	snap := s.Snapshot()
	assert.Equal(t, StateSuccess, snap.State)
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Error)
	require.NotNil(t, snap.Result)
	assert.Equal(t, newYork, *snap.Result)
}

func TestSession_NotFound(t *testing.T) {
	looker := &fakeLooker{}
	s := NewSession(looker)

	err := s.Search(context.Background(), "00000")

	var se *StatusError
	require.True(t, errors.As(err, &se))
	snap := s.Snapshot()
	assert.Equal(t, StateError, snap.State)
	assert.Equal(t, MsgNotInDB, snap.Error)
	assert.Nil(t, snap.Result)
	assert.False(t, snap.Loading)
}

func TestSession_AllFailuresShareOneMessage(t *testing.T) {
	failures := []error{
		&StatusError{StatusCode: 400},
		&StatusError{StatusCode: 404},
		&StatusError{StatusCode: 500},
		&TransportError{Err: errors.New("connection refused")},
		&TransportError{Err: ErrEmptyRecord},
	}

	for _, failure := range failures {
		s := NewSession(&fakeLooker{err: failure})
		assert.ErrorIs(t, s.Search(context.Background(), "10001"), failure)
		assert.Equal(t, MsgNotInDB, s.Snapshot().Error)
	}
}

func TestSession_BlankInputSkipsLookup(t *testing.T) {
	for _, input := range []string{"", " ", "   ", "\t"} {
		looker := &fakeLooker{records: map[string]models.ZipRecord{"10001": newYork}}
		s := NewSession(looker)

		err := s.Search(context.Background(), input)

		assert.ErrorIs(t, err, ErrEmptyInput)
		assert.Empty(t, looker.calls, "input %q should not reach the service", input)
		assert.Equal(t, MsgEnterZip, s.Snapshot().Error)
		assert.Equal(t, StateError, s.Snapshot().State)
	}
}

func TestSession_ResetsBetweenSearches(t *testing.T) {
	looker := &fakeLooker{records: map[string]models.ZipRecord{"10001": newYork}}
	s := NewSession(looker)
	ctx := context.Background()

	require.NoError(t, s.Search(ctx, "10001"))
	require.NotNil(t, s.Snapshot().Result)

	// success -> error clears the result
	require.Error(t, s.Search(ctx, "00000"))
	assert.Nil(t, s.Snapshot().Result)
	assert.Equal(t, MsgNotInDB, s.Snapshot().Error)

	// error -> success clears the error
	require.NoError(t, s.Search(ctx, "10001"))
	assert.Empty(t, s.Snapshot().Error)
	assert.NotNil(t, s.Snapshot().Result)

	// success -> validation error clears the result too
	require.ErrorIs(t, s.Search(ctx, " "), ErrEmptyInput)
	assert.Nil(t, s.Snapshot().Result)
	assert.Equal(t, MsgEnterZip, s.Snapshot().Error)
}

func TestSession_SendsUntrimmedInput(t *testing.T) {
	looker := &fakeLooker{}
	s := NewSession(looker)

	s.Search(context.Background(), " 1001")
	s.Search(context.Background(), "abc")

	assert.Equal(t, []string{" 1001", "abc"}, looker.calls)
}

func TestSession_ClampsInput(t *testing.T) {
	looker := &fakeLooker{records: map[string]models.ZipRecord{"10001": newYork}}
	s := NewSession(looker)

	require.NoError(t, s.Search(context.Background(), "100019999"))
	assert.Equal(t, []string{"10001"}, looker.calls)
	assert.Equal(t, "10001", s.Snapshot().ZipCode)

	// Clamping counts characters, not bytes
	require.Error(t, s.Search(context.Background(), "ñandú-x"))
	assert.Equal(t, []string{"10001", "ñandú"}, looker.calls)
	assert.Equal(t, "ñandú", s.Snapshot().ZipCode)
}

// blockingLooker holds the lookup open until released
type blockingLooker struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingLooker) Lookup(ctx context.Context, zip string) (models.ZipRecord, error) {
	close(b.started)
	<-b.release
	return newYork, nil
}

func TestSession_RefusesConcurrentSearch(t *testing.T) {
	looker := &blockingLooker{started: make(chan struct{}), release: make(chan struct{})}
	s := NewSession(looker)

	done := make(chan error, 1)
	go func() {
		done <- s.Search(context.Background(), "10001")
	}()
	<-looker.started

	snap := s.Snapshot()
	assert.Equal(t, StateLoading, snap.State)
	assert.True(t, snap.Loading)
	assert.Nil(t, snap.Result)

	assert.ErrorIs(t, s.Search(context.Background(), "94105"), ErrSearchInProgress)

	close(looker.release)
	require.NoError(t, <-done)

	snap = s.Snapshot()
	assert.Equal(t, StateSuccess, snap.State)
	assert.Equal(t, newYork, *snap.Result)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "validating", StateValidating.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "success", StateSuccess.String())
	assert.Equal(t, "error", StateError.String())
	assert.Equal(t, "unknown", State(42).String())
}
