// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/danielhkuo/zip-finder/models"
)

// User-facing messages
const (
	MsgEnterZip    = "Please enter a ZIP code"
	MsgNotInDB     = "ZIP not found in database."
	LabelSearch    = "Search"
	LabelSearching = "Searching..."
)

var (
	// ErrEmptyInput is returned when a search is triggered with blank input.
	ErrEmptyInput = errors.New("zip input is empty")
	// ErrSearchInProgress is returned when a search is triggered while one is loading.
	ErrSearchInProgress = errors.New("search already in progress")
)

// State is a step of the search state machine.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Looker fetches a reference record by ZIP code.
type Looker interface {
	Lookup(ctx context.Context, zip string) (models.ZipRecord, error)
}

// Snapshot is a copy of the session state for rendering.
type Snapshot struct {
	State   State
	ZipCode string
	Result  *models.ZipRecord
	Error   string
	Loading bool
}

// Session holds the transient state of one search form. At most one
// lookup is in flight per session.
type Session struct {
	lookup Looker

	mu      sync.Mutex
	state   State
	zipCode string
	result  *models.ZipRecord
	errMsg  string
	loading bool
}

func NewSession(lookup Looker) *Session {
	return &Session{lookup: lookup}
}

// Search runs one pass of the state machine for input. Result and error
// are always cleared first. The returned error is the cause of a failed
// search; the user-facing message is available from Snapshot.
func (s *Session) Search(ctx context.Context, input string) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return ErrSearchInProgress
	}

	s.state = StateValidating
	s.zipCode = clampInput(input)
	s.result = nil
	s.errMsg = ""

	if strings.TrimSpace(s.zipCode) == "" {
		s.state = StateError
		s.errMsg = MsgEnterZip
		s.mu.Unlock()
		return ErrEmptyInput
	}

	s.state = StateLoading
	s.loading = true
	zip := s.zipCode
	s.mu.Unlock()

	rec, err := s.lookup.Lookup(ctx, zip)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	// Every failure collapses to the same message.
	if err != nil {
		s.state = StateError
		s.errMsg = MsgNotInDB
		return err
	}

	s.state = StateSuccess
	s.result = &rec
	return nil
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:   s.state,
		ZipCode: s.zipCode,
		Error:   s.errMsg,
		Loading: s.loading,
	}
	if s.result != nil {
		rec := *s.result
		snap.Result = &rec
	}
	return snap
}

func clampInput(input string) string {
	runes := []rune(input)
	if len(runes) > models.ZipCodeLen {
		return string(runes[:models.ZipCodeLen])
	}
	return input
}
