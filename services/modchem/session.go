package modchem

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"modchem-backend/internal/chrono"
	"modchem-backend/lib/chem"

	"github.com/mazen160/go-random"
)

var ErrUnknownSession = errors.New("unknown session")

const tokenLength = 24

// State is what the page shows for a session.
type State struct {
	Counts    map[string]int `json:"counts"`
	Mode      chem.Mode      `json:"mode"`
	ModeLabel string         `json:"mode_label"`
	Formula   chem.Formula   `json:"formula"`
}

// Session is the click and mode state of one visitor.
type Session struct {
	ID string

	lock     sync.Mutex
	tally    *chem.Tally
	modes    *chem.ModeSelector
	lastMode int64
	lastSeen time.Time
}

func (s *Session) stateLocked() State {
	mode := s.modes.Current()
	return State{
		Counts:    s.tally.Snapshot(),
		Mode:      mode,
		ModeLabel: mode.Label(),
		Formula:   chem.Build(s.tally, mode),
	}
}

func (s *Session) State() State {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.stateLocked()
}

func (s *Session) Click(id string) (State, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	err := s.tally.Click(id)
	if err != nil {
		return State{}, err
	}
	return s.stateLocked(), nil
}

// PressMode stamps a mode button. Stamps are strictly increasing within a
// session so two presses in the same millisecond still order correctly.
func (s *Session) PressMode(mode chem.Mode, now time.Time) (State, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	ts := max(now.UnixMilli(), s.lastMode+1)
	err := s.modes.Press(mode, ts)
	if err != nil {
		return State{}, err
	}
	s.lastMode = ts
	return s.stateLocked(), nil
}

// Reset zeroes the clicks, the mode stays as it is.
func (s *Session) Reset() State {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.tally.Reset()
	return s.stateLocked()
}

type SessionStore struct {
	time chrono.TimeAPI
	ttl  time.Duration

	lock     sync.Mutex
	sessions map[string]*Session
}

func NewSessionStore(time chrono.TimeAPI, ttl time.Duration) *SessionStore {
	return &SessionStore{
		time:     time,
		ttl:      ttl,
		sessions: map[string]*Session{},
	}
}

// Create starts a fresh session with organic selected and nothing clicked.
func (s *SessionStore) Create() (*Session, error) {
	id, err := random.String(tokenLength)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}
	session := &Session{
		ID:       id,
		tally:    chem.NewTally(),
		modes:    chem.NewModeSelector(),
		lastMode: 1,
		lastSeen: s.time.Now(),
	}

	s.lock.Lock()
	s.sessions[id] = session
	s.lock.Unlock()
	return session, nil
}

// Get returns a live session and marks it as seen.
func (s *SessionStore) Get(id string) (*Session, error) {
	now := s.time.Now()

	s.lock.Lock()
	defer s.lock.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrUnknownSession
	}
	if s.expired(session, now) {
		delete(s.sessions, id)
		return nil, ErrUnknownSession
	}
	session.lastSeen = now
	return session, nil
}

func (s *SessionStore) expired(session *Session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(session.lastSeen) > s.ttl
}

func (s *SessionStore) Len() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.sessions)
}

// Sweep drops every idle session and returns how many were dropped.
func (s *SessionStore) Sweep() int {
	now := s.time.Now()

	s.lock.Lock()
	defer s.lock.Unlock()
	dropped := 0
	for id, session := range s.sessions {
		if s.expired(session, now) {
			delete(s.sessions, id)
			dropped++
		}
	}
	return dropped
}

// Run sweeps idle sessions every interval until ctx is done.
func (s *SessionStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			dropped := s.Sweep()
			if dropped > 0 {
				slog.DebugContext(ctx, "swept idle sessions", "count", dropped)
			}
		}
	}
}
