// Package store holds the live view of one match and keeps it current from
// two channels: explicit pulls over the REST API and pushes from the event
// feed. The displayed state is always a server-accepted snapshot; nothing
// here predicts or mutates locally.
package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/Atharve03/pitchside/internal/models"
)

// ErrSuperseded reports that a Load finished after a newer Load had already
// been issued; its result was discarded.
var ErrSuperseded = errors.New("load superseded")

// Source pulls snapshots, typically the REST API.
type Source interface {
	LiveSnapshot(ctx context.Context, matchID string) (*models.LiveSnapshot, error)
}

// Channel is the push-channel capability the store owns subscriptions on.
type Channel interface {
	Join(matchID string) error
	Leave(matchID string) error
}

// Store is the live match snapshot store. Safe for concurrent use.
type Store struct {
	source  Source
	channel Channel

	mu       sync.RWMutex
	snap     *models.LiveSnapshot
	matchID  string
	gen      uint64
	watchers map[int]chan struct{}
	nextID   int
}

func New(source Source, channel Channel) *Store {
	return &Store{
		source:   source,
		channel:  channel,
		watchers: make(map[int]chan struct{}),
	}
}

// Load pulls the current snapshot for matchID, replaces the held one and
// subscribes the push channel to that match. If another Load starts before
// this one resolves, the late result is discarded and ErrSuperseded
// returned, so a view that navigated away never sees a stale pull land.
func (s *Store) Load(ctx context.Context, matchID string) (*models.LiveSnapshot, error) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	snap, err := s.source.LiveSnapshot(ctx, matchID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return nil, ErrSuperseded
	}
	if !s.admitLocked(snap) {
		s.mu.Unlock()
		return s.Snapshot(), nil
	}
	s.snap = snap
	s.matchID = matchID
	s.mu.Unlock()

	if err := s.channel.Join(matchID); err != nil {
		slog.Error("Failed to join match feed", "match", matchID, "error", err)
	}

	s.notify()
	return snap, nil
}

// Refresh re-pulls the currently held match. Used after a scoring mutation
// so the display reflects server-accepted history.
func (s *Store) Refresh(ctx context.Context) (*models.LiveSnapshot, error) {
	s.mu.RLock()
	matchID := s.matchID
	s.mu.RUnlock()

	if matchID == "" {
		return nil, errors.New("no match loaded")
	}
	return s.Load(ctx, matchID)
}

// ApplyPush folds a pushed snapshot in. Pushes for a different match than
// the held one are ignored, as are snapshots that do not advance the
// revision. Reports whether the held snapshot changed.
func (s *Store) ApplyPush(snap *models.LiveSnapshot) bool {
	if snap == nil || snap.MatchID() == "" {
		return false
	}

	s.mu.Lock()
	if s.matchID == "" || snap.MatchID() != s.matchID {
		s.mu.Unlock()
		return false
	}
	if !s.admitLocked(snap) {
		s.mu.Unlock()
		return false
	}
	s.snap = snap
	s.mu.Unlock()

	s.notify()
	return true
}

// admitLocked applies the revision guard: when both the held and incoming
// snapshots carry server revisions for the same match, only a strictly
// newer one replaces. Backends that predate sequencing send zero and are
// always admitted.
func (s *Store) admitLocked(snap *models.LiveSnapshot) bool {
	if s.snap == nil || s.snap.MatchID() != snap.MatchID() {
		return true
	}
	if s.snap.Revision == 0 || snap.Revision == 0 {
		return true
	}
	return snap.Revision > s.snap.Revision
}

// Snapshot returns the held snapshot, nil before the first Load.
func (s *Store) Snapshot() *models.LiveSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// MatchID returns the identity of the held match, empty before Load.
func (s *Store) MatchID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.matchID
}

// Watch returns a channel that receives a tick whenever the held snapshot
// changes, and a cancel func that must be called on teardown.
func (s *Store) Watch() (<-chan struct{}, func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	ch := make(chan struct{}, 1)
	s.watchers[id] = ch
	s.mu.Unlock()

	return ch, func() {
		s.mu.Lock()
		delete(s.watchers, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Close releases the push subscription and clears the held snapshot so a
// torn-down view never reacts to late pushes.
func (s *Store) Close() {
	s.mu.Lock()
	matchID := s.matchID
	s.matchID = ""
	s.snap = nil
	s.gen++
	s.watchers = make(map[int]chan struct{})
	s.mu.Unlock()

	if matchID != "" {
		if err := s.channel.Leave(matchID); err != nil {
			slog.Error("Failed to leave match feed", "match", matchID, "error", err)
		}
	}
}
