// Package lists keeps each signed-in user's played/queued/wishlist
// membership in memory, synchronized with the persisted per-user document.
// Membership queries are answered synchronously from the in-memory copy;
// every mutation goes to the document store and is followed by a full
// re-fetch, never a local patch, so the served state cannot drift from the
// source of truth.
package lists

import (
	"context"
	"sync"
	"time"

	"videogamehub/backend/internal/session"

	"github.com/rs/zerolog"
)

// SyncState describes how trustworthy a user's in-memory snapshot is.
type SyncState int

const (
	// StateEmpty means no data because the user is signed out (or was
	// never seen). Distinct from a failed fetch.
	StateEmpty SyncState = iota
	// StateReady means the snapshot reflects the last successful sync.
	StateReady
	// StateStale means the last sync failed; the snapshot still holds the
	// last good data and Err carries the failure.
	StateStale
)

func (s SyncState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateStale:
		return "stale"
	default:
		return "empty"
	}
}

// Snapshot is a copy of one user's list state plus its sync status.
type Snapshot struct {
	State SyncState
	Err   error
	Sets  map[Label]map[int64]struct{}
}

func emptySets() map[Label]map[int64]struct{} {
	sets := make(map[Label]map[int64]struct{}, len(Labels))
	for _, l := range Labels {
		sets[l] = make(map[int64]struct{})
	}
	return sets
}

const syncTimeout = 10 * time.Second

// Store owns the in-memory list state for every signed-in user.
type Store struct {
	docs   DocumentStore
	logger zerolog.Logger

	mu    sync.RWMutex
	users map[uint]*Snapshot

	unsubscribe func()
}

func NewStore(docs DocumentStore, logger zerolog.Logger) *Store {
	return &Store{
		docs:   docs,
		logger: logger.With().Str("component", "lists").Logger(),
		users:  make(map[uint]*Snapshot),
	}
}

// Bind subscribes the store to session transitions: sign-in triggers an
// eager sync, sign-out resets the user's state to empty. Call Close to
// unsubscribe.
func (s *Store) Bind(reg *session.Registry) {
	s.unsubscribe = reg.Subscribe(func(p session.Principal, signedIn bool) {
		if !signedIn {
			s.drop(p.UserID)
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()
		if err := s.Refresh(ctx, p.UserID); err != nil {
			s.logger.Warn().Err(err).Uint("user_id", p.UserID).Msg("initial list sync failed")
		}
	})
}

// Close detaches the store from the session registry.
func (s *Store) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// IsInList reports membership from the in-memory state only. It never
// touches the network and returns false for signed-out users.
func (s *Store) IsInList(userID uint, label Label, gameID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.users[userID]
	if !ok {
		return false
	}
	_, in := snap.Sets[label][gameID]
	return in
}

// Snapshot returns a copy of the user's current state. Signed-out users get
// an empty snapshot.
func (s *Store) Snapshot(userID uint) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.users[userID]
	if !ok {
		return Snapshot{State: StateEmpty, Sets: emptySets()}
	}
	out := Snapshot{State: snap.State, Err: snap.Err, Sets: emptySets()}
	for label, ids := range snap.Sets {
		for id := range ids {
			out.Sets[label][id] = struct{}{}
		}
	}
	return out
}

// AddToList appends the id to the label's set in the remote document and
// re-syncs. Signed-out users are a completed no-op. Re-adding a present id
// is idempotent.
func (s *Store) AddToList(ctx context.Context, userID uint, label Label, gameID int64) error {
	if !s.signedIn(userID) {
		return nil
	}
	if err := s.docs.Add(ctx, userID, label, gameID); err != nil {
		s.logger.Error().Err(err).Uint("user_id", userID).Str("label", string(label)).Int64("game_id", gameID).Msg("list add failed")
		return err
	}
	return s.Refresh(ctx, userID)
}

// RemoveFromList deletes the id from the label's set and re-syncs.
// Signed-out users are a completed no-op.
func (s *Store) RemoveFromList(ctx context.Context, userID uint, label Label, gameID int64) error {
	if !s.signedIn(userID) {
		return nil
	}
	if err := s.docs.Remove(ctx, userID, label, gameID); err != nil {
		s.logger.Error().Err(err).Uint("user_id", userID).Str("label", string(label)).Int64("game_id", gameID).Msg("list remove failed")
		return err
	}
	return s.Refresh(ctx, userID)
}

// Refresh replaces the user's in-memory state wholesale with the remote
// document. On failure the last good state is kept and marked stale; the
// error is both stored on the snapshot and returned.
func (s *Store) Refresh(ctx context.Context, userID uint) error {
	doc, err := s.docs.Fetch(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.users[userID]
	if !ok {
		snap = &Snapshot{State: StateEmpty, Sets: emptySets()}
		s.users[userID] = snap
	}

	if err != nil {
		snap.State = StateStale
		snap.Err = err
		s.logger.Warn().Err(err).Uint("user_id", userID).Msg("list sync failed, serving stale state")
		return err
	}

	sets := emptySets()
	for _, label := range Labels {
		for _, id := range doc.Field(label) {
			sets[label][id] = struct{}{}
		}
	}
	snap.Sets = sets
	snap.State = StateReady
	snap.Err = nil
	return nil
}

func (s *Store) signedIn(userID uint) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[userID]
	return ok
}

func (s *Store) drop(userID uint) {
	s.mu.Lock()
	delete(s.users, userID)
	s.mu.Unlock()
}
