// Package auth manages the single demo user session: login against the
// hardcoded credential pair, logout, and an optional persisted session with
// a 7-day expiry.
package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"tablero/internal/models"
	"tablero/internal/storage"
)

// StorageKey is the blob key the persisted session lives under.
const StorageKey = "taskboard_auth"

// The demo account. Intentionally hardcoded and not a security boundary.
const (
	DemoEmail    = "intern@demo.com"
	demoPassword = "intern123"
)

// SessionTTL is how long a persisted session stays valid.
const SessionTTL = 7 * 24 * time.Hour

// ErrInvalidCredentials is returned for every failed login. It deliberately
// does not distinguish a wrong email from a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// sessionRecord is the persisted session blob. Timestamp is milliseconds
// since the epoch.
type sessionRecord struct {
	Email     string `json:"email"`
	Timestamp int64  `json:"timestamp"`
}

// Store holds the current session and its persisted counterpart.
type Store struct {
	storage storage.Store
	current *models.Session
}

// NewStore creates a session store backed by the given blob store.
// Call Init to pick up a persisted session before first use.
func NewStore(s storage.Store) *Store {
	return &Store{storage: s}
}

// Init loads a persisted session if one exists. The record is accepted only
// when it parses, the email matches the demo account, and it is younger than
// SessionTTL; anything else is discarded silently.
func (s *Store) Init() {
	blob, ok, err := s.storage.Get(StorageKey)
	if err != nil {
		slog.Warn("failed to read persisted session", "error", err)
		return
	}
	if !ok {
		return
	}

	var rec sessionRecord
	if err := json.Unmarshal(blob, &rec); err != nil {
		s.discard()
		return
	}

	age := time.Since(time.UnixMilli(rec.Timestamp))
	if age >= SessionTTL || rec.Email != DemoEmail {
		s.discard()
		return
	}

	s.current = &models.Session{Email: rec.Email}
}

// Login authenticates against the demo credential pair. On success the
// session becomes current and, when remember is set, is persisted with the
// login time. On failure it returns ErrInvalidCredentials.
func (s *Store) Login(email, password string, remember bool) error {
	if email != DemoEmail || password != demoPassword {
		return ErrInvalidCredentials
	}

	s.current = &models.Session{Email: email}

	if remember {
		blob, err := json.Marshal(sessionRecord{
			Email:     email,
			Timestamp: time.Now().UnixMilli(),
		})
		if err != nil {
			return err
		}
		if err := s.storage.Set(StorageKey, blob); err != nil {
			slog.Warn("failed to persist session", "error", err)
		}
	}

	return nil
}

// Logout clears the current session and removes any persisted record.
func (s *Store) Logout() {
	s.current = nil
	s.discard()
}

// Current returns the active session, if any.
func (s *Store) Current() (models.Session, bool) {
	if s.current == nil {
		return models.Session{}, false
	}
	return *s.current, true
}

// LoggedIn reports whether a session is active.
func (s *Store) LoggedIn() bool {
	return s.current != nil
}

func (s *Store) discard() {
	if err := s.storage.Delete(StorageKey); err != nil {
		slog.Warn("failed to remove persisted session", "error", err)
	}
}
