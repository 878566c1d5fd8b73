package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/accommotrack/client-go/internal/models"
	"github.com/accommotrack/client-go/internal/utils"
)

// Storage keys, fixed by the backend contract with existing clients.
const (
	keyAuthToken   = "auth_token"
	keyUserData    = "userData"
	keyPreferences = "accommo_preferences"
)

// Preferences is the persisted UI preferences blob.
type Preferences struct {
	FontSize string `json:"fontSize"`
	Theme    string `json:"theme"`
}

// Store holds the session-wide mutable state: the auth token, a
// denormalized copy of the current user, and UI preferences. It is the one
// place that touches persisted key-value storage; writes are serialized by
// explicit user actions (login, logout, profile refresh), so last writer
// wins is the intended policy.
type Store struct {
	mu    sync.Mutex
	dir   string
	token string
	user  *models.User
	prefs Preferences
}

// NewStore creates a store rooted at dir. Call Init before first use.
func NewStore(dir string) *Store {
	return &Store{dir: dir, prefs: Preferences{FontSize: "medium", Theme: "light"}}
}

// Init reads persisted values on app boot. Missing keys are not errors;
// a corrupt value is logged and discarded rather than blocking startup.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	if raw, err := os.ReadFile(s.path(keyAuthToken)); err == nil {
		s.token = string(raw)
	}
	if raw, err := os.ReadFile(s.path(keyUserData)); err == nil {
		var u models.User
		if err := json.Unmarshal(raw, &u); err != nil {
			utils.Logger.WithError(err).Warn("discarding corrupt userData")
		} else {
			s.user = &u
		}
	}
	if raw, err := os.ReadFile(s.path(keyPreferences)); err == nil {
		var p Preferences
		if err := json.Unmarshal(raw, &p); err != nil {
			utils.Logger.WithError(err).Warn("discarding corrupt preferences")
		} else {
			s.prefs = p
		}
	}
	return nil
}

// SetSession persists the token and user copy after a successful login.
func (s *Store) SetSession(token string, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = &user

	if err := os.WriteFile(s.path(keyAuthToken), []byte(token), 0o600); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode userData: %w", err)
	}
	if err := os.WriteFile(s.path(keyUserData), raw, 0o600); err != nil {
		return fmt.Errorf("persist userData: %w", err)
	}
	return nil
}

// Token returns the current bearer token, or "" when logged out. Its
// signature matches the api client's TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// SetUser refreshes the persisted user copy after a profile save.
func (s *Store) SetUser(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode userData: %w", err)
	}
	return os.WriteFile(s.path(keyUserData), raw, 0o600)
}

func (s *Store) Preferences() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

func (s *Store) SetPreferences(p Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = p
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	return os.WriteFile(s.path(keyPreferences), raw, 0o600)
}

// TokenExpired inspects the token's exp claim without verifying the
// signature; the backend is the authority, this only pre-empts a doomed
// request. An unparseable token is treated as expired.
func (s *Store) TokenExpired() bool {
	s.mu.Lock()
	tok := s.token
	s.mu.Unlock()
	if tok == "" {
		return true
	}
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tok, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// Logout clears in-memory state and persisted keys. UI preferences
// survive logout.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil

	var errs []error
	for _, key := range []string{keyAuthToken, keyUserData} {
		if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key)
}
