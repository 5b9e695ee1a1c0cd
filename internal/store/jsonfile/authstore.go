// Package jsonfile provides a JSON file-based auth store.
package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/meditrack/meditrack/internal/core/session"
)

// Canonical storage keys. Writes always target these.
const (
	KeyToken = "meditrack_token"
	KeyUser  = "meditrack_user"
)

// Legacy keys from earlier releases, checked as a read fallback only.
var (
	tokenKeys = []string{KeyToken, "token"}
	userKeys  = []string{KeyUser, "user"}
)

// authFile is the root JSON structure stored on disk.
type authFile struct {
	Entries map[string]string `json:"entries"`
}

// AuthStore implements session.Store using a JSON file for persistence.
//
// It never propagates storage or serialization failures: errors are logged
// and the operation degrades to a no-op or zero value.
type AuthStore struct {
	path string
	mu   sync.RWMutex
	log  zerolog.Logger
}

// NewAuthStore creates a new JSON file auth store at the given path.
func NewAuthStore(path string, log zerolog.Logger) *AuthStore {
	return &AuthStore{path: path, log: log}
}

// Token returns the persisted token, or "" if none.
func (s *AuthStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read(tokenKeys)
}

// SaveToken persists the token. An empty token removes the entry.
func (s *AuthStore) SaveToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.write(KeyToken, token)
}

// User returns the persisted user, or nil if none or unparseable.
func (s *AuthStore) User() session.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readUser()
}

// SaveUser persists the user. A nil user removes the entry.
func (s *AuthStore) SaveUser(u session.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u == nil {
		s.write(KeyUser, "")
		return
	}

	data, err := json.Marshal(u)
	if err != nil {
		s.log.Error().Err(err).Msg("serialize user")
		return
	}
	s.write(KeyUser, string(data))
}

// ClearAuth removes both token and user entries.
func (s *AuthStore) ClearAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		s.log.Error().Err(err).Msg("load auth file")
		return
	}

	for _, key := range append(tokenKeys, userKeys...) {
		delete(file.Entries, key)
	}

	if err := s.save(file); err != nil {
		s.log.Error().Err(err).Msg("clear auth")
	}
}

// Snapshot returns the persisted token and user together.
func (s *AuthStore) Snapshot() (string, session.User) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read(tokenKeys), s.readUser()
}

func (s *AuthStore) readUser() session.User {
	raw := s.read(userKeys)
	if raw == "" {
		return nil
	}

	var u session.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.log.Error().Err(err).Msg("parse stored user")
		return nil
	}
	return u
}

// read returns the first non-empty value among keys, canonical key first.
func (s *AuthStore) read(keys []string) string {
	file, err := s.load()
	if err != nil {
		s.log.Error().Err(err).Msg("load auth file")
		return ""
	}

	for _, key := range keys {
		if v := file.Entries[key]; v != "" {
			return v
		}
	}
	return ""
}

// write stores value under key, removing the entry when value is empty.
func (s *AuthStore) write(key, value string) {
	file, err := s.load()
	if err != nil {
		s.log.Error().Err(err).Msg("load auth file")
		return
	}

	if value == "" {
		delete(file.Entries, key)
	} else {
		file.Entries[key] = value
	}

	if err := s.save(file); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("write auth entry")
	}
}

// load reads the auth file from disk.
// Returns an empty authFile if the file doesn't exist.
func (s *AuthStore) load() (authFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return authFile{Entries: make(map[string]string)}, nil
		}
		return authFile{}, err
	}

	if len(data) == 0 {
		return authFile{Entries: make(map[string]string)}, nil
	}

	var file authFile
	if err := json.Unmarshal(data, &file); err != nil {
		return authFile{}, err
	}

	if file.Entries == nil {
		file.Entries = make(map[string]string)
	}

	return file, nil
}

// save writes the auth file to disk atomically.
// Uses write-to-temp-then-rename to prevent corruption from interrupted writes.
func (s *AuthStore) save(file authFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp) // best effort cleanup
		return err
	}

	return nil
}
