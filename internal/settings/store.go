// Package settings holds the runtime-tunable platform settings. The store is
// process-local and resets to defaults on restart; durable configuration
// belongs in the environment, not here.
package settings

import "sync"

// Store is a mutex-guarded key-value settings map. Handlers that need a
// setting receive the store explicitly; there is no package-level instance.
type Store struct {
	mu     sync.RWMutex
	values map[string]interface{}
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"allow_registration":         true,
		"default_role":               "finance",
		"session_timeout":            30,
		"maintenance_mode":           false,
		"max_login_attempts":         5,
		"lockout_duration":           15,
		"require_email_verification": false,
		"allow_password_reset":       true,
		"api_rate_limit":             100,
		"api_rate_window":            60,
	}
}

// NewStore returns a store populated with the platform defaults.
func NewStore() *Store {
	return &Store{values: defaults()}
}

// Get returns a setting value and whether the key exists.
func (s *Store) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set updates a setting. Unknown keys are rejected so typos do not grow the
// map silently.
func (s *Store) Set(key string, value interface{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; !ok {
		return false
	}
	s.values[key] = value
	return true
}

// Bool reads a boolean setting, returning fallback on absence or wrong type.
func (s *Store) Bool(key string, fallback bool) bool {
	if v, ok := s.Get(key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return fallback
}

// Int reads an integer setting, returning fallback on absence or wrong type.
// JSON round-trips land numbers as float64, so both forms are accepted.
func (s *Store) Int(key string, fallback int) int {
	v, ok := s.Get(key)
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return fallback
}

// String reads a string setting, returning fallback on absence or wrong type.
func (s *Store) String(key, fallback string) string {
	if v, ok := s.Get(key); ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return fallback
}

// Snapshot returns a copy of all current settings.
func (s *Store) Snapshot() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]interface{}, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Reset restores every setting to its default.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = defaults()
}
