package settings

import (
	"sync"
	"testing"
)

func TestStoreDefaults(t *testing.T) {
	s := NewStore()
	if !s.Bool("allow_registration", false) {
		t.Error("allow_registration should default to true")
	}
	if got := s.String("default_role", ""); got != "finance" {
		t.Errorf("default_role = %q, want finance", got)
	}
	if got := s.Int("max_login_attempts", 0); got != 5 {
		t.Errorf("max_login_attempts = %d, want 5", got)
	}
}

func TestStoreSetRejectsUnknownKeys(t *testing.T) {
	s := NewStore()
	if s.Set("no_such_setting", 1) {
		t.Error("Set accepted an unknown key")
	}
	if !s.Set("maintenance_mode", true) {
		t.Error("Set rejected a known key")
	}
	if !s.Bool("maintenance_mode", false) {
		t.Error("maintenance_mode did not stick")
	}
}

func TestStoreIntAcceptsJSONNumbers(t *testing.T) {
	s := NewStore()
	s.Set("session_timeout", float64(45))
	if got := s.Int("session_timeout", 0); got != 45 {
		t.Errorf("session_timeout = %d, want 45", got)
	}
}

func TestStoreReset(t *testing.T) {
	s := NewStore()
	s.Set("api_rate_limit", 999)
	s.Reset()
	if got := s.Int("api_rate_limit", 0); got != 100 {
		t.Errorf("api_rate_limit after Reset = %d, want 100", got)
	}
}

func TestStoreSnapshotIsCopy(t *testing.T) {
	s := NewStore()
	snap := s.Snapshot()
	snap["maintenance_mode"] = true
	if s.Bool("maintenance_mode", false) {
		t.Error("mutating a snapshot leaked into the store")
	}
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			s.Set("api_rate_limit", n)
		}(i)
		go func() {
			defer wg.Done()
			s.Int("api_rate_limit", 0)
		}()
	}
	wg.Wait()
}
