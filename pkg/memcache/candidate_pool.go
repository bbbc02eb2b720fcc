package mem

import (
	"sync"
	"time"

	"ildanga/internal/models/db_models"
)

// CandidatePoolStore caches the attraction candidate pool fetched for a
// region, so entering the attraction step loads from upstream exactly once per
// session unless the trip is reset.
type CandidatePoolStore interface {
	Set(key string, items []db_models.Attraction, ttl time.Duration)

	// Get returns the cached pool for key, or false if missing/expired.
	Get(key string) ([]db_models.Attraction, bool)

	Delete(key string)
}

type poolEntry struct {
	items     []db_models.Attraction
	expiresAt time.Time
}

type CandidatePools struct {
	mu   sync.RWMutex
	data map[string]poolEntry
}

func NewCandidatePools() *CandidatePools {
	return &CandidatePools{
		data: make(map[string]poolEntry),
	}
}

// Set stores items under key. A zero ttl means the entry never expires.
func (s *CandidatePools) Set(key string, items []db_models.Attraction, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := poolEntry{items: items}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	s.data[key] = e
}

func (s *CandidatePools) Get(key string) ([]db_models.Attraction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.items, true
}

func (s *CandidatePools) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}
