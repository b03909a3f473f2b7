package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/futig/babyname/internal/config"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Store keeps session states in process memory until they expire
type Store struct {
	cache *cache.Cache
	ttl   time.Duration
	now   func() time.Time

	mu    sync.Mutex
	locks map[string]*sessionLock
}

// sessionLock is dropped from the map once nobody holds or waits for it
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func NewStore(cfg config.SessionConfig) *Store {
	return &Store{
		cache: cache.New(cfg.TTL, cfg.CleanupInterval),
		ttl:   cfg.TTL,
		now:   time.Now,
		locks: make(map[string]*sessionLock),
	}
}

// NewID generates a fresh web session identifier
func NewID() string {
	return uuid.New().String()
}

// TelegramID maps a Telegram user to its session key
func TelegramID(userID int64) string {
	return fmt.Sprintf("tg:%d", userID)
}

// Get returns a copy of the stored state, or an empty state for unknown ids
func (s *Store) Get(id string) *State {
	if v, ok := s.cache.Get(id); ok {
		if st, ok := v.(*State); ok {
			return st.Clone()
		}
	}
	return &State{ID: id}
}

// Save stores a copy of the state and refreshes its expiration
func (s *Store) Save(st *State) {
	c := st.Clone()
	c.UpdatedAt = s.now()
	s.cache.Set(c.ID, c, s.ttl)
}

// Delete drops the state for the id
func (s *Store) Delete(id string) {
	s.cache.Delete(id)
}

// Lock serializes interactions of one session. Hold it from Get to Save
// and call the returned func to release it.
func (s *Store) Lock(id string) (unlock func()) {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sessionLock{}
		s.locks[id] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
		s.mu.Unlock()
	}
}

// Count returns the number of live sessions
func (s *Store) Count() int {
	return s.cache.ItemCount()
}
