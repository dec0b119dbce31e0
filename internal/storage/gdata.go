package storage

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/quasilyte/gdata/v2"

	"github.com/vovakirdan/lanehop/internal/game"
)

// gdataObject groups every lanehop counter under one gdata object.
const gdataObject = "scores"

// GdataStore keeps the persisted counters as small files in the user's
// application data directory (for example ~/.local/share/<app> on Linux).
// It has no session history; use Store for the scoreboard.
type GdataStore struct {
	m *gdata.Manager

	mu      sync.Mutex
	values  map[string]int
	pending map[string]pendingOp
}

// OpenGdata opens the data directory for appName.
func OpenGdata(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open gdata for %s: %w", appName, err)
	}
	return &GdataStore{
		m:       m,
		values:  make(map[string]int),
		pending: make(map[string]pendingOp),
	}, nil
}

// GetInt reads key, falling back to def when it is missing or unreadable.
func (s *GdataStore) GetInt(key string, def int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.values[key]; ok {
		return v
	}
	v, ok := s.load(key)
	if !ok {
		return def
	}
	s.values[key] = v
	return v
}

// load reads the durable value of key. Must be called with mu held.
func (s *GdataStore) load(key string) (int, bool) {
	if !s.m.ObjectPropExists(gdataObject, key) {
		return 0, false
	}
	data, err := s.m.LoadObjectProp(gdataObject, key)
	if err != nil {
		return 0, false
	}
	v, err := strconv.Atoi(string(data))
	if err != nil {
		return 0, false
	}
	return v, true
}

// cached returns the in-memory value of key, loading it on first use.
// Must be called with mu held.
func (s *GdataStore) cached(key string) (int, bool) {
	if v, ok := s.values[key]; ok {
		return v, true
	}
	return s.load(key)
}

// PutInt records a value. It becomes durable on the next Flush.
func (s *GdataStore) PutInt(key string, value int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.queue(key, pendingOp{kind: opSet, value: value})
}

// MaxInt raises key to at least value and returns the result.
func (s *GdataStore) MaxInt(key string, value int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.cached(key)
	if !ok || value > v {
		v = value
	}
	s.values[key] = v
	s.queue(key, pendingOp{kind: opMax, value: value})
	return v
}

// AddInt adds delta to key and returns the result.
func (s *GdataStore) AddInt(key string, delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, _ := s.cached(key)
	v += delta
	s.values[key] = v
	s.queue(key, pendingOp{kind: opAdd, value: delta})
	return v
}

func (s *GdataStore) queue(key string, op pendingOp) {
	prev, ok := s.pending[key]
	s.pending[key] = mergeOp(prev, ok, op, s.values[key])
}

// Flush writes pending values. Max and add operations are applied to the
// value currently on disk. Values that failed stay pending.
func (s *GdataStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, op := range s.pending {
		durable, _ := s.load(key)
		v := op.apply(durable)
		if err := s.m.SaveObjectProp(gdataObject, key, []byte(strconv.Itoa(v))); err != nil {
			return fmt.Errorf("storage: cannot save %s: %w", key, err)
		}
		s.values[key] = v
		delete(s.pending, key)
	}
	return nil
}

var _ game.Store = (*GdataStore)(nil)
