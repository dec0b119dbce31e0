package game

// Store keys.
const (
	KeyHighScore   = "high_score"
	KeyTotalEvaded = "total_evaded"
)

// Store is the durable key/value contract the score tracker writes through.
// GetInt returns def when the key was never written. Flush blocks until every
// write so far is durable.
//
// MaxInt and AddInt are atomic read-modify-writes: sessions sharing a store
// never lose each other's updates, and backends apply them to the durable
// value on Flush rather than overwriting it.
type Store interface {
	GetInt(key string, def int) int
	PutInt(key string, value int)
	MaxInt(key string, value int) int
	AddInt(key string, delta int) int
	Flush() error
}

// memoryStore keeps values for the life of the process.
type memoryStore map[string]int

func (m memoryStore) GetInt(key string, def int) int {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

func (m memoryStore) PutInt(key string, value int) { m[key] = value }

func (m memoryStore) MaxInt(key string, value int) int {
	if v, ok := m[key]; !ok || value > v {
		m[key] = value
	}
	return m[key]
}

func (m memoryStore) AddInt(key string, delta int) int {
	m[key] += delta
	return m[key]
}

func (m memoryStore) Flush() error { return nil }

// FinalScore summarizes a finished session.
type FinalScore struct {
	Score   int
	High    int
	Total   int
	NewHigh bool
}

// ScoreTracker owns the session score and the persisted high score.
type ScoreTracker struct {
	store     Store
	current   int
	high      int
	total     int
	finalized bool
}

// NewScoreTracker loads the high score and lifetime total from store.
// A nil store keeps scores in memory only.
func NewScoreTracker(store Store) *ScoreTracker {
	if store == nil {
		store = memoryStore{}
	}
	t := &ScoreTracker{store: store}
	t.load()
	return t
}

func (t *ScoreTracker) load() {
	t.high = max(t.store.GetInt(KeyHighScore, 0), 0)
	t.total = max(t.store.GetInt(KeyTotalEvaded, 0), 0)
}

// Current returns the session score.
func (t *ScoreTracker) Current() int { return t.current }

// High returns the best score seen.
func (t *ScoreTracker) High() int { return t.high }

// Total returns the lifetime number of evaded enemies.
func (t *ScoreTracker) Total() int { return t.total }

// Reset starts a new session. The persisted values are re-read so sessions
// sharing one store see each other's results.
func (t *ScoreTracker) Reset() {
	t.current = 0
	t.finalized = false
	high := t.high
	t.load()
	t.high = max(t.high, high)
}

// Evade counts one enemy that left the field. Ignored after Finalize.
func (t *ScoreTracker) Evade() {
	if t.finalized {
		return
	}
	t.current++
}

// Finalize records the session result: the lifetime total always grows by
// the session score and the high score is raised when beaten. Both are
// flushed before returning. Calling it again before Reset is a no-op.
func (t *ScoreTracker) Finalize() (FinalScore, error) {
	if t.finalized {
		return FinalScore{Score: t.current, High: t.high, Total: t.total}, nil
	}
	t.finalized = true

	prev := t.high
	t.total = max(t.store.AddInt(KeyTotalEvaded, t.current), 0)
	t.high = max(t.store.MaxInt(KeyHighScore, t.current), prev)

	res := FinalScore{
		Score:   t.current,
		High:    t.high,
		Total:   t.total,
		NewHigh: t.current > prev && t.high == t.current,
	}
	return res, t.store.Flush()
}
