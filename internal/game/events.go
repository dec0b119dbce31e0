package game

// EventKind identifies a notification for the audio collaborator.
type EventKind int

const (
	EventTeleport EventKind = iota
	EventCollision
	EventEnemySpawned
	EventEnemyEvaded
)

func (k EventKind) String() string {
	switch k {
	case EventTeleport:
		return "teleport"
	case EventCollision:
		return "collision"
	case EventEnemySpawned:
		return "enemy_spawned"
	case EventEnemyEvaded:
		return "enemy_evaded"
	default:
		return "unknown"
	}
}

// Event is a value copy; sinks may hand it to other goroutines.
type Event struct {
	Kind EventKind
	Lane int // -1 when the event has no lane
}

// EventSink receives fire-and-forget notifications. Emit must not block
// the frame loop and returns nothing.
type EventSink interface {
	Emit(Event)
}

// SinkFunc adapts a function to EventSink.
type SinkFunc func(Event)

// Emit implements EventSink.
func (f SinkFunc) Emit(e Event) { f(e) }

type nopSink struct{}

func (nopSink) Emit(Event) {}

// MultiSink fans one event out to several sinks.
type MultiSink []EventSink

// Emit implements EventSink.
func (m MultiSink) Emit(e Event) {
	for _, s := range m {
		if s != nil {
			s.Emit(e)
		}
	}
}
