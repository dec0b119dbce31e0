package game

// Phase is the authoritative game state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Trigger is an input or simulation event that may change the phase.
type Trigger int

const (
	TriggerStart Trigger = iota
	TriggerPause
	TriggerResume
	TriggerContact
	TriggerHome
	TriggerReplay
)

func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "start"
	case TriggerPause:
		return "pause"
	case TriggerResume:
		return "resume"
	case TriggerContact:
		return "contact"
	case TriggerHome:
		return "home"
	case TriggerReplay:
		return "replay"
	default:
		return "unknown"
	}
}

// transitions is the complete table; any pair not listed is rejected.
var transitions = map[Phase]map[Trigger]Phase{
	PhaseMenu: {
		TriggerStart: PhasePlaying,
	},
	PhasePlaying: {
		TriggerPause:   PhasePaused,
		TriggerContact: PhaseGameOver,
	},
	PhasePaused: {
		TriggerResume: PhasePlaying,
	},
	PhaseGameOver: {
		TriggerHome:   PhaseMenu,
		TriggerReplay: PhasePlaying,
	},
}

// Transition records one accepted phase change.
type Transition struct {
	From    Phase
	To      Phase
	Trigger Trigger
}

// Machine holds the current phase and is its only writer.
//
// Changing phase is two-step: Plan validates a trigger against the table,
// the caller runs the transition's effects, then Commit applies it. This lets
// effects such as the high score flush complete before the new phase is
// observable.
type Machine struct {
	phase Phase
}

// NewMachine returns a machine in the Menu phase.
func NewMachine() *Machine {
	return &Machine{phase: PhaseMenu}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Simulating reports whether physics and spawning advance this frame.
func (m *Machine) Simulating() bool {
	return m.phase == PhasePlaying
}

// Plan looks up the transition for trigger from the current phase.
func (m *Machine) Plan(t Trigger) (Transition, bool) {
	to, ok := transitions[m.phase][t]
	if !ok {
		return Transition{}, false
	}
	return Transition{From: m.phase, To: to, Trigger: t}, true
}

// Commit applies a planned transition. A transition planned from a phase
// that is no longer current is dropped.
func (m *Machine) Commit(tr Transition) bool {
	if tr.From != m.phase {
		return false
	}
	m.phase = tr.To
	return true
}

// Fire plans and commits in one call.
func (m *Machine) Fire(t Trigger) (Transition, bool) {
	tr, ok := m.Plan(t)
	if !ok {
		return tr, false
	}
	return tr, m.Commit(tr)
}

// reset forces the machine back to Menu. Only Session.Reset uses it.
func (m *Machine) reset() {
	m.phase = PhaseMenu
}
