package game

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lanehop/internal/config"
	"github.com/vovakirdan/lanehop/internal/core"
)

// Options configures a Session. Store, Events, Hits and Logger are optional.
type Options struct {
	Config  config.GameConfig
	Runtime core.RuntimeConfig
	Store   Store
	Events  EventSink
	Hits    HitTester
	Logger  *log.Logger
}

// FrameResult is what one call to Frame produced.
type FrameResult struct {
	Snapshot    Snapshot
	Transitions []Transition
	ShowScores  bool // The scores region or action was used
}

// Session is one fully constructed game: lanes, world, spawner, state machine
// and score tracker. It is driven by a single goroutine calling Frame once per
// tick and is not safe for concurrent use.
type Session struct {
	cfg    config.GameConfig
	dt     float64
	events EventSink
	hits   HitTester
	logger *log.Logger

	grid       *LaneGrid
	world      *World
	spawner    *Spawner
	machine    *Machine
	resolver   *CollisionResolver
	score      *ScoreTracker
	difficulty *config.DifficultyManager

	tick     uint64
	rotating bool
	spin     float64

	pending []Transition
}

// NewSession builds every component up front. The session starts in Menu.
func NewSession(opts Options) (*Session, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:        opts.Config,
		dt:         opts.Runtime.FixedStep(),
		events:     opts.Events,
		hits:       opts.Hits,
		logger:     opts.Logger,
		machine:    NewMachine(),
		score:      NewScoreTracker(opts.Store),
		difficulty: config.NewDifficultyManager(opts.Config.Difficulty),
	}
	if s.events == nil {
		s.events = nopSink{}
	}
	if s.hits == nil {
		s.hits = noHits{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	cfg := opts.Config
	s.grid = NewLaneGrid(cfg.Lanes.Count, cfg.World.Height)
	start := s.grid.Clamp(cfg.Character.StartLane)
	s.world = NewWorld(cfg.World.Width, cfg.World.Height,
		core.V(cfg.Character.X, s.grid.Center(start)), cfg.Character.Radius)
	s.spawner = NewSpawner(s.grid, s.world, seed, cfg.Enemies.Radius, cfg.Enemies.Variants)
	s.resolver = NewCollisionResolver(s.machine, s.onContact)

	s.resetPlay()
	return s, nil
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.machine.Phase() }

// Grid exposes the lane grid for inspection.
func (s *Session) Grid() *LaneGrid { return s.grid }

// World exposes the physics world for inspection.
func (s *Session) World() *World { return s.world }

// Score exposes the score tracker for inspection.
func (s *Session) Score() *ScoreTracker { return s.score }

// Spawner exposes the spawner for inspection.
func (s *Session) Spawner() *Spawner { return s.spawner }

// Reset abandons whatever is in progress and returns to Menu with a fresh
// board. An unfinished session is not recorded.
func (s *Session) Reset() {
	s.machine.reset()
	s.resetPlay()
}

// Frame runs one frame: input, then (only while playing) one fixed physics
// step, contact resolution, one spawner tick and scoring of enemies that
// left the field during this frame's step.
func (s *Session) Frame(in core.InputFrame) FrameResult {
	var res FrameResult
	s.pending = s.pending[:0]

	s.handleInput(in, &res)

	switch s.machine.Phase() {
	case PhasePlaying:
		s.simulate()
	case PhaseGameOver:
		if s.rotating {
			s.spin += s.cfg.Character.SpinRate * s.dt
		}
	}

	if len(s.pending) > 0 {
		res.Transitions = append([]Transition(nil), s.pending...)
	}
	res.Snapshot = s.Snapshot()
	return res
}

func (s *Session) simulate() {
	s.tick++
	s.world.Step(s.dt)

	s.resolver.Resolve(s.world.DrainContacts())
	exited := s.world.DrainExited()
	if s.machine.Phase() != PhasePlaying {
		return
	}

	if e, ok := s.spawner.Tick(s.dt, s.pace()); ok {
		s.events.Emit(Event{Kind: EventEnemySpawned, Lane: e.Lane})
	}

	for _, id := range exited {
		e, ok := s.world.RemoveEnemy(id)
		if !ok {
			continue
		}
		s.grid.Release(e.Lane)
		s.score.Evade()
		s.events.Emit(Event{Kind: EventEnemyEvaded, Lane: e.Lane})
	}
}

// pace derives the spawn tuning from difficulty progression.
func (s *Session) pace() Pace {
	score := s.score.Current()
	ticks := int(s.tick)
	return Pace{
		Speed:    s.difficulty.Speed(s.cfg.Enemies.Speed, score, ticks),
		MinDelay: s.difficulty.Delay(s.cfg.Spawn.MinDelay, score, ticks),
		MaxDelay: s.difficulty.Delay(s.cfg.Spawn.MaxDelay, score, ticks),
	}
}

func (s *Session) handleInput(in core.InputFrame, res *FrameResult) {
	switch s.machine.Phase() {
	case PhaseMenu:
		if in.Has(core.ActionConfirm) || hit(s.hits, in, RegionPlay) {
			s.fire(TriggerStart)
		} else if in.Has(core.ActionScores) || hit(s.hits, in, RegionScores) {
			res.ShowScores = true
		}

	case PhasePlaying:
		if in.Has(core.ActionPause) || hit(s.hits, in, RegionPause) {
			s.fire(TriggerPause)
			return
		}
		c := s.world.Character()
		if lane, ok := targetLane(s.grid, c.Lane, in); ok && lane != c.Lane {
			s.teleport(lane)
		}

	case PhasePaused:
		if in.Has(core.ActionPause) || in.Has(core.ActionResume) || hit(s.hits, in, RegionResume) {
			s.fire(TriggerResume)
		}

	case PhaseGameOver:
		switch {
		case in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) || hit(s.hits, in, RegionReplay):
			s.fire(TriggerReplay)
		case in.Has(core.ActionBack) || hit(s.hits, in, RegionHome):
			s.fire(TriggerHome)
		case in.Has(core.ActionScores) || hit(s.hits, in, RegionScores):
			res.ShowScores = true
		}
	}
}

// Teleport moves the character to lane i (clamped) if playing and reports
// whether it moved. Teleporting to the current lane does nothing.
func (s *Session) Teleport(i int) bool {
	if s.machine.Phase() != PhasePlaying {
		return false
	}
	lane := s.grid.Clamp(i)
	if lane == s.world.Character().Lane {
		return false
	}
	s.teleport(lane)
	return true
}

func (s *Session) teleport(lane int) {
	c := s.world.Character()
	s.world.Teleport(s.grid.Center(lane))
	c.Lane = lane
	s.events.Emit(Event{Kind: EventTeleport, Lane: lane})
}

// fire runs a trigger through the state machine. Effects run between Plan
// and Commit so they are complete before the new phase is visible.
func (s *Session) fire(t Trigger) bool {
	tr, ok := s.machine.Plan(t)
	if !ok {
		return false
	}

	switch t {
	case TriggerStart, TriggerReplay, TriggerHome:
		s.resetPlay()
	case TriggerContact:
		s.endGame()
	}

	s.machine.Commit(tr)
	s.pending = append(s.pending, tr)
	s.logger.Debug("phase changed", "from", tr.From, "to", tr.To, "trigger", tr.Trigger)
	return true
}

// onContact is the collision resolver's game over hook.
func (s *Session) onContact(c Contact) {
	s.fire(TriggerContact)
}

// resetPlay clears the board for Menu or a new run: score zero, no enemies,
// character on the start lane, spawn timer armed with the initial delay.
func (s *Session) resetPlay() {
	s.score.Reset()
	s.world.ClearEnemies()
	s.grid.ReleaseAll()

	start := s.grid.Clamp(s.cfg.Character.StartLane)
	s.world.ResetCharacter(core.V(s.cfg.Character.X, s.grid.Center(start)), start)

	s.rotating = false
	s.spin = 0
	s.tick = 0
	s.spawner.Arm(s.cfg.Spawn.InitialDelay)
}

// endGame freezes the scene, records the score and notifies audio.
func (s *Session) endGame() {
	s.world.Freeze()
	s.rotating = true
	s.spin = s.world.Character().Angle

	final, err := s.score.Finalize()
	if err != nil {
		s.logger.Warn("could not persist score", "score", final.Score, "error", err)
	}
	s.logger.Info("game over", "score", final.Score, "high", final.High, "new_high", final.NewHigh)

	s.events.Emit(Event{Kind: EventCollision, Lane: s.world.Character().Lane})
}
