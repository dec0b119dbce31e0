package game

import (
	"math/rand"

	"github.com/vovakirdan/lanehop/internal/core"
)

// Pace is the spawn tuning in effect for one tick. Difficulty progression
// supplies a fresh Pace each frame.
type Pace struct {
	Speed    float64 // Leftward enemy speed, world units per second
	MinDelay float64 // Seconds
	MaxDelay float64 // Seconds
}

// Spawner creates enemies on a randomized countdown, only ever into free lanes.
type Spawner struct {
	grid     *LaneGrid
	world    *World
	rng      *rand.Rand
	timer    float64
	radius   float64
	variants int
}

// NewSpawner creates a spawner bound to a lane grid and world.
func NewSpawner(grid *LaneGrid, world *World, seed int64, radius float64, variants int) *Spawner {
	if variants < 1 {
		variants = 1
	}
	return &Spawner{
		grid:     grid,
		world:    world,
		rng:      rand.New(rand.NewSource(seed)),
		radius:   radius,
		variants: variants,
	}
}

// Arm sets the countdown to delay seconds.
func (s *Spawner) Arm(delay float64) {
	s.timer = delay
}

// Timer returns the seconds left until the next spawn attempt.
func (s *Spawner) Timer() float64 {
	return s.timer
}

// Tick advances the countdown by dt. When it runs out the spawner tries to
// place one enemy in a uniformly chosen free lane and redraws the countdown.
// A full grid skips the attempt without carrying the missed spawn forward.
func (s *Spawner) Tick(dt float64, pace Pace) (*Body, bool) {
	s.timer -= dt
	if s.timer > 0 {
		return nil, false
	}

	free := s.grid.FreeLanes()
	if len(free) == 0 {
		s.redraw(pace)
		return nil, false
	}

	lane := free[s.rng.Intn(len(free))]
	variant := s.rng.Intn(s.variants)

	pos := core.V(s.world.Width()+s.radius, s.grid.Center(lane))
	vel := core.V(-pace.Speed, 0)
	enemy := s.world.AddEnemy(pos, vel, s.radius, lane, variant)
	s.grid.Occupy(lane)

	s.redraw(pace)
	return enemy, true
}

func (s *Spawner) redraw(pace Pace) {
	lo, hi := pace.MinDelay, pace.MaxDelay
	if hi < lo {
		lo, hi = hi, lo
	}
	s.timer = lo + s.rng.Float64()*(hi-lo)
}
