package game

// CharacterPose is the render-facing view of the character.
type CharacterPose struct {
	X, Y     float64
	Lane     int
	Rotation float64 // Radians
	Rotating bool    // Game over spin is active
	Radius   float64
}

// EnemyPose is the render-facing view of one enemy.
type EnemyPose struct {
	ID      BodyID
	X, Y    float64
	Lane    int
	Variant int
	Radius  float64
}

// Snapshot is an immutable copy of everything a collaborator may draw.
// It shares no memory with the live session.
type Snapshot struct {
	Tick        uint64
	Phase       Phase
	Character   CharacterPose
	Enemies     []EnemyPose
	Score       int
	High        int
	Total       int
	WorldW      float64
	WorldH      float64
	LaneCenters []float64
	Occupied    []bool
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	c := s.world.Character()
	rotation := c.Angle
	if s.rotating {
		rotation = s.spin
	}

	enemies := make([]EnemyPose, 0, len(s.world.Enemies()))
	for _, e := range s.world.Enemies() {
		enemies = append(enemies, EnemyPose{
			ID:      e.ID,
			X:       e.Pos.X,
			Y:       e.Pos.Y,
			Lane:    e.Lane,
			Variant: e.Variant,
			Radius:  e.Radius,
		})
	}

	n := s.grid.Count()
	centers := make([]float64, n)
	occupied := make([]bool, n)
	for i := 0; i < n; i++ {
		centers[i] = s.grid.Center(i)
		occupied[i] = s.grid.Occupied(i)
	}

	return Snapshot{
		Tick:  s.tick,
		Phase: s.machine.Phase(),
		Character: CharacterPose{
			X:        c.Pos.X,
			Y:        c.Pos.Y,
			Lane:     c.Lane,
			Rotation: rotation,
			Rotating: s.rotating,
			Radius:   c.Radius,
		},
		Enemies:     enemies,
		Score:       s.score.Current(),
		High:        s.score.High(),
		Total:       s.score.Total(),
		WorldW:      s.world.Width(),
		WorldH:      s.world.Height(),
		LaneCenters: centers,
		Occupied:    occupied,
	}
}
