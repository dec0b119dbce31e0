package game

import "github.com/vovakirdan/lanehop/internal/core"

// EntityKind tags a body for collision dispatch.
type EntityKind int

const (
	KindCharacter EntityKind = iota
	KindEnemy
)

func (k EntityKind) String() string {
	switch k {
	case KindCharacter:
		return "character"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// BodyID identifies a body within one World. IDs are never reused.
type BodyID uint64

// Body is a circular rigid body. Enemies keep their lane as a back-reference
// to the LaneGrid entry they occupy.
type Body struct {
	ID         BodyID
	Kind       EntityKind
	Pos        core.Vec
	Vel        core.Vec
	Angle      float64
	AngularVel float64
	Radius     float64
	Lane       int
	Variant    int

	exited bool
}

// Contact is a "contact begin" event between two bodies.
type Contact struct {
	A, B         BodyID
	KindA, KindB EntityKind
}

// Involves reports whether the contact pairs the two kinds, in either order.
func (c Contact) Involves(a, b EntityKind) bool {
	return (c.KindA == a && c.KindB == b) || (c.KindA == b && c.KindB == a)
}

// World owns every body and advances them in fixed steps.
// Contacts and left-boundary exits found during a step are queued and
// drained by the caller after the step returns; nothing is called back
// while bodies are being integrated.
type World struct {
	width, height float64

	character *Body
	enemies   []*Body // spawn order
	nextID    BodyID

	touching map[BodyID]bool // enemies currently overlapping the character
	contacts []Contact
	exited   []BodyID
}

// NewWorld creates a world with a character body at pos.
func NewWorld(width, height float64, charPos core.Vec, charRadius float64) *World {
	w := &World{
		width:    width,
		height:   height,
		touching: make(map[BodyID]bool),
	}
	w.nextID++
	w.character = &Body{
		ID:     w.nextID,
		Kind:   KindCharacter,
		Pos:    charPos,
		Radius: charRadius,
	}
	return w
}

// Width returns the world width.
func (w *World) Width() float64 { return w.width }

// Height returns the world height.
func (w *World) Height() float64 { return w.height }

// Character returns the character body.
func (w *World) Character() *Body {
	return w.character
}

// Enemies returns the live enemy bodies in spawn order.
// The slice is owned by the world; do not retain it across steps.
func (w *World) Enemies() []*Body {
	return w.enemies
}

// AddEnemy creates an enemy body moving at a constant velocity.
func (w *World) AddEnemy(pos, vel core.Vec, radius float64, lane, variant int) *Body {
	w.nextID++
	e := &Body{
		ID:      w.nextID,
		Kind:    KindEnemy,
		Pos:     pos,
		Vel:     vel,
		Radius:  radius,
		Lane:    lane,
		Variant: variant,
	}
	w.enemies = append(w.enemies, e)
	return e
}

// RemoveEnemy deletes an enemy. Unknown IDs are ignored.
func (w *World) RemoveEnemy(id BodyID) (*Body, bool) {
	for i, e := range w.enemies {
		if e.ID == id {
			w.enemies = append(w.enemies[:i], w.enemies[i+1:]...)
			delete(w.touching, id)
			return e, true
		}
	}
	return nil, false
}

// ClearEnemies removes every enemy and drops pending events.
func (w *World) ClearEnemies() {
	w.enemies = w.enemies[:0]
	w.touching = make(map[BodyID]bool)
	w.contacts = w.contacts[:0]
	w.exited = w.exited[:0]
}

// Teleport moves the character vertically to y and zeroes its vertical
// velocity. Horizontal position is untouched.
func (w *World) Teleport(y float64) {
	w.character.Pos.Y = y
	w.character.Vel.Y = 0
}

// ResetCharacter puts the character back at pos with no motion.
func (w *World) ResetCharacter(pos core.Vec, lane int) {
	c := w.character
	c.Pos = pos
	c.Vel = core.Vec{}
	c.Angle = 0
	c.AngularVel = 0
	c.Lane = lane
}

// Freeze zeroes linear and angular velocity of every body.
func (w *World) Freeze() {
	w.character.Vel = core.Vec{}
	w.character.AngularVel = 0
	for _, e := range w.enemies {
		e.Vel = core.Vec{}
		e.AngularVel = 0
	}
}

// Step integrates all bodies by dt, then records contact-begin events
// between the character and enemies and enemies that fully left the
// world through its left edge. Contacts are tested along each body's path
// during the step, so an enemy moving farther than the combined diameter in
// one step still hits the character.
func (w *World) Step(dt float64) {
	c := w.character
	c0 := c.Pos
	integrate(c, dt)

	for _, e := range w.enemies {
		e0 := e.Pos
		integrate(e, dt)

		swept := core.SweptCirclesOverlap(c0, c.Pos, c.Radius, e0, e.Pos, e.Radius)
		if swept && !w.touching[e.ID] {
			w.contacts = append(w.contacts, Contact{
				A: c.ID, B: e.ID,
				KindA: c.Kind, KindB: e.Kind,
			})
		}
		if core.CirclesOverlap(c.Pos, c.Radius, e.Pos, e.Radius) {
			w.touching[e.ID] = true
		} else {
			delete(w.touching, e.ID)
		}

		if !e.exited && e.Pos.X+e.Radius < 0 {
			e.exited = true
			w.exited = append(w.exited, e.ID)
		}
	}
}

func integrate(b *Body, dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	b.Angle += b.AngularVel * dt
}

// DrainContacts returns and clears the contacts queued since the last drain.
func (w *World) DrainContacts() []Contact {
	if len(w.contacts) == 0 {
		return nil
	}
	out := make([]Contact, len(w.contacts))
	copy(out, w.contacts)
	w.contacts = w.contacts[:0]
	return out
}

// DrainExited returns and clears the IDs of enemies that left the world.
func (w *World) DrainExited() []BodyID {
	if len(w.exited) == 0 {
		return nil
	}
	out := make([]BodyID, len(w.exited))
	copy(out, w.exited)
	w.exited = w.exited[:0]
	return out
}
