package game

// CollisionResolver turns drained contacts into at most one game over.
type CollisionResolver struct {
	machine *Machine
	onHit   func(Contact)
}

// NewCollisionResolver creates a resolver that calls onHit for the first
// character/enemy contact seen while the machine is in the Playing phase.
// onHit is expected to move the machine out of Playing; every later contact
// is then ignored.
func NewCollisionResolver(m *Machine, onHit func(Contact)) *CollisionResolver {
	return &CollisionResolver{machine: m, onHit: onHit}
}

// Resolve processes contacts in order and reports whether one ended the game.
func (r *CollisionResolver) Resolve(contacts []Contact) bool {
	hit := false
	for _, c := range contacts {
		if !c.Involves(KindCharacter, KindEnemy) {
			continue
		}
		if r.machine.Phase() != PhasePlaying {
			continue
		}
		r.onHit(c)
		hit = true
	}
	return hit
}
