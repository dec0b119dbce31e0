package game

import (
	"testing"

	"github.com/vovakirdan/lanehop/internal/core"
)

func TestWorldStepMovesEnemies(t *testing.T) {
	w := NewWorld(100, 50, core.V(12, 25), 3)
	e := w.AddEnemy(core.V(90, 5), core.V(-60, 0), 3, 0, 0)

	w.Step(0.5)
	if e.Pos.X != 60 || e.Pos.Y != 5 {
		t.Errorf("enemy at %+v, want (60, 5)", e.Pos)
	}
	if c := w.Character(); c.Pos != core.V(12, 25) {
		t.Errorf("character moved to %+v", c.Pos)
	}
}

func TestWorldContactBeginsOnce(t *testing.T) {
	w := NewWorld(100, 50, core.V(12, 25), 3)
	e := w.AddEnemy(core.V(20, 25), core.V(-4, 0), 3, 2, 0)

	// 20 -> 18: centers exactly one diameter apart, no overlap yet.
	w.Step(0.5)
	if got := w.DrainContacts(); len(got) != 0 {
		t.Fatalf("contacts at touching distance: %v", got)
	}

	w.Step(0.5)
	contacts := w.DrainContacts()
	if len(contacts) != 1 {
		t.Fatalf("got %d contacts, want 1", len(contacts))
	}
	c := contacts[0]
	if !c.Involves(KindCharacter, KindEnemy) || c.B != e.ID {
		t.Errorf("unexpected contact %+v", c)
	}

	w.Step(0.5)
	if got := w.DrainContacts(); len(got) != 0 {
		t.Errorf("continued overlap produced %d more contacts", len(got))
	}
}

func TestWorldFastEnemyHitsInsteadOfPassing(t *testing.T) {
	w := NewWorld(100, 50, core.V(12, 25), 3)
	// 32 units per step, far more than the 12 unit combined diameter.
	w.AddEnemy(core.V(20, 25), core.V(-160, 0), 3, 2, 0)

	w.Step(0.2)
	if got := w.DrainContacts(); len(got) != 1 {
		t.Fatalf("got %d contacts, want 1 for an enemy crossing the character", len(got))
	}

	w.Step(0.2)
	if got := w.DrainContacts(); len(got) != 0 {
		t.Errorf("enemy already past the character produced %d contacts", len(got))
	}
}

func TestWorldFastEnemyInOtherLane(t *testing.T) {
	w := NewWorld(100, 50, core.V(12, 25), 3)
	w.AddEnemy(core.V(20, 35), core.V(-160, 0), 3, 3, 0)

	w.Step(0.2)
	if got := w.DrainContacts(); len(got) != 0 {
		t.Errorf("enemy in another lane produced %d contacts", len(got))
	}
}

func TestWorldExitLeftEdge(t *testing.T) {
	w := NewWorld(100, 50, core.V(12, 25), 3)
	e := w.AddEnemy(core.V(-2.5, 5), core.V(-30, 0), 3, 0, 0)

	// x + r = 0.5 before the step, -0.5 after.
	w.Step(1.0 / 30)
	ids := w.DrainExited()
	if len(ids) != 1 || ids[0] != e.ID {
		t.Fatalf("DrainExited() = %v, want [%d]", ids, e.ID)
	}

	w.Step(1.0 / 30)
	if got := w.DrainExited(); len(got) != 0 {
		t.Errorf("enemy reported as exited twice: %v", got)
	}

	if _, ok := w.RemoveEnemy(e.ID); !ok {
		t.Fatal("RemoveEnemy() did not find the enemy")
	}
	if _, ok := w.RemoveEnemy(e.ID); ok {
		t.Error("RemoveEnemy() twice should report false")
	}
}

func TestWorldNotExitedWhilePartlyVisible(t *testing.T) {
	w := NewWorld(100, 50, core.V(12, 25), 3)
	w.AddEnemy(core.V(-2.9, 5), core.V(0, 0), 3, 0, 0)
	w.Step(1.0 / 60)
	if got := w.DrainExited(); len(got) != 0 {
		t.Errorf("enemy with x + r > 0 reported as exited")
	}
}

func TestWorldFreeze(t *testing.T) {
	w := NewWorld(100, 50, core.V(12, 25), 3)
	w.Character().AngularVel = 2
	e := w.AddEnemy(core.V(80, 5), core.V(-40, 0), 3, 0, 0)
	e.AngularVel = 1

	w.Freeze()
	w.Step(1)
	if e.Pos != core.V(80, 5) || e.Angle != 0 {
		t.Errorf("frozen enemy moved to %+v angle %v", e.Pos, e.Angle)
	}
	if w.Character().Angle != 0 {
		t.Error("frozen character rotated")
	}
}

func TestWorldTeleport(t *testing.T) {
	w := NewWorld(100, 50, core.V(12, 25), 3)
	w.Character().Vel = core.V(0, 9)
	w.Teleport(45)

	c := w.Character()
	if c.Pos != core.V(12, 45) {
		t.Errorf("character at %+v, want (12, 45)", c.Pos)
	}
	if c.Vel.Y != 0 {
		t.Errorf("vertical velocity = %v, want 0", c.Vel.Y)
	}
}

func TestWorldClearEnemies(t *testing.T) {
	w := NewWorld(100, 50, core.V(12, 25), 3)
	w.AddEnemy(core.V(12, 25), core.V(-40, 0), 3, 2, 0)
	w.Step(1.0 / 60)
	w.ClearEnemies()

	if len(w.Enemies()) != 0 {
		t.Error("ClearEnemies() left enemies")
	}
	if len(w.DrainContacts()) != 0 {
		t.Error("ClearEnemies() should drop queued contacts")
	}
}
