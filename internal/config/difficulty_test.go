package config

import (
	"math"
	"testing"
)

func TestDifficultyScoreProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, DelayReduction: 0.5},
	})

	if lvl := d.Level(0, 0); lvl != 0 {
		t.Errorf("Level(0) = %f, expected 0", lvl)
	}
	if lvl := d.Level(5, 0); math.Abs(lvl-0.5) > 1e-9 {
		t.Errorf("Level(5) = %f, expected 0.5", lvl)
	}
	if lvl := d.Level(100, 0); lvl != 1 {
		t.Errorf("Level(100) = %f, expected clamp to 1", lvl)
	}

	if s := d.Speed(40, 10, 0); s != 80 {
		t.Errorf("Speed at max = %f, expected 80", s)
	}
	if dl := d.Delay(1.0, 10, 0); math.Abs(dl-0.5) > 1e-9 {
		t.Errorf("Delay at max = %f, expected 0.5", dl)
	}
}

func TestDifficultyDisabledKeepsInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})

	if d.IsEnabled() {
		t.Error("manager should report disabled")
	}
	if lvl := d.Level(1000, 1000); lvl != 0.3 {
		t.Errorf("Level = %f, expected 0.3", lvl)
	}
}

func TestDifficultyDelayFloor(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.0,
		Progression:  ProgressionConfig{Type: "none"},
		Scaling:      ScalingConfig{DelayReduction: 5},
	})

	if dl := d.Delay(1.0, 0, 0); math.Abs(dl-0.1) > 1e-9 {
		t.Errorf("Delay = %f, expected floor 0.1", dl)
	}
}
