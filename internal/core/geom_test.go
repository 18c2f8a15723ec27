package core

import (
	"testing"
	"time"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestViewportMapping(t *testing.T) {
	// 400x600 field drawn into an 80x20 area starting at row 1
	v := NewViewport(400, 600, NewRect(0, 1, 80, 20))

	tests := []struct {
		name string
		x, y float64
		col  int
		row  int
	}{
		{"origin", 0, 0, 0, 1},
		{"center", 200, 300, 40, 11},
		{"far edge", 400, 600, 80, 21},
		{"negative x", -10, 0, -2, 1},
		{"fractional cell", 4.9, 29.9, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := v.Col(tc.x); got != tc.col {
				t.Errorf("Col(%v) = %d, expected %d", tc.x, got, tc.col)
			}
			if got := v.Row(tc.y); got != tc.row {
				t.Errorf("Row(%v) = %d, expected %d", tc.y, got, tc.row)
			}
		})
	}
}

func TestViewportCells(t *testing.T) {
	v := NewViewport(400, 600, NewRect(0, 0, 80, 20))

	r := v.Cells(80, 0, 160, 150)
	if r != NewRect(16, 0, 32, 5) {
		t.Errorf("Cells() = %+v, expected {16 0 32 5}", r)
	}

	// Boxes smaller than a cell still cover one cell
	tiny := v.Cells(1, 1, 1, 1)
	if tiny.W != 1 || tiny.H != 1 {
		t.Errorf("tiny box should cover 1x1 cells, got %dx%d", tiny.W, tiny.H)
	}

	// Empty boxes cover nothing
	empty := v.Cells(10, 10, 0, 0)
	if empty.W != 0 || empty.H != 0 {
		t.Errorf("empty box should cover no cells, got %dx%d", empty.W, empty.H)
	}
}

func TestViewportZeroField(t *testing.T) {
	v := NewViewport(0, 0, NewRect(3, 4, 10, 10))
	if v.Col(100) != 3 || v.Row(100) != 4 {
		t.Error("zero-sized field should map everything to the area origin")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestRuntimeConfigInterval(t *testing.T) {
	var cfg RuntimeConfig
	if cfg.Interval() != DefaultTickInterval {
		t.Errorf("unset interval should fall back to %v, got %v", DefaultTickInterval, cfg.Interval())
	}

	cfg.TickInterval = 20 * time.Millisecond
	if cfg.Interval() != 20*time.Millisecond {
		t.Errorf("Interval() = %v, expected 20ms", cfg.Interval())
	}

	if IntervalForRate(50) != 20*time.Millisecond {
		t.Errorf("IntervalForRate(50) = %v, expected 20ms", IntervalForRate(50))
	}
	if IntervalForRate(0) != DefaultTickInterval {
		t.Error("IntervalForRate(0) should fall back to the default")
	}
}

func TestRuntimeConfigResolveSeed(t *testing.T) {
	cfg := RuntimeConfig{Seed: 42}
	if cfg.ResolveSeed().Seed != 42 {
		t.Error("explicit seed should be kept")
	}

	cfg.Seed = 0
	if cfg.ResolveSeed().Seed == 0 {
		t.Error("zero seed should be replaced")
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionJump) {
		t.Error("zero frame should be empty")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) || f.Has(ActionRestart) {
		t.Error("frame should contain only Jump")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should remove all actions")
	}

	if ActionJump.String() != "Jump" || Action(99).String() != "Unknown" {
		t.Error("unexpected Action names")
	}
}
