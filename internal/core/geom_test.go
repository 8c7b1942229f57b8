package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestInputFramePointer(t *testing.T) {
	f := NewInputFrame()
	if _, ok := f.Pointer(); ok {
		t.Error("new frame should have no pointer")
	}

	f.Set(ActionRun)
	f.SetPointer(4, 7)
	clone := f.Clone()

	f.Clear()
	if f.Has(ActionRun) {
		t.Error("Clear() should drop actions")
	}
	if _, ok := f.Pointer(); ok {
		t.Error("Clear() should drop the pointer")
	}

	p, ok := clone.Pointer()
	if !ok || p != (Point{X: 4, Y: 7}) {
		t.Errorf("clone Pointer() = %+v, %v, expected {4 7}, true", p, ok)
	}
	if !clone.Has(ActionRun) {
		t.Error("clone should keep actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionAimLeft.String() != "AimLeft" {
		t.Errorf("ActionAimLeft.String() = %q", ActionAimLeft.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}

func TestRuntimeConfigDt(t *testing.T) {
	if dt := (RuntimeConfig{TickRate: 50}).Dt(); dt != 0.02 {
		t.Errorf("Dt() = %v, expected 0.02", dt)
	}
	if dt := (RuntimeConfig{}).Dt(); dt != 1.0/60 {
		t.Errorf("Dt() with zero tick rate = %v, expected 1/60", dt)
	}
}
