package core

import (
	"math"
	"testing"
)

func TestAABB_Volume(t *testing.T) {
	tests := []struct {
		name     string
		box      AABB
		expected float64
	}{
		{
			name:     "Unit cube",
			box:      NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1)),
			expected: 1.0,
		},
		{
			name:     "Rectangular box",
			box:      NewAABB(NewVec3(-1, 0, 2), NewVec3(1, 3, 6)),
			expected: 2 * 3 * 4,
		},
		{
			name:     "Degenerate box",
			box:      NewAABB(NewVec3(0, 0, 0), NewVec3(5, 5, 0)),
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.Volume(); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Volume() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestAABB_Union(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(2, -1, 0), NewVec3(3, 1, 2))

	union := a.Union(b)

	expected := NewAABB(NewVec3(0, -1, 0), NewVec3(3, 1, 2))
	if union != expected {
		t.Errorf("Union() = %v, expected %v", union, expected)
	}

	// A union must never be smaller than either operand
	if union.Volume() < a.Volume() || union.Volume() < b.Volume() {
		t.Errorf("Union volume %v smaller than operand volumes %v, %v",
			union.Volume(), a.Volume(), b.Volume())
	}
}

func TestAABB_FromPoints(t *testing.T) {
	box := NewAABBFromPoints(
		NewVec3(1, 5, -2),
		NewVec3(-3, 0, 4),
		NewVec3(2, 2, 2),
	)

	expected := NewAABB(NewVec3(-3, 0, -2), NewVec3(2, 5, 4))
	if box != expected {
		t.Errorf("NewAABBFromPoints() = %v, expected %v", box, expected)
	}

	if !box.IsValid() {
		t.Error("Expected box from points to be valid")
	}

	empty := NewAABBFromPoints()
	if empty != (AABB{}) {
		t.Errorf("Expected zero AABB for no points, got %v", empty)
	}
}

func TestAABB_Expand(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	expanded := box.Expand(1)

	expected := NewAABB(NewVec3(-1, -1, -1), NewVec3(2, 2, 2))
	if expanded != expected {
		t.Errorf("Expand(1) = %v, expected %v", expanded, expected)
	}

	if expanded.Volume() <= box.Volume() {
		t.Errorf("Expected expansion to grow volume: %v <= %v", expanded.Volume(), box.Volume())
	}
}

func TestAABB_CenterAndSize(t *testing.T) {
	box := NewAABB(NewVec3(-2, 0, 4), NewVec3(2, 2, 8))

	center := box.Center()
	if center != NewVec3(0, 1, 6) {
		t.Errorf("Center() = %v, expected (0, 1, 6)", center)
	}

	size := box.Size()
	if size != NewVec3(4, 2, 4) {
		t.Errorf("Size() = %v, expected (4, 2, 4)", size)
	}
}
