package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 16, 16)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 5, 5, true},
		{"top-left corner", 0, 0, true},
		{"bottom-right cell", 15, 15, true},
		{"right edge (exclusive)", 16, 3, false},
		{"bottom edge (exclusive)", 3, 16, false},
		{"above grid", 3, -1, false},
		{"left of grid", -1, 3, false},
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
	if r.Area() != 300 {
		t.Errorf("Area() = %d, expected 300", r.Area())
	}
}

func TestPointManhattan(t *testing.T) {
	tests := []struct {
		a, b     Point
		expected int
	}{
		{Point{0, 0}, Point{0, 0}, 0},
		{Point{8, 8}, Point{12, 8}, 4},
		{Point{3, 9}, Point{1, 2}, 9},
	}

	for _, tc := range tests {
		if got := tc.a.Manhattan(tc.b); got != tc.expected {
			t.Errorf("%v.Manhattan(%v) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
		if got := tc.b.Manhattan(tc.a); got != tc.expected {
			t.Errorf("%v.Manhattan(%v) (reversed) = %d, expected %d", tc.b, tc.a, got, tc.expected)
		}
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

func TestAbs(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs should drop the sign")
	}
}
