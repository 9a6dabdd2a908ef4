package core

import "testing"

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "unit squares at identical coordinates",
			a:        NewRectF(3, 3, 1, 1),
			b:        NewRectF(3, 3, 1, 1),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        NewRectF(0, 0, 1, 1),
			b:        NewRectF(2.5, 0, 1, 1),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        NewRectF(0, 0, 1, 1),
			b:        NewRectF(0, 2.5, 1, 1),
			expected: false,
		},
		{
			name:     "touching right edge",
			a:        NewRectF(0, 0, 40, 40),
			b:        NewRectF(40, 0, 40, 40),
			expected: false,
		},
		{
			name:     "touching bottom edge",
			a:        NewRectF(0, 0, 40, 40),
			b:        NewRectF(0, 40, 40, 40),
			expected: false,
		},
		{
			name:     "fractional overlap",
			a:        NewRectF(0, 0, 40, 40),
			b:        NewRectF(39.5, 39.5, 40, 40),
			expected: true,
		},
		{
			name:     "obstacle above the canvas",
			a:        NewRectF(100, 334, 40, 40),
			b:        NewRectF(100, -40, 40, 40),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectFCell(t *testing.T) {
	r := NewRectF(45, 130, 40, 40)

	x, y := r.Cell(10, 20)
	if x != 4 || y != 6 {
		t.Errorf("Cell(10, 20) = (%d, %d), expected (4, 6)", x, y)
	}

	above := NewRectF(45, -10, 40, 40)
	if _, y := above.Cell(20, 40); y != -1 {
		t.Errorf("Cell() row for a box above the canvas = %d, expected -1", y)
	}

	// Degenerate scale falls back to raw units
	x, y = r.Cell(0, 0)
	if x != 45 || y != 130 {
		t.Errorf("Cell(0, 0) = (%d, %d), expected (45, 130)", x, y)
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
