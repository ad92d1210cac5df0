package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.75, 9.75, 10, 10),
			expected: true,
		},
		{
			name:     "negative coordinates",
			a:        NewRect(-30, -500, 64, 512),
			b:        NewRect(20, 0, 34, 24),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
}

func TestRectScale(t *testing.T) {
	tests := []struct {
		name           string
		r              Rect
		sx, sy         float64
		x0, y0, x1, y1 int
	}{
		{"aligned", NewRect(0, 0, 10, 10), 5, 5, 0, 0, 2, 2},
		{"partial cells round outward", NewRect(3, 3, 4, 4), 5, 5, 0, 0, 2, 2},
		{"negative origin", NewRect(-7, -12, 4, 4), 5, 5, -2, -3, 0, -1},
		{"thin rect still covers a cell", NewRect(5, 5, 0, 0), 5, 5, 1, 1, 2, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x0, y0, x1, y1 := tc.r.Scale(tc.sx, tc.sy)
			if x0 != tc.x0 || y0 != tc.y0 || x1 != tc.x1 || y1 != tc.y1 {
				t.Errorf("Scale() = (%d, %d, %d, %d), expected (%d, %d, %d, %d)",
					x0, y0, x1, y1, tc.x0, tc.y0, tc.x1, tc.y1)
			}
		})
	}
}

func TestSpriteFrameWraps(t *testing.T) {
	s := Sprite{Frames: [][]string{{"a"}, {"b"}, {"c"}}}

	if got := s.Frame(4); got[0] != "b" {
		t.Errorf("Frame(4) = %q, expected %q", got[0], "b")
	}
	if got := (Sprite{}).Frame(1); got != nil {
		t.Errorf("empty sprite Frame(1) = %v, expected nil", got)
	}
}
