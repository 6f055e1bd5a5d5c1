package domain

import "testing"

func TestRect_Center(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 4, Height: 6}
	cx, cy := r.Center()
	if cx != 12 || cy != 23 {
		t.Errorf("Center() = (%v, %v), want (12, 23)", cx, cy)
	}
}

func TestRect_ContainsCenter(t *testing.T) {
	room := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name     string
		subject  Rect
		expected bool
	}{
		{
			name:     "center strictly inside",
			subject:  Rect{X: 4, Y: 4, Width: 2, Height: 2}, // center (5,5)
			expected: true,
		},
		{
			name:     "center exactly on right edge",
			subject:  Rect{X: 9, Y: 4, Width: 2, Height: 2}, // center (10,5)
			expected: true,
		},
		{
			name:     "center exactly on corner",
			subject:  Rect{X: 9, Y: 9, Width: 2, Height: 2}, // center (10,10)
			expected: true,
		},
		{
			name:     "center outside, body overlaps",
			subject:  Rect{X: 9, Y: 9, Width: 4, Height: 4}, // center (11,11)
			expected: false,
		},
		{
			name:     "fully outside",
			subject:  Rect{X: 20, Y: 20, Width: 2, Height: 2},
			expected: false,
		},
		{
			name:     "center on left edge",
			subject:  Rect{X: -1, Y: 4, Width: 2, Height: 2}, // center (0,5)
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := room.ContainsCenter(tt.subject); got != tt.expected {
				t.Errorf("ContainsCenter(%+v) = %v, want %v", tt.subject, got, tt.expected)
			}
		})
	}
}
