package syntax

import (
	"testing"
)

func TestPointBefore(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want bool
	}{
		{"earlier row", Point{0, 9}, Point{1, 0}, true},
		{"later row", Point{2, 0}, Point{1, 9}, false},
		{"same row earlier column", Point{1, 3}, Point{1, 4}, true},
		{"same row later column", Point{1, 4}, Point{1, 3}, false},
		{"equal", Point{1, 3}, Point{1, 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Before(tt.q); got != tt.want {
				t.Errorf("%v.Before(%v) = %v, want %v", tt.p, tt.q, got, tt.want)
			}
		})
	}
}

func TestPointAt(t *testing.T) {
	text := []byte("abc\nde\n\nfgh")

	tests := []struct {
		offset int
		want   Point
	}{
		{0, Point{0, 0}},
		{2, Point{0, 2}},
		{3, Point{0, 3}},
		{4, Point{1, 0}},
		{6, Point{1, 2}},
		{7, Point{2, 0}},
		{8, Point{3, 0}},
		{11, Point{3, 3}},
	}

	for _, tt := range tests {
		if got := PointAt(text, tt.offset); got != tt.want {
			t.Errorf("PointAt(%d) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestPointAtMultibyte(t *testing.T) {
	// Columns count bytes, so a three-byte rune advances the column
	// by three.
	text := []byte("a€b")
	if got := PointAt(text, len(text)); got != (Point{0, 5}) {
		t.Errorf("PointAt(end) = %v, want %v", got, Point{0, 5})
	}
}

func TestPointAtClampsOffset(t *testing.T) {
	text := []byte("ab")
	if got := PointAt(text, 99); got != (Point{0, 2}) {
		t.Errorf("PointAt(99) = %v, want %v", got, Point{0, 2})
	}
}

func TestRangeString(t *testing.T) {
	r := Range{
		StartByte:  3,
		EndByte:    9,
		StartPoint: Point{0, 3},
		EndPoint:   Point{1, 2},
	}
	want := "[3,9) (0,3)-(1,2)"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
