package geometry

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestSlope(t *testing.T) {
	tests := []struct {
		name string
		a, b r2.Vec
		want float64
	}{
		{"diagonal", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 2, Y: 2}, 1},
		{"horizontal", r2.Vec{X: 0, Y: 3}, r2.Vec{X: 5, Y: 3}, 0},
		{"steep", r2.Vec{X: 1, Y: 0}, r2.Vec{X: 2, Y: -4}, -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slope(tt.a, tt.b); !FuzzyEqual(got, tt.want) {
				t.Errorf("Slope(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}

	t.Run("coincident points", func(t *testing.T) {
		if got := Slope(r2.Vec{X: 1, Y: 1}, r2.Vec{X: 1, Y: 1}); !math.IsNaN(got) {
			t.Errorf("Slope of coincident points = %v, want NaN", got)
		}
	})
	t.Run("vertical line", func(t *testing.T) {
		if got := Slope(r2.Vec{X: 1, Y: 0}, r2.Vec{X: 1, Y: 5}); !math.IsInf(got, 0) {
			t.Errorf("Slope of vertical line = %v, want Inf", got)
		}
	})
}

func TestLineOffset(t *testing.T) {
	if got := LineOffset(r2.Vec{X: 2, Y: 5}, 2); !FuzzyEqual(got, 1) {
		t.Errorf("LineOffset = %v, want 1", got)
	}
	if got := LineOffset(r2.Vec{X: 3, Y: 7}, math.Inf(1)); !FuzzyEqual(got, 3) {
		t.Errorf("LineOffset of vertical line = %v, want x-intercept 3", got)
	}
}

func TestProjectOnLine(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b r2.Vec
		want    r2.Vec
	}{
		{"onto diagonal", r2.Vec{X: 0, Y: 2}, r2.Vec{X: 0, Y: 0}, r2.Vec{X: 2, Y: 2}, r2.Vec{X: 1, Y: 1}},
		{"onto horizontal", r2.Vec{X: 3, Y: 4}, r2.Vec{X: 0, Y: 1}, r2.Vec{X: 9, Y: 1}, r2.Vec{X: 3, Y: 1}},
		{"onto vertical", r2.Vec{X: 4, Y: 2}, r2.Vec{X: 1, Y: 0}, r2.Vec{X: 1, Y: 9}, r2.Vec{X: 1, Y: 2}},
		{"point is first endpoint", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 0, Y: 0}, r2.Vec{X: 5, Y: 1}, r2.Vec{X: 0, Y: 0}},
		{"point is second endpoint", r2.Vec{X: 5, Y: 1}, r2.Vec{X: 0, Y: 0}, r2.Vec{X: 5, Y: 1}, r2.Vec{X: 5, Y: 1}},
		{"point on the line", r2.Vec{X: 1, Y: 1}, r2.Vec{X: 0, Y: 0}, r2.Vec{X: 3, Y: 3}, r2.Vec{X: 1, Y: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectOnLine(tt.p, tt.a, tt.b)
			if !PointsEqual(got, tt.want) {
				t.Errorf("ProjectOnLine(%v, %v, %v) = %v, want %v", tt.p, tt.a, tt.b, got, tt.want)
			}
		})
	}

	t.Run("degenerate line", func(t *testing.T) {
		got := ProjectOnLine(r2.Vec{X: 1, Y: 2}, r2.Vec{X: 3, Y: 3}, r2.Vec{X: 3, Y: 3})
		if !math.IsNaN(got.X) || !math.IsNaN(got.Y) {
			t.Errorf("projection onto degenerate line = %v, want NaN pair", got)
		}
	})
}

func TestSquaredDistanceToSegment(t *testing.T) {
	a := r2.Vec{X: 0, Y: 0}
	b := r2.Vec{X: 10, Y: 0}

	tests := []struct {
		name string
		p    r2.Vec
		want float64
	}{
		{"perpendicular foot inside", r2.Vec{X: 5, Y: 3}, 9},
		{"beyond first endpoint", r2.Vec{X: -4, Y: 3}, 25},
		{"beyond second endpoint", r2.Vec{X: 13, Y: 4}, 25},
		{"on the segment", r2.Vec{X: 7, Y: 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SquaredDistanceToSegment(tt.p, a, b); !FuzzyEqual(got, tt.want) {
				t.Errorf("SquaredDistanceToSegment(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	t.Run("vertical segment uses endpoint distance", func(t *testing.T) {
		got := SquaredDistanceToSegment(r2.Vec{X: 3, Y: 1}, r2.Vec{X: 0, Y: 0}, r2.Vec{X: 0, Y: 4})
		if !FuzzyEqual(got, 10) {
			t.Errorf("got %v, want 10", got)
		}
	})
}
