package geometry

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func ident(p r2.Vec) r2.Vec { return p }

func TestSimplifyPolyline(t *testing.T) {
	zigzag := func() []r2.Vec {
		return []r2.Vec{
			{X: 0, Y: 0},
			{X: 10, Y: 10},
			{X: 20, Y: 0},
			{X: 30, Y: 10},
			{X: 40, Y: 0},
		}
	}

	t.Run("small tolerance keeps every vertex", func(t *testing.T) {
		pts := zigzag()
		n := SimplifyPolyline(pts, ident, 5)
		if n != len(pts) {
			t.Fatalf("kept %d points, want %d", n, len(pts))
		}
		for i, want := range zigzag() {
			if !PointsEqual(pts[i], want) {
				t.Errorf("point %d = %v, want %v", i, pts[i], want)
			}
		}
	})

	t.Run("large tolerance keeps only endpoints", func(t *testing.T) {
		pts := zigzag()
		n := SimplifyPolyline(pts, ident, 50)
		if n != 2 {
			t.Fatalf("kept %d points, want 2", n)
		}
		if !PointsEqual(pts[0], r2.Vec{X: 0, Y: 0}) || !PointsEqual(pts[1], r2.Vec{X: 40, Y: 0}) {
			t.Errorf("kept %v, %v, want endpoints", pts[0], pts[1])
		}
	})

	t.Run("collinear interior collapses", func(t *testing.T) {
		pts := []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4}}
		n := SimplifyPolyline(pts, ident, 0.5)
		if n != 2 {
			t.Fatalf("kept %d points, want 2", n)
		}
		if !PointsEqual(pts[0], r2.Vec{X: 0, Y: 0}) || !PointsEqual(pts[1], r2.Vec{X: 4, Y: 4}) {
			t.Errorf("kept %v, %v, want endpoints", pts[0], pts[1])
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		pts := zigzag()
		n := SimplifyPolyline(pts, ident, 5)
		first := append([]r2.Vec(nil), pts[:n]...)
		m := SimplifyPolyline(pts[:n], ident, 5)
		if m != n {
			t.Fatalf("second pass kept %d points, want %d", m, n)
		}
		for i := range first {
			if !PointsEqual(pts[i], first[i]) {
				t.Errorf("point %d changed from %v to %v", i, first[i], pts[i])
			}
		}
	})

	t.Run("degenerate inputs unchanged", func(t *testing.T) {
		tests := []struct {
			name      string
			pts       []r2.Vec
			tolerance float64
		}{
			{"two points", []r2.Vec{{X: 0, Y: 0}, {X: 5, Y: 5}}, 5},
			{"zero tolerance", zigzag(), 0},
			{"negative tolerance", zigzag(), -1},
			{"closed loop", []r2.Vec{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}, {X: 0, Y: 0}}, 100},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if n := SimplifyPolyline(tt.pts, ident, tt.tolerance); n != len(tt.pts) {
					t.Errorf("kept %d points, want %d", n, len(tt.pts))
				}
			})
		}
	})
}
