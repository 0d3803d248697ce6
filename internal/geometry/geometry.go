package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const epsilon = 1e-9

// FuzzyEqual reports whether a and b differ by less than the package
// tolerance.
func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// PointsEqual reports whether both coordinates of a and b are fuzzy-equal.
func PointsEqual(a, b r2.Vec) bool {
	return FuzzyEqual(a.X, b.X) && FuzzyEqual(a.Y, b.Y)
}

// Slope returns the slope of the line through a and b. The result is NaN
// when the points coincide and +/-Inf for vertical lines.
func Slope(a, b r2.Vec) float64 {
	if PointsEqual(a, b) {
		return math.NaN()
	}
	return (b.Y - a.Y) / (b.X - a.X)
}

// LineOffset returns the offset of the line through a with the given slope.
// For finite slopes this is the y-intercept; for vertical lines it is the
// x-intercept.
func LineOffset(a r2.Vec, slope float64) float64 {
	if math.IsInf(slope, 0) {
		return a.X
	}
	return a.Y - a.X*slope
}

// ProjectOnLine projects p onto the line through a and b.
//
// Degenerate inputs follow the slope conventions: coincident a and b give a
// (NaN, NaN) result, and p equal to either endpoint projects onto itself.
func ProjectOnLine(p, a, b r2.Vec) r2.Vec {
	if PointsEqual(a, b) {
		return r2.Vec{X: math.NaN(), Y: math.NaN()}
	}
	if PointsEqual(p, a) {
		return a
	}
	if PointsEqual(p, b) {
		return b
	}
	slope := Slope(a, b)
	return ProjectOnLineSlope(p, slope, LineOffset(a, slope))
}

// ProjectOnLineSlope projects p onto the line described by slope and offset.
// The offset is the y-intercept, or the x-intercept when slope is infinite.
func ProjectOnLineSlope(p r2.Vec, slope, offset float64) r2.Vec {
	if math.IsNaN(slope) {
		return r2.Vec{X: math.NaN(), Y: math.NaN()}
	}
	if FuzzyEqual(slope, 0) {
		return r2.Vec{X: p.X, Y: offset}
	}
	if math.IsInf(slope, 0) {
		return r2.Vec{X: offset, Y: p.Y}
	}
	counterSlope := -1 / slope
	counterOffset := p.Y - p.X*counterSlope
	x := (counterOffset - offset) / (slope - counterSlope)
	return r2.Vec{X: x, Y: x*slope + offset}
}

// SquaredDistance returns the squared euclidean distance between a and b.
func SquaredDistance(a, b r2.Vec) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// SquaredDistanceToSegment returns the squared distance from p to the
// segment between a and b. When the projection of p falls strictly between
// the endpoints along x the perpendicular distance is used, otherwise the
// distance to the nearer endpoint.
func SquaredDistanceToSegment(p, a, b r2.Vec) float64 {
	proj := ProjectOnLine(p, a, b)
	lo, hi := a.X, b.X
	if lo > hi {
		lo, hi = hi, lo
	}
	if proj.X > lo && proj.X < hi {
		return SquaredDistance(p, proj)
	}
	return math.Min(SquaredDistance(p, a), SquaredDistance(p, b))
}
