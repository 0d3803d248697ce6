package geometry

import "gonum.org/v1/gonum/spatial/r2"

// SimplifyPolyline reduces pts in place using Ramer-Douglas-Peucker and
// returns the number of points kept. Points beyond the returned count are
// left in unspecified order. A tolerance of zero or less, a polyline with
// fewer than three points, or coincident endpoints keep the input unchanged.
//
// coords maps an element to its position, letting callers simplify any
// point representation without copying into a temporary slice.
func SimplifyPolyline[T any](pts []T, coords func(T) r2.Vec, tolerance float64) int {
	if tolerance <= 0 {
		return len(pts)
	}
	return simplify(pts, coords, tolerance*tolerance, 0, len(pts))
}

// simplify operates on the half-open range [lo, hi) and returns the new end
// of the kept prefix. The recursion resolves the far half first, while the
// shared vertex is still in place, and the compaction pass then slides the
// far half's survivors left over the gap behind the near half's survivors.
func simplify[T any](pts []T, coords func(T) r2.Vec, sqTolerance float64, lo, hi int) int {
	a, b := lo, hi-1
	if b-a < 2 || PointsEqual(coords(pts[a]), coords(pts[b])) {
		return hi
	}

	pa, pb := coords(pts[a]), coords(pts[b])
	furthest := a + 1
	maxSq := SquaredDistanceToSegment(coords(pts[furthest]), pa, pb)
	for i := a + 2; i < b; i++ {
		if sq := SquaredDistanceToSegment(coords(pts[i]), pa, pb); sq > maxSq {
			furthest = i
			maxSq = sq
		}
	}

	if maxSq > sqTolerance {
		bNew := simplify(pts, coords, sqTolerance, furthest, hi)
		aNew := simplify(pts, coords, sqTolerance, a, furthest+1)
		for pt := furthest + 1; pt < bNew; pt++ {
			pts[aNew], pts[pt] = pts[pt], pts[aNew]
			aNew++
		}
		return aNew
	}
	pts[b], pts[a+1] = pts[a+1], pts[b]
	return a + 2
}
