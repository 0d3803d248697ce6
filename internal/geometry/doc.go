// Package geometry provides the 2D numerics used during and after polyline
// fitting: slopes, projections, squared distances, Ramer-Douglas-Peucker
// simplification and a RANSAC segment fitter.
//
// Points are gonum r2.Vec values. Slope computations deliberately carry NaN
// (coincident points) and +/-Inf (vertical lines) through projection and
// distance code instead of collapsing them; callers that sample degenerate
// point pairs rely on the NaN result to skip them.
//
// # Numeric Conventions
//
//   - Floating point comparisons use a fixed tolerance of 1e-9.
//   - Squared distances are preferred throughout; square roots are never
//     taken internally.
//   - For vertical lines the "offset" of a line switches meaning from
//     y-intercept to x-intercept.
package geometry
