// Package rastertrace extracts vector polylines from raster binary images.
//
// The pipeline thins the on-regions of the input to one pixel wide
// skeletons, recursively partitions the image along sparse central lines,
// fits short segments inside the leaf sections, and merges the partial
// polylines across section boundaries into complete strokes.
//
// # Input
//
// The entry point is deliberately generic: any row-major pixel slice plus a
// predicate deciding which pixels belong to a stroke. Helpers for building
// such masks from decoded images live in internal packages used by the
// command line tool; the library
// itself never touches image formats.
//
// # Output
//
// Polylines are ordered lists of (row, column) pixel coordinates. The
// result is a faithful pixel-level trace; call Simplify to reduce vertices
// and FitLineSegment to summarise a polyline as a single straight segment.
//
// # Determinism
//
// Tracing is fully deterministic for a given input and options. Only
// FitLineSegment draws random samples, and it accepts a seeded source.
package rastertrace
