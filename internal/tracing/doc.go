// Package tracing turns a skeletonised bit-image into polylines.
//
// The tracer recursively splits the image into sections along sparse
// central lines, fits short segments inside leaf sections, and glues the
// partial polylines back together across the shared split lines. Polylines
// are slices of pixel locators; two polylines connect exactly when they
// share an endpoint locator.
package tracing
