// Package bitimage implements the binary pixel grid that the tracing
// pipeline operates on.
//
// An Image is a row-major grid of on/off bits. Pixels are identified by
// their linear index (row*cols + col), called a locator. Locators are
// stable for the lifetime of the image and are what the tracer and merger
// compare for pixel identity; conversion to (row, col) coordinates is a
// final step.
//
// Sections are rectangular views enumerated in row-major order. They never
// copy pixel data, only locators. Consumers rely on the deterministic
// enumeration order.
package bitimage
