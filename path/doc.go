// Package path implements the WHATWG URL Standard's path parser (spec.md
// §4.4): a visitor-based walker that consumes a path string — optionally
// merged against a base URL's path — in reverse, yielding normalized
// components without allocating a dynamic stack.
//
// The same Walk function drives three different Visitor implementations
// elsewhere in this module: a metrics pass that sizes an output buffer, a
// write pass that fills it, and a validation pass that reports non-fatal
// irregularities.
package path
