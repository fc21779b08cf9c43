// Package writer implements the WHATWG URL Standard's serialization phase
// (spec.md §4.7): a two-pass writer that first measures the exact byte
// length the canonical serialization of a set of components requires, then
// fills a single pre-sized buffer in one pass, so a parsed URL's string
// form is built with exactly one allocation.
package writer
