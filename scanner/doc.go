// Package scanner implements the WHATWG URL Standard's scanning phase
// (spec.md §4.5): a byte-based state machine that partitions an input
// string (and, for relative references, a base URL) into component ranges
// without allocating, recording which components must be copied verbatim
// from the base URL.
package scanner
