// Package ascii provides the byte-level predicates and tables the WHATWG
// URL Standard's parser is built on: ASCII character classes, forbidden
// host/domain code points, hex digit decoding, path-separator and
// dot-segment recognition, and Windows drive-letter detection.
//
// Every predicate here operates on a single byte and returns false for any
// byte outside the ASCII range (0x00-0x7F); callers needing a verdict on
// non-ASCII input decode the rune themselves first (see IsNonURLCodePoint).
package ascii
