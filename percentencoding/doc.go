// Package percentencoding implements the WHATWG URL Standard's percent-encode
// and percent-decode algorithms as an EncodeSet-parameterized, allocation-free
// iteration primitive (Encoder/Decoder), with eager helpers (Encode/Decode)
// and an exact-length pass (Measure) layered on top for callers that need to
// size a buffer before writing into it.
//
// Encoding is selective: each URL component (userinfo, host, path, query,
// fragment) percent-encodes a different, slightly larger set of ASCII bytes,
// always on top of encoding every non-ASCII byte. The predefined sets in this
// package — C0Control, Fragment, Query, SpecialQuery, Path, UserInfo,
// Component, and Form — follow the table in spec.md §6.3: each is built from
// an earlier one by adding a few more bytes, except that Query also drops '`'
// from the fragment set (so Query is not a superset of Fragment), and Form
// clears space from its mask and substitutes '+' for it instead.
package percentencoding
