package path

// Visitor receives the normalized path components a Walk produces, per
// spec.md §4.4. Walk visits in reverse final order — the rightmost output
// component first — so a buffer writer sized by a prior metrics pass can
// fill its pre-allocated output back to front. The same Walk drives three
// different Visitors: metrics, buffer-write, and validation.
type Visitor interface {
	// VisitInputComponent reports a segment taken from the input string
	// (not yet normalized): it still needs percent-encoding against the
	// path encode set, and if isWindowsDriveLetter, its second byte must
	// be rewritten to ':' on write.
	VisitInputComponent(segment []byte, isWindowsDriveLetter bool)

	// VisitBaseComponent reports a segment taken from the base URL's
	// path: it is already normalized and is written verbatim.
	VisitBaseComponent(segment []byte)

	// VisitEmptyComponents reports n consecutive empty segments.
	VisitEmptyComponents(n int)

	// VisitPathSigil reports that the resulting path begins with "//"
	// and the URL has no authority, requiring a "/." prefix on write to
	// prevent the path from being re-parsed as an authority.
	VisitPathSigil()
}

// Options configures a Walk.
type Options struct {
	// IsSpecial is whether the URL's scheme is one of the six special
	// schemes; it additionally enables '\\' as a path separator.
	IsSpecial bool

	// IsFileScheme is whether the URL's scheme is specifically "file",
	// enabling Windows-drive-letter handling.
	IsFileScheme bool

	// HasAuthority is whether the URL has an authority component,
	// suppressing the path sigil.
	HasAuthority bool

	// AbsolutePathsCopyWindowsDriveFromBase is set by the scanner for
	// file-URL shapes where an absolute input path should inherit the
	// base URL's Windows drive letter when the input supplies none.
	AbsolutePathsCopyWindowsDriveFromBase bool
}
