package scanner

import "github.com/hueristiq/hq-go-weburl/schemes"

// Component enumerates the eight URL components the scanner partitions the
// input into (spec.md §3).
type Component int

const (
	ComponentScheme Component = iota
	ComponentUsername
	ComponentPassword
	ComponentHostname
	ComponentPort
	ComponentPath
	ComponentQuery
	ComponentFragment
)

// ComponentSet is a bitset over Component, naming which components a scan
// result inherits verbatim from the base URL.
type ComponentSet uint8

func (s ComponentSet) Has(c Component) bool   { return s&(1<<uint(c)) != 0 }
func (s *ComponentSet) Add(c Component)       { *s |= 1 << uint(c) }

// Range is a byte-offset span [Start, End) into an input string. A Range
// with Start == -1 means "not present".
type Range struct {
	Start, End int
}

// Valid reports whether r refers to an actual span of the input.
func (r Range) Valid() bool { return r.Start >= 0 }

// Len reports the byte length of the range, or 0 if invalid.
func (r Range) Len() int {
	if !r.Valid() {
		return 0
	}

	return r.End - r.Start
}

func (r Range) slice(s string) string {
	if !r.Valid() {
		return ""
	}

	return s[r.Start:r.End]
}

var noRange = Range{Start: -1, End: -1} //nolint:gochecknoglobals

// ScannedRanges is the scanner's output: nine optional byte-index ranges
// over the (already trimmed/filtered) input, the resolved SchemeKind, and
// the flags spec.md §3 describes.
type ScannedRanges struct {
	Input string

	Scheme, Username, Password, Host, Port Range
	Path, Query, Fragment                  Range

	SchemeKind schemes.Kind

	HasAuthority bool
	HasOpaquePath bool

	// AbsolutePathsCopyWindowsDriveFromBase is the file-URL quirk
	// spec.md §4.5.1 describes for the one-slash shape.
	AbsolutePathsCopyWindowsDriveFromBase bool

	CopyFromBase ComponentSet
}

// Scheme returns the raw scheme text.
func (r *ScannedRanges) SchemeText() string { return r.Scheme.slice(r.Input) }

// UsernameText returns the raw (not yet percent-decoded) username text.
func (r *ScannedRanges) UsernameText() string { return r.Username.slice(r.Input) }

// PasswordText returns the raw password text.
func (r *ScannedRanges) PasswordText() string { return r.Password.slice(r.Input) }

// HostText returns the raw hostname text.
func (r *ScannedRanges) HostText() string { return r.Host.slice(r.Input) }

// PortText returns the raw port text.
func (r *ScannedRanges) PortText() string { return r.Port.slice(r.Input) }

// PathText returns the raw path text.
func (r *ScannedRanges) PathText() string { return r.Path.slice(r.Input) }

// QueryText returns the raw query text.
func (r *ScannedRanges) QueryText() string { return r.Query.slice(r.Input) }

// FragmentText returns the raw fragment text.
func (r *ScannedRanges) FragmentText() string { return r.Fragment.slice(r.Input) }
