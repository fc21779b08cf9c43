package scanner

import (
	"github.com/hueristiq/hq-go-weburl/ascii"
	hqerrors "github.com/hueristiq/hq-go-weburl/errors"
	"github.com/hueristiq/hq-go-weburl/schemes"
)

// Base is the subset of a previously-scanned URL a relative reference may
// borrow components from.
type Base struct {
	Ranges *ScannedRanges

	// HasWindowsDriveFirstPathSegment reports whether Ranges' first path
	// segment is a normalized Windows drive letter, for the file-URL
	// drive-letter-copy quirk (spec.md §4.5.1, §4.4).
	HasWindowsDriveFirstPathSegment bool
}

// scan holds the mutable cursor state the state machine threads through.
type scan struct {
	input string
	pos   int

	base    *Base
	onError hqerrors.Callback

	result *ScannedRanges
}

// Scan partitions input into a ScannedRanges, consulting base for relative
// references. input must already have had leading/trailing C0-or-space
// trimmed and embedded TAB/LF/CR removed (spec.md §6.1) — the caller (the
// root url package's ParseOptions) is responsible for that preprocessing so
// the byte offsets reported here land in the cleaned string.
func Scan(input string, base *Base, onError hqerrors.Callback) (*ScannedRanges, error) {
	s := &scan{
		input: input,
		base:  base,
		onError: onError,
		result: &ScannedRanges{
			Input:    input,
			Scheme:   noRange,
			Username: noRange,
			Password: noRange,
			Host:     noRange,
			Port:     noRange,
			Path:     noRange,
			Query:    noRange,
			Fragment: noRange,
		},
	}

	if ok := s.scanScheme(); ok {
		return s.scanAfterScheme()
	}

	return s.scanNoScheme()
}

func (s *scan) report(kind hqerrors.Validation) {
	if s.onError != nil {
		s.onError(kind, s.pos)
	}
}

func (s *scan) fail(kind hqerrors.Fatal) error {
	return hqerrors.NewParseError(kind, s.pos)
}

// scanScheme attempts to consume a "scheme:" prefix starting at s.pos == 0.
// It reports ok=false (without consuming anything) if the input has no
// valid scheme prefix, leaving the caller to treat it as a relative
// reference.
func (s *scan) scanScheme() bool {
	i := 0

	if i >= len(s.input) || !ascii.IsAlpha(s.input[i]) {
		return false
	}

	i++

	for i < len(s.input) {
		b := s.input[i]

		if ascii.IsAlphanumeric(b) || b == '+' || b == '-' || b == '.' {
			i++

			continue
		}

		break
	}

	if i >= len(s.input) || s.input[i] != ':' {
		return false
	}

	s.result.Scheme = Range{Start: 0, End: i}
	s.result.SchemeKind = schemes.KindOf(lower(s.input[:i]))
	s.pos = i + 1

	return true
}

func lower(s string) string {
	out := make([]byte, len(s))

	for i := 0; i < len(s); i++ {
		out[i] = ascii.ToLower(s[i])
	}

	return string(out)
}

// scanAfterScheme dispatches on the just-recorded scheme's kind, per
// spec.md §4.5's scheme-branch bullet.
func (s *scan) scanAfterScheme() (*ScannedRanges, error) {
	switch {
	case s.result.SchemeKind == schemes.KindFile:
		if !s.remainingStartsWithDoubleSlash() {
			s.report(hqerrors.FileSchemeMissingFollowingSolidus)
		}

		return s.scanFileURL(false)
	case s.result.SchemeKind != schemes.KindNotSpecial:
		if s.sameSchemeAsBase() {
			return s.scanSpecialRelativeOrAuthority()
		}

		return s.scanSpecialAuthoritySlashes()
	default:
		return s.scanOtherScheme()
	}
}

func (s *scan) remainingStartsWithDoubleSlash() bool {
	return s.pos+1 < len(s.input) && s.input[s.pos] == '/' && s.input[s.pos+1] == '/'
}

func (s *scan) sameSchemeAsBase() bool {
	return s.base != nil && s.base.Ranges.SchemeKind == s.result.SchemeKind
}

func (s *scan) scanSpecialRelativeOrAuthority() (*ScannedRanges, error) {
	if s.remainingStartsWithDoubleSlash() {
		s.pos += 2
		s.scanAuthority()

		return s.finish()
	}

	s.report(hqerrors.MissingSolidusBeforeAuthority)

	return s.scanRelative()
}

func (s *scan) scanSpecialAuthoritySlashes() (*ScannedRanges, error) {
	count := 0
	for s.pos+count < len(s.input) && isSlash(s.input[s.pos+count]) {
		count++
	}

	if count != 2 { //nolint:mnd
		s.report(hqerrors.MissingSolidusBeforeAuthority)
	}

	s.pos += count
	s.scanAuthority()

	return s.finish()
}

func (s *scan) scanOtherScheme() (*ScannedRanges, error) {
	switch {
	case s.pos < len(s.input) && s.input[s.pos] == '/':
		if s.pos+1 < len(s.input) && s.input[s.pos+1] == '/' {
			s.pos += 2
			s.scanAuthority()
		} else {
			s.scanPath(false)
		}
	default:
		s.scanOpaquePath()
	}

	return s.finish()
}

func (s *scan) scanOpaquePath() {
	start := s.pos

	end := start

	for end < len(s.input) && s.input[end] != '?' && s.input[end] != '#' {
		end++
	}

	s.result.Path = Range{Start: start, End: end}
	s.result.HasOpaquePath = true
	s.pos = end

	if s.pos < len(s.input) && s.input[s.pos] == '?' {
		s.pos++
		s.scanQuery()
	} else if s.pos < len(s.input) && s.input[s.pos] == '#' {
		s.pos++
		s.scanFragment()
	}
}

func (s *scan) scanNoScheme() (*ScannedRanges, error) {
	if s.base == nil {
		s.report(hqerrors.MissingSchemeNonRelativeURL)

		return nil, s.fail(hqerrors.FatalMissingScheme)
	}

	baseR := s.base.Ranges

	if baseR.HasOpaquePath {
		if s.pos < len(s.input) && s.input[s.pos] == '#' {
			// Scheme is a Range into the base's own Input, not s.input; it
			// is reported via SchemeKind only, not re-sliced here (the
			// caller recovers the scheme text from the base URL directly).
			s.result.SchemeKind = baseR.SchemeKind
			s.result.CopyFromBase.Add(ComponentPath)
			s.result.HasOpaquePath = true
			s.result.Path = Range{Start: -1, End: -1}
			s.pos++
			s.scanFragment()

			return s.finish()
		}

		s.report(hqerrors.MissingSchemeNonRelativeURL)

		return nil, s.fail(hqerrors.FatalRelativeURLWithoutBase)
	}

	// As above, Scheme is deliberately not copied here: it is a Range into
	// the base's Input, and s.result.Input is this scan's own (possibly
	// shorter or differently laid out) input string.
	s.result.SchemeKind = baseR.SchemeKind

	if baseR.SchemeKind == schemes.KindFile {
		return s.scanFileURL(true)
	}

	return s.scanRelative()
}

// scanRelative implements spec.md §4.5's "relative" state.
func (s *scan) scanRelative() (*ScannedRanges, error) {
	baseR := s.base.Ranges

	if s.pos >= len(s.input) {
		s.copyAuthorityAndPath()

		return s.finish()
	}

	switch s.input[s.pos] {
	case '/':
		s.pos++

		return s.scanRelativeSlash()
	case '?':
		s.copyAuthorityAndPath()
		s.pos++
		s.scanQuery()

		return s.finish()
	case '#':
		s.copyAuthorityAndPath()
		s.result.CopyFromBase.Add(ComponentQuery)
		s.pos++
		s.scanFragment()

		return s.finish()
	default:
		if s.result.SchemeKind != schemes.KindNotSpecial && s.input[s.pos] == '\\' {
			s.report(hqerrors.UnexpectedReverseSolidus)
			s.pos++

			return s.scanRelativeSlash()
		}

		s.copyAuthority()
		s.result.CopyFromBase.Add(ComponentPath)
		s.scanPath(baseR.SchemeKind == schemes.KindFile)

		return s.finish()
	}
}

func (s *scan) scanRelativeSlash() (*ScannedRanges, error) {
	special := s.result.SchemeKind != schemes.KindNotSpecial

	if special && s.pos < len(s.input) && (s.input[s.pos] == '/' || s.input[s.pos] == '\\') {
		if s.input[s.pos] == '\\' {
			s.report(hqerrors.UnexpectedReverseSolidus)
		}

		s.pos++
		s.skipSlashes()
		s.scanAuthority()

		return s.finish()
	}

	if s.pos < len(s.input) && s.input[s.pos] == '/' {
		s.pos++
		s.scanAuthority()

		return s.finish()
	}

	s.copyAuthority()
	s.scanPath(false)

	return s.finish()
}

func (s *scan) copyAuthority() {
	s.result.CopyFromBase.Add(ComponentUsername)
	s.result.CopyFromBase.Add(ComponentPassword)
	s.result.CopyFromBase.Add(ComponentHostname)
	s.result.CopyFromBase.Add(ComponentPort)
	s.result.HasAuthority = s.base.Ranges.HasAuthority
}

func (s *scan) copyAuthorityAndPath() {
	s.copyAuthority()
	s.result.CopyFromBase.Add(ComponentPath)
	s.result.HasOpaquePath = s.base.Ranges.HasOpaquePath
}

// scanFileURL implements spec.md §4.5.1. fromNoScheme indicates we arrived
// here via a relative reference with a file: base rather than an explicit
// "file:" scheme prefix.
func (s *scan) scanFileURL(fromNoScheme bool) (*ScannedRanges, error) {
	_ = fromNoScheme

	slashes := 0
	for s.pos+slashes < len(s.input) && isSlash(s.input[s.pos+slashes]) {
		slashes++
	}

	switch {
	case slashes == 0:
		if s.base == nil || s.base.Ranges.SchemeKind != schemes.KindFile {
			s.scanPath(false)

			return s.finish()
		}

		if s.pos >= len(s.input) {
			s.copyAuthorityAndPath()

			return s.finish()
		}

		switch s.input[s.pos] {
		case '?':
			s.copyAuthority()
			s.result.CopyFromBase.Add(ComponentPath)
			s.pos++
			s.scanQuery()
		case '#':
			s.copyAuthorityAndPath()
			s.result.CopyFromBase.Add(ComponentQuery)
			s.pos++
			s.scanFragment()
		default:
			s.copyAuthority()
			s.result.AbsolutePathsCopyWindowsDriveFromBase = true
			s.result.CopyFromBase.Add(ComponentPath)
			s.scanPath(true)
		}

		return s.finish()

	case slashes == 1:
		s.pos++
		s.result.AbsolutePathsCopyWindowsDriveFromBase = true

		if s.base != nil && s.base.Ranges.SchemeKind == schemes.KindFile {
			s.result.CopyFromBase.Add(ComponentHostname)
			s.result.HasAuthority = s.base.Ranges.HasAuthority
		}

		s.scanPath(true)

		return s.finish()

	default:
		for i := s.pos; i < s.pos+slashes; i++ {
			if s.input[i] == '\\' {
				s.report(hqerrors.UnexpectedReverseSolidus)

				break
			}
		}

		s.pos += slashes
		s.result.HasAuthority = true

		authorityStart := s.pos
		s.scanAuthority()

		if ascii.HasWindowsDrivePrefix([]byte(s.input[authorityStart:])) {
			s.pos = authorityStart
			s.result.HasAuthority = false
			s.result.Host = noRange
			s.scanPath(true)
		}

		return s.finish()
	}
}

func isSlash(b byte) bool { return b == '/' || b == '\\' }

func (s *scan) skipSlashes() {
	for s.pos < len(s.input) && isSlash(s.input[s.pos]) {
		s.pos++
	}
}

// scanAuthority implements spec.md §4.5's "authority" and "port" states.
func (s *scan) scanAuthority() {
	s.result.HasAuthority = true

	special := s.result.SchemeKind != schemes.KindNotSpecial

	end := s.pos

	for end < len(s.input) {
		b := s.input[end]
		if b == '/' || b == '?' || b == '#' || (special && b == '\\') {
			break
		}

		end++
	}

	authority := s.input[s.pos:end]

	atIdx := -1

	for i := len(authority) - 1; i >= 0; i-- {
		if authority[i] == '@' {
			atIdx = i

			break
		}
	}

	hostStart := s.pos

	if atIdx >= 0 {
		s.report(hqerrors.UnexpectedCommercialAt)

		credStart := s.pos
		credEnd := s.pos + atIdx

		colonIdx := -1

		for i := credStart; i < credEnd; i++ {
			if s.input[i] == ':' {
				colonIdx = i

				break
			}
		}

		if colonIdx == -1 {
			s.result.Username = Range{Start: credStart, End: credEnd}
		} else {
			s.result.Username = Range{Start: credStart, End: colonIdx}
			s.result.Password = Range{Start: colonIdx + 1, End: credEnd}
		}

		hostStart = credEnd + 1
	}

	// Find host end: first unbracketed ':'.
	hostEnd := end
	portRange := noRange
	bracket := false

	for i := hostStart; i < end; i++ {
		switch s.input[i] {
		case '[':
			bracket = true
		case ']':
			bracket = false
		case ':':
			if !bracket {
				hostEnd = i
				portRange = Range{Start: i + 1, End: end}

				break
			}
		}

		if hostEnd != end {
			break
		}
	}

	if hostStart >= end && atIdx >= 0 {
		s.report(hqerrors.UnexpectedCredentialsWithoutHost)
	}

	s.result.Host = Range{Start: hostStart, End: hostEnd}
	s.result.Port = portRange

	s.pos = end

	s.scanPathStart()
}

func (s *scan) scanPathStart() {
	special := s.result.SchemeKind != schemes.KindNotSpecial

	switch {
	case s.pos >= len(s.input):
		s.result.Path = Range{Start: s.pos, End: s.pos}
	case s.input[s.pos] == '?':
		s.pos++
		s.scanQuery()
	case s.input[s.pos] == '#':
		s.pos++
		s.scanFragment()
	case s.input[s.pos] == '/':
		s.scanPath(s.result.SchemeKind == schemes.KindFile)
	case special && s.input[s.pos] == '\\':
		s.report(hqerrors.UnexpectedReverseSolidus)
		s.scanPath(s.result.SchemeKind == schemes.KindFile)
	default:
		s.scanPath(s.result.SchemeKind == schemes.KindFile)
	}
}

func (s *scan) scanPath(isFile bool) {
	_ = isFile

	start := s.pos

	end := start

	for end < len(s.input) {
		b := s.input[end]
		if b == '?' || b == '#' {
			break
		}

		end++
	}

	s.result.Path = Range{Start: start, End: end}
	s.pos = end

	if s.result.SchemeKind == schemes.KindNotSpecial && !s.result.HasAuthority {
		if start == end || (start < len(s.input) && s.input[start] != '/') {
			// non-special, no-authority, and the first byte (if any) is
			// not '/': this is an opaque path per spec.md §4.5 "other".
			s.result.HasOpaquePath = true
		}
	}

	if s.pos < len(s.input) && s.input[s.pos] == '?' {
		s.pos++
		s.scanQuery()
	} else if s.pos < len(s.input) && s.input[s.pos] == '#' {
		s.pos++
		s.scanFragment()
	}
}

func (s *scan) scanQuery() {
	start := s.pos

	end := start

	for end < len(s.input) && s.input[end] != '#' {
		end++
	}

	s.result.Query = Range{Start: start, End: end}
	s.pos = end

	if s.pos < len(s.input) && s.input[s.pos] == '#' {
		s.pos++
		s.scanFragment()
	}
}

func (s *scan) scanFragment() {
	s.result.Fragment = Range{Start: s.pos, End: len(s.input)}
	s.pos = len(s.input)
}

// finish runs the final checks common to every accepted path through the
// state machine.
func (s *scan) finish() (*ScannedRanges, error) {
	if s.result.SchemeKind != schemes.KindNotSpecial && !s.result.HasAuthority &&
		!s.result.CopyFromBase.Has(ComponentHostname) {
		// Special schemes always require authority; a scan path that
		// never entered scanAuthority/copyAuthority for one is a scheme
		// parsed with "//" missing — report it for diagnostic purposes.
		if s.result.Scheme.Valid() && s.result.SchemeKind != schemes.KindFile {
			s.report(hqerrors.MissingSolidusBeforeAuthority)
		}
	}

	return s.result, nil
}
