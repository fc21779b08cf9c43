package url

import (
	"strings"
	"unicode/utf8"

	"github.com/hueristiq/hq-go-weburl/ascii"
	hqerrors "github.com/hueristiq/hq-go-weburl/errors"
	"github.com/hueristiq/hq-go-weburl/host"
	"github.com/hueristiq/hq-go-weburl/path"
	"github.com/hueristiq/hq-go-weburl/scanner"
	"github.com/hueristiq/hq-go-weburl/schemes"
	"github.com/hueristiq/hq-go-weburl/writer"
)

// Options configures a single Parse/ParseOptions call. The zero value
// discards every validation error and parses with no base URL.
type Options struct {
	// OnValidation, if non-nil, is invoked once per non-fatal irregularity
	// observed while parsing (spec.md §6.4, §7). Reporting is purely
	// diagnostic: a parse that discards every call still produces the same
	// URL value.
	OnValidation hqerrors.Callback
}

// Parse parses input as an absolute URL with no base, per spec.md §6.1.
func Parse(input string) (*URL, error) {
	return ParseOptions(input, nil, Options{})
}

// Resolve parses ref as a (possibly relative) reference against u as its
// base URL, per spec.md §4.8 "resolve". u holds no reference to the
// result, and the result holds no reference back to u (spec.md §9's
// "no base-URL object graph" design note) — resolution is a pure function
// of u's own serialized bytes and ref.
func (u *URL) Resolve(ref string) (*URL, error) {
	return ParseOptions(ref, u, Options{})
}

// ParseOptions parses input as a URL, resolving it against base if base is
// non-nil, under opts.
func ParseOptions(input string, base *URL, opts Options) (*URL, error) {
	clean := preprocess(input, opts.OnValidation)

	var sbase *scanner.Base

	if base != nil {
		// The scanner never stores a reference to a base's own parse: it
		// is handed base's already-canonical serialization and re-scans
		// it fresh (spec.md §9), so CopyFromBase ranges are always
		// resolved against that one string's offsets, not this scan's.
		baseRanges, err := scanner.Scan(base.raw, nil, nil)
		if err != nil {
			return nil, err
		}

		sbase = &scanner.Base{Ranges: baseRanges}
	}

	ranges, err := scanner.Scan(clean, sbase, opts.OnValidation)
	if err != nil {
		return nil, err
	}

	return build(ranges, base, opts.OnValidation)
}

// preprocess trims leading/trailing C0-controls-and-space and strips
// embedded TAB/LF/CR, per spec.md §6.1, reporting each removed byte through
// onError.
func preprocess(input string, onError hqerrors.Callback) string {
	start, end := 0, len(input)

	for start < end && ascii.IsC0ControlOrSpace(input[start]) {
		report(onError, hqerrors.UnexpectedC0ControlOrSpace, start)

		start++
	}

	for end > start && ascii.IsC0ControlOrSpace(input[end-1]) {
		end--

		report(onError, hqerrors.UnexpectedC0ControlOrSpace, end)
	}

	trimmed := input[start:end]

	if !strings.ContainsAny(trimmed, "\t\n\r") {
		return trimmed
	}

	var b strings.Builder

	b.Grow(len(trimmed))

	for i := 0; i < len(trimmed); i++ {
		c := trimmed[i]

		if ascii.IsASCIITabOrNewline(c) {
			report(onError, hqerrors.UnexpectedASCIITabOrNewline, i)

			continue
		}

		b.WriteByte(c)
	}

	return b.String()
}

func report(onError hqerrors.Callback, kind hqerrors.Validation, pos int) {
	if onError != nil {
		onError(kind, pos)
	}
}

// build turns a scanner result into a URL value, running the host/port
// validation spec.md §4.6 describes and assembling the writer.Components
// the two-pass serializer needs.
func build(r *scanner.ScannedRanges, base *URL, onError hqerrors.Callback) (*URL, error) {
	isSpecial := r.SchemeKind != schemes.KindNotSpecial

	c := writer.Components{
		SchemeKind: r.SchemeKind,
		Scheme:     resolveScheme(r, base),
	}

	if err := buildAuthority(&c, r, base, onError); err != nil {
		return nil, err
	}

	buildPath(&c, r, base, isSpecial)
	buildQuery(&c, r, base)
	buildFragment(&c, r)

	validateText(r.PathText(), onError)
	validateText(r.QueryText(), onError)
	validateText(r.FragmentText(), onError)

	serialized, st := writer.Serialize(c)

	return &URL{raw: serialized, st: st, host: c.Host}, nil
}

// resolveScheme returns the URL's scheme text, lower-cased. r.Scheme is only
// ever a Range into r.Input when the input itself supplied a scheme prefix;
// a relative reference that inherits its scheme from base must recover the
// text from base's own storage instead (scanner.scan.go deliberately leaves
// r.Scheme unset in that case, since it cannot index into base's string).
func resolveScheme(r *scanner.ScannedRanges, base *URL) string {
	if r.Scheme.Valid() {
		return strings.ToLower(r.SchemeText())
	}

	if base != nil {
		return base.Scheme()
	}

	return ""
}

func buildAuthority(c *writer.Components, r *scanner.ScannedRanges, base *URL, onError hqerrors.Callback) error {
	switch {
	case r.HasAuthority:
		c.HasAuthority = true

		if r.Username.Valid() {
			c.HasUsername = true
			c.Username = r.UsernameText()
		}

		if r.Password.Valid() {
			c.HasPassword = true
			c.Password = r.PasswordText()
		}

		h, err := host.Parse(r.HostText(), r.SchemeKind != schemes.KindNotSpecial, r.SchemeKind, onError)
		if err != nil {
			return err
		}

		c.Host = h

		port, hasPort, err := parsePort(r, onError)
		if err != nil {
			return err
		}

		c.HasPort = hasPort
		c.Port = port

	case r.CopyFromBase.Has(scanner.ComponentHostname) && base != nil:
		c.HasAuthority = base.HasAuthority()
		c.Host = base.host
		c.HasUsername = base.st.HasUsername
		c.Username = base.Username()
		c.HasPassword = base.st.HasPassword
		c.Password = base.Password()

		if port, ok := base.Port(); ok {
			c.HasPort = true
			c.Port = port
		}
	}

	if (c.HasUsername || c.HasPassword) && (c.Host == nil || c.Host.IsEmpty()) {
		report(onError, hqerrors.UnexpectedCredentialsWithoutHost, 0)

		return hqerrors.NewParseError(hqerrors.FatalCredentialsWithoutHost, 0)
	}

	if c.HasPort && c.Host != nil && c.Host.IsEmpty() {
		report(onError, hqerrors.UnexpectedPortWithoutHost, 0)
	}

	return nil
}

// parsePort parses r's port range as a decimal u16, reporting and failing
// fatally on a non-digit byte or an out-of-range value, and dropping the
// port when it equals the scheme's default (spec.md §4.6, §6.2).
func parsePort(r *scanner.ScannedRanges, onError hqerrors.Callback) (port uint16, ok bool, err error) {
	if !r.Port.Valid() {
		return 0, false, nil
	}

	text := r.PortText()
	if text == "" {
		return 0, false, nil
	}

	value := 0

	for i := 0; i < len(text); i++ {
		b := text[i]

		if !ascii.IsDigit(b) {
			report(onError, hqerrors.PortInvalid, r.Port.Start+i)

			return 0, false, hqerrors.NewParseError(hqerrors.FatalPortOutOfRange, r.Port.Start+i)
		}

		value = value*10 + int(b-'0') //nolint:mnd

		if value > 65535 { //nolint:mnd
			report(onError, hqerrors.PortOutOfRange, r.Port.Start)

			return 0, false, hqerrors.NewParseError(hqerrors.FatalPortOutOfRange, r.Port.Start)
		}
	}

	if def, has := schemes.DefaultPort(r.SchemeKind.String()); has && uint16(value) == def { //nolint:gosec
		return 0, false, nil
	}

	return uint16(value), true, nil //nolint:gosec
}

func buildPath(c *writer.Components, r *scanner.ScannedRanges, base *URL, isSpecial bool) {
	switch {
	case r.CopyFromBase.Has(scanner.ComponentPath) && !r.Path.Valid() && base != nil:
		// Verbatim copy shapes (spec.md §4.5's empty/query-only/
		// fragment-only relative references): the scanner never ran
		// scanPath, so there is no merge to perform — the base's whole,
		// already-normalized path is reused unchanged.
		c.HasVerbatimPath = true
		c.VerbatimPath = base.Path()
		c.VerbatimHasSigil = base.st.HasPathSigil
		c.VerbatimIsOpaque = base.st.HasOpaquePath

	case r.HasOpaquePath:
		c.HasOpaquePath = true
		c.OpaquePath = r.PathText()

	case r.CopyFromBase.Has(scanner.ComponentPath):
		c.PathInput = []byte(r.PathText())

		if base != nil {
			c.PathBase = []byte(base.Path())
		}

		c.PathOpt = pathOptions(r, isSpecial, c.HasAuthority)

	default:
		c.PathInput = []byte(r.PathText())
		c.PathOpt = pathOptions(r, isSpecial, c.HasAuthority)

		if r.AbsolutePathsCopyWindowsDriveFromBase && base != nil {
			c.PathBase = []byte(base.Path())
		}
	}
}

func pathOptions(r *scanner.ScannedRanges, isSpecial, hasAuthority bool) path.Options {
	return path.Options{
		IsSpecial:                            isSpecial,
		IsFileScheme:                         r.SchemeKind == schemes.KindFile,
		HasAuthority:                         hasAuthority,
		AbsolutePathsCopyWindowsDriveFromBase: r.AbsolutePathsCopyWindowsDriveFromBase,
	}
}

func buildQuery(c *writer.Components, r *scanner.ScannedRanges, base *URL) {
	switch {
	case r.Query.Valid():
		c.HasQuery = true
		c.Query = r.QueryText()

	case r.CopyFromBase.Has(scanner.ComponentQuery) && base != nil:
		if q, ok := base.Query(); ok {
			c.HasQuery = true
			c.Query = q
			c.QueryAlreadyFormEncoded = base.st.QueryIsKnownFormEncoded
		}
	}
}

func buildFragment(c *writer.Components, r *scanner.ScannedRanges) {
	if r.Fragment.Valid() {
		c.HasFragment = true
		c.Fragment = r.FragmentText()
	}
}

// validateText reports non-URL code points and unescaped '%' characters in
// a raw (not yet percent-decoded) component, per spec.md §4.6 item 4.
func validateText(text string, onError hqerrors.Callback) {
	if onError == nil || text == "" {
		return
	}

	for i := 0; i < len(text); {
		if text[i] == '%' {
			if i+2 >= len(text) || !ascii.IsHexDigit(text[i+1]) || !ascii.IsHexDigit(text[i+2]) {
				report(onError, hqerrors.UnescapedPercentSign, i)
			}

			i++

			continue
		}

		r, size := utf8.DecodeRuneInString(text[i:])

		if ascii.IsNonURLCodePoint(r) {
			report(onError, hqerrors.InvalidURLCodePoint, i)
		}

		i += size
	}
}
