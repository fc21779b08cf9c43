package parser

import (
	"strings"

	hqweburl "github.com/hueristiq/hq-go-weburl"
	"github.com/hueristiq/hq-go-weburl/domain"
	hqerrors "github.com/hueristiq/hq-go-weburl/errors"
)

// Parser wraps the root url package's Parse/Resolve with the conveniences
// the teacher's own Parser offered: a default scheme applied to inputs that
// are missing one, a configurable TLD list for domain decomposition, and a
// validation mode (lenient by default, or strict: the first non-fatal
// irregularity observed aborts the parse).
//
// Fields:
//   - defaultScheme (string): scheme prepended to inputs that don't carry one.
//   - strict (bool): whether a reported validation aborts the parse.
//   - onValidation (hqerrors.Callback): caller-supplied validation sink.
//   - domains (*domain.Parser): TLD matcher used by ParseDomain.
type Parser struct {
	defaultScheme string
	strict        bool
	onValidation  hqerrors.Callback

	domains *domain.Parser
}

// SetDefaultScheme sets the scheme prepended to scheme-less inputs.
func (p *Parser) SetDefaultScheme(scheme string) {
	p.defaultScheme = scheme
}

// SetStrict toggles strict validation mode: when true, the first Validation
// reported while parsing is returned as a FatalValidationError instead of
// being silently folded into an otherwise-successful result.
func (p *Parser) SetStrict(strict bool) {
	p.strict = strict
}

// SetValidationCallback registers cb to receive every Validation observed,
// in addition to (and regardless of) strict mode's own bookkeeping.
func (p *Parser) SetValidationCallback(cb hqerrors.Callback) {
	p.onValidation = cb
}

// SetTLDs reconfigures the Parser's domain decomposition to use a custom
// TLD list instead of the default official+pseudo set.
func (p *Parser) SetTLDs(tld ...string) {
	p.domains = domain.New(domain.WithTLDs(tld...))
}

// DefaultScheme returns the scheme this Parser prepends to scheme-less
// inputs, or "" if none is configured. Exposed so collaborators (such as the
// extractor package's FromParser option) can match their own matching rules
// to this Parser's own parsing rules instead of duplicating the setting.
func (p *Parser) DefaultScheme() string {
	return p.defaultScheme
}

// Parse parses raw as an absolute URL, applying the default scheme (if one
// is configured and raw is missing one) and validation mode.
func (p *Parser) Parse(raw string) (parsed *hqweburl.URL, err error) {
	return p.parse(raw, nil)
}

// ParseRef parses raw as a reference resolved against base, under the same
// default-scheme and validation-mode rules as Parse. A relative raw with a
// nil base that has no scheme of its own fails with FatalMissingScheme.
func (p *Parser) ParseRef(raw string, base *hqweburl.URL) (parsed *hqweburl.URL, err error) {
	return p.parse(raw, base)
}

func (p *Parser) parse(raw string, base *hqweburl.URL) (parsed *hqweburl.URL, err error) {
	if p.defaultScheme != "" {
		raw = p.addScheme(raw)
	}

	var sawValidation bool

	firstPos := 0

	onValidation := func(kind hqerrors.Validation, pos int) {
		if !sawValidation {
			sawValidation = true
			firstPos = pos
		}

		if p.onValidation != nil {
			p.onValidation(kind, pos)
		}
	}

	parsed, err = hqweburl.ParseOptions(raw, base, hqweburl.Options{OnValidation: onValidation})
	if err != nil {
		return nil, err
	}

	if p.strict && sawValidation {
		return nil, hqerrors.NewParseError(hqerrors.FatalValidationError, firstPos)
	}

	return parsed, nil
}

// ParseDomain decomposes hostname using the Parser's configured TLD list
// (the default official+pseudo set unless SetTLDs/WithTLDs was used).
func (p *Parser) ParseDomain(hostname string) *domain.Domain {
	return p.domains.Parse(hostname)
}

// addScheme prepends the Parser's default scheme to inputs missing one,
// mirroring the teacher's own heuristics for "//host/path", "://host/path",
// and bare "host/path" shapes. An input starting with a single '/' names no
// host and is returned unchanged.
func (p *Parser) addScheme(in string) string {
	switch {
	case strings.HasPrefix(in, "//"):
		return p.defaultScheme + ":" + in
	case strings.HasPrefix(in, "://"):
		return p.defaultScheme + in
	case strings.HasPrefix(in, "/"):
		return in
	case !strings.Contains(in, "//"):
		return p.defaultScheme + "://" + in
	default:
		return in
	}
}

// OptionFunc configures a Parser built by New.
type OptionFunc func(parser *Parser)

// Interface is the standard interface for URL parsing. Any type providing
// it can parse a raw string into a *hqweburl.URL.
type Interface interface {
	Parse(raw string) (parsed *hqweburl.URL, err error)
}

// Ensure that Parser implements the Interface.
var _ Interface = (*Parser)(nil)

// New creates a Parser with lenient validation, no default scheme, and the
// default official+pseudo TLD list, applying any supplied options.
func New(ofs ...OptionFunc) (parser *Parser) {
	parser = &Parser{domains: domain.New()}

	for _, f := range ofs {
		f(parser)
	}

	return
}

// WithDefaultScheme returns an OptionFunc that sets the Parser's default
// scheme.
func WithDefaultScheme(scheme string) OptionFunc {
	return func(parser *Parser) {
		parser.SetDefaultScheme(scheme)
	}
}

// WithStrictValidation returns an OptionFunc that puts the Parser in strict
// mode: the first Validation observed while parsing aborts the parse.
func WithStrictValidation() OptionFunc {
	return func(parser *Parser) {
		parser.SetStrict(true)
	}
}

// WithValidationCallback returns an OptionFunc that registers cb to receive
// every Validation the Parser observes.
func WithValidationCallback(cb hqerrors.Callback) OptionFunc {
	return func(parser *Parser) {
		parser.SetValidationCallback(cb)
	}
}

// WithTLDs returns an OptionFunc that replaces the Parser's TLD list used
// by ParseDomain.
func WithTLDs(tld ...string) OptionFunc {
	return func(parser *Parser) {
		parser.SetTLDs(tld...)
	}
}
