// Package domain decomposes the normalized hostname of a parsed URL into
// subdomain, registered-domain (SLD), and top-level-domain (TLD) parts.
//
// This is not part of the WHATWG URL Standard: a conforming URL parser only
// has to produce a normalized hostname, not a subdomain/SLD/TLD breakdown.
// It is carried over from the teacher repository, whose suffix-array TLD
// matcher is repurposed here to operate on the canonical hostname produced
// by the parser instead of on net/url's raw Host field.
package domain

import (
	"index/suffixarray"
	"strings"

	"github.com/hueristiq/hq-go-weburl/tlds"
)

// Domain represents a hostname broken down into its constituent parts:
//   - Subdomain: everything to the left of the registered domain (e.g. "www" in "www.example.com").
//   - SLD: the registered, second-level domain (e.g. "example" in "www.example.com").
//   - TLD: the top-level domain or public suffix (e.g. "com", or "co.uk").
type Domain struct {
	Subdomain string
	SLD       string
	TLD       string
}

// String reassembles the Subdomain, SLD, and TLD back into a dotted hostname,
// omitting any empty component.
func (d *Domain) String() (hostname string) {
	parts := make([]string, 0, 3) //nolint:mnd

	if d.Subdomain != "" {
		parts = append(parts, d.Subdomain)
	}

	if d.SLD != "" {
		parts = append(parts, d.SLD)
	}

	if d.TLD != "" {
		parts = append(parts, d.TLD)
	}

	hostname = strings.Join(parts, ".")

	return
}

// Parser decomposes ASCII hostnames into Domain values using a suffix array
// over a list of known TLDs, walking the dot-separated labels from right to
// left so that multi-label public suffixes (e.g. "co.uk") are matched before
// falling back to the registered domain.
type Parser struct {
	sa *suffixarray.Index
}

// Parse decomposes hostname into a Domain. If no known TLD is found as a
// suffix of hostname, the whole string is returned as the SLD and Subdomain
// and TLD are left empty — this is the common outcome for IPv4/IPv6 literals
// and for hostnames using an unrecognized suffix.
func (p *Parser) Parse(hostname string) (parsed *Domain) {
	parsed = &Domain{}

	parts := strings.Split(hostname, ".")

	if len(parts) <= 1 {
		parsed.SLD = hostname

		return
	}

	offset := p.findTLDOffset(parts)

	if offset < 0 {
		parsed.SLD = hostname

		return
	}

	parsed.Subdomain = strings.Join(parts[:offset], ".")
	parsed.SLD = parts[offset]
	parsed.TLD = strings.Join(parts[offset+1:], ".")

	return
}

// findTLDOffset walks parts from right to left, growing the candidate suffix
// one label at a time, and returns the index of the SLD (the label
// immediately to the left of the longest matching known TLD), or -1 if parts
// ends in no known TLD at all.
func (p *Parser) findTLDOffset(parts []string) (offset int) {
	offset = -1

	for i := len(parts) - 1; i >= 0; i-- {
		candidate := strings.Join(parts[i:], ".")

		if len(p.sa.Lookup([]byte(candidate), -1)) > 0 {
			offset = i - 1
		} else {
			break
		}
	}

	return
}

// OptionFunc configures a Parser built by New.
type OptionFunc func(*Parser)

// New builds a Parser seeded with the official and pseudo TLD lists. Pass
// WithTLDs to replace that default set entirely.
func New(opts ...OptionFunc) (parser *Parser) {
	parser = &Parser{}

	all := make([]string, 0, len(tlds.Official)+len(tlds.Pseudo))
	all = append(all, tlds.Official...)
	all = append(all, tlds.Pseudo...)

	parser.sa = suffixarray.New([]byte("\x00" + strings.Join(all, "\x00") + "\x00"))

	for _, opt := range opts {
		opt(parser)
	}

	return
}

// WithTLDs replaces the Parser's default TLD list with a custom one.
func WithTLDs(tld ...string) OptionFunc {
	return func(p *Parser) {
		p.sa = suffixarray.New([]byte("\x00" + strings.Join(tld, "\x00") + "\x00"))
	}
}

var defaultParser = New()

// Parse decomposes hostname using the package-level default Parser, which is
// seeded with the teacher's official+pseudo TLD lists.
func Parse(hostname string) *Domain {
	return defaultParser.Parse(hostname)
}
