package host

import (
	"strings"

	"github.com/hueristiq/hq-go-weburl/ascii"
	hqerrors "github.com/hueristiq/hq-go-weburl/errors"
	"github.com/hueristiq/hq-go-weburl/idna"
	"github.com/hueristiq/hq-go-weburl/percentencoding"
	"github.com/hueristiq/hq-go-weburl/schemes"
)

// Parse classifies and parses a raw hostname per spec.md §4.3. isSpecial
// reports whether the URL's scheme is one of the six special schemes;
// schemeKind additionally distinguishes "file" for the localhost special
// case. onError, if non-nil, is invoked for every non-fatal irregularity
// observed; a fatal condition is returned as an error and aborts the parse.
func Parse(raw string, isSpecial bool, schemeKind schemes.Kind, onError hqerrors.Callback) (h *Host, err error) {
	if raw == "" {
		if isSpecial {
			report(onError, hqerrors.EmptyHostSpecialScheme, 0)

			return nil, hqerrors.NewParseError(hqerrors.FatalEmptyHost, 0)
		}

		return &Host{kind: KindEmpty}, nil
	}

	if raw[0] == '[' {
		if raw[len(raw)-1] != ']' {
			report(onError, hqerrors.UnclosedIPv6Address, 0)

			return nil, hqerrors.NewParseError(hqerrors.FatalUnclosedIPv6Address, 0)
		}

		groups, ok := ParseIPv6(raw[1 : len(raw)-1])
		if !ok {
			report(onError, hqerrors.InvalidIPv6Address, 0)

			return nil, hqerrors.NewParseError(hqerrors.FatalInvalidIPv6Address, 0)
		}

		return &Host{kind: KindIPv6, ipv6: groups}, nil
	}

	if !isSpecial {
		return parseOpaque(raw, onError)
	}

	return parseSpecial(raw, schemeKind, onError)
}

func parseOpaque(raw string, onError hqerrors.Callback) (h *Host, err error) {
	for i := 0; i < len(raw); i++ {
		b := raw[i]

		if b < 0x80 && ascii.IsForbiddenHostCodePoint(b) && b != '%' { //nolint:mnd
			report(onError, hqerrors.HostOrDomainForbiddenCodePoint, i)

			return nil, hqerrors.NewParseError(hqerrors.FatalForbiddenHostCodePoint, i)
		}

		if b < 0x20 || b >= 0x7F { //nolint:mnd
			report(onError, hqerrors.InvalidURLCodePoint, i)
		}
	}

	encoded := percentencoding.Encode([]byte(raw), percentencoding.C0Control())

	return &Host{kind: KindOpaque, opaque: encoded}, nil
}

func parseSpecial(raw string, schemeKind schemes.Kind, onError hqerrors.Callback) (h *Host, err error) {
	domain := raw

	if strings.ContainsRune(raw, '%') {
		domain = percentencoding.Decode([]byte(raw), nil)
	}

	hasNonASCII := false

	for i := 0; i < len(domain); i++ {
		b := domain[i]

		if b >= 0x80 { //nolint:mnd
			hasNonASCII = true

			continue
		}

		if ascii.IsForbiddenDomainCodePoint(b) {
			report(onError, hqerrors.HostOrDomainForbiddenCodePoint, i)

			return nil, hqerrors.NewParseError(hqerrors.FatalForbiddenDomainCodePoint, i)
		}
	}

	if hasNonASCII {
		ascii8, convErr := idna.ToASCII(domain)
		if convErr != nil {
			report(onError, hqerrors.DomainToASCIIFailure, 0)

			return nil, hqerrors.NewParseError(hqerrors.FatalDomainToASCII, 0)
		}

		if ascii8 == "" {
			report(onError, hqerrors.DomainToASCIIEmptyDomainFailure, 0)

			return nil, hqerrors.NewParseError(hqerrors.FatalDomainToASCII, 0)
		}

		domain = ascii8

		if endsInANumber(domain) {
			return parseIPv4Host(domain, onError)
		}

		return &Host{kind: KindDomainIDN, domain: domain}, nil
	}

	if endsInANumber(domain) {
		return parseIPv4Host(domain, onError)
	}

	domain = strings.ToLower(domain)

	if schemeKind == schemes.KindFile && domain == "localhost" {
		return &Host{kind: KindEmpty}, nil
	}

	return &Host{kind: KindDomain, domain: domain}, nil
}

func parseIPv4Host(domain string, onError hqerrors.Callback) (h *Host, err error) {
	addr, ok := ParseIPv4(domain)
	if !ok {
		report(onError, hqerrors.InvalidIPv4Address, 0)

		return nil, hqerrors.NewParseError(hqerrors.FatalInvalidIPv4Address, 0)
	}

	return &Host{kind: KindIPv4, ipv4: addr}, nil
}

func report(onError hqerrors.Callback, kind hqerrors.Validation, pos int) {
	if onError != nil {
		onError(kind, pos)
	}
}
