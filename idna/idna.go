// Package idna wraps golang.org/x/net/idna as the external to_ascii
// collaborator spec.md §6.1/§4.3 describes the host parser calling out to:
// domain-to-ASCII conversion is outside this module's own scope, so the host
// parser calls ToASCII here, which delegates to golang.org/x/net/idna.
package idna

import (
	"golang.org/x/net/idna"

	hqgoerrors "github.com/hueristiq/hq-go-errors"
)

// profile is the IDNA 2008 profile used for domain-to-ASCII conversion.
// UseSTD3Rules rejects domains containing forbidden host code points that
// survived percent-decoding; Transitional is left off to match the Standard's
// non-transitional processing requirement.
var profile = idna.New( //nolint:gochecknoglobals
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.ValidateLabels(true),
)

// ToASCII converts domain to its ASCII (Punycode) form, applying Unicode
// normalization, case-folding, and label validation. It reports an error if
// domain is malformed in a way ToASCII cannot repair (spec.md's
// domainToASCIIFailure / domainToASCIIEmptyDomainFailure conditions).
func ToASCII(domain string) (ascii string, err error) {
	ascii, err = profile.ToASCII(domain)
	if err != nil {
		return "", hqgoerrors.Wrap(err, "idna: domain to ASCII conversion failed")
	}

	if ascii == "" {
		return "", hqgoerrors.New("idna: domain to ASCII conversion produced an empty domain")
	}

	return ascii, nil
}
