package url

import (
	"hash/fnv"
	"strings"

	"github.com/hueristiq/hq-go-weburl/domain"
	"github.com/hueristiq/hq-go-weburl/host"
	"github.com/hueristiq/hq-go-weburl/schemes"
	"github.com/hueristiq/hq-go-weburl/writer"
)

// URL is an immutable, canonically-serialized WHATWG URL value. Its storage
// is the single buffer Serialize produces plus the Structure recording each
// component's offsets within it; every getter is a pure slice of that
// buffer, so reading a URL never allocates.
type URL struct {
	raw  string
	st   writer.Structure
	host *host.Host
}

// String returns the URL's canonical serialization.
func (u *URL) String() string {
	if u == nil {
		return ""
	}

	return u.raw
}

// Scheme returns the lower-cased scheme, without the trailing ':'.
func (u *URL) Scheme() string {
	if u.st.SchemeEnd <= 0 {
		return ""
	}

	return u.raw[:u.st.SchemeEnd-1]
}

// SchemeKind reports which of the six special schemes the URL uses, or
// schemes.KindNotSpecial.
func (u *URL) SchemeKind() schemes.Kind { return u.st.SchemeKind }

// IsSpecial reports whether the URL's scheme is one of http, https, ws, wss,
// ftp, or file.
func (u *URL) IsSpecial() bool { return u.st.SchemeKind != schemes.KindNotSpecial }

// HasAuthority reports whether the URL has a "//" authority component.
func (u *URL) HasAuthority() bool { return u.st.HasAuthority }

// HasCredentials reports whether the URL carries a username or password.
func (u *URL) HasCredentials() bool { return u.st.HasCredentials }

// Username returns the percent-encoded username, or "" if absent.
func (u *URL) Username() string {
	if !u.st.HasUsername {
		return ""
	}

	return u.raw[u.st.UsernameStart:u.st.UsernameEnd]
}

// Password returns the percent-encoded password, or "" if absent.
func (u *URL) Password() string {
	if !u.st.HasPassword {
		return ""
	}

	return u.raw[u.st.PasswordStart:u.st.PasswordEnd]
}

// Hostname returns the canonical hostname: a lower-cased ASCII or IDNA
// domain, a dotted-decimal IPv4 address, a bracketed RFC-5952-compressed
// IPv6 address, a percent-encoded opaque host, or "" for the empty host.
func (u *URL) Hostname() string {
	return u.raw[u.st.HostStart:u.st.HostEnd]
}

// Host returns the URL's parsed host value, or nil if the URL has no
// authority.
func (u *URL) Host() *host.Host { return u.host }

// HostKind reports which shape the URL's host takes.
func (u *URL) HostKind() host.Kind {
	if u.host == nil {
		return host.KindEmpty
	}

	return u.host.Kind()
}

// Port returns the URL's port and whether one is present. A port equal to
// the scheme's default is never stored (spec.md §6.2), so its absence here
// does not imply the URL was written without one.
func (u *URL) Port() (port uint16, ok bool) { return u.st.Port, u.st.HasPort }

// HasOpaquePath reports whether the URL's path is an opaque string (e.g.
// "bob@example.com" in "mailto:bob@example.com") rather than a `/`-separated
// list of segments.
func (u *URL) HasOpaquePath() bool { return u.st.HasOpaquePath }

// Path returns the percent-encoded path, including its leading path sigil
// ("/.") if one was needed to keep an authority-less path from being
// re-parsed as an authority.
func (u *URL) Path() string {
	return u.raw[u.st.PathStart:u.st.PathEnd]
}

// Query returns the percent-encoded query (without the leading '?') and
// whether one is present.
func (u *URL) Query() (query string, ok bool) {
	if !u.st.HasQuery {
		return "", false
	}

	return u.raw[u.st.QueryStart:u.st.QueryEnd], true
}

// Fragment returns the percent-encoded fragment (without the leading '#')
// and whether one is present.
func (u *URL) Fragment() (fragment string, ok bool) {
	if !u.st.HasFragment {
		return "", false
	}

	return u.raw[u.st.FragmentStart:u.st.FragmentEnd], true
}

// DomainParts decomposes Hostname into subdomain/registered-domain/TLD
// parts (SPEC_FULL.md §4 "supplemented features"). It only applies to
// domain and IDNA hosts; IPv4, IPv6, opaque, and empty hosts report nil.
func (u *URL) DomainParts() *domain.Domain {
	switch u.HostKind() {
	case host.KindDomain, host.KindDomainIDN:
		return domain.Parse(u.Hostname())
	default:
		return nil
	}
}

// Equal reports whether u and other serialize to byte-identical strings,
// the definition of URL equality spec.md §4.8/§8 gives.
func (u *URL) Equal(other *URL) bool {
	if other == nil {
		return false
	}

	return u.raw == other.raw
}

// Compare orders u and other by their serialized form, returning a negative
// number, zero, or a positive number as u's serialization sorts before,
// equal to, or after other's.
func (u *URL) Compare(other *URL) int {
	return strings.Compare(u.raw, other.raw)
}

// Hash returns a 64-bit hash of u's serialized form, suitable for use as a
// map key alongside Equal. Two equal URLs always hash equally; the
// converse is not guaranteed.
func (u *URL) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(u.raw))

	return h.Sum64()
}

// toComponents rebuilds the writer.Components a fresh Serialize call would
// need to reproduce u byte-for-byte, as the starting point for a setter
// that overrides exactly one field. The path is carried verbatim (already
// normalized and encoded) rather than re-walked, relying on the
// percent-encoding engine's idempotence over already-encoded text.
func (u *URL) toComponents() writer.Components {
	c := writer.Components{
		SchemeKind:   u.st.SchemeKind,
		Scheme:       u.Scheme(),
		HasAuthority: u.st.HasAuthority,
		HasUsername:  u.st.HasUsername,
		Username:     u.Username(),
		HasPassword:  u.st.HasPassword,
		Password:     u.Password(),
		Host:         u.host,
		HasPort:      u.st.HasPort,
		Port:         u.st.Port,
	}

	c.HasVerbatimPath = true
	c.VerbatimPath = u.Path()
	c.VerbatimHasSigil = u.st.HasPathSigil
	c.VerbatimIsOpaque = u.st.HasOpaquePath

	if q, ok := u.Query(); ok {
		c.HasQuery = true
		c.Query = q
		c.QueryAlreadyFormEncoded = u.st.QueryIsKnownFormEncoded
	}

	if f, ok := u.Fragment(); ok {
		c.HasFragment = true
		c.Fragment = f
	}

	return c
}
