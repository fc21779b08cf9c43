package writer

import (
	"strconv"

	"github.com/hueristiq/hq-go-weburl/host"
	"github.com/hueristiq/hq-go-weburl/path"
	"github.com/hueristiq/hq-go-weburl/percentencoding"
	"github.com/hueristiq/hq-go-weburl/schemes"
)

// Components is everything Serialize needs to build a canonical URL string:
// the already-scheme-resolved pieces a parser assembles after scanning and
// host/port validation, still holding username/password/query/fragment in
// raw (not yet percent-encoded) form.
type Components struct {
	SchemeKind schemes.Kind
	Scheme     string

	HasAuthority bool

	Username     string
	HasUsername  bool
	Password     string
	HasPassword  bool

	Host *host.Host

	HasPort bool
	Port    uint16

	PathInput []byte
	PathBase  []byte
	PathOpt   path.Options

	HasOpaquePath bool
	OpaquePath    string

	// HasVerbatimPath, when set, overrides both the opaque and list-style
	// path handling above: VerbatimPath is written as-is, with no walking
	// and no re-encoding. It is how a URL value copies an unchanged
	// list-style path from a base URL's own (already normalized and
	// percent-encoded) storage during relative resolution (spec.md §4.5's
	// "copy path from base" shapes), without re-running the reverse path
	// walker over already-final bytes.
	HasVerbatimPath  bool
	VerbatimPath     string
	VerbatimHasSigil bool

	// VerbatimIsOpaque records, for Structure's benefit, whether the copied
	// path was an opaque path on the base URL (e.g. resolving "#frag"
	// against "mailto:a@example.com"). The bytes are still written
	// unchanged either way; this only affects how Structure reports the
	// shape of the path it now owns.
	VerbatimIsOpaque bool

	HasQuery              bool
	Query                 string
	QueryAlreadyFormEncoded bool

	HasFragment bool
	Fragment    string
}

// Structure records the byte offsets of each component within Serialize's
// output string, so a URL value's getters can slice its storage without
// re-parsing or re-encoding (spec.md §4.8).
type Structure struct {
	SchemeKind schemes.Kind

	SchemeEnd int

	HasAuthority   bool
	HasCredentials bool
	HasUsername    bool
	HasPassword    bool

	UsernameStart, UsernameEnd int
	PasswordStart, PasswordEnd int

	HostStart, HostEnd int

	HasPort bool
	Port    uint16

	PathStart, PathEnd int
	HasOpaquePath      bool
	HasPathSigil       bool

	HasQuery                bool
	QueryStart, QueryEnd    int
	QueryIsKnownFormEncoded bool

	HasFragment                 bool
	FragmentStart, FragmentEnd int
}

func querySet(isSpecial bool) *percentencoding.EncodeSet {
	if isSpecial {
		return percentencoding.SpecialQuery()
	}

	return percentencoding.Query()
}

// appendEncodedAt percent-encodes src under set into buf starting at pos
// (buf must have at least Measure(src, set)'s length of spare capacity
// there) and returns the position after the written bytes.
func appendEncodedAt(buf []byte, pos int, src []byte, set *percentencoding.EncodeSet) int {
	written := percentencoding.AppendEncoded(buf[pos:pos], src, set)

	return pos + len(written)
}

// Serialize builds the canonical serialization of c in exactly one
// allocation: a first pass measures every component's encoded length, a
// second pass fills a buffer sized to that exact total, per the two-pass
// writer contract spec.md §4.7 describes.
func Serialize(c Components) (serialized string, st Structure) {
	st.SchemeKind = c.SchemeKind
	st.HasAuthority = c.HasAuthority
	st.HasPort = c.HasPort
	st.Port = c.Port
	st.HasOpaquePath = c.HasOpaquePath
	st.HasQuery = c.HasQuery
	st.QueryIsKnownFormEncoded = c.QueryAlreadyFormEncoded
	st.HasFragment = c.HasFragment

	isSpecial := c.SchemeKind != schemes.KindNotSpecial

	usernameLen, _ := percentencoding.Measure([]byte(c.Username), percentencoding.UserInfo())
	passwordLen, _ := percentencoding.Measure([]byte(c.Password), percentencoding.UserInfo())

	hasCredentials := c.HasUsername || c.HasPassword
	st.HasCredentials = hasCredentials
	st.HasUsername = c.HasUsername
	st.HasPassword = c.HasPassword

	var hostText string
	if c.Host != nil {
		hostText = c.Host.String()
	}

	portText := ""
	if c.HasPort {
		portText = strconv.FormatUint(uint64(c.Port), 10) //nolint:mnd
	}

	var pathMetrics PathMetrics

	opaquePathLen := 0

	switch {
	case c.HasOpaquePath:
		opaquePathLen, _ = percentencoding.Measure([]byte(c.OpaquePath), percentencoding.Path())
	case c.HasVerbatimPath:
		// Already normalized and encoded; length is exact, no measuring pass needed.
	default:
		pathMetrics = MeasurePath(c.PathInput, c.PathBase, c.PathOpt)
	}

	queryLen := 0
	if c.HasQuery {
		queryLen, _ = percentencoding.Measure([]byte(c.Query), querySet(isSpecial))
	}

	fragmentLen := 0
	if c.HasFragment {
		fragmentLen, _ = percentencoding.Measure([]byte(c.Fragment), percentencoding.Fragment())
	}

	total := len(c.Scheme) + 1 // "scheme:"

	if c.HasAuthority {
		total += 2 // "//"

		if hasCredentials {
			total += usernameLen

			if c.HasPassword {
				total += 1 + passwordLen // ":" + password
			}

			total++ // "@"
		}

		total += len(hostText)

		if c.HasPort {
			total += 1 + len(portText) // ":" + port
		}
	}

	switch {
	case c.HasOpaquePath:
		total += opaquePathLen
	case c.HasVerbatimPath:
		total += len(c.VerbatimPath)
	default:
		total += pathMetrics.Length
	}

	if c.HasQuery {
		total += 1 + queryLen // "?" + query
	}

	if c.HasFragment {
		total += 1 + fragmentLen // "#" + fragment
	}

	buf := make([]byte, total)
	pos := 0

	write := func(s string) {
		copy(buf[pos:], s)
		pos += len(s)
	}

	write(c.Scheme)
	write(":")
	st.SchemeEnd = pos

	if c.HasAuthority {
		write("//")

		if hasCredentials {
			st.UsernameStart = pos
			pos = appendEncodedAt(buf, pos, []byte(c.Username), percentencoding.UserInfo())
			st.UsernameEnd = pos

			if c.HasPassword {
				write(":")
				st.PasswordStart = pos
				pos = appendEncodedAt(buf, pos, []byte(c.Password), percentencoding.UserInfo())
				st.PasswordEnd = pos
			}

			write("@")
		}

		st.HostStart = pos
		write(hostText)
		st.HostEnd = pos

		if c.HasPort {
			write(":")
			write(portText)
		}
	}

	st.PathStart = pos

	switch {
	case c.HasOpaquePath:
		pos = appendEncodedAt(buf, pos, []byte(c.OpaquePath), percentencoding.Path())
	case c.HasVerbatimPath:
		write(c.VerbatimPath)
		st.HasPathSigil = c.VerbatimHasSigil
		st.HasOpaquePath = c.VerbatimIsOpaque
	default:
		WritePath(buf[pos:pos+pathMetrics.Length], c.PathInput, c.PathBase, c.PathOpt)
		pos += pathMetrics.Length
		st.HasPathSigil = pathMetrics.HasSigil
	}

	st.PathEnd = pos

	if c.HasQuery {
		write("?")
		st.QueryStart = pos
		pos = appendEncodedAt(buf, pos, []byte(c.Query), querySet(isSpecial))
		st.QueryEnd = pos
	}

	if c.HasFragment {
		write("#")
		st.FragmentStart = pos
		pos = appendEncodedAt(buf, pos, []byte(c.Fragment), percentencoding.Fragment())
		st.FragmentEnd = pos
	}

	return string(buf), st
}
