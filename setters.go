package url

import (
	"strings"

	"github.com/hueristiq/hq-go-weburl/host"
	"github.com/hueristiq/hq-go-weburl/schemes"
	"github.com/hueristiq/hq-go-weburl/writer"
)

// SetterError reports why a strict Set*Strict call refused to apply a
// change. Per spec.md §7's privacy requirement, Error never embeds the URL
// or the rejected value itself, only the component and reason names.
type SetterError struct {
	Component string
	Reason    string
}

func (e *SetterError) Error() string {
	return "url: cannot set " + e.Component + ": " + e.Reason
}

func rejected(component, reason string) error {
	return &SetterError{Component: component, Reason: reason}
}

// SetScheme returns a copy of u with its scheme replaced by scheme, or
// (nil, false) if scheme is empty or would move the URL between the
// special and non-special scheme classes (spec.md §4.8 forbids this:
// special-scheme URLs and non-special-scheme URLs serialize their
// authority/path differently enough that an in-place change can't
// preserve meaning).
func (u *URL) SetScheme(scheme string) (*URL, bool) {
	v, err := u.SetSchemeStrict(scheme)
	if err != nil {
		return nil, false
	}

	return v, true
}

// SetSchemeStrict is SetScheme's strict form, reporting why the change was
// refused instead of discarding the reason.
func (u *URL) SetSchemeStrict(scheme string) (*URL, error) {
	scheme = strings.ToLower(scheme)

	if scheme == "" {
		return nil, rejected("scheme", "empty")
	}

	newKind := schemes.KindOf(scheme)
	if (newKind != schemes.KindNotSpecial) != u.IsSpecial() {
		return nil, rejected("scheme", "would change special/non-special scheme class")
	}

	c := u.toComponents()
	c.Scheme = scheme
	c.SchemeKind = newKind

	return finishSet(c)
}

// SetUsername returns a copy of u with its username replaced.
func (u *URL) SetUsername(username string) (*URL, bool) {
	v, err := u.SetUsernameStrict(username)

	return v, err == nil
}

// SetUsernameStrict is SetUsername's strict form.
func (u *URL) SetUsernameStrict(username string) (*URL, error) {
	if !u.st.HasAuthority || (u.host != nil && u.host.IsEmpty()) {
		return nil, rejected("username", "url has no host to attach credentials to")
	}

	c := u.toComponents()
	c.HasUsername = username != ""
	c.Username = username

	return finishSet(c)
}

// SetPassword returns a copy of u with its password replaced.
func (u *URL) SetPassword(password string) (*URL, bool) {
	v, err := u.SetPasswordStrict(password)

	return v, err == nil
}

// SetPasswordStrict is SetPassword's strict form.
func (u *URL) SetPasswordStrict(password string) (*URL, error) {
	if !u.st.HasAuthority || (u.host != nil && u.host.IsEmpty()) {
		return nil, rejected("password", "url has no host to attach credentials to")
	}

	c := u.toComponents()
	c.HasPassword = password != ""
	c.Password = password

	return finishSet(c)
}

// SetHost returns a copy of u with its host replaced by the parse of raw.
func (u *URL) SetHost(raw string) (*URL, bool) {
	v, err := u.SetHostStrict(raw)

	return v, err == nil
}

// SetHostStrict is SetHost's strict form.
func (u *URL) SetHostStrict(raw string) (*URL, error) {
	if u.HasOpaquePath() && raw != "" {
		return nil, rejected("host", "url has an opaque path and cannot gain a host")
	}

	h, perr := host.Parse(raw, u.IsSpecial(), u.SchemeKind(), nil)
	if perr != nil {
		return nil, rejected("host", perr.Error())
	}

	if h.IsEmpty() && (u.st.HasUsername || u.st.HasPassword || u.st.HasPort) {
		return nil, rejected("host", "url has credentials or a port and cannot take an empty host")
	}

	c := u.toComponents()
	c.HasAuthority = true
	c.Host = h

	return finishSet(c)
}

// SetPort returns a copy of u with its port replaced. Passing ok=false
// removes the port; a port equal to the scheme's default is dropped rather
// than stored, matching Parse's own canonicalization (spec.md §6.2).
func (u *URL) SetPort(port uint16, ok bool) (*URL, bool) {
	v, err := u.SetPortStrict(port, ok)

	return v, err == nil
}

// SetPortStrict is SetPort's strict form.
func (u *URL) SetPortStrict(port uint16, ok bool) (*URL, error) {
	if ok && (u.host == nil || u.host.IsEmpty()) {
		return nil, rejected("port", "url has no host to attach a port to")
	}

	c := u.toComponents()

	if !ok {
		c.HasPort = false
		c.Port = 0
	} else if def, has := schemes.DefaultPort(u.Scheme()); has && port == def {
		c.HasPort = false
		c.Port = 0
	} else {
		c.HasPort = true
		c.Port = port
	}

	return finishSet(c)
}

// SetPath returns a copy of u with its path replaced by raw, interpreted as
// a single `/`-separated list-style path. It is refused on a URL with an
// opaque path: spec.md §4.8 forbids converting an opaque path into a
// list-style one through a setter, since the two have no common shape to
// reconcile (use a fresh Parse instead).
func (u *URL) SetPath(raw string) (*URL, bool) {
	v, err := u.SetPathStrict(raw)

	return v, err == nil
}

// SetPathStrict is SetPath's strict form.
func (u *URL) SetPathStrict(raw string) (*URL, error) {
	if u.HasOpaquePath() {
		return nil, rejected("path", "url has an opaque path")
	}

	c := u.toComponents()
	c.HasVerbatimPath = false
	c.VerbatimPath = ""
	c.PathInput = []byte(raw)
	c.PathOpt.IsSpecial = u.IsSpecial()
	c.PathOpt.IsFileScheme = u.SchemeKind() == schemes.KindFile
	c.PathOpt.HasAuthority = u.HasAuthority()

	return finishSet(c)
}

// SetQuery returns a copy of u with its query replaced. ok=false removes
// the query entirely (distinct from setting it to the empty string).
func (u *URL) SetQuery(query string, ok bool) (*URL, bool) {
	v, err := u.SetQueryStrict(query, ok)

	return v, err == nil
}

// SetQueryStrict is SetQuery's strict form. It never fails, but is provided
// for symmetry with the rest of the Set*Strict family.
func (u *URL) SetQueryStrict(query string, ok bool) (*URL, error) {
	c := u.toComponents()
	c.HasQuery = ok
	c.Query = query
	c.QueryAlreadyFormEncoded = false

	return finishSet(c)
}

// SetFragment returns a copy of u with its fragment replaced. ok=false
// removes the fragment entirely.
func (u *URL) SetFragment(fragment string, ok bool) (*URL, bool) {
	v, err := u.SetFragmentStrict(fragment, ok)

	return v, err == nil
}

// SetFragmentStrict is SetFragment's strict form.
func (u *URL) SetFragmentStrict(fragment string, ok bool) (*URL, error) {
	c := u.toComponents()
	c.HasFragment = ok
	c.Fragment = fragment

	return finishSet(c)
}

func finishSet(c writer.Components) (*URL, error) {
	serialized, st := writer.Serialize(c)

	return &URL{raw: serialized, st: st, host: c.Host}, nil
}
