package url

import (
	"strings"

	"github.com/hueristiq/hq-go-weburl/percentencoding"
)

// FormParam is one key/value pair parsed out of a form-encoded query
// string.
type FormParam struct {
	Key   string
	Value string
}

// FormParams is a mapping view over a URL's query, parsed as
// application/x-www-form-urlencoded key/value pairs (space decodes from
// '+', spec.md §4.8's "formParams"). Like PathComponents, it is read
// through the URL's own storage; mutation returns a new URL with the
// entire query re-written in form-encoded form.
type FormParams struct {
	u *URL
}

// FormParams returns a form-params view over u's query.
func (u *URL) FormParams() *FormParams {
	return &FormParams{u: u}
}

// pairs parses the raw query into its key/value pairs, decoding each half
// under the form encode set (so '+' decodes to space, matching
// application/x-www-form-urlencoded rather than the plain path/query
// percent-decoding used elsewhere).
func (f *FormParams) pairs() []FormParam {
	query, ok := f.u.Query()
	if !ok || query == "" {
		return nil
	}

	rawPairs := strings.Split(query, "&")

	out := make([]FormParam, 0, len(rawPairs))

	for _, rp := range rawPairs {
		if rp == "" {
			continue
		}

		key, value, _ := strings.Cut(rp, "=")

		out = append(out, FormParam{
			Key:   percentencoding.Decode([]byte(key), percentencoding.Form()),
			Value: percentencoding.Decode([]byte(value), percentencoding.Form()),
		})
	}

	return out
}

// All returns every key/value pair, in query order.
func (f *FormParams) All() []FormParam { return f.pairs() }

// Get returns the first value for key and whether key was present.
func (f *FormParams) Get(key string) (value string, ok bool) {
	for _, p := range f.pairs() {
		if p.Key == key {
			return p.Value, true
		}
	}

	return "", false
}

// Set returns a copy of the URL with every existing occurrence of key
// replaced by a single key=value pair in its original position (or
// appended, if key was absent).
func (f *FormParams) Set(key, value string) *URL {
	pairs := f.pairs()

	out := make([]FormParam, 0, len(pairs)+1)
	replaced := false

	for _, p := range pairs {
		if p.Key == key {
			if replaced {
				continue
			}

			p.Value = value
			replaced = true
		}

		out = append(out, p)
	}

	if !replaced {
		out = append(out, FormParam{Key: key, Value: value})
	}

	return f.rebuild(out)
}

// Delete returns a copy of the URL with every occurrence of key removed.
func (f *FormParams) Delete(key string) *URL {
	pairs := f.pairs()

	out := pairs[:0]

	for _, p := range pairs {
		if p.Key != key {
			out = append(out, p)
		}
	}

	return f.rebuild(out)
}

// rebuild re-encodes pairs as a single form-encoded query string and
// returns a copy of the URL carrying it, marking the query as known
// form-encoded (spec.md §4.8) so a later re-serialization doesn't
// second-guess its shape.
func (f *FormParams) rebuild(pairs []FormParam) *URL {
	var b strings.Builder

	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}

		b.WriteString(percentencoding.Encode([]byte(p.Key), percentencoding.Form()))
		b.WriteByte('=')
		b.WriteString(percentencoding.Encode([]byte(p.Value), percentencoding.Form()))
	}

	c := f.u.toComponents()
	c.HasQuery = true
	c.Query = b.String()
	c.QueryAlreadyFormEncoded = true

	v, _ := finishSet(c)

	return v
}
