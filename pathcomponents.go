package url

import (
	"strings"

	"github.com/hueristiq/hq-go-weburl/percentencoding"
)

// PathComponents is a bidirectional view over a list-style path's
// slash-separated segments (spec.md §4.8's "pathComponents"). It is backed
// by the URL's own canonical storage; mutation returns a new URL with the
// path re-serialized rather than modifying the view in place.
type PathComponents struct {
	u *URL
}

// PathComponents returns a view over u's path segments. It is empty (Len
// reports 0) for a URL with an opaque path, since an opaque path has no
// slash-separated structure to decompose.
func (u *URL) PathComponents() *PathComponents {
	return &PathComponents{u: u}
}

// segments returns the path's raw (still percent-encoded) segments, with
// the leading path sigil, if any, stripped.
func (p *PathComponents) segments() []string {
	if p.u.HasOpaquePath() {
		return nil
	}

	raw := p.u.Path()

	if p.u.st.HasPathSigil {
		raw = raw[2:]
	}

	if raw == "" {
		return nil
	}

	// A non-empty canonical list-style path is always written with a
	// leading '/' before its first segment (writer.WritePath), so the
	// first element of a '/'-split is always the empty string.
	return strings.Split(raw, "/")[1:]
}

// Len reports the number of segments.
func (p *PathComponents) Len() int { return len(p.segments()) }

// At returns the i'th segment, percent-decoded.
func (p *PathComponents) At(i int) string {
	return percentencoding.Decode([]byte(p.Raw(i)), percentencoding.Path())
}

// Raw returns the i'th segment without percent-decoding.
func (p *PathComponents) Raw(i int) string {
	segs := p.segments()
	if i < 0 || i >= len(segs) {
		return ""
	}

	return segs[i]
}

// Append returns a copy of the URL with seg appended as a new final
// segment, percent-encoded under the path encode set. It fails on a URL
// with an opaque path.
func (p *PathComponents) Append(seg string) (*URL, bool) {
	segs := append(p.segments(), percentencoding.Encode([]byte(seg), percentencoding.Path())) //nolint:gocritic

	return p.rebuild(segs)
}

// Set returns a copy of the URL with its i'th segment replaced by seg,
// percent-encoded under the path encode set. It fails if i is out of range
// or the URL has an opaque path.
func (p *PathComponents) Set(i int, seg string) (*URL, bool) {
	segs := p.segments()
	if i < 0 || i >= len(segs) {
		return nil, false
	}

	out := make([]string, len(segs))
	copy(out, segs)
	out[i] = percentencoding.Encode([]byte(seg), percentencoding.Path())

	return p.rebuild(out)
}

// rebuild reassembles segs into a path string and writes it back as the
// URL's verbatim path, preserving whatever sigil the original path carried
// (a Set/Append never changes whether the leading segment is empty in a
// way that would change sigil necessity from the common case).
func (p *PathComponents) rebuild(segs []string) (*URL, bool) {
	if p.u.HasOpaquePath() {
		return nil, false
	}

	var b strings.Builder

	if p.u.st.HasPathSigil {
		b.WriteString("/.")
	}

	for _, s := range segs {
		b.WriteByte('/')
		b.WriteString(s)
	}

	c := p.u.toComponents()
	c.VerbatimPath = b.String()

	v, _ := finishSet(c)

	return v, true
}
