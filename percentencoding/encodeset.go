package percentencoding

import "github.com/bits-and-blooms/bitset"

// EncodeSet names the ASCII bytes that must be percent-encoded when writing
// a particular URL component, plus an optional reversible substitution
// (form encoding swaps space for '+'). Non-ASCII bytes are always encoded
// regardless of what the mask says.
//
// Substitute and Unsubstitute must agree: if Substitute(x) returns a byte y,
// the mask must not mark x for encoding (it is replaced, not escaped), and
// the mask must mark y for encoding (so Unsubstitute(y) undoes it instead of
// passing it through literally). EncodeSet does not enforce this itself —
// callers constructing custom sets are responsible for it, per spec.md §4.2.
type EncodeSet struct {
	mask         *bitset.BitSet
	substitute   func(b byte) (sub byte, ok bool)
	unsubstitute func(b byte) (orig byte, ok bool)
}

// ShouldEncode reports whether b must be written as a %XX escape. Every
// non-ASCII byte (b >= 0x80) is always encoded.
func (s *EncodeSet) ShouldEncode(b byte) bool {
	if b >= 0x80 { //nolint:mnd
		return true
	}

	return s.mask.Test(uint(b))
}

// Substitute returns the replacement byte for b, if this set substitutes it
// instead of encoding it (only Form does, for space).
func (s *EncodeSet) Substitute(b byte) (sub byte, ok bool) {
	if s.substitute == nil {
		return 0, false
	}

	return s.substitute(b)
}

// Unsubstitute returns the original byte that decoded-b stands in for, if
// this set's substitution applies to decoded-b.
func (s *EncodeSet) Unsubstitute(decoded byte) (orig byte, ok bool) {
	if s.unsubstitute == nil {
		return 0, false
	}

	return s.unsubstitute(decoded)
}

func newMask(bytes ...byte) *bitset.BitSet {
	b := bitset.New(128) //nolint:mnd

	for _, x := range bytes {
		b.Set(uint(x))
	}

	return b
}

func extend(base *bitset.BitSet, bytes ...byte) *bitset.BitSet {
	b := base.Clone()

	for _, x := range bytes {
		b.Set(uint(x))
	}

	return b
}

func c0Mask() *bitset.BitSet {
	b := bitset.New(128) //nolint:mnd

	for i := uint(0); i < 0x20; i++ { //nolint:mnd
		b.Set(i)
	}

	b.Set(0x7F) //nolint:mnd

	return b
}

var (
	c0Control    = &EncodeSet{mask: c0Mask()}
	fragmentMask = extend(c0Mask(), ' ', '"', '<', '>', '`')
	fragment     = &EncodeSet{mask: fragmentMask}
	queryMask    = extend(fragmentMask, '#')
	query        = &EncodeSet{mask: clearBit(queryMask, '`')}
	specialQuery = &EncodeSet{mask: extend(query.mask, '\'')}
	pathMask     = extend(query.mask, '`', '?', '{', '}')
	path         = &EncodeSet{mask: pathMask}
	userInfoMask = extend(pathMask, '/', ':', ';', '=', '@', '[', '\\', ']', '^', '|')
	userInfo     = &EncodeSet{mask: userInfoMask}
	componentMask = extend(userInfoMask, '$', '%', '&', '+', ',')
	component    = &EncodeSet{mask: componentMask}
	formMask     = clearBit(extend(componentMask, '!', '\'', '(', ')', '~'), ' ')
	form         = &EncodeSet{
		mask:         formMask,
		substitute:   formSubstitute,
		unsubstitute: formUnsubstitute,
	}
)

func clearBit(b *bitset.BitSet, x byte) *bitset.BitSet {
	c := b.Clone()
	c.Clear(uint(x))

	return c
}

func formSubstitute(b byte) (byte, bool) {
	if b == ' ' {
		return '+', true
	}

	return 0, false
}

func formUnsubstitute(decoded byte) (byte, bool) {
	if decoded == '+' {
		return ' ', true
	}

	return 0, false
}

// C0Control encodes every C0 control and DEL, and nothing else. Used for
// opaque-host serialization (spec.md §6.2).
func C0Control() *EncodeSet { return c0Control }

// Fragment is the fragment percent-encode set (spec.md §6.3).
func Fragment() *EncodeSet { return fragment }

// Query is the query percent-encode set used by non-special schemes.
func Query() *EncodeSet { return query }

// SpecialQuery is the query percent-encode set used by special schemes
// (additionally encodes ').
func SpecialQuery() *EncodeSet { return specialQuery }

// Path is the path percent-encode set.
func Path() *EncodeSet { return path }

// UserInfo is the percent-encode set used for username and password.
func UserInfo() *EncodeSet { return userInfo }

// Component is the general-purpose "component" percent-encode set.
func Component() *EncodeSet { return component }

// Form is application/x-www-form-urlencoded's percent-encode set: it
// additionally never encodes space, instead substituting '+' for it (and
// must therefore also encode literal '+').
func Form() *EncodeSet { return form }
