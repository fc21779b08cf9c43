package percentencoding

import "github.com/hueristiq/hq-go-weburl/ascii"

// Decoder is a lazy, allocation-free forward iterator that yields the
// percent-decoded form of src one output byte at a time. A '%' not followed
// by two hex digits is passed through as a literal '%' rather than treated
// as an error, per spec.md §4.2.
type Decoder struct {
	src []byte
	set *EncodeSet
	pos int
}

// NewDecoder returns a Decoder over src. set, if non-nil, supplies the
// reversible substitutions (e.g. Form's '+' -> space) to undo alongside
// ordinary %XX decoding; pass nil to decode only %XX escapes.
func NewDecoder(src []byte, set *EncodeSet) *Decoder {
	return &Decoder{src: src, set: set}
}

// Next returns the next output byte, or ok=false once src is exhausted.
func (d *Decoder) Next() (b byte, ok bool) {
	if d.pos >= len(d.src) {
		return 0, false
	}

	cur := d.src[d.pos]

	if d.set != nil {
		if orig, has := d.set.Unsubstitute(cur); has {
			d.pos++

			return orig, true
		}
	}

	if cur == '%' && d.pos+2 < len(d.src) { //nolint:mnd
		hi, okHi := ascii.HexValue(d.src[d.pos+1])
		lo, okLo := ascii.HexValue(d.src[d.pos+2])

		if okHi && okLo {
			d.pos += 3 //nolint:mnd

			return hi<<4 | lo, true //nolint:mnd
		}
	}

	d.pos++

	return cur, true
}

// Decode eagerly percent-decodes src, undoing set's substitutions (if set is
// non-nil) alongside ordinary %XX escapes.
func Decode(src []byte, set *EncodeSet) string {
	buf := make([]byte, 0, len(src))
	dec := NewDecoder(src, set)

	for {
		b, ok := dec.Next()
		if !ok {
			return string(buf)
		}

		buf = append(buf, b)
	}
}
