package percentencoding

const hexDigits = "0123456789ABCDEF"

// Encoder is a lazy, allocation-free forward iterator that yields the
// percent-encoded form of src one output byte at a time, without ever
// materializing the whole result. Bytes that the EncodeSet neither encodes
// nor substitutes are passed through unchanged.
type Encoder struct {
	src    []byte
	set    *EncodeSet
	pos    int  // index into src of the byte currently being emitted
	escLen int  // 0 if the current byte isn't being escaped, else 1..3
	escIdx int  // which byte of the %XX escape we're on, when escLen > 0
}

// NewEncoder returns an Encoder over src using set.
func NewEncoder(src []byte, set *EncodeSet) *Encoder {
	return &Encoder{src: src, set: set}
}

// Next returns the next output byte, or ok=false once src is exhausted.
func (e *Encoder) Next() (b byte, ok bool) {
	for {
		if e.pos >= len(e.src) {
			return 0, false
		}

		if e.escLen == 0 {
			cur := e.src[e.pos]

			if sub, subbed := e.set.Substitute(cur); subbed {
				e.pos++

				return sub, true
			}

			if !e.set.ShouldEncode(cur) {
				e.pos++

				return cur, true
			}

			e.escLen = 3 //nolint:mnd
			e.escIdx = 0
		}

		cur := e.src[e.pos]

		switch e.escIdx {
		case 0:
			e.escIdx++

			return '%', true
		case 1:
			e.escIdx++

			return hexDigits[cur>>4], true //nolint:mnd
		default:
			e.pos++
			e.escLen = 0
			e.escIdx = 0

			return hexDigits[cur&0x0F], true //nolint:mnd
		}
	}
}

// Measure performs a single pass over src, returning the exact byte length
// of its percent-encoded form under set, and whether at least one byte was
// either encoded or substituted (i.e. the output differs from the input).
// Writers use this to size an output buffer, and to skip re-encoding a
// base-URL component known to already be in normalized form.
func Measure(src []byte, set *EncodeSet) (length int, transformed bool) {
	for _, b := range src {
		if _, subbed := set.Substitute(b); subbed {
			length++
			transformed = true

			continue
		}

		if set.ShouldEncode(b) {
			length += 3 //nolint:mnd
			transformed = true
		} else {
			length++
		}
	}

	return length, transformed
}

// Encode eagerly percent-encodes src under set, allocating exactly the
// buffer Measure would have sized.
func Encode(src []byte, set *EncodeSet) string {
	n, transformed := Measure(src, set)
	if !transformed {
		return string(src)
	}

	buf := make([]byte, n)
	AppendEncoded(buf[:0], src, set)

	return string(buf)
}

// AppendEncoded appends the percent-encoded form of src under set to dst,
// returning the grown slice. It is the buffer-writer-facing counterpart to
// the lazy Encoder, used when the caller already knows (via Measure) that
// dst has enough spare capacity.
func AppendEncoded(dst, src []byte, set *EncodeSet) []byte {
	enc := NewEncoder(src, set)

	for {
		b, ok := enc.Next()
		if !ok {
			return dst
		}

		dst = append(dst, b)
	}
}
