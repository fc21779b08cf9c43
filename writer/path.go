package writer

import (
	"github.com/hueristiq/hq-go-weburl/path"
	"github.com/hueristiq/hq-go-weburl/percentencoding"
)

// PathMetrics is the byte length (and sigil requirement) that writing
// input/base under opt would produce, computed by running the path walker
// once without writing any bytes.
type PathMetrics struct {
	Length   int
	HasSigil bool
}

type pathMetricsVisitor struct {
	length int
	sigil  bool
}

func (v *pathMetricsVisitor) VisitInputComponent(segment []byte, isWindowsDriveLetter bool) {
	if isWindowsDriveLetter {
		v.length += 1 + len(segment)

		return
	}

	n, _ := percentencoding.Measure(segment, percentencoding.Path())
	v.length += 1 + n
}

func (v *pathMetricsVisitor) VisitBaseComponent(segment []byte) {
	v.length += 1 + len(segment)
}

func (v *pathMetricsVisitor) VisitEmptyComponents(n int) {
	v.length += n
}

func (v *pathMetricsVisitor) VisitPathSigil() {
	v.sigil = true
	v.length += 2 //nolint:mnd
}

// MeasurePath runs the path walker to compute the exact byte length (and
// sigil requirement) of input/base's normalized form under opt, the first
// half of the two-pass writer contract spec.md §4.7 describes.
func MeasurePath(input, base []byte, opt path.Options) PathMetrics {
	v := &pathMetricsVisitor{}

	path.Walk(v, input, base, opt)

	return PathMetrics{Length: v.length, HasSigil: v.sigil}
}

// pathBufVisitor fills a pre-sized buffer back to front, matching the
// reverse-final order path.Walk visits components in.
type pathBufVisitor struct {
	out    []byte
	cursor int
}

func (v *pathBufVisitor) writeSeparatorAndContent(content []byte) {
	v.cursor -= len(content)
	copy(v.out[v.cursor:], content)
	v.cursor--
	v.out[v.cursor] = '/'
}

func (v *pathBufVisitor) VisitInputComponent(segment []byte, isWindowsDriveLetter bool) {
	if isWindowsDriveLetter {
		// Windows drive letters are exactly two bytes; only the second
		// ('|' is tolerated on input) is ever rewritten, to ':'.
		v.cursor -= len(segment)
		copy(v.out[v.cursor:], segment)

		if len(segment) >= 2 { //nolint:mnd
			v.out[v.cursor+1] = ':'
		}

		v.cursor--
		v.out[v.cursor] = '/'

		return
	}

	n, transformed := percentencoding.Measure(segment, percentencoding.Path())

	v.cursor -= n

	if transformed {
		percentencoding.AppendEncoded(v.out[v.cursor:v.cursor], segment, percentencoding.Path())
	} else {
		copy(v.out[v.cursor:], segment)
	}

	v.cursor--
	v.out[v.cursor] = '/'
}

func (v *pathBufVisitor) VisitBaseComponent(segment []byte) {
	v.writeSeparatorAndContent(segment)
}

func (v *pathBufVisitor) VisitEmptyComponents(n int) {
	for i := 0; i < n; i++ {
		v.cursor--
		v.out[v.cursor] = '/'
	}
}

func (v *pathBufVisitor) VisitPathSigil() {
	v.cursor -= 2 //nolint:mnd
	v.out[v.cursor] = '/'
	v.out[v.cursor+1] = '.'
}

// WritePath runs the path walker a second time, filling out (which must be
// exactly metrics.Length bytes, per the MeasurePath call with the same
// input/base/opt) with the normalized, percent-encoded path.
func WritePath(out, input, base []byte, opt path.Options) {
	v := &pathBufVisitor{out: out, cursor: len(out)}

	path.Walk(v, input, base, opt)
}
