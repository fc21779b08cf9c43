package path_test

import (
	"testing"

	"github.com/hueristiq/hq-go-weburl/path"
)

// recorder collects Walk's visitor calls in the order they were made
// (reverse-final order) without interpreting them, so tests can assert on
// the raw sequence.
type recorder struct {
	calls []string
}

func (r *recorder) VisitInputComponent(segment []byte, isWindowsDriveLetter bool) {
	if isWindowsDriveLetter {
		r.calls = append(r.calls, "input-drive:"+string(segment))
	} else {
		r.calls = append(r.calls, "input:"+string(segment))
	}
}

func (r *recorder) VisitBaseComponent(segment []byte) {
	r.calls = append(r.calls, "base:"+string(segment))
}

func (r *recorder) VisitEmptyComponents(n int) {
	for i := 0; i < n; i++ {
		r.calls = append(r.calls, "empty")
	}
}

func (r *recorder) VisitPathSigil() {
	r.calls = append(r.calls, "sigil")
}

// reversed returns the calls in forward (left-to-right) order, undoing the
// reverse-final ordering Walk documents.
func (r *recorder) reversed() []string {
	out := make([]string, len(r.calls))

	for i, c := range r.calls {
		out[len(r.calls)-1-i] = c
	}

	return out
}

func TestWalkSimplePath(t *testing.T) {
	t.Parallel()

	rec := &recorder{}

	path.Walk(rec, []byte("/a/b/c"), nil, path.Options{HasAuthority: true})

	got := rec.reversed()
	want := []string{"input:a", "input:b", "input:c"}

	assertEqual(t, got, want)
}

func TestWalkDotDotNormalizes(t *testing.T) {
	t.Parallel()

	rec := &recorder{}

	path.Walk(rec, []byte("/a/b/../c"), nil, path.Options{HasAuthority: true})

	got := rec.reversed()
	want := []string{"input:a", "input:c"}

	assertEqual(t, got, want)
}

func TestWalkWindowsDriveLetter(t *testing.T) {
	t.Parallel()

	rec := &recorder{}

	path.Walk(rec, []byte("/C:/foo/bar"), nil, path.Options{
		HasAuthority: true,
		IsFileScheme: true,
	})

	got := rec.reversed()
	want := []string{"input-drive:C:", "input:foo", "input:bar"}

	assertEqual(t, got, want)
}

func TestWalkEmptySpecialScheme(t *testing.T) {
	t.Parallel()

	rec := &recorder{}

	path.Walk(rec, nil, nil, path.Options{IsSpecial: true, HasAuthority: true})

	got := rec.reversed()
	want := []string{"empty"}

	assertEqual(t, got, want)
}

func TestWalkRelativeMergesWithBase(t *testing.T) {
	t.Parallel()

	rec := &recorder{}

	path.Walk(rec, []byte("c"), []byte("/a/b"), path.Options{HasAuthority: true})

	got := rec.reversed()
	want := []string{"base:a", "input:c"}

	assertEqual(t, got, want)
}

func assertEqual(t *testing.T, got, want []string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
