package ascii_test

import (
	"testing"

	"github.com/hueristiq/hq-go-weburl/ascii"
)

func TestIsForbiddenHostCodePoint(t *testing.T) {
	t.Parallel()

	forbidden := []byte{0x00, 0x09, 0x0A, 0x0D, ' ', '#', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^', '|'}

	for _, b := range forbidden {
		if !ascii.IsForbiddenHostCodePoint(b) {
			t.Errorf("IsForbiddenHostCodePoint(%q) = false, want true", b)
		}
	}

	allowed := []byte{'a', 'Z', '0', '.', '-', '~', '_', '%'}

	for _, b := range allowed {
		if ascii.IsForbiddenHostCodePoint(b) {
			t.Errorf("IsForbiddenHostCodePoint(%q) = true, want false", b)
		}
	}
}

func TestIsForbiddenDomainCodePoint(t *testing.T) {
	t.Parallel()

	if !ascii.IsForbiddenDomainCodePoint('%') {
		t.Error("'%' should be forbidden in a domain")
	}

	if !ascii.IsForbiddenDomainCodePoint(0x7F) {
		t.Error("DEL should be forbidden in a domain")
	}

	if ascii.IsForbiddenDomainCodePoint('a') {
		t.Error("'a' should not be forbidden in a domain")
	}
}

func TestHexValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		b    byte
		v    byte
		ok   bool
	}{
		{'0', 0, true},
		{'9', 9, true},
		{'a', 10, true},
		{'F', 15, true},
		{'g', 0, false},
		{' ', 0, false},
	}

	for _, c := range cases {
		v, ok := ascii.HexValue(c.b)
		if v != c.v || ok != c.ok {
			t.Errorf("HexValue(%q) = (%d, %v), want (%d, %v)", c.b, v, ok, c.v, c.ok)
		}
	}
}

func TestDotSegments(t *testing.T) {
	t.Parallel()

	singles := []string{".", "%2e", "%2E"}
	for _, s := range singles {
		if !ascii.IsSingleDotPathSegment([]byte(s)) {
			t.Errorf("IsSingleDotPathSegment(%q) = false, want true", s)
		}
	}

	doubles := []string{"..", ".%2e", "%2e.", "%2e%2e", "%2E%2E"}
	for _, s := range doubles {
		if !ascii.IsDoubleDotPathSegment([]byte(s)) {
			t.Errorf("IsDoubleDotPathSegment(%q) = false, want true", s)
		}
	}

	if ascii.IsDoubleDotPathSegment([]byte("...")) {
		t.Error(`IsDoubleDotPathSegment("...") = true, want false`)
	}

	if ascii.IsSingleDotPathSegment([]byte("..")) {
		t.Error(`IsSingleDotPathSegment("..") = true, want false`)
	}
}

func TestWindowsDriveLetter(t *testing.T) {
	t.Parallel()

	if !ascii.IsWindowsDriveLetter([]byte("C:")) {
		t.Error(`IsWindowsDriveLetter("C:") = false, want true`)
	}

	if !ascii.IsWindowsDriveLetter([]byte("c|")) {
		t.Error(`IsWindowsDriveLetter("c|") = false, want true`)
	}

	if ascii.IsNormalizedWindowsDriveLetter([]byte("c|")) {
		t.Error(`IsNormalizedWindowsDriveLetter("c|") = true, want false`)
	}

	if !ascii.HasWindowsDrivePrefix([]byte("C:/foo")) {
		t.Error(`HasWindowsDrivePrefix("C:/foo") = false, want true`)
	}

	if ascii.HasWindowsDrivePrefix([]byte("C:foo")) {
		t.Error(`HasWindowsDrivePrefix("C:foo") = true, want false`)
	}
}

func TestIsNonURLCodePoint(t *testing.T) {
	t.Parallel()

	if ascii.IsNonURLCodePoint('a') {
		t.Error("'a' should be a URL code point")
	}

	if !ascii.IsNonURLCodePoint(' ') {
		t.Error("space should not be a URL code point")
	}

	if !ascii.IsNonURLCodePoint(0xFFFE) {
		t.Error("U+FFFE should not be a URL code point")
	}

	if !ascii.IsNonURLCodePoint(0xD800) {
		t.Error("a surrogate should not be a URL code point")
	}
}
