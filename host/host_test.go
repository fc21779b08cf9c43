package host_test

import (
	"testing"

	"github.com/hueristiq/hq-go-weburl/host"
	"github.com/hueristiq/hq-go-weburl/schemes"
)

func TestParseDomain(t *testing.T) {
	t.Parallel()

	h, err := host.Parse("GoOgLe.com", true, schemes.KindHTTPS, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h.Kind() != host.KindDomain {
		t.Fatalf("kind = %v, want KindDomain", h.Kind())
	}

	if h.String() != "google.com" {
		t.Errorf("String() = %q, want %q", h.String(), "google.com")
	}
}

func TestParseFileLocalhost(t *testing.T) {
	t.Parallel()

	h, err := host.Parse("localhost", true, schemes.KindFile, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h.Kind() != host.KindEmpty {
		t.Fatalf("kind = %v, want KindEmpty", h.Kind())
	}
}

func TestParseIPv4Forms(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"192.168.1.1", "192.168.1.1"},
		{"0x100", "0.0.1.0"},
		{"0300.0250.0.1", "192.168.0.1"},
		{"1.1", "1.0.0.1"},
		{"1", "0.0.0.1"},
	}

	for _, c := range cases {
		c := c

		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			h, err := host.Parse(c.in, true, schemes.KindHTTP, nil)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", c.in, err)
			}

			if h.Kind() != host.KindIPv4 {
				t.Fatalf("kind = %v, want KindIPv4", h.Kind())
			}

			if h.String() != c.want {
				t.Errorf("String() = %q, want %q", h.String(), c.want)
			}
		})
	}
}

func TestParseIPv6(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"[::1]", "[::1]"},
		{"[2001:db8::1]", "[2001:db8::1]"},
		{"[::ffff:192.168.1.1]", "[::ffff:c0a8:101]"},
		// spec.md §8 property 8: ::127.0.0.1 and ::7f00:1 denote the same
		// address and must canonicalize to the same serialization.
		{"[::127.0.0.1]", "[::7f00:1]"},
		{"[::7f00:1]", "[::7f00:1]"},
	}

	for _, c := range cases {
		c := c

		t.Run(c.in, func(t *testing.T) {
			t.Parallel()

			h, err := host.Parse(c.in, true, schemes.KindHTTP, nil)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", c.in, err)
			}

			if h.Kind() != host.KindIPv6 {
				t.Fatalf("kind = %v, want KindIPv6", h.Kind())
			}

			if h.String() != c.want {
				t.Errorf("String() = %q, want %q", h.String(), c.want)
			}
		})
	}
}

func TestParseUnclosedIPv6Fails(t *testing.T) {
	t.Parallel()

	_, err := host.Parse("[::1", true, schemes.KindHTTP, nil)
	if err == nil {
		t.Fatal("expected error for unclosed IPv6 literal")
	}
}

func TestParseEmptyHostSpecialFails(t *testing.T) {
	t.Parallel()

	_, err := host.Parse("", true, schemes.KindHTTPS, nil)
	if err == nil {
		t.Fatal("expected error for empty host on a special scheme")
	}
}

func TestParseEmptyHostNonSpecial(t *testing.T) {
	t.Parallel()

	h, err := host.Parse("", false, schemes.KindNotSpecial, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h.Kind() != host.KindEmpty {
		t.Fatalf("kind = %v, want KindEmpty", h.Kind())
	}
}

func TestParseOpaqueHost(t *testing.T) {
	t.Parallel()

	h, err := host.Parse("café", false, schemes.KindNotSpecial, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h.Kind() != host.KindOpaque {
		t.Fatalf("kind = %v, want KindOpaque", h.Kind())
	}

	if h.String() != "caf%C3%A9" {
		t.Errorf("String() = %q, want %q", h.String(), "caf%C3%A9")
	}
}
