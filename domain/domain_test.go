package domain_test

import (
	"fmt"
	"testing"

	"github.com/hueristiq/hq-go-weburl/domain"
)

func TestDomain_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		d        *domain.Domain
		expected string
	}{
		{&domain.Domain{SLD: "example"}, "example"},
		{&domain.Domain{SLD: "example", TLD: "com"}, "example.com"},
		{&domain.Domain{Subdomain: "www", SLD: "example", TLD: "com"}, "www.example.com"},
		{&domain.Domain{Subdomain: "blog.www", SLD: "example", TLD: "com"}, "blog.www.example.com"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("String(%+v)", c.d), func(t *testing.T) {
			t.Parallel()

			if got := c.d.String(); got != c.expected {
				t.Errorf("String() = %q, want %q", got, c.expected)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		hostname string
		expected *domain.Domain
	}{
		{"example.com", &domain.Domain{SLD: "example", TLD: "com"}},
		{"www.example.com", &domain.Domain{Subdomain: "www", SLD: "example", TLD: "com"}},
		{"www.example.co.uk", &domain.Domain{Subdomain: "www", SLD: "example", TLD: "co.uk"}},
		{"localhost", &domain.Domain{SLD: "localhost"}},
		{"example", &domain.Domain{SLD: "example"}},
	}

	for _, c := range cases {
		t.Run(c.hostname, func(t *testing.T) {
			t.Parallel()

			got := domain.Parse(c.hostname)

			if got.Subdomain != c.expected.Subdomain || got.SLD != c.expected.SLD || got.TLD != c.expected.TLD {
				t.Errorf("Parse(%q) = %+v, want %+v", c.hostname, got, c.expected)
			}
		})
	}
}
