package parser_test

import (
	"testing"

	hqweburl "github.com/hueristiq/hq-go-weburl"
	"github.com/hueristiq/hq-go-weburl/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parser_Parse(t *testing.T) {
	t.Parallel()

	p := parser.New()

	tests := []struct {
		name        string
		raw         string
		expectedURL string
		expectedSub string
		expectedSLD string
		expectedTLD string
		expectedErr bool
	}{
		{"URL", "https://example.com/path", "https://example.com/path", "", "example", "com", false},
		{"URL with subdomain", "https://www.example.com/path", "https://www.example.com/path", "www", "example", "com", false},
		{"URL with port", "https://www.example.com:8080/path", "https://www.example.com:8080/path", "www", "example", "com", false},
		{"URL with IPv4", "http://192.168.0.1/path", "http://192.168.0.1/path", "", "", "", false},
		{"invalid URL", "://example.com", "", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := p.Parse(tt.raw)

			if tt.expectedErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedURL, got.String())

			d := got.DomainParts()

			if tt.expectedSLD == "" {
				assert.Nil(t, d)

				return
			}

			require.NotNil(t, d)
			assert.Equal(t, tt.expectedSub, d.Subdomain)
			assert.Equal(t, tt.expectedSLD, d.SLD)
			assert.Equal(t, tt.expectedTLD, d.TLD)
		})
	}
}

func Test_Parser_WithDefaultScheme(t *testing.T) {
	t.Parallel()

	p := parser.New(parser.WithDefaultScheme("https"))

	tests := []struct {
		name        string
		raw         string
		expectedURL string
	}{
		{"URL without scheme", "example.com/path", "https://example.com/path"},
		{"URL with ://", "://example.com/path", "https://example.com/path"},
		{"URL with scheme", "http://example.com/path", "http://example.com/path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := p.Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedURL, got.String())
		})
	}
}

func Test_Parser_WithTLDs(t *testing.T) {
	t.Parallel()

	p := parser.New(parser.WithTLDs("custom"))

	got, err := p.Parse("https://example.custom/path")
	require.NoError(t, err)

	d := p.ParseDomain(got.Hostname())
	require.NotNil(t, d)
	assert.Equal(t, "example", d.SLD)
	assert.Equal(t, "custom", d.TLD)
}

func Test_Parser_WithStrictValidation(t *testing.T) {
	t.Parallel()

	lenient := parser.New()

	_, err := lenient.Parse("https://example.com/a\\b")
	require.NoError(t, err)

	strict := parser.New(parser.WithStrictValidation())

	_, err = strict.Parse("https://example.com/a\\b")
	require.Error(t, err)
}

func Test_Parser_ParseRef(t *testing.T) {
	t.Parallel()

	p := parser.New()

	base, err := p.Parse("https://example.com/a/b/")
	require.NoError(t, err)

	resolved, err := p.ParseRef("../c", base)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a/c", resolved.String())
}

func Test_Parser_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var iface parser.Interface = parser.New()

	got, err := iface.Parse("https://example.com/")
	require.NoError(t, err)

	var _ *hqweburl.URL = got
}
