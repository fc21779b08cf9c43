package extractor_test

import (
	"testing"

	"github.com/hueristiq/hq-go-weburl/extractor"
	"github.com/hueristiq/hq-go-weburl/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Extractor_Extract_DiscardsOverMatchedCandidates(t *testing.T) {
	t.Parallel()

	e := extractor.New()

	text := `
	See https://www.example.com/search?q=openai#results for the full writeup,
	or just grab /path/to/resource, it's cool!
	`

	urls := e.Extract(text, nil)

	require.Len(t, urls, 1)
	assert.Equal(t, "https://www.example.com/search?q=openai#results", urls[0].String())
}

func Test_Extractor_Extract_DefaultsToHTTPScheme(t *testing.T) {
	t.Parallel()

	e := extractor.New(extractor.WithHost())

	urls := e.Extract("visit www.example.com/resources today", nil)

	require.Len(t, urls, 1)
	assert.Equal(t, "http://www.example.com/resources", urls[0].String())
}

func Test_Extractor_Extract_UsesSuppliedParser(t *testing.T) {
	t.Parallel()

	e := extractor.New(extractor.WithHost())
	p := parser.New(parser.WithDefaultScheme("https"))

	urls := e.Extract("visit www.example.com/resources today", p)

	require.Len(t, urls, 1)
	assert.Equal(t, "https://www.example.com/resources", urls[0].String())
}

func Test_Extractor_Extract_OrdersMatchesAsTheyAppear(t *testing.T) {
	t.Parallel()

	e := extractor.New(extractor.WithScheme())

	text := "first https://a.example.com then https://b.example.com"

	urls := e.Extract(text, nil)

	require.Len(t, urls, 2)
	assert.Equal(t, "https://a.example.com/", urls[0].String())
	assert.Equal(t, "https://b.example.com/", urls[1].String())
}

func Test_Extractor_Extract_NoCandidatesYieldsEmptySlice(t *testing.T) {
	t.Parallel()

	e := extractor.New(extractor.WithScheme())

	urls := e.Extract("nothing URL shaped in here at all", nil)

	assert.Empty(t, urls)
}

func Test_Extractor_FromParser_RestrictsSchemeToParserDefault(t *testing.T) {
	t.Parallel()

	p := parser.New(parser.WithDefaultScheme("ftp"))
	e := extractor.New(extractor.FromParser(p))

	regex := e.CompileRegex()

	assert.True(t, regex.MatchString("ftp://example.com/file"))
	assert.False(t, regex.MatchString("https://example.com/file"))
}

func Test_Extractor_WithTLDs_NarrowsKnownTLDSet(t *testing.T) {
	t.Parallel()

	e := extractor.New(
		extractor.WithHost(),
		extractor.WithTLDs("internal"),
	)

	urls := e.Extract("reach it at host.internal/status or host.com/status", nil)

	require.Len(t, urls, 1)
	assert.Equal(t, "http://host.internal/status", urls[0].String())
}
