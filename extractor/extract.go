package extractor

import (
	hqweburl "github.com/hueristiq/hq-go-weburl"
	"github.com/hueristiq/hq-go-weburl/parser"
)

// Extract scans text for URL-shaped substrings using CompileRegex, then
// hands each candidate to p for normalization, keeping only the candidates
// that parse into a genuine URL and discarding the rest (a scheme-less
// relative path fragment the regex over-matched, for instance). p may be
// nil, in which case a Parser defaulting scheme-less candidates to "http"
// is used.
//
// Candidates are returned in the order their matches appear in text.
func (e *Extractor) Extract(text string, p *parser.Parser) (urls []*hqweburl.URL) {
	if p == nil {
		p = parser.New(parser.WithDefaultScheme("http"))
	}

	regex := e.CompileRegex()

	matches := regex.FindAllString(text, -1)

	urls = make([]*hqweburl.URL, 0, len(matches))

	for _, match := range matches {
		u, err := p.Parse(match)
		if err != nil {
			continue
		}

		urls = append(urls, u)
	}

	return
}
