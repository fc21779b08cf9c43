// Package errors defines this module's error taxonomy: a single fatal
// ParseError returned when a URL cannot be parsed at all, and a catalog of
// named Validation codes for the non-fatal irregularities the WHATWG URL
// Standard's parser collects along the way (spec.md §6.4) without aborting.
//
// Both are built on top of github.com/hueristiq/hq-go-errors so that callers
// already using that package's inspection helpers against hq-go-url errors
// can do the same here.
package errors
