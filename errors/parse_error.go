package errors

import (
	"fmt"

	hqgoerrors "github.com/hueristiq/hq-go-errors"
)

// Fatal names one of the conditions that abort a parse outright and return
// no URL value (spec.md §4.6/§7): missing scheme with no base, invalid
// scheme characters, unclosed '[', invalid IPv6/IPv4, a forbidden host or
// domain code point, an empty host on a special scheme, a port out of
// range, or credentials supplied without a host.
type Fatal int

const (
	FatalMissingScheme Fatal = iota
	FatalInvalidScheme
	FatalUnclosedIPv6Address
	FatalInvalidIPv6Address
	FatalInvalidIPv4Address
	FatalForbiddenHostCodePoint
	FatalForbiddenDomainCodePoint
	FatalEmptyHost
	FatalPortOutOfRange
	FatalCredentialsWithoutHost
	FatalDomainToASCII
	FatalRelativeURLWithoutBase

	// FatalValidationError is not part of spec.md's own fatal-condition list;
	// it is raised by the parser package's strict mode (SPEC_FULL.md §2),
	// which turns the first reported Validation into an abort.
	FatalValidationError
)

//nolint:gochecknoglobals
var fatalMessages = [...]string{
	"missing scheme and no base URL to inherit one from",
	"invalid scheme character",
	"unclosed IPv6 address (missing closing ']')",
	"invalid IPv6 address",
	"invalid IPv4 address",
	"forbidden host code point",
	"forbidden domain code point",
	"empty host not permitted for this scheme",
	"port out of range",
	"credentials specified without a host",
	"domain could not be converted to ASCII",
	"relative reference has no base URL to resolve against",
	"validation error treated as fatal by parser configuration",
}

// ParseError is returned by Parse when an input cannot be turned into a URL
// value at all. It carries the Fatal condition that caused the abort and
// the byte offset into the input at which it was detected.
type ParseError struct {
	cause    error
	Kind     Fatal
	Position int
}

// NewParseError builds a ParseError for kind at the given byte position.
func NewParseError(kind Fatal, position int) *ParseError {
	msg := "invalid URL"
	if int(kind) >= 0 && int(kind) < len(fatalMessages) {
		msg = fatalMessages[kind]
	}

	return &ParseError{
		cause:    hqgoerrors.New(msg),
		Kind:     kind,
		Position: position,
	}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse url: %s (at byte %d)", e.cause.Error(), e.Position)
}

// Unwrap exposes the underlying hq-go-errors error for errors.Is/As chains.
func (e *ParseError) Unwrap() error {
	return e.cause
}
