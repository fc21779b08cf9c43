// Package host implements the WHATWG URL Standard's host parser (spec.md
// §4.3): classifying a hostname string as empty, an ASCII domain, an
// IDNA-normalized domain, IPv4, IPv6, or an opaque host, and parsing the
// IPv4/IPv6 numeric forms.
//
// Non-ASCII domain labels are handed off to the idna package, which stands
// in for the external to_ascii collaborator spec.md treats as out of scope.
package host
