// Package parser offers a configurable front end over the root url
// package's Parse/Resolve functions: a default scheme applied to inputs
// that are missing one, a validation mode (lenient by default, or strict,
// where the first reported irregularity aborts the parse), and a
// configurable TLD list for domain decomposition, carried over from the
// teacher's own Parser.
//
// Example Usage:
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "github.com/hueristiq/hq-go-weburl/parser"
//	)
//
//	func main() {
//	    // Create a new parser with a default scheme of "https".
//	    p := parser.New(parser.WithDefaultScheme("https"))
//
//	    // Parse a raw URL string without a scheme.
//	    parsedURL, err := p.Parse("www.example.com")
//	    if err != nil {
//	        fmt.Println("Error parsing URL:", err)
//	        return
//	    }
//
//	    // Print the decomposed domain.
//	    fmt.Println("Domain:", p.ParseDomain(parsedURL.Hostname()).String())
//	}
//
// References:
//   - WHATWG URL Living Standard: https://url.spec.whatwg.org/
package parser
