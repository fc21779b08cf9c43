// Package url implements the WHATWG URL Living Standard's parsing,
// serialization, and resolution algorithm.
//
// A URL value owns a single contiguous byte buffer holding its canonical
// serialization, plus a fixed-size structure recording the byte offsets of
// each component within that buffer (scheme, authority, path, query,
// fragment). Component getters slice this storage directly and never
// allocate; mutation operations (the Set* family) re-run the writer
// and return a new, independent URL value — URLs are immutable once
// constructed.
//
// Parsing is driven by the scanner, host, path, and writer packages in this
// module, which together implement the state machine, host classification,
// path normalization, and two-pass (measure, then write) serialization the
// Standard describes. Non-fatal irregularities observed while parsing (stray
// backslashes, unescaped '%', forbidden code points, and so on) are reported
// through an optional callback; they never change the resulting URL, only
// whether the caller is told about them.
//
// Example usage:
//
//	package main
//
//	import (
//	    "fmt"
//
//	    hqweburl "github.com/hueristiq/hq-go-weburl"
//	)
//
//	func main() {
//	    base, err := hqweburl.Parse("https://example.com/a/b/")
//	    if err != nil {
//	        fmt.Println("parse error:", err)
//
//	        return
//	    }
//
//	    resolved, err := base.Resolve("../c?q=1")
//	    if err != nil {
//	        fmt.Println("resolve error:", err)
//
//	        return
//	    }
//
//	    fmt.Println(resolved.String()) // https://example.com/a/c?q=1
//	}
//
// References:
//   - WHATWG URL Living Standard: https://url.spec.whatwg.org/
package url
