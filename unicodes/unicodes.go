package unicodes

// AllowedUcsChar is a regexp character-class fragment (RE2/Go `regexp`
// syntax, usable inside `[...]`) spanning the non-ASCII "ucschar" code
// points from RFC 3987 §2.2 (Internationalized Resource Identifiers). It
// lets the extractor package recognize IRI labels written in non-Latin
// scripts (e.g. "пример.рф", "例え.jp") as part of a hostname, the same
// role the generated constant of this name played in the teacher package.
const AllowedUcsChar = `\x{00A0}-\x{D7FF}\x{F900}-\x{FDCF}\x{FDF0}-\x{FFEF}` +
	`\x{10000}-\x{1FFFD}\x{20000}-\x{2FFFD}\x{30000}-\x{3FFFD}` +
	`\x{40000}-\x{4FFFD}\x{50000}-\x{5FFFD}\x{60000}-\x{6FFFD}` +
	`\x{70000}-\x{7FFFD}\x{80000}-\x{8FFFD}\x{90000}-\x{9FFFD}` +
	`\x{A0000}-\x{AFFFD}\x{B0000}-\x{BFFFD}\x{C0000}-\x{CFFFD}` +
	`\x{D0000}-\x{DFFFD}\x{E1000}-\x{EFFFD}`

// AllowedUcsCharMinusPunc is AllowedUcsChar with U+2001-U+206F (most of the
// General Punctuation block) left out, for use at the
// end of a path segment where a trailing Unicode punctuation mark should not
// be consumed as part of the match.
const AllowedUcsCharMinusPunc = `\x{00A0}-\x{2000}\x{2070}-\x{D7FF}\x{F900}-\x{FDCF}\x{FDF0}-\x{FFEF}` +
	`\x{10000}-\x{1FFFD}\x{20000}-\x{2FFFD}\x{30000}-\x{3FFFD}` +
	`\x{40000}-\x{4FFFD}\x{50000}-\x{5FFFD}\x{60000}-\x{6FFFD}` +
	`\x{70000}-\x{7FFFD}\x{80000}-\x{8FFFD}\x{90000}-\x{9FFFD}` +
	`\x{A0000}-\x{AFFFD}\x{B0000}-\x{BFFFD}\x{C0000}-\x{CFFFD}` +
	`\x{D0000}-\x{DFFFD}\x{E1000}-\x{EFFFD}`
