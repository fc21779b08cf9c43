package host

import (
	"strconv"

	"github.com/hueristiq/hq-go-weburl/ascii"
)

// endsInANumber reports whether the final, non-empty dot-separated label of
// domain looks like an IPv4 address candidate (spec.md §4.3.4c): after
// dropping one trailing '.', the label starts with an ASCII digit and is
// either all-digits or "0x"/"0X" followed by hex digits.
func endsInANumber(domain string) bool {
	s := domain
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}

	if s == "" {
		return false
	}

	last := s
	if idx := lastIndexByte(s, '.'); idx >= 0 {
		last = s[idx+1:]
	}

	if last == "" || !ascii.IsDigit(last[0]) {
		return false
	}

	if len(last) > 1 && last[0] == '0' && (last[1] == 'x' || last[1] == 'X') {
		for i := 2; i < len(last); i++ {
			if !ascii.IsHexDigit(last[i]) {
				return false
			}
		}

		return true
	}

	for i := 0; i < len(last); i++ {
		if !ascii.IsDigit(last[i]) {
			return false
		}
	}

	return true
}

func lastIndexByte(s string, b byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == b {
			return i
		}
	}

	return -1
}

// parseIPv4Part parses one dot-separated part of an IPv4 address as decimal,
// octal (leading '0'), or hex ("0x"/"0X" prefix), per spec.md §4.3.4c.
func parseIPv4Part(part string) (value uint64, ok bool) {
	if part == "" {
		return 0, false
	}

	base := 10

	switch {
	case len(part) >= 2 && part[0] == '0' && (part[1] == 'x' || part[1] == 'X'): //nolint:mnd
		base = 16
		part = part[2:]
	case len(part) >= 2 && part[0] == '0': //nolint:mnd
		base = 8
		part = part[1:]
	case part[0] == '0' && len(part) == 1:
		return 0, true
	}

	if part == "" {
		return 0, true
	}

	for i := 0; i < len(part); i++ {
		b := part[i]

		switch base {
		case 8: //nolint:mnd
			if b < '0' || b > '7' {
				return 0, false
			}
		case 16: //nolint:mnd
			if !ascii.IsHexDigit(b) {
				return 0, false
			}
		default:
			if !ascii.IsDigit(b) {
				return 0, false
			}
		}
	}

	n, err := strconv.ParseUint(part, base, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}

// ParseIPv4 parses an IPv4 address in any of the WHATWG Standard's accepted
// forms (1 to 4 dot-separated decimal/octal/hex parts, packed per spec.md
// §4.3.4c) and returns it as a big-endian-ordered 32-bit value.
func ParseIPv4(s string) (addr uint32, ok bool) {
	parts := splitOn(s, '.')
	if len(parts) == 0 || len(parts) > 4 { //nolint:mnd
		return 0, false
	}

	values := make([]uint64, 0, len(parts))

	for i, p := range parts {
		if p == "" && !(i == len(parts)-1 && len(parts) == 1) {
			return 0, false
		}

		v, valid := parseIPv4Part(p)
		if !valid {
			return 0, false
		}

		values = append(values, v)
	}

	// Every part but the last must fit in a byte.
	for i := 0; i < len(values)-1; i++ {
		if values[i] > 0xFF { //nolint:mnd
			return 0, false
		}
	}

	maxLast := uint64(1) << (8 * uint(5-len(values))) //nolint:mnd
	if values[len(values)-1] >= maxLast {
		return 0, false
	}

	var result uint64

	for i := 0; i < len(values)-1; i++ {
		result |= values[i] << (8 * uint(4-i-1)) //nolint:mnd
	}

	result |= values[len(values)-1]

	return uint32(result), true
}

func splitOn(s string, sep byte) []string {
	var parts []string

	start := 0

	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}

	parts = append(parts, s[start:])

	return parts
}
