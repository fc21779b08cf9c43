package host

import (
	"strconv"
	"strings"

	"github.com/hueristiq/hq-go-weburl/ascii"
)

// ParseIPv6 parses the interior of a bracketed IPv6 address (the bytes
// between '[' and ']', not including the brackets) into eight 16-bit
// groups, per spec.md §4.3.2: at most one "::" compression is allowed, and
// the last 32 bits may instead be written as an embedded IPv4 address.
func ParseIPv6(s string) (groups [8]uint16, ok bool) {
	var (
		pieceIndex   int
		compressIdx  = -1
		pointer      int
	)

	if len(s) >= 2 && s[0] == ':' { //nolint:mnd
		if s[1] != ':' {
			return groups, false
		}

		pointer = 2
		pieceIndex = 1
		compressIdx = 1
	}

	for pointer < len(s) {
		if pieceIndex == 8 { //nolint:mnd
			return groups, false
		}

		if s[pointer] == ':' {
			if compressIdx != -1 {
				return groups, false
			}

			pointer++
			pieceIndex++
			compressIdx = pieceIndex

			continue
		}

		start := pointer
		value := uint32(0)
		length := 0

		for pointer < len(s) && length < 4 && ascii.IsHexDigit(s[pointer]) { //nolint:mnd
			v, _ := ascii.HexValue(s[pointer])
			value = value<<4 | uint32(v) //nolint:mnd
			pointer++
			length++
		}

		if pointer < len(s) && s[pointer] == '.' {
			if length == 0 {
				return groups, false
			}

			pointer = start

			if !parseEmbeddedIPv4(s, &pointer, &pieceIndex, &groups) {
				return groups, false
			}

			break
		}

		if pointer < len(s) && s[pointer] == ':' {
			pointer++

			if pointer >= len(s) {
				return groups, false
			}
		} else if pointer < len(s) {
			return groups, false
		}

		groups[pieceIndex] = uint16(value)
		pieceIndex++
	}

	if compressIdx != -1 {
		swaps := pieceIndex - compressIdx
		for i := 1; i <= swaps; i++ {
			groups[8-i], groups[compressIdx+swaps-i] = groups[compressIdx+swaps-i], groups[8-i] //nolint:mnd
		}

		pieceIndex = 8 //nolint:mnd
	}

	if pieceIndex != 8 { //nolint:mnd
		return groups, false
	}

	return groups, true
}

// parseEmbeddedIPv4 parses a dotted-decimal IPv4 address ending an IPv6
// literal (e.g. "::ffff:192.168.1.1") into the last two 16-bit groups, each
// byte pair packed big-endian as the WHATWG Standard's IPv4-in-IPv6 parser
// does.
func parseEmbeddedIPv4(s string, pointer *int, pieceIndex *int, groups *[8]uint16) bool {
	if *pieceIndex > 6 { //nolint:mnd
		return false
	}

	numbersSeen := 0

	for *pointer < len(s) {
		if numbersSeen > 0 {
			if s[*pointer] == '.' && numbersSeen < 4 { //nolint:mnd
				*pointer++
			} else {
				return false
			}
		}

		if *pointer >= len(s) || !ascii.IsDigit(s[*pointer]) {
			return false
		}

		digitsStart := *pointer
		number := 0

		for *pointer < len(s) && ascii.IsDigit(s[*pointer]) {
			if digitsStart != *pointer && s[digitsStart] == '0' {
				return false // leading zero
			}

			number = number*10 + int(s[*pointer]-'0') //nolint:mnd
			if number > 255 { //nolint:mnd
				return false
			}

			*pointer++
		}

		groups[*pieceIndex] = groups[*pieceIndex]*0x100 + uint16(number) //nolint:mnd
		numbersSeen++

		if numbersSeen == 2 || numbersSeen == 4 { //nolint:mnd
			*pieceIndex++
		}
	}

	return numbersSeen == 4 //nolint:mnd
}

// formatIPv6 renders groups in RFC-5952 canonical compressed form: lower-
// case hex, the longest run of two-or-more zero groups collapsed to "::"
// (ties broken in favor of the first run), and no leading zeros within a
// group.
func formatIPv6(groups [8]uint16) string {
	start, length := longestZeroRun(groups)

	var b strings.Builder

	for i := 0; i < 8; { //nolint:mnd
		if i == start && length > 1 {
			b.WriteString("::")

			i += length

			if i == 8 { //nolint:mnd
				break
			}

			continue
		}

		b.WriteString(strconv.FormatUint(uint64(groups[i]), 16)) //nolint:mnd

		i++

		if i != 8 && !(i == start && length > 1) { //nolint:mnd
			b.WriteByte(':')
		}
	}

	return b.String()
}

func longestZeroRun(groups [8]uint16) (start, length int) {
	bestStart, bestLen := -1, 0
	curStart, curLen := -1, 0

	for i := 0; i < 8; i++ { //nolint:mnd
		if groups[i] == 0 {
			if curStart == -1 {
				curStart = i
			}

			curLen++

			if curLen > bestLen {
				bestStart, bestLen = curStart, curLen
			}
		} else {
			curStart, curLen = -1, 0
		}
	}

	if bestLen < 2 { //nolint:mnd
		return -1, 0
	}

	return bestStart, bestLen
}
