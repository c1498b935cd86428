// Package internal holds helpers for rendering and parsing 3-bit digit
// sequences.
package internal

import (
	"strconv"
	"strings"
)

// JoinDigits renders a digit sequence as a comma separated list.
func JoinDigits(digits []uint8) string {
	var sb strings.Builder
	for n, digit := range digits {
		if n > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('0' + digit)
	}
	return sb.String()
}

// SplitDigits parses a comma separated list of small unsigned integers.
// Whitespace around each element is ignored; an empty string is an empty list.
func SplitDigits(text string) (digits []uint8, err error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return
	}

	for _, word := range strings.Split(text, ",") {
		var value uint64
		value, err = strconv.ParseUint(strings.TrimSpace(word), 10, 8)
		if err != nil {
			return
		}
		digits = append(digits, uint8(value))
	}

	return
}

// Octal renders a value as base-8 digits, most significant first.
func Octal(value uint64) (digits []uint8) {
	for {
		digits = append(digits, uint8(value&7))
		value >>= 3
		if value == 0 {
			break
		}
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return
}
