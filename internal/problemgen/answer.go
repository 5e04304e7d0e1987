package problemgen

import (
	"strconv"
	"strings"
)

// CheckAnswer compares a typed numeric answer against the problem's
// expected answer. Leading/trailing whitespace and leading zeros are
// ignored; non-numeric input is simply wrong.
func CheckAnswer(input string, p Problem) bool {
	v, err := ParseAnswer(input)
	if err != nil {
		return false
	}
	return v == p.Answer
}

// ParseAnswer parses a learner's numeric input.
func ParseAnswer(input string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(input))
}

// CheckSpelling compares a free-text spelling answer against the expected
// word: case-insensitive, with all whitespace stripped so "ice cream" and
// "icecream" both match.
func CheckSpelling(input, expected string) bool {
	return normalizeSpelling(input) != "" &&
		normalizeSpelling(input) == normalizeSpelling(expected)
}

func normalizeSpelling(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
