package quote

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	// NumberPrefix starts every quote number issued by the Dubai office.
	NumberPrefix = "Q-DXB-"
	// NumberWidth is the zero-padded width of the sequence part.
	NumberWidth = 5
)

var numberSuffixPattern = regexp.MustCompile(`(\d+)$`)

// FormatNumber renders sequence as a quote number, e.g. 42 -> "Q-DXB-00042".
// Sequences wider than NumberWidth are not truncated.
func FormatNumber(sequence int) string {
	return fmt.Sprintf("%s%0*d", NumberPrefix, NumberWidth, sequence)
}

// NumberSuffix extracts the trailing decimal sequence of a quote number.
// It reports false when the number does not end in digits.
func NumberSuffix(quoteNo string) (int, bool) {
	match := numberSuffixPattern.FindStringSubmatch(quoteNo)
	if match == nil {
		return 0, false
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
