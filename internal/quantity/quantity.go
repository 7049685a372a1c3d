// Package quantity splits free-text package sizes such as "250g" into an
// amount and a unit.
package quantity

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// ErrUnparsableQuantity is returned when the input does not start with
// digits immediately followed by letters.
var ErrUnparsableQuantity = errors.New("unparsable quantity")

var pattern = regexp.MustCompile(`^(\d+)([A-Za-z]+)`)

// Parse strips all whitespace from s and returns the leading integer amount
// and the unit letters that follow it. Decimal amounts are not supported:
// "1.5L" does not parse.
func Parse(s string) (float64, string, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	m := pattern.FindStringSubmatch(compact)
	if m == nil {
		return 0, "", fmt.Errorf("%w: %q", ErrUnparsableQuantity, s)
	}

	amount, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q: %v", ErrUnparsableQuantity, s, err)
	}
	return amount, m[2], nil
}
