package walletform

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// numericPrefix matches the longest leading decimal literal, the way a browser's parseFloat reads it
var numericPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)`)

// ParseAmount reads the leading number from s and ignores whatever follows it.
// It returns NaN when s does not start with a number.
func ParseAmount(s string) float64 {
	s = strings.TrimLeftFunc(s, isSpace)
	lit := numericPrefix.FindString(s)
	if lit == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v
}

// isSpace matches the white space a browser trims: unicode white space
// plus the byte order mark, minus NEL (U+0085)
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\uFEFF'
}
