package expr

import (
	"strconv"
	"strings"
)

// IsWhite reports a blank or tab.
func IsWhite(c byte) bool {
	return c == ' ' || c == '\t'
}

// IsDigit reports a decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsFirstChar reports a character that can start an identifier.
func IsFirstChar(c byte, mri bool) bool {
	return isAlpha(c) || c == '_' || c == '$' || (mri && c == '.')
}

// IsNextChar reports a character that can continue an identifier.
func IsNextChar(c byte, mri bool) bool {
	return IsFirstChar(c, mri) || IsDigit(c)
}

// digit returns the value of c as a digit of any radix up to 36.
func digit(c byte) (d int, ok bool) {
	switch {
	case IsDigit(c):
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	}
	return
}

// ParseNumber reads the longest run of digits valid in radix, starting at
// start, and returns the value and the offset just past the run.
func ParseNumber(text string, start int, radix int) (value int, next int) {
	next = start
	for next < len(text) {
		d, ok := digit(text[next])
		if !ok || d >= radix {
			break
		}
		value = value*radix + d
		next++
	}
	return
}

// BaseOf returns the radix of a B, Q, D or H base character.
func BaseOf(c byte) (radix int, ok bool) {
	switch c {
	case 'b', 'B':
		return 2, true
	case 'q', 'Q':
		return 8, true
	case 'd', 'D':
		return 10, true
	case 'h', 'H':
		return 16, true
	}
	return
}

// Format renders n so that it reads back as n in radix.
func Format(n int, radix int) string {
	if radix == 0 || radix == 10 {
		return strconv.Itoa(n)
	}

	neg := n < 0
	if neg {
		n = -n
	}
	text := strings.ToUpper(strconv.FormatInt(int64(n), radix))
	if !IsDigit(text[0]) {
		text = "0" + text
	}
	if neg {
		text = "-" + text
	}
	return text
}
