package copybook

import (
	"regexp"
	"strconv"
	"strings"
)

// Matches numeric PIC tokens only: optional sign/packed/scale markers, a digit
// marker with optional repeat count, then an optional scaled fraction part.
// Pure text tokens (X, N, A) intentionally fall through.
var picturePattern = regexp.MustCompile(`^[PSV]*9(?:\((\d+)\))?(?:V9(?:\((\d+)\))?)?$`)

// Digits extracts the integer and decimal digit counts from a PIC-style type
// token, e.g. "9(5)V9(2)" yields (5, 2) and "PS9(7)" yields (7, 0). Tokens
// that do not match the numeric shape yield (0, 0); that is not an error
// here, callers decide what (0, 0) means for their type.
func Digits(token string) (intDigits, decDigits int) {
	m := picturePattern.FindStringSubmatch(token)
	if m == nil {
		return 0, 0
	}
	if m[1] != "" {
		intDigits, _ = strconv.Atoi(m[1])
	}
	if strings.Contains(token, "V") && m[2] != "" {
		decDigits, _ = strconv.Atoi(m[2])
	}
	return intDigits, decDigits
}
