package fiscalcode

import (
	"regexp"
	"strings"
)

// PatternString is the shape check applied by the fiscal-data forms on every
// keystroke and on submit. It is kept byte-for-byte for client compatibility.
const PatternString = `^[A-Z]{6}[0-9]{2}[A-Z][0-9]{2}[A-Z][0-9]{3}[A-Z]$`

// Pattern is the compiled PatternString.
var Pattern = regexp.MustCompile(PatternString)

// Length of a complete fiscal code.
const Length = 16

// ValidFormat uppercases code and matches it against Pattern. It does not
// check the control letter.
func ValidFormat(code string) bool {
	return Pattern.MatchString(strings.ToUpper(code))
}

// Verify reports whether code has a valid shape and a matching control letter.
func Verify(code string) bool {
	code = strings.ToUpper(code)
	if !Pattern.MatchString(code) {
		return false
	}
	want, err := Checksum(code[:partialLength])
	if err != nil {
		return false
	}
	return code[partialLength] == want
}
