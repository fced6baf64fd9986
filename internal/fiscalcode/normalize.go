package fiscalcode

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics strips combining marks so À, È, Ì etc. classify as their
// base letter. Transformers hold state, so a fresh chain is built per call.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// letters uppercases s and keeps only A-Z. Whitespace, apostrophes and
// hyphens inside compound names are dropped entirely.
func letters(s string) string {
	s = strings.ToUpper(foldDiacritics(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isVowel(c byte) bool {
	switch c {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// splitLetters returns consonants and vowels of an already normalized name,
// each in their original order.
func splitLetters(s string) (consonants, vowels string) {
	var cons, vows strings.Builder
	for i := 0; i < len(s); i++ {
		if isVowel(s[i]) {
			vows.WriteByte(s[i])
		} else {
			cons.WriteByte(s[i])
		}
	}
	return cons.String(), vows.String()
}

func padX(s string) string {
	s += "XXX"
	return s[:3]
}

// surnameCode returns the three surname letters: the first three consonants,
// or consonants then vowels padded with X.
func surnameCode(normalized string) string {
	cons, vows := splitLetters(normalized)
	if len(cons) >= 3 {
		return cons[:3]
	}
	return padX(cons + vows)
}

// nameCode differs from surnameCode only when the name has four or more
// consonants: then the 1st, 3rd and 4th are used.
func nameCode(normalized string) string {
	cons, vows := splitLetters(normalized)
	switch {
	case len(cons) >= 4:
		return string([]byte{cons[0], cons[2], cons[3]})
	case len(cons) == 3:
		return cons
	}
	return padX(cons + vows)
}
