package fiscalcode

// Conversion values for characters in odd positions (1st, 3rd, ... 15th).
// Digits share the values of the letter at the same index (0=A, 1=B, ...).
var oddValues = [26]int{
	1, 0, 5, 7, 9, 13, 15, 17, 19, 21, // A-J, 0-9
	2, 4, 18, 20, 11, 3, 6, 8, 12, 14, // K-T
	16, 10, 22, 25, 24, 23, // U-Z
}

// partialLength is the code length without the checksum letter.
const partialLength = 15

// Checksum computes the control letter for the first 15 characters of a code.
// Even positions count letters as A=0..Z=25 and digits at face value.
func Checksum(partial string) (byte, error) {
	if len(partial) != partialLength {
		return 0, ErrMalformedCode
	}
	sum := 0
	for i := 0; i < partialLength; i++ {
		idx, ok := charIndex(partial[i])
		if !ok {
			return 0, ErrMalformedCode
		}
		if i%2 == 0 {
			sum += oddValues[idx]
		} else {
			sum += idx
		}
	}
	return byte('A' + sum%26), nil
}

func charIndex(c byte) (int, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), true
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	}
	return 0, false
}
