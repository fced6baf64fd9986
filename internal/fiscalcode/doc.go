// Package fiscalcode derives and checks the Italian personal fiscal code
// (codice fiscale).
//
// The package is pure: no I/O, no context.Context, no clock. Calculate builds
// the 16-character code from surname, given name, birth date, sex and birth
// place following the Agenzia delle Entrate rules:
//
//	RSS MRA 85 M 01 H501 Q
//	|   |   |  | |  |    +-- checksum letter (mod 26 over odd/even tables)
//	|   |   |  | |  +------- Belfiore cadastral code of the birth place
//	|   |   |  | +---------- day of birth, +40 for women
//	|   |   |  +------------ month letter
//	|   |   +--------------- last two digits of the birth year
//	|   +------------------- given-name letters
//	+----------------------- surname letters
//
// Lookup tables are read-only after construction, so a Calculator may be
// shared by any number of goroutines.
package fiscalcode
