package fiscalcode

import (
	"fmt"
	"strings"
	"time"
)

// Sex selects the day offset. The fiscal-data form historically did not
// collect it, so SexUnspecified keeps the unshifted day.
type Sex string

const (
	SexUnspecified Sex = ""
	SexMale        Sex = "M"
	SexFemale      Sex = "F"
)

// femaleDayOffset is added to the day of birth for women.
const femaleDayOffset = 40

// ParseSex accepts "", "M" or "F" in any case.
func ParseSex(s string) (Sex, error) {
	switch Sex(strings.ToUpper(strings.TrimSpace(s))) {
	case SexUnspecified:
		return SexUnspecified, nil
	case SexMale:
		return SexMale, nil
	case SexFemale:
		return SexFemale, nil
	}
	return "", &FieldError{Field: "sex", Err: ErrInvalidSex}
}

// monthLetters maps January..December to the month code. F, G, I, N, O and Q
// are skipped by the standard.
var monthLetters = [12]byte{'A', 'B', 'C', 'D', 'E', 'H', 'L', 'M', 'P', 'R', 'S', 'T'}

// Input holds the personal data a fiscal code is derived from.
type Input struct {
	FirstName  string
	LastName   string
	BirthDate  time.Time
	BirthPlace string
	Sex        Sex
}

// Code is a complete 16-character fiscal code.
type Code string

func (c Code) String() string {
	return string(c)
}

// Result is a derived code plus how its birth place was resolved.
type Result struct {
	Code Code
	// FallbackPlace is set when the configured fallback code replaced an
	// unresolvable birth place.
	FallbackPlace bool
}

// Calculator derives fiscal codes against a Belfiore table.
type Calculator struct {
	table        *Table
	fallbackCode string
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithTable replaces the built-in Belfiore table.
func WithTable(t *Table) Option {
	return func(c *Calculator) {
		if t != nil {
			c.table = t
		}
	}
}

// WithFallbackPlace makes unresolvable birth places use code instead of
// failing with ErrUnresolvableBirthPlace. The resulting code is wrong for the
// person, so only enable it where the user reviews the result.
func WithFallbackPlace(code string) Option {
	return func(c *Calculator) {
		c.fallbackCode = strings.ToUpper(strings.TrimSpace(code))
	}
}

// New builds a Calculator. Without options it uses DefaultTable and fails on
// unknown birth places.
func New(opts ...Option) (*Calculator, error) {
	c := &Calculator{table: DefaultTable()}
	for _, opt := range opts {
		opt(c)
	}
	if c.fallbackCode != "" && !belfioreCodePattern.MatchString(c.fallbackCode) {
		return nil, fmt.Errorf("invalid fallback belfiore code %q", c.fallbackCode)
	}
	return c, nil
}

// Table returns the Belfiore table in use.
func (c *Calculator) Table() *Table {
	return c.table
}

// Calculate derives the fiscal code for in. See Derive for errors.
func (c *Calculator) Calculate(in Input) (Code, error) {
	res, err := c.Derive(in)
	if err != nil {
		return "", err
	}
	return res.Code, nil
}

// Derive is Calculate reporting whether the fallback place was used.
//
// Errors: ErrMissingField (wrapped in *FieldError) for blank names, names
// without any letter, a zero birth date or a blank birth place;
// ErrUnresolvableBirthPlace when the place is unknown and no fallback is set;
// ErrInvalidSex for an unknown Sex value.
func (c *Calculator) Derive(in Input) (Result, error) {
	if strings.TrimSpace(in.LastName) == "" {
		return Result{}, missing("last_name")
	}
	if strings.TrimSpace(in.FirstName) == "" {
		return Result{}, missing("first_name")
	}
	if in.BirthDate.IsZero() || in.BirthDate.Year() < 1 {
		return Result{}, missing("birth_date")
	}
	if strings.TrimSpace(in.BirthPlace) == "" {
		return Result{}, missing("birth_place")
	}
	sex, err := ParseSex(string(in.Sex))
	if err != nil {
		return Result{}, err
	}

	last := letters(in.LastName)
	if last == "" {
		return Result{}, missing("last_name")
	}
	first := letters(in.FirstName)
	if first == "" {
		return Result{}, missing("first_name")
	}

	place, ok := c.table.Resolve(in.BirthPlace)
	if !ok {
		if c.fallbackCode == "" {
			return Result{}, &FieldError{Field: "birth_place", Err: ErrUnresolvableBirthPlace}
		}
		place = c.fallbackCode
	}
	fallback := !ok

	day := in.BirthDate.Day()
	if sex == SexFemale {
		day += femaleDayOffset
	}

	var b strings.Builder
	b.Grow(Length)
	b.WriteString(surnameCode(last))
	b.WriteString(nameCode(first))
	fmt.Fprintf(&b, "%02d", in.BirthDate.Year()%100)
	b.WriteByte(monthLetters[in.BirthDate.Month()-1])
	fmt.Fprintf(&b, "%02d", day)
	b.WriteString(place)

	partial := b.String()
	check, err := Checksum(partial)
	if err != nil {
		return Result{}, err
	}
	return Result{Code: Code(partial + string(check)), FallbackPlace: fallback}, nil
}
