package fiscalcode

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	belfioreCodePattern = regexp.MustCompile(`^[A-Z][0-9]{3}$`)
	provincePattern     = regexp.MustCompile(`\(\s*([A-Za-z]{2})\s*\)`)
	parenthetical       = regexp.MustCompile(`\([^)]*\)`)
)

// Table maps birth places to Belfiore cadastral codes.
//
// Invariants:
//   - keys are normalized place names (see normalizePlace)
//   - values match ^[A-Z][0-9]{3}$
//   - a Table is never mutated after construction
type Table struct {
	places    map[string]string
	provinces map[string]string
	// capitals maps a province capital's code back to its abbreviation.
	capitals map[string]string
	// byLength lists place names longest first so containment picks the most
	// specific name ("REGGIO EMILIA" before "REGGIO").
	byLength []string
}

// NewTable builds a Table, normalizing keys and validating codes.
func NewTable(places, provinces map[string]string) (*Table, error) {
	t := &Table{
		places:    make(map[string]string, len(places)),
		provinces: make(map[string]string, len(provinces)),
		capitals:  make(map[string]string, len(provinces)),
	}
	for name, code := range places {
		key := normalizePlace(name)
		if key == "" {
			return nil, fmt.Errorf("belfiore table: empty place name for code %q", code)
		}
		code = strings.ToUpper(strings.TrimSpace(code))
		if !belfioreCodePattern.MatchString(code) {
			return nil, fmt.Errorf("belfiore table: invalid code %q for %q", code, name)
		}
		t.places[key] = code
	}
	for abbr, code := range provinces {
		key := strings.ToUpper(strings.TrimSpace(abbr))
		if len(key) != 2 {
			return nil, fmt.Errorf("belfiore table: invalid province %q", abbr)
		}
		code = strings.ToUpper(strings.TrimSpace(code))
		if !belfioreCodePattern.MatchString(code) {
			return nil, fmt.Errorf("belfiore table: invalid code %q for province %q", code, abbr)
		}
		t.provinces[key] = code
		t.capitals[code] = key
	}

	t.byLength = make([]string, 0, len(t.places))
	for name := range t.places {
		t.byLength = append(t.byLength, name)
	}
	sort.Slice(t.byLength, func(i, j int) bool {
		if len(t.byLength[i]) != len(t.byLength[j]) {
			return len(t.byLength[i]) > len(t.byLength[j])
		}
		return t.byLength[i] < t.byLength[j]
	})
	return t, nil
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := NewTable(builtinPlaces, builtinProvinces)
	if err != nil {
		panic(err)
	}
	return t
})

// DefaultTable returns the built-in table of major Italian municipalities,
// common foreign birth countries and province capitals.
func DefaultTable() *Table {
	return defaultTable()
}

// Len returns the number of place names in the table.
func (t *Table) Len() int {
	return len(t.places)
}

// Resolve finds the Belfiore code for a free-text birth place such as
// "Palermo", "nato a Reggio Emilia" or "Bagheria (PA)".
//
// Order: exact name, then the longest table name contained in the input as
// whole words, then the parenthesized province abbreviation. A contained
// name that is the capital of a different province than the annotation is
// not trusted: "Bari Sardo (NU)" resolves through NU, not to Bari.
func (t *Table) Resolve(place string) (string, bool) {
	province := ""
	if m := provincePattern.FindStringSubmatch(place); m != nil {
		province = strings.ToUpper(m[1])
	}

	name := normalizePlace(place)
	if name != "" {
		if code, ok := t.places[name]; ok {
			return code, true
		}
		padded := " " + name + " "
		for _, candidate := range t.byLength {
			if !strings.Contains(padded, " "+candidate+" ") {
				continue
			}
			code := t.places[candidate]
			if t.contradicts(code, province) {
				break
			}
			return code, true
		}
	}

	if code, ok := t.provinces[province]; ok {
		return code, true
	}
	return "", false
}

// contradicts reports whether code belongs to a province capital other than
// the known province abbreviation.
func (t *Table) contradicts(code, province string) bool {
	if _, known := t.provinces[province]; !known {
		return false
	}
	owner, isCapital := t.capitals[code]
	return isCapital && owner != province
}

// Merge returns a new Table with the given entries layered over t.
func (t *Table) Merge(places, provinces map[string]string) (*Table, error) {
	mergedPlaces := make(map[string]string, len(t.places)+len(places))
	for k, v := range t.places {
		mergedPlaces[k] = v
	}
	for k, v := range places {
		mergedPlaces[normalizePlace(k)] = v
	}
	mergedProvinces := make(map[string]string, len(t.provinces)+len(provinces))
	for k, v := range t.provinces {
		mergedProvinces[k] = v
	}
	for k, v := range provinces {
		mergedProvinces[strings.ToUpper(strings.TrimSpace(k))] = v
	}
	return NewTable(mergedPlaces, mergedProvinces)
}

// tableFile is the on-disk extension format:
//
//	places:
//	  Bagheria: A546
//	provinces:
//	  SU: I754
type tableFile struct {
	Places    map[string]string `yaml:"places"`
	Provinces map[string]string `yaml:"provinces"`
}

// LoadFile reads a YAML table extension and merges it over base.
func LoadFile(path string, base *Table) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read belfiore table: %w", err)
	}
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse belfiore table: %w", err)
	}
	if base == nil {
		base = DefaultTable()
	}
	return base.Merge(f.Places, f.Provinces)
}

// normalizePlace drops parenthesized annotations, folds accents, uppercases
// and collapses every run of non-letters to a single space.
func normalizePlace(s string) string {
	s = parenthetical.ReplaceAllString(s, " ")
	s = strings.ToUpper(foldDiacritics(s))
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(r)
			space = false
			continue
		}
		space = true
	}
	return b.String()
}
