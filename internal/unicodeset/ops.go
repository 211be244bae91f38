package unicodeset

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Set algebra on (table, negated) pairs. Complements are never
// materialized; De Morgan keeps every result expressible as either the
// members of a finite table or their complement.

func union(a, b value) value {
	switch {
	case !a.neg && !b.neg:
		return value{table: rangetable.Merge(a.table, b.table)}
	case a.neg && !b.neg:
		return value{table: minus(a.table, b.table), neg: true}
	case !a.neg && b.neg:
		return value{table: minus(b.table, a.table), neg: true}
	}
	return value{table: and(a.table, b.table), neg: true}
}

func intersect(a, b value) value {
	switch {
	case !a.neg && !b.neg:
		return value{table: and(a.table, b.table)}
	case a.neg && !b.neg:
		return value{table: minus(b.table, a.table)}
	case !a.neg && b.neg:
		return value{table: minus(a.table, b.table)}
	}
	return value{table: rangetable.Merge(a.table, b.table), neg: true}
}

func complement(v value) value {
	return value{table: v.table, neg: !v.neg}
}

// and returns the runes of a that are also in b.
func and(a, b *unicode.RangeTable) *unicode.RangeTable {
	var runes []rune
	rangetable.Visit(a, func(r rune) {
		if unicode.Is(b, r) {
			runes = append(runes, r)
		}
	})
	return rangetable.New(runes...)
}

// minus returns the runes of a that are not in b.
func minus(a, b *unicode.RangeTable) *unicode.RangeTable {
	var runes []rune
	rangetable.Visit(a, func(r rune) {
		if !unicode.Is(b, r) {
			runes = append(runes, r)
		}
	})
	return rangetable.New(runes...)
}

func single(r rune) *unicode.RangeTable {
	return rangetable.New(r)
}

// span builds a table for lo..hi without enumerating the range.
func span(lo, hi rune) *unicode.RangeTable {
	t := &unicode.RangeTable{}
	if lo <= 0xFFFF {
		top := hi
		if top > 0xFFFF {
			top = 0xFFFF
		}
		t.R16 = []unicode.Range16{{Lo: uint16(lo), Hi: uint16(top), Stride: 1}}
		if top <= unicode.MaxLatin1 {
			t.LatinOffset = 1
		}
	}
	if hi > 0xFFFF {
		from := lo
		if from < 0x10000 {
			from = 0x10000
		}
		t.R32 = []unicode.Range32{{Lo: uint32(from), Hi: uint32(hi), Stride: 1}}
	}
	return t
}

var categoryAliases = map[string]string{
	"letter":                "L",
	"uppercase_letter":      "Lu",
	"lowercase_letter":      "Ll",
	"titlecase_letter":      "Lt",
	"modifier_letter":       "Lm",
	"other_letter":          "Lo",
	"mark":                  "M",
	"nonspacing_mark":       "Mn",
	"spacing_mark":          "Mc",
	"enclosing_mark":        "Me",
	"number":                "N",
	"decimal_number":        "Nd",
	"letter_number":         "Nl",
	"other_number":          "No",
	"punctuation":           "P",
	"symbol":                "S",
	"separator":             "Z",
	"space_separator":       "Zs",
	"other":                 "C",
	"control":               "Cc",
	"format":                "Cf",
	"private_use":           "Co",
	"connector_punctuation": "Pc",
	"dash_punctuation":      "Pd",
	"open_punctuation":      "Ps",
	"close_punctuation":     "Pe",
	"math_symbol":           "Sm",
	"currency_symbol":       "Sc",
}

// lookupProperty resolves `Name`, `script=Name` or `gc=Name`.
func lookupProperty(name string) (*unicode.RangeTable, error) {
	name = strings.TrimSpace(name)
	if k, v, ok := strings.Cut(name, "="); ok {
		key := strings.ToLower(strings.TrimSpace(k))
		v = strings.TrimSpace(v)
		switch key {
		case "script", "sc":
			if t := lookupFold(unicode.Scripts, v); t != nil {
				return t, nil
			}
		case "general_category", "gc":
			if t := lookupCategory(v); t != nil {
				return t, nil
			}
		}
		return nil, unknownProperty(name)
	}
	switch strings.ToLower(name) {
	case "any":
		return span(0, unicode.MaxRune), nil
	case "assigned":
		if t := rangetable.Assigned(unicode.Version); t != nil {
			return t, nil
		}
		return rangetable.Merge(unicode.L, unicode.M, unicode.N, unicode.P, unicode.S, unicode.Z, unicode.C), nil
	}
	if t := lookupCategory(name); t != nil {
		return t, nil
	}
	if t := lookupFold(unicode.Scripts, name); t != nil {
		return t, nil
	}
	if t := lookupFold(unicode.Properties, name); t != nil {
		return t, nil
	}
	return nil, unknownProperty(name)
}

func lookupCategory(name string) *unicode.RangeTable {
	if t, ok := unicode.Categories[name]; ok {
		return t
	}
	if alias, ok := categoryAliases[strings.ToLower(name)]; ok {
		return unicode.Categories[alias]
	}
	return nil
}

func lookupFold(tables map[string]*unicode.RangeTable, name string) *unicode.RangeTable {
	if t, ok := tables[name]; ok {
		return t
	}
	for k, t := range tables {
		if strings.EqualFold(k, name) {
			return t
		}
	}
	return nil
}

func unknownProperty(name string) error {
	return &propertyError{name: name}
}

type propertyError struct {
	name string
}

func (e *propertyError) Error() string {
	return ErrUnknownProperty.Error() + ": " + e.name
}

func (e *propertyError) Unwrap() error {
	return ErrUnknownProperty
}
