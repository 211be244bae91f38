// internal/types/rules.go
package types

import (
	"context"
	"fmt"
	"strings"
)

/*
 * Rule capability interfaces and the build-time symbol table.
 *
 * Every parsed line is a Rule. Kind() decides which capability a rule
 * carries; the compiler type-asserts to the narrower interfaces:
 *   - Variable: named value, lives only in a SymbolTable
 *   - Filter: character predicate, meaningful only at the edges of a group
 *   - Invertible: transform and conversion rules that can be reversed
 *
 * SymbolTable is filled in source order while a group is parsed and is
 * discarded afterwards. A name must be defined before any line uses it.
 */

// Rule is one parsed line of a transform.
type Rule interface {
	Kind() RuleKind
	// Index is the zero-based position of the line in its source list.
	Index() int
	// Backward reports whether the rule is oriented for the reverse direction.
	Backward() bool
	String() string
}

// Variable is a `$name = value ;` definition.
type Variable interface {
	Rule
	Name() string
	Value() string
}

// Filter restricts the characters a transform may touch.
type Filter interface {
	Rule
	Contains(r rune) bool
}

// Invertible is implemented by content rules that take part in a backward
// rule set.
type Invertible interface {
	Rule
	CanInvert() bool
	Invert() (Rule, error)
}

// ParseFunc turns one line of the given kind into a Rule.
// symbols holds every variable defined on earlier lines.
type ParseFunc func(text string, symbols SymbolTable, index int) (Rule, error)

// ResourceStore is the locale-data collaborator transforms are loaded from.
type ResourceStore interface {
	ResourceExists(ctx context.Context, namespace, category, name string) (bool, error)
	GetResource(ctx context.Context, namespace, category, name string) (*Resource, error)
}

// SymbolTable maps variable names to their defining rule.
type SymbolTable map[string]Variable

// Define stores v under its name, replacing an earlier definition.
func (st SymbolTable) Define(v Variable) {
	st[v.Name()] = v
}

// Lookup returns the value bound to name.
func (st SymbolTable) Lookup(name string) (string, bool) {
	v, ok := st[name]
	if !ok {
		return "", false
	}
	return v.Value(), true
}

// Expand replaces every `$name` reference in text with the variable's value.
// Quoted text and escaped characters are left untouched, as is a `$` that
// does not start an identifier (the end-of-text anchor).
func (st SymbolTable) Expand(text string) (string, error) {
	if !strings.Contains(text, "$") {
		return text, nil
	}
	var b strings.Builder
	b.Grow(len(text))
	inQuote := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '\\' && i+1 < len(text):
			b.WriteByte(c)
			b.WriteByte(text[i+1])
			i++
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '$' && !inQuote && i+1 < len(text) && isIdentStart(text[i+1]):
			j := i + 1
			for j < len(text) && isIdentPart(text[j]) {
				j++
			}
			name := text[i+1 : j]
			value, ok := st.Lookup(name)
			if !ok {
				return "", fmt.Errorf("%w: $%s", ErrUndefinedVariable, name)
			}
			b.WriteString(value)
			i = j - 1
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// IsIdentifier reports whether s is a valid variable name.
func IsIdentifier(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentPart(s[i]) {
			return false
		}
	}
	return true
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
