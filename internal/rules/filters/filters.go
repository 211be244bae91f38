// Package filters parses filter rules, `:: [set] ;` for the forward
// direction and `:: ( [set] ) ;` for the backward direction, and provides
// the null filter used when a rule group has no edge filter.
//
// The filtered-transform form `:: [set] Source-Target ;` is not supported;
// such lines are rejected as malformed filters.
package filters

import (
	"fmt"
	"strings"

	"github.com/solatis/translit/internal/rules/syntax"
	"github.com/solatis/translit/internal/rules/transforms"
	"github.com/solatis/translit/internal/types"
	"github.com/solatis/translit/internal/unicodeset"
)

// Rule restricts a transform to the characters of a UnicodeSet.
type Rule struct {
	set      *unicodeset.Set
	backward bool
	index    int
}

var _ types.Filter = (*Rule)(nil)

// Parse reads a filter rule. Variables inside the set are expanded first.
func Parse(text string, symbols types.SymbolTable, index int) (types.Rule, error) {
	line := syntax.Clean(text)
	if !strings.HasPrefix(line, "::") {
		return nil, types.Malformed(types.KindFilter, index, text, "missing '::'")
	}
	body := strings.TrimSpace(line[2:])
	backward := false
	if strings.HasPrefix(body, "(") {
		if !strings.HasSuffix(body, ")") {
			return nil, types.Malformed(types.KindFilter, index, text, "unbalanced parenthesis")
		}
		backward = true
		body = strings.TrimSpace(body[1 : len(body)-1])
	}
	if id := trailingID(body); id != "" {
		return nil, types.Malformed(types.KindFilter, index, text, "filtered transform %q is not supported", id)
	}
	expanded, err := symbols.Expand(body)
	if err != nil {
		return nil, &types.ParseError{Index: index, Line: text, Kind: types.KindFilter, Err: err}
	}
	set, err := unicodeset.Parse(expanded)
	if err != nil {
		return nil, &types.ParseError{Index: index, Line: text, Kind: types.KindFilter, Err: err}
	}
	return &Rule{set: set, backward: backward, index: index}, nil
}

// trailingID returns the transform ID following the set in `[set] ID`.
func trailingID(body string) string {
	if strings.HasSuffix(body, "]") {
		return ""
	}
	fields := strings.Fields(body)
	if len(fields) < 2 {
		return ""
	}
	if id := fields[len(fields)-1]; transforms.ValidID(id) {
		return id
	}
	return ""
}

// New builds a filter rule from an already parsed set.
func New(set *unicodeset.Set, backward bool, index int) *Rule {
	return &Rule{set: set, backward: backward, index: index}
}

func (r *Rule) Kind() types.RuleKind { return types.KindFilter }
func (r *Rule) Index() int           { return r.index }
func (r *Rule) Backward() bool       { return r.backward }
func (r *Rule) Contains(c rune) bool { return r.set.Contains(c) }
func (r *Rule) Set() *unicodeset.Set { return r.set }

func (r *Rule) String() string {
	if r.backward {
		return fmt.Sprintf(":: ( %s ) ;", r.set)
	}
	return fmt.Sprintf(":: %s ;", r.set)
}

// nullFilter accepts every character.
type nullFilter struct{}

var null types.Filter = nullFilter{}

// Null returns the identity filter: it matches everything and changes
// nothing.
func Null() types.Filter {
	return null
}

// IsNull reports whether f is the identity filter.
func IsNull(f types.Filter) bool {
	_, ok := f.(nullFilter)
	return ok
}

func (nullFilter) Kind() types.RuleKind { return types.KindFilter }
func (nullFilter) Index() int           { return -1 }
func (nullFilter) Backward() bool       { return false }
func (nullFilter) Contains(rune) bool   { return true }
func (nullFilter) String() string       { return ":: [:Any:] ;" }
