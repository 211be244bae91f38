// Package variables parses `$name = value ;` definitions.
//
// A definition's value is expanded against the variables defined on earlier
// lines, so later references see the fully substituted text.
package variables

import (
	"fmt"
	"strings"

	"github.com/solatis/translit/internal/rules/syntax"
	"github.com/solatis/translit/internal/types"
)

// Rule is a variable definition. It never appears in a rule group's rule
// list; the parse loop moves it into the symbol table.
type Rule struct {
	name  string
	value string
	index int
}

var _ types.Variable = (*Rule)(nil)

// Parse reads a variable definition.
func Parse(text string, symbols types.SymbolTable, index int) (types.Rule, error) {
	line := syntax.Clean(text)
	eq := syntax.Find(line, "=")
	if eq < 0 {
		return nil, types.Malformed(types.KindVariable, index, text, "missing '='")
	}
	lhs := strings.TrimSpace(line[:eq])
	if !strings.HasPrefix(lhs, "$") || !types.IsIdentifier(lhs[1:]) {
		return nil, types.Malformed(types.KindVariable, index, text, "%q is not a variable name", lhs)
	}
	value, err := symbols.Expand(strings.TrimSpace(line[eq+1:]))
	if err != nil {
		return nil, &types.ParseError{Index: index, Line: text, Kind: types.KindVariable, Err: err}
	}
	return &Rule{name: lhs[1:], value: value, index: index}, nil
}

func (r *Rule) Kind() types.RuleKind { return types.KindVariable }
func (r *Rule) Index() int           { return r.index }
func (r *Rule) Backward() bool       { return false }
func (r *Rule) Name() string         { return r.name }
func (r *Rule) Value() string        { return r.value }

func (r *Rule) String() string {
	return fmt.Sprintf("$%s = %s ;", r.name, r.value)
}
