// internal/rules/parse.go
package rules

import (
	"fmt"

	"github.com/solatis/translit/internal/rules/syntax"
	"github.com/solatis/translit/internal/types"
)

/*
 * The parse loop.
 *
 * Lines are handled strictly in order. Each line is classified and handed to
 * its kind's parser together with the symbol table as it stands before that
 * line, so a variable is only visible to the lines after its definition.
 * Whatever the parser returns decides where it goes: variable rules go into
 * the table (a redefinition replaces the old value), every other rule is
 * appended to the output. A parser returning no rule is an error.
 *
 * Blank lines and `#` comment lines are skipped but still consume an index,
 * so rule indices always point back into the source list.
 *
 * Parser errors are returned unchanged; the first one aborts the loop.
 */

// ParseAll parses lines with the default parsers.
func ParseAll(lines []string) ([]types.Rule, types.SymbolTable, error) {
	return DefaultParsers().ParseAll(lines)
}

// ParseAll parses lines into rules, collecting variables into a symbol table.
func (p Parsers) ParseAll(lines []string) ([]types.Rule, types.SymbolTable, error) {
	symbols := types.SymbolTable{}
	out := make([]types.Rule, 0, len(lines))
	for i, line := range lines {
		if syntax.IsComment(line) {
			continue
		}
		kind := Classify(line)
		parse, err := p.parserFor(kind)
		if err != nil {
			return nil, nil, err
		}
		rule, err := parse(line, symbols, i)
		if err != nil {
			return nil, nil, err
		}
		if rule == nil {
			return nil, nil, &types.ParseError{Index: i, Line: line, Kind: kind, Err: fmt.Errorf("%w: %s parser returned no rule", types.ErrMalformedRule, kind)}
		}
		if v, ok := rule.(types.Variable); ok {
			symbols.Define(v)
			continue
		}
		out = append(out, rule)
	}
	return out, symbols, nil
}
