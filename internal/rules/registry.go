// internal/rules/registry.go
package rules

import (
	"fmt"

	"github.com/solatis/translit/internal/rules/conversions"
	"github.com/solatis/translit/internal/rules/filters"
	"github.com/solatis/translit/internal/rules/transforms"
	"github.com/solatis/translit/internal/rules/variables"
	"github.com/solatis/translit/internal/types"
)

// Parsers is the closed registry of per-kind rule parsers. A nil field is a
// configuration defect and fails every line of that kind with
// types.ErrUnregisteredKind.
type Parsers struct {
	Variable   types.ParseFunc
	Filter     types.ParseFunc
	Transform  types.ParseFunc
	Conversion types.ParseFunc
}

// DefaultParsers returns the registry wired to the built-in parsers.
func DefaultParsers() Parsers {
	return Parsers{
		Variable:   variables.Parse,
		Filter:     filters.Parse,
		Transform:  transforms.Parse,
		Conversion: conversions.Parse,
	}
}

func (p Parsers) parserFor(kind types.RuleKind) (types.ParseFunc, error) {
	var fn types.ParseFunc
	switch kind {
	case types.KindVariable:
		fn = p.Variable
	case types.KindFilter:
		fn = p.Filter
	case types.KindTransform:
		fn = p.Transform
	case types.KindConversion:
		fn = p.Conversion
	}
	if fn == nil {
		return nil, fmt.Errorf("%w: %s", types.ErrUnregisteredKind, kind)
	}
	return fn, nil
}
