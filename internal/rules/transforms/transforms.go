// Package transforms parses transform directives: references to other
// named transforms, optionally with an explicit inverse.
//
//	:: Latin-Greek ;             forward Latin-Greek, inverse Greek-Latin
//	:: Any-Upper ( Any-Lower ) ; explicit inverse
//	:: ( Any-Lower ) ;           no-op forward, Any-Lower backward
//	:: NFD () ;                  NFD forward, no-op backward
package transforms

import (
	"fmt"
	"strings"

	"github.com/solatis/translit/internal/rules/syntax"
	"github.com/solatis/translit/internal/types"
)

// knownInverses pairs transform IDs whose inverse cannot be derived from a
// Source-Target name.
var knownInverses = map[string]string{
	"Null": "Null",
	"NFD":  "NFC",
	"NFC":  "NFD",
	"NFKD": "NFKC",
	"NFKC": "NFKD",
}

// Rule references another transform. An empty ID is the no-op transform.
type Rule struct {
	forward    string
	inverse    string
	invertible bool
	explicit   bool
	backward   bool
	index      int
}

var _ types.Invertible = (*Rule)(nil)

// Parse reads a transform directive.
func Parse(text string, _ types.SymbolTable, index int) (types.Rule, error) {
	line := syntax.Clean(text)
	if !strings.HasPrefix(line, "::") {
		return nil, types.Malformed(types.KindTransform, index, text, "missing '::'")
	}
	body := strings.TrimSpace(line[2:])
	r := &Rule{index: index}

	open := strings.IndexByte(body, '(')
	if open < 0 {
		r.forward = body
		r.inverse, r.invertible = Inverse(body)
	} else {
		if !strings.HasSuffix(body, ")") {
			return nil, types.Malformed(types.KindTransform, index, text, "unbalanced parenthesis")
		}
		r.forward = strings.TrimSpace(body[:open])
		r.inverse = strings.TrimSpace(body[open+1 : len(body)-1])
		r.invertible = true
		r.explicit = true
	}
	if r.forward == "" && open < 0 {
		return nil, types.Malformed(types.KindTransform, index, text, "missing transform ID")
	}
	for _, id := range []string{r.forward, r.inverse} {
		if id != "" && !ValidID(id) {
			return nil, types.Malformed(types.KindTransform, index, text, "invalid transform ID %q", id)
		}
	}
	return r, nil
}

// Inverse derives the inverse of a transform ID: Source-Target/Variant
// becomes Target-Source/Variant. IDs without a target are looked up in a
// small table of known pairs.
func Inverse(id string) (string, bool) {
	if inv, ok := knownInverses[id]; ok {
		return inv, true
	}
	name, variant, hasVariant := strings.Cut(id, "/")
	source, target, ok := strings.Cut(name, "-")
	if !ok || source == "" || target == "" {
		return "", false
	}
	inv := target + "-" + source
	if hasVariant {
		inv += "/" + variant
	}
	return inv, true
}

// ValidID reports whether id looks like Source[-Target][/Variant].
func ValidID(id string) bool {
	name, variant, hasVariant := strings.Cut(id, "/")
	if hasVariant && !isWord(variant) {
		return false
	}
	source, target, hasTarget := strings.Cut(name, "-")
	if hasTarget && !isWord(target) {
		return false
	}
	return isWord(source)
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		default:
			return false
		}
	}
	return true
}

// ID is the transform applied in this rule's direction; empty means no-op.
func (r *Rule) ID() string { return r.forward }

// InverseID is the transform applied once the rule is inverted.
func (r *Rule) InverseID() string { return r.inverse }

func (r *Rule) Kind() types.RuleKind { return types.KindTransform }
func (r *Rule) Index() int           { return r.index }
func (r *Rule) Backward() bool       { return r.backward }
func (r *Rule) CanInvert() bool      { return r.invertible }

// Invert swaps the forward and inverse transform IDs.
func (r *Rule) Invert() (types.Rule, error) {
	if !r.invertible {
		return nil, fmt.Errorf("%w: transform %q at line %d has no known inverse", types.ErrRuleNotInvertible, r.forward, r.index)
	}
	return &Rule{
		forward:    r.inverse,
		inverse:    r.forward,
		invertible: true,
		explicit:   r.explicit,
		backward:   !r.backward,
		index:      r.index,
	}, nil
}

// String renders the directive as written; an inverse derived from the ID
// is not printed.
func (r *Rule) String() string {
	switch {
	case !r.explicit:
		return fmt.Sprintf(":: %s ;", r.forward)
	case r.forward == "":
		return fmt.Sprintf(":: ( %s ) ;", r.inverse)
	case r.inverse == "":
		return fmt.Sprintf(":: %s () ;", r.forward)
	}
	return fmt.Sprintf(":: %s ( %s ) ;", r.forward, r.inverse)
}
