// Package conversions parses conversion rules:
//
//	before { key } after > replacement ;   forward
//	before { key } after < replacement ;   backward
//	before { key } after <> replacement ;  both
//
// Both sides may carry `{ }` context, and the replacement side may place the
// cursor with `|`. Variables are expanded per side. Everything else in the
// pattern text (quotes, escapes, sets, anchors) is kept for the execution
// engine.
package conversions

import (
	"fmt"
	"strings"

	"github.com/solatis/translit/internal/rules/syntax"
	"github.com/solatis/translit/internal/types"
)

// Operator is the direction arrow of a conversion rule.
type Operator int

const (
	OpForward  Operator = iota // >
	OpBackward                 // <
	OpBoth                     // <>
)

func (o Operator) String() string {
	switch o {
	case OpBackward:
		return "<"
	case OpBoth:
		return "<>"
	}
	return ">"
}

// Side is one half of a conversion rule.
type Side struct {
	Before string
	Key    string
	After  string
	// Cursor is the byte offset of `|` within Key, or -1.
	Cursor int
}

func (s Side) String() string {
	key := s.Key
	if s.Cursor >= 0 {
		key = key[:s.Cursor] + "|" + key[s.Cursor:]
	}
	var b strings.Builder
	if s.Before != "" {
		b.WriteString(s.Before)
		b.WriteString(" { ")
	}
	b.WriteString(key)
	if s.After != "" {
		b.WriteString(" } ")
		b.WriteString(s.After)
	}
	return strings.TrimSpace(b.String())
}

// Rule is a parsed conversion. The left side is matched when the rule runs
// forward; Invert swaps the roles of both sides.
type Rule struct {
	left     Side
	right    Side
	op       Operator
	inverted bool
	index    int
}

var _ types.Invertible = (*Rule)(nil)

// Parse reads a conversion rule.
func Parse(text string, symbols types.SymbolTable, index int) (types.Rule, error) {
	line := syntax.Clean(text)
	at := syntax.Find(line, "<>")
	if at < 0 {
		return nil, types.Malformed(types.KindConversion, index, text, "missing '<' or '>' operator")
	}

	var op Operator
	width := 1
	switch {
	case strings.HasPrefix(line[at:], "<>"):
		op, width = OpBoth, 2
	case strings.HasPrefix(line[at:], "<<"), strings.HasPrefix(line[at:], ">>"):
		return nil, types.Malformed(types.KindConversion, index, text, "unknown operator %q", line[at:at+2])
	case line[at] == '<':
		op = OpBackward
	default:
		op = OpForward
	}

	lhs, rhs := line[:at], line[at+width:]
	if syntax.Find(rhs, "<>") >= 0 {
		return nil, types.Malformed(types.KindConversion, index, text, "more than one operator")
	}

	r := &Rule{op: op, index: index}
	var err error
	if r.left, err = parseSide(lhs, symbols); err != nil {
		return nil, &types.ParseError{Index: index, Line: text, Kind: types.KindConversion, Err: err}
	}
	if r.right, err = parseSide(rhs, symbols); err != nil {
		return nil, &types.ParseError{Index: index, Line: text, Kind: types.KindConversion, Err: err}
	}
	if op != OpBackward && r.left.Key == "" {
		return nil, types.Malformed(types.KindConversion, index, text, "empty pattern on the left side")
	}
	if op != OpForward && r.right.Key == "" {
		return nil, types.Malformed(types.KindConversion, index, text, "empty pattern on the right side")
	}
	return r, nil
}

// parseSide splits `before { key | rest } after` and expands variables.
func parseSide(s string, symbols types.SymbolTable) (Side, error) {
	side := Side{Cursor: -1}
	s = strings.TrimSpace(s)
	if i := syntax.Find(s, "{"); i >= 0 {
		side.Before = strings.TrimSpace(s[:i])
		s = s[i+1:]
	}
	if i := syntax.Find(s, "}"); i >= 0 {
		side.After = strings.TrimSpace(s[i+1:])
		s = s[:i]
	}
	if syntax.Find(s, "{}") >= 0 || syntax.Find(side.After, "{}") >= 0 {
		return Side{}, fmt.Errorf("%w: misplaced context brace", types.ErrMalformedRule)
	}
	head, tail := strings.TrimSpace(s), ""
	cursor := false
	if i := syntax.Find(head, "|"); i >= 0 {
		if syntax.Find(head[i+1:], "|") >= 0 {
			return Side{}, fmt.Errorf("%w: more than one cursor", types.ErrMalformedRule)
		}
		head, tail = strings.TrimSpace(head[:i]), strings.TrimSpace(head[i+1:])
		cursor = true
	}

	// head and tail expand separately so `$a|b` never reads as `$ab`
	var err error
	for _, part := range []*string{&side.Before, &head, &tail, &side.After} {
		if *part, err = expand(*part, symbols); err != nil {
			return Side{}, err
		}
	}
	side.Key = head + tail
	if cursor {
		side.Cursor = len(head)
	}
	return side, nil
}

func expand(s string, symbols types.SymbolTable) (string, error) {
	if s == "" {
		return s, nil
	}
	return symbols.Expand(s)
}

// Operator returns the arrow the rule was written with.
func (r *Rule) Operator() Operator { return r.op }

// Match is the side matched against the input in this rule's orientation.
func (r *Rule) Match() Side {
	if r.inverted {
		return r.right
	}
	return r.left
}

// Replacement is the side substituted for a match.
func (r *Rule) Replacement() Side {
	if r.inverted {
		return r.left
	}
	return r.right
}

// Applies reports whether the rule's arrow covers its current orientation:
// `>` rules apply forward only, `<` rules backward only, `<>` both ways.
func (r *Rule) Applies() bool {
	if r.inverted {
		return r.op != OpForward
	}
	return r.op != OpBackward
}

func (r *Rule) Kind() types.RuleKind { return types.KindConversion }
func (r *Rule) Index() int           { return r.index }
func (r *Rule) Backward() bool       { return r.inverted }
func (r *Rule) CanInvert() bool      { return true }

// Invert returns the rule with match and replacement roles swapped.
func (r *Rule) Invert() (types.Rule, error) {
	inv := *r
	inv.inverted = !r.inverted
	return &inv, nil
}

func (r *Rule) String() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s %s", r.left, r.op, r.right)) + " ;"
}
