package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for rule compilation.
var (
	// ErrNotInvertible indicates a backward rule set was requested for a
	// forward-only rule group.
	ErrNotInvertible = errors.New("rule group is not invertible")

	// ErrRuleNotInvertible indicates a content rule cannot be reversed.
	ErrRuleNotInvertible = errors.New("rule cannot be inverted")

	// ErrUnregisteredKind indicates no parser is registered for a rule kind.
	// This is a configuration defect, not an input error.
	ErrUnregisteredKind = errors.New("no parser registered for rule kind")

	// ErrUndefinedVariable indicates a reference to a variable that has not
	// been defined on an earlier line.
	ErrUndefinedVariable = errors.New("undefined variable")

	// ErrMalformedRule indicates rule text the kind's parser cannot read.
	ErrMalformedRule = errors.New("malformed rule")

	// ErrResourceNotFound indicates the data store has no such resource.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrEmptyResource indicates a resource without transform definitions.
	ErrEmptyResource = errors.New("resource has no transforms")
)

// NotInvertibleError identifies the rule group a backward rule set was
// requested for.
type NotInvertibleError struct {
	Group GroupID
}

func (e *NotInvertibleError) Error() string {
	return fmt.Sprintf("cannot invert rule group %s: direction is forward", e.Group)
}

// Unwrap lets errors.Is match ErrNotInvertible.
func (e *NotInvertibleError) Unwrap() error {
	return ErrNotInvertible
}

// ParseError reports a line a per-kind parser rejected.
type ParseError struct {
	Index int
	Line  string
	Kind  RuleKind
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d (%s rule %q): %v", e.Index, e.Kind, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Malformed builds a ParseError wrapping ErrMalformedRule.
func Malformed(kind RuleKind, index int, line, format string, args ...any) error {
	return &ParseError{
		Index: index,
		Line:  line,
		Kind:  kind,
		Err:   fmt.Errorf("%w: %s", ErrMalformedRule, fmt.Sprintf(format, args...)),
	}
}
