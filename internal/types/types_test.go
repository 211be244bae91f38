package types

import (
	"errors"
	"testing"
)

type variable struct{ name, value string }

func (v variable) Kind() RuleKind { return KindVariable }
func (v variable) Index() int     { return 0 }
func (v variable) Backward() bool { return false }
func (v variable) String() string { return "$" + v.name + " = " + v.value + " ;" }
func (v variable) Name() string   { return v.name }
func (v variable) Value() string  { return v.value }

func TestSymbolTable_Expand(t *testing.T) {
	st := SymbolTable{}
	st.Define(variable{"vowel", "[aeiou]"})
	st.Define(variable{"x", "old"})
	st.Define(variable{"x", "new"})

	tests := []struct {
		in, want string
	}{
		{"$vowel > x", "[aeiou] > x"},
		{"$x$x", "newnew"},
		{"a $ b", "a $ b"},
		{"end$", "end$"},
		{`\$vowel`, `\$vowel`},
		{"'$vowel' $vowel", "'$vowel' [aeiou]"},
		{"no refs", "no refs"},
	}

	for _, tt := range tests {
		got, err := st.Expand(tt.in)
		if err != nil {
			t.Errorf("Expand(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Expand(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := st.Expand("$vowels"); !errors.Is(err, ErrUndefinedVariable) {
		t.Errorf("Expand($vowels) error = %v, want ErrUndefinedVariable", err)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"both", Bidirectional},
		{" both ", Bidirectional},
		{"forward", Forward},
		{"", Forward},
		{"BOTH", Forward},
	}
	for _, tt := range tests {
		if got := ParseDirection(tt.in); got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestErrors(t *testing.T) {
	err := error(&NotInvertibleError{Group: "Latin-ASCII"})
	if !errors.Is(err, ErrNotInvertible) {
		t.Errorf("NotInvertibleError does not match ErrNotInvertible")
	}

	err = Malformed(KindConversion, 4, "a >> b ;", "unknown operator %q", ">>")
	if !errors.Is(err, ErrMalformedRule) {
		t.Errorf("Malformed() does not match ErrMalformedRule")
	}
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Index != 4 || perr.Kind != KindConversion {
		t.Errorf("Malformed() = %#v", err)
	}
}

func TestTransformID(t *testing.T) {
	id := NewTransformID()
	if _, err := ParseTransformID(string(id)); err != nil {
		t.Fatalf("ParseTransformID(%q) error = %v", id, err)
	}
	if TransformIDTime(id).IsZero() {
		t.Error("TransformIDTime() is zero for a fresh ID")
	}
	if !TransformIDTime("not-a-uuid").IsZero() {
		t.Error("TransformIDTime() of garbage should be zero")
	}
	if NewGroupID() == NewGroupID() {
		t.Error("NewGroupID() repeated itself")
	}
}
