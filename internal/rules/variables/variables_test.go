package variables

import (
	"errors"
	"testing"

	"github.com/solatis/translit/internal/types"
)

func TestParse(t *testing.T) {
	symbols := types.SymbolTable{}
	r, err := Parse("$vowel = [aeiou] ; # vowels", symbols, 3)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	v := r.(types.Variable)
	if v.Name() != "vowel" || v.Value() != "[aeiou]" || v.Index() != 3 {
		t.Errorf("got %s=%q@%d, want vowel=[aeiou]@3", v.Name(), v.Value(), v.Index())
	}
	if v.Kind() != types.KindVariable {
		t.Errorf("Kind() = %v, want variable", v.Kind())
	}

	symbols.Define(v)
	r, err = Parse("$v2 = [$vowel y]", symbols, 4)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := r.(types.Variable).Value(); got != "[[aeiou] y]" {
		t.Errorf("Value() = %q, want %q", got, "[[aeiou] y]")
	}
	if got := r.String(); got != "$v2 = [[aeiou] y] ;" {
		t.Errorf("String() = %q", got)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"no equals", "$a b ;", types.ErrMalformedRule},
		{"no dollar", "a = b ;", types.ErrMalformedRule},
		{"bad name", "$1a = b ;", types.ErrMalformedRule},
		{"undefined reference", "$a = $b ;", types.ErrUndefinedVariable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.line, types.SymbolTable{}, 0)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.line, err, tt.want)
			}
		})
	}
}
