package filters

import (
	"errors"
	"strings"
	"testing"

	"github.com/solatis/translit/internal/rules/variables"
	"github.com/solatis/translit/internal/types"
	"github.com/solatis/translit/internal/unicodeset"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		backward bool
		in, out  rune
	}{
		{"forward", ":: [a-z] ;", false, 'q', 'Q'},
		{"backward", ":: ( [a-z] ) ;", true, 'q', 'Q'},
		{"tight", "::([:Greek:]);", true, 'α', 'a'},
		{"property", ":: [:Latin:] ;", false, 'é', 'α'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse(tt.line, types.SymbolTable{}, 1)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.line, err)
			}
			f := r.(types.Filter)
			if f.Backward() != tt.backward {
				t.Errorf("Backward() = %v, want %v", f.Backward(), tt.backward)
			}
			if !f.Contains(tt.in) || f.Contains(tt.out) {
				t.Errorf("%s: Contains(%q)=%v Contains(%q)=%v", tt.line, tt.in, f.Contains(tt.in), tt.out, f.Contains(tt.out))
			}
			if f.Kind() != types.KindFilter || f.Index() != 1 {
				t.Errorf("Kind/Index = %v/%d", f.Kind(), f.Index())
			}
		})
	}
}

func TestParse_Variable(t *testing.T) {
	symbols := types.SymbolTable{}
	v, err := variables.Parse("$letters = [a-c] ;", symbols, 0)
	if err != nil {
		t.Fatalf("variables.Parse() error = %v", err)
	}
	symbols.Define(v.(types.Variable))

	r, err := Parse(":: [$letters x] ;", symbols, 1)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	f := r.(types.Filter)
	if !f.Contains('b') || !f.Contains('x') || f.Contains('d') {
		t.Errorf("filter %v has wrong members", f)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"unbalanced", ":: ( [a-z] ;", types.ErrMalformedRule},
		{"undefined", ":: [$nope] ;", types.ErrUndefinedVariable},
		{"bad set", ":: [z-a] ;", unicodeset.ErrSyntax},
		{"unknown property", ":: [:Klingon:] ;", unicodeset.ErrUnknownProperty},
		{"filtered transform", ":: [:Latin:] Latin-ASCII ;", types.ErrMalformedRule},
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

func TestParse_FilteredTransformMessage(t *testing.T) {
	_, err := Parse(":: [:Latin:] Latin-ASCII ;", types.SymbolTable{}, 3)
	if err == nil || !strings.Contains(err.Error(), `filtered transform "Latin-ASCII"`) {
		t.Errorf("Parse() error = %v, want filtered transform rejection", err)
	}
}

func TestNull(t *testing.T) {
	f := Null()
	if !IsNull(f) {
		t.Fatal("IsNull(Null()) = false")
	}
	for _, r := range []rune{0, 'a', 'Ω', 0x10FFFF} {
		if !f.Contains(r) {
			t.Errorf("Null().Contains(%#U) = false", r)
		}
	}
	if f.Backward() || f.Kind() != types.KindFilter {
		t.Error("null filter must be a forward filter")
	}
	if IsNull(New(unicodeset.MustParse("[a]"), false, 0)) {
		t.Error("IsNull(real filter) = true")
	}
}
