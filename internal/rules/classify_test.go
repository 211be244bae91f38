// internal/rules/classify_test.go
package rules

import (
	"testing"

	"github.com/solatis/translit/internal/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want types.RuleKind
	}{
		{"forward filter", ":: [a-z] ;", types.KindFilter},
		{"filter without space", "::[a-z] ;", types.KindFilter},
		{"backward filter", ":: ( [a-z] ) ;", types.KindFilter},
		{"backward filter tight", "::([:Latin:]);", types.KindFilter},
		{"padded filter", "   :: [a-z] ;  ", types.KindFilter},
		{"transform", ":: Latin-Greek ;", types.KindTransform},
		{"transform with inverse", ":: Any-Upper ( Any-Lower ) ;", types.KindTransform},
		{"backward-only transform", ":: ( Any-Lower ) ;", types.KindTransform},
		{"transform mentioning arrows", ":: NFD ; # a > b", types.KindTransform},
		{"forward conversion", "a > b ;", types.KindConversion},
		{"backward conversion", "a < b ;", types.KindConversion},
		{"both ways", "a <> b ;", types.KindConversion},
		{"operator at start", "> b ;", types.KindConversion},
		{"context", "x { a } y > b ;", types.KindConversion},
		{"variable", "$vowel = [aeiou] ;", types.KindVariable},
		{"escaped arrow", `$gt = \> ;`, types.KindVariable},
		{"escaped left arrow", `$lt = \< ;`, types.KindVariable},
		{"escaped backslash before arrow", `$bs = \\> ;`, types.KindVariable},
		{"double colon not leading", "a :: b > c ;", types.KindConversion},
		{"empty", "", types.KindVariable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.line); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}
