// internal/rules/classify.go
package rules

import (
	"regexp"
	"strings"

	"github.com/solatis/translit/internal/types"
)

/*
 * Line classification.
 *
 * Each raw line is assigned exactly one kind by the first matching pattern:
 *   1. Filter:     `::` followed by an optional `(` and a `[` set
 *   2. Transform:  any other `::` directive
 *   3. Conversion: an unescaped `<` or `>` anywhere in the line
 *   4. Variable:   everything else
 *
 * Classification is purely lexical. Whether the line is well formed is the
 * kind's parser's business.
 */

var (
	filterPattern     = regexp.MustCompile(`^::\s*\(?\s*\[`)
	transformPattern  = regexp.MustCompile(`^::`)
	conversionPattern = regexp.MustCompile(`(?:^|[^\\])[<>]{1,2}`)
)

// Classify returns the kind of a raw rule line.
func Classify(line string) types.RuleKind {
	s := strings.TrimSpace(line)
	switch {
	case filterPattern.MatchString(s):
		return types.KindFilter
	case transformPattern.MatchString(s):
		return types.KindTransform
	case conversionPattern.MatchString(s):
		return types.KindConversion
	}
	return types.KindVariable
}
