// internal/rules/ruleset.go
package rules

import (
	"fmt"

	"github.com/solatis/translit/internal/rules/filters"
	"github.com/solatis/translit/internal/types"
)

/*
 * Rule set assembly.
 *
 * A RuleSet is what the execution engine runs: an optional filter applied
 * before the content, the content rules in source order, and an optional
 * filter applied after. Only two filter positions are meaningful:
 *   - the first rule, if it is a forward filter, becomes the pre-filter
 *   - the last rule, if it is a backward filter, becomes the post-filter
 * A missing edge filter is the null filter.
 *
 * Filters anywhere else carry no meaning for the engine. They are left out of
 * the content, kept in Ignored for diagnostics and reported at info level.
 *
 * Inversion swaps the edge filters and replaces every content rule by its
 * inverse, keeping the order. The engine applies the inverted rules from the
 * same starting point, so the order must not be reversed here.
 */

// RuleSet is an assembled rule program.
type RuleSet struct {
	PreFilter  types.Filter
	PostFilter types.Filter
	Content    []types.Rule
	// Ignored holds filters found away from the edges.
	Ignored []types.Rule
}

// Assemble builds the forward rule set from parsed rules.
func Assemble(rules []types.Rule) *RuleSet {
	set := &RuleSet{
		PreFilter:  filters.Null(),
		PostFilter: filters.Null(),
		Content:    make([]types.Rule, 0, len(rules)),
	}

	first, last := -1, -1
	if len(rules) > 0 {
		if f, ok := rules[0].(types.Filter); ok && !f.Backward() {
			set.PreFilter = f
			first = 0
		}
		if f, ok := rules[len(rules)-1].(types.Filter); ok && f.Backward() {
			set.PostFilter = f
			last = len(rules) - 1
		}
	}

	for i, r := range rules {
		switch r.Kind() {
		case types.KindTransform, types.KindConversion:
			set.Content = append(set.Content, r)
		case types.KindFilter:
			if i == first || i == last {
				continue
			}
			set.Ignored = append(set.Ignored, r)
			T().Infof("ignoring filter %q at line %d: only the first or last rule may be a filter", r.String(), r.Index())
		}
	}

	T().Debugf("assembled rule set: %d content rules, %d ignored filters", len(set.Content), len(set.Ignored))
	return set
}

// Invert derives the backward rule set from a forward one.
func Invert(forward *RuleSet) (*RuleSet, error) {
	set := &RuleSet{
		PreFilter:  forward.PostFilter,
		PostFilter: forward.PreFilter,
		Content:    make([]types.Rule, 0, len(forward.Content)),
		Ignored:    forward.Ignored,
	}
	for _, r := range forward.Content {
		inv, ok := r.(types.Invertible)
		if !ok || !inv.CanInvert() {
			return nil, fmt.Errorf("%w: %s rule %q at line %d", types.ErrRuleNotInvertible, r.Kind(), r.String(), r.Index())
		}
		back, err := inv.Invert()
		if err != nil {
			return nil, fmt.Errorf("inverting line %d: %w", r.Index(), err)
		}
		set.Content = append(set.Content, back)
	}
	return set, nil
}
