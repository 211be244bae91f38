// internal/rules/group.go
package rules

import (
	"context"
	"fmt"
	"sync"

	"github.com/solatis/translit/internal/types"
)

/*
 * Rule groups.
 *
 * A RuleGroup is the compiled form of one transform: its non-variable rules
 * in source order plus a direction. Variables are resolved while parsing and
 * never reach the group.
 *
 * The forward and backward rule sets are computed on first request and
 * memoized, errors included, so a group never assembles twice. A forward-only
 * group refuses to produce a backward set.
 *
 * Groups come from two places:
 *   - Build compiles an explicit line list; the group gets a fresh UUIDv7 id
 *     and is not cached
 *   - Loader.Load compiles a named resource from the store and caches it by
 *     name; errors are returned and never cached
 */

// RuleGroup is a compiled transform.
type RuleGroup struct {
	id        types.GroupID
	rules     []types.Rule
	direction types.Direction

	forwardOnce sync.Once
	forward     *RuleSet

	backwardOnce sync.Once
	backward     *RuleSet
	backwardErr  error
}

// Build compiles lines with the default parsers.
func Build(lines []string, direction types.Direction) (*RuleGroup, error) {
	return DefaultParsers().Build(lines, direction)
}

// Build compiles lines into a rule group with a generated id.
func (p Parsers) Build(lines []string, direction types.Direction) (*RuleGroup, error) {
	return p.build(types.NewGroupID(), lines, direction)
}

func (p Parsers) build(id types.GroupID, lines []string, direction types.Direction) (*RuleGroup, error) {
	rules, _, err := p.ParseAll(lines)
	if err != nil {
		return nil, err
	}
	return &RuleGroup{id: id, rules: rules, direction: direction}, nil
}

func (g *RuleGroup) ID() types.GroupID          { return g.id }
func (g *RuleGroup) Direction() types.Direction { return g.direction }
func (g *RuleGroup) Bidirectional() bool        { return g.direction == types.Bidirectional }
func (g *RuleGroup) CanInvert() bool            { return g.Bidirectional() }

// Rules returns a copy of the group's rules in source order.
func (g *RuleGroup) Rules() []types.Rule {
	out := make([]types.Rule, len(g.rules))
	copy(out, g.rules)
	return out
}

// ForwardRuleSet returns the memoized forward rule set. The error is always
// nil.
func (g *RuleGroup) ForwardRuleSet() (*RuleSet, error) {
	g.forwardOnce.Do(func() {
		g.forward = Assemble(g.rules)
	})
	return g.forward, nil
}

// BackwardRuleSet returns the memoized inverse of the forward rule set. It
// fails with *types.NotInvertibleError for a forward-only group.
func (g *RuleGroup) BackwardRuleSet() (*RuleSet, error) {
	if !g.Bidirectional() {
		return nil, &types.NotInvertibleError{Group: g.id}
	}
	g.backwardOnce.Do(func() {
		forward, _ := g.ForwardRuleSet()
		g.backward, g.backwardErr = Invert(forward)
		if g.backwardErr != nil {
			g.backwardErr = fmt.Errorf("rule group %s: %w", g.id, g.backwardErr)
		}
	})
	return g.backward, g.backwardErr
}

// Loader compiles named transforms from a resource store through a cache.
type Loader struct {
	store   types.ResourceStore
	cache   *Cache
	parsers Parsers
}

// NewLoader creates a loader. A nil cache gets a fresh one.
func NewLoader(store types.ResourceStore, cache *Cache, parsers Parsers) *Loader {
	if cache == nil {
		cache = NewCache()
	}
	return &Loader{store: store, cache: cache, parsers: parsers}
}

// Cache returns the loader's cache.
func (l *Loader) Cache() *Cache {
	return l.cache
}

// Exists reports whether the store has a transform resource called name.
func (l *Loader) Exists(ctx context.Context, name string) (bool, error) {
	return l.store.ResourceExists(ctx, types.NamespaceShared, types.CategoryTransforms, name)
}

// Load returns the rule group for name, building and caching it on a miss.
// Store and parser errors are returned unchanged.
func (l *Loader) Load(ctx context.Context, name string) (*RuleGroup, error) {
	if g, ok := l.cache.Get(name); ok {
		T().Debugf("rule group cache hit: %s", name)
		return g, nil
	}
	T().Debugf("rule group cache miss: %s", name)

	res, err := l.store.GetResource(ctx, types.NamespaceShared, types.CategoryTransforms, name)
	if err != nil {
		return nil, err
	}
	if res == nil || len(res.Transforms) == 0 {
		return nil, fmt.Errorf("loading transform %q: %w", name, types.ErrEmptyResource)
	}
	src := res.Transforms[0]

	g, err := l.parsers.build(types.GroupID(name), src.Rules, types.ParseDirection(src.Direction))
	if err != nil {
		return nil, err
	}
	l.cache.Put(name, g)
	return g, nil
}

// Preload loads every named transform, stopping at the first error.
func (l *Loader) Preload(ctx context.Context, names ...string) error {
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := l.Load(ctx, name); err != nil {
			return err
		}
	}
	T().Infof("preloaded %d transforms", len(names))
	return nil
}
