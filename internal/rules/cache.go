// internal/rules/cache.go
package rules

import (
	"sync"
)

// Cache maps transform names to built rule groups. It is safe for
// concurrent use. Concurrent misses for the same name may both build; the
// last Put wins.
type Cache struct {
	mu     sync.RWMutex
	groups map[string]*RuleGroup
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{groups: make(map[string]*RuleGroup)}
}

// Get returns the group cached under name.
func (c *Cache) Get(name string) (*RuleGroup, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	g, ok := c.groups[name]
	return g, ok
}

// Put installs g under name, replacing any earlier entry.
func (c *Cache) Put(name string, g *RuleGroup) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.groups[name] = g
}

// Len returns the number of cached groups.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.groups)
}

// Names returns the cached transform names in no particular order.
func (c *Cache) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.groups))
	for name := range c.groups {
		names = append(names, name)
	}
	return names
}
