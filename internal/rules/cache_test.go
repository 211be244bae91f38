// internal/rules/cache_test.go
package rules

import (
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/solatis/translit/internal/types"
)

func TestCache_PutGet(t *testing.T) {
	c := NewCache()
	if _, ok := c.Get("x"); ok {
		t.Fatal("empty cache returned a group")
	}

	g1 := &RuleGroup{id: "x", direction: types.Forward}
	g2 := &RuleGroup{id: "x", direction: types.Bidirectional}
	c.Put("x", g1)
	c.Put("x", g2)

	got, ok := c.Get("x")
	if !ok || got != g2 {
		t.Errorf("Get(x) = %v, %v, want last Put", got, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCache_Concurrent(t *testing.T) {
	c := NewCache()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("t%d", i%4)
			c.Put(name, &RuleGroup{id: types.GroupID(name)})
			if g, ok := c.Get(name); !ok || g.ID() != types.GroupID(name) {
				t.Errorf("Get(%s) = %v, %v", name, g, ok)
			}
		}(i)
	}
	wg.Wait()

	names := c.Names()
	sort.Strings(names)
	if diff := cmp.Diff([]string{"t0", "t1", "t2", "t3"}, names); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}
