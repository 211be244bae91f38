package resources

import (
	"context"
	"fmt"
	"sync"

	"github.com/solatis/translit/internal/types"
)

// Memory is an in-memory resource store, used by tests and by the CLI's
// build command.
type Memory struct {
	mu        sync.RWMutex
	resources map[string]*types.Resource
}

var _ types.ResourceStore = (*Memory)(nil)

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{resources: make(map[string]*types.Resource)}
}

// Put stores res, replacing any earlier resource at the same location.
func (m *Memory) Put(namespace, category, name string, res *types.Resource) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resources[key(namespace, category, name)] = res
}

// AddTransform stores a single-transform resource under shared/transforms.
func (m *Memory) AddTransform(name, direction string, rules ...string) {
	m.Put(types.NamespaceShared, types.CategoryTransforms, name, &types.Resource{
		Transforms: []types.TransformSource{{Direction: direction, Rules: rules}},
	})
}

func (m *Memory) ResourceExists(ctx context.Context, namespace, category, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.resources[key(namespace, category, name)]
	return ok, nil
}

func (m *Memory) GetResource(ctx context.Context, namespace, category, name string) (*types.Resource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	res, ok := m.resources[key(namespace, category, name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s/%s", types.ErrResourceNotFound, namespace, category, name)
	}
	return res, nil
}

func key(namespace, category, name string) string {
	return namespace + "/" + category + "/" + name
}
