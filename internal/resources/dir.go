// Package resources provides the file-system and in-memory implementations
// of types.ResourceStore.
//
// A Dir store keeps one file per resource under <root>/<namespace>/<category>:
//
//	resources/shared/transforms/Latin-ASCII.yml
//	resources/shared/transforms/Greek-Latin.json
//
// YAML files are decoded strictly. JSON files may carry comments.
package resources

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/muhammadmuzzammil1998/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/solatis/translit/internal/types"
)

// Extensions are tried in this order.
var extensions = []string{".yml", ".yaml", ".json"}

// Dir reads resources from a directory tree.
type Dir struct {
	root string
}

var _ types.ResourceStore = (*Dir)(nil)

// NewDir returns a store rooted at root.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Root returns the store's root directory.
func (d *Dir) Root() string {
	return d.root
}

func (d *Dir) ResourceExists(ctx context.Context, namespace, category, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, err := d.locate(namespace, category, name)
	if errors.Is(err, types.ErrResourceNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (d *Dir) GetResource(ctx context.Context, namespace, category, name string) (*types.Resource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := d.locate(namespace, category, name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	res, err := Decode(path, data)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// List returns the resource names of one category, sorted.
func (d *Dir) List(ctx context.Context, namespace, category string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(filepath.Join(d.root, namespace, category))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s/%s: %w", namespace, category, err)
	}
	seen := make(map[string]bool)
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if !isResourceExt(ext) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ext)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (d *Dir) locate(namespace, category, name string) (string, error) {
	for _, part := range []string{namespace, category, name} {
		if part == "" || part == "." || part == ".." || strings.ContainsAny(part, `/\`) {
			return "", fmt.Errorf("%w: invalid resource path %s/%s/%s", types.ErrResourceNotFound, namespace, category, name)
		}
	}
	base := filepath.Join(d.root, namespace, category, name)
	for _, ext := range extensions {
		info, err := os.Stat(base + ext)
		if err == nil && !info.IsDir() {
			return base + ext, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("locating %s: %w", name, err)
		}
	}
	return "", fmt.Errorf("%w: %s/%s/%s", types.ErrResourceNotFound, namespace, category, name)
}

func isResourceExt(ext string) bool {
	for _, e := range extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Decode parses resource file contents, choosing the format from the path's
// extension.
func Decode(path string, data []byte) (*types.Resource, error) {
	var res types.Resource
	switch filepath.Ext(path) {
	case ".json":
		if !jsonc.Valid(data) {
			return nil, fmt.Errorf("decoding %s: invalid JSON", path)
		}
		if err := json.Unmarshal(jsonc.ToJSON(data), &res); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&res); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	}
	return &res, nil
}
