package platformtest

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/crafted-tech/logonapp/platform"
)

type node struct {
	name     string
	values   map[string]string
	children map[string]*node
}

func newNode(name string) *node {
	return &node{name: name, values: map[string]string{}, children: map[string]*node{}}
}

// Registry is an in-memory platform.Registry. Key and value names are
// case-insensitive, as on Windows; enumeration preserves the original case
// and returns names sorted.
type Registry struct {
	mu    sync.Mutex
	roots map[platform.RootKey]*node

	// DeleteErrors forces DeleteTree to fail for the given "ROOT\path" keys.
	DeleteErrors map[string]error

	// Deleted records every successful DeleteTree call as "ROOT\path".
	Deleted []string
}

var _ platform.Registry = (*Registry)(nil)

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		roots:        map[platform.RootKey]*node{},
		DeleteErrors: map[string]error{},
	}
}

func split(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, `\`) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func (r *Registry) lookup(root platform.RootKey, path string, create bool) *node {
	n, ok := r.roots[root]
	if !ok {
		if !create {
			return nil
		}
		n = newNode(root.String())
		r.roots[root] = n
	}
	for _, part := range split(path) {
		child, ok := n.children[strings.ToLower(part)]
		if !ok {
			if !create {
				return nil
			}
			child = newNode(part)
			n.children[strings.ToLower(part)] = child
		}
		n = child
	}
	return n
}

// CreateKey creates the key and any missing parents.
func (r *Registry) CreateKey(root platform.RootKey, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookup(root, path, true)
}

// SetString creates the key if needed and stores a string value.
func (r *Registry) SetString(root platform.RootKey, path, name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookup(root, path, true).values[strings.ToLower(name)] = value
}

// Exists reports whether the key is present.
func (r *Registry) Exists(root platform.RootKey, path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookup(root, path, false) != nil
}

func (r *Registry) SubKeyNames(root platform.RootKey, path string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.lookup(root, path, false)
	if n == nil {
		return nil, fmt.Errorf("open %s\\%s: %w", root, path, platform.ErrNotExist)
	}
	names := make([]string, 0, len(n.children))
	for _, c := range n.children {
		names = append(names, c.name)
	}
	sort.Strings(names)
	return names, nil
}

func (r *Registry) StringValue(root platform.RootKey, path, name string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.lookup(root, path, false)
	if n == nil {
		return "", fmt.Errorf("open %s\\%s: %w", root, path, platform.ErrNotExist)
	}
	v, ok := n.values[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("value %s: %w", name, platform.ErrNotExist)
	}
	return v, nil
}

func (r *Registry) DeleteTree(root platform.RootKey, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	full := root.String() + `\` + path
	if err, ok := r.DeleteErrors[full]; ok {
		return err
	}

	parts := split(path)
	if len(parts) == 0 {
		return fmt.Errorf("refusing to delete hive %s", root)
	}
	parent := r.lookup(root, strings.Join(parts[:len(parts)-1], `\`), false)
	last := strings.ToLower(parts[len(parts)-1])
	if parent == nil || parent.children[last] == nil {
		return fmt.Errorf("delete %s: %w", full, platform.ErrNotExist)
	}
	delete(parent.children, last)
	r.Deleted = append(r.Deleted, full)
	return nil
}
