package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// SchemasFile is the on-disk format of a schema override file.
type SchemasFile struct {
	Schemas []Config `json:"schemas"`
}

// Registry resolves category form schemas. It is built once at startup and never mutated
// afterwards, so it is safe for concurrent reads without locking.
type Registry struct {
	configs  map[string]Config
	aliases  map[string]string
	order    []string
	fallback Config
}

// NewRegistry builds a registry from the given schemas. Later schemas with the same key
// replace earlier ones.
func NewRegistry(configs ...Config) (*Registry, error) {
	r := &Registry{
		configs:  make(map[string]Config, len(configs)),
		aliases:  make(map[string]string, len(configs)),
		fallback: Default(),
	}
	for _, cfg := range configs {
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		if _, exists := r.configs[cfg.Key]; !exists {
			r.order = append(r.order, cfg.Key)
		}
		r.configs[cfg.Key] = cfg.clone()
		if cfg.Name != "" {
			r.aliases[cfg.Name] = cfg.Key
		}
	}
	return r, nil
}

// NewDefaultRegistry returns a registry holding the built-in schemas.
func NewDefaultRegistry() *Registry {
	r, err := NewRegistry(Builtin()...)
	if err != nil {
		panic(fmt.Sprintf("built-in category schemas are invalid: %v", err))
	}
	return r
}

// LoadFromFile returns the built-in registry with the schemas in path layered on top.
// An empty path yields the built-in registry.
func LoadFromFile(path string) (*Registry, error) {
	if path == "" {
		return NewDefaultRegistry(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema config: %w", err)
	}

	var file SchemasFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse schema config: %w", err)
	}

	return NewRegistry(append(Builtin(), file.Schemas...)...)
}

// GetCategoryConfig returns the schema registered under a category display name, or the
// default schema. It never fails.
func (r *Registry) GetCategoryConfig(categoryName string) Config {
	if key, ok := r.aliases[strings.TrimSpace(categoryName)]; ok {
		return r.configs[key].clone()
	}
	return r.fallback.clone()
}

// Resolve prefers the stable schema key and only falls back to the display name when the
// category carries no key.
func (r *Registry) Resolve(schemaKey, categoryName string) Config {
	if schemaKey != "" {
		if cfg, ok := r.configs[schemaKey]; ok {
			return cfg.clone()
		}
		return r.fallback.clone()
	}
	return r.GetCategoryConfig(categoryName)
}

func (r *Registry) Exists(schemaKey string) bool {
	_, ok := r.configs[schemaKey]
	return ok
}

// All returns every registered schema in registration order.
func (r *Registry) All() []Config {
	out := make([]Config, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.configs[key].clone())
	}
	return out
}

func (r *Registry) Keys() []string {
	return append([]string(nil), r.order...)
}
