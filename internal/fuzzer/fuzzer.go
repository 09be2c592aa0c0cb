// Package fuzzer holds the payload-mutation strategies. Each strategy
// is a thin policy object: it supplies a field filter and a replacement
// rule, and delegates all document work to the document package.
package fuzzer

import (
	"sort"

	"github.com/iancoleman/strcase"
)

// Strategy is a single payload-mutation rule.
type Strategy interface {
	// Name is the snake_case registry name of the strategy.
	Name() string

	// Description is a short human-readable summary of what the
	// strategy sends.
	Description() string

	// Applies reports whether the strategy can run against the given
	// field of the payload.
	Applies(payload, field string) bool

	// Apply produces the mutated payload for the given field.
	Apply(payload, field string) (string, error)
}

// Registry maps strategy names to strategies.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry returns a registry with all built-in strategies registered.
func NewRegistry() *Registry {
	r := &Registry{strategies: make(map[string]Strategy)}
	r.Register(ReplaceArraysWithPrimitives{})
	r.Register(ReplacePrimitivesWithArrays{})
	r.Register(RandomStringBody{})
	return r
}

// Register adds a strategy under its own name.
func (r *Registry) Register(s Strategy) {
	r.strategies[s.Name()] = s
}

// Get looks up a strategy; the name is snake_cased first so callers may
// pass any casing.
func (r *Registry) Get(name string) (Strategy, bool) {
	s, ok := r.strategies[strcase.ToSnake(name)]
	return s, ok
}

// Names returns the sorted registry names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
