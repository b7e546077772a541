// Package resolver maps user-supplied target names to concrete targets.
package resolver

import (
	"strings"

	"go.trai.ch/crossbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Lookup is the registry view the resolver needs.
type Lookup interface {
	// Target returns the target registered under the exact name.
	Target(name string) (*domain.Target, bool)
	// Alias returns the target a shorthand name points to.
	Alias(name string) (*domain.Target, bool)
	// Variants returns all targets of the given base project, in declaration
	// order. Empty for unknown base names.
	Variants(base string) []*domain.Target
	// Default returns the default-variant target of the base project.
	Default(base string) (*domain.Target, bool)
}

// Resolver performs name, alias, and legacy-suffix resolution.
type Resolver struct {
	lookup Lookup
}

// New creates a Resolver over the given registry view.
func New(lookup Lookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// Resolve maps a requested name to exactly one target:
//
//  1. exact target name,
//  2. exact name after legacy suffix normalization,
//  3. declared alias,
//  4. bare base name of a project with a single variant or a default variant.
//
// Anything else fails; partial matches are never guessed.
func (r *Resolver) Resolve(name string) (*domain.Target, error) {
	if t, ok := r.lookup.Target(name); ok {
		return t, nil
	}
	if canonical := NormalizeLegacySuffix(name); canonical != name {
		if t, ok := r.lookup.Target(canonical); ok {
			return t, nil
		}
	}
	if t, ok := r.lookup.Alias(name); ok {
		return t, nil
	}
	if variants := r.lookup.Variants(name); len(variants) > 0 {
		if t, ok := r.lookup.Default(name); ok {
			return t, nil
		}
		if len(variants) == 1 {
			return variants[0], nil
		}
		candidates := make([]string, len(variants))
		for i, t := range variants {
			candidates[i] = t.Name()
		}
		err := zerr.With(zerr.Wrap(domain.ErrAmbiguousAlias, "target resolution failed"), "name", name)
		return nil, zerr.With(err, "candidates", strings.Join(candidates, ", "))
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrUnknownTarget, "target resolution failed"), "target", name)
}
