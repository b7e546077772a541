// Package registry owns the process-wide target registry and the lifecycle
// of resolution sessions.
package registry

import (
	"go.trai.ch/crossbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Registry holds every concrete target, built once at startup from the
// project descriptor table. It is immutable after population; per-run state
// lives in the Manager's session.
type Registry struct {
	targets  map[string]*domain.Target
	ordered  []*domain.Target
	aliases  map[string]*domain.Target
	byBase   map[string][]*domain.Target
	defaults map[string]*domain.Target
}

// New populates a registry from the descriptor table. Descriptors with
// variants yield one target per variant; variant-independent descriptors
// yield a single target. Population order is preserved for deterministic
// listings.
func New(descriptors []domain.Descriptor) (*Registry, error) {
	r := &Registry{
		targets:  make(map[string]*domain.Target),
		aliases:  make(map[string]*domain.Target),
		byBase:   make(map[string][]*domain.Target),
		defaults: make(map[string]*domain.Target),
	}
	for i := range descriptors {
		if err := r.addDescriptor(&descriptors[i]); err != nil {
			return nil, err
		}
	}
	// Aliases resolve after every target exists, so they may point across
	// descriptors (binutils -> llvm-native).
	for i := range descriptors {
		desc := &descriptors[i]
		for _, a := range desc.Aliases {
			if err := r.addAlias(a); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

func (r *Registry) addDescriptor(desc *domain.Descriptor) error {
	if len(desc.Variants) == 0 {
		return r.add(domain.NewTarget(desc, domain.CrossNone))
	}
	if dv := desc.DefaultVariant; dv != domain.CrossUnset && !desc.SupportsVariant(dv) {
		err := zerr.With(zerr.New("default variant not supported by project"), "project", desc.Name)
		return zerr.With(err, "variant", dv.String())
	}
	for _, v := range desc.Variants {
		t := domain.NewTarget(desc, v)
		if err := r.add(t); err != nil {
			return err
		}
		if v == desc.DefaultVariant {
			r.defaults[desc.Name] = t
		}
	}
	return nil
}

func (r *Registry) add(t *domain.Target) error {
	name := t.Name()
	if _, exists := r.targets[name]; exists {
		return zerr.With(zerr.Wrap(domain.ErrDuplicateTarget, "registry population failed"), "target", name)
	}
	r.targets[name] = t
	r.ordered = append(r.ordered, t)
	base := t.Descriptor().Name
	r.byBase[base] = append(r.byBase[base], t)
	return nil
}

func (r *Registry) addAlias(a domain.Alias) error {
	t, ok := r.targets[a.Target]
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrUnknownTarget, "alias registration failed"), "alias", a.Name)
		return zerr.With(err, "target", a.Target)
	}
	if _, exists := r.aliases[a.Name]; exists {
		return zerr.With(zerr.Wrap(domain.ErrDuplicateTarget, "alias registration failed"), "alias", a.Name)
	}
	r.aliases[a.Name] = t
	return nil
}

// Target implements resolver.Lookup.
func (r *Registry) Target(name string) (*domain.Target, bool) {
	t, ok := r.targets[name]
	return t, ok
}

// Alias implements resolver.Lookup.
func (r *Registry) Alias(name string) (*domain.Target, bool) {
	t, ok := r.aliases[name]
	return t, ok
}

// Variants implements resolver.Lookup.
func (r *Registry) Variants(base string) []*domain.Target {
	return r.byBase[base]
}

// Default implements resolver.Lookup.
func (r *Registry) Default(base string) (*domain.Target, bool) {
	t, ok := r.defaults[base]
	return t, ok
}

// Targets returns every registered target in population order.
func (r *Registry) Targets() []*domain.Target {
	return r.ordered
}
