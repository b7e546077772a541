// Package expander computes transitive dependency closures and applies the
// inclusion policy to produce the target set handed to the scheduler.
package expander

import (
	"strings"

	"go.trai.ch/crossbuild/internal/core/domain"
	"go.trai.ch/crossbuild/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// Expander expands requested targets to the policy-filtered dependency set.
// Closures are memoized in the session, so repeated expansions within one
// resolution pass are cheap.
type Expander struct {
	lookup  resolver.Lookup
	session *Session
	policy  domain.Policy
}

// New creates an Expander. It fails when the session belongs to a different
// policy than the one given.
func New(lookup resolver.Lookup, session *Session, policy domain.Policy) (*Expander, error) {
	if err := session.Check(policy); err != nil {
		return nil, err
	}
	return &Expander{lookup: lookup, session: session, policy: policy}, nil
}

// Expand returns the requested targets plus their policy-admitted transitive
// dependencies, deduplicated, in first-encounter order. The order is a
// scheduling hint only; the scheduler imposes the final sequence.
func (e *Expander) Expand(requested []*domain.Target) ([]*domain.Target, error) {
	for _, t := range requested {
		if _, err := e.closure(t, nil, false); err != nil {
			return nil, err
		}
	}

	var out []*domain.Target
	admitted := make(map[string]bool)
	admit := func(t *domain.Target) {
		if !admitted[t.Name()] {
			admitted[t.Name()] = true
			out = append(out, t)
		}
	}

	for _, t := range requested {
		admit(t)
		if !e.policy.IncludeDependencies && !t.Descriptor().AlwaysExpandDeps {
			continue
		}
		closure, err := e.session.Cached(t)
		if err != nil {
			return nil, err
		}
		for _, dep := range closure {
			if e.admittedByPolicy(dep) {
				admit(dep)
			}
		}
	}

	// Targets first discovered inside a toolchain-suppressed subtree have no
	// cached closure yet; the scheduler reads one for every member.
	for _, t := range out {
		if _, ok := e.session.lookup(t.Name()); !ok {
			if _, err := e.closure(t, nil, false); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// admittedByPolicy decides whether an expanded (non-requested) target
// survives the policy filters. Explicitly requested targets bypass this.
func (e *Expander) admittedByPolicy(t *domain.Target) bool {
	if !e.policy.IncludeToolchainDependencies && t.IsToolchain() {
		return false
	}
	if e.policy.SkipSDK && t.IsSDKProvided() {
		return false
	}
	return true
}

// closure returns the full transitive dependency list of t in discovery
// order, excluding t itself. Results are cached in the session except when
// computed under an inherited toolchain suppression, where the closure of
// the same target legitimately differs from its standalone one.
func (e *Expander) closure(t *domain.Target, stack []*domain.Target, suppressed bool) ([]*domain.Target, error) {
	if !suppressed {
		if cached, ok := e.session.lookup(t.Name()); ok {
			return cached, nil
		}
	}

	for _, on := range stack {
		if on.Name() == t.Name() {
			return nil, cycleError(stack, t)
		}
	}
	stack = append(stack, t)

	direct, err := e.directDependencies(t, suppressed || t.Descriptor().SuppressToolchainDeps)
	if err != nil {
		return nil, err
	}

	var out []*domain.Target
	seen := make(map[string]bool)
	add := func(dep *domain.Target) {
		if !seen[dep.Name()] {
			seen[dep.Name()] = true
			out = append(out, dep)
		}
	}
	for _, dep := range direct {
		add(dep)
		sub, err := e.closure(dep, stack, suppressed || t.Descriptor().SuppressToolchainDeps)
		if err != nil {
			return nil, err
		}
		for _, d := range sub {
			add(d)
		}
	}

	if !suppressed {
		e.session.store(t.Name(), out)
	}
	return out, nil
}

// directDependencies resolves the declared dependency templates of t against
// its own variant context and appends the implicit cross-build dependencies.
func (e *Expander) directDependencies(t *domain.Target, suppressed bool) ([]*domain.Target, error) {
	desc := t.Descriptor()
	var out []*domain.Target

	for _, ref := range desc.Dependencies {
		if !ref.AppliesTo(t.Cross()) {
			continue
		}
		switch ref.Activation {
		case domain.ActivationFromSource:
			if !e.policy.BuildMorelloFromSource {
				continue
			}
		case domain.ActivationToolchain:
			if suppressed {
				continue
			}
		}
		dep, ok, err := e.resolveDependency(ref.Name, t)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, dep)
		}
	}

	if desc.CrossBuild && t.Cross() != domain.CrossNative {
		if desc.NeedsNativeBuild {
			if native, ok := e.lookup.Target(desc.Name + domain.CrossNative.Suffix()); ok {
				out = append(out, native)
			}
		}
		if t.Cross().OS() == domain.OSCheriBSD {
			osDep, ok, err := e.resolveDependency("cheribsd", t)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, osDep)
			}
			if llvm, ok := e.lookup.Target("llvm-native"); ok {
				out = append(out, llvm)
			}
		}
	}
	return out, nil
}

// resolveDependency resolves one dependency name template for the requesting
// target. Variant-relative resolution wins, then exact names, then the base
// project's default variant. A known base project that simply has no build
// for the requesting variant is dropped, not an error.
func (e *Expander) resolveDependency(name string, requester *domain.Target) (*domain.Target, bool, error) {
	if ct := requester.Cross(); ct != domain.CrossNone && ct != domain.CrossUnset {
		if t, ok := e.lookup.Target(name + ct.Suffix()); ok {
			return t, true, nil
		}
	}
	if t, ok := e.lookup.Target(name); ok {
		return t, true, nil
	}
	if t, ok := e.lookup.Default(name); ok {
		return t, true, nil
	}
	if variants := e.lookup.Variants(name); len(variants) > 0 {
		if len(variants) == 1 {
			return variants[0], true, nil
		}
		// Known project, no build for this variant.
		return nil, false, nil
	}
	err := zerr.With(zerr.Wrap(domain.ErrUnknownTarget, "dependency resolution failed"), "dependency", name)
	return nil, false, zerr.With(err, "required_by", requester.Name())
}

func cycleError(stack []*domain.Target, repeated *domain.Target) error {
	start := 0
	for i, t := range stack {
		if t.Name() == repeated.Name() {
			start = i
			break
		}
	}
	names := make([]string, 0, len(stack)-start+1)
	for _, t := range stack[start:] {
		names = append(names, t.Name())
	}
	names = append(names, repeated.Name())
	return zerr.With(zerr.Wrap(domain.ErrCyclicDependency, "cycle in dependency graph"), "cycle", strings.Join(names, " -> "))
}
