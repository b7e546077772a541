package registry

import (
	"go.trai.ch/crossbuild/internal/core/domain"
	"go.trai.ch/crossbuild/internal/engine/expander"
	"go.trai.ch/crossbuild/internal/engine/resolver"
	"go.trai.ch/crossbuild/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// Manager ties registry, resolver, expander, and scheduler together and owns
// the resolution session. One Manager serves one process; Reset must be
// called between independent resolution passes. Concurrent resolution passes
// against one Manager are not supported.
type Manager struct {
	registry *Registry
	resolver *resolver.Resolver
	session  *expander.Session
}

// NewManager populates the registry from the descriptor table and prepares
// an empty session state.
func NewManager(descriptors []domain.Descriptor) (*Manager, error) {
	reg, err := New(descriptors)
	if err != nil {
		return nil, err
	}
	return &Manager{
		registry: reg,
		resolver: resolver.New(reg),
	}, nil
}

// Registry exposes the populated target registry.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Session returns the current resolution session, or nil before the first
// ComputeBuildOrder call after a Reset.
func (m *Manager) Session() *expander.Session {
	return m.session
}

// Reset discards all per-run state. Sequential resolution passes within one
// process leak stale cached dependencies into each other without this.
func (m *Manager) Reset() {
	m.session = nil
}

// GetTarget resolves a single requested name to a concrete target.
func (m *Manager) GetTarget(name string) (*domain.Target, error) {
	return m.resolver.Resolve(name)
}

// ComputeBuildOrder resolves the requested names, expands them under the
// policy, and returns the complete deterministic build order. Either a full
// valid order is returned or the call fails wholesale.
func (m *Manager) ComputeBuildOrder(names []string, policy domain.Policy) ([]*domain.Target, error) {
	requested := make([]*domain.Target, 0, len(names))
	for _, name := range names {
		t, err := m.resolver.Resolve(name)
		if err != nil {
			return nil, err
		}
		requested = append(requested, t)
	}

	if m.session == nil {
		m.session = expander.NewSession(policy)
	}
	exp, err := expander.New(m.registry, m.session, policy)
	if err != nil {
		return nil, err
	}
	expanded, err := exp.Expand(requested)
	if err != nil {
		return nil, zerr.Wrap(err, "dependency expansion failed")
	}

	return scheduler.Order(expanded, m.session.Cached)
}
