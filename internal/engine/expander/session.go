package expander

import (
	"go.trai.ch/crossbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// Session owns the per-resolution dependency caches. One session covers one
// resolution pass under one policy; the target manager discards it on Reset.
// Sessions are not safe for concurrent use, matching the single-threaded
// contract of the resolver core.
type Session struct {
	fingerprint uint64
	closures    map[string][]*domain.Target
}

// NewSession creates an empty session bound to the given policy.
func NewSession(policy domain.Policy) *Session {
	return &Session{
		fingerprint: policy.Fingerprint(),
		closures:    make(map[string][]*domain.Target),
	}
}

// Check verifies that the session was created under the same policy. Reusing
// cached closures under a different policy is the stale-cache bug this guard
// exists for.
func (s *Session) Check(policy domain.Policy) error {
	if policy.Fingerprint() != s.fingerprint {
		return domain.ErrPolicyMismatch
	}
	return nil
}

// Cached returns the cached transitive dependency list for the target. It
// fails with ErrCacheNotReady when the closure has not been computed yet;
// callers must be able to tell "not computed" apart from "no dependencies".
func (s *Session) Cached(t *domain.Target) ([]*domain.Target, error) {
	closure, ok := s.closures[t.Name()]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrCacheNotReady, "dependency cache read failed"), "target", t.Name())
	}
	return closure, nil
}

func (s *Session) lookup(name string) ([]*domain.Target, bool) {
	closure, ok := s.closures[name]
	return closure, ok
}

func (s *Session) store(name string, closure []*domain.Target) {
	s.closures[name] = closure
}
