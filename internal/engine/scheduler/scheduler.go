// Package scheduler linearizes an expanded target set into one deterministic
// build order.
package scheduler

import (
	"strings"

	"go.trai.ch/crossbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// DependencyFn returns the transitive dependency closure of a target, as
// cached by the resolution session during expansion.
type DependencyFn func(*domain.Target) ([]*domain.Target, error)

// Order produces a total order over the expanded set:
//
//   - every dependency precedes its dependents, using the full closure so
//     that requested-only runs are still ordered by their dependency
//     relation even when the intermediate targets were filtered out;
//   - disk-image targets go second-to-last and run targets last, unless an
//     explicit dependency edge says otherwise (an mfs-root kernel embedding
//     a disk image legitimately builds after it);
//   - remaining ties break on first-requested, then first-discovered order,
//     so identical input always yields the identical sequence.
func Order(expanded []*domain.Target, deps DependencyFn) ([]*domain.Target, error) {
	index := make(map[string]int, len(expanded))
	for i, t := range expanded {
		index[t.Name()] = i
	}

	blockers := make([]int, len(expanded))
	dependents := make([][]int, len(expanded))
	for i, t := range expanded {
		closure, err := deps(t)
		if err != nil {
			return nil, err
		}
		for _, dep := range closure {
			if j, ok := index[dep.Name()]; ok && j != i {
				blockers[i]++
				dependents[j] = append(dependents[j], i)
			}
		}
	}

	out := make([]*domain.Target, 0, len(expanded))
	done := make([]bool, len(expanded))
	for len(out) < len(expanded) {
		next := -1
		for i := range expanded {
			if done[i] || blockers[i] > 0 {
				continue
			}
			if next == -1 || before(expanded, i, next) {
				next = i
			}
		}
		if next == -1 {
			return nil, unorderableError(expanded, done)
		}
		done[next] = true
		out = append(out, expanded[next])
		for _, i := range dependents[next] {
			blockers[i]--
		}
	}
	return out, nil
}

// before reports whether target i schedules ahead of target j among ready
// candidates.
func before(expanded []*domain.Target, i, j int) bool {
	ri, rj := classRank(expanded[i]), classRank(expanded[j])
	if ri != rj {
		return ri < rj
	}
	return i < j
}

// classRank pushes disk images towards the end and run targets after them.
func classRank(t *domain.Target) int {
	switch t.Kind() {
	case domain.KindRun:
		return 2
	case domain.KindDiskImage:
		return 1
	default:
		return 0
	}
}

// unorderableError reports the targets stuck in a dependency cycle. The
// expander already rejects cyclic registries, so reaching this means the
// cached closures disagree with each other.
func unorderableError(expanded []*domain.Target, done []bool) error {
	var stuck []string
	for i, t := range expanded {
		if !done[i] {
			stuck = append(stuck, t.Name())
		}
	}
	return zerr.With(zerr.Wrap(domain.ErrCyclicDependency, "could not order targets"), "targets", strings.Join(stuck, ", "))
}
