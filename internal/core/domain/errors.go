package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownTarget is returned when a requested name matches no target,
	// alias, or base project in the registry.
	ErrUnknownTarget = zerr.New("unknown target")

	// ErrAmbiguousAlias is returned when a bare base name matches several
	// variants and the project declares no default variant.
	ErrAmbiguousAlias = zerr.New("ambiguous target name")

	// ErrUnknownVariant is returned when a variant identifier is not part of
	// the cross-target table.
	ErrUnknownVariant = zerr.New("unknown cross-compilation variant")

	// ErrCacheNotReady is returned when a cached dependency list is read
	// before it has been computed for that target. This is a caller ordering
	// bug and is never silently defaulted to an empty list.
	ErrCacheNotReady = zerr.New("cached dependencies read before being computed")

	// ErrCyclicDependency is returned when dependency expansion revisits a
	// target already on the recursion stack. A cyclic registry is a
	// configuration error, not a runtime condition.
	ErrCyclicDependency = zerr.New("cyclic dependency")

	// ErrDuplicateTarget is returned when registry population produces two
	// targets with the same name.
	ErrDuplicateTarget = zerr.New("target already registered")

	// ErrPolicyMismatch is returned when a resolution session is reused under
	// a different policy without an intervening Reset.
	ErrPolicyMismatch = zerr.New("session reused with a different policy")

	// ErrNoTargetsSpecified is returned when a build order is requested for an
	// empty target list.
	ErrNoTargetsSpecified = zerr.New("no targets specified")
)
