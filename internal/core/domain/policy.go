package domain

import "github.com/cespare/xxhash/v2"

// Policy is the per-resolution inclusion policy bundle. It is not persisted;
// a fresh Policy accompanies every resolution request.
type Policy struct {
	// IncludeDependencies enables recursive dependency expansion. Without it
	// only the requested targets appear in the result, except for projects
	// that always expand their dependencies.
	IncludeDependencies bool

	// IncludeToolchainDependencies keeps toolchain targets (llvm-native,
	// qemu, gdb-native, the SDK bundles) in the expansion.
	IncludeToolchainDependencies bool

	// SkipSDK drops every target a prebuilt SDK already provides.
	SkipSDK bool

	// BuildMorelloFromSource selects the source-build dependency set for
	// firmware projects that can alternatively be downloaded prebuilt.
	BuildMorelloFromSource bool
}

// DefaultPolicy returns the policy used when no flags are given: no
// recursive dependencies, toolchain dependencies enabled.
func DefaultPolicy() Policy {
	return Policy{IncludeToolchainDependencies: true}
}

// Fingerprint returns a hash of the policy flags. Resolution sessions record
// the fingerprint they were created under and refuse reuse under another one.
func (p Policy) Fingerprint() uint64 {
	var buf [4]byte
	flags := []bool{
		p.IncludeDependencies,
		p.IncludeToolchainDependencies,
		p.SkipSDK,
		p.BuildMorelloFromSource,
	}
	for i, f := range flags {
		if f {
			buf[i] = 1
		}
	}
	return xxhash.Sum64(buf[:])
}
