// Package domain contains the core domain model for target resolution and
// build-order scheduling.
package domain

// Kind classifies a project for scheduling and policy filtering.
type Kind uint8

const (
	// KindOther covers ordinary buildable projects (libraries, applications).
	KindOther Kind = iota
	// KindToolchain marks compiler/emulator projects excluded when toolchain
	// dependencies are disabled.
	KindToolchain
	// KindSDK marks SDK bundle projects; they expand their dependencies even
	// when recursive dependencies are disabled.
	KindSDK
	// KindOS marks operating system and kernel projects.
	KindOS
	// KindDiskImage marks disk image projects, ordered second-to-last.
	KindDiskImage
	// KindRun marks run targets, always ordered last.
	KindRun
)

func (k Kind) String() string {
	switch k {
	case KindToolchain:
		return "toolchain"
	case KindSDK:
		return "sdk"
	case KindOS:
		return "os"
	case KindDiskImage:
		return "disk-image"
	case KindRun:
		return "run"
	default:
		return "project"
	}
}

// Activation states under which policy a dependency edge is followed.
type Activation uint8

const (
	// ActivationAlways edges are followed unconditionally.
	ActivationAlways Activation = iota
	// ActivationToolchain edges are followed unless a SuppressToolchainDeps
	// ancestor hides them; whether the resulting targets survive filtering
	// is decided by the toolchain policy flag.
	ActivationToolchain
	// ActivationFromSource edges are only followed when the policy selects
	// building the variant from source rather than downloading it.
	ActivationFromSource
)

// DependencyRef is one declared dependency of a project. Name is a template:
// either a concrete target name ("llvm-native", "qemu") or a base project
// name resolved against the requesting target's variant ("cheribsd" becomes
// "cheribsd-mips64-hybrid" for a mips64-hybrid consumer).
type DependencyRef struct {
	Name       string
	Activation Activation
	// Variants restricts the edge to specific requesting variants.
	// Empty means all variants.
	Variants []CrossTarget
}

// AppliesTo reports whether the edge is declared for the given variant.
func (r DependencyRef) AppliesTo(ct CrossTarget) bool {
	if len(r.Variants) == 0 {
		return true
	}
	for _, v := range r.Variants {
		if v == ct {
			return true
		}
	}
	return false
}

// Alias maps a shorthand name to a concrete target name.
type Alias struct {
	Name   string
	Target string
}

// Descriptor is the static metadata of one buildable project. Descriptors are
// assembled by composition into a flat table at startup; there is no
// inheritance between them.
type Descriptor struct {
	// Name is the base project name, without any variant suffix.
	Name string

	// Variants lists the cross targets the project builds for. Empty means
	// the project is variant-independent and yields a single target.
	Variants []CrossTarget

	// DefaultVariant, when set, is the variant a bare base name resolves to.
	DefaultVariant CrossTarget

	// Dependencies is the ordered list of declared dependency edges.
	Dependencies []DependencyRef

	Kind Kind

	// CrossBuild projects pick up implicit dependencies on their target OS
	// and on llvm-native for CheriBSD-family variants.
	CrossBuild bool

	// NeedsNativeBuild projects additionally depend on their own -native
	// target when cross-compiled (host tools needed during the cross build).
	NeedsNativeBuild bool

	// SDKProvided projects are dropped from expansions when the policy skips
	// SDK provisioning (a prebuilt SDK already contains them).
	SDKProvided bool

	// NativeIsToolchain means only the -native variant of this project counts
	// as a toolchain target (e.g. gdb-native vs. the cross gdb builds).
	NativeIsToolchain bool

	// AlwaysExpandDeps projects expand their dependencies even when the
	// policy disables recursive dependency inclusion.
	AlwaysExpandDeps bool

	// SuppressToolchainDeps hides toolchain-activated edges in the whole
	// subtree rooted at this project's targets.
	SuppressToolchainDeps bool

	// Aliases are extra shorthand names resolving to concrete targets.
	Aliases []Alias
}

// SupportsVariant reports whether the descriptor declares the given variant.
func (d *Descriptor) SupportsVariant(ct CrossTarget) bool {
	for _, v := range d.Variants {
		if v == ct {
			return true
		}
	}
	return false
}
