package domain

// Target is an immutable handle to one project descriptor instantiated for
// one cross target. Targets are created once during registry population and
// are never mutated; per-run state lives in the resolution session instead.
type Target struct {
	name    InternedString
	desc    *Descriptor
	xtarget CrossTarget
}

// NewTarget builds the target for the given descriptor and variant. The
// target name is the descriptor name plus the variant suffix.
func NewTarget(desc *Descriptor, xtarget CrossTarget) *Target {
	return &Target{
		name:    NewInternedString(desc.Name + xtarget.Suffix()),
		desc:    desc,
		xtarget: xtarget,
	}
}

// Name returns the globally unique target name.
func (t *Target) Name() string {
	return t.name.String()
}

// Descriptor returns the project descriptor the target was created from.
func (t *Target) Descriptor() *Descriptor {
	return t.desc
}

// Cross returns the variant the target builds for.
func (t *Target) Cross() CrossTarget {
	return t.xtarget
}

// Kind returns the scheduling class of the target.
func (t *Target) Kind() Kind {
	return t.desc.Kind
}

// IsToolchain reports whether the target is excluded when toolchain
// dependencies are disabled. SDK bundles count as toolchain here: a prebuilt
// toolchain makes provisioning them pointless.
func (t *Target) IsToolchain() bool {
	if t.desc.Kind == KindToolchain || t.desc.Kind == KindSDK {
		return true
	}
	return t.desc.NativeIsToolchain && t.xtarget == CrossNative
}

// IsSDKProvided reports whether a prebuilt SDK already contains the target,
// making it skippable under the skip-SDK policy.
func (t *Target) IsSDKProvided() bool {
	return t.IsToolchain() || t.desc.SDKProvided
}
