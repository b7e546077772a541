// Package projects declares the built-in project descriptor table. The
// descriptors are plain data assembled by composition; the registry turns
// them into concrete targets at startup.
package projects

import "go.trai.ch/crossbuild/internal/core/domain"

// cheriVariants are the CheriBSD cross-compilation variants.
var cheriVariants = []domain.CrossTarget{
	domain.CrossMIPS64,
	domain.CrossMIPS64Hybrid,
	domain.CrossMIPS64Purecap,
	domain.CrossRISCV64,
	domain.CrossRISCV64Purecap,
}

// hostAndCheriVariants adds the native host build to the CheriBSD variants.
var hostAndCheriVariants = append([]domain.CrossTarget{domain.CrossNative}, cheriVariants...)

// baremetalVariants are the freestanding newlib-based variants.
var baremetalVariants = []domain.CrossTarget{
	domain.CrossBaremetalMIPS64,
	domain.CrossBaremetalRISCV64,
	domain.CrossBaremetalRISCV64Purecap,
}

// Builtin returns the full descriptor table. The slice is rebuilt on every
// call so registries never share descriptor storage.
func Builtin() []domain.Descriptor {
	var out []domain.Descriptor
	out = append(out, toolchainProjects()...)
	out = append(out, sdkProjects()...)
	out = append(out, cheribsdProjects()...)
	out = append(out, libraryProjects()...)
	out = append(out, morelloProjects()...)
	return out
}
