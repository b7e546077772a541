package projects

import "go.trai.ch/crossbuild/internal/core/domain"

func toolchainProjects() []domain.Descriptor {
	return []domain.Descriptor{
		{
			Name:           "llvm",
			Variants:       []domain.CrossTarget{domain.CrossNative},
			DefaultVariant: domain.CrossNative,
			Kind:           domain.KindToolchain,
			// binutils was folded into the LLVM build long ago; the old
			// target name still resolves.
			Aliases: []domain.Alias{{Name: "binutils", Target: "llvm-native"}},
		},
		{
			Name: "qemu",
			Kind: domain.KindToolchain,
		},
		{
			Name:              "gdb",
			Variants:          append([]domain.CrossTarget{domain.CrossNative}, cheriVariants...),
			DefaultVariant:    domain.CrossNative,
			CrossBuild:        true,
			NativeIsToolchain: true,
			SDKProvided:       true,
		},
		{
			Name: "go",
			Kind: domain.KindToolchain,
		},
		{
			Name: "morello-llvm",
			Kind: domain.KindToolchain,
		},
		{
			Name: "morello-acpica",
			Kind: domain.KindToolchain,
		},
	}
}
