package projects

import "go.trai.ch/crossbuild/internal/core/domain"

// SDK bundles provision a complete toolchain/sysroot. They expand their
// dependencies even when recursive dependencies are disabled: requesting an
// SDK without the pieces it bundles would be meaningless.
func sdkProjects() []domain.Descriptor {
	return []domain.Descriptor{
		{
			Name:             "freestanding-sdk",
			Kind:             domain.KindSDK,
			AlwaysExpandDeps: true,
			Dependencies: []domain.DependencyRef{
				{Name: "llvm-native"},
				{Name: "qemu"},
				{Name: "gdb-native"},
			},
		},
		{
			Name:             "baremetal-sdk",
			Kind:             domain.KindSDK,
			AlwaysExpandDeps: true,
			Dependencies: []domain.DependencyRef{
				{Name: "freestanding-sdk"},
				{Name: "libcxx-baremetal-mips64"},
			},
		},
		{
			Name:             "cheribsd-sdk",
			Variants:         cheriVariants,
			Kind:             domain.KindSDK,
			AlwaysExpandDeps: true,
			Dependencies: []domain.DependencyRef{
				{Name: "freestanding-sdk"},
				{Name: "cheribsd"},
			},
		},
		{
			Name:             "sdk",
			Variants:         cheriVariants,
			Kind:             domain.KindSDK,
			AlwaysExpandDeps: true,
			Dependencies: []domain.DependencyRef{
				{Name: "cheribsd-sdk"},
			},
		},
	}
}
