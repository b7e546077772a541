package projects

import "go.trai.ch/crossbuild/internal/core/domain"

func morelloProjects() []domain.Descriptor {
	return []domain.Descriptor{
		{
			Name: "morello-firmware",
			// The firmware bundle either builds everything from source or
			// downloads a prebuilt release with no dependencies at all. The
			// bundle never drags the bare-metal toolchain in; requesting the
			// individual firmware projects does.
			AlwaysExpandDeps:      true,
			SuppressToolchainDeps: true,
			Dependencies: []domain.DependencyRef{
				{Name: "morello-scp-firmware", Activation: domain.ActivationFromSource},
				{Name: "morello-trusted-firmware", Activation: domain.ActivationFromSource},
				{Name: "morello-flash-images", Activation: domain.ActivationFromSource},
				{Name: "morello-uefi", Activation: domain.ActivationFromSource},
			},
		},
		{
			Name: "morello-scp-firmware",
		},
		{
			Name: "morello-trusted-firmware",
		},
		{
			Name: "morello-flash-images",
			Dependencies: []domain.DependencyRef{
				{Name: "morello-scp-firmware"},
				{Name: "morello-trusted-firmware"},
			},
		},
		{
			Name: "morello-uefi",
			Dependencies: []domain.DependencyRef{
				{Name: "gdb-native", Activation: domain.ActivationToolchain},
				{Name: "morello-acpica", Activation: domain.ActivationToolchain},
				{Name: "morello-llvm", Activation: domain.ActivationToolchain},
			},
		},
	}
}
