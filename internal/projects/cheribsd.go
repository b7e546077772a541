package projects

import "go.trai.ch/crossbuild/internal/core/domain"

func cheribsdProjects() []domain.Descriptor {
	return []domain.Descriptor{
		{
			Name:        "cheribsd",
			Variants:    cheriVariants,
			Kind:        domain.KindOS,
			SDKProvided: true,
			Dependencies: []domain.DependencyRef{
				{Name: "llvm"},
				// Purecap RISC-V boots through the BBL bios.
				{Name: "bbl-baremetal-riscv64-purecap", Variants: []domain.CrossTarget{domain.CrossRISCV64Purecap}},
			},
			Aliases: []domain.Alias{{Name: "cheribsd-cheri", Target: "cheribsd-mips64-hybrid"}},
		},
		{
			Name:     "freebsd",
			Variants: []domain.CrossTarget{domain.CrossAMD64, domain.CrossMIPS64},
			Kind:     domain.KindOS,
		},
		{
			Name:     "cheribsd-mfs-root-kernel",
			Variants: cheriVariants,
			Kind:     domain.KindOS,
			// The MFS root filesystem is embedded into the kernel image, so
			// the minimal disk image builds first.
			Dependencies: []domain.DependencyRef{
				{Name: "disk-image-minimal"},
			},
		},
		{
			Name:     "disk-image",
			Variants: cheriVariants,
			Kind:     domain.KindDiskImage,
			Dependencies: []domain.DependencyRef{
				{Name: "cheribsd"},
				{Name: "gdb"},
			},
		},
		{
			Name:     "disk-image-minimal",
			Variants: cheriVariants,
			Kind:     domain.KindDiskImage,
			Dependencies: []domain.DependencyRef{
				{Name: "cheribsd"},
			},
		},
		{
			Name:           "disk-image-fett",
			Variants:       []domain.CrossTarget{domain.CrossRISCV64, domain.CrossRISCV64Purecap},
			DefaultVariant: domain.CrossRISCV64Purecap,
			Kind:           domain.KindDiskImage,
			Dependencies: []domain.DependencyRef{
				{Name: "cheribsd"},
			},
		},
		{
			Name:     "disk-image-freebsd",
			Variants: []domain.CrossTarget{domain.CrossAMD64, domain.CrossMIPS64},
			Kind:     domain.KindDiskImage,
			Dependencies: []domain.DependencyRef{
				{Name: "freebsd"},
			},
		},
		{
			Name:     "run",
			Variants: cheriVariants,
			Kind:     domain.KindRun,
			Dependencies: []domain.DependencyRef{
				{Name: "qemu"},
				{Name: "disk-image"},
			},
		},
		{
			Name:     "run-minimal",
			Variants: cheriVariants,
			Kind:     domain.KindRun,
			Dependencies: []domain.DependencyRef{
				{Name: "qemu"},
				{Name: "cheribsd-mfs-root-kernel"},
			},
		},
		{
			Name:     "run-freebsd",
			Variants: []domain.CrossTarget{domain.CrossAMD64, domain.CrossMIPS64},
			Kind:     domain.KindRun,
			Dependencies: []domain.DependencyRef{
				{Name: "qemu"},
				{Name: "disk-image-freebsd"},
			},
		},
	}
}
