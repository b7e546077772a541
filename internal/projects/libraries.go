package projects

import "go.trai.ch/crossbuild/internal/core/domain"

func libraryProjects() []domain.Descriptor {
	// The C++ runtime stack builds both for CheriBSD and for the baremetal
	// newlib environments.
	cxxVariants := append(append([]domain.CrossTarget{}, hostAndCheriVariants...), baremetalVariants...)

	return []domain.Descriptor{
		{
			Name:       "postgres",
			Variants:   hostAndCheriVariants,
			CrossBuild: true,
		},
		{
			Name:       "sqlite",
			Variants:   hostAndCheriVariants,
			CrossBuild: true,
		},
		{
			Name:       "libxml2",
			Variants:   hostAndCheriVariants,
			CrossBuild: true,
		},
		{
			Name:       "qtbase",
			Variants:   hostAndCheriVariants,
			CrossBuild: true,
		},
		{
			Name:             "icu4c",
			Variants:         hostAndCheriVariants,
			CrossBuild:       true,
			NeedsNativeBuild: true,
		},
		{
			Name:       "qtwebkit",
			Variants:   hostAndCheriVariants,
			CrossBuild: true,
			Dependencies: []domain.DependencyRef{
				{Name: "qtbase"},
				{Name: "icu4c"},
				{Name: "libxml2"},
				{Name: "sqlite"},
			},
		},
		{
			Name:           "libcxx",
			Variants:       cxxVariants,
			DefaultVariant: domain.CrossMIPS64Purecap,
			CrossBuild:     true,
			Dependencies: []domain.DependencyRef{
				{Name: "libunwind"},
				{Name: "libcxxrt"},
			},
		},
		{
			Name:       "libcxxrt",
			Variants:   cxxVariants,
			CrossBuild: true,
			Dependencies: []domain.DependencyRef{
				{Name: "libunwind"},
			},
		},
		{
			Name:       "libunwind",
			Variants:   cxxVariants,
			CrossBuild: true,
			Dependencies: []domain.DependencyRef{
				{Name: "newlib", Variants: baremetalVariants},
				{Name: "compiler-rt-builtins", Variants: baremetalVariants},
			},
		},
		{
			Name:     "newlib",
			Variants: baremetalVariants,
		},
		{
			Name:     "compiler-rt-builtins",
			Variants: baremetalVariants,
		},
		{
			Name:     "bbl",
			Variants: []domain.CrossTarget{domain.CrossBaremetalRISCV64, domain.CrossBaremetalRISCV64Purecap},
		},
		{
			Name:       "syzkaller",
			Variants:   []domain.CrossTarget{domain.CrossMIPS64Purecap, domain.CrossRISCV64Purecap},
			CrossBuild: true,
			Dependencies: []domain.DependencyRef{
				{Name: "go"},
			},
		},
	}
}
