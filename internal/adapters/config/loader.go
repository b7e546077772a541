// Package config provides the YAML project descriptor loader.
package config

import (
	"os"

	"go.trai.ch/crossbuild/internal/core/domain"
	"go.trai.ch/crossbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileDescriptorSource implements ports.DescriptorSource using a YAML file.
type FileDescriptorSource struct {
	log ports.Logger
}

// NewLoader creates a descriptor source reading from YAML project files.
func NewLoader(log ports.Logger) *FileDescriptorSource {
	return &FileDescriptorSource{log: log}
}

// Load reads project descriptors from the file at path.
func (l *FileDescriptorSource) Load(path string) ([]domain.Descriptor, error) {
	descriptors, err := Load(path)
	if err != nil {
		return nil, err
	}
	l.log.Info("loaded project definitions from " + path)
	return descriptors, nil
}

// Load reads a projects file from the given path and returns the descriptors
// it defines.
func Load(path string) ([]domain.Descriptor, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read projects file")
	}

	var file ProjectsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse projects file")
	}

	descriptors := make([]domain.Descriptor, 0, len(file.Projects))
	for _, dto := range file.Projects {
		desc, err := buildDescriptor(dto)
		if err != nil {
			return nil, zerr.With(err, "project", dto.Name)
		}
		descriptors = append(descriptors, desc)
	}
	return descriptors, nil
}

func buildDescriptor(dto ProjectDTO) (domain.Descriptor, error) {
	if dto.Name == "" {
		return domain.Descriptor{}, zerr.New("project name is required")
	}

	kind, err := parseKind(dto.Kind)
	if err != nil {
		return domain.Descriptor{}, err
	}

	variants, err := parseVariants(dto.Variants)
	if err != nil {
		return domain.Descriptor{}, err
	}

	var defaultVariant domain.CrossTarget
	if dto.Default != "" {
		defaultVariant, err = domain.ParseCrossTarget(dto.Default)
		if err != nil {
			return domain.Descriptor{}, err
		}
	}

	deps := make([]domain.DependencyRef, 0, len(dto.DependsOn))
	for _, d := range dto.DependsOn {
		ref, err := buildDependency(d)
		if err != nil {
			return domain.Descriptor{}, err
		}
		deps = append(deps, ref)
	}

	aliases := make([]domain.Alias, 0, len(dto.Aliases))
	for _, a := range dto.Aliases {
		if a.Name == "" || a.Target == "" {
			return domain.Descriptor{}, zerr.New("alias needs both name and target")
		}
		aliases = append(aliases, domain.Alias{Name: a.Name, Target: a.Target})
	}

	return domain.Descriptor{
		Name:                  dto.Name,
		Variants:              variants,
		DefaultVariant:        defaultVariant,
		Dependencies:          deps,
		Kind:                  kind,
		CrossBuild:            dto.CrossBuild,
		NeedsNativeBuild:      dto.NeedsNativeBuild,
		SDKProvided:           dto.SDKProvided,
		NativeIsToolchain:     dto.NativeIsToolchain,
		AlwaysExpandDeps:      dto.AlwaysExpandDeps,
		SuppressToolchainDeps: dto.SuppressToolchainDeps,
		Aliases:               aliases,
	}, nil
}

func buildDependency(dto DependencyDTO) (domain.DependencyRef, error) {
	if dto.Target == "" {
		return domain.DependencyRef{}, zerr.New("dependency target is required")
	}

	activation, err := parseActivation(dto.When)
	if err != nil {
		return domain.DependencyRef{}, zerr.With(err, "dependency", dto.Target)
	}

	only, err := parseVariants(dto.OnlyFor)
	if err != nil {
		return domain.DependencyRef{}, zerr.With(err, "dependency", dto.Target)
	}

	return domain.DependencyRef{
		Name:       dto.Target,
		Activation: activation,
		Variants:   only,
	}, nil
}

func parseVariants(ids []string) ([]domain.CrossTarget, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	variants := make([]domain.CrossTarget, 0, len(ids))
	for _, id := range ids {
		ct, err := domain.ParseCrossTarget(id)
		if err != nil {
			return nil, err
		}
		variants = append(variants, ct)
	}
	return variants, nil
}

func parseKind(s string) (domain.Kind, error) {
	switch s {
	case "", "project":
		return domain.KindOther, nil
	case "toolchain":
		return domain.KindToolchain, nil
	case "sdk":
		return domain.KindSDK, nil
	case "os":
		return domain.KindOS, nil
	case "disk-image":
		return domain.KindDiskImage, nil
	case "run":
		return domain.KindRun, nil
	default:
		return domain.KindOther, zerr.With(zerr.New("unknown project kind"), "kind", s)
	}
}

func parseActivation(s string) (domain.Activation, error) {
	switch s {
	case "", "always":
		return domain.ActivationAlways, nil
	case "toolchain":
		return domain.ActivationToolchain, nil
	case "from-source":
		return domain.ActivationFromSource, nil
	default:
		return domain.ActivationAlways, zerr.With(zerr.New("unknown dependency activation"), "when", s)
	}
}
