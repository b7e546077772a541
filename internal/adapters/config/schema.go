package config

// ProjectsFile represents the structure of a projects YAML file. The file
// extends the built-in project table with additional descriptors.
type ProjectsFile struct {
	Version  string       `yaml:"version"`
	Projects []ProjectDTO `yaml:"projects"`
}

// ProjectDTO represents one project definition in the configuration.
type ProjectDTO struct {
	Name                  string          `yaml:"name"`
	Kind                  string          `yaml:"kind"`
	Variants              []string        `yaml:"variants"`
	Default               string          `yaml:"default"`
	CrossBuild            bool            `yaml:"crossBuild"`
	NeedsNativeBuild      bool            `yaml:"needsNativeBuild"`
	SDKProvided           bool            `yaml:"sdkProvided"`
	NativeIsToolchain     bool            `yaml:"nativeIsToolchain"`
	AlwaysExpandDeps      bool            `yaml:"alwaysExpandDeps"`
	SuppressToolchainDeps bool            `yaml:"suppressToolchainDeps"`
	DependsOn             []DependencyDTO `yaml:"dependsOn"`
	Aliases               []AliasDTO      `yaml:"aliases"`
}

// DependencyDTO represents one dependency edge in the configuration.
type DependencyDTO struct {
	Target string `yaml:"target"`
	// When selects the edge activation: "always" (default), "toolchain",
	// or "from-source".
	When string `yaml:"when"`
	// OnlyFor restricts the edge to the listed requesting variants.
	OnlyFor []string `yaml:"onlyFor"`
}

// AliasDTO represents a shorthand name for a concrete target.
type AliasDTO struct {
	Name   string `yaml:"name"`
	Target string `yaml:"target"`
}
