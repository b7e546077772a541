package projects_test

import (
	"testing"

	"go.trai.ch/crossbuild/internal/core/domain"
	"go.trai.ch/crossbuild/internal/projects"
	"go.trai.ch/crossbuild/internal/registry"
)

func TestBuiltin_Populates(t *testing.T) {
	reg, err := registry.New(projects.Builtin())
	if err != nil {
		t.Fatalf("Built-in table failed to populate: %v", err)
	}
	if len(reg.Targets()) == 0 {
		t.Fatal("Expected a non-empty built-in target table")
	}
}

// Every declared dependency template must resolve for every variant of every
// built-in project. Run under the most permissive policy so that from-source
// edges are walked too.
func TestBuiltin_AllDependenciesResolvable(t *testing.T) {
	mgr, err := registry.NewManager(projects.Builtin())
	if err != nil {
		t.Fatalf("Failed to build manager: %v", err)
	}
	policy := domain.Policy{
		IncludeDependencies:          true,
		IncludeToolchainDependencies: true,
		BuildMorelloFromSource:       true,
	}

	for _, target := range mgr.Registry().Targets() {
		if _, err := mgr.ComputeBuildOrder([]string{target.Name()}, policy); err != nil {
			t.Errorf("ComputeBuildOrder(%s) failed: %v", target.Name(), err)
		}
	}
}

func TestBuiltin_FreshDescriptors(t *testing.T) {
	first := projects.Builtin()
	second := projects.Builtin()
	if &first[0] == &second[0] {
		t.Fatal("Builtin must return fresh descriptor storage on every call")
	}
}
