package expander_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.trai.ch/crossbuild/internal/core/domain"
	"go.trai.ch/crossbuild/internal/engine/expander"
	"go.trai.ch/crossbuild/internal/registry"
	"go.trai.ch/zerr"
)

func newExpander(t *testing.T, descriptors []domain.Descriptor, policy domain.Policy) (*expander.Expander, *registry.Registry) {
	t.Helper()
	reg, err := registry.New(descriptors)
	if err != nil {
		t.Fatalf("Failed to populate registry: %v", err)
	}
	exp, err := expander.New(reg, expander.NewSession(policy), policy)
	if err != nil {
		t.Fatalf("Failed to create expander: %v", err)
	}
	return exp, reg
}

func get(t *testing.T, reg *registry.Registry, name string) *domain.Target {
	t.Helper()
	target, ok := reg.Target(name)
	if !ok {
		t.Fatalf("Target %q not in registry", name)
	}
	return target
}

func names(targets []*domain.Target) []string {
	out := make([]string, len(targets))
	for i, target := range targets {
		out[i] = target.Name()
	}
	return out
}

func TestExpand_CycleDetection(t *testing.T) {
	descriptors := []domain.Descriptor{
		{Name: "a", Dependencies: []domain.DependencyRef{{Name: "b"}}},
		{Name: "b", Dependencies: []domain.DependencyRef{{Name: "a"}}},
	}
	exp, reg := newExpander(t, descriptors, domain.DefaultPolicy())

	_, err := exp.Expand([]*domain.Target{get(t, reg, "a")})
	if !errors.Is(err, domain.ErrCyclicDependency) {
		t.Fatalf("Expected ErrCyclicDependency, got: %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T: %v", err, err)
	}
	cycle, ok := zErr.Metadata()["cycle"]
	if !ok || !strings.Contains(fmt.Sprint(cycle), "->") {
		t.Errorf("Expected cycle path in metadata, got: %v", cycle)
	}
}

func TestExpand_SelfCycle(t *testing.T) {
	descriptors := []domain.Descriptor{
		{Name: "a", Dependencies: []domain.DependencyRef{{Name: "a"}}},
	}
	exp, reg := newExpander(t, descriptors, domain.DefaultPolicy())

	_, err := exp.Expand([]*domain.Target{get(t, reg, "a")})
	if !errors.Is(err, domain.ErrCyclicDependency) {
		t.Fatalf("Expected ErrCyclicDependency, got: %v", err)
	}
}

func TestExpand_UnknownDependency(t *testing.T) {
	descriptors := []domain.Descriptor{
		{Name: "a", Dependencies: []domain.DependencyRef{{Name: "missing"}}},
	}
	exp, reg := newExpander(t, descriptors, domain.DefaultPolicy())

	_, err := exp.Expand([]*domain.Target{get(t, reg, "a")})
	if !errors.Is(err, domain.ErrUnknownTarget) {
		t.Fatalf("Expected ErrUnknownTarget, got: %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T: %v", err, err)
	}
	if _, ok := zErr.Metadata()["required_by"]; !ok {
		t.Error("Expected required_by in error metadata")
	}
}

// A dependency on a known project that has no build for the requesting
// variant is silently dropped, not an error.
func TestExpand_MissingVariantDropped(t *testing.T) {
	descriptors := []domain.Descriptor{
		{
			Name:     "lib",
			Variants: []domain.CrossTarget{domain.CrossNative},
		},
		{
			Name:         "consumer",
			Variants:     []domain.CrossTarget{domain.CrossNative, domain.CrossMIPS64},
			Dependencies: []domain.DependencyRef{{Name: "lib"}},
		},
	}
	policy := domain.Policy{IncludeDependencies: true, IncludeToolchainDependencies: true}
	exp, reg := newExpander(t, descriptors, policy)

	expanded, err := exp.Expand([]*domain.Target{get(t, reg, "consumer-mips64")})
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	got := names(expanded)
	if len(got) != 1 || got[0] != "consumer-mips64" {
		t.Errorf("Expected the dropped edge to leave only the requested target, got: %v", got)
	}
}

// Dependency templates resolve variant-relative before falling back to the
// exact name or the default variant.
func TestExpand_VariantRelativeResolution(t *testing.T) {
	descriptors := []domain.Descriptor{
		{
			Name:           "lib",
			Variants:       []domain.CrossTarget{domain.CrossNative, domain.CrossMIPS64},
			DefaultVariant: domain.CrossNative,
		},
		{
			Name:         "consumer",
			Variants:     []domain.CrossTarget{domain.CrossNative, domain.CrossMIPS64},
			Dependencies: []domain.DependencyRef{{Name: "lib"}},
		},
	}
	policy := domain.Policy{IncludeDependencies: true, IncludeToolchainDependencies: true}
	exp, reg := newExpander(t, descriptors, policy)

	expanded, err := exp.Expand([]*domain.Target{get(t, reg, "consumer-mips64")})
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	got := names(expanded)
	want := []string{"consumer-mips64", "lib-mips64"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Expand = %v, want %v", got, want)
	}
}

func TestExpand_RequestedBypassesFilters(t *testing.T) {
	descriptors := []domain.Descriptor{
		{Name: "qemu", Kind: domain.KindToolchain},
	}
	policy := domain.Policy{IncludeDependencies: true, SkipSDK: true}
	exp, reg := newExpander(t, descriptors, policy)

	expanded, err := exp.Expand([]*domain.Target{get(t, reg, "qemu")})
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if len(expanded) != 1 || expanded[0].Name() != "qemu" {
		t.Errorf("Explicitly requested toolchain target must survive, got: %v", names(expanded))
	}
}

func TestNew_PolicyMismatch(t *testing.T) {
	reg, err := registry.New(nil)
	if err != nil {
		t.Fatalf("Failed to populate registry: %v", err)
	}
	session := expander.NewSession(domain.DefaultPolicy())

	other := domain.Policy{IncludeDependencies: true}
	if _, err := expander.New(reg, session, other); !errors.Is(err, domain.ErrPolicyMismatch) {
		t.Fatalf("Expected ErrPolicyMismatch, got: %v", err)
	}
}
