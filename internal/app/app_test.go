package app_test

import (
	"errors"
	"testing"

	"go.trai.ch/crossbuild/internal/app"
	"go.trai.ch/crossbuild/internal/core/domain"
	"go.trai.ch/crossbuild/internal/core/ports/mocks"
	"go.trai.ch/crossbuild/internal/projects"
	"go.trai.ch/crossbuild/internal/registry"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T, source *mocks.MockDescriptorSource, log *mocks.MockLogger) *app.App {
	t.Helper()
	manager, err := registry.NewManager(projects.Builtin())
	if err != nil {
		t.Fatalf("Failed to build manager: %v", err)
	}
	return app.New(manager, source, log)
}

func TestApp_Order(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockDescriptorSource(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any())

	a := newTestApp(t, mockSource, mockLogger)

	order, err := a.Order([]string{"freestanding-sdk"}, domain.DefaultPolicy(), "")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	want := []string{"llvm-native", "qemu", "gdb-native", "freestanding-sdk"}
	if len(order) != len(want) {
		t.Fatalf("Expected %d targets, got %d", len(want), len(order))
	}
	for i, name := range want {
		if order[i].Name() != name {
			t.Errorf("order[%d] = %s, want %s", i, order[i].Name(), name)
		}
	}
}

func TestApp_Order_NoTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newTestApp(t, mocks.NewMockDescriptorSource(ctrl), mocks.NewMockLogger(ctrl))

	_, err := a.Order(nil, domain.DefaultPolicy(), "")
	if !errors.Is(err, domain.ErrNoTargetsSpecified) {
		t.Errorf("Expected ErrNoTargetsSpecified, got: %v", err)
	}
}

func TestApp_Order_ProjectsFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockDescriptorSource(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any())

	extra := []domain.Descriptor{{
		Name:         "my-tool",
		Dependencies: []domain.DependencyRef{{Name: "llvm-native"}},
	}}
	mockSource.EXPECT().Load("projects.yaml").Return(extra, nil)

	a := newTestApp(t, mockSource, mockLogger)

	policy := domain.DefaultPolicy()
	policy.IncludeDependencies = true
	order, err := a.Order([]string{"my-tool"}, policy, "projects.yaml")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	want := []string{"llvm-native", "my-tool"}
	if len(order) != len(want) {
		t.Fatalf("Expected %d targets, got %d", len(want), len(order))
	}
	for i, name := range want {
		if order[i].Name() != name {
			t.Errorf("order[%d] = %s, want %s", i, order[i].Name(), name)
		}
	}
}

func TestApp_Order_ProjectsFileError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockDescriptorSource(ctrl)
	loadErr := errors.New("no such file")
	mockSource.EXPECT().Load("missing.yaml").Return(nil, loadErr)

	a := newTestApp(t, mockSource, mocks.NewMockLogger(ctrl))

	_, err := a.Order([]string{"qemu"}, domain.DefaultPolicy(), "missing.yaml")
	if !errors.Is(err, loadErr) {
		t.Errorf("Expected wrapped load error, got: %v", err)
	}
}

func TestApp_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newTestApp(t, mocks.NewMockDescriptorSource(ctrl), mocks.NewMockLogger(ctrl))

	target, err := a.Resolve("binutils", "")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if target.Name() != "llvm-native" {
		t.Errorf("Resolve(binutils) = %s, want llvm-native", target.Name())
	}
}

func TestApp_Targets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newTestApp(t, mocks.NewMockDescriptorSource(ctrl), mocks.NewMockLogger(ctrl))

	targets, err := a.Targets("")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(targets) == 0 {
		t.Fatal("Expected a non-empty target listing")
	}

	seen := make(map[string]bool, len(targets))
	for _, target := range targets {
		if seen[target.Name()] {
			t.Errorf("Duplicate target in listing: %s", target.Name())
		}
		seen[target.Name()] = true
	}
	for _, name := range []string{"qemu", "llvm-native", "run-mips64-hybrid"} {
		if !seen[name] {
			t.Errorf("Expected %s in target listing", name)
		}
	}
}
