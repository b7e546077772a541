package output_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"go.trai.ch/crossbuild/internal/core/domain"
	"go.trai.ch/crossbuild/internal/ui/output"
)

func TestPrinter_BuildOrder(t *testing.T) {
	color.NoColor = true

	qemu := domain.NewTarget(&domain.Descriptor{Name: "qemu", Kind: domain.KindToolchain}, domain.CrossNone)
	llvm := domain.NewTarget(&domain.Descriptor{Name: "llvm"}, domain.CrossNative)

	var buf bytes.Buffer
	output.NewPrinter(&buf).BuildOrder([]*domain.Target{llvm, qemu})

	got := buf.String()
	want := "  1. llvm-native\n  2. qemu\n"
	if got != want {
		t.Errorf("BuildOrder output = %q, want %q", got, want)
	}
}

func TestPrinter_Listing(t *testing.T) {
	color.NoColor = true

	targets := []*domain.Target{
		domain.NewTarget(&domain.Descriptor{Name: "qemu", Kind: domain.KindToolchain}, domain.CrossNone),
		domain.NewTarget(&domain.Descriptor{Name: "run", Kind: domain.KindRun}, domain.CrossMIPS64Hybrid),
	}

	var buf bytes.Buffer
	output.NewPrinter(&buf).Listing(targets)

	got := buf.String()
	if !strings.Contains(got, "qemu (toolchain)") {
		t.Errorf("expected kind annotation for qemu, got: %s", got)
	}
	if !strings.Contains(got, "run-mips64-hybrid (run)") {
		t.Errorf("expected kind annotation for run target, got: %s", got)
	}
}
