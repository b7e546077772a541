package commands_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"go.trai.ch/crossbuild/cmd/crossbuild/commands"
	"go.trai.ch/crossbuild/internal/adapters/config"
	"go.trai.ch/crossbuild/internal/adapters/logger"
	"go.trai.ch/crossbuild/internal/app"
	"go.trai.ch/crossbuild/internal/core/domain"
	"go.trai.ch/crossbuild/internal/projects"
	"go.trai.ch/crossbuild/internal/registry"
)

func newCLI(t *testing.T) (*commands.CLI, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true

	manager, err := registry.NewManager(projects.Builtin())
	if err != nil {
		t.Fatalf("Failed to build manager: %v", err)
	}
	log := logger.New()
	log.SetOutput(new(bytes.Buffer))

	cli := commands.New(app.New(manager, config.NewLoader(log), log))
	var out bytes.Buffer
	cli.SetOutput(&out)
	return cli, &out
}

func TestOrder_SDKBundle(t *testing.T) {
	cli, out := newCLI(t)

	cli.SetArgs([]string{"order", "freestanding-sdk"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	want := "  1. llvm-native\n  2. qemu\n  3. gdb-native\n  4. freestanding-sdk\n"
	if out.String() != want {
		t.Errorf("order output = %q, want %q", out.String(), want)
	}
}

func TestOrder_DepsFlag(t *testing.T) {
	cli, out := newCLI(t)

	cli.SetArgs([]string{"order", "--deps", "--skip-sdk", "run-riscv64"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	want := "  1. disk-image-riscv64\n  2. run-riscv64\n"
	if out.String() != want {
		t.Errorf("order output = %q, want %q", out.String(), want)
	}
}

func TestOrder_NoTargets(t *testing.T) {
	cli, out := newCLI(t)

	cli.SetArgs([]string{"order"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected help display without error, got: %v", err)
	}
	if !strings.Contains(out.String(), "order [targets...]") {
		t.Errorf("Expected usage help, got: %s", out.String())
	}
}

func TestOrder_UnknownTarget(t *testing.T) {
	cli, _ := newCLI(t)

	cli.SetArgs([]string{"order", "no-such-project"})
	err := cli.Execute(context.Background())
	if !errors.Is(err, domain.ErrUnknownTarget) {
		t.Errorf("Expected ErrUnknownTarget, got: %v", err)
	}
}

func TestOrder_ProjectsFile(t *testing.T) {
	cli, out := newCLI(t)

	path := filepath.Join(t.TempDir(), "projects.yaml")
	content := `version: "1"
projects:
  - name: my-tool
    dependsOn:
      - target: llvm-native
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write projects file: %v", err)
	}

	cli.SetArgs([]string{"order", "--deps", "-p", path, "my-tool"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	want := "  1. llvm-native\n  2. my-tool\n"
	if out.String() != want {
		t.Errorf("order output = %q, want %q", out.String(), want)
	}
}

func TestResolve(t *testing.T) {
	cli, out := newCLI(t)

	cli.SetArgs([]string{"resolve", "binutils", "libcxx-mips-nocheri"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !strings.Contains(out.String(), "llvm-native (toolchain)") {
		t.Errorf("Expected resolved alias in output, got: %s", out.String())
	}
	if !strings.Contains(out.String(), "libcxx-mips64") {
		t.Errorf("Expected legacy suffix resolution in output, got: %s", out.String())
	}
}

func TestResolve_Ambiguous(t *testing.T) {
	cli, _ := newCLI(t)

	cli.SetArgs([]string{"resolve", "cheribsd"})
	err := cli.Execute(context.Background())
	if !errors.Is(err, domain.ErrAmbiguousAlias) {
		t.Errorf("Expected ErrAmbiguousAlias, got: %v", err)
	}
}

func TestTargets(t *testing.T) {
	cli, out := newCLI(t)

	cli.SetArgs([]string{"targets"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	for _, want := range []string{"qemu (toolchain)", "cheribsd-sdk-mips64-purecap (sdk)", "run-mips64-hybrid (run)"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected %q in targets listing", want)
		}
	}
}

func TestVersion(t *testing.T) {
	cli, out := newCLI(t)

	cli.SetArgs([]string{"version"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !strings.Contains(out.String(), "dev") {
		t.Errorf("Expected version output, got: %s", out.String())
	}
}
