// Package output renders resolution results for the terminal.
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"go.trai.ch/crossbuild/internal/core/domain"
)

// Printer writes target listings and build orders to a writer. Colors are
// disabled automatically when the writer is not a terminal.
type Printer struct {
	out io.Writer

	position func(format string, a ...any) string
	kind     func(format string, a ...any) string
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		out:      w,
		position: color.New(color.FgGreen, color.Bold).SprintfFunc(),
		kind:     color.New(color.FgYellow).SprintfFunc(),
	}
}

// BuildOrder prints the scheduled targets, one per line, in build order.
func (p *Printer) BuildOrder(targets []*domain.Target) {
	for i, t := range targets {
		fmt.Fprintf(p.out, "%s %s\n", p.position("%3d.", i+1), t.Name())
	}
}

// Target prints a single resolved target with its scheduling class.
func (p *Printer) Target(t *domain.Target) {
	fmt.Fprintf(p.out, "%s %s\n", t.Name(), p.kind("(%s)", t.Kind()))
}

// Listing prints all known targets with their scheduling classes.
func (p *Printer) Listing(targets []*domain.Target) {
	for _, t := range targets {
		p.Target(t)
	}
}
