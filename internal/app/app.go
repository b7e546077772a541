// Package app implements the application layer for crossbuild.
package app

import (
	"fmt"

	"go.trai.ch/crossbuild/internal/core/domain"
	"go.trai.ch/crossbuild/internal/core/ports"
	"go.trai.ch/crossbuild/internal/projects"
	"go.trai.ch/crossbuild/internal/registry"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	manager *registry.Manager
	source  ports.DescriptorSource
	log     ports.Logger
}

// New creates a new App instance. The manager holds the built-in project
// table; source loads additional project definitions from YAML files.
func New(manager *registry.Manager, source ports.DescriptorSource, log ports.Logger) *App {
	return &App{
		manager: manager,
		source:  source,
		log:     log,
	}
}

// Order computes the full build order for the requested targets under the
// given policy. projectsFile, when non-empty, extends the built-in project
// table before resolution.
func (a *App) Order(names []string, policy domain.Policy, projectsFile string) ([]*domain.Target, error) {
	if len(names) == 0 {
		return nil, domain.ErrNoTargetsSpecified
	}

	mgr, err := a.managerFor(projectsFile)
	if err != nil {
		return nil, err
	}
	mgr.Reset()

	order, err := mgr.ComputeBuildOrder(names, policy)
	if err != nil {
		return nil, err
	}
	a.log.Info(fmt.Sprintf("scheduled %d targets", len(order)))
	return order, nil
}

// Resolve maps a single requested name to its concrete target.
func (a *App) Resolve(name, projectsFile string) (*domain.Target, error) {
	mgr, err := a.managerFor(projectsFile)
	if err != nil {
		return nil, err
	}
	return mgr.GetTarget(name)
}

// Targets lists every known target in registration order.
func (a *App) Targets(projectsFile string) ([]*domain.Target, error) {
	mgr, err := a.managerFor(projectsFile)
	if err != nil {
		return nil, err
	}
	return mgr.Registry().Targets(), nil
}

// managerFor returns the shared manager, or a fresh one including the
// descriptors loaded from projectsFile.
func (a *App) managerFor(projectsFile string) (*registry.Manager, error) {
	if projectsFile == "" {
		return a.manager, nil
	}

	extra, err := a.source.Load(projectsFile)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load project definitions")
	}
	return registry.NewManager(append(projects.Builtin(), extra...))
}
