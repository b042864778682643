// Package app implements the application layer for moditems.
package app

import (
	"context"
	"reflect"
	"strings"
	"time"

	"go.trai.ch/moditems/internal/adapters/watcher"
	"go.trai.ch/moditems/internal/core/domain"
	"go.trai.ch/moditems/internal/core/ports"
	"go.trai.ch/moditems/internal/core/statgraph"
	"go.trai.ch/moditems/internal/engine/applicator"
	"go.trai.ch/moditems/internal/engine/statcache"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
// It owns the stat index cache; nothing else holds one.
type App struct {
	catalog        ports.DefinitionCatalog
	defLoader      ports.DefinitionLoader
	worldLoader    ports.WorldLoader
	indexer        ports.Indexer
	cache          *statcache.Cache
	applicator     *applicator.Applicator
	watcher        ports.Watcher
	tracer         ports.Tracer
	logger         ports.Logger
	debounceWindow time.Duration
}

// New creates a new App instance.
func New(
	catalog ports.DefinitionCatalog,
	defLoader ports.DefinitionLoader,
	worldLoader ports.WorldLoader,
	indexer ports.Indexer,
	cache *statcache.Cache,
	apply *applicator.Applicator,
	w ports.Watcher,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		catalog:        catalog,
		defLoader:      defLoader,
		worldLoader:    worldLoader,
		indexer:        indexer,
		cache:          cache,
		applicator:     apply,
		watcher:        w,
		tracer:         tracer,
		logger:         log,
		debounceWindow: watcher.DefaultDebounceWindow,
	}
}

// WithDebounceWindow sets how long Watch waits for changes to settle before reloading.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.debounceWindow = d
	return a
}

// LoadOptions configuration for the Load method.
type LoadOptions struct {
	DefinitionsDir string
	WorldPath      string
}

// Load reads definitions and the world file concurrently. Either may be empty.
// The returned world is nil when no world path was given. Its freed stats roots are
// released from the cache.
func (a *App) Load(ctx context.Context, opts LoadOptions) (ports.World, error) {
	_, span := a.tracer.Start(ctx, "moditems.load")
	defer span.End()

	var (
		g     errgroup.Group
		world ports.World
	)

	if opts.DefinitionsDir != "" {
		g.Go(func() error {
			return a.LoadDefinitions(opts.DefinitionsDir)
		})
	}

	if opts.WorldPath != "" {
		g.Go(func() error {
			w, err := a.worldLoader.Load(opts.WorldPath)
			if err != nil {
				return zerr.Wrap(err, "failed to load world")
			}
			world = w
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	if world != nil {
		world.OnRootFreed(a.cache.Release)
		span.SetAttribute("entities", len(world.Names()))
	}

	return world, nil
}

// LoadDefinitions replaces the registered definitions with the contents of dir.
// On error the previous definitions stay registered.
func (a *App) LoadDefinitions(dir string) error {
	defs, err := a.defLoader.Load(dir)
	if err != nil {
		return zerr.Wrap(err, "failed to load definitions")
	}

	a.catalog.Replace(defs)
	a.logger.Info("loaded definitions", "dir", dir, "count", len(defs))
	return nil
}

// ApplyItem applies the definition registered for identifier to target.
//
// Identifiers outside the mod namespace are declined with NotHandled. Every mod identifier is
// Handled: a missing target, an unknown definition or a target without a stats root aborts the
// call with nothing mutated, and the reason is reported in the result rather than as an error.
func (a *App) ApplyItem(ctx context.Context, identifier string, target ports.Entity) domain.ApplyResult {
	if !domain.IsModIdentifier(identifier) {
		return domain.ApplyResult{Disposition: domain.NotHandled}
	}

	_, span := a.tracer.Start(ctx, "moditems.apply")
	defer span.End()
	span.SetAttribute("item", identifier)

	absent := missing(target)
	var name string
	if !absent {
		name = target.Name()
	}
	a.logger.Info("applying item", "item", identifier, "target", name)

	if absent {
		return a.abort(span, domain.ErrMissingTarget, "item", identifier)
	}
	span.SetAttribute("target", name)

	def, ok := a.catalog.Lookup(identifier)
	if !ok {
		return a.abort(span, domain.ErrUnknownDefinition, "item", identifier, "target", name)
	}

	root, ok := target.StatsRoot()
	if !ok {
		return a.abort(span, domain.ErrMissingStatsRoot, "item", def.ID, "target", name)
	}

	outcome := a.applicator.ApplyAll(def, a.cache.GetOrBuild(root))

	span.SetAttribute("applied", outcome.Applied)
	span.SetAttribute("skipped", outcome.Skipped)
	a.logger.Info("applied item",
		"item", def.ID,
		"target", name,
		"applied", outcome.Applied,
		"skipped", outcome.SkippedCount(),
	)

	return domain.ApplyResult{Disposition: domain.Handled, Outcome: outcome}
}

func (a *App) abort(span ports.Span, reason error, args ...any) domain.ApplyResult {
	a.logger.Warn(reason.Error(), args...)
	span.RecordError(reason)
	return domain.ApplyResult{Disposition: domain.Handled, Reason: reason}
}

// missing reports whether target is absent, including a nil pointer stored in the interface.
func missing(target ports.Entity) bool {
	if target == nil {
		return true
	}
	v := reflect.ValueOf(target)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// Definition returns the definition registered for identifier.
func (a *App) Definition(identifier string) (domain.ItemDefinition, bool) {
	if !domain.IsModIdentifier(identifier) {
		return domain.ItemDefinition{}, false
	}
	return a.catalog.Lookup(identifier)
}

// Definitions returns the registered identifiers in sorted order.
func (a *App) Definitions() []string {
	return a.catalog.IDs()
}

// Present returns how the host should show identifier.
// base is returned unchanged when no definition is registered for it.
func (a *App) Present(identifier string, base domain.Presentation) domain.Presentation {
	def, ok := a.Definition(identifier)
	if !ok {
		return base
	}
	return def.Present(base)
}

// Inspection is the index of one entity together with the per-member build report.
type Inspection struct {
	Entity string
	Handle domain.RootHandle
	// Cached reports whether the cache already held an index for the root.
	Cached bool
	Index  *statgraph.Index
	Report statgraph.Report
}

// Inspect traverses target's stats root and reports every member decision.
// The traversal does not touch the cache.
func (a *App) Inspect(target ports.Entity) (Inspection, error) {
	if missing(target) {
		return Inspection{}, domain.ErrMissingTarget
	}

	root, ok := target.StatsRoot()
	if !ok {
		return Inspection{}, zerr.With(domain.ErrMissingStatsRoot, "target", target.Name())
	}

	_, cached := a.cache.Get(root.Handle)
	index, report := a.indexer.Build(root.Node)

	return Inspection{
		Entity: target.Name(),
		Handle: root.Handle,
		Cached: cached,
		Index:  index,
		Report: report,
	}, nil
}

// Watch reloads definitions from dir whenever a definition file changes, until ctx is done
// or the watcher stops. Changes are batched over the debounce window. A reload that fails
// is logged and the previous definitions stay registered.
func (a *App) Watch(ctx context.Context, dir string) error {
	if err := a.watcher.Start(ctx, dir); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	a.logger.Info("watching definitions", "dir", dir)

	debouncer := watcher.NewDebouncer(a.debounceWindow, func(paths []string) {
		a.reload(dir, paths)
	})
	defer debouncer.Stop()

	for event := range a.watcher.Events() {
		debouncer.Add(event.Path)
	}
	debouncer.Flush()

	return nil
}

func (a *App) reload(dir string, changed []string) {
	defs, err := a.defLoader.Load(dir)
	if err != nil {
		a.logger.Error(zerr.With(zerr.Wrap(err, "reload failed, keeping previous definitions"),
			"changed", strings.Join(changed, ", ")))
		return
	}

	a.catalog.Replace(defs)
	a.logger.Info("reloaded definitions", "count", len(defs), "changed", len(changed))
}

// CachedRoots returns the number of stats roots with a cached index.
func (a *App) CachedRoots() int {
	return a.cache.Len()
}

// Reset drops every cached index.
func (a *App) Reset() {
	a.cache.Reset()
}
