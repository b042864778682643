package app_test

import (
	"context"
	"errors"
	"iter"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/moditems/internal/adapters/host"
	"go.trai.ch/moditems/internal/adapters/registry"
	"go.trai.ch/moditems/internal/adapters/telemetry"
	"go.trai.ch/moditems/internal/app"
	"go.trai.ch/moditems/internal/core/domain"
	"go.trai.ch/moditems/internal/core/ports"
	"go.trai.ch/moditems/internal/core/ports/mocks"
	"go.trai.ch/moditems/internal/core/statgraph"
	"go.trai.ch/moditems/internal/engine/applicator"
	"go.trai.ch/moditems/internal/engine/indexer"
	"go.trai.ch/moditems/internal/engine/statcache"
	"go.uber.org/mock/gomock"
)

var amulet = domain.ItemDefinition{
	ID:    "mod:amulet",
	Title: "Amulet of Vigor",
	Cost:  25,
	StatMods: []domain.ModifierSpec{
		{Key: "hp", Value: 10, Kind: domain.KindFlat},
		{Key: "luck", Value: 1, Kind: domain.KindFlat},
		{Key: "mp", Value: 0.5, Kind: domain.KindPercentAdd, Origin: 7},
	},
}

type fixture struct {
	app         *app.App
	catalog     *registry.Registry
	defLoader   *mocks.MockDefinitionLoader
	worldLoader *mocks.MockWorldLoader
	watcher     *mocks.MockWatcher
	logger      *mocks.MockLogger
	indexer     *indexer.Indexer
}

func newFixture(t *testing.T, tracer ports.Tracer) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		catalog:     registry.NewRegistry(amulet),
		defLoader:   mocks.NewMockDefinitionLoader(ctrl),
		worldLoader: mocks.NewMockWorldLoader(ctrl),
		watcher:     mocks.NewMockWatcher(ctrl),
		logger:      mocks.NewMockLogger(ctrl),
		indexer:     indexer.New(),
	}
	if tracer == nil {
		tracer = telemetry.NewNoOpTracer()
	}

	f.app = app.New(
		f.catalog,
		f.defLoader,
		f.worldLoader,
		f.indexer,
		statcache.New(f.indexer),
		applicator.New(f.logger),
		f.watcher,
		tracer,
		f.logger,
	)
	return f
}

type hero struct {
	world *host.World
	hp    *host.Stat
	mp    *host.Stat
}

func newHero(t *testing.T) hero {
	t.Helper()
	h := hero{world: host.NewWorld(), hp: host.NewStat(100), mp: host.NewStat(50)}

	resources := host.NewObject().Field("mp", statgraph.Attr(h.mp))
	root := host.NewObject().
		Field("hp", statgraph.Attr(h.hp)).
		Field("name", statgraph.Text()).
		Field("resources", resources.Value())

	_, err := h.world.Spawn("hero", root)
	require.NoError(t, err)
	_, err = h.world.Spawn("rock", nil)
	require.NoError(t, err)
	return h
}

func (h hero) entity(t *testing.T, name string) ports.Entity {
	t.Helper()
	e, ok := h.world.Entity(name)
	require.True(t, ok)
	return e
}

func TestApp_ApplyItem(t *testing.T) {
	f := newFixture(t, nil)
	h := newHero(t)

	f.logger.EXPECT().Info("applying item", "item", "mod:amulet", "target", "hero")
	f.logger.EXPECT().Warn(domain.ErrStatNotFound.Error(), "item", "mod:amulet", "stat", "luck")
	f.logger.EXPECT().Info("applied item",
		"item", "mod:amulet", "target", "hero", "applied", 2, "skipped", 1)

	res := f.app.ApplyItem(t.Context(), "mod:amulet", h.entity(t, "hero"))

	assert.Equal(t, domain.Handled, res.Disposition)
	assert.False(t, res.Aborted())
	assert.Equal(t, 2, res.Outcome.Applied)
	assert.Equal(t, []string{"luck"}, res.Outcome.Skipped)

	assert.Equal(t, []domain.StatModifier{{Value: 10, Type: domain.StatFlat, Origin: domain.ModOrigin}}, h.hp.Modifiers())
	assert.Equal(t, []domain.StatModifier{{Value: 0.5, Type: domain.StatPercentAdd, Origin: 7}}, h.mp.Modifiers())
	assert.Equal(t, 1, f.app.CachedRoots())
}

func TestApp_ApplyItem_CaseInsensitiveNamespace(t *testing.T) {
	f := newFixture(t, nil)
	h := newHero(t)
	f.logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	res := f.app.ApplyItem(t.Context(), "MOD:amulet", h.entity(t, "hero"))

	assert.Equal(t, domain.Handled, res.Disposition)
	assert.Equal(t, 2, res.Outcome.Applied)
}

func TestApp_ApplyItem_NotHandled(t *testing.T) {
	f := newFixture(t, nil)
	h := newHero(t)

	for _, id := range []string{"sword", "", "mo", "modifier:x"} {
		res := f.app.ApplyItem(t.Context(), id, h.entity(t, "hero"))
		assert.Equal(t, domain.NotHandled, res.Disposition, id)
		assert.NoError(t, res.Reason)
	}
	assert.Empty(t, h.hp.Modifiers())
	assert.Equal(t, 0, f.app.CachedRoots())
}

func TestApp_ApplyItem_Aborts(t *testing.T) {
	t.Run("missing target", func(t *testing.T) {
		f := newFixture(t, nil)
		gomock.InOrder(
			f.logger.EXPECT().Info("applying item", "item", "mod:amulet", "target", ""),
			f.logger.EXPECT().Warn(domain.ErrMissingTarget.Error(), "item", "mod:amulet"),
		)

		res := f.app.ApplyItem(t.Context(), "mod:amulet", nil)

		assert.Equal(t, domain.Handled, res.Disposition)
		assert.ErrorIs(t, res.Reason, domain.ErrMissingTarget)
		assert.Equal(t, 0, res.Outcome.Applied)
	})

	t.Run("nil entity pointer", func(t *testing.T) {
		f := newFixture(t, nil)
		f.logger.EXPECT().Info("applying item", "item", "mod:amulet", "target", "")
		f.logger.EXPECT().Warn(domain.ErrMissingTarget.Error(), "item", "mod:amulet")

		var res domain.ApplyResult
		require.NotPanics(t, func() {
			res = f.app.ApplyItem(t.Context(), "mod:amulet", (*host.Entity)(nil))
		})

		assert.Equal(t, domain.Handled, res.Disposition)
		assert.ErrorIs(t, res.Reason, domain.ErrMissingTarget)
		assert.Equal(t, 0, f.app.CachedRoots())
	})

	t.Run("unknown definition", func(t *testing.T) {
		f := newFixture(t, nil)
		h := newHero(t)
		f.logger.EXPECT().Info("applying item", "item", "mod:missing", "target", "hero")
		f.logger.EXPECT().Warn(domain.ErrUnknownDefinition.Error(), "item", "mod:missing", "target", "hero")

		res := f.app.ApplyItem(t.Context(), "mod:missing", h.entity(t, "hero"))

		assert.Equal(t, domain.Handled, res.Disposition)
		assert.ErrorIs(t, res.Reason, domain.ErrUnknownDefinition)
		assert.Empty(t, h.hp.Modifiers())
		assert.Equal(t, 0, f.app.CachedRoots())
	})

	t.Run("missing stats root", func(t *testing.T) {
		f := newFixture(t, nil)
		h := newHero(t)
		f.logger.EXPECT().Info("applying item", "item", "mod:amulet", "target", "rock")
		f.logger.EXPECT().Warn(domain.ErrMissingStatsRoot.Error(), "item", "mod:amulet", "target", "rock")

		res := f.app.ApplyItem(t.Context(), "mod:amulet", h.entity(t, "rock"))

		assert.Equal(t, domain.Handled, res.Disposition)
		assert.ErrorIs(t, res.Reason, domain.ErrMissingStatsRoot)
		assert.Equal(t, 0, f.app.CachedRoots())
	})
}

func TestApp_ApplyItem_ReusesIndex(t *testing.T) {
	f := newFixture(t, nil)
	h := newHero(t)
	f.logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	hero := h.entity(t, "hero")
	f.app.ApplyItem(t.Context(), "mod:amulet", hero)
	f.app.ApplyItem(t.Context(), "mod:amulet", hero)

	assert.Equal(t, int64(1), f.indexer.Builds())
	assert.Len(t, h.hp.Modifiers(), 2)

	f.app.Reset()
	assert.Equal(t, 0, f.app.CachedRoots())

	f.app.ApplyItem(t.Context(), "mod:amulet", hero)
	assert.Equal(t, int64(2), f.indexer.Builds())
}

func TestApp_ApplyItem_SurvivesNonForcedRemoval(t *testing.T) {
	f := newFixture(t, nil)
	h := newHero(t)
	f.logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	h.hp.AddModifier(domain.StatModifier{Value: 3, Type: domain.StatFlat, Origin: domain.DefaultOrigin})
	f.app.ApplyItem(t.Context(), "mod:amulet", h.entity(t, "hero"))

	assert.Equal(t, 1, h.hp.RemoveAllModifiers(false))
	require.Len(t, h.hp.Modifiers(), 1)
	assert.Equal(t, domain.ModOrigin, h.hp.Modifiers()[0].Origin)

	assert.Equal(t, 1, h.hp.RemoveAllModifiers(true))
	assert.Empty(t, h.hp.Modifiers())
}

func TestApp_ApplyItem_Tracing(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)

	f := newFixture(t, tracer)
	h := newHero(t)
	f.logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	ctx := t.Context()
	tracer.EXPECT().Start(ctx, "moditems.apply").Return(ctx, span)
	gomock.InOrder(
		span.EXPECT().SetAttribute("item", "mod:amulet"),
		span.EXPECT().SetAttribute("target", "hero"),
		span.EXPECT().SetAttribute("applied", 2),
		span.EXPECT().SetAttribute("skipped", []string{"luck"}),
		span.EXPECT().End(),
	)

	f.app.ApplyItem(ctx, "mod:amulet", h.entity(t, "hero"))
}

func TestApp_ApplyItem_TracingAbort(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)

	f := newFixture(t, tracer)
	f.logger.EXPECT().Info(gomock.Any(), gomock.Any())
	f.logger.EXPECT().Warn(gomock.Any(), gomock.Any())

	ctx := t.Context()
	tracer.EXPECT().Start(ctx, "moditems.apply").Return(ctx, span)
	span.EXPECT().SetAttribute("item", "mod:amulet")
	span.EXPECT().RecordError(domain.ErrMissingTarget)
	span.EXPECT().End()

	f.app.ApplyItem(ctx, "mod:amulet", nil)
}

func TestApp_Load(t *testing.T) {
	f := newFixture(t, nil)
	h := newHero(t)
	ring := domain.ItemDefinition{ID: "mod:ring", StatMods: []domain.ModifierSpec{{Key: "hp", Value: 1}}}

	f.defLoader.EXPECT().Load("defs").Return([]domain.ItemDefinition{ring}, nil)
	f.worldLoader.EXPECT().Load("world.yaml").Return(h.world, nil)
	f.logger.EXPECT().Info("loaded definitions", "dir", "defs", "count", 1)

	world, err := f.app.Load(t.Context(), app.LoadOptions{DefinitionsDir: "defs", WorldPath: "world.yaml"})
	require.NoError(t, err)
	assert.Same(t, h.world, world)

	assert.Equal(t, []string{"mod:ring"}, f.app.Definitions())
	_, ok := f.app.Definition("mod:amulet")
	assert.False(t, ok, "load replaces previous definitions")
}

func TestApp_Load_ReleasesFreedRoots(t *testing.T) {
	f := newFixture(t, nil)
	h := newHero(t)
	f.worldLoader.EXPECT().Load("world.yaml").Return(h.world, nil)
	f.logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	world, err := f.app.Load(t.Context(), app.LoadOptions{WorldPath: "world.yaml"})
	require.NoError(t, err)

	f.app.ApplyItem(t.Context(), "mod:amulet", h.entity(t, "hero"))
	require.Equal(t, 1, f.app.CachedRoots())

	require.NoError(t, world.Destroy("hero"))
	assert.Equal(t, 0, f.app.CachedRoots())
}

func TestApp_Load_Errors(t *testing.T) {
	t.Run("definitions", func(t *testing.T) {
		f := newFixture(t, nil)
		f.defLoader.EXPECT().Load("defs").Return(nil, domain.ErrDefinitionsDirNotFound)

		world, err := f.app.Load(t.Context(), app.LoadOptions{DefinitionsDir: "defs"})
		require.ErrorIs(t, err, domain.ErrDefinitionsDirNotFound)
		assert.ErrorContains(t, err, "failed to load definitions")
		assert.Nil(t, world)

		_, ok := f.app.Definition("mod:amulet")
		assert.True(t, ok, "previous definitions stay registered")
	})

	t.Run("world", func(t *testing.T) {
		f := newFixture(t, nil)
		f.worldLoader.EXPECT().Load("world.yaml").Return(nil, domain.ErrWorldParseFailed)

		_, err := f.app.Load(t.Context(), app.LoadOptions{WorldPath: "world.yaml"})
		require.ErrorIs(t, err, domain.ErrWorldParseFailed)
		assert.ErrorContains(t, err, "failed to load world")
	})

	t.Run("nothing to load", func(t *testing.T) {
		f := newFixture(t, nil)
		world, err := f.app.Load(t.Context(), app.LoadOptions{})
		require.NoError(t, err)
		assert.Nil(t, world)
	})
}

func TestApp_Present(t *testing.T) {
	f := newFixture(t, nil)
	base := domain.Presentation{Title: "Plain Ring", Description: "A ring.", Icon: "ring.png", Cost: 5}

	got := f.app.Present("mod:amulet", base)
	assert.Equal(t, domain.Presentation{
		Title:       "Amulet of Vigor",
		Description: "A ring.",
		Icon:        "ring.png",
		Cost:        25,
	}, got)

	assert.Equal(t, base, f.app.Present("mod:missing", base))
	assert.Equal(t, base, f.app.Present("amulet", base))
}

func TestApp_Inspect(t *testing.T) {
	f := newFixture(t, nil)
	h := newHero(t)

	got, err := f.app.Inspect(h.entity(t, "hero"))
	require.NoError(t, err)

	assert.Equal(t, "hero", got.Entity)
	assert.False(t, got.Cached)
	assert.Equal(t, []string{"hp", "mp"}, got.Index.Keys())
	assert.Equal(t, 1, got.Report.Count(statgraph.SkippedText))
	assert.Equal(t, 1, got.Report.Count(statgraph.Descended))
	assert.Equal(t, 0, f.app.CachedRoots(), "inspection does not populate the cache")

	_, err = f.app.Inspect(h.entity(t, "rock"))
	require.ErrorContains(t, err, domain.ErrMissingStatsRoot.Error())

	_, err = f.app.Inspect(nil)
	require.ErrorIs(t, err, domain.ErrMissingTarget)

	_, err = f.app.Inspect((*host.Entity)(nil))
	require.ErrorIs(t, err, domain.ErrMissingTarget)
}

func TestApp_Inspect_Cached(t *testing.T) {
	f := newFixture(t, nil)
	h := newHero(t)
	f.logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	f.app.ApplyItem(t.Context(), "mod:amulet", h.entity(t, "hero"))

	got, err := f.app.Inspect(h.entity(t, "hero"))
	require.NoError(t, err)
	assert.True(t, got.Cached)
}

func events(paths ...string) iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for _, p := range paths {
			if !yield(ports.WatchEvent{Path: p, Operation: ports.OpWrite}) {
				return
			}
		}
	}
}

func TestApp_Watch(t *testing.T) {
	f := newFixture(t, nil)
	f.app.WithDebounceWindow(time.Hour)
	ring := domain.ItemDefinition{ID: "mod:ring"}

	f.watcher.EXPECT().Start(gomock.Any(), "defs").Return(nil)
	f.watcher.EXPECT().Events().Return(events("defs/a.yaml", "defs/b.yaml", "defs/a.yaml"))
	f.watcher.EXPECT().Stop().Return(nil)
	f.logger.EXPECT().Info("watching definitions", "dir", "defs")
	f.defLoader.EXPECT().Load("defs").Return([]domain.ItemDefinition{amulet, ring}, nil).Times(1)
	f.logger.EXPECT().Info("reloaded definitions", "count", 2, "changed", 2)

	require.NoError(t, f.app.Watch(t.Context(), "defs"))
	assert.Equal(t, []string{"mod:amulet", "mod:ring"}, f.app.Definitions())
}

func TestApp_Watch_KeepsDefinitionsOnError(t *testing.T) {
	f := newFixture(t, nil)
	f.app.WithDebounceWindow(time.Hour)

	f.watcher.EXPECT().Start(gomock.Any(), "defs").Return(nil)
	f.watcher.EXPECT().Events().Return(events("defs/a.yaml"))
	f.watcher.EXPECT().Stop().Return(nil)
	f.logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	f.defLoader.EXPECT().Load("defs").Return(nil, domain.ErrDefinitionsParseFailed)

	var logged error
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) { logged = err })

	require.NoError(t, f.app.Watch(t.Context(), "defs"))

	require.ErrorIs(t, logged, domain.ErrDefinitionsParseFailed)
	assert.Equal(t, []string{"mod:amulet"}, f.app.Definitions())
}

func TestApp_Watch_StartError(t *testing.T) {
	f := newFixture(t, nil)
	f.watcher.EXPECT().Start(gomock.Any(), "missing").Return(errors.New("no such directory"))

	err := f.app.Watch(context.Background(), "missing")
	require.ErrorContains(t, err, "failed to start watcher")
}
