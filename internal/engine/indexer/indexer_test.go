package indexer_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/moditems/internal/core/domain"
	"go.trai.ch/moditems/internal/core/statgraph"
	"go.trai.ch/moditems/internal/engine/indexer"
)

type stat struct {
	name string
	mods []domain.StatModifier
}

func (s *stat) AddModifier(mod domain.StatModifier) {
	s.mods = append(s.mods, mod)
}

type object struct {
	members []statgraph.Member
}

func (o *object) Members() []statgraph.Member { return o.members }

func obj(members ...statgraph.Member) *object {
	return &object{members: members}
}

func TestBuild_HPAndMP(t *testing.T) {
	hp := &stat{name: "hp"}
	mp := &stat{name: "mp"}
	root := obj(
		statgraph.Field("hp", statgraph.Attr(hp)),
		statgraph.Field("name", statgraph.Text()),
		statgraph.Field("resources", statgraph.Nested(obj(
			statgraph.Field("mp", statgraph.Attr(mp)),
		))),
	)

	idx, report := indexer.New().Build(root)

	assert.Equal(t, []string{"hp", "mp"}, idx.Keys())
	got, ok := idx.Lookup("hp")
	require.True(t, ok)
	assert.Same(t, hp, got)
	got, ok = idx.Lookup("mp")
	require.True(t, ok)
	assert.Same(t, mp, got)

	paths := make([]string, 0, len(report.Visits))
	for _, v := range report.Visits {
		paths = append(paths, v.Path)
	}
	assert.Equal(t, []string{"hp", "name", "resources", "resources.mp"}, paths)
	assert.Equal(t, 1, report.Count(statgraph.Descended))
}

func TestBuild_FieldsBeforeProperties(t *testing.T) {
	fromField := &stat{name: "field"}
	fromProperty := &stat{name: "property"}
	root := obj(
		statgraph.Property("damage", func() (statgraph.Value, error) {
			return statgraph.Attr(fromProperty), nil
		}),
		statgraph.Field("damage", statgraph.Attr(fromField)),
	)

	idx, report := indexer.New().Build(root)

	got, ok := idx.Lookup("damage")
	require.True(t, ok)
	assert.Same(t, fromProperty, got, "the property is visited last and wins")
	require.Len(t, report.Visits, 2)
	assert.Equal(t, statgraph.FieldMember, report.Visits[0].Kind)
	assert.Equal(t, statgraph.Indexed, report.Visits[0].Outcome)
	assert.Equal(t, statgraph.PropertyMember, report.Visits[1].Kind)
	assert.Equal(t, statgraph.Overwritten, report.Visits[1].Outcome)
}

func TestBuild_LastWriteWinsAcrossDepth(t *testing.T) {
	outer := &stat{name: "outer"}
	inner := &stat{name: "inner"}
	root := obj(
		statgraph.Field("armor", statgraph.Attr(outer)),
		statgraph.Field("gear", statgraph.Nested(obj(
			statgraph.Field("armor", statgraph.Attr(inner)),
		))),
	)

	idx, _ := indexer.New().Build(root)

	assert.Equal(t, 1, idx.Len())
	got, _ := idx.Lookup("armor")
	assert.Same(t, inner, got)
}

func TestBuild_SkipRules(t *testing.T) {
	hidden := &stat{name: "secret"}
	payload := obj(statgraph.Field("secret", statgraph.Attr(hidden)))
	root := obj(
		statgraph.Field("level", statgraph.Scalar()),
		statgraph.Field("title", statgraph.Text()),
		statgraph.Field("empty", statgraph.Nil()),
		statgraph.Field("sprite", statgraph.Engine(payload)),
		statgraph.Field("missing", statgraph.Attr(nil)),
	)

	idx, report := indexer.New().Build(root)

	assert.Equal(t, 0, idx.Len())
	_, ok := idx.Lookup("secret")
	assert.False(t, ok, "engine payloads are never traversed")

	outcomes := make(map[string]statgraph.Outcome)
	for _, v := range report.Visits {
		outcomes[v.Key] = v.Outcome
	}
	assert.Equal(t, map[string]statgraph.Outcome{
		"level":   statgraph.SkippedScalar,
		"title":   statgraph.SkippedText,
		"empty":   statgraph.SkippedNil,
		"sprite":  statgraph.SkippedEngine,
		"missing": statgraph.SkippedNil,
	}, outcomes)
}

func TestBuild_PropertyReadFailure(t *testing.T) {
	boom := errors.New("getter exploded")
	hp := &stat{name: "hp"}
	crit := &stat{name: "crit"}
	root := obj(
		statgraph.Property("broken", func() (statgraph.Value, error) {
			return statgraph.Value{}, boom
		}),
		statgraph.Property("crit", func() (statgraph.Value, error) {
			return statgraph.Attr(crit), nil
		}),
		statgraph.Field("hp", statgraph.Attr(hp)),
	)

	idx, report := indexer.New().Build(root)

	assert.Equal(t, []string{"crit", "hp"}, idx.Keys())
	failures := report.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, "broken", failures[0].Path)
	assert.ErrorIs(t, failures[0].Err, boom)
}

func TestBuild_Cycle(t *testing.T) {
	hp := &stat{name: "hp"}
	root := &object{}
	child := obj(
		statgraph.Field("hp", statgraph.Attr(hp)),
		statgraph.Field("owner", statgraph.Nested(root)),
	)
	root.members = []statgraph.Member{
		statgraph.Field("self", statgraph.Nested(root)),
		statgraph.Field("child", statgraph.Nested(child)),
	}

	idx, report := indexer.New().Build(root)

	assert.Equal(t, []string{"hp"}, idx.Keys())
	assert.Equal(t, 2, report.Count(statgraph.SkippedCycle))
}

func TestBuild_SharedNodeIsRevisited(t *testing.T) {
	shared := obj(statgraph.Field("speed", statgraph.Attr(&stat{name: "speed"})))
	root := obj(
		statgraph.Field("left", statgraph.Nested(shared)),
		statgraph.Field("right", statgraph.Nested(shared)),
	)

	idx, report := indexer.New().Build(root)

	assert.Equal(t, 1, idx.Len())
	assert.Equal(t, 1, report.Count(statgraph.Indexed))
	assert.Equal(t, 1, report.Count(statgraph.Overwritten))
	assert.Zero(t, report.Count(statgraph.SkippedCycle))
}

func TestBuild_Idempotent(t *testing.T) {
	hp := &stat{name: "hp"}
	root := obj(
		statgraph.Field("hp", statgraph.Attr(hp)),
		statgraph.Field("inner", statgraph.Nested(obj(
			statgraph.Field("mp", statgraph.Attr(&stat{name: "mp"})),
		))),
	)
	ix := indexer.New()

	first, _ := ix.Build(root)
	second, _ := ix.Build(root)

	assert.Equal(t, first.Keys(), second.Keys())
	assert.Equal(t, first.Fingerprint(), second.Fingerprint())
	for _, k := range first.Keys() {
		a, _ := first.Lookup(k)
		b, _ := second.Lookup(k)
		assert.Same(t, a, b)
	}
	assert.Equal(t, int64(2), ix.Builds())
}

func TestBuild_NilRoot(t *testing.T) {
	idx, report := indexer.New().Build(nil)

	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, report.Visits)
}
