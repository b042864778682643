package host_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/moditems/internal/adapters/host"
	"go.trai.ch/moditems/internal/core/domain"
	"go.trai.ch/moditems/internal/core/statgraph"
	"go.trai.ch/moditems/internal/engine/indexer"
)

func TestLoader_Load(t *testing.T) {
	w, err := host.NewLoader().Load(filepath.Join("testdata", "world.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"hero", "rock"}, w.Names())

	hero, ok := w.Entity("hero")
	require.True(t, ok)
	root, ok := hero.StatsRoot()
	require.True(t, ok)

	idx, report := indexer.New().Build(root.Node)

	assert.Equal(t, []string{"crit", "hp", "mp"}, idx.Keys())
	hp, _ := idx.Lookup("hp")
	stat, ok := hp.(*host.Stat)
	require.True(t, ok)
	assert.InDelta(t, 100.0, stat.BaseValue(), 0)

	outcomes := make(map[string]statgraph.Outcome)
	for _, v := range report.Visits {
		outcomes[v.Path] = v.Outcome
	}
	assert.Equal(t, statgraph.SkippedText, outcomes["name"])
	assert.Equal(t, statgraph.SkippedScalar, outcomes["level"])
	assert.Equal(t, statgraph.SkippedScalar, outcomes["alive"])
	assert.Equal(t, statgraph.SkippedNil, outcomes["nothing"])
	assert.Equal(t, statgraph.SkippedEngine, outcomes["sprite"])
	assert.Equal(t, statgraph.Descended, outcomes["resources"])
	assert.Equal(t, statgraph.ReadFailed, outcomes["broken"])
	require.Len(t, report.Failures(), 1)
	assert.EqualError(t, report.Failures()[0].Err, "failed to read property: getter exploded")

	rock, ok := w.Entity("rock")
	require.True(t, ok)
	_, ok = rock.StatsRoot()
	assert.False(t, ok)
}

func TestParse_AliasesShareObjects(t *testing.T) {
	w, err := host.Parse([]byte(`
entities:
  - name: twin
    stats:
      fields:
        left: &gear
          fields:
            armor: {stat: 5}
        right: *gear
`))
	require.NoError(t, err)

	twin, _ := w.Entity("twin")
	root, ok := twin.StatsRoot()
	require.True(t, ok)

	members := root.Node.Members()
	require.Len(t, members, 2)
	left, err := members[0].Read()
	require.NoError(t, err)
	right, err := members[1].Read()
	require.NoError(t, err)
	ln, _ := left.Node()
	rn, _ := right.Node()
	assert.Same(t, ln, rn)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "malformed",
			yaml:    "entities: [",
			wantErr: "failed to parse world file",
		},
		{
			name:    "missing name",
			yaml:    "entities:\n  - stats: {fields: {}}\n",
			wantErr: "failed to parse world file",
		},
		{
			name:    "duplicate entity",
			yaml:    "entities:\n  - name: a\n  - name: a\n",
			wantErr: "duplicate entity name",
		},
		{
			name:    "sequence value",
			yaml:    "entities:\n  - name: a\n    stats: {fields: {list: [1, 2]}}\n",
			wantErr: "unsupported value in world file",
		},
		{
			name:    "fail under fields",
			yaml:    "entities:\n  - name: a\n    stats: {fields: {x: {fail: boom}}}\n",
			wantErr: "unsupported value in world file",
		},
		{
			name:    "unknown object key",
			yaml:    "entities:\n  - name: a\n    stats: {members: {}}\n",
			wantErr: "unsupported value in world file",
		},
		{
			name:    "non-numeric stat",
			yaml:    "entities:\n  - name: a\n    stats: {fields: {hp: {stat: lots}}}\n",
			wantErr: "unsupported value in world file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := host.Parse([]byte(tt.yaml))
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := host.NewLoader().Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorContains(t, err, domain.ErrWorldReadFailed.Error())
}

func TestLoader_Load_ParseErrorCarriesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entities: ["), 0o600))

	_, err := host.NewLoader().Load(path)
	require.ErrorContains(t, err, domain.ErrWorldParseFailed.Error())
}
