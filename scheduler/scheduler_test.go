package scheduler

import (
	"slices"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-gridsim/ecs"
	"ebiten-gridsim/metrics"
)

const (
	kTransform ecs.Kind = "Transform"
	kMotion    ecs.Kind = "Motion"
	kLink      ecs.Kind = "NetworkLink"
	kInput     ecs.Kind = "InputSnapshot"
	kSelection ecs.Kind = "Selection"
	kMap       ecs.Kind = "MapState"
)

type resourceSet map[ecs.Kind]bool

func (r resourceSet) Has(kind ecs.Kind) bool { return r[kind] }

var allResources = resourceSet{kInput: true, kSelection: true, kMap: true}

// recorder logs the names of the systems that ran
type recorder struct {
	mu  sync.Mutex
	ran []string
}

func (r *recorder) system(name string, access Access) SystemFunc {
	return SystemFunc{Decl: access, Fn: func(*Context) {
		r.mu.Lock()
		r.ran = append(r.ran, name)
		r.mu.Unlock()
	}}
}

func levelGraph(r *recorder) *Builder {
	return NewBuilder().
		With(r.system("sys_input", Access{ReadResources: []ecs.Kind{kInput}, WriteComponents: []ecs.Kind{kMotion}}), "sys_input").
		With(r.system("sys_network", Access{ReadComponents: []ecs.Kind{kTransform}, WriteComponents: []ecs.Kind{kLink}}), "sys_network").
		With(r.system("sys_movement", Access{ReadComponents: []ecs.Kind{kMotion}, WriteComponents: []ecs.Kind{kTransform}, ReadResources: []ecs.Kind{kMap}}), "sys_movement", "sys_input").
		With(r.system("sys_selection", Access{ReadComponents: []ecs.Kind{kTransform}, ReadResources: []ecs.Kind{kInput, kMap}, WriteResources: []ecs.Kind{kSelection}}), "sys_selection").
		With(r.system("sys_highlight", Access{ReadComponents: []ecs.Kind{kTransform}, ReadResources: []ecs.Kind{kInput, kSelection}, WriteResources: []ecs.Kind{kMap}}), "sys_highlight", "sys_selection", "sys_movement")
}

func TestBuild_LevelGraphOrderAndStages(t *testing.T) {
	d, err := levelGraph(&recorder{}).Build(allResources)
	require.NoError(t, err)

	assert.Equal(t, []string{"sys_input", "sys_network", "sys_movement", "sys_selection", "sys_highlight"}, d.Order())
	assert.Equal(t, [][]string{
		{"sys_input", "sys_network"},
		{"sys_movement"},
		{"sys_selection"},
		{"sys_highlight"},
	}, d.Stages())
}

func TestBuild_IsDeterministic(t *testing.T) {
	first, err := levelGraph(&recorder{}).Build(allResources)
	require.NoError(t, err)
	second, err := levelGraph(&recorder{}).Build(allResources)
	require.NoError(t, err)

	assert.Equal(t, first.Order(), second.Order())
	assert.Equal(t, first.Stages(), second.Stages())

	order := first.Order()
	before := func(a, b string) bool {
		return slices.Index(order, a) < slices.Index(order, b)
	}
	assert.True(t, before("sys_input", "sys_movement"))
	assert.True(t, before("sys_selection", "sys_highlight"))
	assert.True(t, before("sys_movement", "sys_highlight"))
}

func TestBuild_DependencyWinsOverDeclarationOrder(t *testing.T) {
	r := &recorder{}
	d, err := NewBuilder().
		With(r.system("late", Access{}), "late", "early").
		With(r.system("early", Access{}), "early").
		Build(allResources)
	require.NoError(t, err)

	assert.Equal(t, []string{"early", "late"}, d.Order())
}

func TestBuild_ConfigurationErrors(t *testing.T) {
	r := &recorder{}
	noop := r.system("noop", Access{})

	tests := []struct {
		name    string
		builder *Builder
		res     ResourceSet
		want    error
	}{
		{
			name:    "cycle",
			builder: NewBuilder().With(noop, "a", "c").With(noop, "b", "a").With(noop, "c", "b"),
			res:     allResources,
			want:    ErrCycle,
		},
		{
			name:    "self dependency",
			builder: NewBuilder().With(noop, "a", "a"),
			res:     allResources,
			want:    ErrCycle,
		},
		{
			name:    "unknown dependency",
			builder: NewBuilder().With(noop, "a", "ghost"),
			res:     allResources,
			want:    ErrUnknownDependency,
		},
		{
			name:    "duplicate name",
			builder: NewBuilder().With(noop, "a").With(noop, "a"),
			res:     allResources,
			want:    ErrDuplicateSystem,
		},
		{
			name: "missing resource",
			builder: NewBuilder().With(
				r.system("sel", Access{WriteResources: []ecs.Kind{kSelection}}), "sel"),
			res:  resourceSet{kInput: true},
			want: ErrMissingResource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := tt.builder.Build(tt.res)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, d)
		})
	}
}

func TestBuild_CycleErrorNamesSystems(t *testing.T) {
	noop := SystemFunc{Fn: func(*Context) {}}
	_, err := NewBuilder().
		With(noop, "free").
		With(noop, "ping", "pong").
		With(noop, "pong", "ping").
		Build(allResources)

	require.ErrorIs(t, err, ErrCycle)
	assert.Contains(t, err.Error(), "ping")
	assert.Contains(t, err.Error(), "pong")
	assert.NotContains(t, err.Error(), "free")
}

func TestDispatch_SequentialFollowsOrder(t *testing.T) {
	r := &recorder{}
	d, err := levelGraph(r).Build(allResources)
	require.NoError(t, err)

	d.Dispatch(&Context{})
	d.Dispatch(&Context{})

	assert.Equal(t, append(d.Order(), d.Order()...), r.ran)
}

func TestDispatch_ParallelRunsEachSystemOncePerFrame(t *testing.T) {
	r := &recorder{}
	d, err := levelGraph(r).Parallel(true).Build(allResources)
	require.NoError(t, err)
	require.True(t, d.Parallel())

	d.Dispatch(&Context{})

	require.Len(t, r.ran, 5)
	assert.ElementsMatch(t, d.Order(), r.ran)
	// the first stage may interleave; later stages are strictly ordered
	assert.ElementsMatch(t, []string{"sys_input", "sys_network"}, r.ran[:2])
	assert.Equal(t, []string{"sys_movement", "sys_selection", "sys_highlight"}, r.ran[2:])
}

func TestAccess_Conflicts(t *testing.T) {
	readT := Access{ReadComponents: []ecs.Kind{kTransform}}
	writeT := Access{WriteComponents: []ecs.Kind{kTransform}}
	writeM := Access{WriteComponents: []ecs.Kind{kMotion}}
	readMap := Access{ReadResources: []ecs.Kind{kMap}}
	writeMap := Access{WriteResources: []ecs.Kind{kMap}}

	assert.False(t, readT.Conflicts(readT))
	assert.True(t, readT.Conflicts(writeT))
	assert.True(t, writeT.Conflicts(readT))
	assert.True(t, writeT.Conflicts(writeT))
	assert.False(t, writeT.Conflicts(writeM))
	assert.False(t, readMap.Conflicts(readMap))
	assert.True(t, readMap.Conflicts(writeMap))
	assert.False(t, writeT.Conflicts(writeMap))
}

func TestDispatch_RecordsMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	c, err := metrics.New(registry)
	require.NoError(t, err)

	d, err := levelGraph(&recorder{}).Metrics(c).Build(allResources)
	require.NoError(t, err)
	d.Dispatch(&Context{})

	families, err := registry.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		switch mf.GetName() {
		case "gridsim_frames_total":
			assert.Equal(t, 1.0, mf.Metric[0].GetCounter().GetValue())
		case "gridsim_system_duration_seconds":
			assert.Len(t, mf.Metric, 5)
		}
	}
}
