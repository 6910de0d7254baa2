package binding_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propbind/accessor"
	"propbind/binding"
	"propbind/diagnostic"
	"propbind/primitive"
	"propbind/scene"
)

type Source struct {
	Score int
	X     int
}

type Target struct {
	Label string
}

type Meters float64

// Gauge holds float readings, including NaN.
type Gauge struct {
	Ratio  float64
	Length Meters
	Total  float64
}

// Tracer logs every read and write of its Value property.
type Tracer struct {
	name  string
	log   *[]string
	value int
}

func (p *Tracer) Value() int {
	*p.log = append(*p.log, "get "+p.name)

	return p.value
}

func (p *Tracer) SetValue(v int) {
	*p.log = append(*p.log, "set "+p.name)
	p.value = v
}

// Drift returns a different reading every time it is read.
type Drift struct {
	n int
}

func (d *Drift) Value() int {
	d.n++

	return d.n
}

// Counter counts the writes made through SetText.
type Counter struct {
	text   string
	writes int
}

func (c *Counter) Text() string { return c.text }

func (c *Counter) SetText(text string) {
	c.text = text
	c.writes++
}

func TestOneTimeScoreToLabel(t *testing.T) {
	t.Parallel()

	src := &Source{Score: 10}
	tgt := &Target{}

	b := binding.New(src, tgt, "Score", "Label", binding.OneTime)
	require.True(t, b.Status().Active())

	require.NoError(t, b.Tick())
	assert.Equal(t, "10", tgt.Label)
	assert.Equal(t, binding.Invalid, b.Mode())
	assert.Equal(t, binding.OneTime, b.RequestedMode())
	require.ErrorIs(t, b.Status().Reason, binding.ErrApplied)

	src.Score = 20
	require.NoError(t, b.Tick())
	assert.Equal(t, "10", tgt.Label)
}

func TestUnresolvedPathIsInvalidAtInit(t *testing.T) {
	t.Parallel()

	var sink diagnostic.Collector

	src := &Source{X: 1}
	tgt := &Target{Label: "untouched"}

	b := binding.New(src, tgt, "nonexistent", "Label", binding.OneWayToTarget, binding.WithSink(&sink))
	assert.Equal(t, binding.Invalid, b.Mode())
	require.ErrorIs(t, b.Status().Reason, accessor.ErrMemberNotFound)

	for range 3 {
		require.NoError(t, b.Tick())
	}

	assert.Equal(t, "untouched", tgt.Label)
	assert.Equal(t, []string{
		"binding nonexistent -> Label: source: resolve nonexistent: accessor: member not found",
	}, sink.Messages(diagnostic.DiagnosticError))
}

func TestOneTimeWritesExactlyOnce(t *testing.T) {
	t.Parallel()

	src := &Source{Score: 3}
	tgt := &Counter{}

	b := binding.New(src, tgt, "Score", "Text", binding.OneTime)

	for i := range 5 {
		src.Score = i
		require.NoError(t, b.Tick())
	}

	assert.Equal(t, 1, tgt.writes)
	assert.Equal(t, "0", tgt.Text())
	assert.False(t, b.Status().Active())
}

func TestOneTimeWaitsForSource(t *testing.T) {
	t.Parallel()

	var sink diagnostic.Collector

	player := &scene.Player{}
	hud := scene.NewHUD("main")

	b := binding.New(player, hud, "Stats.Score", "Score.Text", binding.OneTime, binding.WithSink(&sink))

	require.NoError(t, b.Tick())
	assert.True(t, b.Status().Active(), "nothing was applied yet")
	assert.Empty(t, hud.Score.Text)
	assert.Contains(t, sink.Messages(diagnostic.DiagnosticDebug), "binding Stats.Score -> Score.Text: source Stats.Score has no value")

	player.Stats = &scene.Stats{Score: 7}
	require.NoError(t, b.Tick())
	assert.Equal(t, "7", hud.Score.Text)
	assert.False(t, b.Status().Active())
}

func TestMissingEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		source  any
		target  any
		message string
	}{
		{"nil source", nil, &Target{}, "source is nil"},
		{"typed nil target", &Source{}, (*Target)(nil), "target is nil"},
		{"both nil", (*Source)(nil), nil, "source and target are nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var sink diagnostic.Collector

			b := binding.New(tt.source, tt.target, "Score", "Label", binding.TwoWay, binding.WithSink(&sink))
			require.ErrorIs(t, b.Status().Reason, binding.ErrMissingEndpoint)
			assert.Equal(t, binding.Invalid, b.Mode())

			errs := sink.Messages(diagnostic.DiagnosticError)
			require.Len(t, errs, 1)
			assert.Contains(t, errs[0], tt.message)

			require.NoError(t, b.Tick())
			assert.Len(t, sink.Messages(diagnostic.DiagnosticError), 1, "reported once")
		})
	}
}

func TestInvalidRequestedMode(t *testing.T) {
	t.Parallel()

	for _, mode := range []binding.Mode{binding.Invalid, binding.Mode(42)} {
		b := binding.New(&Source{}, &Target{}, "Score", "Label", mode)
		require.ErrorIs(t, b.Status().Reason, binding.ErrInvalidMode)
		assert.Equal(t, mode, b.RequestedMode())
	}
}

func TestOneWayToTargetLegacy(t *testing.T) {
	t.Parallel()

	src := &Source{Score: 10}
	tgt := &Target{}

	b := binding.New(src, tgt, "Score", "Label", binding.OneWayToTarget)

	require.NoError(t, b.Tick())
	assert.Equal(t, "10", tgt.Label)
	assert.Equal(t, 10, b.LastSource())
	assert.Equal(t, "", b.LastTarget())

	tgt.Label = "edited"
	require.NoError(t, b.Tick())
	assert.Equal(t, "10", tgt.Label, "an unchanged source is propagated again")

	src.Score = 11
	require.NoError(t, b.Tick())
	assert.Equal(t, "11", tgt.Label)
	assert.Equal(t, binding.OneWayToTarget, b.Mode())
}

func TestLegacyChangeDetectionIsAsymmetric(t *testing.T) {
	t.Parallel()

	t.Run("toward target skips a reading that moved", func(t *testing.T) {
		t.Parallel()

		drift := &Drift{}
		tgt := &Target{Label: "untouched"}

		b := binding.New(drift, tgt, "Value", "Label", binding.OneWayToTarget)
		require.NoError(t, b.Tick())
		assert.Equal(t, "untouched", tgt.Label)
	})

	t.Run("toward source writes a reading that moved", func(t *testing.T) {
		t.Parallel()

		src := &Source{}
		drift := &Drift{}

		b := binding.New(src, drift, "Score", "Value", binding.OneWayToSource)
		require.NoError(t, b.Tick())
		assert.Equal(t, 2, src.Score)
		assert.Equal(t, 1, b.LastTarget())
	})

	t.Run("toward source skips a stable reading", func(t *testing.T) {
		t.Parallel()

		src := &Source{Score: 1}
		tgt := &Target{Label: "5"}

		b := binding.New(src, tgt, "Score", "Label", binding.OneWayToSource)
		require.NoError(t, b.Tick())
		tgt.Label = "6"
		require.NoError(t, b.Tick())

		assert.Equal(t, 1, src.Score)
	})
}

func TestLegacyChangeDetectionTreatsNaNAsEqual(t *testing.T) {
	t.Parallel()

	t.Run("toward target propagates a stable NaN", func(t *testing.T) {
		t.Parallel()

		src := &Gauge{Ratio: math.NaN()}
		tgt := &Target{Label: "untouched"}

		b := binding.New(src, tgt, "Ratio", "Label", binding.OneWayToTarget)
		require.NoError(t, b.Tick())
		assert.Equal(t, "NaN", tgt.Label)

		tgt.Label = "edited"
		require.NoError(t, b.Tick())
		assert.Equal(t, "NaN", tgt.Label)
	})

	t.Run("toward source skips a stable NaN", func(t *testing.T) {
		t.Parallel()

		src := &Gauge{Ratio: 0.5}
		tgt := &Gauge{Ratio: math.NaN()}

		b := binding.New(src, tgt, "Ratio", "Ratio", binding.OneWayToSource)
		for range 3 {
			require.NoError(t, b.Tick())
		}

		assert.InDelta(t, 0.5, src.Ratio, 0)
		assert.True(t, b.Status().Active())
	})
}

func TestNamedFloatConverts(t *testing.T) {
	t.Parallel()

	g := &Gauge{Length: 3.5}

	b := binding.New(g, g, "Length", "Total", binding.OneTime)
	require.NoError(t, b.Tick())
	assert.InDelta(t, 3.5, g.Total, 0)
	require.ErrorIs(t, b.Status().Reason, binding.ErrApplied)
}

func TestTwoWayOrdering(t *testing.T) {
	t.Parallel()

	var log []string

	src := &Tracer{name: "source", log: &log, value: 1}
	tgt := &Tracer{name: "target", log: &log, value: 2}

	b := binding.New(src, tgt, "Value", "Value", binding.TwoWay)
	require.NoError(t, b.Tick())

	assert.Equal(t, []string{
		"get source", // snapshot
		"get target",
		"get target", // source-direction update
		"get source", // target-direction update
		"set target",
	}, log)
	assert.Equal(t, 1, tgt.value)
	assert.Equal(t, 1, b.LastSource())
	assert.Equal(t, 2, b.LastTarget())
}

func TestDetectChanges(t *testing.T) {
	t.Parallel()

	t.Run("one way to target", func(t *testing.T) {
		t.Parallel()

		var log []string

		src := &Source{Score: 1}
		tgt := &Tracer{name: "target", log: &log}

		b := binding.New(src, tgt, "Score", "Value", binding.OneWayToTarget,
			binding.WithChangeDetection(binding.DetectChanges))

		require.NoError(t, b.Tick())
		assert.Equal(t, 1, tgt.value, "first tick propagates")

		tgt.value = 9
		require.NoError(t, b.Tick())
		assert.Equal(t, 9, tgt.value, "unchanged source is not propagated")

		src.Score = 2
		require.NoError(t, b.Tick())
		assert.Equal(t, 2, tgt.value)
		assert.Equal(t, 2, count(log, "set target"))
	})

	t.Run("one way to source", func(t *testing.T) {
		t.Parallel()

		src := &Source{Score: 1}
		tgt := &Target{Label: "5"}

		b := binding.New(src, tgt, "Score", "Label", binding.OneWayToSource,
			binding.WithChangeDetection(binding.DetectChanges))

		require.NoError(t, b.Tick())
		assert.Equal(t, 1, src.Score, "first tick never propagates toward the source")

		tgt.Label = "6"
		require.NoError(t, b.Tick())
		assert.Equal(t, 6, src.Score)
	})

	t.Run("two way", func(t *testing.T) {
		t.Parallel()

		var log []string

		src := &Tracer{name: "source", log: &log, value: 1}
		tgt := &Tracer{name: "target", log: &log}

		b := binding.New(src, tgt, "Value", "Value", binding.TwoWay,
			binding.WithChangeDetection(binding.DetectChanges))

		require.NoError(t, b.Tick())
		assert.Equal(t, 1, tgt.value)

		tgt.value = 5
		log = log[:0]
		require.NoError(t, b.Tick())
		assert.Equal(t, 5, src.value)
		assert.Equal(t, 1, count(log, "set source"))
		assert.Equal(t, 0, count(log, "set target"), "no echo back to the target")

		log = log[:0]
		require.NoError(t, b.Tick())
		assert.Equal(t, 0, count(log, "set source")+count(log, "set target"), "nothing changed")

		src.value = 8
		require.NoError(t, b.Tick())
		assert.Equal(t, 8, tgt.value)
	})
}

func TestWriteFailuresInvalidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		source     any
		target     any
		sourcePath string
		targetPath string
		opts       []binding.Option
		want       error
	}{
		{
			name:       "read only target",
			source:     &Source{Score: 1},
			target:     scene.NewHUD("main"),
			sourcePath: "Score",
			targetPath: "Caption",
			want:       accessor.ErrNotWritable,
		},
		{
			name:       "no conversion path",
			source:     &scene.Player{Stats: &scene.Stats{}},
			target:     scene.NewHUD("main"),
			sourcePath: "Stats",
			targetPath: "Score.Text",
			want:       accessor.ErrNotConvertible,
		},
		{
			name:       "category not allowed",
			source:     &Source{Score: 1},
			target:     &Target{},
			sourcePath: "Score",
			targetPath: "Label",
			opts:       []binding.Option{binding.WithCategories(primitive.CategorySafeNumber)},
			want:       accessor.ErrNotConvertible,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var sink diagnostic.Collector

			opts := append([]binding.Option{binding.WithSink(&sink)}, tt.opts...)
			b := binding.New(tt.source, tt.target, tt.sourcePath, tt.targetPath, binding.OneWayToTarget, opts...)
			require.True(t, b.Status().Active())

			require.NoError(t, b.Tick())
			assert.Equal(t, binding.Invalid, b.Mode())
			require.ErrorIs(t, b.Status().Reason, tt.want)
			assert.Len(t, sink.Messages(diagnostic.DiagnosticError), 1)

			require.NoError(t, b.Tick())
			assert.Len(t, sink.Messages(diagnostic.DiagnosticError), 1, "invalid is absorbing")
		})
	}
}

func TestRecoverableWriteFailures(t *testing.T) {
	t.Parallel()

	t.Run("traversal failure", func(t *testing.T) {
		t.Parallel()

		var sink diagnostic.Collector

		player := &scene.Player{Stats: &scene.Stats{Health: 0.5}}
		hud := scene.NewHUD("main")
		hud.Health = nil

		b := binding.New(player, hud, "Stats.Health", "Health.Text", binding.OneWayToTarget, binding.WithSink(&sink))

		err := b.Tick()
		require.ErrorIs(t, err, accessor.ErrTraversalFailure)
		assert.True(t, b.Status().Active())
		assert.Len(t, sink.Messages(diagnostic.DiagnosticWarning), 1)

		hud.Health = &scene.Label{}
		require.NoError(t, b.Tick())
		assert.Equal(t, "0.5", hud.Health.Text)
	})

	t.Run("conversion failure", func(t *testing.T) {
		t.Parallel()

		hud := scene.NewHUD("main")
		hud.Score.Text = "abc"
		player := &scene.Player{Stats: &scene.Stats{Score: 4}}

		b := binding.New(player, hud, "Stats.Score", "Score.Text", binding.OneWayToSource,
			binding.WithChangeDetection(binding.DetectChanges))
		require.NoError(t, b.Tick())

		hud.Score.Text = "xyz"
		err := b.Tick()
		require.ErrorIs(t, err, accessor.ErrConversionFailed)
		assert.True(t, b.Status().Active())
		assert.Equal(t, 4, player.Stats.Score)

		hud.Score.Text = "12"
		require.NoError(t, b.Tick())
		assert.Equal(t, 12, player.Stats.Score)
	})

	t.Run("setter failure", func(t *testing.T) {
		t.Parallel()

		player := &scene.Player{Stats: &scene.Stats{Health: 2}}
		hud := scene.NewHUD("main")

		b := binding.New(player, hud, "Stats.Health", "Alpha", binding.OneWayToTarget)

		err := b.Tick()
		require.ErrorIs(t, err, accessor.ErrWriteFailed)
		require.ErrorIs(t, err, scene.ErrAlphaRange)
		assert.True(t, b.Status().Active())

		player.Stats.Health = 0.25
		require.NoError(t, b.Tick())
		assert.InDelta(t, 0.25, hud.GetAlpha(), 1e-9)
	})
}

func TestOptions(t *testing.T) {
	t.Parallel()

	var sink diagnostic.Collector

	registry := accessor.NewRegistry()

	b := binding.New(&Source{}, &Target{}, "Score", "Label", binding.TwoWay,
		binding.WithRegistry(registry), binding.WithSink(nil), binding.WithRegistry(nil))
	assert.Equal(t, "Score -> Label", b.Name())
	assert.Equal(t, 2, registry.Len())
	assert.Equal(t, "Score -> Label [TwoWay]", b.String())

	b = binding.New(nil, &Target{}, "Score", "Label", binding.TwoWay,
		binding.WithName("score-label"), binding.WithSink(&sink))
	assert.Equal(t, "score-label", b.Name())
	assert.Equal(t, []string{
		"binding score-label: binding: missing endpoint: source is nil",
	}, sink.Messages(diagnostic.DiagnosticError))
}

func count(log []string, entry string) int {
	n := 0

	for _, e := range log {
		if e == entry {
			n++
		}
	}

	return n
}
