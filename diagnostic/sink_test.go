package diagnostic

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	var c Collector

	c.Report(DiagnosticError, "source is nil")
	c.Report(DiagnosticDebug, "no value")
	c.Report(DiagnosticWarning, "traversal failed")
	c.Report(DiagnosticError, "not writable")

	snap := c.Snapshot()
	assert.Len(t, snap.Errors, 2)
	assert.Len(t, snap.Warnings, 1)
	assert.Len(t, snap.Debugs, 1)
	assert.Empty(t, snap.Infos)
	assert.Equal(t, []string{"source is nil", "not writable"}, c.Messages(DiagnosticError))

	c.Reset()

	snap = c.Snapshot()
	assert.Empty(t, snap.All())
}

func TestCollectorConcurrentReports(t *testing.T) {
	var (
		c  Collector
		wg sync.WaitGroup
	)

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 100 {
				c.Report(DiagnosticInfo, "tick")
			}
		}()
	}

	wg.Wait()

	assert.Len(t, c.Messages(DiagnosticInfo), 800)
}

func TestZerologSink(t *testing.T) {
	var buf bytes.Buffer

	sink := NewZerolog(zerolog.New(&buf).Level(zerolog.InfoLevel))
	sink.Report(DiagnosticError, "binding hud: target is nil")
	sink.Report(DiagnosticDebug, "filtered out")
	sink.Report(DiagnosticWarning, "traversal failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "error", first["level"])
	assert.Equal(t, "binding hud: target is nil", first["message"])
	assert.Equal(t, "propbind", first["component"])

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "warn", second["level"])
}

func TestDiagnosticsEmit(t *testing.T) {
	var d Diagnostics
	d.AddInfo("loaded", "2 bindings", "", "")
	d.AddError("member_not_found", "no member Scroe", "score-label", "Stats.Scroe", "Score")
	d.AddWarning("unused_object", "object radar is never bound", "", "")

	var got []string
	d.Emit(SinkFunc(func(severity DiagnosticSeverity, message string) {
		got = append(got, severity.String()+": "+message)
	}))

	assert.Equal(t, []string{
		"error: [score-label] Stats.Scroe: [member_not_found] no member Scroe (did you mean Score?)",
		"warning: [unused_object] object radar is never bound",
		"info: [loaded] 2 bindings",
	}, got)

	require.Error(t, d.Error())
	assert.False(t, d.IsValid())
	assert.True(t, d.HasErrors())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "debug", DiagnosticDebug.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
