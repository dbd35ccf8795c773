package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{
		3 * time.Millisecond,
		1 * time.Millisecond,
		5 * time.Millisecond,
	}}
	s.Finalize()

	assert.Equal(t, 1*time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg)
}

func TestStatsFinalizeEmpty(t *testing.T) {
	var s Stats
	s.Finalize()

	assert.Equal(t, time.Duration(0), s.Min)
	assert.Equal(t, time.Duration(0), s.Max)
	assert.Equal(t, time.Duration(0), s.Avg)
}

func TestRunBenchProducesReport(t *testing.T) {
	cfg := defaultConfig()
	cfg.Seed = 1

	report := runBench(cfg, 5*time.Second)

	assert.Equal(t, int64(5*benchFrameRate), report.TotalFrames)
	assert.Len(t, report.UpdateTime.Samples, int(report.TotalFrames))
	assert.NotEmpty(t, report.StageStats)

	var buf strings.Builder
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Blockfall Benchmark Report")
	assert.Contains(t, out, "MoveStage")
	assert.Contains(t, out, "Total Frames")
}

func TestReportGenerateStageLines(t *testing.T) {
	report := runBench(defaultConfig(), time.Second)

	var buf strings.Builder
	require.NoError(t, report.Generate(&buf))

	// One timing line per registered stage.
	for _, name := range []string{"MoveStage", "FallStage", "LockStage", "ClearStage", "SpawnStage"} {
		assert.Contains(t, buf.String(), name)
	}
}
