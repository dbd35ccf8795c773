package debugui

type BoardInspectorComponent struct{}

type PipelineStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}
