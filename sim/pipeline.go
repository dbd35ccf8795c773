package sim

import (
	"context"
	"reflect"
	"time"
)

// PipelineStats provides statistics about pipeline execution.
type PipelineStats struct {
	StageCount int
	TotalTicks int64
	Stages     []StageStats
}

// StageStats provides execution statistics for a single stage.
type StageStats struct {
	Name         string
	TickCount    int64
	MinDuration  time.Duration
	MaxDuration  time.Duration
	AvgDuration  time.Duration
	LastDuration time.Duration
	TotalDuration time.Duration
}

type stageStatsInternal struct {
	name          string
	tickCount     int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

// Pipeline executes stages against one board in registration order.
type Pipeline struct {
	board      *Board
	stages     []Stage
	stageStats []*stageStatsInternal
	now        float64
}

// NewPipeline creates an empty pipeline for the given board.
func NewPipeline(board *Board) *Pipeline {
	return &Pipeline{
		board:  board,
		stages: make([]Stage, 0),
	}
}

// Board returns the board this pipeline drives.
func (p *Pipeline) Board() *Board { return p.board }

// Register appends a stage to the pipeline.
func (p *Pipeline) Register(stage Stage) {
	p.stages = append(p.stages, stage)

	stageType := reflect.TypeOf(stage)
	if stageType.Kind() == reflect.Ptr {
		stageType = stageType.Elem()
	}

	p.stageStats = append(p.stageStats, &stageStatsInternal{
		name:        stageType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes all registered stages for a single fixed tick. The input
// direction is resolved once for the whole tick; later stages observe the
// state committed by earlier ones.
func (p *Pipeline) Once(dt float64, input Direction) {
	p.now += dt
	frame := newFrame(dt, p.now, input, p.board)

	for i, stage := range p.stages {
		start := time.Now()
		stage.Step(frame)
		duration := time.Since(start)

		stats := p.stageStats[i]
		stats.tickCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}
}

// Run executes ticks repeatedly at the given interval until the context is
// cancelled, polling the input source once per tick.
func (p *Pipeline) Run(ctx context.Context, interval time.Duration, input InputSource) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now

			dir := None
			if input != nil {
				dir = input.Poll()
			}
			p.Once(dt, dir)
		}
	}
}

// GetStats returns statistics about stage execution.
func (p *Pipeline) GetStats() *PipelineStats {
	stats := &PipelineStats{
		StageCount: len(p.stages),
		Stages:     make([]StageStats, len(p.stageStats)),
	}

	var totalTicks int64
	for i, internal := range p.stageStats {
		avgDuration := time.Duration(0)
		if internal.tickCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.tickCount)
		}

		stats.Stages[i] = StageStats{
			Name:          internal.name,
			TickCount:     internal.tickCount,
			MinDuration:   internal.minDuration,
			MaxDuration:   internal.maxDuration,
			AvgDuration:   avgDuration,
			LastDuration:  internal.lastDuration,
			TotalDuration: internal.totalDuration,
		}
		totalTicks += internal.tickCount
	}

	stats.TotalTicks = totalTicks
	return stats
}
