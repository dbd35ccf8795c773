// Package debugui provides immediate-mode GUI inspection for a running
// simulation using Dear ImGui: a board inspector and a pipeline timing
// window. Frontends call Overlay.Render between their backend's begin and
// end frame calls.
package debugui

import "github.com/plus3/blockfall/sim"

// Overlay groups the debug windows for one game.
type Overlay struct {
	board BoardInspectorComponent
	stats PipelineStatsComponent
}

// New creates an overlay keeping historyFrames of frame-time history.
func New(historyFrames int) *Overlay {
	return &Overlay{
		board: NewBoardInspectorComponent(),
		stats: NewPipelineStatsComponent(historyFrames),
	}
}

// Render draws all debug windows for the current frame.
func (o *Overlay) Render(game *sim.Game, deltaTime float32) {
	o.board.Render(game)
	o.stats.Render(game.Stats(), deltaTime)
}
