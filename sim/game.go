// Package sim implements the rule engine of a falling-block puzzle game:
// where a piece may move, when it locks into the stack, when filled rows
// clear, and when the next piece spawns. The core consumes abstract input
// directions and a time delta, and produces a list of occupied cells for
// render sinks; windows, pixels and devices stay outside.
package sim

import "math/rand/v2"

// Board and timing defaults. All of them are overridable through Config.
const (
	DefaultWidth        = 10
	DefaultHeight       = 20
	DefaultTickPeriod   = 0.5
	DefaultRespawnDelay = 1.0

	// SpawnColumn is the x position new pieces spawn at; the spawn row is
	// always the top visible row.
	SpawnColumn = 3
)

// Config holds the fixed simulation constants. Zero values fall back to
// the package defaults.
type Config struct {
	Width  int
	Height int
	// TickPeriod is the fixed timestep, in time units, driving gravity,
	// locking, line clears and respawn.
	TickPeriod float64
	// RespawnDelay is the gap, in time units, between a lock event and the
	// next spawn.
	RespawnDelay float64
	Seed         uint64
	// Catalog defaults to DefaultCatalog when empty.
	Catalog Catalog
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.TickPeriod <= 0 {
		c.TickPeriod = DefaultTickPeriod
	}
	if c.RespawnDelay <= 0 {
		c.RespawnDelay = DefaultRespawnDelay
	}
	if c.Catalog.Size() == 0 {
		c.Catalog = DefaultCatalog()
	}
	return c
}

// Game wires a board to the canonical stage pipeline (move, fall, lock,
// clear, spawn) and drives it at a fixed timestep. Frontends call Update
// once per rendered frame and latch input through Sample or Press.
type Game struct {
	cfg      Config
	board    *Board
	pipeline *Pipeline
	sampler  Sampler

	pending Direction
	acc     float64
}

// NewGame builds a game from cfg, filling in defaults for zero fields.
func NewGame(cfg Config) *Game {
	cfg = cfg.withDefaults()

	g := &Game{cfg: cfg, board: NewBoard(cfg.Width, cfg.Height)}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	// Spawn at the fixed column on the top visible row; narrow boards
	// clamp the column inside the walls.
	col := SpawnColumn
	if col >= cfg.Width {
		col = cfg.Width - 1
	}

	g.pipeline = NewPipeline(g.board)
	g.pipeline.Register(&MoveStage{})
	g.pipeline.Register(&FallStage{})
	g.pipeline.Register(&LockStage{})
	g.pipeline.Register(&ClearStage{})
	g.pipeline.Register(NewSpawnStage(
		cfg.Catalog,
		Cell{X: col, Y: cfg.Height - 1},
		cfg.RespawnDelay,
		rng,
	))
	return g
}

// Press latches a pre-resolved direction for the next fixed tick. Only the
// latest non-None direction within a tick is honored; there is no queue.
// Frontends without key-release events feed the game through this.
func (g *Game) Press(d Direction) {
	if d = d.Normalize(); d != None {
		g.pending = d
	}
}

// Sample feeds raw button state through the edge/level sampler and latches
// the result. Frontends that can observe held keys call this every frame.
func (g *Game) Sample(b Buttons) {
	g.Press(g.sampler.Sample(b))
}

// Update advances the simulation by dt time units, running zero or more
// fixed ticks. The latched direction is consumed by the first tick that
// runs.
func (g *Game) Update(dt float64) {
	g.acc += dt
	for g.acc >= g.cfg.TickPeriod {
		g.acc -= g.cfg.TickPeriod
		g.pipeline.Once(g.cfg.TickPeriod, g.pending)
		g.pending = None
	}
}

// Board returns the simulation state.
func (g *Game) Board() *Board { return g.board }

// Snapshot returns every occupied cell tagged active or locked.
func (g *Game) Snapshot() []BoardCell { return g.board.Snapshot() }

// Over reports whether the board reached its terminal full state.
func (g *Game) Over() bool { return g.board.Over() }

// Lines returns the number of cleared rows so far.
func (g *Game) Lines() int { return g.board.Lines() }

// Stats returns per-stage execution statistics.
func (g *Game) Stats() *PipelineStats { return g.pipeline.GetStats() }

// Reset empties the board and restarts the simulation clock.
func (g *Game) Reset() {
	g.board.Reset()
	g.sampler.Reset()
	g.pending = None
	g.acc = 0
}
