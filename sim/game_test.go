package sim_test

import (
	"testing"

	"github.com/plus3/blockfall/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dotGame(cfg sim.Config) *sim.Game {
	cfg.Catalog = sim.NewCatalog(sim.Shape{Name: "Dot", Offsets: []sim.Cell{{0, 0}}})
	return sim.NewGame(cfg)
}

func TestGameDefaults(t *testing.T) {
	g := sim.NewGame(sim.Config{})

	assert.Equal(t, 10, g.Board().Width())
	assert.Equal(t, 20, g.Board().Height())
	assert.Nil(t, g.Board().Active())
}

func TestGameSpawnsOnFirstTick(t *testing.T) {
	g := dotGame(sim.Config{})

	g.Update(0.49)
	assert.Nil(t, g.Board().Active(), "spawned before the first fixed tick")

	g.Update(0.01)
	require.NotNil(t, g.Board().Active())
	assert.Equal(t, sim.Cell{X: 3, Y: 19}, g.Board().Active().Origin)
}

func TestGamePieceFallsAndLocks(t *testing.T) {
	g := dotGame(sim.Config{})

	// Spawn at t=0.5, then one row per tick from y=19; the tick that finds
	// the piece at the floor locks it.
	g.Update(10.0)

	assert.Nil(t, g.Board().Active())
	assert.True(t, g.Board().IsLocked(sim.Cell{X: 3, Y: 0}))
	assert.Equal(t, 1, g.Board().LockedCount())
}

func TestGameLatchesLatestDirection(t *testing.T) {
	g := dotGame(sim.Config{})
	g.Update(0.5)
	require.NotNil(t, g.Board().Active())

	// Two presses within the same tick: only the latest is honored.
	g.Press(sim.Left)
	g.Press(sim.Right)
	g.Update(0.5)

	assert.Equal(t, 4, g.Board().Active().Origin.X)

	// None never overwrites a latched direction.
	g.Press(sim.Left)
	g.Press(sim.None)
	g.Update(0.5)

	assert.Equal(t, 3, g.Board().Active().Origin.X)
}

func TestGameDirectionConsumedOnce(t *testing.T) {
	g := dotGame(sim.Config{})
	g.Update(0.5)
	require.NotNil(t, g.Board().Active())

	g.Press(sim.Left)
	g.Update(1.0) // two fixed ticks

	// The latched Left applies on the first tick only.
	assert.Equal(t, 2, g.Board().Active().Origin.X)
}

func TestGameClearsLine(t *testing.T) {
	g := dotGame(sim.Config{Width: 2, Height: 4})
	g.Board().Lock(sim.Cell{X: 0, Y: 0})

	// The dot spawns in column 1, falls to the floor and completes row 0.
	g.Update(2.0)

	assert.Equal(t, 1, g.Lines())
	assert.Equal(t, 0, g.Board().LockedCount())
	assert.False(t, g.Over())
}

func TestGameOverWhenSpawnBlocked(t *testing.T) {
	g := dotGame(sim.Config{Width: 2, Height: 4})

	// Fill the spawn cell; the next spawn attempt must end the game
	// rather than overlap the stack.
	g.Board().Lock(sim.Cell{X: 1, Y: 3})
	g.Update(0.5)

	assert.True(t, g.Over())
	assert.Nil(t, g.Board().Active())

	// Terminal: further updates change nothing.
	g.Update(5.0)
	assert.True(t, g.Over())
	assert.Equal(t, 1, g.Board().LockedCount())
}

func TestGameReset(t *testing.T) {
	g := dotGame(sim.Config{})
	g.Update(3.0)
	require.NotNil(t, g.Board().Active())

	g.Reset()

	assert.Nil(t, g.Board().Active())
	assert.Equal(t, 0, g.Board().LockedCount())

	g.Update(0.5)
	assert.NotNil(t, g.Board().Active())
}

func TestGameSampleFeedsSampler(t *testing.T) {
	g := dotGame(sim.Config{})
	g.Update(0.5)
	require.NotNil(t, g.Board().Active())

	// A held Left is edge triggered: one press, one move.
	g.Sample(sim.Buttons{Left: true})
	g.Update(0.5)
	assert.Equal(t, 2, g.Board().Active().Origin.X)

	g.Sample(sim.Buttons{Left: true})
	g.Update(0.5)
	assert.Equal(t, 2, g.Board().Active().Origin.X)
}

func TestGameStats(t *testing.T) {
	g := dotGame(sim.Config{})
	g.Update(2.0)

	stats := g.Stats()
	require.Equal(t, 5, stats.StageCount)

	names := make([]string, len(stats.Stages))
	for i, s := range stats.Stages {
		names[i] = s.Name
		assert.Equal(t, int64(4), s.TickCount)
	}
	assert.Equal(t, []string{"MoveStage", "FallStage", "LockStage", "ClearStage", "SpawnStage"}, names)
}
