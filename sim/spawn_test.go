package sim_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/blockfall/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSpawnStage(catalog sim.Catalog) *sim.SpawnStage {
	return sim.NewSpawnStage(catalog, sim.Cell{X: 3, Y: 19}, 1.0, rand.New(rand.NewPCG(7, 11)))
}

func spawnTick(stage *sim.SpawnStage, b *sim.Board, now float64) {
	stage.Step(&sim.Frame{DeltaTime: 0.5, Now: now, Board: b})
}

func TestSpawnOnEmptyBoard(t *testing.T) {
	b := sim.NewBoard(10, 20)
	stage := newSpawnStage(sim.DefaultCatalog())

	spawnTick(stage, b, 0.5)

	require.NotNil(t, b.Active())
	assert.Equal(t, sim.Cell{X: 3, Y: 19}, b.Active().Origin)
}

func TestSpawnWaitsForRespawnDelay(t *testing.T) {
	b := sim.NewBoard(10, 20)
	dot := sim.NewCatalog(sim.Shape{Name: "Dot", Offsets: []sim.Cell{{0, 0}}})
	stage := newSpawnStage(dot)

	spawnTick(stage, b, 0.5)
	require.NotNil(t, b.Active())

	// The piece spawned at t=0.5 descends one row per tick from y=19 and
	// locks on the tick that finds it at the floor, t=10.0.
	for now := 1.0; b.Active() != nil; now += 0.5 {
		fixedTick(b, sim.None, now)
		if now > 30 {
			t.Fatal("piece never locked")
		}
	}
	require.Equal(t, 1, b.LockedCount())

	spawnTick(stage, b, 10.5)
	assert.Nil(t, b.Active(), "spawned before the respawn delay elapsed")

	spawnTick(stage, b, 11.0)
	assert.NotNil(t, b.Active(), "respawn delay elapsed but nothing spawned")
}

func TestSpawnNeverCreatesSecondPiece(t *testing.T) {
	b := sim.NewBoard(10, 20)
	stage := newSpawnStage(sim.DefaultCatalog())

	spawnTick(stage, b, 0.5)
	require.NotNil(t, b.Active())
	first := b.Active()

	for now := 1.0; now < 5.0; now += 0.5 {
		spawnTick(stage, b, now)
	}

	assert.Same(t, first, b.Active())
}

func TestSpawnBlockedByStackEndsGame(t *testing.T) {
	b := sim.NewBoard(10, 20)
	dot := sim.NewCatalog(sim.Shape{Name: "Dot", Offsets: []sim.Cell{{0, 0}}})
	stage := newSpawnStage(dot)

	b.Lock(sim.Cell{X: 3, Y: 19})

	spawnTick(stage, b, 0.5)

	assert.Nil(t, b.Active())
	assert.True(t, b.Over())

	// Terminal state: nothing spawns afterwards.
	spawnTick(stage, b, 5.0)
	assert.Nil(t, b.Active())
}

func TestSpawnSamplesWholeCatalog(t *testing.T) {
	catalog := sim.NewCatalog(
		sim.Shape{Name: "A", Offsets: []sim.Cell{{0, 0}}},
		sim.Shape{Name: "B", Offsets: []sim.Cell{{0, 0}}},
		sim.Shape{Name: "C", Offsets: []sim.Cell{{0, 0}}},
	)
	stage := newSpawnStage(catalog)

	seen := map[string]bool{}
	b := sim.NewBoard(10, 20)
	for i := 0; i < 100; i++ {
		b.Reset()
		spawnTick(stage, b, float64(i)+0.5)
		require.NotNil(t, b.Active())
		seen[b.Active().Shape.Name] = true
	}

	assert.Len(t, seen, 3)
}
