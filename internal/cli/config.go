package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/plus3/blockfall/sim"
)

// Config mirrors the optional TOML configuration file. Every field has a
// default matching the standard game constants; a partial file overrides
// only what it names.
//
// Example:
//
//	[board]
//	width = 10
//	height = 20
//
//	[timing]
//	tick_period = 0.5
//	respawn_delay = 1.0
//
//	seed = 42
type Config struct {
	Board  BoardConfig  `toml:"board"`
	Timing TimingConfig `toml:"timing"`
	Seed   uint64       `toml:"seed"`
}

type BoardConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type TimingConfig struct {
	TickPeriod   float64 `toml:"tick_period"`
	RespawnDelay float64 `toml:"respawn_delay"`
}

// defaultConfig returns the standard game constants.
func defaultConfig() Config {
	return Config{
		Board:  BoardConfig{Width: sim.DefaultWidth, Height: sim.DefaultHeight},
		Timing: TimingConfig{TickPeriod: sim.DefaultTickPeriod, RespawnDelay: sim.DefaultRespawnDelay},
	}
}

// loadConfig reads a TOML file over the defaults. An empty path returns
// the defaults unchanged.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// simConfig translates the file configuration into the rule engine's form.
func (c Config) simConfig() sim.Config {
	return sim.Config{
		Width:        c.Board.Width,
		Height:       c.Board.Height,
		TickPeriod:   c.Timing.TickPeriod,
		RespawnDelay: c.Timing.RespawnDelay,
		Seed:         c.Seed,
	}
}
