package app

import (
	"flag"
	"strconv"

	"conway/internal/core"
	"conway/internal/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim        string
	Rows       int
	Cols       int
	Cell       int
	Speed      float64
	Seed       int64
	ConfigFile string
}

// NewConfig returns a Config populated with the standard board shape.
func NewConfig() *Config {
	def := life.DefaultConfig()
	return &Config{
		Sim:   "life",
		Rows:  def.Rows,
		Cols:  def.Cols,
		Cell:  def.CellSize,
		Speed: core.DefaultRate,
		Seed:  def.Seed,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "automaton to run (life or life-torus)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	fs.IntVar(&c.Cell, "cell", c.Cell, "cell edge length in pixels")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "initial generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the randomizer, 0 for time-based")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON board config, replaces the grid flags")
}

// Params converts the grid flags into a factory configuration map.
func (c *Config) Params() map[string]string {
	return map[string]string{
		"rows": strconv.Itoa(c.Rows),
		"cols": strconv.Itoa(c.Cols),
		"cell": strconv.Itoa(c.Cell),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
}
