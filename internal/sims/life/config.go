package life

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// EdgeMode selects how neighbor lookups treat the board boundary.
type EdgeMode string

const (
	// EdgeClosed treats cells beyond the boundary as permanently dead.
	EdgeClosed EdgeMode = "closed"
	// EdgeWrap joins opposite edges into a torus.
	EdgeWrap EdgeMode = "wrap"
)

// ErrInvalidConfiguration rejects board shapes the engine cannot host.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config controls the board shape and boundary behavior. A zero Seed picks
// a time-based seed at construction.
type Config struct {
	Rows     int      `json:"rows"`
	Cols     int      `json:"cols"`
	CellSize int      `json:"cell_size"`
	Seed     int64    `json:"seed"`
	Edges    EdgeMode `json:"edges"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows:     60,
		Cols:     80,
		CellSize: 10,
		Seed:     0,
		Edges:    EdgeClosed,
	}
}

// ConfigFromPixels derives the board that fills a width by height pixel
// surface at the given cell size.
func ConfigFromPixels(width, height, cellSize int) (Config, error) {
	if cellSize <= 0 {
		return Config{}, errors.Wrapf(ErrInvalidConfiguration, "cell size must be positive, got %d", cellSize)
	}
	c := DefaultConfig()
	c.Rows = height / cellSize
	c.Cols = width / cellSize
	c.CellSize = cellSize
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports whether the configuration can host a board.
func (c Config) Validate() error {
	if c.Rows <= 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "rows must be positive, got %d", c.Rows)
	}
	if c.Cols <= 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "cols must be positive, got %d", c.Cols)
	}
	if c.CellSize <= 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "cell size must be positive, got %d", c.CellSize)
	}
	switch c.Edges {
	case EdgeClosed, EdgeWrap, "":
	default:
		return errors.Wrapf(ErrInvalidConfiguration, "unknown edge mode %q", c.Edges)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Dimension values are parsed but not corrected; NewWithConfig
// validates them.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["edges"]; ok {
		switch EdgeMode(v) {
		case EdgeClosed, EdgeWrap:
			c.Edges = EdgeMode(v)
		}
	}
	return c
}

// LoadConfig reads and validates a configuration from a JSON file.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "load config: read %s", filename)
	}
	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "load config: parse %s", filename)
	}
	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}
