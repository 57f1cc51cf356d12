package idle

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/go-yaml/yaml"
	"github.com/mitchellh/go-homedir"
)

// DefaultConfigPath is where LoadConfig looks when no path is given
const DefaultConfigPath = "~/.idle.yaml"

// Config includes settings for the idle game
type Config struct {
	// id of the surface the game draws on
	CanvasID string `yaml:"canvas_id"`

	// in pixels
	CanvasWidth  int `yaml:"canvas_width"`
	CanvasHeight int `yaml:"canvas_height"`

	// in tiles
	LevelWidth  int `yaml:"level_width"`
	LevelHeight int `yaml:"level_height"`

	// chance [0,1] that a tile is a wall
	WallChance float64 `yaml:"wall_chance"`

	// 0 picks a seed from the clock
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns a config with default settings.
func DefaultConfig() *Config {
	return &Config{
		CanvasID:     "idle-canvas",
		CanvasWidth:  400,
		CanvasHeight: 400,
		LevelWidth:   40,
		LevelHeight:  40,
		WallChance:   DefaultWallChance,
	}
}

// Validate returns an error if any setting is unusable
func (c *Config) Validate() error {
	if c.CanvasID == "" {
		return fmt.Errorf("canvas_id must be set")
	}
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.CanvasWidth, c.CanvasHeight)
	}
	if c.LevelWidth <= 0 || c.LevelHeight <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.LevelWidth, c.LevelHeight)
	}
	if c.WallChance < 0 || c.WallChance > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidWallChance, c.WallChance)
	}
	return nil
}

// LevelOptions returns the generation options this config implies
func (c *Config) LevelOptions() []LevelOption {
	opts := []LevelOption{WithWallChance(c.WallChance)}
	if c.Seed != 0 {
		opts = append(opts, WithSeed(c.Seed))
	}
	return opts
}

// LoadConfig reads a yaml config from `fpath` ("" means DefaultConfigPath).
// Settings missing from the file keep their defaults, a missing file
// gives the default config.
func LoadConfig(fpath string) (*Config, error) {
	if fpath == "" {
		fpath = DefaultConfigPath
	}

	expanded, err := homedir.Expand(fpath)
	if err != nil {
		return nil, fmt.Errorf("expanding config path %s: %w", fpath, err)
	}

	cfg := DefaultConfig()

	data, err := ioutil.ReadFile(expanded)
	if os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", expanded, err)
	}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", expanded, err)
	}

	return cfg, cfg.Validate()
}
