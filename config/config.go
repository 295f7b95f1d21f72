// Package config holds the tunables for a game of solo. Defaults can be
// overridden from the environment, then from a YAML file, then from flags.
package config

import (
	"io/ioutil"
	"os"
	"strconv"
	"time"

	"github.com/battlesnakeio/solo/rules"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	yaml "gopkg.in/yaml.v3"
)

// Config is the full set of game settings.
type Config struct {
	Width         int32         `yaml:"width"`
	Height        int32         `yaml:"height"`
	FoodCount     int           `yaml:"food_count"`
	TickInterval  time.Duration `yaml:"tick_interval"`
	FrameRate     int           `yaml:"frame_rate"`
	MaxCatchUp    int           `yaml:"max_catch_up"`
	TailCapacity  int           `yaml:"tail_capacity"`
	TailIncrement int           `yaml:"tail_increment"`
	MaxTail       int           `yaml:"max_tail"`
	SpawnAttempts int           `yaml:"spawn_attempts"`
	WallCollision bool          `yaml:"wall_collision"`
	SelfCollision bool          `yaml:"self_collision"`
	ReversalGuard bool          `yaml:"reversal_guard"`
	CellSize      int           `yaml:"cell_size"`
	Seed          int64         `yaml:"seed"`
	Sound         bool          `yaml:"sound"`
	LogLevel      string        `yaml:"log_level"`
}

// Default returns the stock settings: the 80x45 board of a 1280x720 window
// cut into 16px cells, eight food items and a 200ms tick. Environment
// variables override the board and timing values.
func Default() Config {
	return Config{
		Width:         int32(getEnvInt("SOLO_WIDTH", 80)),
		Height:        int32(getEnvInt("SOLO_HEIGHT", 45)),
		FoodCount:     getEnvInt("SOLO_FOOD", rules.DefaultFoodCount),
		TickInterval:  time.Duration(getEnvInt("SOLO_TICK_MS", 200)) * time.Millisecond,
		FrameRate:     getEnvInt("SOLO_FPS", 60),
		MaxCatchUp:    1,
		TailCapacity:  rules.DefaultTailCapacity,
		TailIncrement: rules.DefaultTailIncrement,
		MaxTail:       getEnvInt("SOLO_MAX_TAIL", 0),
		SpawnAttempts: rules.DefaultSpawnAttempts,
		CellSize:      16,
		LogLevel:      "info",
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return c, errors.Wrapf(err, "config: reading %s", path)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "config: parsing %s", path)
	}
	return c, nil
}

// Validate checks the settings describe a playable game.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("config: board must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FoodCount <= 0 {
		return errors.Errorf("config: food_count must be positive, got %d", c.FoodCount)
	}
	if int64(c.FoodCount) >= int64(c.Width)*int64(c.Height) {
		return errors.Errorf("config: %d food items do not fit a %dx%d board", c.FoodCount, c.Width, c.Height)
	}
	if c.TickInterval <= 0 {
		return errors.Errorf("config: tick_interval must be positive, got %s", c.TickInterval)
	}
	if c.FrameRate <= 0 {
		return errors.Errorf("config: frame_rate must be positive, got %d", c.FrameRate)
	}
	if c.MaxTail < 0 {
		return errors.Errorf("config: max_tail cannot be negative, got %d", c.MaxTail)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("config: cell_size must be positive, got %d", c.CellSize)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "config: log_level")
	}
	return nil
}

// Options converts the settings into game options.
func (c Config) Options() rules.Options {
	return rules.Options{
		FoodCount:     c.FoodCount,
		TailCapacity:  c.TailCapacity,
		TailIncrement: c.TailIncrement,
		MaxTail:       c.MaxTail,
		SpawnAttempts: c.SpawnAttempts,
		WallCollision: c.WallCollision,
		SelfCollision: c.SelfCollision,
		ReversalGuard: c.ReversalGuard,
	}
}

// FrameLimit is the frame rate as a limiter rate.
func (c Config) FrameLimit() rate.Limit {
	return rate.Limit(c.FrameRate)
}

// SeedOrNow returns the configured seed, or the wall clock when none is set.
func (c Config) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
