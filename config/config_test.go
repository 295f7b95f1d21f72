package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.Equal(t, int32(80), c.Width)
	require.Equal(t, int32(45), c.Height)
	require.Equal(t, 8, c.FoodCount)
	require.Equal(t, 200*time.Millisecond, c.TickInterval)
	require.Equal(t, 16, c.TailIncrement)
	require.NoError(t, c.Validate())
}

func TestDefaultFromEnv(t *testing.T) {
	os.Setenv("SOLO_WIDTH", "12")
	os.Setenv("SOLO_TICK_MS", "not-a-number")
	defer os.Unsetenv("SOLO_WIDTH")
	defer os.Unsetenv("SOLO_TICK_MS")

	c := Default()
	require.Equal(t, int32(12), c.Width)
	require.Equal(t, 200*time.Millisecond, c.TickInterval)
}

func TestLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "solo-config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "solo.yaml")
	err = ioutil.WriteFile(path, []byte(`
width: 20
height: 10
food_count: 3
tick_interval: 300ms
wall_collision: true
reversal_guard: true
log_level: debug
`), 0644)
	require.NoError(t, err)

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, int32(20), c.Width)
	require.Equal(t, int32(10), c.Height)
	require.Equal(t, 3, c.FoodCount)
	require.Equal(t, 300*time.Millisecond, c.TickInterval)
	require.True(t, c.WallCollision)
	require.False(t, c.SelfCollision)
	require.Equal(t, 60, c.FrameRate, "unset keys keep their defaults")
	require.NoError(t, c.Validate())

	opts := c.Options()
	require.Equal(t, 3, opts.FoodCount)
	require.True(t, opts.ReversalGuard)
	require.True(t, opts.WallCollision)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(os.TempDir(), "does-not-exist-solo.yaml"))
	require.Error(t, err)

	dir, err := ioutil.TempDir("", "solo-config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("width: [1, 2"), 0644))
	_, err = Load(path)
	require.Error(t, err)
}

func TestLoadEmptyPath(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), c)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		Name   string
		Modify func(*Config)
	}{
		{Name: "zero width", Modify: func(c *Config) { c.Width = 0 }},
		{Name: "negative height", Modify: func(c *Config) { c.Height = -1 }},
		{Name: "no food", Modify: func(c *Config) { c.FoodCount = 0 }},
		{Name: "board full of food", Modify: func(c *Config) { c.Width, c.Height, c.FoodCount = 3, 3, 9 }},
		{Name: "zero tick", Modify: func(c *Config) { c.TickInterval = 0 }},
		{Name: "zero frame rate", Modify: func(c *Config) { c.FrameRate = 0 }},
		{Name: "negative max tail", Modify: func(c *Config) { c.MaxTail = -1 }},
		{Name: "zero cell size", Modify: func(c *Config) { c.CellSize = 0 }},
		{Name: "negative cell size", Modify: func(c *Config) { c.CellSize = -4 }},
		{Name: "bad log level", Modify: func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, test := range tests {
		c := Default()
		test.Modify(&c)
		require.Error(t, c.Validate(), test.Name)
	}
}

func TestSeedOrNow(t *testing.T) {
	c := Default()
	c.Seed = 99
	require.Equal(t, int64(99), c.SeedOrNow())
	c.Seed = 0
	require.NotZero(t, c.SeedOrNow())
}

func TestFrameLimit(t *testing.T) {
	c := Default()
	c.FrameRate = 30
	require.Equal(t, float64(30), float64(c.FrameLimit()))
}
