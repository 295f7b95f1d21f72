package commands

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/battlesnakeio/solo/config"
	"github.com/battlesnakeio/solo/rules"
	"github.com/battlesnakeio/solo/sound"
	"github.com/battlesnakeio/solo/version"
	"github.com/battlesnakeio/solo/worker"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "solo",
	Short:             "solo is a single-player snake game",
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
}

var (
	configFile string
	cfg        config.Config

	width, height int32
	foodCount     int
	maxTail       int
	frameRate     int
	seed          int64
	logLevel      string
	wallCollision bool
	selfCollision bool
	reversalGuard bool
	withSound     bool
	tickInterval  = config.Default().TickInterval
)

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVarP(&configFile, "config", "c", "", "path to a YAML config file")
	f.Int32Var(&width, "width", 0, "board width in cells")
	f.Int32Var(&height, "height", 0, "board height in cells")
	f.IntVar(&foodCount, "food", 0, "number of food items on the board")
	f.IntVar(&maxTail, "max-tail", 0, "maximum tail length, 0 for no limit")
	f.IntVar(&frameRate, "fps", 0, "frames per second")
	f.Int64Var(&seed, "seed", 0, "random seed, 0 seeds from the clock")
	f.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	f.BoolVar(&wallCollision, "walls", false, "end the game when the snake leaves the board")
	f.BoolVar(&selfCollision, "self", false, "end the game when the snake bites its tail")
	f.BoolVar(&reversalGuard, "no-fold", false, "refuse two turns in one tick that would reverse the snake")
	f.BoolVar(&withSound, "sound", false, "play a chime when the snake eats")
	f.DurationVar(&tickInterval, "tick", tickInterval, "time between game ticks")
}

// Execute runs the root command
func Execute() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simulateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig(c *cobra.Command, _ []string) error {
	loaded, err := config.Load(configFile)
	if err != nil {
		return err
	}

	flags := c.Flags()
	if flags.Changed("width") {
		loaded.Width = width
	}
	if flags.Changed("height") {
		loaded.Height = height
	}
	if flags.Changed("food") {
		loaded.FoodCount = foodCount
	}
	if flags.Changed("max-tail") {
		loaded.MaxTail = maxTail
	}
	if flags.Changed("fps") {
		loaded.FrameRate = frameRate
	}
	if flags.Changed("seed") {
		loaded.Seed = seed
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if flags.Changed("walls") {
		loaded.WallCollision = wallCollision
	}
	if flags.Changed("self") {
		loaded.SelfCollision = selfCollision
	}
	if flags.Changed("no-fold") {
		loaded.ReversalGuard = reversalGuard
	}
	if flags.Changed("sound") {
		loaded.Sound = withSound
	}
	if flags.Changed("tick") {
		loaded.TickInterval = tickInterval
	}

	if err := loaded.Validate(); err != nil {
		return err
	}
	level, _ := log.ParseLevel(loaded.LogLevel)
	log.SetLevel(level)

	cfg = loaded
	return nil
}

// newGame creates a game and a runner for it from the loaded config.
func newGame(cfg config.Config) (*rules.Game, *worker.Runner, error) {
	s := cfg.SeedOrNow()
	g, err := rules.CreateInitialGame(cfg.Width, cfg.Height, cfg.Options(), rand.New(rand.NewSource(s)))
	if err != nil {
		return nil, nil, err
	}
	log.WithFields(log.Fields{
		"GameID": g.ID,
		"Width":  g.Width,
		"Height": g.Height,
		"Food":   g.Food.Len(),
		"Seed":   s,
	}).Info("created game")

	r := worker.NewRunner(g.ID, worker.Instrument(g), cfg.TickInterval, cfg.MaxCatchUp, cfg.FrameLimit())
	return g, r, nil
}

// withChime makes the runner play a chime on growth when sound is enabled.
// The returned func releases the speaker.
func withChime(cfg config.Config, r *worker.Runner) func() {
	if !cfg.Sound {
		return func() {}
	}
	p := sound.NewPlayer()
	if err := p.Init(); err != nil {
		log.WithError(err).Warn("sound unavailable")
		return func() {}
	}
	r.OnTick = func(res *rules.TickResult) {
		if res.Grew > 0 {
			p.Eat(res.Size)
		}
	}
	return p.Close
}

func logMetrics() {
	if err := worker.LogMetrics(prometheus.DefaultGatherer); err != nil {
		log.WithError(err).Warn("unable to gather metrics")
	}
}
