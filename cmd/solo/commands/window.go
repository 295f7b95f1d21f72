package commands

import (
	"image/color"
	"time"

	"github.com/battlesnakeio/solo/config"
	"github.com/battlesnakeio/solo/rules"
	"github.com/battlesnakeio/solo/worker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "play solo in a desktop window",
	RunE: func(*cobra.Command, []string) error {
		return playWindow()
	},
}

var (
	windowSnakeColor = color.RGBA{R: 0x00, G: 0xE4, B: 0x30, A: 0xFF}
	windowFoodColor  = color.RGBA{R: 0xE6, G: 0x29, B: 0x37, A: 0xFF}
	windowGridColor  = color.RGBA{R: 0xC3, G: 0xC3, B: 0xC3, A: 0xFF}
)

var windowKeys = map[rules.Move][]ebiten.Key{
	rules.MoveUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	rules.MoveDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	rules.MoveLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	rules.MoveRight: {ebiten.KeyD, ebiten.KeyArrowRight},
}

func playWindow() error {
	g, r, err := newGame(cfg)
	if err != nil {
		return err
	}
	defer withChime(cfg, r)()

	w := newWindow(cfg, r)
	ebiten.SetWindowSize(w.Layout(0, 0))
	ebiten.SetWindowTitle("SNAKE")
	ebiten.SetTPS(cfg.FrameRate)

	err = ebiten.RunGame(w)
	if err == ebiten.Termination {
		err = nil
	}
	log.WithFields(log.Fields{
		"GameID": g.ID,
		"Turn":   g.Turn,
		"Size":   g.Snake.Size(),
	}).Info("game finished")
	logMetrics()
	return err
}

// window is the ebiten frontend. Ebiten owns the loop and calls Update at a
// fixed TPS, so each Update is one frame of 1/TPS.
type window struct {
	runner *worker.Runner
	cell   int
	frame  *rules.Frame
}

func newWindow(cfg config.Config, r *worker.Runner) *window {
	return &window{
		runner: r,
		cell:   cfg.CellSize,
		frame:  r.Sim.Frame(),
	}
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	dt := time.Second / time.Duration(ebiten.TPS())
	if _, err := w.runner.Step(dt, w); err != nil {
		return err
	}
	w.frame = w.runner.Sim.Frame()
	return nil
}

func (w *window) IsKeyDown(m rules.Move) bool {
	for _, k := range windowKeys[m] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (w *window) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	w.drawCell(screen, w.frame.Head.Position, windowSnakeColor)
	for _, p := range w.frame.Tail {
		w.drawCell(screen, p, windowSnakeColor)
	}
	for _, p := range w.frame.Food {
		w.drawCell(screen, p, windowFoodColor)
	}
	w.drawGrid(screen)
}

func (w *window) drawCell(screen *ebiten.Image, p rules.Point, clr color.Color) {
	vector.FillRect(
		screen,
		float32(int(p.X)*w.cell),
		float32(int(p.Y)*w.cell),
		float32(w.cell),
		float32(w.cell),
		clr,
		false,
	)
}

// drawGrid draws one pixel wide grid lines between the cells.
func (w *window) drawGrid(screen *ebiten.Image) {
	width, height := w.Layout(0, 0)
	for x := 0; x <= width; x += w.cell {
		vector.FillRect(screen, float32(x), 0, 1, float32(height), windowGridColor, false)
	}
	for y := 0; y <= height; y += w.cell {
		vector.FillRect(screen, 0, float32(y), float32(width), 1, windowGridColor, false)
	}
}

func (w *window) Layout(_, _ int) (int, int) {
	return int(w.frame.Width) * w.cell, int(w.frame.Height) * w.cell
}
