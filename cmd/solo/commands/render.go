package commands

import (
	"errors"
	"fmt"

	"github.com/battlesnakeio/solo/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	headColor    = termbox.ColorLightGreen
	foodColor    = termbox.ColorRed
	foodRune     = '●'
)

func render(frame *rules.Frame) error {
	if frame == nil {
		return errors.New("received nil frame")
	}
	err := termbox.Clear(defaultColor, defaultColor)
	if err != nil {
		return err
	}

	var (
		left   = 1
		top    = 1
		bottom = top + int(frame.Height) + 1
	)

	renderTitle(left, top, frame)
	renderBoard(frame, top, bottom, left)
	renderFood(left, top, frame.Food)
	renderSnake(left, top, frame)

	return termbox.Flush()
}

func renderSnake(left, top int, frame *rules.Frame) {
	for _, p := range frame.Tail {
		setBoardCell(left, top, frame, p, ' ', snakeColor, snakeColor)
	}
	setBoardCell(left, top, frame, frame.Head.Position, ' ', headColor, headColor)
}

func renderFood(left, top int, food []rules.Point) {
	for _, f := range food {
		termbox.SetCell(left+int(f.X), top+int(f.Y)+1, foodRune, foodColor, bgColor)
	}
}

// setBoardCell draws p if it is on the board. Without wall collisions the
// snake is free to wander off it.
func setBoardCell(left, top int, frame *rules.Frame, p rules.Point, ch rune, fg, bg termbox.Attribute) {
	if p.X < 0 || p.Y < 0 || p.X >= frame.Width || p.Y >= frame.Height {
		return
	}
	termbox.SetCell(left+int(p.X), top+int(p.Y)+1, ch, fg, bg)
}

func renderBoard(frame *rules.Frame, top, bottom, left int) {
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(left+int(frame.Width), i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(left+int(frame.Width), top, '┐', defaultColor, bgColor)
	termbox.SetCell(left+int(frame.Width), bottom, '┘', defaultColor, bgColor)

	fill(left, top, int(frame.Width), 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, int(frame.Width), 1, termbox.Cell{Ch: '─'})
}

func renderTitle(left, top int, frame *rules.Frame) {
	title := fmt.Sprintf("Solo - Turn %d - Size %d", frame.Turn, len(frame.Tail))
	if frame.Death != nil {
		title = fmt.Sprintf("%s - %s - press q to quit", title, frame.Death.Cause)
	}
	tbprint(left, top-1, defaultColor, defaultColor, title)
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
