package commands

import (
	"context"
	"io/ioutil"
	"os"
	"time"

	"github.com/battlesnakeio/solo/rules"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play solo in the terminal",
	RunE: func(*cobra.Command, []string) error {
		return playTerminal()
	},
}

func playTerminal() error {
	g, r, err := newGame(cfg)
	if err != nil {
		return err
	}
	defer withChime(cfg, r)()

	if err = termbox.Init(); err != nil {
		return err
	}
	termbox.SetInputMode(termbox.InputEsc)

	// the terminal belongs to the board until the game ends
	log.SetOutput(ioutil.Discard)
	term := newTerminal(setupEventQueue())
	err = r.Run(context.Background(), term)
	termbox.Close()
	log.SetOutput(os.Stderr)

	log.WithFields(log.Fields{
		"GameID": g.ID,
		"Turn":   g.Turn,
		"Size":   g.Snake.Size(),
	}).Info("game finished")
	logMetrics()
	return err
}

var terminalKeys = map[termbox.Key]rules.Move{
	termbox.KeyArrowUp:    rules.MoveUp,
	termbox.KeyArrowDown:  rules.MoveDown,
	termbox.KeyArrowLeft:  rules.MoveLeft,
	termbox.KeyArrowRight: rules.MoveRight,
}

var terminalRunes = map[rune]rules.Move{
	'w': rules.MoveUp,
	's': rules.MoveDown,
	'a': rules.MoveLeft,
	'd': rules.MoveRight,
	'W': rules.MoveUp,
	'S': rules.MoveDown,
	'A': rules.MoveLeft,
	'D': rules.MoveRight,
}

// terminal is the termbox frontend. Terminals only report key presses, never
// releases, so a key counts as held for the frame after its event arrives.
type terminal struct {
	events <-chan termbox.Event
	held   map[rules.Move]bool
	last   time.Time
	closed bool
	draw   func(*rules.Frame) error
}

func newTerminal(events <-chan termbox.Event) *terminal {
	return &terminal{
		events: events,
		held:   map[rules.Move]bool{},
		last:   time.Now(),
		draw:   render,
	}
}

// FrameTime returns the time since the previous frame and drains the events
// that arrived in between.
func (t *terminal) FrameTime() time.Duration {
	now := time.Now()
	dt := now.Sub(t.last)
	t.last = now
	t.poll()
	return dt
}

func (t *terminal) poll() {
	for k := range t.held {
		delete(t.held, k)
	}
	for {
		select {
		case ev := <-t.events:
			t.handle(ev)
		default:
			return
		}
	}
}

func (t *terminal) handle(ev termbox.Event) {
	switch ev.Type {
	case termbox.EventKey:
		switch {
		case ev.Key == termbox.KeyEsc, ev.Key == termbox.KeyCtrlC, ev.Ch == 'q':
			t.closed = true
		case ev.Ch != 0:
			if m, ok := terminalRunes[ev.Ch]; ok {
				t.held[m] = true
			}
		default:
			if m, ok := terminalKeys[ev.Key]; ok {
				t.held[m] = true
			}
		}
	case termbox.EventInterrupt, termbox.EventError:
		t.closed = true
	}
}

func (t *terminal) IsKeyDown(m rules.Move) bool { return t.held[m] }

func (t *terminal) Draw(frame *rules.Frame) error { return t.draw(frame) }

func (t *terminal) Closed() bool { return t.closed }

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}
