// Package tui renders a game in the terminal with tcell and feeds key
// presses into the rule engine.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/sim"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	lockedStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	activeStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	overStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Run drives the game loop on screen until the context is canceled or the
// player quits. It owns the terminal for its whole lifetime.
func Run(ctx context.Context, game *sim.Game, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ui := &ui{screen: screen, game: game}
	logger.Debug("terminal ready", "board_width", game.Board().Width(), "board_height", game.Board().Height())

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !ui.handleEvent(ev) {
				logger.Debug("quit", "lines", game.Lines())
				return nil
			}

		case now := <-ticker.C:
			game.Update(now.Sub(last).Seconds())
			last = now
			ui.draw()
		}
	}
}

type ui struct {
	screen tcell.Screen
	game   *sim.Game
}

// handleEvent processes one terminal event. It returns false when the
// player asked to quit.
func (u *ui) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			u.game.Press(sim.Left)
		case tcell.KeyRight:
			u.game.Press(sim.Right)
		case tcell.KeyDown:
			u.game.Press(sim.SoftDrop)
		case tcell.KeyUp:
			u.game.Press(sim.Rise)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'h':
				u.game.Press(sim.Left)
			case 'l':
				u.game.Press(sim.Right)
			case 'j':
				u.game.Press(sim.SoftDrop)
			case 'k':
				u.game.Press(sim.Rise)
			case 'r':
				u.game.Reset()
			}
		}

	case *tcell.EventResize:
		u.screen.Sync()
	}

	return true
}

// draw renders the board. Each board cell is two terminal columns wide so
// the playfield looks roughly square. The board's y axis points up, the
// terminal's points down, so rows are flipped.
func (u *ui) draw() {
	u.screen.Clear()

	board := u.game.Board()
	w, h := board.Width(), board.Height()

	// Border around the playfield.
	for y := 0; y <= h+1; y++ {
		u.screen.SetContent(0, y, '│', nil, borderStyle)
		u.screen.SetContent(1+2*w, y, '│', nil, borderStyle)
	}
	for x := 0; x <= 2*w+1; x++ {
		u.screen.SetContent(x, 0, '─', nil, borderStyle)
		u.screen.SetContent(x, h+1, '─', nil, borderStyle)
	}
	u.screen.SetContent(0, 0, '┌', nil, borderStyle)
	u.screen.SetContent(1+2*w, 0, '┐', nil, borderStyle)
	u.screen.SetContent(0, h+1, '└', nil, borderStyle)
	u.screen.SetContent(1+2*w, h+1, '┘', nil, borderStyle)

	for _, bc := range u.game.Snapshot() {
		style := lockedStyle
		if bc.Kind == sim.Active {
			style = activeStyle
		}
		sx := 1 + 2*bc.X
		sy := 1 + (h - 1 - bc.Y)
		u.screen.SetContent(sx, sy, '█', nil, style)
		u.screen.SetContent(sx+1, sy, '█', nil, style)
	}

	u.drawText(2*w+4, 1, textStyle, fmt.Sprintf("lines: %d", u.game.Lines()))
	if u.game.Over() {
		u.drawText(2*w+4, 3, overStyle, "GAME OVER")
		u.drawText(2*w+4, 4, textStyle, "press r to restart")
	}

	u.screen.Show()
}

func (u *ui) drawText(x, y int, style tcell.Style, s string) {
	for i, r := range s {
		u.screen.SetContent(x+i, y, r, nil, style)
	}
}
