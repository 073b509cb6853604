// Package tui provides the Bubble Tea integration for the memory game.
// It handles the terminal UI loop, input mapping, board picking and the SSH front end.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen ties the tick to the GameModel that scheduled it.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

// tickGen hands out a fresh generation to every GameModel.
var tickGen atomic.Uint64

func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
