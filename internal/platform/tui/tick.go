// Package tui provides the Bubble Tea integration for frotz.
// It runs the frame loop, maps keys to actions, and hosts the puzzle picker,
// the solve board and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const maxTickRate = 240

var loopSeq atomic.Uint64

// TickMsg drives one frame of a game loop. Loop identifies the model that
// scheduled it, so a tick still in flight after a game was closed is not
// delivered to the next one.
type TickMsg struct {
	Loop uint64
	At   time.Time
}

func nextLoop() uint64 {
	return loopSeq.Add(1)
}

// frameInterval is the delay between frames at rate frames per second.
func frameInterval(rate int) time.Duration {
	rate = min(max(rate, 1), maxTickRate)
	return time.Second / time.Duration(rate)
}

func tickCmd(loop uint64, rate int) tea.Cmd {
	return tea.Tick(frameInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, At: t}
	})
}
