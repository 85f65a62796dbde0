// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	Gen  int // Clock generation that scheduled the tick
	Time time.Time
}

// FrameClock schedules simulation ticks. Start and Stop are idempotent, and
// every Start begins a new generation so that ticks scheduled before a Stop
// are rejected after a restart.
type FrameClock struct {
	rate    int
	gen     int
	running bool
}

// NewFrameClock creates a stopped clock ticking rate times per second.
func NewFrameClock(rate int) FrameClock {
	if rate <= 0 {
		rate = 60
	}
	return FrameClock{rate: rate}
}

// Start begins a new tick chain. Returns nil if the clock is already running.
func (c *FrameClock) Start() tea.Cmd {
	if c.running {
		return nil
	}
	c.running = true
	c.gen++
	return c.Next()
}

// Stop halts the clock. Ticks already in flight are rejected by Accept.
func (c *FrameClock) Stop() {
	c.running = false
}

// Running reports whether the clock is started.
func (c FrameClock) Running() bool {
	return c.running
}

// Accept reports whether a tick belongs to the current run of the clock.
func (c FrameClock) Accept(msg TickMsg) bool {
	return c.running && msg.Gen == c.gen
}

// Next schedules the following tick of the current generation.
func (c FrameClock) Next() tea.Cmd {
	if !c.running {
		return nil
	}
	gen := c.gen
	interval := time.Second / time.Duration(c.rate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
