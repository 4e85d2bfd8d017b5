// internal/app/scheduler.go
package app

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
)

// Ticker is anything that can advance one simulation step.
type Ticker interface {
	Tick(deltaMs float64, in component.Input)
}

// Scheduler turns host frames into simulation ticks, at most one per
// config.TickIntervalMs of host time. The delta passed to the ticker is the
// real elapsed time since the previous tick.
type Scheduler struct {
	game      Ticker
	lastFrame float64
	paused    bool
}

func NewScheduler(game Ticker, nowMs float64) *Scheduler {
	return &Scheduler{game: game, lastFrame: nowMs}
}

// Frame is called once per host frame and reports whether a tick ran.
func (s *Scheduler) Frame(nowMs float64, in component.Input) bool {
	if s.paused {
		return false
	}
	delta := nowMs - s.lastFrame
	if delta < config.TickIntervalMs {
		return false
	}
	s.lastFrame = nowMs
	s.game.Tick(delta, in)
	return true
}

// Pause stops ticking. Отложенные действия в очереди не отменяются.
func (s *Scheduler) Pause() { s.paused = true }

// Resume continues from the last frame stamp, so the first tick after a
// pause carries the whole paused interval.
func (s *Scheduler) Resume() { s.paused = false }

func (s *Scheduler) Paused() bool { return s.paused }
