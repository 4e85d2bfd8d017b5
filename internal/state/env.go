// internal/state/env.go
package state

import (
	"go-arena-shooter/internal/app"
	"go-arena-shooter/internal/audio"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/event"
	"log/slog"
	"time"
)

// Env — общее окружение всех состояний одного процесса.
type Env struct {
	Settings config.Settings
	Log      *slog.Logger
	Store    app.ProfileStore
	Audio    *audio.Player // nil без звука
	Clock    func() time.Time
	started  time.Time
	current  *app.Game
}

func NewEnv(s config.Settings, log *slog.Logger, store app.ProfileStore, sound *audio.Player) *Env {
	return &Env{Settings: s, Log: log, Store: store, Audio: sound, Clock: time.Now, started: time.Now()}
}

// NowMs is the host clock in milliseconds since the process started.
func (e *Env) NowMs() float64 {
	return float64(e.Clock().Sub(e.started).Microseconds()) / 1000
}

// Options builds game options from the settings.
func (e *Env) Options() app.Options {
	return app.Options{
		Width:      config.ScreenWidth,
		Height:     config.ScreenHeight,
		WavesToWin: e.Settings.WavesToWin,
		Seed:       e.Settings.Seed,
		Logger:     e.Log,
		Store:      e.Store,
	}
}

// NewGame creates a session with the persisted profile applied.
func (e *Env) NewGame() *app.Game {
	g := app.NewGame(e.Options())
	if e.Store != nil {
		p, err := e.Store.Load()
		if err != nil {
			e.Log.Warn("profile load failed, starting fresh", "err", err)
		}
		g.ApplyProfile(p)
	}
	e.attach(g)
	return g
}

// Restart keeps the profile of a finished session.
func (e *Env) Restart(g *app.Game) *app.Game {
	next := g.Restart(e.Options())
	e.attach(next)
	return next
}

func (e *Env) attach(g *app.Game) {
	e.current = g
	if e.Audio != nil {
		g.Events.SubscribeAll(e.Audio)
	}
	g.Events.Subscribe(event.AdminCommand, event.ListenerFunc(func(ev event.Event) {
		if d, ok := ev.Data.(event.AdminData); ok {
			e.Log.Debug("console", "line", d.Line, "accepted", d.Accepted)
		}
	}))
}

// SaveCurrent persists the profile of the latest session.
func (e *Env) SaveCurrent() error {
	if e.current == nil {
		return nil
	}
	return e.current.SaveProfile()
}
