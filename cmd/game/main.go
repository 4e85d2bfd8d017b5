// cmd/game/main.go
package main

import (
	"go-arena-shooter/internal/audio"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/save"
	"go-arena-shooter/internal/state"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal(err)
	}
	logger := settings.NewLogger()
	if settings.Seed == 0 {
		settings.Seed = time.Now().UnixNano()
	}
	if settings.EnemyDefs != "" {
		if err := defs.LoadEnemyDefinitions(settings.EnemyDefs); err != nil {
			log.Fatal(err)
		}
	}

	store := save.NewFileStore(settings.SavePath, logger)
	env := state.NewEnv(settings, logger, store, audio.NewPlayer(settings.Mute, logger))

	sm := state.NewStateMachine() // Создаём машину состояний
	if settings.StartInMenu {
		sm.SetState(state.NewMenuState(sm, env, nil))
	} else {
		g := env.NewGame()
		g.Start()
		sm.SetState(state.NewGameState(sm, env, g))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Arena Shooter")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
	if err := env.SaveCurrent(); err != nil {
		logger.Error("failed to save profile on exit", "err", err)
	}
}
