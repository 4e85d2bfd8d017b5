// internal/state/game_state.go
package state

import (
	"go-arena-shooter/internal/app"
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/input"
	"go-arena-shooter/internal/render"
	"go-arena-shooter/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	env      *Env
	game     *app.Game
	sched    *app.Scheduler
	hud      *ui.HUD
	renderer *render.Renderer
	console  consoleOverlay
	pending  component.Input
}

func NewGameState(sm *StateMachine, env *Env, game *app.Game) *GameState {
	hud := ui.NewHUD(config.ScreenWidth, config.ScreenHeight)
	game.Events.SubscribeAll(hud.Toasts)
	return &GameState{
		sm:       sm,
		env:      env,
		game:     game,
		sched:    app.NewScheduler(game, env.NowMs()),
		hud:      hud,
		renderer: render.NewRenderer(config.ScreenWidth, config.ScreenHeight),
	}
}

// Game exposes the session for other states.
func (g *GameState) Game() *app.Game { return g.game }

func (g *GameState) Enter() {
	g.sched.Resume()
	g.hud.Pause.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	g.hud.Update(deltaTime * 1000)

	if !g.console.open && (inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) || g.pauseClicked()) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if g.console.update(g.game) {
		// Пока консоль открыта, игра идёт без ввода игрока.
		g.sched.Frame(g.env.NowMs(), component.Input{})
	} else {
		g.pending = input.Merge(g.pending, input.Poll(input.Ebiten{}))
		if g.sched.Frame(g.env.NowMs(), g.pending) {
			g.pending = component.Input{}
		}
	}

	switch g.game.World.Phase {
	case component.PhaseOver, component.PhaseWon:
		g.sm.SetState(NewOverState(g.sm, g.env, g.game))
	}
}

func (g *GameState) pauseClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return g.hud.Pause.IsClicked(ebiten.CursorPosition())
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.game.World.Snapshot()
	g.renderer.Draw(screen, snap)
	g.hud.Draw(screen, snap)
	g.console.draw(screen, g.game, g.hud.Face)
}

// Exit не освобождает ресурсы: пауза возвращается в это же состояние.
func (g *GameState) Exit() {
	g.sched.Pause()
}
