// internal/state/pause_state.go
package state

import (
	"go-arena-shooter/internal/config"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{stateMachine: sm, previousState: prev}
}

func (s *PauseState) Enter() {
	s.previousState.hud.Pause.SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.stateMachine.SetState(s.previousState)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		// Сдаться: забег закончится через отложенное действие после возврата.
		if err := s.previousState.game.Shop.Surrender(); err != nil {
			s.previousState.env.Log.Info("surrender rejected", "err", err)
			return
		}
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)

	face := basicfont.Face7x13
	for i, l := range []string{"PAUSED", "P to resume, Q to surrender"} {
		b := text.BoundString(face, l)
		text.Draw(screen, l, face, (config.ScreenWidth-b.Dx())/2, config.ScreenHeight/2+i*18, color.White)
	}
}

func (s *PauseState) Exit() {}
