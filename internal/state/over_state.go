// internal/state/over_state.go
package state

import (
	"fmt"
	"go-arena-shooter/internal/app"
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// OverState показывает итог забега.
type OverState struct {
	sm   *StateMachine
	env  *Env
	game *app.Game
}

func NewOverState(sm *StateMachine, env *Env, game *app.Game) *OverState {
	return &OverState{sm: sm, env: env, game: game}
}

func (s *OverState) Enter() {
	if err := s.game.SaveProfile(); err != nil {
		s.env.Log.Error("failed to save profile", "err", err)
	}
}

func (s *OverState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		next := s.env.Restart(s.game)
		next.Start()
		s.sm.SetState(NewGameState(s.sm, s.env, next))
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		s.sm.SetState(NewMenuState(s.sm, s.env, s.env.Restart(s.game)))
	}
}

func (s *OverState) Draw(screen *ebiten.Image) {
	screen.Fill(config.TextDarkColor)
	w := s.game.World
	title := "GAME OVER"
	if w.Phase == component.PhaseWon {
		title = "VICTORY!"
	}
	face := basicfont.Face7x13
	lines := []string{
		title,
		fmt.Sprintf("Wave %d  Kills %d  Max combo %d", w.Wave, w.Kills, w.MaxCombo),
		fmt.Sprintf("Gold %d  Best wave %d", w.Gold, w.BestWave),
		"",
		"SPACE to play again, M for menu",
	}
	for i, l := range lines {
		b := text.BoundString(face, l)
		text.Draw(screen, l, face, (config.ScreenWidth-b.Dx())/2, config.ScreenHeight/3+i*18, config.TextLightColor)
	}
}

func (s *OverState) Exit() {}
