// internal/state/menu_state.go
package state

import (
	"fmt"
	"go-arena-shooter/internal/app"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/ui"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var classOrder = []defs.ClassID{defs.ClassSoldier, defs.ClassSniper, defs.ClassTank, defs.ClassAssassin}

// MenuState — стартовый экран: выбор класса и запуск забега.
type MenuState struct {
	sm    *StateMachine
	env   *Env
	game  *app.Game
	start *ui.Button
}

func NewMenuState(sm *StateMachine, env *Env, game *app.Game) *MenuState {
	if game == nil {
		game = env.NewGame()
	}
	w, h := config.ScreenWidth, config.ScreenHeight
	return &MenuState{
		sm:    sm,
		env:   env,
		game:  game,
		start: ui.NewButton(image.Rect(w/2-80, h/2+40, w/2+80, h/2+80), "START"),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		m.nextClass()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || m.start.IsClicked() {
		m.game.Start()
		m.sm.SetState(NewGameState(m.sm, m.env, m.game))
	}
}

func (m *MenuState) nextClass() {
	w := m.game.World
	i := 0
	for j, c := range classOrder {
		if c == w.SelectedClass {
			i = j
		}
	}
	next := classOrder[(i+1)%len(classOrder)]
	if err := m.game.Shop.SelectClass(next); err != nil {
		m.env.Log.Warn("class select failed", "class", next, "err", err)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.TextDarkColor)
	face := basicfont.Face7x13
	w := m.game.World
	lines := []string{
		"ARENA SHOOTER",
		"",
		fmt.Sprintf("Gold: %d   Best wave: %d   Wins: %d", w.Gold, w.BestWave, w.Wins),
		fmt.Sprintf("Class: %s (TAB to change)", w.SelectedClass),
		fmt.Sprintf("Player: %s", m.game.Profile().UserID),
		"",
		"SPACE to start",
	}
	for i, l := range lines {
		b := text.BoundString(face, l)
		text.Draw(screen, l, face, (config.ScreenWidth-b.Dx())/2, config.ScreenHeight/3+i*18, config.TextLightColor)
	}
	m.start.Draw(screen, face)
}

func (m *MenuState) Exit() {}
