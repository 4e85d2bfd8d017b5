// internal/ui/hud.go
package ui

import (
	"fmt"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD рисует панель поверх игрового поля. Читает только снимок.
type HUD struct {
	Face   font.Face
	Health *PlayerHealthIndicator
	Wave   *WaveIndicator
	Domain *DomainIndicator
	Pause  *PauseButton
	Toasts *Toasts
}

func NewHUD(width, height int) *HUD {
	return &HUD{
		Face:   basicfont.Face7x13,
		Health: NewPlayerHealthIndicator(20, 30, 200, 14),
		Wave:   NewWaveIndicator(width/2, 24),
		Domain: NewDomainIndicator(float32(width-40), 40, 18),
		Pause:  NewPauseButton(float32(width-90), 40, 10, config.TextLightColor, config.PlayerColor),
		Toasts: NewToasts(),
	}
}

// Update ages toasts by the host frame time.
func (h *HUD) Update(deltaMs float64) {
	h.Toasts.Update(deltaMs)
}

func (h *HUD) Draw(screen *ebiten.Image, s entity.Snapshot) {
	h.Health.Draw(screen, s.HP, s.MaxHP, s.Invincible, h.Face)
	h.Wave.Draw(screen, s.Wave, s.Round, h.Face)
	h.Pause.Draw(screen)

	text.Draw(screen, fmt.Sprintf("Gold: %d", s.Gold), h.Face, 20, 64, config.ChestColor)
	text.Draw(screen, fmt.Sprintf("Kills: %d", s.Kills), h.Face, 20, 80, config.TextLightColor)
	if s.Combo > 1 {
		text.Draw(screen, ComboLabel(s.Combo, s.Multiplier), h.Face, 20, 96, config.ToastColor)
	}
	if line := BombLine(s.Bombs); line != "" {
		text.Draw(screen, line, h.Face, 20, 112, config.TextLightColor)
	}

	if def, err := defs.Domain(s.Domain); err == nil {
		h.Domain.Draw(screen, def.Color, s.DomainTimer/def.DurationMs)
		label := fmt.Sprintf("%s %.1fs", def.Name, math.Max(0, s.DomainTimer)/1000)
		b := text.BoundString(h.Face, label)
		text.Draw(screen, label, h.Face, int(h.Domain.X)-b.Dx()-30, int(h.Domain.Y)+4, def.Color)
	}

	if s.WaveWon {
		label := fmt.Sprintf("ROUND CLEAR (%d/%d)", s.Round, config.RoundsPerWave)
		b := text.BoundString(h.Face, label)
		text.Draw(screen, label, h.Face, (screen.Bounds().Dx()-b.Dx())/2, screen.Bounds().Dy()/2, config.BannerColor)
	}

	h.Toasts.Draw(screen, 20, 140, h.Face)
}

// ComboLabel formats the combo counter, e.g. "Combo x7 (1.7)".
func ComboLabel(count int, mult float64) string {
	return fmt.Sprintf("Combo x%d (%.1f)", count, mult)
}

// BombLine lists bomb stock in catalog order, skipping empty slots.
func BombLine(stock map[defs.BombType]int) string {
	line := ""
	for _, t := range defs.BombOrder {
		if n := stock[t]; n > 0 {
			if line != "" {
				line += "  "
			}
			line += fmt.Sprintf("%s:%d", t, n)
		}
	}
	return line
}
