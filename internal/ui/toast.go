// internal/ui/toast.go
package ui

import (
	"fmt"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const (
	toastLifeMs   = 2500.0
	maxToasts     = 5
	toastLineStep = 18
)

// Toast — всплывающее уведомление.
type Toast struct {
	Text string
	Left float64 // мс до исчезновения
}

// Toasts turns dispatcher events into short-lived notifications.
type Toasts struct {
	items []Toast
}

func NewToasts() *Toasts { return &Toasts{} }

// OnEvent implements event.Listener.
func (t *Toasts) OnEvent(e event.Event) {
	if msg, ok := Message(e); ok {
		t.Push(msg)
	}
}

// Push добавляет уведомление; самые старые вытесняются.
func (t *Toasts) Push(msg string) {
	t.items = append(t.items, Toast{Text: msg, Left: toastLifeMs})
	if len(t.items) > maxToasts {
		t.items = t.items[len(t.items)-maxToasts:]
	}
}

// Update ages the toasts by deltaMs and drops expired ones.
func (t *Toasts) Update(deltaMs float64) {
	out := t.items[:0]
	for _, it := range t.items {
		it.Left -= deltaMs
		if it.Left > 0 {
			out = append(out, it)
		}
	}
	t.items = out
}

// Items returns the visible toasts, oldest first.
func (t *Toasts) Items() []Toast { return t.items }

func (t *Toasts) Draw(screen *ebiten.Image, x, y int, face font.Face) {
	for i, it := range t.items {
		text.Draw(screen, it.Text, face, x, y+i*toastLineStep, config.ToastColor)
	}
}

// Message formats an event for the player. Events with nothing to show
// report false.
func Message(e event.Event) (string, bool) {
	switch d := e.Data.(type) {
	case event.KillData:
		if d.IsBoss {
			return fmt.Sprintf("BOSS DEFEATED! +%d", d.Gold), true
		}
	case event.ComboData:
		if e.Type == event.ComboBonus {
			return fmt.Sprintf("COMBO x%d! +%d gold", d.Count, d.Bonus), true
		}
		return fmt.Sprintf("Combo broken at %d", d.Count), true
	case event.UnlockData:
		if e.Type == event.BadgeUnlocked {
			return "Badge: " + d.Name, true
		}
		return fmt.Sprintf("Achievement: %s +%d", d.Name, d.Reward), true
	case event.DomainData:
		if e.Type == event.DomainActivated {
			return d.Name + " ACTIVATED", true
		}
		return d.Name + " ended", true
	case event.WaveData:
		switch e.Type {
		case event.BossWave:
			return fmt.Sprintf("BOSS WAVE %s", ToRoman(d.Wave)), true
		case event.RoundCleared:
			return fmt.Sprintf("ROUND CLEAR (%d/%d)", d.Round, config.RoundsPerWave), true
		case event.GameOver:
			return "GAME OVER", true
		case event.Victory:
			return "VICTORY!", true
		}
	case event.SpecialWaveData:
		return d.Name + "!", true
	case event.ChestData:
		if d.Amount > 0 {
			return fmt.Sprintf("Chest: %s +%d", d.Reward, d.Amount), true
		}
		return "Chest: " + d.Reward, true
	case event.PickupData:
		return "+" + d.Kind, true
	case event.PurchaseData:
		if d.Cost < 0 {
			return fmt.Sprintf("Daily bonus +%d", -d.Cost), true
		}
		return fmt.Sprintf("Bought %s (-%d)", d.Item, d.Cost), true
	}
	return "", false
}
