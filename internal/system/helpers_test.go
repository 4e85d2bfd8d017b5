package system

import (
	"testing"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/timer"
	"go-arena-shooter/internal/utils"
)

// rig связывает все системы вокруг одного мира, как это делает игра.
type rig struct {
	w       *entity.World
	d       *event.Dispatcher
	q       *timer.Queue
	fx      *ParticleSystem
	prog    *ProgressionSystem
	combat  *CombatSystem
	enemies *EnemySystem
	player  *PlayerSystem
	allies  *AllySystem
	domains *DomainEngine
	waves   *WaveSystem
	bombs   *BombSystem
	shop    *Shop
	seen    []event.Event
}

func newRig(t *testing.T, r utils.Random) *rig {
	t.Helper()
	if r == nil {
		r = utils.Constant(0.99)
	}
	w := entity.NewWorld(entity.Options{Width: 800, Height: 600, Rand: r})
	w.Phase = component.PhaseRunning
	g := &rig{w: w, d: event.NewDispatcher(), q: timer.NewQueue()}
	g.d.SubscribeAll(event.ListenerFunc(func(e event.Event) { g.seen = append(g.seen, e) }))
	g.fx = NewParticleSystem(w, utils.Constant(0.5))
	g.prog = NewProgressionSystem(w, g.d, g.q, g.fx)
	g.combat = NewCombatSystem(w, g.d, g.fx)
	g.enemies = NewEnemySystem(w, g.d, g.fx, g.prog)
	g.player = NewPlayerSystem(w)
	g.allies = NewAllySystem(w, g.fx)
	g.domains = NewDomainEngine(w, g.d, g.q, g.fx)
	g.waves = NewWaveSystem(w, g.d, g.q, g.domains)
	g.bombs = NewBombSystem(w, g.fx)
	g.shop = NewShop(w, g.d, g.q)
	return g
}

func (g *rig) count(t event.EventType) int {
	n := 0
	for _, e := range g.seen {
		if e.Type == t {
			n++
		}
	}
	return n
}

// at moves the clock and fires due timers.
func (g *rig) at(now float64) {
	g.w.Now = now
	g.q.RunDue(now)
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
