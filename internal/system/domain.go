// internal/system/domain.go
package system

import (
	"fmt"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/timer"
)

// DomainEffect is the activation behavior of one domain. A strategy may also
// implement DomainTicker and DomainEnder.
type DomainEffect interface {
	OnActivate(e *DomainEngine)
}

// DomainTicker runs every tick while its domain is active.
type DomainTicker interface {
	OnTick(e *DomainEngine, deltaMs float64)
}

// DomainEnder cleans up when its domain's timer runs out.
type DomainEnder interface {
	OnEnd(e *DomainEngine)
}

// DomainEngine активирует домены и ведёт их таймер. Одновременно активен не
// более чем один домен.
type DomainEngine struct {
	world      *entity.World
	events     *event.Dispatcher
	timers     *timer.Queue
	particles  *ParticleSystem
	strategies map[defs.DomainID]DomainEffect
}

func NewDomainEngine(w *entity.World, d *event.Dispatcher, q *timer.Queue, p *ParticleSystem) *DomainEngine {
	return &DomainEngine{
		world:      w,
		events:     d,
		timers:     q,
		particles:  p,
		strategies: defaultStrategies(),
	}
}

// World exposes the session to strategies.
func (e *DomainEngine) World() *entity.World { return e.world }

// Activate starts domain id for customMs, or for its catalog duration when
// customMs is not positive. A running domain makes the call a no-op that
// returns ErrDomainActive.
func (e *DomainEngine) Activate(id defs.DomainID, customMs float64) error {
	w := e.world
	def, err := defs.Domain(id)
	if err != nil {
		w.Log.Error("domain rejected", "id", int(id), "err", err)
		return err
	}
	if w.Domain.IsActive() {
		return fmt.Errorf("%w: %s", ErrDomainActive, w.Domain.Active)
	}
	w.Domain.Active = id
	w.Domain.Timer = def.DurationMs
	if customMs > 0 {
		w.Domain.Timer = customMs
	}
	e.apply(def)
	w.Log.Info("domain activated", "id", int(id), "name", def.Name, "ms", w.Domain.Timer)
	e.events.Emit(event.DomainActivated, event.DomainData{ID: int(id), Name: def.Name})
	return nil
}

// ApplyEffect runs a domain's activation effect without touching the active
// slot or the timer.
func (e *DomainEngine) ApplyEffect(id defs.DomainID) error {
	def, err := defs.Domain(id)
	if err != nil {
		return err
	}
	e.apply(def)
	return nil
}

// apply honours the Court of Justice immunity: while Court is the active
// domain only domains flagged BypassesImmunity take effect.
func (e *DomainEngine) apply(def defs.DomainDefinition) {
	d := e.world.Domain
	if d.Active == defs.DomainCourt && d.DomainImmune && !def.BypassesImmunity {
		e.world.Log.Debug("domain effect blocked by immunity", "id", int(def.ID))
		return
	}
	if s, ok := e.strategies[def.ID]; ok {
		s.OnActivate(e)
	}
}

// Tick counts the active domain down by deltaMs and ends it at zero.
func (e *DomainEngine) Tick(deltaMs float64) {
	d := &e.world.Domain
	if !d.IsActive() {
		return
	}
	d.Timer -= deltaMs
	if t, ok := e.strategies[d.Active].(DomainTicker); ok {
		t.OnTick(e, deltaMs)
	}
	if d.Timer <= 0 {
		e.End()
	}
}

// DoubleTimer doubles the remaining time of the active domain.
func (e *DomainEngine) DoubleTimer() bool {
	d := &e.world.Domain
	if !d.IsActive() {
		return false
	}
	d.Timer *= 2
	return true
}

// End runs the active domain's cleanup and frees the slot.
func (e *DomainEngine) End() {
	w := e.world
	id := w.Domain.Active
	if id == defs.DomainNone {
		return
	}
	if s, ok := e.strategies[id].(DomainEnder); ok {
		s.OnEnd(e)
	}
	w.Domain.Active = defs.DomainNone
	w.Domain.Timer = 0
	w.Log.Info("domain ended", "id", int(id))
	e.events.Emit(event.DomainEnded, event.DomainData{ID: int(id), Name: id.String()})
}
