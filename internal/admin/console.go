// internal/admin/console.go
package admin

import (
	"errors"
	"fmt"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"slices"
	"sort"
	"strings"
)

//go:generate go tool mockgen -destination=./mocks/domain_mock.go -package=mocks . DomainController

// DomainController is the part of the domain engine the console drives.
type DomainController interface {
	Activate(id defs.DomainID, customMs float64) error
	ApplyEffect(id defs.DomainID) error
	DoubleTimer() bool
}

var (
	ErrNoAccess    = errors.New("admin not unlocked")
	ErrLevelTooLow = errors.New("admin level too low")
	ErrBadArgument = errors.New("bad argument")
	ErrUnknown     = errors.New("unknown command")
)

type handler struct {
	level int
	usage string
	run   func(c *Console, cmd Command) (string, error)
}

// Console применяет команды администратора к миру. Уровни 0–3 монотонны:
// каждый следующий включает предыдущие. Из нескольких обработчиков одной
// команды срабатывает самый высокий доступный.
type Console struct {
	world    *entity.World
	domains  DomainController
	events   *event.Dispatcher
	handlers map[string][]handler
	lines    []string
}

// maxLines — сколько строк вывода хранит консоль.
const maxLines = 50

func NewConsole(w *entity.World, domains DomainController, d *event.Dispatcher) *Console {
	c := &Console{world: w, domains: domains, events: d, handlers: make(map[string][]handler)}
	c.register()
	return c
}

func (c *Console) handle(name string, level int, usage string, run func(c *Console, cmd Command) (string, error)) {
	hs := append(c.handlers[name], handler{level: level, usage: usage, run: run})
	sort.Slice(hs, func(i, j int) bool { return hs[i].level > hs[j].level })
	c.handlers[name] = hs
}

// Execute runs one command and returns the console output line. Rejected
// commands change nothing; the reason is in the returned error and in the
// line itself.
func (c *Console) Execute(cmd Command) (string, error) {
	out, err := c.execute(cmd)
	c.lines = append(c.lines, out)
	if len(c.lines) > maxLines {
		c.lines = c.lines[len(c.lines)-maxLines:]
	}
	if err != nil {
		c.world.Log.Warn("admin command rejected", "line", cmd.Line, "level", c.world.AdminLevel, "err", err)
	} else {
		c.world.Log.Info("admin command", "line", cmd.Line, "level", c.world.AdminLevel)
	}
	c.events.Emit(event.AdminCommand, event.AdminData{Line: cmd.Line, Accepted: err == nil})
	return out, err
}

func (c *Console) execute(cmd Command) (string, error) {
	w := c.world
	if !w.HasAdminAccess {
		return fmt.Sprintf("ADMIN NOT UNLOCKED! Cost: %d coins", config.AdminAccessCost), ErrNoAccess
	}
	hs, ok := c.handlers[cmd.Name]
	if !ok {
		return fmt.Sprintf("Unknown command: %s", cmd.Name), ErrUnknown
	}
	for _, h := range hs {
		if h.level <= w.AdminLevel {
			return h.run(c, cmd)
		}
	}
	return fmt.Sprintf("%s needs admin level %d", cmd.Name, hs[len(hs)-1].level), ErrLevelTooLow
}

func (c *Console) domainArg(cmd Command, lo, hi int) (defs.DomainID, error) {
	n, err := cmd.IntArg()
	if err != nil || n < lo || n > hi {
		return defs.DomainNone, fmt.Errorf("%w: domain must be %d-%d", ErrBadArgument, lo, hi)
	}
	return defs.DomainID(n), nil
}

func (c *Console) register() {
	// Уровень 3
	c.handle("infdomain", 3, "infdomain N", func(c *Console, cmd Command) (string, error) {
		id, err := c.domainArg(cmd, 1, 10)
		if err != nil {
			return err.Error(), err
		}
		if err := c.domains.Activate(id, config.InfiniteDomainMs); err != nil {
			return err.Error(), err
		}
		return fmt.Sprintf("Infinite domain %d activated", id), nil
	})
	c.handle("mix", 3, "mix", func(c *Console, cmd Command) (string, error) {
		for id := defs.DomainInfiniteWhite; id <= defs.DomainParadise; id++ {
			if err := c.domains.ApplyEffect(id); err != nil {
				return err.Error(), err
			}
		}
		return "All domains mixed!", nil
	})
	c.handle("kill_all", 3, "kill_all", func(c *Console, cmd Command) (string, error) {
		clear(c.world.Enemies)
		c.world.Enemies = c.world.Enemies[:0]
		return "All enemies eliminated", nil
	})
	c.handle("invincible", 3, "invincible", func(c *Console, cmd Command) (string, error) {
		c.world.Invincible = !c.world.Invincible
		return fmt.Sprintf("Invincible: %v", c.world.Invincible), nil
	})
	c.handle("edit_gold", 3, "edit_gold N", func(c *Console, cmd Command) (string, error) {
		n, err := cmd.IntArg()
		if err != nil || n < 0 {
			err = fmt.Errorf("%w: gold must be a non-negative integer", ErrBadArgument)
			return err.Error(), err
		}
		c.world.Gold = n
		return fmt.Sprintf("Gold set to %d", n), nil
	})
	c.handle("noclip", 3, "noclip", func(c *Console, cmd Command) (string, error) {
		c.world.Noclip = !c.world.Noclip
		return fmt.Sprintf("Noclip: %v", c.world.Noclip), nil
	})

	// Уровень 2
	c.handle("domain", 2, "domain N", func(c *Console, cmd Command) (string, error) {
		id, err := c.domainArg(cmd, 1, 10)
		if err != nil {
			return err.Error(), err
		}
		if err := c.domains.Activate(id, 0); err != nil {
			return err.Error(), err
		}
		return fmt.Sprintf("Domain %d activated", id), nil
	})
	c.handle("double", 2, "double", func(c *Console, cmd Command) (string, error) {
		if !c.domains.DoubleTimer() {
			err := fmt.Errorf("%w: no active domain", ErrBadArgument)
			return err.Error(), err
		}
		return "Domain time doubled", nil
	})
	c.handle("spawn_car", 2, "spawn_car", func(c *Console, cmd Command) (string, error) {
		w := c.world
		if !slices.Contains(w.OwnedVehicles, defs.VehicleTank) {
			w.OwnedVehicles = append(w.OwnedVehicles, defs.VehicleTank)
		}
		w.Player.Vehicle = defs.VehicleTank
		return "Vehicle spawned nearby", nil
	})
	c.handle("give_bomb", 2, "give_bomb T", func(c *Console, cmd Command) (string, error) {
		t := defs.BombType(strings.ToLower(cmd.Arg))
		if _, err := defs.Bomb(t); err != nil {
			err = fmt.Errorf("%w: %v", ErrBadArgument, err)
			return err.Error(), err
		}
		c.world.Bombs[t]++
		return fmt.Sprintf("Bomb %s added", t), nil
	})
	c.handle("god_mode", 2, "god_mode", func(c *Console, cmd Command) (string, error) {
		c.world.GodMode = !c.world.GodMode
		return fmt.Sprintf("God mode: %v", c.world.GodMode), nil
	})

	// Уровень 1
	c.handle("domain", 1, "domain N (5-10)", func(c *Console, cmd Command) (string, error) {
		id, err := c.domainArg(cmd, 5, 10)
		if err != nil {
			return "Moderators can only use domains 5-10", err
		}
		if err := c.domains.Activate(id, 0); err != nil {
			return err.Error(), err
		}
		return fmt.Sprintf("Domain %d activated", id), nil
	})
	c.handle("teleport", 1, "teleport", func(c *Console, cmd Command) (string, error) {
		w := c.world
		w.Player.X = w.Rand.Float64() * w.Width
		w.Player.Y = w.Rand.Float64() * w.Height
		return "Teleported", nil
	})
	c.handle("give_gold", 1, "give_gold", func(c *Console, cmd Command) (string, error) {
		c.world.Gold += 100
		return "100 gold added", nil
	})

	// Любой открытый уровень
	c.handle("setlevel", 0, "setlevel N", func(c *Console, cmd Command) (string, error) {
		n, err := cmd.IntArg()
		if err != nil || n < 0 || n > config.MaxAdminLevel {
			err = fmt.Errorf("%w: level must be 0-%d", ErrBadArgument, config.MaxAdminLevel)
			return err.Error(), err
		}
		c.world.AdminLevel = n
		return fmt.Sprintf("Admin level set to %d", n), nil
	})
	c.handle("help", 0, "help", func(c *Console, cmd Command) (string, error) {
		return "Commands: " + strings.Join(c.Available(), ", "), nil
	})
}

// Lines returns the console output, oldest first.
func (c *Console) Lines() []string { return slices.Clone(c.lines) }

// Available lists the usages open at the current admin level.
func (c *Console) Available() []string {
	var out []string
	for _, hs := range c.handlers {
		for _, h := range hs {
			if h.level <= c.world.AdminLevel {
				out = append(out, h.usage)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}
