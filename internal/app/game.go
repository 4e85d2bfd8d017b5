// internal/app/game.go
package app

import (
	"go-arena-shooter/internal/admin"
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/save"
	"go-arena-shooter/internal/system"
	"go-arena-shooter/internal/timer"
	"go-arena-shooter/internal/utils"
	"log/slog"
)

// ProfileStore persists the profile between sessions.
type ProfileStore interface {
	Load() (save.Profile, error)
	Save(p save.Profile) error
}

// Options configures a Game. Zero values fall back to the playfield
// constants and seeded generators.
type Options struct {
	Width, Height float64
	WavesToWin    int
	Seed          int64
	Rand          utils.Random // игровые броски; по умолчанию PRNG от Seed
	FxRand        utils.Random // только частицы
	Logger        *slog.Logger
	Store         ProfileStore
}

// Game holds the session and every system that advances it.
type Game struct {
	World  *entity.World
	Events *event.Dispatcher
	Timers *timer.Queue

	Particles   *system.ParticleSystem
	Progression *system.ProgressionSystem
	Combat      *system.CombatSystem
	Enemies     *system.EnemySystem
	Players     *system.PlayerSystem
	Allies      *system.AllySystem
	Domains     *system.DomainEngine
	Waves       *system.WaveSystem
	Bombs       *system.BombSystem
	Shop        *system.Shop
	Console     *admin.Console

	store  ProfileStore
	log    *slog.Logger
	userID string
}

// NewGame builds a session in the menu phase.
func NewGame(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Rand == nil {
		opts.Rand = utils.NewPRNGService(opts.Seed)
	}
	if opts.FxRand == nil {
		opts.FxRand = utils.NewPRNGService(opts.Seed + 1)
	}

	w := entity.NewWorld(entity.Options{
		Width:      opts.Width,
		Height:     opts.Height,
		WavesToWin: opts.WavesToWin,
		Rand:       opts.Rand,
		Logger:     opts.Logger,
	})
	d := event.NewDispatcher()
	q := timer.NewQueue()

	g := &Game{
		World:  w,
		Events: d,
		Timers: q,
		store:  opts.Store,
		log:    opts.Logger,
	}
	g.Particles = system.NewParticleSystem(w, opts.FxRand)
	g.Progression = system.NewProgressionSystem(w, d, q, g.Particles)
	g.Combat = system.NewCombatSystem(w, d, g.Particles)
	g.Enemies = system.NewEnemySystem(w, d, g.Particles, g.Progression)
	g.Players = system.NewPlayerSystem(w)
	g.Allies = system.NewAllySystem(w, g.Particles)
	g.Domains = system.NewDomainEngine(w, d, q, g.Particles)
	g.Waves = system.NewWaveSystem(w, d, q, g.Domains)
	g.Bombs = system.NewBombSystem(w, g.Particles)
	g.Shop = system.NewShop(w, d, q)
	g.Console = admin.NewConsole(w, g.Domains, d)

	if g.store != nil {
		saver := &profileSaver{game: g}
		for _, t := range []event.EventType{
			event.AchievementUnlocked,
			event.BadgeUnlocked,
			event.GameOver,
			event.Victory,
			event.Purchase,
		} {
			d.Subscribe(t, saver)
		}
	}
	return g
}

// Start begins the run: class bonus, then the first wave.
func (g *Game) Start() {
	w := g.World
	if w.Phase == component.PhaseRunning {
		return
	}
	w.Phase = component.PhaseRunning
	w.RoundInWave = 1
	w.Player.X = w.Width / 2
	w.Player.Y = w.Height / 2
	g.applyClassBonus()
	g.Waves.SpawnWave(config.EnemiesPerRound)
	g.log.Info("run started", "class", w.SelectedClass, "maxHp", w.MaxHP, "wave", w.Wave)
}

func (g *Game) applyClassBonus() {
	w := g.World
	cls, err := defs.Class(w.SelectedClass)
	if err != nil {
		g.log.Error("unknown class, no bonus applied", "class", w.SelectedClass, "err", err)
		return
	}
	w.MaxHP = float64(config.PlayerStartHP + cls.HPBonus)
	w.HP = min(w.HP, w.MaxHP)
}

// Tick advances the simulation by one step. Порядок фиксирован: каждая
// система видит результаты предыдущей в том же тике.
func (g *Game) Tick(deltaMs float64, in component.Input) {
	w := g.World
	if w.Phase != component.PhaseRunning {
		return
	}
	w.Now += deltaMs
	w.PlayTimeMs += deltaMs

	g.Players.Update(in)
	g.Allies.Follow()
	g.Allies.Update()
	g.Enemies.Advance()
	if w.Phase != component.PhaseRunning {
		// Контактный урон закончил забег, остаток тика не выполняется.
		return
	}
	g.Combat.AdvanceBullets()
	g.Particles.Update()
	g.Progression.UpdateChests()
	g.Progression.UpdatePickups()
	g.handleHotkeys(in)
	g.Combat.Fire(in)
	g.Waves.CheckClear()
	g.Domains.Tick(deltaMs)
	g.Progression.DecayCombo()
	g.Progression.EvaluateBadges()
	g.Timers.RunDue(w.Now)
}

func (g *Game) handleHotkeys(in component.Input) {
	if in.Domain != defs.DomainNone {
		if err := g.Domains.Activate(in.Domain, 0); err != nil {
			g.log.Debug("domain hotkey rejected", "domain", in.Domain, "err", err)
		}
	}
	if in.Bomb != "" {
		if err := g.Bombs.Use(in.Bomb); err != nil {
			g.log.Debug("bomb rejected", "bomb", in.Bomb, "err", err)
		}
	}
}

// Execute runs one admin console line.
func (g *Game) Execute(line string) (string, error) {
	return g.Console.Execute(admin.Parse(line))
}

// Profile captures the persistent state of the session.
func (g *Game) Profile() save.Profile {
	p := save.FromWorld(g.World)
	p.UserID = g.userID
	return p
}

// ApplyProfile loads persisted progress before the run starts.
func (g *Game) ApplyProfile(p save.Profile) {
	p.Apply(g.World)
	g.userID = p.UserID
}

// Restart replaces the session with a fresh one that keeps the profile.
func (g *Game) Restart(opts Options) *Game {
	p := g.Profile()
	if opts.Store == nil {
		opts.Store = g.store
	}
	if opts.Logger == nil {
		opts.Logger = g.log
	}
	next := NewGame(opts)
	next.ApplyProfile(p)
	return next
}

// SaveProfile writes the profile if a store is configured.
func (g *Game) SaveProfile() error {
	if g.store == nil {
		return nil
	}
	return g.store.Save(g.Profile())
}

type profileSaver struct {
	game *Game
}

func (s *profileSaver) OnEvent(e event.Event) {
	if err := s.game.SaveProfile(); err != nil {
		s.game.log.Error("failed to save profile", "event", e.Type, "err", err)
	}
}
