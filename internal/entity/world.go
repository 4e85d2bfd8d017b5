// internal/entity/world.go
package entity

import (
	"errors"
	"fmt"
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/utils"
	"log/slog"
)

// Never is a timestamp far enough in the past that every cooldown is ready.
const Never = -1e12

// Options configures a new session.
type Options struct {
	Width, Height float64
	WavesToWin    int
	Rand          utils.Random
	Logger        *slog.Logger
}

// World — полное состояние одной игровой сессии. Передаётся каждой системе
// явно; глобального состояния нет, поэтому тесты могут держать несколько
// миров одновременно.
type World struct {
	Now    float64 // часы симуляции, мс
	Width  float64
	Height float64
	Rand   utils.Random
	Log    *slog.Logger
	nextID component.ID

	Phase           component.Phase
	Wave            int
	RoundInWave     int
	WaveWon         bool
	BossWave        bool
	WavesToWin      int
	WavesSurvived   int
	ScoreMultiplier float64
	SpecialWave     string
	UpgradePoints   int

	Gold             int
	Kills            int
	KillStreak       int
	Headshots        int
	Criticals        int
	MaxCombo         int
	TotalDamageDealt float64
	BossesDefeated   int
	PickupsCollected int
	NoDamageRun      bool
	WeaponKills      map[defs.WeaponID]int

	HP         float64
	MaxHP      float64
	Invincible bool
	GodMode    bool
	Noclip     bool

	Player             component.Player
	Stats              component.PlayerStats
	Allies             []*component.Ally
	MaxAllies          int
	AIControlledAllies bool
	Enemies            []*component.Enemy
	Bullets            []*component.Bullet
	Particles          []*component.Particle
	Pickups            []*component.Pickup
	Chests             []*component.Chest
	Bombs              map[defs.BombType]int
	Domain             component.DomainState
	Combo              component.Combo

	Achievements map[defs.AchievementID]bool
	Badges       map[defs.BadgeID]bool

	// Данные профиля, переживающие сессию.
	OwnedWeapons   []defs.WeaponID
	OwnedAvatars   []defs.AvatarID
	OwnedVehicles  []defs.VehicleID
	SelectedAvatar defs.AvatarID
	SelectedClass  defs.ClassID
	HasAdminAccess bool
	AdminLevel     int
	BestWave       int
	Wins           int
	HardModeWins   int
	TotalCoins     int
	TotalKills     int
	PlayTimeMs     float64
	DailyStreak    int
	DailyLastClaim int64 // unix ms
}

// NewWorld builds the starting state: gold 100, wave 1 round 1, hp 100,
// pistol equipped, a medic and a gunner on the roster.
func NewWorld(opts Options) *World {
	if opts.Width <= 0 {
		opts.Width = config.ScreenWidth
	}
	if opts.Height <= 0 {
		opts.Height = config.ScreenHeight
	}
	if opts.WavesToWin <= 0 {
		opts.WavesToWin = config.DefaultWavesToWin
	}
	if opts.Rand == nil {
		opts.Rand = utils.NewPRNGService(0)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	w := &World{
		Width:           opts.Width,
		Height:          opts.Height,
		Rand:            opts.Rand,
		Log:             opts.Logger,
		nextID:          1,
		Phase:           component.PhaseMenu,
		Wave:            1,
		RoundInWave:     1,
		WavesToWin:      opts.WavesToWin,
		ScoreMultiplier: 1,
		Gold:            config.PlayerStartGold,
		NoDamageRun:     true,
		WeaponKills:     make(map[defs.WeaponID]int),
		HP:              config.PlayerStartHP,
		MaxHP:           config.PlayerStartHP,
		Player: component.Player{
			Position:       component.Position{X: opts.Width / 2, Y: opts.Height / 2},
			Speed:          config.PlayerBaseSpeed,
			Size:           config.PlayerSize,
			Weapon:         defs.WeaponPistol,
			LastDamageTime: Never,
			LastShot:       Never,
		},
		Stats:          component.DefaultPlayerStats(),
		MaxAllies:      config.MaxAllies,
		Bombs:          make(map[defs.BombType]int),
		Combo:          component.NewCombo(),
		Achievements:   make(map[defs.AchievementID]bool),
		Badges:         make(map[defs.BadgeID]bool),
		OwnedWeapons:   []defs.WeaponID{defs.WeaponPistol},
		OwnedAvatars:   []defs.AvatarID{defs.DefaultAvatar},
		SelectedAvatar: defs.DefaultAvatar,
		SelectedClass:  defs.ClassSoldier,
	}
	for _, bt := range defs.BombOrder {
		w.Bombs[bt] = defs.BombLibrary[bt].StartStock
	}
	for _, at := range []defs.AllyType{defs.AllyMedic, defs.AllyGunner} {
		if _, err := w.AddAlly(at, w.Player.Position); err != nil {
			w.Log.Error("starting ally", "type", at, "err", err)
		}
	}
	return w
}

// NewEntity выдаёт следующий идентификатор.
func (w *World) NewEntity() component.ID {
	id := w.nextID
	w.nextID++
	return id
}

// NewEnemy validates the archetype and builds an enemy at (x, y) with the
// catalog stats. The caller applies wave scaling and appends it.
func (w *World) NewEnemy(t defs.EnemyType, x, y float64) (*component.Enemy, error) {
	def, err := defs.Enemy(t)
	if err != nil {
		w.Log.Error("enemy rejected", "type", t, "err", err)
		return nil, err
	}
	return &component.Enemy{
		ID:       w.NewEntity(),
		Position: component.Position{X: x, Y: y},
		Type:     t,
		HP:       def.HP,
		MaxHP:    def.HP,
		Speed:    def.Speed,
		Damage:   def.Damage,
		Reward:   def.Reward,
		Size:     20,
	}, nil
}

// SpawnEnemy is NewEnemy plus append.
func (w *World) SpawnEnemy(t defs.EnemyType, x, y float64) (*component.Enemy, error) {
	e, err := w.NewEnemy(t, x, y)
	if err != nil {
		return nil, err
	}
	w.Enemies = append(w.Enemies, e)
	return e, nil
}

// ErrAllyCapReached is returned when the roster is full.
var ErrAllyCapReached = errors.New("ally cap reached")

// AddAlly appends a catalog ally, enforcing the roster cap.
func (w *World) AddAlly(t defs.AllyType, at component.Position) (*component.Ally, error) {
	def, err := defs.Ally(t)
	if err != nil {
		w.Log.Error("ally rejected", "type", t, "err", err)
		return nil, err
	}
	if len(w.Allies) >= w.MaxAllies {
		return nil, fmt.Errorf("%w (%d)", ErrAllyCapReached, w.MaxAllies)
	}
	a := &component.Ally{
		ID:       w.NewEntity(),
		Position: at,
		Type:     t,
		HP:       def.MaxHP,
		MaxHP:    def.MaxHP,
		LastHeal: Never,
		LastShot: Never,
	}
	w.Allies = append(w.Allies, a)
	return a, nil
}

// ActiveAllies counts allies with hp above zero.
func (w *World) ActiveAllies() int {
	n := 0
	for _, a := range w.Allies {
		if a.Active() {
			n++
		}
	}
	return n
}

// AddBullet validates the owner id and appends a bullet.
func (w *World) AddBullet(owner defs.WeaponID, pos component.Position, vel component.Velocity, damage float64, pierce int, ally bool) (*component.Bullet, error) {
	switch owner {
	case defs.OwnerAlly, defs.OwnerLaserSlash, defs.OwnerMeteor:
	default:
		if _, err := defs.Weapon(owner); err != nil {
			w.Log.Error("bullet rejected", "weapon", owner, "err", err)
			return nil, err
		}
	}
	b := &component.Bullet{
		ID:           w.NewEntity(),
		Position:     pos,
		Velocity:     vel,
		Damage:       damage,
		Pierce:       pierce,
		Weapon:       owner,
		IsAllyBullet: ally,
	}
	w.Bullets = append(w.Bullets, b)
	return b, nil
}

// AddPickup validates the type and drops a pickup.
func (w *World) AddPickup(t defs.PickupType, x, y float64) (*component.Pickup, error) {
	if err := defs.ValidatePickup(t); err != nil {
		w.Log.Error("pickup rejected", "type", t, "err", err)
		return nil, err
	}
	p := &component.Pickup{ID: w.NewEntity(), Position: component.Position{X: x, Y: y}, Type: t, Life: config.PickupLifeTicks}
	w.Pickups = append(w.Pickups, p)
	return p, nil
}

// AddChest places a closed chest.
func (w *World) AddChest(x, y float64) *component.Chest {
	c := &component.Chest{ID: w.NewEntity(), Position: component.Position{X: x, Y: y}}
	w.Chests = append(w.Chests, c)
	return c
}

// HealPlayer adds hp, capped at MaxHP.
func (w *World) HealPlayer(amount float64) {
	w.HP = min(w.MaxHP, w.HP+amount)
}

// DamagePlayer subtracts hp, floored at zero.
func (w *World) DamagePlayer(amount float64) {
	w.HP = max(0, w.HP-amount)
}

// OwnsWeapon reports whether id is in the owned list.
func (w *World) OwnsWeapon(id defs.WeaponID) bool {
	for _, o := range w.OwnedWeapons {
		if o == id {
			return true
		}
	}
	return false
}

// ProgressStats returns the read-only view used by achievement predicates.
func (w *World) ProgressStats() defs.ProgressStats {
	return defs.ProgressStats{
		Kills:            w.Kills,
		KillStreak:       w.KillStreak,
		MaxCombo:         w.MaxCombo,
		Wave:             w.Wave,
		BestWave:         max(w.BestWave, w.Wave),
		WavesSurvived:    w.WavesSurvived,
		TotalDamageDealt: w.TotalDamageDealt,
		Allies:           len(w.Allies),
		WeaponsWithKills: len(w.WeaponKills),
		OwnedWeapons:     len(w.OwnedWeapons),
		Headshots:        w.Headshots,
		Criticals:        w.Criticals,
		Gold:             w.Gold,
		TotalCoins:       w.TotalCoins,
		BossesDefeated:   w.BossesDefeated,
		Wins:             w.Wins,
		HardModeWins:     w.HardModeWins,
		PickupsCollected: w.PickupsCollected,
		PlayTimeSec:      w.PlayTimeMs / 1000,
		NoDamageRun:      w.NoDamageRun,
	}
}

// FilterEnemies keeps enemies for which keep returns true, preserving order.
func (w *World) FilterEnemies(keep func(*component.Enemy) bool) {
	out := w.Enemies[:0]
	for _, e := range w.Enemies {
		if keep(e) {
			out = append(out, e)
		}
	}
	for i := len(out); i < len(w.Enemies); i++ {
		w.Enemies[i] = nil
	}
	w.Enemies = out
}

// HostileEnemies counts enemies not converted to the player's side.
func (w *World) HostileEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Hostile() {
			n++
		}
	}
	return n
}
