package system

import (
	"testing"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/event"
)

func TestKillPayoutAndFirstBlood(t *testing.T) {
	g := newRig(t, nil)
	e := spawnAt(t, g, defs.EnemyBasic, 10, 10)
	e.HP = 0

	g.enemies.Advance()

	if len(g.w.Enemies) != 0 {
		t.Fatalf("dead enemy should be removed")
	}
	if g.w.Kills != 1 || g.w.KillStreak != 1 {
		t.Fatalf("kills=%d streak=%d", g.w.Kills, g.w.KillStreak)
	}
	// 100 + 5×1.0 + 50 за firstBlood
	if g.w.Gold != 155 {
		t.Fatalf("gold = %d, want 155", g.w.Gold)
	}
	if !g.w.Achievements[defs.AchFirstBlood] {
		t.Fatalf("firstBlood should unlock on the first kill")
	}
	if g.w.Combo.Count != 1 {
		t.Fatalf("combo = %d", g.w.Combo.Count)
	}
	if g.w.WeaponKills[defs.WeaponPistol] != 1 {
		t.Fatalf("weapon kill tally: %v", g.w.WeaponKills)
	}
	if g.count(event.EnemyKilled) != 1 {
		t.Fatalf("expected one kill event")
	}
}

func TestKillPayoutUsesComboMultiplier(t *testing.T) {
	g := newRig(t, nil)
	g.w.Achievements[defs.AchFirstBlood] = true
	g.w.Combo = component.Combo{Count: 5, Multiplier: 1.5, LastKillTime: 0}
	e := spawnAt(t, g, defs.EnemyBoss, 10, 10)
	e.HP = 0
	e.IsBoss = true
	g.w.Domain.HealOnKill = 10
	g.w.HP = 50

	g.enemies.Advance()

	// floor(5×1.5) = 7
	if g.w.Gold != 107 {
		t.Fatalf("gold = %d, want 107", g.w.Gold)
	}
	if g.w.BossesDefeated != 1 {
		t.Fatalf("boss kill not tallied")
	}
	if g.w.HP != 60 {
		t.Fatalf("heal on kill: hp = %v", g.w.HP)
	}
}

func TestEnemyPursuesPlayer(t *testing.T) {
	g := newRig(t, nil)
	g.w.Player.X, g.w.Player.Y = 400, 300
	e := spawnAt(t, g, defs.EnemyBasic, 100, 300)
	frozen := spawnAt(t, g, defs.EnemyBasic, 100, 100)
	frozen.Frozen = true

	g.enemies.Advance()

	if e.X != 101 || e.Y != 300 {
		t.Fatalf("enemy should step 1 unit toward the player, at (%v,%v)", e.X, e.Y)
	}
	if frozen.X != 100 || frozen.Y != 100 {
		t.Fatalf("frozen enemy moved")
	}
}

func TestGravityPointPullsConvertedEnemies(t *testing.T) {
	g := newRig(t, nil)
	friend := spawnAt(t, g, defs.EnemyBasic, 100, 300)
	friend.Ally = true
	g.w.Domain.GravityPoint = &component.GravityPoint{Position: component.Position{X: 400, Y: 300}, Strength: 5}

	g.enemies.Advance()

	if friend.X != 105 {
		t.Fatalf("gravity should pull allies too, x = %v", friend.X)
	}
}

func TestContactDamageCooldown(t *testing.T) {
	g := newRig(t, nil)
	p := g.w.Player.Position
	spawnAt(t, g, defs.EnemyBasic, p.X, p.Y)
	g.w.KillStreak = 4

	g.w.Now = 1000
	g.enemies.Advance()
	if g.w.HP != 95 {
		t.Fatalf("hp = %v, want 95", g.w.HP)
	}
	if g.w.KillStreak != 0 || g.w.NoDamageRun {
		t.Fatalf("a hit resets the streak and the no-damage flag")
	}

	g.w.Now = 1400
	g.enemies.Advance()
	if g.w.HP != 95 {
		t.Fatalf("damage inside the 500ms cooldown: hp = %v", g.w.HP)
	}

	g.w.Now = 1501
	g.enemies.Advance()
	if g.w.HP != 90 {
		t.Fatalf("hp = %v, want 90", g.w.HP)
	}
}

func TestContactBlockedByInvincibility(t *testing.T) {
	for _, name := range []string{"invincible", "godmode"} {
		g := newRig(t, nil)
		if name == "invincible" {
			g.w.Invincible = true
		} else {
			g.w.GodMode = true
		}
		p := g.w.Player.Position
		spawnAt(t, g, defs.EnemyBasic, p.X, p.Y)
		g.enemies.Advance()
		if g.w.HP != 100 {
			t.Errorf("%s: hp = %v", name, g.w.HP)
		}
	}
}

func TestContactKillsPlayer(t *testing.T) {
	g := newRig(t, nil)
	g.w.HP = 3
	p := g.w.Player.Position
	spawnAt(t, g, defs.EnemyBasic, p.X, p.Y)

	g.enemies.Advance()

	if g.w.HP != 0 {
		t.Fatalf("hp must not go below zero, got %v", g.w.HP)
	}
	if g.w.Phase != component.PhaseOver {
		t.Fatalf("phase = %v, want over", g.w.Phase)
	}
	if g.count(event.GameOver) != 1 {
		t.Fatalf("expected a game over event")
	}
}

func TestBurningCountsDown(t *testing.T) {
	g := newRig(t, nil)
	e := spawnAt(t, g, defs.EnemyBasic, 10, 10)
	e.Burning = 2
	g.enemies.Advance()
	g.enemies.Advance()
	g.enemies.Advance()
	if e.Burning != 0 {
		t.Fatalf("burning = %d", e.Burning)
	}
}
