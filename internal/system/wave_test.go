package system

import (
	"testing"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/event"
)

func TestSpawnWaveScalesByWave(t *testing.T) {
	g := newRig(t, nil)
	g.w.Wave = 3

	g.waves.SpawnWave(7)

	if len(g.w.Enemies) != 7 {
		t.Fatalf("enemies = %d, want 7", len(g.w.Enemies))
	}
	e := g.w.Enemies[0]
	// Ints по умолчанию 0: всегда basic и верхний край.
	if e.Type != defs.EnemyBasic || e.Y != 0 {
		t.Fatalf("unexpected spawn: %+v", e)
	}
	if e.HP != 80 || e.MaxHP != 80 || !approx(e.Speed, 1.3) || e.Damage != 8 {
		t.Fatalf("scaling: hp=%v speed=%v damage=%v", e.HP, e.Speed, e.Damage)
	}
	if len(g.w.Chests) != 1 {
		t.Fatalf("chests = %d, want 1", len(g.w.Chests))
	}
	if g.w.ScoreMultiplier != 1 || g.w.SpecialWave != "" {
		t.Fatalf("no special wave expected at roll 0.99")
	}
}

func TestSpecialWaveModifiers(t *testing.T) {
	g := newRig(t, nil)
	g.waves.SpecialWaves = []defs.SpecialWave{
		{Key: "berserk", Chance: 1, EnemyCount: 10, Multiplier: 2, Stealth: true},
	}

	g.waves.SpawnWave(7)

	if len(g.w.Enemies) != 10 {
		t.Fatalf("berserk count not applied: %d", len(g.w.Enemies))
	}
	e := g.w.Enemies[0]
	if !e.Hidden || !approx(e.HP, 60*0.7) || !approx(e.Speed, 1.1*1.5) {
		t.Fatalf("stealth modifier: hidden=%v hp=%v speed=%v", e.Hidden, e.HP, e.Speed)
	}
	if g.w.ScoreMultiplier != 2 || g.w.SpecialWave != "berserk" {
		t.Fatalf("multiplier=%v key=%q", g.w.ScoreMultiplier, g.w.SpecialWave)
	}
	if g.count(event.SpecialWaveStarted) != 1 {
		t.Fatalf("expected special wave notification")
	}
}

func TestRoundStructure(t *testing.T) {
	g := newRig(t, nil)

	g.waves.SpawnWave(0)
	g.waves.CheckClear()
	if !g.w.WaveWon {
		t.Fatalf("an empty wave is cleared immediately")
	}
	g.waves.CheckClear()
	if g.q.Pending(roundClearTimer) != 1 {
		t.Fatalf("clear must be detected once per round")
	}

	g.at(1199)
	if g.w.RoundInWave != 1 {
		t.Fatalf("round advanced before the banner delay")
	}
	g.at(1200)
	if g.w.RoundInWave != 2 || len(g.w.Enemies) != 7 || g.w.WaveWon {
		t.Fatalf("round 2: round=%d enemies=%d won=%v", g.w.RoundInWave, len(g.w.Enemies), g.w.WaveWon)
	}

	g.w.Enemies = nil
	g.waves.CheckClear()
	g.at(2400)
	if g.w.Wave != 2 || g.w.RoundInWave != 1 {
		t.Fatalf("wave=%d round=%d after round 2 clear", g.w.Wave, g.w.RoundInWave)
	}
	// 100 + 100×2×1
	if g.w.Gold != 300 || g.w.UpgradePoints != 1 || g.w.WavesSurvived != 1 {
		t.Fatalf("gold=%d points=%d survived=%d", g.w.Gold, g.w.UpgradePoints, g.w.WavesSurvived)
	}

	// Поле пустое до спавна следующей волны, но очисткой это не считается.
	g.waves.CheckClear()
	if g.w.WaveWon {
		t.Fatalf("waiting for the next wave is not a clear")
	}
	g.at(4400)
	if len(g.w.Enemies) != 7 || g.w.Wave != 2 {
		t.Fatalf("next wave spawn: enemies=%d wave=%d", len(g.w.Enemies), g.w.Wave)
	}
}

func TestConvertedEnemiesDoNotBlockClear(t *testing.T) {
	g := newRig(t, nil)
	friend := spawnAt(t, g, defs.EnemyBasic, 10, 10)
	friend.Ally = true
	g.waves.CheckClear()
	if !g.w.WaveWon {
		t.Fatalf("only hostile enemies keep a round open")
	}
}

func TestBossWaveCadence(t *testing.T) {
	g := newRig(t, nil)
	g.w.Wave = 4

	g.waves.NextWave()
	if !g.w.BossWave || g.count(event.BossWave) != 1 {
		t.Fatalf("wave 5 should be a boss wave")
	}

	g.at(2000)
	if len(g.w.Enemies) != 1 {
		t.Fatalf("boss wave spawns exactly one enemy, got %d", len(g.w.Enemies))
	}
	boss := g.w.Enemies[0]
	if !boss.IsBoss || boss.HP != 1000 || boss.Damage != 75 || boss.Reward != 750 {
		t.Fatalf("boss stats: %+v", boss)
	}
	if boss.X != 400 || boss.Y != 50 {
		t.Fatalf("boss at (%v,%v)", boss.X, boss.Y)
	}
	if g.w.BossWave {
		t.Fatalf("boss flag should clear once the boss spawns")
	}
}

func TestVictoryAfterLastWave(t *testing.T) {
	g := newRig(t, nil)
	g.w.WavesToWin = 1

	g.waves.NextWave()

	if g.w.Phase != component.PhaseWon || g.w.Wins != 1 {
		t.Fatalf("phase=%v wins=%d", g.w.Phase, g.w.Wins)
	}
	if g.w.Gold != 100+200+5000 {
		t.Fatalf("gold = %d", g.w.Gold)
	}
	if g.q.Pending(spawnWaveTimer) != 0 {
		t.Fatalf("no spawn after victory")
	}
}

func TestJackpotCarryoverExtendsNextWave(t *testing.T) {
	g := newRig(t, nil)
	g.w.Domain.JackpotCarryover = 3

	g.waves.NextWave()

	if g.w.Domain.Active != defs.DomainJackpot || g.w.Domain.Timer != 3000 {
		t.Fatalf("active=%v timer=%v", g.w.Domain.Active, g.w.Domain.Timer)
	}
	if g.w.Domain.JackpotCarryover != 0 {
		t.Fatalf("carryover should be spent")
	}
}

func TestJackpotCarryoverKeptWhileDomainBusy(t *testing.T) {
	g := newRig(t, nil)
	if err := g.domains.Activate(defs.DomainGravityTree, 0); err != nil {
		t.Fatal(err)
	}
	g.w.Domain.JackpotCarryover = 3

	g.waves.NextWave()

	if g.w.Domain.Active != defs.DomainGravityTree || g.w.Domain.JackpotCarryover != 3 {
		t.Fatalf("carryover must survive a rejected activation")
	}
}
