package system

import (
	"testing"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/utils"
)

func spawnAt(t *testing.T, g *rig, typ defs.EnemyType, x, y float64) *component.Enemy {
	t.Helper()
	e, err := g.w.SpawnEnemy(typ, x, y)
	if err != nil {
		t.Fatalf("spawn %s: %v", typ, err)
	}
	return e
}

func bulletAt(t *testing.T, g *rig, x, y float64, dmg float64, pierce int) *component.Bullet {
	t.Helper()
	b, err := g.w.AddBullet(defs.WeaponPistol, component.Position{X: x, Y: y}, component.Velocity{}, dmg, pierce, false)
	if err != nil {
		t.Fatalf("add bullet: %v", err)
	}
	return b
}

func TestBulletConsumedBySingleHit(t *testing.T) {
	g := newRig(t, nil)
	first := spawnAt(t, g, defs.EnemyBasic, 100, 100)
	second := spawnAt(t, g, defs.EnemyBasic, 105, 100)
	bulletAt(t, g, 100, 100, 10, 1)

	g.combat.AdvanceBullets()

	if first.HP != 40 {
		t.Fatalf("first enemy hp = %v, want 40", first.HP)
	}
	if second.HP != 50 {
		t.Fatalf("second enemy should be untouched, hp = %v", second.HP)
	}
	if len(g.w.Bullets) != 0 {
		t.Fatalf("bullet should be removed once pierce is spent")
	}
	if g.w.TotalDamageDealt != 10 {
		t.Fatalf("TotalDamageDealt = %v", g.w.TotalDamageDealt)
	}
}

func TestPierceSharedAcrossEnemiesInOneTick(t *testing.T) {
	g := newRig(t, nil)
	spawnAt(t, g, defs.EnemyBasic, 100, 100)
	spawnAt(t, g, defs.EnemyBasic, 102, 100)
	b := bulletAt(t, g, 100, 100, 10, 3)

	g.combat.AdvanceBullets()

	if b.Pierce != 1 {
		t.Fatalf("pierce = %d, want 1", b.Pierce)
	}
	if len(g.w.Bullets) != 1 {
		t.Fatalf("bullet with pierce left should survive")
	}
}

func TestBulletSkipsConvertedEnemies(t *testing.T) {
	g := newRig(t, nil)
	friend := spawnAt(t, g, defs.EnemyBasic, 100, 100)
	friend.Ally = true
	b := bulletAt(t, g, 100, 100, 10, 1)

	g.combat.AdvanceBullets()

	if friend.HP != 50 || b.Pierce != 1 {
		t.Fatalf("ally-flagged enemy must not absorb hits: hp=%v pierce=%d", friend.HP, b.Pierce)
	}
}

// Враг, убитый первой пулей, до прохода смерти ещё в списке и
// поглощает следующую пулю залпа.
func TestVolleySpendsEveryPelletOnKilledEnemy(t *testing.T) {
	g := newRig(t, nil)
	e := spawnAt(t, g, defs.EnemyBasic, 100, 100)
	bulletAt(t, g, 100, 100, 50, 1)
	bulletAt(t, g, 100, 100, 50, 1)

	g.combat.AdvanceBullets()

	if len(g.w.Bullets) != 0 {
		t.Fatalf("both pellets should be consumed, %d left", len(g.w.Bullets))
	}
	if g.w.TotalDamageDealt != 100 || e.HP > 0 {
		t.Fatalf("damage dealt = %v, enemy hp = %v", g.w.TotalDamageDealt, e.HP)
	}
}

func TestBulletRemovedOutOfFieldAndOnLifetime(t *testing.T) {
	g := newRig(t, nil)
	bulletAt(t, g, -5, 100, 10, 1)
	old := bulletAt(t, g, 300, 300, 10, 1)
	old.Lifetime = 4984
	young := bulletAt(t, g, 400, 400, 10, 1)

	g.combat.AdvanceBullets()

	if len(g.w.Bullets) != 1 || g.w.Bullets[0] != young {
		t.Fatalf("only the in-field young bullet should remain, got %d", len(g.w.Bullets))
	}
	if young.Lifetime != 16 {
		t.Fatalf("lifetime should grow by a fixed 16ms, got %v", young.Lifetime)
	}
}

func TestMeteorEntersFromAbove(t *testing.T) {
	g := newRig(t, nil)
	if _, err := g.w.AddBullet(defs.OwnerMeteor, component.Position{X: 100, Y: -50}, component.Velocity{VY: 10}, 150, 999, false); err != nil {
		t.Fatal(err)
	}
	g.combat.AdvanceBullets()
	if len(g.w.Bullets) != 1 || g.w.Bullets[0].Y != -40 {
		t.Fatalf("meteor above the field should keep falling")
	}
}

func TestCriticalHitDoublesDamage(t *testing.T) {
	g := newRig(t, &utils.ScriptedRandom{Floats: []float64{0.1}})
	e := spawnAt(t, g, defs.EnemyBasic, 100, 100)
	bulletAt(t, g, 100, 100, 10, 1)

	g.combat.AdvanceBullets()

	if e.HP != 30 {
		t.Fatalf("hp = %v, want 30 after a crit", e.HP)
	}
	if g.w.Headshots != 1 || g.w.Criticals != 1 {
		t.Fatalf("headshots=%d criticals=%d", g.w.Headshots, g.w.Criticals)
	}
	if g.count(event.CriticalHit) != 1 {
		t.Fatalf("expected one crit notification")
	}
}

func TestFireRespectsIntervalAndSpread(t *testing.T) {
	g := newRig(t, nil)
	if err := g.shop.EquipWeapon(defs.WeaponPistol); err != nil {
		t.Fatal(err)
	}
	in := component.Input{MouseDown: true}
	g.w.Now = 1000
	g.combat.Fire(in)
	if len(g.w.Bullets) != 1 {
		t.Fatalf("want 1 bullet, got %d", len(g.w.Bullets))
	}
	g.w.Now = 1300
	g.combat.Fire(in)
	if len(g.w.Bullets) != 1 {
		t.Fatalf("pistol fired before its 400ms interval")
	}
	g.w.Now = 1401
	g.combat.Fire(in)
	if len(g.w.Bullets) != 2 {
		t.Fatalf("pistol should fire again after 400ms")
	}
	g.combat.Fire(component.Input{})
	if len(g.w.Bullets) != 2 {
		t.Fatalf("no bullets without the trigger held")
	}
}

func TestFireShotgunVolley(t *testing.T) {
	g := newRig(t, nil)
	g.w.OwnedWeapons = append(g.w.OwnedWeapons, defs.WeaponShotgun)
	if err := g.shop.EquipWeapon(defs.WeaponShotgun); err != nil {
		t.Fatal(err)
	}
	g.w.Stats.Damage = 2
	g.combat.Fire(component.Input{MouseDown: true})
	if len(g.w.Bullets) != 8 {
		t.Fatalf("shotgun volley = %d bullets, want 8", len(g.w.Bullets))
	}
	if g.w.Bullets[0].Damage != 30 {
		t.Fatalf("damage upgrade not applied: %v", g.w.Bullets[0].Damage)
	}
}
