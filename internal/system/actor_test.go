package system

import (
	"math"
	"testing"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/defs"
)

func TestPlayerDiagonalIsUnnormalized(t *testing.T) {
	g := newRig(t, nil)
	g.w.Player.X, g.w.Player.Y = 400, 300

	g.player.Update(component.Input{Up: true, Right: true, MouseX: 500, MouseY: 297})

	if g.w.Player.X != 403 || g.w.Player.Y != 297 {
		t.Fatalf("diagonal step should move 3 on each axis, at (%v,%v)", g.w.Player.X, g.w.Player.Y)
	}
	if g.w.Player.Angle != 0 {
		t.Fatalf("angle = %v, want 0", g.w.Player.Angle)
	}
}

func TestPlayerSpeedSources(t *testing.T) {
	g := newRig(t, nil)
	if s := g.player.EffectiveSpeed(); s != 3 {
		t.Fatalf("base speed = %v", s)
	}
	g.w.Player.Weapon = defs.WeaponMinigun
	if s := g.player.EffectiveSpeed(); s != 1.5 {
		t.Fatalf("minigun should halve the walking speed, got %v", s)
	}
	g.w.Player.Vehicle = defs.VehicleSkateboard
	if s := g.player.EffectiveSpeed(); s != 8 {
		t.Fatalf("vehicle speed replaces walking speed, got %v", s)
	}
}

func TestPlayerClampedUnlessNoclip(t *testing.T) {
	g := newRig(t, nil)
	g.w.Player.X = 21
	g.player.Update(component.Input{Left: true})
	if g.w.Player.X != 20 {
		t.Fatalf("x = %v, want clamp at 20", g.w.Player.X)
	}

	g.w.Noclip = true
	g.player.Update(component.Input{Left: true})
	if g.w.Player.X != 17 {
		t.Fatalf("noclip should skip the clamp, x = %v", g.w.Player.X)
	}
}

func TestAlliesPinnedNextToPlayer(t *testing.T) {
	g := newRig(t, nil)
	p := g.w.Player.Position
	g.allies.Update()

	medic, gunner := g.w.Allies[0], g.w.Allies[1]
	if medic.X != p.X-50 || medic.Y != p.Y+30 {
		t.Fatalf("first ally at (%v,%v)", medic.X, medic.Y)
	}
	if gunner.X != p.X+50 || gunner.Y != p.Y+30 {
		t.Fatalf("second ally at (%v,%v)", gunner.X, gunner.Y)
	}
}

func TestAllyFollowStepsTowardSlot(t *testing.T) {
	g := newRig(t, nil)
	p := g.w.Player.Position
	a := g.w.Allies[1]
	a.X, a.Y = p.X, p.Y+130 // слот второго союзника: (p.X, p.Y+30)

	g.allies.Follow()

	if a.X != p.X || !approx(a.Y, p.Y+128.5) {
		t.Fatalf("ally at (%v,%v)", a.X, a.Y)
	}

	a.X, a.Y = p.X+3, p.Y+30
	g.allies.Follow()
	if a.X != p.X+3 {
		t.Fatalf("ally within the snap distance should not move")
	}
}

func TestMedicHealsOncePerSecond(t *testing.T) {
	g := newRig(t, nil)
	g.w.HP = 50
	g.w.Now = 5000
	g.allies.Update()
	if g.w.HP != 55 {
		t.Fatalf("hp = %v, want 55", g.w.HP)
	}
	g.w.Now = 5500
	g.allies.Update()
	if g.w.HP != 55 {
		t.Fatalf("medic healed inside its cooldown")
	}
	g.w.Now = 6001
	g.allies.Update()
	if g.w.HP != 60 {
		t.Fatalf("hp = %v, want 60", g.w.HP)
	}
}

func TestAlliesShootFirstHostile(t *testing.T) {
	g := newRig(t, nil)
	friend := spawnAt(t, g, defs.EnemyBasic, 700, 100)
	friend.Ally = true
	spawnAt(t, g, defs.EnemyBasic, 100, 100)

	g.allies.Update()

	if len(g.w.Bullets) != 2 {
		t.Fatalf("both allies should fire, got %d bullets", len(g.w.Bullets))
	}
	medicShot, gunnerShot := g.w.Bullets[0], g.w.Bullets[1]
	if medicShot.Damage != 8 || gunnerShot.Damage != 15 {
		t.Fatalf("ally damage: %v, %v", medicShot.Damage, gunnerShot.Damage)
	}
	if !medicShot.IsAllyBullet || medicShot.Weapon != defs.OwnerAlly {
		t.Fatalf("ally bullets must be flagged")
	}
	if medicShot.VX >= 0 {
		t.Fatalf("shot should head left toward the hostile enemy")
	}
}

func TestAIControlledAlliesTargetWeakest(t *testing.T) {
	g := newRig(t, nil)
	g.w.AIControlledAllies = true
	spawnAt(t, g, defs.EnemyBasic, 100, 100)
	weak := spawnAt(t, g, defs.EnemyBasic, 700, 500)
	weak.HP = 5

	g.allies.Update()

	b := g.w.Bullets[1]
	if !approx(b.Damage, 19.5) {
		t.Fatalf("AI damage = %v, want 19.5", b.Damage)
	}
	a := g.w.Allies[1]
	want := math.Atan2(weak.Y-a.Y, weak.X-a.X)
	if got := math.Atan2(b.VY, b.VX); math.Abs(got-want) > 1e-9 {
		t.Fatalf("shot angle %v, want %v", got, want)
	}
}

func TestDownedAllyStaysButIdles(t *testing.T) {
	g := newRig(t, nil)
	g.w.Allies[0].HP = 0
	g.w.HP = 50
	spawnAt(t, g, defs.EnemyBasic, 100, 100)

	g.allies.Update()

	if len(g.w.Allies) != 2 || g.w.ActiveAllies() != 1 {
		t.Fatalf("roster=%d active=%d", len(g.w.Allies), g.w.ActiveAllies())
	}
	if g.w.HP != 50 {
		t.Fatalf("downed medic healed")
	}
	if len(g.w.Bullets) != 1 {
		t.Fatalf("only the live ally should shoot, got %d", len(g.w.Bullets))
	}
	if g.w.Allies[0].X != g.w.Player.X-50 {
		t.Fatalf("downed ally is still pinned")
	}
}
