package systems

import (
	"testing"

	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/config"
	"github.com/automoto/lootbound/input"
	"github.com/automoto/lootbound/status"
)

func firstProjectile(t *testing.T, w donburi.World) *components.ProjectileData {
	t.Helper()
	e, ok := components.Projectile.First(w)
	if !ok {
		t.Fatal("no projectile spawned")
	}
	return components.Projectile.Get(e)
}

func TestFireMagicNeedsMana(t *testing.T) {
	w, env := newTestWorld(t, nil)
	e, _ := spawnPlayer(t, w, 64, testGroundY-40)
	equip(t, env, e, "ember_staff", 1)
	res := components.Resources.Get(e)
	res.Mana.Current = 5

	if fireWeapon(w, env, e, false, 0, 1, 0) {
		t.Fatal("fired without enough mana")
	}
	if res.Mana.Current != 5 {
		t.Errorf("mana = %v, failed cast must not spend", res.Mana.Current)
	}
	if components.Combat.Get(e).AttackTimer != 0 {
		t.Error("failed cast started the cooldown")
	}
	if n := count(w, components.Projectile); n != 0 {
		t.Errorf("%d projectiles after failed cast", n)
	}

	res.Mana.Current = 50
	if !fireWeapon(w, env, e, false, 0, 1, 0) {
		t.Fatal("cast failed with enough mana")
	}
	if res.Mana.Current != 40 {
		t.Errorf("mana = %v, want 40", res.Mana.Current)
	}
	shot := firstProjectile(t, w)
	if shot.Effect == nil || shot.Effect.Kind != status.Burning {
		t.Error("fireball should carry the staff's burning effect")
	}
	if got := components.Combat.Get(e).Projectiles; len(got) != 1 {
		t.Errorf("owner tracks %d projectiles, want 1", len(got))
	}
}

func TestFireThrowableConsumesLastUnit(t *testing.T) {
	w, env := newTestWorld(t, nil)
	e, _ := spawnPlayer(t, w, 64, testGroundY-40)
	equip(t, env, e, "throwing_knife", 1)

	if !fireWeapon(w, env, e, false, 0, 1, 0) {
		t.Fatal("throw failed")
	}
	inv := components.Inventory.Get(e)
	eq := components.Equipment.Get(e)
	if n := inv.Count("throwing_knife"); n != 0 {
		t.Errorf("%d knives left, want 0", n)
	}
	if !eq.Sync(inv) {
		t.Error("Sync should clear the emptied held stack")
	}
	if eq.Weapon != nil || eq.Held != nil {
		t.Error("weapon still equipped after the last knife")
	}
	if shot := firstProjectile(t, w); shot.Kind != "knife" || shot.Damage != 6 {
		t.Errorf("shot kind %q damage %v, want knife 6", shot.Kind, shot.Damage)
	}
}

func TestFireRangedAmmo(t *testing.T) {
	w, env := newTestWorld(t, nil)
	e, _ := spawnPlayer(t, w, 64, testGroundY-40)
	equip(t, env, e, "short_bow", 1)

	if fireWeapon(w, env, e, false, 0, 1, 0) {
		t.Fatal("bow fired without arrows")
	}
	if components.Combat.Get(e).AttackTimer != 0 {
		t.Error("dry fire started the cooldown")
	}

	give(t, env, e, "fire_arrow", 2)
	if !fireWeapon(w, env, e, false, 0, 1, 0) {
		t.Fatal("bow failed with fire arrows")
	}
	shot := firstProjectile(t, w)
	if shot.Damage != 9 {
		t.Errorf("damage = %v, want bow 6 + arrow bonus 3", shot.Damage)
	}
	if shot.Kind != "fire_arrow" {
		t.Errorf("kind = %q, want the ammo id", shot.Kind)
	}
	if shot.Effect == nil || shot.Effect.Kind != status.Burning || shot.Effect.DamagePerTick != 1.5 {
		t.Errorf("effect = %+v, want the arrow's burning payload", shot.Effect)
	}
	if n := components.Inventory.Get(e).Count("fire_arrow"); n != 1 {
		t.Errorf("%d fire arrows left, want 1", n)
	}
}

func TestFireAimDirection(t *testing.T) {
	w, env := newTestWorld(t, nil)
	e, _ := spawnPlayer(t, w, 64, testGroundY-40)
	equip(t, env, e, "throwing_knife", 3)

	if !fireWeapon(w, env, e, false, 0, -1, 0) {
		t.Fatal("throw failed")
	}
	shot := firstProjectile(t, w)
	if shot.SpeedX != -9 || shot.SpeedY != 0 {
		t.Errorf("velocity (%v, %v), want (-9, 0)", shot.SpeedX, shot.SpeedY)
	}
	if fireWeapon(w, env, e, false, 0, 1, 0) {
		t.Error("second throw ignored the cooldown")
	}
}

func TestChargedShotScaling(t *testing.T) {
	t.Run("magic scales size and cost", func(t *testing.T) {
		w, env := newTestWorld(t, nil)
		e, _ := spawnPlayer(t, w, 64, testGroundY-40)
		equip(t, env, e, "ember_staff", 1)
		res := components.Resources.Get(e)
		res.Mana.Current = 50

		if !fireWeapon(w, env, e, true, 1, 1, 0) {
			t.Fatal("charged cast failed")
		}
		if !approx(res.Mana.Current, 25) {
			t.Errorf("mana = %v, want 25 after a 2.5x cost", res.Mana.Current)
		}
		shot := firstProjectile(t, w)
		if !approx(shot.Damage, 21) {
			t.Errorf("damage = %v, want 21", shot.Damage)
		}
		if !approx(shot.Size, 20) {
			t.Errorf("size = %v, want 20", shot.Size)
		}
		if !approx(shot.EffectMultiplier, 3) {
			t.Errorf("effect multiplier = %v, want 3", shot.EffectMultiplier)
		}
	})

	t.Run("ranged keeps its size", func(t *testing.T) {
		w, env := newTestWorld(t, nil)
		e, _ := spawnPlayer(t, w, 64, testGroundY-40)
		equip(t, env, e, "short_bow", 1)
		give(t, env, e, "arrow", 5)

		if !fireWeapon(w, env, e, true, 1, 1, 0) {
			t.Fatal("charged shot failed")
		}
		shot := firstProjectile(t, w)
		if !approx(shot.Damage, 15) {
			t.Errorf("damage = %v, want 15", shot.Damage)
		}
		if !approx(shot.SpeedX, 12.8) {
			t.Errorf("speed = %v, want 12.8", shot.SpeedX)
		}
		if shot.Size != 6 {
			t.Errorf("size = %v, ranged shots never grow", shot.Size)
		}
	})
}

func TestChargeThroughInput(t *testing.T) {
	newBowman := func(t *testing.T) (donburi.World, *donburi.Entry, *input.Scripted) {
		w, env := newTestWorld(t, nil)
		env.DT = 0.1
		e, src := spawnPlayer(t, w, 64, testGroundY-40)
		equip(t, env, e, "short_bow", 1)
		give(t, env, e, "arrow", 5)
		tick(w, 1)
		return w, e, src
	}

	t.Run("full charge", func(t *testing.T) {
		w, e, in := newBowman(t)
		in.Press(config.ActionAttack)
		tick(w, 1)
		if !components.Combat.Get(e).Charging {
			t.Fatal("pressing attack with a bow should start a charge")
		}
		tick(w, 13)
		in.Release(config.ActionAttack)
		tick(w, 1)

		if n := count(w, components.Projectile); n != 1 {
			t.Fatalf("%d projectiles, want 1", n)
		}
		if shot := firstProjectile(t, w); !approx(shot.Damage, 15) {
			t.Errorf("damage = %v, want a full charge of 15", shot.Damage)
		}
		if components.Combat.Get(e).Charging {
			t.Error("charge should end on release")
		}
	})

	t.Run("early release cancels", func(t *testing.T) {
		w, e, in := newBowman(t)
		in.Press(config.ActionAttack)
		tick(w, 2)
		in.Release(config.ActionAttack)
		tick(w, 1)

		if n := count(w, components.Projectile); n != 0 {
			t.Errorf("%d projectiles after an early release", n)
		}
		if n := components.Inventory.Get(e).Count("arrow"); n != 5 {
			t.Errorf("%d arrows, a cancelled charge spends nothing", n)
		}
	})
}
