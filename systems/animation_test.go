package systems

import (
	"testing"

	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/config"
)

func TestPlayerAnimationFollowsState(t *testing.T) {
	w, env := newTestWorld(t, nil)
	e, src := spawnPlayer(t, w, 64, testGroundY-40)
	state := func() config.StateID { return components.Animation.Get(e).State() }

	tick(w, 1)
	if got := state(); got != config.Idle {
		t.Fatalf("resting player is %v, want idle", got)
	}

	src.Press(config.ActionJump)
	tick(w, 1)
	if got := state(); got != config.Jump {
		t.Errorf("rising player is %v, want jump", got)
	}
	src.Release(config.ActionJump)
	tick(w, 1)
	src.Press(config.ActionJump)
	tick(w, 1)
	if got := state(); got != config.DoubleJump {
		t.Errorf("second jump is %v, want double_jump", got)
	}
	src.ReleaseAll()

	for i := 0; i < 200 && !components.Physics.Get(e).Grounded(); i++ {
		tick(w, 1)
	}

	equip(t, env, e, "short_bow", 1)
	give(t, env, e, "arrow", 3)
	src.Press(config.ActionAttack)
	tick(w, 1)
	if got := state(); got != config.Fire {
		t.Errorf("charging player is %v, want fire", got)
	}
}

func TestMobAnimationFallsBack(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	slime := spawnMob(t, w, "slime", 200, testGroundY-12)
	tick(w, 1)

	components.Combat.Get(slime).FireTimer = 1
	UpdateAnimations(w)
	if got := components.Animation.Get(slime).State(); got != config.Attack {
		t.Errorf("firing slime is %v, want attack fallback", got)
	}

	components.Combat.Get(slime).FireTimer = 0
	components.Combat.Get(slime).HurtTimer = 1
	UpdateAnimations(w)
	if got := components.Animation.Get(slime).State(); got != config.Hurt {
		t.Errorf("hurt slime is %v, want hurt", got)
	}
}
