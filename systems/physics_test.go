package systems

import (
	"testing"

	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/config"
	"github.com/automoto/lootbound/status"
	"github.com/automoto/lootbound/systems/factory"
	"github.com/automoto/lootbound/tags"
)

func TestJumpSequence(t *testing.T) {
	w, env := newTestWorld(t, nil)
	e, src := spawnPlayer(t, w, 64, testGroundY-40)
	tick(w, 1)
	if !components.Physics.Get(e).Grounded() {
		t.Fatal("player should rest on the floor after one tick")
	}

	pc := env.Config.Player
	steps := []struct {
		number    int
		remaining int
		strength  float64
	}{
		{1, 2, pc.JumpStrength},
		{2, 1, pc.DoubleJumpStrength},
		{3, 0, pc.TripleJumpStrength},
	}
	for _, s := range steps {
		src.Press(config.ActionJump)
		tick(w, 1)
		physics := components.Physics.Get(e)
		jump := components.Jump.Get(e)
		if jump.CurrentJumpNumber != s.number || jump.JumpsRemaining != s.remaining {
			t.Fatalf("jump %d: number %d remaining %d, want %d and %d",
				s.number, jump.CurrentJumpNumber, jump.JumpsRemaining, s.number, s.remaining)
		}
		if want := -s.strength + pc.Gravity; !approx(physics.SpeedY, want) {
			t.Fatalf("jump %d: SpeedY = %v, want %v", s.number, physics.SpeedY, want)
		}
		src.Release(config.ActionJump)
		tick(w, 1)
	}

	before := components.Physics.Get(e).SpeedY
	src.Press(config.ActionJump)
	tick(w, 1)
	if got, want := components.Physics.Get(e).SpeedY, before+pc.Gravity; !approx(got, want) {
		t.Errorf("fourth press changed velocity: SpeedY = %v, want %v", got, want)
	}
	if got := components.Jump.Get(e).CurrentJumpNumber; got != 3 {
		t.Errorf("CurrentJumpNumber = %d after exhausted press, want 3", got)
	}
}

func TestLedgeWalkRecoveryJump(t *testing.T) {
	w, env := newTestWorld(t, nil)
	e, src := spawnPlayer(t, w, 64, 40)
	tick(w, 1)
	if components.Physics.Get(e).Grounded() {
		t.Fatal("player should be airborne")
	}

	src.Press(config.ActionJump)
	tick(w, 1)
	jump := components.Jump.Get(e)
	if jump.CurrentJumpNumber != 1 {
		t.Errorf("CurrentJumpNumber = %d, want 1", jump.CurrentJumpNumber)
	}
	if jump.JumpsRemaining != env.Config.Player.MaxJumps-1 {
		t.Errorf("JumpsRemaining = %d, want %d", jump.JumpsRemaining, env.Config.Player.MaxJumps-1)
	}
	want := -env.Config.Player.DoubleJumpStrength + env.Config.Player.Gravity
	if got := components.Physics.Get(e).SpeedY; !approx(got, want) {
		t.Errorf("SpeedY = %v, want %v (double jump strength)", got, want)
	}
}

func TestLandingResetsJumps(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	e, src := spawnPlayer(t, w, 64, testGroundY-40)
	tick(w, 1)

	src.Press(config.ActionJump)
	tick(w, 1)
	src.Release(config.ActionJump)
	tick(w, 1)
	src.Press(config.ActionJump)
	tick(w, 1)

	for i := 0; i < 300 && !components.Physics.Get(e).Grounded(); i++ {
		tick(w, 1)
	}
	physics := components.Physics.Get(e)
	jump := components.Jump.Get(e)
	if !physics.Grounded() {
		t.Fatal("player never landed")
	}
	if jump.JumpsRemaining != jump.MaxJumps || jump.CurrentJumpNumber != 0 {
		t.Errorf("after landing remaining %d number %d, want %d and 0",
			jump.JumpsRemaining, jump.CurrentJumpNumber, jump.MaxJumps)
	}
	if physics.SpeedY != 0 {
		t.Errorf("SpeedY = %v after landing, want 0", physics.SpeedY)
	}
	if y := components.Object.Get(e).Y; !approx(y, testGroundY-40) {
		t.Errorf("Y = %v, want %v", y, testGroundY-40)
	}
}

func TestHeadBump(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	factory.CreateBlock(w, 24, 100, 32, 16)
	e, src := spawnPlayer(t, w, 32, testGroundY-40)
	tick(w, 1)

	src.Press(config.ActionJump)
	for i := 0; i < 20; i++ {
		tick(w, 1)
		if components.Object.Get(e).Y <= 116 {
			break
		}
	}
	physics := components.Physics.Get(e)
	if y := components.Object.Get(e).Y; !approx(y, 116) {
		t.Fatalf("Y = %v, want flush under the block at 116", y)
	}
	if physics.SpeedY != 0 {
		t.Errorf("SpeedY = %v after head bump, want 0", physics.SpeedY)
	}
	if physics.Grounded() {
		t.Error("head bump must not ground the player")
	}
	if got := components.Jump.Get(e).CurrentJumpNumber; got != 1 {
		t.Errorf("CurrentJumpNumber = %d, head bump must not touch jump state", got)
	}
}

func TestWallStopsHorizontalMove(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	e, _ := spawnPlayer(t, w, 18, testGroundY-40)
	tick(w, 1)

	components.Physics.Get(e).SpeedX = -4
	UpdatePhysics(w)
	UpdateCollisions(w)

	physics := components.Physics.Get(e)
	if x := components.Object.Get(e).X; !approx(x, 16) {
		t.Errorf("X = %v, want flush with the wall at 16", x)
	}
	if !physics.BlockedX || physics.SpeedX != 0 {
		t.Errorf("BlockedX %v SpeedX %v, want true and 0", physics.BlockedX, physics.SpeedX)
	}
}

func TestPlatformOneWayAndDropThrough(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	factory.CreatePlatform(w, 24, 140, 64, 16)
	e, src := spawnPlayer(t, w, 40, testGroundY-40)
	tick(w, 1)

	// Jump up through the platform and land on it
	src.Press(config.ActionJump)
	tick(w, 1)
	src.Release(config.ActionJump)
	minY := components.Object.Get(e).Y
	for i := 0; i < 200; i++ {
		tick(w, 1)
		minY = min(minY, components.Object.Get(e).Y)
		if components.Physics.Get(e).Grounded() {
			break
		}
	}
	physics := components.Physics.Get(e)
	if minY >= 100 {
		t.Fatalf("player never rose above the platform, min Y %v", minY)
	}
	if !physics.Grounded() || !physics.OnGround.HasTags(tags.ResolvPlatform) {
		t.Fatal("player should stand on the platform")
	}
	if y := components.Object.Get(e).Y; !approx(y, 100) {
		t.Fatalf("Y = %v, want 100 on the platform", y)
	}

	// Drop through it to the floor
	src.Press(config.ActionDropThrough, config.ActionJump)
	tick(w, 1)
	src.ReleaseAll()
	for i := 0; i < 200; i++ {
		tick(w, 1)
		if p := components.Physics.Get(e); p.Grounded() && !p.OnGround.HasTags(tags.ResolvPlatform) {
			break
		}
	}
	physics = components.Physics.Get(e)
	if y := components.Object.Get(e).Y; !approx(y, testGroundY-40) {
		t.Errorf("Y = %v, want %v on the floor", y, testGroundY-40)
	}
	if physics.IgnorePlatform != nil {
		t.Error("IgnorePlatform should clear on landing")
	}
}

func TestFrozenSlowsMovement(t *testing.T) {
	w, env := newTestWorld(t, nil)
	e, _ := spawnPlayer(t, w, 100, testGroundY-40)
	tick(w, 1)

	components.StatusEffect.Get(e).Apply(status.Frozen, 5, 0, 1)
	components.Physics.Get(e).SpeedX = 10
	UpdatePhysics(w)

	want := env.Config.Player.MaxSpeed * 0.4
	if got := components.Physics.Get(e).SpeedX; !approx(got, want) {
		t.Errorf("SpeedX = %v, want capped at %v", got, want)
	}
}
