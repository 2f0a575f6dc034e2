package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/components"
	cfg "github.com/automoto/lootbound/config"
	"github.com/automoto/lootbound/input"
	"github.com/automoto/lootbound/items"
	"github.com/automoto/lootbound/tags"
)

// UpdatePlayers turns each living player's input into movement, jumps,
// item use and attacks.
func UpdatePlayers(w donburi.World) {
	env := components.GetEnv(w)
	for _, e := range collect(w, tags.Player) {
		if !alive(e) {
			continue
		}
		updatePlayer(w, env, e)
	}
}

func updatePlayer(w donburi.World, env *components.EnvData, e *donburi.Entry) {
	state := &components.PlayerInput.Get(e).State
	components.Equipment.Get(e).Sync(components.Inventory.Get(e))

	handleMovementInput(env, e, state)
	handleJumpInput(e, state)
	handleItemInput(env, e, state)
	handleAttackInput(w, env, e, state)
}

func handleMovementInput(env *components.EnvData, e *donburi.Entry, state *input.State) {
	pc := env.Config.Player
	physics := components.Physics.Get(e)
	facing := components.Facing.Get(e)
	res := components.Resources.Get(e)

	accel := pc.Acceleration
	if components.Combat.Get(e).IsAttacking {
		accel = pc.AttackAccel
	}

	left := state.Action(cfg.ActionMoveLeft).Pressed
	right := state.Action(cfg.ActionMoveRight).Pressed
	switch {
	case left && !right:
		physics.SpeedX -= accel
		facing.X = cfg.DirectionLeft
	case right && !left:
		physics.SpeedX += accel
		facing.X = cfg.DirectionRight
	}

	res.Sprinting = state.Action(cfg.ActionSprint).Pressed && left != right && !res.Stamina.Empty()
}

// handleJumpInput jumps, or drops through the platform underfoot when
// drop-through is held.
func handleJumpInput(e *donburi.Entry, state *input.State) {
	if !state.Action(cfg.ActionJump).JustPressed {
		return
	}
	physics := components.Physics.Get(e)
	if state.Action(cfg.ActionDropThrough).Pressed && physics.OnGround != nil &&
		physics.OnGround.HasTags(tags.ResolvPlatform) {
		physics.IgnorePlatform = physics.OnGround
		return
	}
	if strength, ok := components.Jump.Get(e).Request(physics.Grounded()); ok {
		physics.SpeedY = -strength
	}
}

func handleItemInput(env *components.EnvData, e *donburi.Entry, state *input.State) {
	if state.Action(cfg.ActionCycleWeapon).JustPressed {
		cycleWeapon(env, e)
	}
	if state.Action(cfg.ActionUseItem).JustPressed {
		startItemUse(env, e)
	}
}

// handleAttackInput swings or fires the weapon in hand. Chargeable
// projectile weapons charge while the button is held and fire on release.
func handleAttackInput(w donburi.World, env *components.EnvData, e *donburi.Entry, state *input.State) {
	combat := components.Combat.Get(e)
	if components.ItemUse.Get(e).Active() {
		combat.CancelCharge()
		return
	}

	attack := state.Action(cfg.ActionAttack)
	weapon := components.Equipment.Get(e).Weapon
	mode := weapon.AttackMode()
	aimX := components.Facing.Get(e).X

	if mode.Projectile() && weapon.Chargeable() {
		switch {
		case attack.JustPressed:
			combat.BeginCharge()
		case attack.Pressed:
			combat.UpdateCharge(env.DT, weapon.Charge)
		case attack.JustReleased:
			if p, ok := combat.ReleaseCharge(weapon.Charge); ok {
				fireWeapon(w, env, e, true, p, aimX, 0)
			}
		}
		return
	}

	// The weapon changed mid-charge
	if combat.Charging {
		combat.CancelCharge()
	}
	if !attack.JustPressed {
		return
	}
	switch {
	case mode.Projectile():
		fireWeapon(w, env, e, false, 0, aimX, 0)
	case mode == items.ModeMelee:
		startMeleeAttack(w, env, e)
	}
}
