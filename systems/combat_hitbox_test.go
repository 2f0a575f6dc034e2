package systems

import (
	"testing"

	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/config"
	"github.com/automoto/lootbound/items"
)

func TestMeleeHitboxPlacement(t *testing.T) {
	const px, py = 64.0, testGroundY - 40

	tests := []struct {
		name   string
		weapon string // "" swings fists, "club" is a melee weapon without its own range
		facing float64
		wantX  float64
		wantW  float64
	}{
		{"unarmed right", "", config.DirectionRight, px + 16, 20},
		{"unarmed left", "", config.DirectionLeft, px - 20, 20},
		{"iron sword right", "iron_sword", config.DirectionRight, px + 16, 28},
		{"iron sword left", "iron_sword", config.DirectionLeft, px - 28, 28},
		{"zero range right", "club", config.DirectionRight, px + 16, 20},
		{"zero range left", "club", config.DirectionLeft, px - 20, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := newTestWorld(t, nil)
			e, _ := spawnPlayer(t, w, px, py)
			eq := components.Equipment.Get(e)
			inv := components.Inventory.Get(e)
			eq.Unequip(inv)

			switch tt.weapon {
			case "":
			case "club":
				inv.Add(&items.Item{ID: "club", Category: items.CategoryMelee, Damage: 4}, 1)
				if !eq.Equip(inv, inv.Find("club")) {
					t.Fatal("equip club failed")
				}
			default:
				equip(t, env, e, tt.weapon, 1)
			}
			components.Facing.Get(e).X = tt.facing

			if !startMeleeAttack(w, env, e) {
				t.Fatal("attack did not start")
			}
			hitbox := components.Combat.Get(e).ActiveHitbox
			if hitbox == nil || !hitbox.Valid() {
				t.Fatal("no hitbox spawned")
			}
			box := components.Object.Get(hitbox)
			if box.X != tt.wantX || box.W != tt.wantW {
				t.Errorf("hitbox x=%v w=%v, want x=%v w=%v", box.X, box.W, tt.wantX, tt.wantW)
			}
			if box.H != env.Config.Combat.HitboxHeight {
				t.Errorf("hitbox h=%v, want %v", box.H, env.Config.Combat.HitboxHeight)
			}
			if wantY := py + (40-box.H)/2; box.Y != wantY {
				t.Errorf("hitbox y=%v, want %v", box.Y, wantY)
			}
		})
	}
}
