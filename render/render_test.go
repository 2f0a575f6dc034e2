package render

import (
	"image/color"
	"testing"

	"github.com/automoto/lootbound/items"
	"github.com/automoto/lootbound/status"
)

func TestClampCamera(t *testing.T) {
	tests := []struct {
		name                string
		center, view, level float64
		want                float64
	}{
		{"left edge", 10, 100, 400, 50},
		{"middle", 200, 100, 400, 200},
		{"right edge", 390, 100, 400, 350},
		{"level smaller than view", 30, 100, 60, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampCamera(tt.center, tt.view, tt.level); got != tt.want {
				t.Errorf("clampCamera = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTintOf(t *testing.T) {
	base := color.RGBA{100, 100, 100, 255}
	if got := tintOf(status.None, base); got != base {
		t.Errorf("none changed the color to %v", got)
	}
	p, _ := status.PolicyFor(status.Frozen)
	if got := tintOf(status.Frozen, base); got != mix(base, p.Tint) {
		t.Errorf("frozen tint = %v", got)
	}
}

func TestWeaponLabel(t *testing.T) {
	bow := &items.Item{ID: "short_bow", Name: "Short Bow", Category: items.CategoryRanged, Ammo: "arrow"}
	arrow := &items.Item{ID: "arrow", Category: items.CategoryMaterial, MaxStack: 99, AmmoType: "arrow"}
	knife := &items.Item{ID: "knife", Name: "Knife", Category: items.CategoryThrowable, MaxStack: 20}
	staff := &items.Item{ID: "staff", Name: "Staff", Category: items.CategoryRanged, Ammo: "mana", ManaCost: 10}

	inv := items.NewInventory(4)
	inv.Add(arrow, 12)
	inv.Add(knife, 3)

	tests := []struct {
		name string
		eq   items.Equipment
		want string
	}{
		{"unarmed", items.NewEquipment(), "fists"},
		{"bow counts arrows", items.Equipment{Weapon: bow, HeldSlot: -1}, "Short Bow (arrow 12)"},
		{"held throwable", items.Equipment{Weapon: knife, Held: inv.Slots[1], HeldSlot: 1}, "Knife x3"},
		{"magic", items.Equipment{Weapon: staff, HeldSlot: -1}, "Staff (10 mana)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := weaponLabel(&tt.eq, inv); got != tt.want {
				t.Errorf("label = %q, want %q", got, tt.want)
			}
		})
	}
}
