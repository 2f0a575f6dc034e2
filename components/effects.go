package components

import (
	"image/color"

	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/status"
)

// StatusEffect is the single active status effect of an entity.
var StatusEffect = donburi.NewComponentType[status.Effect]()

// FlashData tracks sprite flash effect (hit flash, damage flash)
type FlashData struct {
	Remaining float64 // seconds
	Tint      color.RGBA
}

var Flash = donburi.NewComponentType[FlashData]()

func (f *FlashData) Start(d float64, tint color.RGBA) {
	f.Remaining = d
	f.Tint = tint
}

func (f *FlashData) Update(dt float64) {
	if f.Remaining > 0 {
		f.Remaining = max(f.Remaining-dt, 0)
	}
}
