// Package render draws the simulation as colored rectangles for manual
// play and debugging.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/items"
	"github.com/automoto/lootbound/tags"
)

var (
	colorBackground = color.RGBA{24, 20, 37, 255}
	colorSolid      = color.RGBA{100, 100, 100, 255}
	colorPlatform   = color.RGBA{150, 120, 80, 255}
	colorPlayer     = color.RGBA{60, 110, 255, 255}
	colorPlayerAir  = color.RGBA{150, 80, 255, 255}
	colorMob        = color.RGBA{230, 80, 80, 255}
	colorMobAir     = color.RGBA{255, 60, 200, 255}
	colorProjectile = color.RGBA{255, 230, 90, 255}
	colorPickup     = color.RGBA{90, 230, 120, 255}
	colorHitbox     = color.RGBA{255, 255, 255, 120}
	colorOutline    = color.RGBA{0, 255, 255, 255}

	colorBarBack = color.RGBA{40, 40, 40, 255}
	colorHealth  = color.RGBA{40, 220, 40, 255}
	colorMana    = color.RGBA{60, 120, 255, 255}
	colorStamina = color.RGBA{230, 200, 40, 255}
	colorCharge  = color.RGBA{255, 255, 255, 255}
)

const (
	hudBarWidth  = 130
	hudBarHeight = 8
	hudMargin    = 10
	hudSpacing   = 4

	healthBarWidth  = 24.0
	healthBarHeight = 3.0
)

// Draw layers, drawn in ascending order.
const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
)

// Renderer follows the first player with a camera clamped to the level.
type Renderer struct {
	// Debug outlines every object in the collision space.
	Debug bool

	camX, camY float64
}

func New() *Renderer {
	return &Renderer{}
}

// Register adds the world and HUD passes to e.
func (r *Renderer) Register(e *ecs.ECS) {
	e.AddRenderer(LayerWorld, r.DrawWorld)
	e.AddRenderer(LayerHUD, r.DrawHUD)
}

// DrawWorld renders the level and every entity through the camera.
func (r *Renderer) DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	w := ecs.World
	screen.Fill(colorBackground)
	env, ok := components.Env.First(w)
	if !ok {
		return
	}
	level := components.Env.Get(env).Level
	r.follow(screen, w, float64(level.MapWidth), float64(level.MapHeight))

	tags.Block.Each(w, func(e *donburi.Entry) { r.fill(screen, e, colorSolid) })
	tags.Platform.Each(w, func(e *donburi.Entry) { r.fill(screen, e, colorPlatform) })
	tags.Pickup.Each(w, func(e *donburi.Entry) { r.fill(screen, e, colorPickup) })
	tags.Projectile.Each(w, func(e *donburi.Entry) {
		c := colorProjectile
		if p := components.Projectile.Get(e); p.Effect != nil {
			c = tintOf(p.Effect.Kind, c)
		}
		r.fill(screen, e, c)
	})
	tags.Mob.Each(w, func(e *donburi.Entry) { r.drawCharacter(screen, e, colorMob, colorMobAir) })
	tags.Player.Each(w, func(e *donburi.Entry) { r.drawCharacter(screen, e, colorPlayer, colorPlayerAir) })
	tags.Hitbox.Each(w, func(e *donburi.Entry) { r.fill(screen, e, colorHitbox) })

	if r.Debug {
		r.drawDebug(screen, w)
	}
}

// DrawHUD renders the first player's status in screen space.
func (r *Renderer) DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if p, ok := tags.Player.First(ecs.World); ok {
		drawHUD(screen, p)
	}
}

// follow centers the camera on the first player.
func (r *Renderer) follow(screen *ebiten.Image, w donburi.World, levelW, levelH float64) {
	p, ok := tags.Player.First(w)
	if !ok {
		return
	}
	o := components.Object.Get(p)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	r.camX = clampCamera(o.CenterX(), width, levelW)
	r.camY = clampCamera(o.CenterY(), height, levelH)
}

func clampCamera(center, view, level float64) float64 {
	half := view / 2
	if level <= view {
		return level / 2
	}
	return min(max(center, half), level-half)
}

func (r *Renderer) toScreen(screen *ebiten.Image, x, y float64) (float32, float32) {
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return float32(x + width/2 - r.camX), float32(y + height/2 - r.camY)
}

func (r *Renderer) fill(screen *ebiten.Image, e *donburi.Entry, c color.Color) {
	o := components.Object.Get(e)
	x, y := r.toScreen(screen, o.X, o.Y)
	vector.FillRect(screen, x, y, float32(o.W), float32(o.H), c, false)
}

func (r *Renderer) drawCharacter(screen *ebiten.Image, e *donburi.Entry, ground, air color.RGBA) {
	c := ground
	if !components.Physics.Get(e).Grounded() {
		c = air
	}
	if effect := components.StatusEffect.Get(e); effect.Active() {
		c = mix(c, effect.Tint)
	}
	if flash := components.Flash.Get(e); flash.Remaining > 0 {
		c = flash.Tint
	}
	if e.HasComponent(components.Death) {
		c.A = 90
	}
	r.fill(screen, e, c)

	// Facing marker
	o := components.Object.Get(e)
	fx := o.X + o.W - 3
	if components.Facing.Get(e).X < 0 {
		fx = o.X + 1
	}
	x, y := r.toScreen(screen, fx, o.Y+4)
	vector.FillRect(screen, x, y, 2, 2, colorBackground, false)

	r.drawHealthBar(screen, e)
}

// drawHealthBar shows a bar above a damaged character.
func (r *Renderer) drawHealthBar(screen *ebiten.Image, e *donburi.Entry) {
	res := components.Resources.Get(e)
	if res.Health.Full() || !res.Alive() {
		return
	}
	o := components.Object.Get(e)
	x, y := r.toScreen(screen, o.CenterX()-healthBarWidth/2, o.Y-healthBarHeight-3)
	vector.FillRect(screen, x, y, healthBarWidth, healthBarHeight, colorBarBack, false)
	vector.FillRect(screen, x, y, float32(healthBarWidth*res.Health.Fraction()), healthBarHeight, colorHealth, false)
}

func (r *Renderer) drawDebug(screen *ebiten.Image, w donburi.World) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	for _, obj := range space.Objects() {
		r.outline(screen, obj, colorOutline)
	}
}

func (r *Renderer) outline(screen *ebiten.Image, obj *resolv.Object, c color.Color) {
	x, y := r.toScreen(screen, obj.X, obj.Y)
	w, h := float32(obj.W), float32(obj.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}

// drawHUD renders the player's pools, charge and weapon in the top-left
// corner.
func drawHUD(screen *ebiten.Image, p *donburi.Entry) {
	res := components.Resources.Get(p)
	y := float32(hudMargin)
	for _, bar := range []struct {
		fraction float64
		c        color.Color
	}{
		{res.Health.Fraction(), colorHealth},
		{res.Mana.Fraction(), colorMana},
		{res.Stamina.Fraction(), colorStamina},
	} {
		vector.FillRect(screen, hudMargin, y, hudBarWidth, hudBarHeight, colorBarBack, false)
		vector.FillRect(screen, hudMargin, y, float32(hudBarWidth*bar.fraction), hudBarHeight, bar.c, false)
		y += hudBarHeight + hudSpacing
	}

	eq := components.Equipment.Get(p)
	combat := components.Combat.Get(p)
	if combat.Charging && eq.Weapon.Chargeable() {
		pct := eq.Weapon.Charge.Percent(combat.ChargeTimer)
		vector.FillRect(screen, hudMargin, y, float32(hudBarWidth*pct), 2, colorCharge, false)
	}
	y += 2 + hudSpacing

	ebitenutil.DebugPrintAt(screen, weaponLabel(eq, components.Inventory.Get(p)), hudMargin, int(y))
	if kills := components.Player.Get(p).Kills; kills > 0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("kills %d", kills), hudMargin, int(y)+14)
	}
}

// weaponLabel names the weapon in hand with what it has left to fire.
func weaponLabel(eq *items.Equipment, inv *items.Inventory) string {
	it := eq.Weapon
	if it == nil {
		return "fists"
	}
	switch it.AttackMode() {
	case items.ModeThrowable:
		if eq.Held != nil {
			return fmt.Sprintf("%s x%d", it.DisplayName(), eq.Held.Count)
		}
	case items.ModeRanged:
		if it.Ammo != "" {
			n := 0
			for _, st := range inv.Slots {
				if st != nil && st.Item.IsAmmoFor(it.Ammo) {
					n += st.Count
				}
			}
			return fmt.Sprintf("%s (%s %d)", it.DisplayName(), it.Ammo, n)
		}
	case items.ModeMagic:
		return fmt.Sprintf("%s (%.0f mana)", it.DisplayName(), it.ManaCost)
	}
	return it.DisplayName()
}
