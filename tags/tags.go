package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Mob        = donburi.NewTag().SetName("Mob")
	Block      = donburi.NewTag().SetName("Block")
	Platform   = donburi.NewTag().SetName("Platform")
	Hitbox     = donburi.NewTag().SetName("Hitbox")
	Projectile = donburi.NewTag().SetName("Projectile")
	Pickup     = donburi.NewTag().SetName("Pickup")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlatform   = "platform"
	ResolvCharacter  = "character"
	ResolvPlayer     = "Player"
	ResolvMob        = "Mob"
	ResolvProjectile = "projectile"
	ResolvPickup     = "pickup"
	ResolvHitbox     = "hitbox"
)
