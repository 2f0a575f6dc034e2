package factory

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/archetypes"
	"github.com/automoto/lootbound/tags"
)

// CreateBlock adds a solid rectangle.
func CreateBlock(w donburi.World, x, y, width, height float64) *donburi.Entry {
	block := archetypes.Block.Spawn(w)
	addToSpace(w, newObject(block, x, y, width, height, tags.ResolvSolid))
	return block
}
