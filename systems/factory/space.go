package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/archetypes"
	"github.com/automoto/lootbound/components"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers obj with the world's space, if there is one.
func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// newObject builds a rectangle collision object linked to e.
func newObject(e *donburi.Entry, x, y, width, height float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, width, height, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = e // Link for O(1) lookup
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	return obj
}
