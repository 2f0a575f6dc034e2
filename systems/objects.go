package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/components"
)

// collect snapshots the entries of c so the caller may add or remove
// entities while walking them.
func collect[T any](w donburi.World, c *donburi.ComponentType[T]) []*donburi.Entry {
	var out []*donburi.Entry
	for e := range c.Iter(w) {
		out = append(out, e)
	}
	return out
}

func getSpace(w donburi.World) *resolv.Space {
	if e, ok := components.Space.First(w); ok {
		return components.Space.Get(e)
	}
	return nil
}

// removeEntity drops e from the collision space and the world.
func removeEntity(w donburi.World, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e).Object; obj != nil {
			if space := getSpace(w); space != nil {
				space.Remove(obj)
			}
		}
	}
	w.Remove(e.Entity())
}

// alive reports whether e is a character that can act and be hit.
func alive(e *donburi.Entry) bool {
	if e == nil || !e.Valid() || e.HasComponent(components.Death) {
		return false
	}
	return !e.HasComponent(components.Resources) || components.Resources.Get(e).Alive()
}

// overlaps is an exact box test. Touching edges do not overlap.
func overlaps(a, b *resolv.Object) bool {
	return overlapsX(a, b) && overlapsY(a, b)
}

func overlapsX(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W
}

func overlapsY(a, b *resolv.Object) bool {
	return a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// entryOf returns the entity linked to a collision object.
func entryOf(obj *resolv.Object) (*donburi.Entry, bool) {
	e, ok := obj.Data.(*donburi.Entry)
	if !ok || e == nil || !e.Valid() {
		return nil, false
	}
	return e, true
}
