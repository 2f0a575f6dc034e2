package animations

import (
	"errors"
	"io/fs"
	"path"
	"sort"

	"go.uber.org/zap"

	"github.com/automoto/lootbound/config"
)

// Source answers which states have a real asset and hands out animations.
type Source interface {
	HasAnimation(state config.StateID) bool
	Animation(state config.StateID) *Animation
}

// Library is the animation set of one character.
type Library struct {
	Key   string
	anims map[config.StateID]*Animation
}

func (l *Library) HasAnimation(state config.StateID) bool {
	if l == nil {
		return false
	}
	_, ok := l.anims[state]
	return ok
}

// Animation returns a fresh animation for state, or a placeholder when the
// asset is missing so the entity stays drawable.
func (l *Library) Animation(state config.StateID) *Animation {
	if l != nil {
		if a, ok := l.anims[state]; ok {
			return a.Clone()
		}
	}
	return placeholderAnimation()
}

// States lists the available states in order.
func (l *Library) States() []config.StateID {
	out := make([]config.StateID, 0, len(l.anims))
	for s := range l.anims {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SheetPath is where the sprite sheet of key and state lives under dir.
func SheetPath(dir, key string, state config.StateID) string {
	return path.Join(dir, key, state.String()+".png")
}

// LoadLibrary builds the library of key from defs. With a nil fsys every
// defined state is available, which is what headless runs and tests use.
// Otherwise each state needs its sprite sheet in fsys. Missing sheets are
// logged and left out.
func LoadLibrary(fsys fs.FS, dir, key string, defs map[config.StateID]config.AnimationDef, log *zap.Logger) *Library {
	if log == nil {
		log = zap.NewNop()
	}
	lib := &Library{Key: key, anims: make(map[config.StateID]*Animation, len(defs))}
	for state, def := range defs {
		if fsys != nil {
			p := SheetPath(dir, key, state)
			if _, err := fs.Stat(fsys, p); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					log.Warn("animation asset missing, using fallback",
						zap.String("character", key),
						zap.Stringer("state", state),
						zap.String("path", p))
				} else {
					log.Warn("animation asset unreadable, using fallback",
						zap.String("character", key),
						zap.Stringer("state", state),
						zap.Error(err))
				}
				continue
			}
		}
		a := NewAnimation(def.First, def.Last, def.Step, def.FrameDuration)
		a.FreezeOnComplete = !def.Loop
		lib.anims[state] = a
	}
	return lib
}

// Catalog holds the libraries of every character.
type Catalog struct {
	libs map[string]*Library
	log  *zap.Logger
}

// NewCatalog loads every character in defs.
func NewCatalog(fsys fs.FS, dir string, defs map[string]map[config.StateID]config.AnimationDef, log *zap.Logger) *Catalog {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Catalog{libs: make(map[string]*Library, len(defs)), log: log}
	for key, d := range defs {
		c.libs[key] = LoadLibrary(fsys, dir, key, d, log)
	}
	return c
}

// Library returns the library for key. Unknown keys get an empty library,
// which resolves to placeholders.
func (c *Catalog) Library(key string) *Library {
	if lib, ok := c.libs[key]; ok {
		return lib
	}
	c.log.Warn("no animations for character, using placeholders", zap.String("character", key))
	lib := &Library{Key: key, anims: map[config.StateID]*Animation{}}
	c.libs[key] = lib
	return lib
}
