package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files.
const (
	SolidLayer     = "wg-tiles"
	PlatformLayer  = "platforms"
	PlayerSpawns   = "PlayerSpawn"
	MobSpawns      = "MobSpawn"
	MarkerGroup    = "Markers"
	groundMarker   = "ground"
	mobTypeProp    = "mobType"
	spawnIndexProp = "spawnIndex"
)

// LoadCollisionData parses a TMX file. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &CollisionData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}
	data.GroundY = float64(data.MapHeight)

	for _, layer := range levelMap.Layers {
		switch layer.Name {
		case SolidLayer:
			data.SolidRects = append(data.SolidRects, tileRects(levelMap, layer)...)
		case PlatformLayer:
			data.Platforms = append(data.Platforms, tileRects(levelMap, layer)...)
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlayerSpawns:
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt(spawnIndexProp),
				})
			}
		case MobSpawns:
			for _, o := range og.Objects {
				typeID := o.Properties.GetString(mobTypeProp)
				if typeID == "" {
					typeID = o.Name
				}
				if typeID == "" {
					return nil, fmt.Errorf("load TMX %s: mob spawn %d has no %s", tmxPath, o.ID, mobTypeProp)
				}
				data.MobSpawns = append(data.MobSpawns, MobSpawn{X: o.X, Y: o.Y, TypeID: typeID})
			}
		case MarkerGroup:
			for _, o := range og.Objects {
				if strings.EqualFold(o.Name, groundMarker) {
					data.GroundY = o.Y
				}
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

func tileRects(m *tiled.Map, layer *tiled.Layer) []Rect {
	tileW := float64(m.TileWidth)
	tileH := float64(m.TileHeight)
	var out []Rect
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := y*m.Width + x
			if idx >= len(layer.Tiles) {
				return out
			}
			if layer.Tiles[idx].IsNil() {
				continue
			}
			out = append(out, Rect{
				X: float64(x) * tileW,
				Y: float64(y) * tileH,
				W: tileW,
				H: tileH,
			})
		}
	}
	return out
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads collision
// data for each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*CollisionData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadCollisionData(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
