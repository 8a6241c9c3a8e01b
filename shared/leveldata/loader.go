package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	gm "github.com/automoto/trianglejam/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX files.
const (
	GroupSolids      = "Solids"
	GroupSpawnPoints = "SpawnPoints"
	GroupTriggers    = "Triggers"
	GroupCameras     = "Cameras"
	GroupCheckpoints = "Checkpoints"
	GroupHazards     = "Hazards"
	GroupPlatforms   = "Platforms"
)

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass the
// embedded assets or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			switch og.Name {
			case GroupSolids:
				lvl.Solids = append(lvl.Solids, solid(lvl, o))
			case GroupSpawnPoints:
				lvl.SpawnPoints = append(lvl.SpawnPoints, spawnPoint(lvl, o))
			case GroupTriggers:
				tr, err := trigger(lvl, o)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
				}
				lvl.Triggers = append(lvl.Triggers, tr)
			case GroupCameras:
				lvl.Cameras = append(lvl.Cameras, FixedCamera{
					Name:     o.Name,
					Position: gm.V(o.X, floatOr(o.Properties, "depth", 0), lvl.Height-o.Y),
					Zoom:     floatOr(o.Properties, "zoom", 1),
				})
			case GroupCheckpoints:
				lvl.Checkpoints = append(lvl.Checkpoints, rect(lvl, o))
			case GroupHazards:
				lvl.Hazards = append(lvl.Hazards, rect(lvl, o))
			case GroupPlatforms:
				lvl.Platforms = append(lvl.Platforms, Platform{
					Solid: solid(lvl, o),
					Offset: gm.V(
						floatOr(o.Properties, "moveX", 0),
						floatOr(o.Properties, "moveDepth", 0),
						-floatOr(o.Properties, "moveY", 0),
					),
					Duration: floatOr(o.Properties, "duration", 2),
					Pause:    floatOr(o.Properties, "pause", 0),
				})
			}
		}
	}

	if len(lvl.SpawnPoints) == 0 {
		return nil, fmt.Errorf("load TMX %s: no %s objects", tmxPath, GroupSpawnPoints)
	}

	// Sort spawns left-to-right for a stable fallback order
	sort.SliceStable(lvl.SpawnPoints, func(i, j int) bool {
		return lvl.SpawnPoints[i].Position.X < lvl.SpawnPoints[j].Position.X
	})

	return lvl, nil
}

// DefaultSpawn returns the spawn marked default, else the leftmost one.
func (l *Level) DefaultSpawn() SpawnPoint {
	for _, s := range l.SpawnPoints {
		if s.Default {
			return s
		}
	}
	return l.SpawnPoints[0]
}

// Camera looks up a fixed camera by name.
func (l *Level) Camera(name string) (FixedCamera, bool) {
	for _, c := range l.Cameras {
		if c.Name == name {
			return c, true
		}
	}
	return FixedCamera{}, false
}

func rect(lvl *Level, o *tiled.Object) Rect {
	return Rect{
		Name:     o.Name,
		X:        o.X,
		Z:        lvl.Height - o.Y - o.Height,
		W:        o.Width,
		H:        o.Height,
		DepthMin: floatOr(o.Properties, "depthMin", defaultDepthMin),
		DepthMax: floatOr(o.Properties, "depthMax", defaultDepthMax),
	}
}

func solid(lvl *Level, o *tiled.Object) Solid {
	return Solid{
		Rect:      rect(lvl, o),
		CanMantle: o.Properties.GetBool("canMantle"),
	}
}

func spawnPoint(lvl *Level, o *tiled.Object) SpawnPoint {
	return SpawnPoint{
		Name:     o.Name,
		Position: gm.V(o.X, floatOr(o.Properties, "depth", 0), lvl.Height-o.Y),
		Yaw:      floatOr(o.Properties, "yaw", 0),
		Tags:     splitTags(o.Properties.GetString("tags")),
		Default:  o.Properties.GetBool("default"),
	}
}

func trigger(lvl *Level, o *tiled.Object) (CameraTrigger, error) {
	tr := CameraTrigger{
		Rect:                rect(lvl, o),
		SwitchToFixedCamera: o.Properties.GetBool("switchToFixedCamera"),
		Camera:              o.Properties.GetString("camera"),
		BlendTime:           floatOr(o.Properties, "blendTime", 1.5),
		Level:               o.Properties.GetString("level"),
		ReturnSpawnTag:      o.Properties.GetString("returnTag"),
		FadeDuration:        floatOr(o.Properties, "fadeDuration", 0.5),
	}
	switch v := o.Properties.GetString("variant"); v {
	case "", "view":
		tr.Variant = TriggerView
		if tr.SwitchToFixedCamera && tr.Camera == "" {
			return tr, fmt.Errorf("trigger %q: switchToFixedCamera needs a camera", o.Name)
		}
	case "level":
		tr.Variant = TriggerLevel
		if tr.Level == "" {
			return tr, fmt.Errorf("trigger %q: level variant needs a level", o.Name)
		}
	default:
		return tr, fmt.Errorf("trigger %q: unknown variant %q", o.Name, v)
	}
	return tr, nil
}

func floatOr(props tiled.Properties, name string, def float64) float64 {
	if len(props.Get(name)) == 0 {
		return def
	}
	return props.GetFloat(name)
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		lvl, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[lvl.Name] = lvl
		names = append(names, lvl.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
