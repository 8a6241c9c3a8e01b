package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/trianglejam/shared/leveldata"
)

const levelsDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// FS exposes the embedded assets, for callers that load with their own paths.
func FS() fs.FS {
	return assetFS
}

// LevelLoader loads TMX levels from the embedded assets or any other fs.FS.
type LevelLoader struct {
	fsys  fs.FS
	cache map[string]*leveldata.Level
}

func NewLevelLoader() *LevelLoader {
	return NewLevelLoaderFS(assetFS)
}

func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{
		fsys:  fsys,
		cache: make(map[string]*leveldata.Level),
	}
}

// Load returns the level with the given stem name, parsing it on first use.
func (l *LevelLoader) Load(name string) (*leveldata.Level, error) {
	if lvl, ok := l.cache[name]; ok {
		return lvl, nil
	}
	lvl, err := leveldata.LoadLevel(l.fsys, path.Join(levelsDir, name+".tmx"))
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	l.cache[name] = lvl
	return lvl, nil
}

func (l *LevelLoader) MustLoadLevel(name string) *leveldata.Level {
	lvl, err := l.Load(name)
	if err != nil {
		panic(err)
	}
	return lvl
}

// Names lists every embedded level, sorted.
func (l *LevelLoader) Names() ([]string, error) {
	levels, names, err := leveldata.LoadAllLevels(l.fsys, levelsDir)
	if err != nil {
		return nil, err
	}
	for name, lvl := range levels {
		l.cache[name] = lvl
	}
	return names, nil
}
