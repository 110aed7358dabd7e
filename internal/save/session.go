package save

import (
	"fmt"

	"casinobuilder/internal/terrain"
	"casinobuilder/internal/world"
)

// Section keys used by the builder session.
const (
	TerrainSection = "terrain"
	MapSection     = "map"
)

// Session is what the builder persists: the terrain inputs and the placed cells.
type Session struct {
	Terrain terrain.Snapshot
	Map     world.MapSnapshot
}

// WriteSession stores both sections and writes the file.
func WriteSession(path string, s Session) error {
	store := NewStore()
	if err := store.Put(TerrainSection, s.Terrain); err != nil {
		return err
	}
	if err := store.Put(MapSection, s.Map); err != nil {
		return err
	}
	return store.WriteFile(path)
}

// ReadSession loads a session. ok is false when the file has no terrain
// section; a missing map section is an empty map.
func ReadSession(path string) (s Session, ok bool, err error) {
	store, err := ReadFile(path)
	if err != nil {
		return Session{}, false, err
	}
	found, err := store.Get(TerrainSection, &s.Terrain)
	if err != nil || !found {
		return Session{}, false, err
	}
	if _, err := store.Get(MapSection, &s.Map); err != nil {
		return Session{}, false, fmt.Errorf("session %s: %w", path, err)
	}
	return s, true, nil
}
