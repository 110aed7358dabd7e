package world

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"casinobuilder/internal/config"
)

var defaultFloorColor = [3]int{150, 150, 150}

// MaterialManager holds the floor material catalog loaded from YAML.
type MaterialManager struct {
	materials     map[string]*config.MaterialData
	letterToKey   map[string]string
	defaultColors [3]int
}

// NewMaterialManager creates an empty catalog
func NewMaterialManager() *MaterialManager {
	return &MaterialManager{
		materials:     make(map[string]*config.MaterialData),
		letterToKey:   make(map[string]string),
		defaultColors: defaultFloorColor,
	}
}

// LoadMaterialConfig loads material definitions from a YAML file
func (mm *MaterialManager) LoadMaterialConfig(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read material config file: %w", err)
	}

	var materialConfig config.MaterialConfig
	if err := yaml.Unmarshal(data, &materialConfig); err != nil {
		return fmt.Errorf("failed to parse material config: %w", err)
	}
	return mm.SetMaterials(materialConfig.Materials)
}

// SetMaterials replaces the catalog. Letters must be unique.
func (mm *MaterialManager) SetMaterials(materials map[string]config.MaterialData) error {
	byKey := make(map[string]*config.MaterialData, len(materials))
	letters := make(map[string]string, len(materials))
	for key, data := range materials {
		if key == "" {
			return fmt.Errorf("material with empty key: %w", ErrInvalidArgument)
		}
		// Make a copy to avoid pointer issues
		dataCopy := data
		byKey[key] = &dataCopy

		if data.Letter == "" {
			continue
		}
		if other, taken := letters[data.Letter]; taken {
			return fmt.Errorf("materials %q and %q share letter %q: %w", other, key, data.Letter, ErrInvalidArgument)
		}
		letters[data.Letter] = key
	}

	mm.materials = byKey
	mm.letterToKey = letters
	return nil
}

// HasMaterial checks if a material key exists in the catalog
func (mm *MaterialManager) HasMaterial(key string) bool {
	_, exists := mm.materials[key]
	return exists
}

// GetMaterial returns the data for a material key, or nil
func (mm *MaterialManager) GetMaterial(key string) *config.MaterialData {
	return mm.materials[key]
}

// GetAllMaterialKeys returns every material key, sorted
func (mm *MaterialManager) GetAllMaterialKeys() []string {
	keys := make([]string, 0, len(mm.materials))
	for key := range mm.materials {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// GetColor returns the material's floor color, falling back to grey
func (mm *MaterialManager) GetColor(key string) [3]int {
	data := mm.GetMaterial(key)
	if data == nil {
		return mm.defaultColors
	}
	if data.Color[0] != 0 || data.Color[1] != 0 || data.Color[2] != 0 {
		return data.Color
	}
	return mm.defaultColors
}

// GetMaterialKeyFromLetter returns the material key for a given letter
func (mm *MaterialManager) GetMaterialKeyFromLetter(letter string) (string, bool) {
	key, ok := mm.letterToKey[letter]
	return key, ok
}

// ListMaterials returns a copy of the catalog
func (mm *MaterialManager) ListMaterials() map[string]*config.MaterialData {
	result := make(map[string]*config.MaterialData, len(mm.materials))
	for key, data := range mm.materials {
		// Make a copy to prevent external modification
		dataCopy := *data
		result[key] = &dataCopy
	}
	return result
}
