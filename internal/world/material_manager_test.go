package world

import (
	"os"
	"testing"

	"casinobuilder/internal/config"
)

func TestMaterialManager(t *testing.T) {
	// Create a temporary materials.yaml for testing
	testConfig := `materials:
  metal:
    name: "Brushed Metal"
    color: [170, 175, 185]
    letter: "M"
  carpet:
    name: "Casino Carpet"
    color: [140, 20, 40]
    letter: "C"
  plain:
    name: "Plain Slab"
`

	tmpFile, err := os.CreateTemp("", "test_materials_*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString(testConfig); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	tmpFile.Close()

	mm := NewMaterialManager()
	if err := mm.LoadMaterialConfig(tmpFile.Name()); err != nil {
		t.Fatalf("Failed to load material config: %v", err)
	}

	if !mm.HasMaterial("metal") {
		t.Fatalf("Expected metal to be loaded")
	}
	if mm.HasMaterial("gold") {
		t.Errorf("Did not expect gold to be loaded")
	}

	expectedColor := [3]int{140, 20, 40}
	if got := mm.GetColor("carpet"); got != expectedColor {
		t.Errorf("Expected carpet color %v, got %v", expectedColor, got)
	}
	if got := mm.GetColor("plain"); got != defaultFloorColor {
		t.Errorf("Expected plain to fall back to %v, got %v", defaultFloorColor, got)
	}
	if got := mm.GetColor("unknown"); got != defaultFloorColor {
		t.Errorf("Expected unknown material to fall back to %v, got %v", defaultFloorColor, got)
	}

	key, ok := mm.GetMaterialKeyFromLetter("M")
	if !ok || key != "metal" {
		t.Errorf("Expected letter M to map to metal, got %q (%v)", key, ok)
	}

	keys := mm.GetAllMaterialKeys()
	if len(keys) != 3 || keys[0] != "carpet" || keys[2] != "plain" {
		t.Errorf("Expected sorted keys [carpet metal plain], got %v", keys)
	}
}

func TestMaterialManagerRejectsDuplicateLetters(t *testing.T) {
	mm := NewMaterialManager()
	err := mm.SetMaterials(map[string]config.MaterialData{
		"metal":  {Name: "Metal", Letter: "M"},
		"marble": {Name: "Marble", Letter: "M"},
	})
	if err == nil {
		t.Fatalf("Expected duplicate letters to be rejected")
	}
}

func TestMaterialManagerListIsCopy(t *testing.T) {
	mm := NewMaterialManager()
	if err := mm.SetMaterials(map[string]config.MaterialData{"metal": {Name: "Metal"}}); err != nil {
		t.Fatalf("SetMaterials: %v", err)
	}

	list := mm.ListMaterials()
	list["metal"].Name = "Changed"
	if mm.GetMaterial("metal").Name != "Metal" {
		t.Errorf("Expected catalog to be unaffected by edits to ListMaterials result")
	}
}

func TestMaterialManagerMissingFile(t *testing.T) {
	mm := NewMaterialManager()
	if err := mm.LoadMaterialConfig("does/not/exist.yaml"); err == nil {
		t.Errorf("Expected error for missing file")
	}
}
