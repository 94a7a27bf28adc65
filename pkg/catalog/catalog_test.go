package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileUsesFallback(t *testing.T) {
	cat, err := Load(filepath.Join(t.TempDir(), "db.json"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(cat.Items) != 3 {
		t.Fatalf("Expected 3 fallback items, got %d", len(cat.Items))
	}
	if cat.Items[0].SKUID != "AP-EXT-005" {
		t.Errorf("Expected AP-EXT-005 first, got %s", cat.Items[0].SKUID)
	}
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	raw := `[
  {"sku_id": "BP-001", "name": "Shield Coat", "category": "Exterior", "features": ["Waterproofing"], "unit_price": 700}
]`
	if err := os.WriteFile(path, []byte(raw), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(cat.Items) != 1 || cat.Items[0].Name != "Shield Coat" {
		t.Errorf("Expected Shield Coat, got %+v", cat.Items)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	raw := `
- sku_id: AP-EXT-005
  name: Apex Ultima Protek
  category: Exterior
  features: [waterproofing, anti-algal]
  unit_price: 620
- sku_id: AP-IND-009
  name: Apcolite Premium
  features:
    - high gloss
  unit_price: 450
`
	if err := os.WriteFile(path, []byte(raw), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(cat.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(cat.Items))
	}
	if cat.Items[1].UnitPrice != 450 {
		t.Errorf("Expected unit price 450, got %v", cat.Items[1].UnitPrice)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ext  string
	}{
		{"bad json", `{not json`, ".json"},
		{"bad yaml", "- sku_id: [", ".yml"},
		{"empty list", `[]`, ".json"},
		{"missing sku", `[{"name": "X", "features": ["a"], "unit_price": 1}]`, ".json"},
		{"no features", `[{"sku_id": "X", "name": "X", "features": [], "unit_price": 1}]`, ".json"},
		{"blank feature", `[{"sku_id": "X", "name": "X", "features": [""], "unit_price": 1}]`, ".json"},
		{"zero price", `[{"sku_id": "X", "name": "X", "features": ["a"], "unit_price": 0}]`, ".json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.raw), tt.ext); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestFallbackValidates(t *testing.T) {
	if err := Fallback().Validate(); err != nil {
		t.Fatalf("Expected fallback catalog to validate, got %v", err)
	}
}

func TestParse_ErrorMentionsFormat(t *testing.T) {
	_, err := Parse([]byte("{"), ".json")
	if err == nil || !strings.Contains(err.Error(), "JSON") {
		t.Errorf("Expected JSON parse error, got %v", err)
	}
}
