// Package catalog holds the product catalog the analysis service matches
// RFP requirements against.
package catalog

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

// Item is one sellable product.
type Item struct {
	SKUID     string   `json:"sku_id" yaml:"sku_id" validate:"required"`
	Name      string   `json:"name" yaml:"name" validate:"required"`
	Category  string   `json:"category" yaml:"category"`
	Features  []string `json:"features" yaml:"features" validate:"required,min=1,dive,required"`
	UnitPrice float64  `json:"unit_price" yaml:"unit_price" validate:"gt=0"`
}

// Catalog is an ordered product list. Order matters for ties when matching.
type Catalog struct {
	Items []Item `validate:"required,min=1,dive"`
}

// Fallback is served when no catalog file exists.
func Fallback() Catalog {
	return Catalog{Items: []Item{
		{
			SKUID:     "AP-EXT-005",
			Name:      "Apex Ultima Protek",
			Category:  "Exterior",
			Features:  []string{"waterproofing", "anti-algal", "10-year warranty"},
			UnitPrice: 620,
		},
		{
			SKUID:     "AP-ROY-001",
			Name:      "Royale Aspira",
			Category:  "Interior",
			Features:  []string{"washable", "teflon", "crack-bridging"},
			UnitPrice: 850,
		},
		{
			SKUID:     "AP-IND-009",
			Name:      "Apcolite Premium",
			Category:  "Enamel",
			Features:  []string{"high gloss", "rust protection"},
			UnitPrice: 450,
		},
	}}
}

// Load reads a catalog from path. Files ending in .yaml or .yml are parsed
// as YAML, anything else as JSON. Either form is a top-level list of items.
// A missing file yields Fallback.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("catalog_fallback", "path", path)
			return Fallback(), nil
		}
		return Catalog{}, oops.
			With("path", path).
			Errorf("failed to read catalog: %w", err)
	}

	return Parse(data, filepath.Ext(path))
}

// Parse decodes and validates catalog data. ext selects the format.
func Parse(data []byte, ext string) (Catalog, error) {
	var items []Item
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &items); err != nil {
			return Catalog{}, oops.Errorf("failed to parse YAML catalog: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &items); err != nil {
			return Catalog{}, oops.Errorf("failed to parse JSON catalog: %w", err)
		}
	}

	cat := Catalog{Items: items}
	if err := cat.Validate(); err != nil {
		return Catalog{}, err
	}
	slog.Info("catalog_loaded", "items", len(cat.Items))
	return cat, nil
}

// Validate checks every item has an id, a name, features and a positive price.
func (c Catalog) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return oops.Errorf("failed to validate catalog: %w", err)
	}
	return nil
}
