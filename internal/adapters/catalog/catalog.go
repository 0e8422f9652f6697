// Package catalog reads the reference documents shipped with foundry: the
// material catalog and the starter vendor pool. Both are YAML, embedded in the
// binary, and the material catalog can be replaced by a file on disk.
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/foundry/internal/ports/secondary"
)

//go:embed materials.yaml
var defaultMaterials []byte

//go:embed vendors.yaml
var defaultVendors []byte

type materialDocument struct {
	Materials []secondary.MaterialRecord `yaml:"materials"`
}

type vendorDocument struct {
	Vendors []vendorEntry `yaml:"vendors"`
}

type vendorEntry struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	City        string   `yaml:"city"`
	Tier        int      `yaml:"tier"`
	Processes   []string `yaml:"processes"`
	Materials   []string `yaml:"materials"`
	MinOrderQty int      `yaml:"min_order_qty"`
	Contact     string   `yaml:"contact"`
}

// MaterialFileSource implements secondary.MaterialSource over a YAML document.
type MaterialFileSource struct {
	path string
}

// NewMaterialSource returns a source reading path, or the embedded default
// catalog when path is empty.
func NewMaterialSource(path string) *MaterialFileSource {
	return &MaterialFileSource{path: path}
}

// List parses the catalog document.
func (s *MaterialFileSource) List(ctx context.Context) ([]secondary.MaterialRecord, error) {
	data := defaultMaterials
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read material catalog %s: %w", s.path, err)
		}
		data = b
	}
	return ParseMaterials(data)
}

// ParseMaterials decodes a material catalog document.
func ParseMaterials(data []byte) ([]secondary.MaterialRecord, error) {
	var doc materialDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse material catalog: %w", err)
	}
	for i, m := range doc.Materials {
		if m.Name == "" {
			return nil, fmt.Errorf("material catalog entry %d has no name", i+1)
		}
	}
	return doc.Materials, nil
}

// DefaultVendors returns the embedded starter vendor pool.
func DefaultVendors() ([]*secondary.VendorRecord, error) {
	return ParseVendors(defaultVendors)
}

// ParseVendors decodes a vendor pool document.
func ParseVendors(data []byte) ([]*secondary.VendorRecord, error) {
	var doc vendorDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse vendor document: %w", err)
	}

	records := make([]*secondary.VendorRecord, 0, len(doc.Vendors))
	for _, v := range doc.Vendors {
		records = append(records, &secondary.VendorRecord{
			ID:          v.ID,
			Name:        v.Name,
			City:        v.City,
			Tier:        v.Tier,
			Processes:   v.Processes,
			Materials:   v.Materials,
			MinOrderQty: v.MinOrderQty,
			Contact:     v.Contact,
		})
	}
	return records, nil
}

// Ensure MaterialFileSource implements the interface
var _ secondary.MaterialSource = (*MaterialFileSource)(nil)
