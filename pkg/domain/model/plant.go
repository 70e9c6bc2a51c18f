package model

import (
	"slices"

	"github.com/m-mizutani/goerr/v2"
)

// PlantID is the stable identifier of a plant in the catalog
type PlantID string

// String returns the string representation of the plant ID
func (id PlantID) String() string {
	return string(id)
}

// Plant is a single catalog entry
type Plant struct {
	ID             PlantID  `json:"id" toml:"id" firestore:"id"`
	Name           string   `json:"name" toml:"name" firestore:"name"`
	ScientificName string   `json:"scientificName" toml:"scientific_name" firestore:"scientificName"`
	Description    string   `json:"description" toml:"description" firestore:"description"`
	Uses           []string `json:"uses" toml:"uses" firestore:"uses"`
	Regions        []string `json:"regions" toml:"regions" firestore:"regions"`
	Conditions     []string `json:"conditions" toml:"conditions" firestore:"conditions"`
	Category       []string `json:"category,omitempty" toml:"category" firestore:"category,omitempty"`
}

// Validate checks the fields every catalog entry must have
func (p *Plant) Validate() error {
	if p.ID == "" {
		return goerr.New("plant ID is required", goerr.V("name", p.Name))
	}
	return nil
}

// HasCategory reports whether the plant is tagged with category.
// Plants without any category never match.
func (p *Plant) HasCategory(category string) bool {
	if p.Category == nil {
		return false
	}
	return slices.Contains(p.Category, category)
}

// TopUses returns at most n uses in display order
func (p *Plant) TopUses(n int) []string {
	if n <= 0 {
		return nil
	}
	if n > len(p.Uses) {
		n = len(p.Uses)
	}
	return slices.Clone(p.Uses[:n])
}

// Clone returns a deep copy of the plant
func (p *Plant) Clone() *Plant {
	if p == nil {
		return nil
	}
	return &Plant{
		ID:             p.ID,
		Name:           p.Name,
		ScientificName: p.ScientificName,
		Description:    p.Description,
		Uses:           slices.Clone(p.Uses),
		Regions:        slices.Clone(p.Regions),
		Conditions:     slices.Clone(p.Conditions),
		Category:       slices.Clone(p.Category),
	}
}
