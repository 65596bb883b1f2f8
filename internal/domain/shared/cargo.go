package shared

import (
	"fmt"
	"strings"
)

// CargoCategory tags a cargo item with its handling class.
// Categories carry no behavior today; they reserve room for category-specific
// handling such as refrigeration or spill containment.
type CargoCategory string

const (
	CargoCategorySmall        CargoCategory = "SMALL"
	CargoCategoryHeavy        CargoCategory = "HEAVY"
	CargoCategoryRefrigerated CargoCategory = "REFRIGERATED"
	CargoCategoryLiquid       CargoCategory = "LIQUID"
)

var validCargoCategories = map[CargoCategory]bool{
	CargoCategorySmall:        true,
	CargoCategoryHeavy:        true,
	CargoCategoryRefrigerated: true,
	CargoCategoryLiquid:       true,
}

// ParseCargoCategory converts a case-insensitive name into a CargoCategory
func ParseCargoCategory(value string) (CargoCategory, error) {
	category := CargoCategory(strings.ToUpper(strings.TrimSpace(value)))
	if !validCargoCategories[category] {
		return "", NewValidationError("category", fmt.Sprintf("unknown cargo category %q", value))
	}
	return category, nil
}

func (c CargoCategory) String() string {
	return string(c)
}

// CargoItem is a weighted, countable unit of freight that may contain other items.
//
// Invariants:
// - Weight must be positive
// - Count cannot be negative
// - The containment graph is acyclic (precondition, not checked at runtime)
//
// An item lives in exactly one place at a time: a port inventory, a vessel
// manifest or another item's Items. Transfers move the pointer, never a copy.
type CargoItem struct {
	ID          int
	Weight      float64
	Count       int
	ContainerID int // owning container, informational only
	Category    CargoCategory
	Items       []*CargoItem
}

// NewCargoItem creates a new cargo item with validation
func NewCargoItem(id int, weight float64, count int, containerID int, category CargoCategory) (*CargoItem, error) {
	if weight <= 0 {
		return nil, NewValidationError("weight", "must be positive")
	}
	if count < 0 {
		return nil, NewValidationError("count", "cannot be negative")
	}
	if !validCargoCategories[category] {
		return nil, NewValidationError("category", fmt.Sprintf("unknown cargo category %q", category))
	}

	return &CargoItem{
		ID:          id,
		Weight:      weight,
		Count:       count,
		ContainerID: containerID,
		Category:    category,
		Items:       []*CargoItem{},
	}, nil
}

// AddItem nests a child item inside this one
func (c *CargoItem) AddItem(child *CargoItem) {
	c.Items = append(c.Items, child)
}

// TotalWeight returns weight*count plus the total weight of every nested item.
// Computed on each call since children may change between calls.
func (c *CargoItem) TotalWeight() float64 {
	total := c.Weight * float64(c.Count)
	for _, child := range c.Items {
		total += child.TotalWeight()
	}
	return total
}

func (c *CargoItem) String() string {
	return fmt.Sprintf("CargoItem(%d %s %gx%d)", c.ID, c.Category, c.Weight, c.Count)
}

// TotalWeightOf sums the total weight of a collection of items
func TotalWeightOf(items []*CargoItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.TotalWeight()
	}
	return total
}
