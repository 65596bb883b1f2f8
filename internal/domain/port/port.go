package port

import (
	"fmt"

	"github.com/andrescamacho/portlogistics-go/internal/domain/navigation"
	"github.com/andrescamacho/portlogistics-go/internal/domain/shared"
)

// Port is a cargo terminal holding an inventory of cargo items.
// Cargo moves between a port and a vessel only by full transfer: the whole
// source collection moves and the source is left empty.
type Port struct {
	name        string
	coordinates string
	inventory   []*shared.CargoItem
}

// NewPort creates a new port with validation
func NewPort(name, coordinates string) (*Port, error) {
	if name == "" {
		return nil, shared.NewValidationError("name", "cannot be empty")
	}

	return &Port{
		name:        name,
		coordinates: coordinates,
		inventory:   []*shared.CargoItem{},
	}, nil
}

func (p *Port) Name() string {
	return p.name
}

func (p *Port) Coordinates() string {
	return p.coordinates
}

// Inventory returns a snapshot of the items held at the port
func (p *Port) Inventory() []*shared.CargoItem {
	items := make([]*shared.CargoItem, len(p.inventory))
	copy(items, p.inventory)
	return items
}

// InventoryWeight returns the total weight of everything held at the port
func (p *Port) InventoryWeight() float64 {
	return shared.TotalWeightOf(p.inventory)
}

// Store places an item in the port's inventory
func (p *Port) Store(item *shared.CargoItem) {
	p.inventory = append(p.inventory, item)
}

// UnloadToVessel moves every inventory item onto the vessel, preserving order,
// and empties the inventory. Returns the number of items moved.
func (p *Port) UnloadToVessel(vessel *navigation.Vessel) int {
	moved := len(p.inventory)
	for _, item := range p.inventory {
		vessel.AddCargo(item)
	}
	p.inventory = []*shared.CargoItem{}
	return moved
}

// LoadFromVessel moves every manifest item into the inventory, preserving order,
// and empties the manifest. Returns the number of items moved.
func (p *Port) LoadFromVessel(vessel *navigation.Vessel) int {
	items := vessel.TakeManifest()
	p.inventory = append(p.inventory, items...)
	return len(items)
}

func (p *Port) String() string {
	return fmt.Sprintf("Port(%s @ %s, %d items)", p.name, p.coordinates, len(p.inventory))
}

// Compile-time interface check
var _ navigation.Destination = (*Port)(nil)
