package navigation

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/portlogistics-go/internal/domain/shared"
)

// VesselClass represents the size class of a vessel
type VesselClass string

const (
	VesselClassLightWeight VesselClass = "LIGHTWEIGHT"
	VesselClassMedium      VesselClass = "MEDIUM"
	VesselClassHeavy       VesselClass = "HEAVY"
)

var validVesselClasses = map[VesselClass]bool{
	VesselClassLightWeight: true,
	VesselClassMedium:      true,
	VesselClassHeavy:       true,
}

// ParseVesselClass converts a case-insensitive name into a VesselClass
func ParseVesselClass(value string) (VesselClass, error) {
	class := VesselClass(strings.ToUpper(strings.TrimSpace(value)))
	if !validVesselClasses[class] {
		return "", shared.NewValidationError("class", fmt.Sprintf("unknown vessel class %q", value))
	}
	return class, nil
}

// Capabilities are slot placeholders a vessel may carry.
// Only MEDIUM vessels may declare them; nothing checks cargo against them yet.
type Capabilities struct {
	RefrigeratedSlot   bool
	WaterContainerSlot bool
}

// departureHandler produces the departure notification for one vessel class
type departureHandler func(v *Vessel, destination Destination) DepartedEvent

func announceDeparture(v *Vessel, destination Destination) DepartedEvent {
	return DepartedEvent{
		VesselName:  v.name,
		VesselClass: v.class,
		Destination: destination.Name(),
	}
}

// Every class departs the same way today. Specialize an entry to change one class.
var departureHandlers = map[VesselClass]departureHandler{
	VesselClassLightWeight: announceDeparture,
	VesselClassMedium:      announceDeparture,
	VesselClassHeavy:       announceDeparture,
}

// Vessel entity - a named cargo carrier with a capacity profile and a manifest
//
// Invariants:
// - Name must be non-empty
// - Class must be one of: LIGHTWEIGHT, MEDIUM, HEAVY
// - Capacities cannot be negative
// - Fuel capacity matches the fuel value object
// - Only MEDIUM vessels declare capability slots
//
// Declared but not enforced by any operation:
// - ManifestWeight() <= WeightCapacity()
// - Fuel is never consumed
type Vessel struct {
	name           string
	class          VesselClass
	fuel           *shared.Fuel
	weightCapacity float64
	fuelCapacity   int
	capabilities   Capabilities
	manifest       []*shared.CargoItem
}

// NewVessel creates a new Vessel entity with validation
func NewVessel(
	name string,
	class VesselClass,
	fuel *shared.Fuel,
	weightCapacity float64,
	fuelCapacity int,
	capabilities Capabilities,
) (*Vessel, error) {
	v := &Vessel{
		name:           name,
		class:          class,
		fuel:           fuel,
		weightCapacity: weightCapacity,
		fuelCapacity:   fuelCapacity,
		capabilities:   capabilities,
		manifest:       []*shared.CargoItem{},
	}

	if err := v.validate(); err != nil {
		return nil, err
	}

	return v, nil
}

func (v *Vessel) validate() error {
	if v.name == "" {
		return shared.NewInvalidVesselDataError("name cannot be empty")
	}

	if !validVesselClasses[v.class] {
		return shared.NewInvalidVesselDataError(fmt.Sprintf("invalid class: %s", v.class))
	}

	if v.fuel == nil {
		return shared.NewInvalidVesselDataError("fuel cannot be nil")
	}

	if v.fuelCapacity < 0 {
		return shared.NewInvalidVesselDataError("fuel_capacity cannot be negative")
	}

	if v.fuel.Capacity != v.fuelCapacity {
		return shared.NewInvalidVesselDataError("fuel capacity must match fuel_capacity")
	}

	if v.weightCapacity < 0 {
		return shared.NewInvalidVesselDataError("weight_capacity cannot be negative")
	}

	if v.class != VesselClassMedium && (v.capabilities.RefrigeratedSlot || v.capabilities.WaterContainerSlot) {
		return shared.NewInvalidVesselDataError(fmt.Sprintf("%s vessels have no capability slots", v.class))
	}

	return nil
}

// Getters

func (v *Vessel) Name() string {
	return v.name
}

func (v *Vessel) Class() VesselClass {
	return v.class
}

func (v *Vessel) Fuel() *shared.Fuel {
	return v.fuel
}

func (v *Vessel) WeightCapacity() float64 {
	return v.weightCapacity
}

func (v *Vessel) FuelCapacity() int {
	return v.fuelCapacity
}

func (v *Vessel) Capabilities() Capabilities {
	return v.capabilities
}

// Manifest returns a snapshot of the items currently aboard
func (v *Vessel) Manifest() []*shared.CargoItem {
	items := make([]*shared.CargoItem, len(v.manifest))
	copy(items, v.manifest)
	return items
}

// ManifestWeight returns the total weight of everything aboard
func (v *Vessel) ManifestWeight() float64 {
	return shared.TotalWeightOf(v.manifest)
}

// Cargo Management

// AddCargo appends an item to the manifest. Capacity is not checked.
func (v *Vessel) AddCargo(item *shared.CargoItem) {
	v.manifest = append(v.manifest, item)
}

// TakeManifest hands over every item aboard and leaves the manifest empty
func (v *Vessel) TakeManifest() []*shared.CargoItem {
	items := v.manifest
	v.manifest = []*shared.CargoItem{}
	return items
}

// CanCarry reports whether additional weight fits under the weight capacity
func (v *Vessel) CanCarry(additional float64) bool {
	return v.ManifestWeight()+additional <= v.weightCapacity
}

// Depart announces transit to a destination.
// Fuel, manifest and position are left untouched.
func (v *Vessel) Depart(destination Destination) DepartedEvent {
	handler, ok := departureHandlers[v.class]
	if !ok {
		handler = announceDeparture
	}
	return handler(v, destination)
}

func (v *Vessel) String() string {
	return fmt.Sprintf("Vessel(%s, %s, %d items)", v.name, v.class, len(v.manifest))
}
