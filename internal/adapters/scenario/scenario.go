package scenario

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"

	"github.com/andrescamacho/portlogistics-go/internal/domain/navigation"
	"github.com/andrescamacho/portlogistics-go/internal/domain/port"
	"github.com/andrescamacho/portlogistics-go/internal/domain/shared"
	"github.com/andrescamacho/portlogistics-go/internal/infrastructure/config"
)

// Scenario is a fleet fixture: the ports and vessels to register and the
// operations to replay against them
type Scenario struct {
	Ports      []PortEntry   `mapstructure:"ports" validate:"dive"`
	Vessels    []VesselEntry `mapstructure:"vessels" validate:"dive"`
	Operations []string      `mapstructure:"operations"`
}

// PortEntry describes a port and the cargo stored there at start
type PortEntry struct {
	Name        string       `mapstructure:"name" validate:"required"`
	Coordinates string       `mapstructure:"coordinates"`
	Cargo       []CargoEntry `mapstructure:"cargo" validate:"dive"`
}

// VesselEntry describes a vessel and the cargo already aboard
type VesselEntry struct {
	Name               string       `mapstructure:"name" validate:"required"`
	Class              string       `mapstructure:"class" validate:"required"`
	Fuel               int          `mapstructure:"fuel" validate:"min=0"`
	FuelCapacity       int          `mapstructure:"fuel_capacity" validate:"min=0"`
	WeightCapacity     float64      `mapstructure:"weight_capacity" validate:"min=0"`
	RefrigeratedSlot   bool         `mapstructure:"refrigerated_slot"`
	WaterContainerSlot bool         `mapstructure:"water_container_slot"`
	Cargo              []CargoEntry `mapstructure:"cargo" validate:"dive"`
}

// CargoEntry describes a cargo item and, recursively, what it contains
type CargoEntry struct {
	ID          int          `mapstructure:"id"`
	Weight      float64      `mapstructure:"weight" validate:"gt=0"`
	Count       int          `mapstructure:"count" validate:"min=0"`
	ContainerID int          `mapstructure:"container_id"`
	Category    string       `mapstructure:"category"`
	Items       []CargoEntry `mapstructure:"items" validate:"dive"`
}

// Load reads a scenario file. The format follows the extension (yaml, json, toml).
func Load(path string) (*Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	return decode(v)
}

// Parse reads a scenario from r in the given format
func Parse(r io.Reader, format string) (*Scenario, error) {
	v := viper.New()
	v.SetConfigType(format)

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Scenario, error) {
	var s Scenario
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}

	if err := config.NewValidator().Validate(&s); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &s, nil
}

// Registrar receives the entities a scenario builds
type Registrar interface {
	AddPort(p *port.Port)
	AddVessel(v *navigation.Vessel)
}

// Build constructs every port and vessel with its cargo and registers them
// in file order. Nothing is registered if any entity is invalid.
func (s *Scenario) Build(target Registrar) error {
	ports := make([]*port.Port, 0, len(s.Ports))
	for _, entry := range s.Ports {
		p, err := entry.build()
		if err != nil {
			return fmt.Errorf("port %q: %w", entry.Name, err)
		}
		ports = append(ports, p)
	}

	vessels := make([]*navigation.Vessel, 0, len(s.Vessels))
	for _, entry := range s.Vessels {
		v, err := entry.build()
		if err != nil {
			return fmt.Errorf("vessel %q: %w", entry.Name, err)
		}
		vessels = append(vessels, v)
	}

	for _, p := range ports {
		target.AddPort(p)
	}
	for _, v := range vessels {
		target.AddVessel(v)
	}
	return nil
}

func (entry PortEntry) build() (*port.Port, error) {
	p, err := port.NewPort(entry.Name, entry.Coordinates)
	if err != nil {
		return nil, err
	}

	for _, c := range entry.Cargo {
		item, err := c.build()
		if err != nil {
			return nil, err
		}
		p.Store(item)
	}
	return p, nil
}

func (entry VesselEntry) build() (*navigation.Vessel, error) {
	class, err := navigation.ParseVesselClass(entry.Class)
	if err != nil {
		return nil, err
	}

	fuelCapacity := entry.FuelCapacity
	if fuelCapacity == 0 {
		fuelCapacity = entry.Fuel
	}
	fuel, err := shared.NewFuel(entry.Fuel, fuelCapacity)
	if err != nil {
		return nil, err
	}

	v, err := navigation.NewVessel(entry.Name, class, fuel, entry.WeightCapacity, fuelCapacity, navigation.Capabilities{
		RefrigeratedSlot:   entry.RefrigeratedSlot,
		WaterContainerSlot: entry.WaterContainerSlot,
	})
	if err != nil {
		return nil, err
	}

	for _, c := range entry.Cargo {
		item, err := c.build()
		if err != nil {
			return nil, err
		}
		v.AddCargo(item)
	}
	return v, nil
}

// build creates the item and its nested items depth first
func (entry CargoEntry) build() (*shared.CargoItem, error) {
	category := shared.CargoCategorySmall
	if entry.Category != "" {
		parsed, err := shared.ParseCargoCategory(entry.Category)
		if err != nil {
			return nil, err
		}
		category = parsed
	}

	item, err := shared.NewCargoItem(entry.ID, entry.Weight, entry.Count, entry.ContainerID, category)
	if err != nil {
		return nil, fmt.Errorf("cargo %d: %w", entry.ID, err)
	}

	for _, child := range entry.Items {
		nested, err := child.build()
		if err != nil {
			return nil, err
		}
		item.AddItem(nested)
	}
	return item, nil
}

// ReadOperations reads one operation per line. Blank lines and lines
// starting with '#' are skipped; everything else is passed through verbatim.
func ReadOperations(r io.Reader) ([]string, error) {
	var operations []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		operations = append(operations, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read operations: %w", err)
	}

	return operations, nil
}
