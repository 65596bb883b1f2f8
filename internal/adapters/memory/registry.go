package memory

import (
	"github.com/andrescamacho/portlogistics-go/internal/domain/navigation"
	"github.com/andrescamacho/portlogistics-go/internal/domain/port"
)

// PortRegistry keeps ports in registration order.
// Names are not required to be unique; lookups return the first match.
type PortRegistry struct {
	ports []*port.Port
}

// NewPortRegistry creates an empty port registry
func NewPortRegistry() *PortRegistry {
	return &PortRegistry{ports: []*port.Port{}}
}

// Add registers a port without checking for duplicate names
func (r *PortRegistry) Add(p *port.Port) {
	r.ports = append(r.ports, p)
}

// FindByName returns the first port registered under name
func (r *PortRegistry) FindByName(name string) (*port.Port, bool) {
	for _, p := range r.ports {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// All returns the ports in registration order
func (r *PortRegistry) All() []*port.Port {
	ports := make([]*port.Port, len(r.ports))
	copy(ports, r.ports)
	return ports
}

// VesselRegistry keeps vessels in registration order.
// Names are not required to be unique; lookups return the first match.
type VesselRegistry struct {
	vessels []*navigation.Vessel
}

// NewVesselRegistry creates an empty vessel registry
func NewVesselRegistry() *VesselRegistry {
	return &VesselRegistry{vessels: []*navigation.Vessel{}}
}

// Add registers a vessel without checking for duplicate names
func (r *VesselRegistry) Add(v *navigation.Vessel) {
	r.vessels = append(r.vessels, v)
}

// FindByName returns the first vessel registered under name
func (r *VesselRegistry) FindByName(name string) (*navigation.Vessel, bool) {
	for _, v := range r.vessels {
		if v.Name() == name {
			return v, true
		}
	}
	return nil, false
}

// All returns the vessels in registration order
func (r *VesselRegistry) All() []*navigation.Vessel {
	vessels := make([]*navigation.Vessel, len(r.vessels))
	copy(vessels, r.vessels)
	return vessels
}

// Compile-time interface checks
var (
	_ port.Registry             = (*PortRegistry)(nil)
	_ navigation.VesselRegistry = (*VesselRegistry)(nil)
)
