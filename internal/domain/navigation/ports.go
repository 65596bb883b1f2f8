package navigation

// Destination is anything a vessel can sail to
type Destination interface {
	Name() string
}

// VesselRegistry looks up registered vessels by name.
// Implementations return the first vessel registered under the name.
type VesselRegistry interface {
	Add(vessel *Vessel)
	FindByName(name string) (*Vessel, bool)
	All() []*Vessel
}
