package navigation

// DepartedEvent is emitted when a vessel leaves for a destination.
// It is a notification only; departing does not change vessel state.
type DepartedEvent struct {
	VesselName  string      // Vessel that departed
	VesselClass VesselClass // Class of the departing vessel
	Destination string      // Name of the destination port
}
