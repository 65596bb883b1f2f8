package navigation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/portlogistics-go/internal/domain/navigation"
	"github.com/andrescamacho/portlogistics-go/internal/domain/shared"
)

type namedDestination string

func (d namedDestination) Name() string { return string(d) }

func newVessel(t *testing.T, name string, class navigation.VesselClass, capacity float64) *navigation.Vessel {
	t.Helper()
	fuel, err := shared.NewFuel(100, 200)
	require.NoError(t, err)
	v, err := navigation.NewVessel(name, class, fuel, capacity, 200, navigation.Capabilities{})
	require.NoError(t, err)
	return v
}

func TestNewVessel_Validation(t *testing.T) {
	fuel, _ := shared.NewFuel(100, 200)

	tests := []struct {
		name         string
		vesselName   string
		class        navigation.VesselClass
		fuel         *shared.Fuel
		capacity     float64
		fuelCapacity int
		caps         navigation.Capabilities
		wantErr      string
	}{
		{"empty name", "", navigation.VesselClassHeavy, fuel, 50, 200, navigation.Capabilities{}, "name cannot be empty"},
		{"unknown class", "S", navigation.VesselClass("TUG"), fuel, 50, 200, navigation.Capabilities{}, "invalid class"},
		{"nil fuel", "S", navigation.VesselClassHeavy, nil, 50, 200, navigation.Capabilities{}, "fuel cannot be nil"},
		{"fuel mismatch", "S", navigation.VesselClassHeavy, fuel, 50, 150, navigation.Capabilities{}, "fuel capacity must match"},
		{"negative capacity", "S", navigation.VesselClassHeavy, fuel, -1, 200, navigation.Capabilities{}, "weight_capacity cannot be negative"},
		{"slots on light vessel", "S", navigation.VesselClassLightWeight, fuel, 50, 200, navigation.Capabilities{RefrigeratedSlot: true}, "no capability slots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := navigation.NewVessel(tt.vesselName, tt.class, tt.fuel, tt.capacity, tt.fuelCapacity, tt.caps)

			var dataErr *shared.InvalidVesselDataError
			require.ErrorAs(t, err, &dataErr)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewVessel_MediumCarriesCapabilities(t *testing.T) {
	fuel, _ := shared.NewFuel(10, 10)
	caps := navigation.Capabilities{RefrigeratedSlot: true, WaterContainerSlot: true}

	v, err := navigation.NewVessel("Reefer", navigation.VesselClassMedium, fuel, 500, 10, caps)

	require.NoError(t, err)
	assert.Equal(t, caps, v.Capabilities())
}

func TestVessel_AddCargoDoesNotCheckCapacity(t *testing.T) {
	v := newVessel(t, "Ship1", navigation.VesselClassLightWeight, 5)
	item, _ := shared.NewCargoItem(1, 10, 1, 0, shared.CargoCategoryHeavy)

	v.AddCargo(item)

	assert.Len(t, v.Manifest(), 1)
	assert.Equal(t, 10.0, v.ManifestWeight())
	assert.False(t, v.CanCarry(0))
}

func TestVessel_TakeManifestEmptiesManifest(t *testing.T) {
	v := newVessel(t, "Ship1", navigation.VesselClassHeavy, 100)
	a, _ := shared.NewCargoItem(1, 1, 1, 0, shared.CargoCategorySmall)
	b, _ := shared.NewCargoItem(2, 1, 1, 0, shared.CargoCategorySmall)
	v.AddCargo(a)
	v.AddCargo(b)

	taken := v.TakeManifest()

	assert.Equal(t, []*shared.CargoItem{a, b}, taken)
	assert.Empty(t, v.Manifest())
}

func TestVessel_ManifestIsSnapshot(t *testing.T) {
	v := newVessel(t, "Ship1", navigation.VesselClassHeavy, 100)
	item, _ := shared.NewCargoItem(1, 1, 1, 0, shared.CargoCategorySmall)
	v.AddCargo(item)

	snapshot := v.Manifest()
	snapshot[0] = nil

	assert.Same(t, item, v.Manifest()[0])
}

func TestVessel_DepartLeavesStateUntouched(t *testing.T) {
	for _, class := range []navigation.VesselClass{
		navigation.VesselClassLightWeight,
		navigation.VesselClassMedium,
		navigation.VesselClassHeavy,
	} {
		t.Run(string(class), func(t *testing.T) {
			v := newVessel(t, "Ship1", class, 100)
			item, _ := shared.NewCargoItem(1, 4, 2, 0, shared.CargoCategorySmall)
			v.AddCargo(item)

			event := v.Depart(namedDestination("PortB"))

			assert.Equal(t, navigation.DepartedEvent{VesselName: "Ship1", VesselClass: class, Destination: "PortB"}, event)
			assert.Equal(t, 100, v.Fuel().Current)
			assert.Equal(t, 8.0, v.ManifestWeight())
		})
	}
}

func TestParseVesselClass(t *testing.T) {
	class, err := navigation.ParseVesselClass("medium")
	require.NoError(t, err)
	assert.Equal(t, navigation.VesselClassMedium, class)

	_, err = navigation.ParseVesselClass("dinghy")
	assert.Error(t, err)
}
