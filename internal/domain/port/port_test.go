package port_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/portlogistics-go/internal/domain/navigation"
	"github.com/andrescamacho/portlogistics-go/internal/domain/port"
	"github.com/andrescamacho/portlogistics-go/internal/domain/shared"
)

func newVessel(t *testing.T) *navigation.Vessel {
	t.Helper()
	fuel, _ := shared.NewFuel(100, 200)
	v, err := navigation.NewVessel("Ship1", navigation.VesselClassLightWeight, fuel, 50, 200, navigation.Capabilities{})
	require.NoError(t, err)
	return v
}

func newItems(n int) []*shared.CargoItem {
	items := make([]*shared.CargoItem, 0, n)
	for i := 1; i <= n; i++ {
		item, _ := shared.NewCargoItem(i, float64(i), 1, 0, shared.CargoCategorySmall)
		items = append(items, item)
	}
	return items
}

func TestNewPort_RequiresName(t *testing.T) {
	_, err := port.NewPort("", "A123")
	assert.Error(t, err)
}

func TestPort_UnloadToVesselMovesEverythingInOrder(t *testing.T) {
	// Arrange
	p, _ := port.NewPort("PortA", "A123")
	v := newVessel(t)
	existing, _ := shared.NewCargoItem(99, 1, 1, 0, shared.CargoCategoryHeavy)
	v.AddCargo(existing)
	items := newItems(3)
	for _, item := range items {
		p.Store(item)
	}

	// Act
	moved := p.UnloadToVessel(v)

	// Assert
	assert.Equal(t, 3, moved)
	assert.Empty(t, p.Inventory())
	assert.Equal(t, append([]*shared.CargoItem{existing}, items...), v.Manifest())
}

func TestPort_LoadFromVesselMovesEverythingInOrder(t *testing.T) {
	p, _ := port.NewPort("PortB", "B456")
	v := newVessel(t)
	items := newItems(2)
	for _, item := range items {
		v.AddCargo(item)
	}

	moved := p.LoadFromVessel(v)

	assert.Equal(t, 2, moved)
	assert.Empty(t, v.Manifest())
	assert.Equal(t, items, p.Inventory())
}

func TestPort_EmptyTransfersAreNoOps(t *testing.T) {
	p, _ := port.NewPort("PortA", "A123")
	v := newVessel(t)

	assert.Zero(t, p.UnloadToVessel(v))
	assert.Zero(t, p.LoadFromVessel(v))
	assert.Empty(t, p.Inventory())
	assert.Empty(t, v.Manifest())
}

func TestPort_TransfersMoveReferences(t *testing.T) {
	p, _ := port.NewPort("PortA", "A123")
	v := newVessel(t)
	item := newItems(1)[0]
	p.Store(item)

	p.UnloadToVessel(v)
	item.Count = 5

	assert.Same(t, item, v.Manifest()[0])
	assert.Equal(t, 5.0, v.ManifestWeight())
}

func TestPort_InventoryWeight(t *testing.T) {
	p, _ := port.NewPort("PortA", "A123")
	for _, item := range newItems(3) {
		p.Store(item)
	}

	assert.Equal(t, 6.0, p.InventoryWeight())
}
