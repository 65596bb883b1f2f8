package steps

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/portlogistics-go/internal/domain/shared"
)

type cargoContext struct {
	items  map[int]*shared.CargoItem
	weight float64
	err    error
}

func (cc *cargoContext) reset() {
	cc.items = make(map[int]*shared.CargoItem)
	cc.weight = 0
	cc.err = nil
}

// buildCargo creates the items of a cargo table. Rows with a parent are
// nested inside the item with that id, which must appear on an earlier row.
// Returns the top-level items in table order.
func buildCargo(table *godog.Table, index map[int]*shared.CargoItem) ([]*shared.CargoItem, error) {
	rows, err := parseCargoTable(table)
	if err != nil {
		return nil, err
	}

	var topLevel []*shared.CargoItem
	for _, row := range rows {
		category := shared.CargoCategorySmall
		if row.category != "" {
			category, err = shared.ParseCargoCategory(row.category)
			if err != nil {
				return nil, err
			}
		}

		item, err := shared.NewCargoItem(row.id, row.weight, row.count, 0, category)
		if err != nil {
			return nil, err
		}
		index[row.id] = item

		if row.parent == "" {
			topLevel = append(topLevel, item)
			continue
		}

		parentID, err := strconv.Atoi(row.parent)
		if err != nil {
			return nil, fmt.Errorf("invalid parent %q", row.parent)
		}
		parent, ok := index[parentID]
		if !ok {
			return nil, fmt.Errorf("parent %d must be listed before item %d", parentID, row.id)
		}
		parent.AddItem(item)
	}

	return topLevel, nil
}

// Given steps

func (cc *cargoContext) theFollowingCargoItems(table *godog.Table) error {
	_, err := buildCargo(table, cc.items)
	return err
}

func (cc *cargoContext) iAddCargoItemWithWeightAndCountTo(id int, weight float64, count int, parentID int) error {
	parent, ok := cc.items[parentID]
	if !ok {
		return fmt.Errorf("no cargo item %d", parentID)
	}
	item, err := shared.NewCargoItem(id, weight, count, 0, shared.CargoCategorySmall)
	if err != nil {
		return err
	}
	cc.items[id] = item
	parent.AddItem(item)
	return nil
}

// When steps

func (cc *cargoContext) iComputeTheTotalWeightOfCargoItem(id int) error {
	item, ok := cc.items[id]
	if !ok {
		return fmt.Errorf("no cargo item %d", id)
	}
	cc.weight = item.TotalWeight()
	return nil
}

func (cc *cargoContext) iCreateACargoItemWithWeightAndCount(weight float64, count int) error {
	_, cc.err = shared.NewCargoItem(1, weight, count, 0, shared.CargoCategorySmall)
	return nil
}

// Then steps

func (cc *cargoContext) theTotalWeightShouldBe(expected float64) error {
	if math.Abs(cc.weight-expected) > 1e-9 {
		return fmt.Errorf("expected total weight %g, got %g", expected, cc.weight)
	}
	return nil
}

func (cc *cargoContext) cargoCreationShouldFailOnField(field string) error {
	if cc.err == nil {
		return fmt.Errorf("expected cargo creation to fail on %s, but it succeeded", field)
	}
	validationErr, ok := cc.err.(*shared.ValidationError)
	if !ok {
		return fmt.Errorf("expected a validation error, got %T: %v", cc.err, cc.err)
	}
	if validationErr.Field != field {
		return fmt.Errorf("expected failure on field '%s', got '%s'", field, validationErr.Field)
	}
	return nil
}

func InitializeCargoScenario(ctx *godog.ScenarioContext) {
	cc := &cargoContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		cc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the following cargo items:$`, cc.theFollowingCargoItems)
	ctx.Step(`^I nest cargo item (\d+) weighing ([0-9.]+) with count (\d+) inside cargo item (\d+)$`, cc.iAddCargoItemWithWeightAndCountTo)

	// When steps
	ctx.Step(`^I compute the total weight of cargo item (\d+)$`, cc.iComputeTheTotalWeightOfCargoItem)
	ctx.Step(`^I create a cargo item weighing (-?[0-9.]+) with count (-?\d+)$`, cc.iCreateACargoItemWithWeightAndCount)

	// Then steps
	ctx.Step(`^the total weight should be ([0-9.]+)$`, cc.theTotalWeightShouldBe)
	ctx.Step(`^cargo creation should fail on "([^"]*)"$`, cc.cargoCreationShouldFailOnField)
}
