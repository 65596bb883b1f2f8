package steps

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/portlogistics-go/internal/adapters/memory"
	"github.com/andrescamacho/portlogistics-go/internal/adapters/persistence"
	"github.com/andrescamacho/portlogistics-go/internal/application/common"
	"github.com/andrescamacho/portlogistics-go/internal/application/logistics"
	"github.com/andrescamacho/portlogistics-go/internal/domain/navigation"
	"github.com/andrescamacho/portlogistics-go/internal/domain/port"
	"github.com/andrescamacho/portlogistics-go/internal/domain/shared"
	"github.com/andrescamacho/portlogistics-go/test/helpers"
)

// notificationRecorder captures every logged message in order
type notificationRecorder struct {
	messages []string
}

func (r *notificationRecorder) Log(level, message string, metadata map[string]interface{}) {
	r.messages = append(r.messages, message)
}

type logisticsContext struct {
	ports    *memory.PortRegistry
	vessels  *memory.VesselRegistry
	opts     logistics.EngineOptions
	cargo    map[int]*shared.CargoItem
	recorder *notificationRecorder
	report   *logistics.RunReport

	// run journal
	journal *persistence.GormRunRepository
	logRepo *persistence.GormOperationLogRepository
	runID   string
}

func (lc *logisticsContext) reset() {
	lc.ports = memory.NewPortRegistry()
	lc.vessels = memory.NewVesselRegistry()
	lc.opts = logistics.EngineOptions{}
	lc.cargo = make(map[int]*shared.CargoItem)
	lc.recorder = &notificationRecorder{}
	lc.report = nil
	lc.journal = nil
	lc.logRepo = nil
	lc.runID = ""
}

func (lc *logisticsContext) engine() *logistics.OperationEngine {
	return logistics.NewOperationEngine(lc.ports, lc.vessels, lc.opts)
}

func (lc *logisticsContext) findPort(name string) (*port.Port, error) {
	p, ok := lc.ports.FindByName(name)
	if !ok {
		return nil, fmt.Errorf("no port named %s", name)
	}
	return p, nil
}

func (lc *logisticsContext) findVessel(name string) (*navigation.Vessel, error) {
	v, ok := lc.vessels.FindByName(name)
	if !ok {
		return nil, fmt.Errorf("no vessel named %s", name)
	}
	return v, nil
}

func (lc *logisticsContext) result(index int) (*logistics.OperationResult, error) {
	if lc.report == nil {
		return nil, fmt.Errorf("no operations processed")
	}
	if index < 1 || index > len(lc.report.Results) {
		return nil, fmt.Errorf("operation %d out of range (have %d)", index, len(lc.report.Results))
	}
	return &lc.report.Results[index-1], nil
}

// docStringLines keeps every line, blank ones included
func docStringLines(doc *godog.DocString) []string {
	if doc == nil || doc.Content == "" {
		return []string{}
	}
	return strings.Split(doc.Content, "\n")
}

// Given steps

func (lc *logisticsContext) aPort(name string) error {
	p, err := port.NewPort(name, "")
	if err != nil {
		return err
	}
	lc.ports.Add(p)
	return nil
}

func (lc *logisticsContext) aPortHoldingCargo(name string, table *godog.Table) error {
	p, err := port.NewPort(name, "")
	if err != nil {
		return err
	}
	items, err := buildCargo(table, lc.cargo)
	if err != nil {
		return err
	}
	for _, item := range items {
		p.Store(item)
	}
	lc.ports.Add(p)
	return nil
}

func (lc *logisticsContext) aVesselWithWeightCapacity(class, name string, capacity float64) error {
	vesselClass, err := navigation.ParseVesselClass(class)
	if err != nil {
		return err
	}
	fuel, err := shared.NewFuel(100, 100)
	if err != nil {
		return err
	}
	v, err := navigation.NewVessel(name, vesselClass, fuel, capacity, 100, navigation.Capabilities{})
	if err != nil {
		return err
	}
	lc.vessels.Add(v)
	return nil
}

func (lc *logisticsContext) vesselAlreadyCarriesCargo(name string, table *godog.Table) error {
	v, err := lc.findVessel(name)
	if err != nil {
		return err
	}
	items, err := buildCargo(table, lc.cargo)
	if err != nil {
		return err
	}
	for _, item := range items {
		v.AddCargo(item)
	}
	return nil
}

func (lc *logisticsContext) unloadOperationsAreEnabled() error {
	lc.opts.EnableUnload = true
	return nil
}

func (lc *logisticsContext) capacityEnforcementIsEnabled() error {
	lc.opts.EnforceCapacity = true
	return nil
}

func (lc *logisticsContext) aRunJournalBackedByTheSharedDatabase() error {
	if helpers.SharedTestDB == nil {
		return fmt.Errorf("shared test database not initialized")
	}
	if err := helpers.TruncateAllTables(); err != nil {
		return err
	}
	lc.journal = persistence.NewGormRunRepository(helpers.SharedTestDB)
	lc.logRepo = persistence.NewGormOperationLogRepository(helpers.SharedTestDB, nil)
	return nil
}

// When steps

func (lc *logisticsContext) iProcessTheOperations(doc *godog.DocString) error {
	ctx := common.WithLogger(context.Background(), lc.recorder)
	lc.report = lc.engine().ProcessOperations(ctx, docStringLines(doc))
	return nil
}

func (lc *logisticsContext) iReplayTheOperationsAsRun(runID string, doc *godog.DocString) error {
	lc.runID = runID

	var logger common.OperationLogger = lc.recorder
	var journal logistics.RunJournal
	if lc.journal != nil {
		journal = lc.journal
		logger = common.MultiLogger{lc.recorder, persistence.NewRunLogger(context.Background(), lc.logRepo, runID)}
	}

	handler := logistics.NewProcessOperationsHandler(lc.engine(), journal, nil, nil)
	ctx := common.WithLogger(context.Background(), logger)

	resp, err := handler.Handle(ctx, &logistics.ProcessOperationsCommand{
		Operations: docStringLines(doc),
		RunID:      runID,
	})
	if err != nil {
		return err
	}

	response, ok := resp.(*logistics.ProcessOperationsResponse)
	if !ok {
		return fmt.Errorf("unexpected response type %T", resp)
	}
	lc.report = response.Report
	return nil
}

// Then steps

func (lc *logisticsContext) portShouldHoldItemsWeighing(name string, count int, weight float64) error {
	p, err := lc.findPort(name)
	if err != nil {
		return err
	}
	if got := len(p.Inventory()); got != count {
		return fmt.Errorf("expected port %s to hold %d items, got %d", name, count, got)
	}
	if got := p.InventoryWeight(); math.Abs(got-weight) > 1e-9 {
		return fmt.Errorf("expected port %s inventory to weigh %g, got %g", name, weight, got)
	}
	return nil
}

func (lc *logisticsContext) portShouldBeEmpty(name string) error {
	p, err := lc.findPort(name)
	if err != nil {
		return err
	}
	if got := len(p.Inventory()); got != 0 {
		return fmt.Errorf("expected port %s to be empty, it holds %d items", name, got)
	}
	return nil
}

func (lc *logisticsContext) vesselShouldCarryItems(name string, count int) error {
	v, err := lc.findVessel(name)
	if err != nil {
		return err
	}
	if got := len(v.Manifest()); got != count {
		return fmt.Errorf("expected vessel %s to carry %d items, got %d", name, count, got)
	}
	return nil
}

func (lc *logisticsContext) cargoItemShouldBeAtPort(id int, name string) error {
	item, ok := lc.cargo[id]
	if !ok {
		return fmt.Errorf("no cargo item %d", id)
	}
	p, err := lc.findPort(name)
	if err != nil {
		return err
	}
	for _, held := range p.Inventory() {
		if held == item {
			return nil
		}
	}
	return fmt.Errorf("cargo item %d is not held at port %s", id, name)
}

func (lc *logisticsContext) theNotificationsShouldBe(doc *godog.DocString) error {
	expected := docStringLines(doc)
	got := lc.recorder.messages
	if len(got) != len(expected) {
		return fmt.Errorf("expected %d notifications, got %d:\n%s", len(expected), len(got), strings.Join(got, "\n"))
	}
	for i := range expected {
		if got[i] != expected[i] {
			return fmt.Errorf("notification %d: expected %q, got %q", i+1, expected[i], got[i])
		}
	}
	return nil
}

func (lc *logisticsContext) thereShouldBeNoNotifications() error {
	if len(lc.recorder.messages) != 0 {
		return fmt.Errorf("expected no notifications, got:\n%s", strings.Join(lc.recorder.messages, "\n"))
	}
	return nil
}

func (lc *logisticsContext) operationShouldBe(index int, status string) error {
	r, err := lc.result(index)
	if err != nil {
		return err
	}
	if string(r.Status) != status {
		return fmt.Errorf("expected operation %d to be %s, got %s (err: %v)", index, status, r.Status, r.Err)
	}
	return nil
}

func (lc *logisticsContext) operationShouldFailWith(index int, fragment string) error {
	r, err := lc.result(index)
	if err != nil {
		return err
	}
	if r.Err == nil {
		return fmt.Errorf("expected operation %d to fail with %q, but it did not fail", index, fragment)
	}
	if !strings.Contains(r.Err.Error(), fragment) {
		return fmt.Errorf("expected operation %d error to contain %q, got %q", index, fragment, r.Err.Error())
	}
	return nil
}

func (lc *logisticsContext) theRunShouldReport(succeeded, failed, ignored int) error {
	if lc.report == nil {
		return fmt.Errorf("no operations processed")
	}
	if lc.report.Succeeded != succeeded || lc.report.Failed != failed || lc.report.Ignored != ignored {
		return fmt.Errorf("expected %d succeeded, %d failed, %d ignored; got %d, %d, %d",
			succeeded, failed, ignored, lc.report.Succeeded, lc.report.Failed, lc.report.Ignored)
	}
	return nil
}

func InitializeLogisticsScenario(ctx *godog.ScenarioContext) {
	lc := &logisticsContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		lc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a port "([^"]*)"$`, lc.aPort)
	ctx.Step(`^a port "([^"]*)" holding cargo:$`, lc.aPortHoldingCargo)
	ctx.Step(`^a "([^"]*)" vessel "([^"]*)" with weight capacity ([0-9.]+)$`, lc.aVesselWithWeightCapacity)
	ctx.Step(`^vessel "([^"]*)" already carries cargo:$`, lc.vesselAlreadyCarriesCargo)
	ctx.Step(`^UNLOAD operations are enabled$`, lc.unloadOperationsAreEnabled)
	ctx.Step(`^capacity enforcement is enabled$`, lc.capacityEnforcementIsEnabled)
	ctx.Step(`^a run journal backed by the shared database$`, lc.aRunJournalBackedByTheSharedDatabase)

	// When steps
	ctx.Step(`^I process the operations:$`, lc.iProcessTheOperations)
	ctx.Step(`^I replay the operations as run "([^"]*)":$`, lc.iReplayTheOperationsAsRun)

	// Then steps
	ctx.Step(`^port "([^"]*)" should hold (\d+) items? weighing ([0-9.]+)$`, lc.portShouldHoldItemsWeighing)
	ctx.Step(`^port "([^"]*)" should be empty$`, lc.portShouldBeEmpty)
	ctx.Step(`^vessel "([^"]*)" should carry (\d+) items?$`, lc.vesselShouldCarryItems)
	ctx.Step(`^cargo item (\d+) should be at port "([^"]*)"$`, lc.cargoItemShouldBeAtPort)
	ctx.Step(`^the notifications should be:$`, lc.theNotificationsShouldBe)
	ctx.Step(`^there should be no notifications$`, lc.thereShouldBeNoNotifications)
	ctx.Step(`^operation (\d+) should be (SUCCEEDED|FAILED|IGNORED)$`, lc.operationShouldBe)
	ctx.Step(`^operation (\d+) should fail with "([^"]*)"$`, lc.operationShouldFailWith)
	ctx.Step(`^the run should report (\d+) succeeded, (\d+) failed and (\d+) ignored$`, lc.theRunShouldReport)

	// Run journal steps
	ctx.Step(`^the journal should hold run "([^"]*)" with (\d+) operations$`, lc.theJournalShouldHoldRunWithOperations)
	ctx.Step(`^the persisted log of run "([^"]*)" should contain "([^"]*)"$`, lc.thePersistedLogOfRunShouldContain)
}
