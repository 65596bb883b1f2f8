package logistics

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/andrescamacho/portlogistics-go/internal/adapters/metrics"
	"github.com/andrescamacho/portlogistics-go/internal/application/common"
	"github.com/andrescamacho/portlogistics-go/internal/domain/navigation"
	"github.com/andrescamacho/portlogistics-go/internal/domain/operation"
	"github.com/andrescamacho/portlogistics-go/internal/domain/port"
	"github.com/andrescamacho/portlogistics-go/internal/domain/shared"
)

// EngineOptions toggles behavior beyond the single-opcode default
type EngineOptions struct {
	// EnableUnload accepts "UNLOAD <vessel> TO <port>". Off by default.
	EnableUnload bool

	// EnforceCapacity rejects a LOAD whose source inventory would push the
	// vessel past its weight capacity. Off by default: capacity is declared
	// on every vessel but not enforced.
	EnforceCapacity bool
}

// OperationEngine parses movement commands, resolves the named vessel and
// ports against its registries and runs the full-transfer sequence.
//
// Operations run one at a time in input order. Each is independent: a
// failure is reported and the next operation still runs. Resolution always
// completes before any transfer, so a failed operation never mutates state.
//
// The engine is not safe for concurrent use.
type OperationEngine struct {
	ports   port.Registry
	vessels navigation.VesselRegistry
	parser  *operation.Parser
	opts    EngineOptions
}

// NewOperationEngine creates an engine over the given registries
func NewOperationEngine(ports port.Registry, vessels navigation.VesselRegistry, opts EngineOptions) *OperationEngine {
	return &OperationEngine{
		ports:   ports,
		vessels: vessels,
		parser:  operation.NewParser(operation.ParserOptions{EnableUnload: opts.EnableUnload}),
		opts:    opts,
	}
}

// AddPort registers a port. Duplicate names are accepted; the first one wins lookups.
func (e *OperationEngine) AddPort(p *port.Port) {
	e.ports.Add(p)
}

// AddVessel registers a vessel. Duplicate names are accepted; the first one wins lookups.
func (e *OperationEngine) AddVessel(v *navigation.Vessel) {
	e.vessels.Add(v)
}

// Ports returns the registered ports in registration order
func (e *OperationEngine) Ports() []*port.Port {
	return e.ports.All()
}

// Vessels returns the registered vessels in registration order
func (e *OperationEngine) Vessels() []*navigation.Vessel {
	return e.vessels.All()
}

// ProcessOperations executes every operation in order and reports each outcome
func (e *OperationEngine) ProcessOperations(ctx context.Context, operations []string) *RunReport {
	report, _ := e.process(ctx, operations, nil)
	return report
}

// process runs operations in order. A non-nil beforeEach is called ahead of
// every operation; its error stops the run and is returned with the partial report.
func (e *OperationEngine) process(ctx context.Context, operations []string, beforeEach func(ctx context.Context, index int) error) (*RunReport, error) {
	report := &RunReport{Results: make([]OperationResult, 0, len(operations))}
	for i, raw := range operations {
		if beforeEach != nil {
			if err := beforeEach(ctx, i); err != nil {
				return report, err
			}
		}
		result := e.ExecuteOperation(ctx, raw)
		result.Index = i
		report.add(result)
	}
	return report, nil
}

// ExecuteOperation parses, resolves and dispatches a single operation line
func (e *OperationEngine) ExecuteOperation(ctx context.Context, raw string) OperationResult {
	logger := common.LoggerFromContext(ctx)
	result := OperationResult{Operation: raw}

	cmd, err := e.parser.Parse(raw)
	switch {
	case errors.Is(err, operation.ErrUnrecognized):
		result.Status = StatusIgnored
	case err != nil:
		logger.Log(common.LevelError, fmt.Sprintf("Error: %v", err), map[string]interface{}{
			"operation": raw,
		})
		result.Status = StatusFailed
		result.Err = err
	default:
		result.Command = cmd
		e.dispatch(ctx, cmd, &result)
	}

	metrics.RecordOperation(result.Opcode(), strings.ToLower(string(result.Status)))
	if result.Status == StatusSucceeded {
		metrics.RecordCargoMoved(result.ItemsDelivered, result.WeightDelivered)
	}

	return result
}

func (e *OperationEngine) dispatch(ctx context.Context, cmd *operation.Command, result *OperationResult) {
	var err error
	switch cmd.Opcode {
	case operation.OpcodeLoad:
		err = e.executeLoad(ctx, cmd, result)
	case operation.OpcodeUnload:
		err = e.executeUnload(ctx, cmd, result)
	default:
		err = shared.NewParseError(cmd.Raw, fmt.Sprintf("no handler for opcode %s", cmd.Opcode))
	}

	if err != nil {
		common.LoggerFromContext(ctx).Log(common.LevelError, fmt.Sprintf("Error: %v", err), map[string]interface{}{
			"operation": cmd.Raw,
		})
		result.Status = StatusFailed
		result.Err = err
		return
	}
	result.Status = StatusSucceeded
}

// resolved holds the entities an operation refers to
type resolved struct {
	vessel      *navigation.Vessel
	source      *port.Port
	destination *port.Port
}

// resolve looks up every operand and reports all missing names at once
func (e *OperationEngine) resolve(cmd *operation.Command) (*resolved, error) {
	var missing []string
	r := &resolved{}

	vessel, ok := e.vessels.FindByName(cmd.Vessel)
	if !ok {
		missing = append(missing, "vessel "+cmd.Vessel)
	}
	r.vessel = vessel

	if cmd.HasSource() {
		source, ok := e.ports.FindByName(cmd.Source)
		if !ok {
			missing = append(missing, "source port "+cmd.Source)
		}
		r.source = source
	}

	destination, ok := e.ports.FindByName(cmd.Destination)
	if !ok {
		missing = append(missing, "destination port "+cmd.Destination)
	}
	r.destination = destination

	if len(missing) > 0 {
		return nil, shared.NewResolutionError(cmd.Raw, missing)
	}
	return r, nil
}

// executeLoad runs source.UnloadToVessel -> vessel.Depart -> destination.LoadFromVessel
func (e *OperationEngine) executeLoad(ctx context.Context, cmd *operation.Command, result *OperationResult) error {
	r, err := e.resolve(cmd)
	if err != nil {
		return err
	}

	if e.opts.EnforceCapacity {
		incoming := r.source.InventoryWeight()
		if !r.vessel.CanCarry(incoming) {
			return shared.NewCapacityExceededError(r.vessel.Name(), r.vessel.ManifestWeight()+incoming, r.vessel.WeightCapacity())
		}
	}

	logger := common.LoggerFromContext(ctx)
	logger.Log(common.LevelInfo, fmt.Sprintf("Moving %s from %s to %s", r.vessel.Name(), r.source.Name(), r.destination.Name()), map[string]interface{}{
		"vessel":      r.vessel.Name(),
		"source":      r.source.Name(),
		"destination": r.destination.Name(),
	})

	result.ItemsLoaded = r.source.UnloadToVessel(r.vessel)
	e.depart(ctx, r, result)
	result.WeightDelivered = r.vessel.ManifestWeight()
	result.ItemsDelivered = r.destination.LoadFromVessel(r.vessel)

	return nil
}

// executeUnload runs vessel.Depart -> destination.LoadFromVessel
func (e *OperationEngine) executeUnload(ctx context.Context, cmd *operation.Command, result *OperationResult) error {
	r, err := e.resolve(cmd)
	if err != nil {
		return err
	}

	e.depart(ctx, r, result)
	result.WeightDelivered = r.vessel.ManifestWeight()
	result.ItemsDelivered = r.destination.LoadFromVessel(r.vessel)

	return nil
}

func (e *OperationEngine) depart(ctx context.Context, r *resolved, result *OperationResult) {
	event := r.vessel.Depart(r.destination)
	result.Departure = &event

	common.LoggerFromContext(ctx).Log(common.LevelInfo, fmt.Sprintf("%s is sailing to %s", event.VesselName, event.Destination), map[string]interface{}{
		"vessel":       event.VesselName,
		"vessel_class": string(event.VesselClass),
		"destination":  event.Destination,
		"cargo_items":  len(r.vessel.Manifest()),
	})
}
