package logistics

import (
	"github.com/andrescamacho/portlogistics-go/internal/domain/navigation"
	"github.com/andrescamacho/portlogistics-go/internal/domain/operation"
)

// OperationStatus is the outcome of processing one operation line
type OperationStatus string

const (
	StatusSucceeded OperationStatus = "SUCCEEDED"
	StatusFailed    OperationStatus = "FAILED"
	StatusIgnored   OperationStatus = "IGNORED"
)

// OperationResult describes what happened to one operation line
type OperationResult struct {
	Index     int
	Operation string
	Command   *operation.Command // nil when the line was ignored or malformed
	Status    OperationStatus
	Err       error

	ItemsLoaded     int     // items moved from the source port onto the vessel
	ItemsDelivered  int     // items moved from the vessel into the destination port
	WeightDelivered float64 // recursive weight of the delivered items
	Departure       *navigation.DepartedEvent
}

// Opcode returns the parsed opcode, or "" when the line never parsed
func (r OperationResult) Opcode() string {
	if r.Command == nil {
		return ""
	}
	return string(r.Command.Opcode)
}

// RunReport collects the results of a sequence of operations, in input order
type RunReport struct {
	Results   []OperationResult
	Succeeded int
	Failed    int
	Ignored   int
}

func (r *RunReport) add(result OperationResult) {
	r.Results = append(r.Results, result)
	switch result.Status {
	case StatusSucceeded:
		r.Succeeded++
	case StatusFailed:
		r.Failed++
	case StatusIgnored:
		r.Ignored++
	}
}

// Errors returns the errors of every failed operation
func (r *RunReport) Errors() []error {
	var errs []error
	for _, result := range r.Results {
		if result.Err != nil {
			errs = append(errs, result.Err)
		}
	}
	return errs
}
