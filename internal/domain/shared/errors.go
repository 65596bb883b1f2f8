package shared

import (
	"fmt"
	"strings"
)

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Vessel-related errors

type VesselError struct {
	*DomainError
}

func NewVesselError(message string) *VesselError {
	return &VesselError{DomainError: &DomainError{Message: message}}
}

type InvalidVesselDataError struct {
	*VesselError
}

func NewInvalidVesselDataError(message string) *InvalidVesselDataError {
	return &InvalidVesselDataError{VesselError: NewVesselError(message)}
}

// CapacityExceededError is returned when a transfer would push a vessel's
// manifest past its weight capacity. Only raised when enforcement is enabled.
type CapacityExceededError struct {
	*VesselError
	VesselName string
	Required   float64
	Capacity   float64
}

func NewCapacityExceededError(vesselName string, required, capacity float64) *CapacityExceededError {
	return &CapacityExceededError{
		VesselError: NewVesselError(fmt.Sprintf("vessel %s capacity exceeded: need %g, capacity %g", vesselName, required, capacity)),
		VesselName:  vesselName,
		Required:    required,
		Capacity:    capacity,
	}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Operation errors

type OperationError struct {
	*DomainError
	Operation string
}

// ParseError reports a command that matched a known opcode but is structurally malformed
type ParseError struct {
	*OperationError
	Reason string
}

func NewParseError(operation, reason string) *ParseError {
	return &ParseError{
		OperationError: &OperationError{
			DomainError: &DomainError{Message: fmt.Sprintf("malformed operation %q: %s", operation, reason)},
			Operation:   operation,
		},
		Reason: reason,
	}
}

// ResolutionError reports operand names that are not present in the registries
type ResolutionError struct {
	*OperationError
	Missing []string
}

func NewResolutionError(operation string, missing []string) *ResolutionError {
	return &ResolutionError{
		OperationError: &OperationError{
			DomainError: &DomainError{Message: fmt.Sprintf(
				"invalid vessel, source port, or destination port in operation %q (unresolved: %s)",
				operation, strings.Join(missing, ", "),
			)},
			Operation: operation,
		},
		Missing: missing,
	}
}
