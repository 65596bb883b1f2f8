package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "portlogistics"
	// Subsystem for engine metrics
	subsystem = "engine"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalOperationCollector is set by SetGlobalOperationCollector when metrics are enabled
	globalOperationCollector OperationMetricsRecorder
)

// OperationMetricsRecorder records the outcome of executed operations.
// Application code calls the package-level Record* functions, which are no-ops
// until a recorder is installed.
type OperationMetricsRecorder interface {
	RecordOperation(opcode string, status string)
	RecordCargoMoved(items int, weight float64)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// ResetRegistry drops the registry and the global recorder
func ResetRegistry() {
	Registry = nil
	globalOperationCollector = nil
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalOperationCollector sets the global operation metrics collector
func SetGlobalOperationCollector(collector OperationMetricsRecorder) {
	globalOperationCollector = collector
}

// RecordOperation records one processed operation globally
func RecordOperation(opcode string, status string) {
	if globalOperationCollector != nil {
		globalOperationCollector.RecordOperation(opcode, status)
	}
}

// RecordCargoMoved records cargo items delivered to a destination port globally
func RecordCargoMoved(items int, weight float64) {
	if globalOperationCollector != nil {
		globalOperationCollector.RecordCargoMoved(items, weight)
	}
}
