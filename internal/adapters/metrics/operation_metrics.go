package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// OperationMetricsCollector handles metrics for replayed movement operations
type OperationMetricsCollector struct {
	operationsTotal *prometheus.CounterVec
	itemsMoved      prometheus.Counter
	weightMoved     prometheus.Counter
}

// NewOperationMetricsCollector creates a new operation metrics collector
func NewOperationMetricsCollector() *OperationMetricsCollector {
	return &OperationMetricsCollector{
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "operations_total",
				Help:      "Total number of operations processed by opcode and status",
			},
			[]string{"opcode", "status"},
		),
		itemsMoved: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cargo_items_moved_total",
				Help:      "Total number of top-level cargo items delivered to destination ports",
			},
		),
		weightMoved: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cargo_weight_moved_total",
				Help:      "Total recursive weight of cargo delivered to destination ports",
			},
		),
	}
}

// Register registers all operation metrics with the Prometheus registry
func (c *OperationMetricsCollector) Register() error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	metrics := []prometheus.Collector{
		c.operationsTotal,
		c.itemsMoved,
		c.weightMoved,
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// RecordOperation increments the operation counter
func (c *OperationMetricsCollector) RecordOperation(opcode string, status string) {
	if opcode == "" {
		opcode = "NONE"
	}
	c.operationsTotal.WithLabelValues(opcode, status).Inc()
}

// RecordCargoMoved adds delivered cargo to the running totals
func (c *OperationMetricsCollector) RecordCargoMoved(items int, weight float64) {
	c.itemsMoved.Add(float64(items))
	c.weightMoved.Add(weight)
}
