package config

// EngineConfig holds operation engine behavior switches
type EngineConfig struct {
	// Accept "UNLOAD <vessel> TO <port>"; when false UNLOAD lines are ignored
	EnableUnload bool `mapstructure:"enable_unload"`

	// Reject loads that would exceed a vessel's weight capacity
	EnforceCapacity bool `mapstructure:"enforce_capacity"`

	// Replay pacing; 0 means unlimited
	OperationsPerSecond float64 `mapstructure:"operations_per_second" validate:"min=0"`
}
