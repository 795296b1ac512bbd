package telemetry

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level sets the minimum log level (trace, debug, info, warn, error).
	Level string `yaml:"level" json:"level" validate:"omitempty,oneof=trace debug info warn error fatal disabled"`

	// Format is console or json.
	Format string `yaml:"format" json:"format" validate:"omitempty,oneof=console json"`

	// Output is stdout, stderr or a file path.
	Output string `yaml:"output" json:"output"`

	// NoColor disables ANSI colours in console output.
	NoColor bool `yaml:"no_color" json:"no_color"`
}

// MetricsConfig configures metrics collection.
type MetricsConfig struct {
	// Enabled controls whether metrics are collected.
	Enabled bool `yaml:"enabled" json:"enabled"`

	// ListenAddress is the address of the metrics HTTP endpoint; empty means
	// metrics are collected but not served.
	ListenAddress string `yaml:"listen_address" json:"listen_address" validate:"omitempty,hostname_port"`

	// Path is the HTTP path for metrics.
	Path string `yaml:"path" json:"path" validate:"omitempty,startswith=/"`

	// Namespace prefixes every metric name.
	Namespace string `yaml:"namespace" json:"namespace"`
}

// DefaultLoggingConfig returns console logging at info level on stderr.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:  "info",
		Format: "console",
		Output: "stderr",
	}
}

// DefaultMetricsConfig returns a disabled metrics configuration.
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:   false,
		Path:      "/metrics",
		Namespace: "statespace",
	}
}
