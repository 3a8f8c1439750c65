// Package config defines service configuration and its loading order.
package config

// Config contains process configuration.
type Config struct {
	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// LogLevel controls verbosity: debug logs every request turn.
	LogLevel string `koanf:"log_level"`

	// SpinDurationMS is the animation window for server-side spins.
	SpinDurationMS int `koanf:"spin_duration_ms"`

	// RemoveWinner removes the winning item from the wheel after a
	// server-side spin.
	RemoveWinner bool `koanf:"remove_winner"`

	// SeedDefaults pre-seeds the wheel with four default items at startup.
	SeedDefaults bool `koanf:"seed_defaults"`

	// MetricsEnabled exposes Prometheus metrics on /metrics.
	MetricsEnabled bool `koanf:"metrics_enabled"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Addr:           ":8080",
		LogLevel:       "info",
		SpinDurationMS: 3000,
		RemoveWinner:   true,
		SeedDefaults:   false,
		MetricsEnabled: true,
	}
}
