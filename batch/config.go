package batch

import (
	"fmt"
	"runtime"
)

// Config holds batch runner settings.
type Config struct {
	// PoolSize is the number of concurrent translation workers.
	// Default: number of CPUs
	PoolSize int

	// ReportInterval reports progress every N completed translations.
	// Default: 100
	ReportInterval int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithPoolSize sets the worker pool size.
func WithPoolSize(size int) ConfigOption {
	return func(c *Config) {
		c.PoolSize = size
	}
}

// WithReportInterval sets how often progress is reported.
func WithReportInterval(n int) ConfigOption {
	return func(c *Config) {
		c.ReportInterval = n
	}
}

// DefaultConfig returns a Config sized to the machine.
func DefaultConfig() *Config {
	return &Config{
		PoolSize:       runtime.NumCPU(),
		ReportInterval: 100,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(WithPoolSize(4), WithReportInterval(10))
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.PoolSize < 1 {
		return fmt.Errorf("%w: PoolSize must be at least 1, got %d", ErrInvalidConfig, c.PoolSize)
	}
	if c.ReportInterval < 1 {
		return fmt.Errorf("%w: ReportInterval must be at least 1, got %d", ErrInvalidConfig, c.ReportInterval)
	}
	return nil
}
