package config

import (
	"errors"
	"fmt"
	"runtime"

	lkserrors "github.com/standardbeagle/lks/internal/errors"
)

// Validator validates configuration and sets smart defaults
type Validator struct{}

// NewValidator creates a new configuration validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAndSetDefaults validates configuration and applies smart defaults.
// Returns an error if validation fails.
func (v *Validator) ValidateAndSetDefaults(cfg *Config) error {
	if err := v.validateProjectConfig(&cfg.Project); err != nil {
		return lkserrors.NewConfigError("project", cfg.Project.Root, err)
	}

	if err := v.validateScanConfig(&cfg.Scan); err != nil {
		return lkserrors.NewConfigError("scan", cfg.Scan.Pattern, err)
	}

	if err := v.validatePerformanceConfig(&cfg.Performance); err != nil {
		return lkserrors.NewConfigError("performance", cfg.Performance.Aggregator, err)
	}

	v.setSmartDefaults(cfg)
	return nil
}

// validateProjectConfig validates project configuration
func (v *Validator) validateProjectConfig(project *Project) error {
	if project.Root == "" {
		return errors.New("project root cannot be empty")
	}
	return nil
}

// validateScanConfig validates scan configuration
func (v *Validator) validateScanConfig(scan *Scan) error {
	if scan.Pattern == "" {
		return errors.New("scan pattern cannot be empty")
	}

	if scan.MaxFileSize <= 0 {
		return fmt.Errorf("MaxFileSize must be positive, got %d", scan.MaxFileSize)
	}

	if scan.MaxFileSize > 100*1024*1024 {
		return fmt.Errorf("MaxFileSize should not exceed 100MB, got %d", scan.MaxFileSize)
	}

	return nil
}

// validatePerformanceConfig validates performance configuration
func (v *Validator) validatePerformanceConfig(perf *Performance) error {
	if perf.Workers < 0 {
		return fmt.Errorf("Workers must be non-negative, got %d", perf.Workers)
	}

	if perf.Workers > 16*runtime.NumCPU() {
		return fmt.Errorf("Workers should not exceed 16x CPU count (%d), got %d",
			16*runtime.NumCPU(), perf.Workers)
	}

	switch perf.Aggregator {
	case "", AggregatorLock, AggregatorChannel:
	default:
		return fmt.Errorf("Aggregator must be %q or %q, got %q",
			AggregatorLock, AggregatorChannel, perf.Aggregator)
	}

	return nil
}

// setSmartDefaults fills in zero values that validation allows through
func (v *Validator) setSmartDefaults(cfg *Config) {
	if cfg.Performance.Aggregator == "" {
		cfg.Performance.Aggregator = AggregatorLock
	}
	if cfg.Scan.Pattern == "" {
		cfg.Scan.Pattern = DefaultPattern
	}
}
