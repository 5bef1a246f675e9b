package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Default scan limits
const (
	DefaultMaxFileSize = 10 * 1024 * 1024 // 10MB per file
	DefaultPattern     = "*.txt"
)

// Aggregation modes for merging worker results
const (
	AggregatorLock    = "lock"    // shared map guarded by a mutex
	AggregatorChannel = "channel" // handoff channel with a single consumer
)

type Config struct {
	Version     int
	Project     Project
	Scan        Scan
	Performance Performance
	Exclude     []string
}

type Project struct {
	Root string
	Name string
}

type Scan struct {
	Pattern     string
	MaxFileSize int64
	BinaryCheck bool // skip files that look binary (extension or magic number)
}

type Performance struct {
	Workers    int    // 0 = auto-detect (NumCPU)
	Aggregator string // "lock" or "channel"
}

// ResolveWorkers returns the effective worker count, applying the
// platform-derived default when Workers is unset.
func (p Performance) ResolveWorkers() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return runtime.NumCPU()
}

// Load loads configuration for the given scan root: compiled defaults,
// overlaid with ~/.lks.kdl, overlaid with <root>/.lks.kdl. The project
// file wins on conflicts; exclusion lists are unioned.
func Load(root string) (*Config, error) {
	var baseConfig *Config
	if homeDir, err := os.UserHomeDir(); err == nil {
		if globalCfg, err := LoadKDL(homeDir); err == nil && globalCfg != nil {
			baseConfig = globalCfg
		}
	}

	projectConfig, err := LoadKDL(root)
	if err != nil {
		return nil, err
	}

	switch {
	case baseConfig != nil && projectConfig != nil:
		return mergeConfigs(baseConfig, projectConfig), nil
	case projectConfig != nil:
		return projectConfig, nil
	case baseConfig != nil:
		baseConfig.Project.Root = root
		return baseConfig, nil
	}

	cfg := Default()
	if root != "" {
		if abs, err := filepath.Abs(root); err == nil {
			cfg.Project.Root = abs
		} else {
			cfg.Project.Root = root
		}
	}
	return cfg, nil
}

// Default returns the compiled-in configuration.
func Default() *Config {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	return &Config{
		Version: 1,
		Project: Project{
			Root: cwd,
		},
		Scan: Scan{
			Pattern:     DefaultPattern,
			MaxFileSize: DefaultMaxFileSize,
			BinaryCheck: true,
		},
		Performance: Performance{
			Workers:    0, // auto-detect
			Aggregator: AggregatorLock,
		},
		Exclude: defaultExclusions(),
	}
}

// defaultExclusions lists paths that are never worth scanning for text:
// VCS metadata, hidden directories, and dependency trees.
func defaultExclusions() []string {
	return []string{
		"**/.git/**",
		"**/.*/**",
		"**/node_modules/**",
		"**/vendor/**",
		"**/__pycache__/**",
	}
}

// mergeConfigs merges a base config with a project config.
// Project config takes precedence, but base exclusions are preserved.
func mergeConfigs(base, project *Config) *Config {
	merged := *project

	if len(base.Exclude) > 0 {
		excludeMap := make(map[string]bool)
		for _, pattern := range base.Exclude {
			excludeMap[pattern] = true
		}
		for _, pattern := range project.Exclude {
			excludeMap[pattern] = true
		}

		merged.Exclude = make([]string, 0, len(excludeMap))
		for pattern := range excludeMap {
			merged.Exclude = append(merged.Exclude, pattern)
		}
	}

	if project.Scan.Pattern == "" {
		merged.Scan.Pattern = base.Scan.Pattern
	}
	if project.Performance.Workers == 0 {
		merged.Performance.Workers = base.Performance.Workers
	}
	if project.Performance.Aggregator == "" {
		merged.Performance.Aggregator = base.Performance.Aggregator
	}

	return &merged
}
