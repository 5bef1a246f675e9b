package config

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Version: 1,
		Project: Project{Root: "/tmp/project"},
		Scan: Scan{
			Pattern:     "*.txt",
			MaxFileSize: DefaultMaxFileSize,
			BinaryCheck: true,
		},
		Performance: Performance{
			Workers:    4,
			Aggregator: AggregatorLock,
		},
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "empty_root",
			mutate:  func(c *Config) { c.Project.Root = "" },
			wantErr: "project root",
		},
		{
			name:    "empty_pattern",
			mutate:  func(c *Config) { c.Scan.Pattern = "" },
			wantErr: "scan pattern",
		},
		{
			name:    "zero_max_file_size",
			mutate:  func(c *Config) { c.Scan.MaxFileSize = 0 },
			wantErr: "MaxFileSize",
		},
		{
			name:    "negative_max_file_size",
			mutate:  func(c *Config) { c.Scan.MaxFileSize = -1 },
			wantErr: "MaxFileSize",
		},
		{
			name:    "max_file_size_over_cap",
			mutate:  func(c *Config) { c.Scan.MaxFileSize = 101 * 1024 * 1024 },
			wantErr: "100MB",
		},
		{
			name:    "negative_workers",
			mutate:  func(c *Config) { c.Performance.Workers = -1 },
			wantErr: "Workers",
		},
		{
			name:    "absurd_workers",
			mutate:  func(c *Config) { c.Performance.Workers = 16*runtime.NumCPU() + 1 },
			wantErr: "Workers",
		},
		{
			name:    "unknown_aggregator",
			mutate:  func(c *Config) { c.Performance.Aggregator = "actor" },
			wantErr: "Aggregator",
		},
		{
			name:   "zero_workers_is_auto",
			mutate: func(c *Config) { c.Performance.Workers = 0 },
		},
		{
			name:   "channel_aggregator",
			mutate: func(c *Config) { c.Performance.Aggregator = AggregatorChannel },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := NewValidator().ValidateAndSetDefaults(cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateAndSetDefaults_FillsDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.Performance.Aggregator = ""

	require.NoError(t, NewValidator().ValidateAndSetDefaults(cfg))

	assert.Equal(t, AggregatorLock, cfg.Performance.Aggregator)
}
