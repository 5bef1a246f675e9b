package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeKDL(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".lks.kdl"), []byte(content), 0644))
}

func TestLoadKDL_NoFile(t *testing.T) {
	cfg, err := LoadKDL(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadKDL_FullConfig(t *testing.T) {
	dir := t.TempDir()
	writeKDL(t, dir, `
project {
    root "docs"
    name "manuals"
}
scan {
    pattern "**/*.md"
    max_file_size "2MB"
    binary_check false
}
performance {
    workers 4
    aggregator "channel"
}
exclude "**/drafts/**" "**/archive/**"
`)

	cfg, err := LoadKDL(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, filepath.Join(dir, "docs"), cfg.Project.Root)
	assert.Equal(t, "manuals", cfg.Project.Name)
	assert.Equal(t, "**/*.md", cfg.Scan.Pattern)
	assert.Equal(t, int64(2*1024*1024), cfg.Scan.MaxFileSize)
	assert.False(t, cfg.Scan.BinaryCheck)
	assert.Equal(t, 4, cfg.Performance.Workers)
	assert.Equal(t, AggregatorChannel, cfg.Performance.Aggregator)
	assert.Equal(t, []string{"**/drafts/**", "**/archive/**"}, cfg.Exclude)
}

// A sparse file overrides only what it names; everything else keeps the
// compiled defaults.
func TestLoadKDL_SparseConfig(t *testing.T) {
	dir := t.TempDir()
	writeKDL(t, dir, `
scan {
    pattern "*.log"
}
`)

	cfg, err := LoadKDL(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "*.log", cfg.Scan.Pattern)
	assert.Equal(t, int64(DefaultMaxFileSize), cfg.Scan.MaxFileSize)
	assert.True(t, cfg.Scan.BinaryCheck)
	assert.Equal(t, AggregatorLock, cfg.Performance.Aggregator)
	assert.Equal(t, defaultExclusions(), cfg.Exclude)
}

func TestLoadKDL_DefaultRootIsConfigDir(t *testing.T) {
	dir := t.TempDir()
	writeKDL(t, dir, `scan { pattern "*.txt" }`)

	cfg, err := LoadKDL(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	resolved, err := filepath.EvalSymlinks(cfg.Project.Root)
	require.NoError(t, err)
	expected, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, expected, resolved)
}

func TestLoadKDL_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeKDL(t, dir, `scan { pattern "unterminated`)

	_, err := LoadKDL(dir)
	require.Error(t, err)
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{input: "10MB", want: 10 * 1024 * 1024},
		{input: "500KB", want: 500 * 1024},
		{input: "1GB", want: 1024 * 1024 * 1024},
		{input: "2048B", want: 2048},
		{input: "4096", want: 4096},
		{input: "10mb", want: 10 * 1024 * 1024},
		{input: " 5MB ", want: 5 * 1024 * 1024},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseSize(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMergeConfigs(t *testing.T) {
	base := Default()
	base.Scan.Pattern = "*.md"
	base.Performance.Workers = 8
	base.Exclude = []string{"**/base/**"}

	project := Default()
	project.Scan.Pattern = "*.txt"
	project.Performance.Workers = 0 // unset, should inherit base
	project.Performance.Aggregator = ""
	project.Exclude = []string{"**/project/**"}

	merged := mergeConfigs(base, project)

	assert.Equal(t, "*.txt", merged.Scan.Pattern, "project pattern wins")
	assert.Equal(t, 8, merged.Performance.Workers, "unset workers inherit base")
	assert.Equal(t, AggregatorLock, merged.Performance.Aggregator, "unset aggregator inherits base")
	assert.ElementsMatch(t, []string{"**/base/**", "**/project/**"}, merged.Exclude,
		"exclusions are unioned")
}

func TestResolveWorkers(t *testing.T) {
	assert.Equal(t, 4, Performance{Workers: 4}.ResolveWorkers())
	assert.Greater(t, Performance{Workers: 0}.ResolveWorkers(), 0, "auto-detect uses CPU count")
}
