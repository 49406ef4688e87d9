package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := Load("")
	assert.Equal(t, "workload.yml", cfg.Workload)
	assert.Empty(t, cfg.TraceCSV)
	assert.False(t, cfg.Quiet)
}

func TestLoadConfigMissingFileFallsBack(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Equal(t, "workload.yml", cfg.Workload)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	doc := "workload: w.yml\ntrace_csv: out.csv\nquiet: true\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg := Load(path)
	assert.Equal(t, "w.yml", cfg.Workload)
	assert.Equal(t, "out.csv", cfg.TraceCSV)
	assert.True(t, cfg.Quiet)
}
