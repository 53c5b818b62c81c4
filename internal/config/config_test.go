package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-TriageService/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_SeedAndDefaults(t *testing.T) {
	path := writeConfig(t, `
[[equipment]]
id = 1
name = "MRI-1"
status = "AVAILABLE"
service_duration_minutes = 60

[[equipment]]
id = 3
name = "Ventilator-1"
status = "MAINTENANCE"
service_duration_minutes = 1440
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Dispatch.ReleaseDelaySeconds)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)

	seed := cfg.SeedEquipment()
	require.Len(t, seed, 2)
	assert.Equal(t, domain.EquipmentAvailable, seed[0].Status)
	assert.Equal(t, domain.EquipmentMaintenance, seed[1].Status)
	assert.Equal(t, 1440, seed[1].ServiceDurationMinutes)
}

func TestLoad_RejectsEmptyEquipment(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9000
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_RejectsDuplicateIDs(t *testing.T) {
	path := writeConfig(t, `
[[equipment]]
id = 1
name = "MRI-1"
status = "AVAILABLE"

[[equipment]]
id = 1
name = "MRI-2"
status = "AVAILABLE"
`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_RejectsUnknownStatus(t *testing.T) {
	path := writeConfig(t, `
[[equipment]]
id = 1
name = "MRI-1"
status = "BROKEN"
`)

	_, err := Load(path)
	require.Error(t, err)
}
