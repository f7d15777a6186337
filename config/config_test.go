package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gozigbee/znp/types"
)

func Test_DefaultConfig_is_valid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Valid())
}

func Test_Valid_fills_in_zero_fields(t *testing.T) {
	var cfg Config
	require.NoError(t, cfg.Valid())
	assert.Equal(t, "auto", cfg.Device)
	assert.Equal(t, uint32(115200), cfg.BaudRate)
	assert.Equal(t, 15*time.Second, cfg.SreqTimeout)
	assert.Equal(t, 5*time.Second, cfg.AutoReconnectRetryDelay)
	assert.Equal(t, 15*time.Second, cfg.ZdoRequestTimeout)
	assert.True(t, cfg.Channels.Contains(11))
}

func Test_Valid_rejects_out_of_range_timeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SreqTimeout = 200 * time.Second
	assert.Error(t, cfg.Valid())
}

func Test_Load_parses_yaml_and_applies_defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	const doc = `
device: /dev/ttyUSB0
pan_id: 0
extended_pan_id: "0011223344556677"
network_key: "000102030405060708090a0b0c0d0e0f"
channels: [11, 15, 20]
endpoints:
  - endpoint: 1
    profile_id: 260
    device_id: 0
    device_version: 0
    input_clusters: [0, 3]
    output_clusters: [6]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB0", cfg.Device)
	assert.Equal(t, 15*time.Second, cfg.SreqTimeout) // default applied
	assert.True(t, cfg.Channels.Contains(11))
	assert.True(t, cfg.Channels.Contains(20))
	require.Len(t, cfg.Endpoints, 1)
	assert.Equal(t, uint8(1), cfg.Endpoints[0].Endpoint)
	assert.Equal(t, types.EUI64{0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11, 0x00}, cfg.ExtendedPanId)
}

func Test_Load_missing_file(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
