// Package config loads and validates the settings a controller needs to
// open a coprocessor and form or rejoin a network.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gozigbee/znp/types"
)

// Validation ranges for the timing knobs below.
const (
	SreqTimeoutMin = 1 * time.Second
	SreqTimeoutMax = 120 * time.Second

	AutoReconnectRetryDelayMin = 1 * time.Second
	AutoReconnectRetryDelayMax = 1 * time.Hour

	ZdoRequestTimeoutMin = 1 * time.Second
	ZdoRequestTimeoutMax = 120 * time.Second
)

// Endpoint is one application endpoint the controller keeps registered,
// reconciled against the coprocessor via AF.Register/AF.Delete.
type Endpoint struct {
	Endpoint       uint8    `yaml:"endpoint"`
	ProfileId      uint16   `yaml:"profile_id"`
	DeviceId       uint16   `yaml:"device_id"`
	DeviceVersion  uint8    `yaml:"device_version"`
	InputClusters  []uint16 `yaml:"input_clusters"`
	OutputClusters []uint16 `yaml:"output_clusters"`
}

// Config defines everything the controller needs to open a coprocessor and
// bring up a network. The zero value for any field requests the default
// applied by Valid.
type Config struct {
	// Device is a serial path, or "auto" to probe candidate ports.
	Device         string        `yaml:"device"`
	DeviceCandidates []string    `yaml:"device_candidates"`
	BaudRate       uint32        `yaml:"baud_rate"`
	SkipBootloader bool          `yaml:"skip_bootloader"`
	TxPower        int8          `yaml:"tx_power"`

	SreqTimeout             time.Duration `yaml:"sreq_timeout"`
	AutoReconnectRetryDelay time.Duration `yaml:"auto_reconnect_retry_delay"`
	ZdoRequestTimeout       time.Duration `yaml:"zdo_request_timeout"`

	AutoForm      bool           `yaml:"auto_form"`
	PanId         types.PanId    `yaml:"pan_id"`
	ExtendedPanId types.EUI64    `yaml:"extended_pan_id"`
	Channels      types.Channels `yaml:"channels"`
	NetworkKey    types.KeyData  `yaml:"network_key"`

	Endpoints []Endpoint `yaml:"endpoints"`
}

// DefaultConfig returns a Config with every timing knob at its recommended
// default and a single channel-11 coordinator network.
func DefaultConfig() Config {
	return Config{
		Device:                  "auto",
		BaudRate:                115200,
		SreqTimeout:             15 * time.Second,
		AutoReconnectRetryDelay: 5 * time.Second,
		ZdoRequestTimeout:       15 * time.Second,
		Channels:                types.ChannelsFromList(11),
	}
}

// Valid applies the default for every unset field and range-checks the
// rest, returning an error naming the first field found invalid.
func (c *Config) Valid() error {
	if c == nil {
		return fmt.Errorf("config: nil config")
	}
	if c.Device == "" {
		c.Device = "auto"
	}
	if c.BaudRate == 0 {
		c.BaudRate = 115200
	}
	if c.SreqTimeout == 0 {
		c.SreqTimeout = 15 * time.Second
	} else if c.SreqTimeout < SreqTimeoutMin || c.SreqTimeout > SreqTimeoutMax {
		return fmt.Errorf("config: sreq_timeout not in [%s, %s]", SreqTimeoutMin, SreqTimeoutMax)
	}
	if c.AutoReconnectRetryDelay == 0 {
		c.AutoReconnectRetryDelay = 5 * time.Second
	} else if c.AutoReconnectRetryDelay < AutoReconnectRetryDelayMin || c.AutoReconnectRetryDelay > AutoReconnectRetryDelayMax {
		return fmt.Errorf("config: auto_reconnect_retry_delay not in [%s, %s]", AutoReconnectRetryDelayMin, AutoReconnectRetryDelayMax)
	}
	if c.ZdoRequestTimeout == 0 {
		c.ZdoRequestTimeout = 15 * time.Second
	} else if c.ZdoRequestTimeout < ZdoRequestTimeoutMin || c.ZdoRequestTimeout > ZdoRequestTimeoutMax {
		return fmt.Errorf("config: zdo_request_timeout not in [%s, %s]", ZdoRequestTimeoutMin, ZdoRequestTimeoutMax)
	}
	if c.Channels == 0 {
		c.Channels = types.ChannelsFromList(11)
	}
	return nil
}

// Load reads and validates a YAML config file at path.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Valid(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
