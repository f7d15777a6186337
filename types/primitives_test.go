package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func Test_EUI64_wire_roundtrip(t *testing.T) {
	e := EUI64{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	w := NewWriter()
	w.AppendEUI64(e)
	r := NewReader(w.Bytes())
	got, err := r.DecodeEUI64()
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func Test_EUI64_String_is_most_significant_first(t *testing.T) {
	e := EUI64{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}
	assert.Equal(t, "01:02:03:04:05:06:07:08", e.String())
}

func Test_EUI64_YAML_roundtrip(t *testing.T) {
	type holder struct {
		Addr EUI64 `yaml:"addr"`
	}
	var h holder
	h.Addr = EUI64{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}

	out, err := yaml.Marshal(h)
	require.NoError(t, err)
	assert.Contains(t, string(out), "01:02:03:04:05:06:07:08")

	var h2 holder
	require.NoError(t, yaml.Unmarshal(out, &h2))
	assert.Equal(t, h.Addr, h2.Addr)
}

func Test_EUI64_YAML_rejects_bad_hex(t *testing.T) {
	var e EUI64
	err := yaml.Unmarshal([]byte("nope"), &e)
	assert.Error(t, err)
}

func Test_KeyData_wire_roundtrip(t *testing.T) {
	var k KeyData
	for i := range k {
		k[i] = byte(i)
	}
	w := NewWriter()
	w.AppendKeyData(k)
	r := NewReader(w.Bytes())
	got, err := r.DecodeKeyData()
	require.NoError(t, err)
	assert.Equal(t, k, got)
}

func Test_KeyData_YAML_requires_16_bytes(t *testing.T) {
	var k KeyData
	err := yaml.Unmarshal([]byte("\"0011\""), &k)
	assert.Error(t, err)
}

func Test_Channels_YAML_roundtrip(t *testing.T) {
	type holder struct {
		Channels Channels `yaml:"channels"`
	}
	var h holder
	h.Channels = ChannelsFromList(11, 15, 20)

	out, err := yaml.Marshal(h)
	require.NoError(t, err)

	var h2 holder
	require.NoError(t, yaml.Unmarshal(out, &h2))
	assert.Equal(t, h.Channels, h2.Channels)
}

func Test_Channels_mask(t *testing.T) {
	c := ChannelsFromList(11, 15, 25)
	assert.True(t, c.Contains(11))
	assert.True(t, c.Contains(15))
	assert.False(t, c.Contains(12))
	assert.Equal(t, []int{11, 15, 25}, c.List())
}
