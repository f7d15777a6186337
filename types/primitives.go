package types

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// NWK is a 16-bit network (short) address.
type NWK uint16

func (n NWK) String() string { return fmt.Sprintf("0x%04x", uint16(n)) }

// PanId is a 16-bit Zigbee PAN identifier.
type PanId uint16

func (p PanId) String() string { return fmt.Sprintf("0x%04x", uint16(p)) }

// EUI64 is an 8-byte IEEE address, serialized little-endian on the wire
// (byte 0 is the least significant byte) and printed most-significant-first
// the way every Zigbee tool prints it.
type EUI64 [8]byte

// ParseEUI64 reads 8 little-endian bytes into an EUI64.
func ParseEUI64(b []byte) (EUI64, error) {
	var e EUI64
	if len(b) < 8 {
		return e, ErrShortBuffer
	}
	copy(e[:], b[:8])
	return e, nil
}

func (e EUI64) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x:%02x:%02x",
		e[7], e[6], e[5], e[4], e[3], e[2], e[1], e[0])
}

// AppendEUI64 appends e to w.
func (w *Writer) AppendEUI64(e EUI64) { w.Raw(e[:]) }

// DecodeEUI64 decodes an EUI64 from r.
func (r *Reader) DecodeEUI64() (EUI64, error) {
	b, err := r.Raw(8)
	if err != nil {
		return EUI64{}, err
	}
	var e EUI64
	copy(e[:], b)
	return e, nil
}

// UnmarshalYAML decodes a colon-separated or plain hex string into e, so
// config files can write an IEEE address as a string.
func (e *EUI64) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	clean := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != ':' && s[i] != '-' {
			clean = append(clean, s[i])
		}
	}
	b, err := hex.DecodeString(string(clean))
	if err != nil {
		return fmt.Errorf("types: invalid EUI64 %q: %w", s, err)
	}
	v, err := ParseEUI64(reverse(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

func (e EUI64) MarshalYAML() (interface{}, error) { return e.String(), nil }

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// KeyData is a 16-byte Zigbee network/link key.
type KeyData [16]byte

// UnmarshalYAML decodes a plain hex string into k.
func (k *KeyData) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("types: invalid KeyData %q: %w", s, err)
	}
	if len(b) != 16 {
		return fmt.Errorf("types: KeyData must be 16 bytes, got %d", len(b))
	}
	copy(k[:], b)
	return nil
}

func (k KeyData) MarshalYAML() (interface{}, error) { return hex.EncodeToString(k[:]), nil }

// AppendKeyData appends k to w.
func (w *Writer) AppendKeyData(k KeyData) { w.Raw(k[:]) }

// DecodeKeyData decodes a KeyData from r.
func (r *Reader) DecodeKeyData() (KeyData, error) {
	b, err := r.Raw(16)
	if err != nil {
		return KeyData{}, err
	}
	var k KeyData
	copy(k[:], b)
	return k, nil
}

// ShortBytes is a one-byte-length-prefixed byte string.
type ShortBytes []byte

// Channels is a 32-bit channel bitmask; bit k represents channel k. The
// Zigbee 2.4 GHz band uses channels 11..26.
type Channels uint32

// ChannelsFromList builds a Channels mask from individual channel numbers.
func ChannelsFromList(channels ...int) Channels {
	var c Channels
	for _, ch := range channels {
		if ch >= 0 && ch < 32 {
			c |= 1 << uint(ch)
		}
	}
	return c
}

// Contains reports whether channel ch is set in the mask.
func (c Channels) Contains(ch int) bool {
	if ch < 0 || ch >= 32 {
		return false
	}
	return c&(1<<uint(ch)) != 0
}

// List returns the sorted channel numbers set in the mask.
func (c Channels) List() []int {
	var out []int
	for ch := 0; ch < 32; ch++ {
		if c.Contains(ch) {
			out = append(out, ch)
		}
	}
	return out
}

func (c Channels) String() string { return fmt.Sprintf("Channels%v", c.List()) }

// UnmarshalYAML decodes a list of channel numbers into a mask, so config
// files can write channels as [11, 15, 20] instead of a raw bitmask.
func (c *Channels) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var list []int
	if err := unmarshal(&list); err != nil {
		return err
	}
	*c = ChannelsFromList(list...)
	return nil
}

func (c Channels) MarshalYAML() (interface{}, error) { return c.List(), nil }

// AppendUint16LE appends v to b in little-endian byte order.
func AppendUint16LE(b []byte, v uint16) []byte {
	return append(b, byte(v), byte(v>>8))
}

// Uint16LE decodes a little-endian uint16 out of a raw NVRAM blob slice.
func Uint16LE(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }
