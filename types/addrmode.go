package types

import "fmt"

// AddrMode is the address-mode tag of an AddrModeAddress.
type AddrMode uint8

const (
	AddrModeNotPresent AddrMode = 0
	AddrModeGroup      AddrMode = 1
	AddrModeNWK        AddrMode = 2
	AddrModeIEEE       AddrMode = 3
	AddrModeBroadcast  AddrMode = 15
)

func (m AddrMode) String() string {
	switch m {
	case AddrModeNotPresent:
		return "NotPresent"
	case AddrModeGroup:
		return "Group"
	case AddrModeNWK:
		return "NWK"
	case AddrModeIEEE:
		return "IEEE"
	case AddrModeBroadcast:
		return "Broadcast"
	default:
		return fmt.Sprintf("unknown_0x%02x", uint8(m))
	}
}

// AddrModeAddress is the tagged-sum address carried by AF/ZDO requests:
// mode tag followed by an address field always serialized as 8 bytes —
// IEEE is the raw EUI64, any other mode is its 2-byte address zero-padded.
type AddrModeAddress struct {
	Mode AddrMode
	NWK  NWK   // valid when Mode is Group, NWK or Broadcast
	IEEE EUI64 // valid when Mode is IEEE
}

// NWKAddr builds a NWK-mode AddrModeAddress.
func NWKAddr(a NWK) AddrModeAddress { return AddrModeAddress{Mode: AddrModeNWK, NWK: a} }

// IEEEAddr builds an IEEE-mode AddrModeAddress.
func IEEEAddr(a EUI64) AddrModeAddress { return AddrModeAddress{Mode: AddrModeIEEE, IEEE: a} }

// Append appends the tag byte followed by the 8-byte address field.
func (a AddrModeAddress) Append(w *Writer) {
	w.Uint8(uint8(a.Mode))
	if a.Mode == AddrModeIEEE {
		w.AppendEUI64(a.IEEE)
		return
	}
	w.Uint16(uint16(a.NWK))
	w.Raw([]byte{0, 0, 0, 0, 0, 0})
}

// DecodeAddrModeAddress reads the tag byte then interprets the following 8
// bytes according to it.
func DecodeAddrModeAddress(r *Reader) (AddrModeAddress, error) {
	tag, err := r.Uint8()
	if err != nil {
		return AddrModeAddress{}, err
	}
	raw, err := r.Raw(8)
	if err != nil {
		return AddrModeAddress{}, err
	}
	a := AddrModeAddress{Mode: AddrMode(tag)}
	if a.Mode == AddrModeIEEE {
		copy(a.IEEE[:], raw)
		return a, nil
	}
	a.NWK = NWK(Uint16LE(raw))
	return a, nil
}

func (a AddrModeAddress) String() string {
	switch a.Mode {
	case AddrModeIEEE:
		return fmt.Sprintf("Addr<%s %s>", a.Mode, a.IEEE)
	default:
		return fmt.Sprintf("Addr<%s %s>", a.Mode, a.NWK)
	}
}
