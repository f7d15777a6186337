package types

import "fmt"

// Subsystem is the low 5 bits of an MT command header.
type Subsystem uint8

// The MT subsystem IDs.
const (
	SubsystemReserved Subsystem = 0x00
	SubsystemSYS      Subsystem = 0x01
	SubsystemMAC      Subsystem = 0x02
	SubsystemNWK      Subsystem = 0x03
	SubsystemAF       Subsystem = 0x04
	SubsystemZDO      Subsystem = 0x05
	SubsystemSAPI     Subsystem = 0x06
	SubsystemUTIL     Subsystem = 0x07
	SubsystemDEBUG    Subsystem = 0x08
	SubsystemAPP      Subsystem = 0x09
	SubsystemAPPConfig Subsystem = 0x0F
	SubsystemZGP      Subsystem = 0x15
)

var subsystemNames = map[Subsystem]string{
	SubsystemReserved:  "Reserved",
	SubsystemSYS:       "SYS",
	SubsystemMAC:       "MAC",
	SubsystemNWK:       "NWK",
	SubsystemAF:        "AF",
	SubsystemZDO:       "ZDO",
	SubsystemSAPI:      "SAPI",
	SubsystemUTIL:      "UTIL",
	SubsystemDEBUG:     "DEBUG",
	SubsystemAPP:       "APP",
	SubsystemAPPConfig: "APPConfig",
	SubsystemZGP:       "ZGP",
}

func (s Subsystem) String() string {
	if name, ok := subsystemNames[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown_0x%02x", uint8(s))
}

// CommandType is bits 5-7 of CMD0.
type CommandType uint8

const (
	CommandTypePOLL CommandType = 0
	CommandTypeSREQ CommandType = 1
	CommandTypeAREQ CommandType = 2
	CommandTypeSRSP CommandType = 3
)

func (t CommandType) String() string {
	switch t {
	case CommandTypePOLL:
		return "POLL"
	case CommandTypeSREQ:
		return "SREQ"
	case CommandTypeAREQ:
		return "AREQ"
	case CommandTypeSRSP:
		return "SRSP"
	default:
		return fmt.Sprintf("unknown_0x%02x", uint8(t))
	}
}

// CommandHeader is a 16-bit value decomposed as: low 5 bits = subsystem,
// bits 5-7 = command type, high 8 bits = command id.
type CommandHeader uint16

// NewCommandHeader builds a header from its three fields.
func NewCommandHeader(sub Subsystem, typ CommandType, id uint8) CommandHeader {
	return CommandHeader(uint16(sub)&0x1f | (uint16(typ)&0x07)<<5 | uint16(id)<<8)
}

// Subsystem returns the low-5-bits subsystem field.
func (h CommandHeader) Subsystem() Subsystem { return Subsystem(h & 0x1f) }

// Type returns the command-type field.
func (h CommandHeader) Type() CommandType { return CommandType((h >> 5) & 0x07) }

// ID returns the high-byte command id.
func (h CommandHeader) ID() uint8 { return uint8(h >> 8) }

// WithSubsystem returns h with its subsystem field replaced.
func (h CommandHeader) WithSubsystem(s Subsystem) CommandHeader {
	return CommandHeader(uint16(h)&0xffe0 | uint16(s)&0x1f)
}

// WithType returns h with its command-type field replaced.
func (h CommandHeader) WithType(t CommandType) CommandHeader {
	return CommandHeader(uint16(h)&0xff1f | (uint16(t)&0x07)<<5)
}

// WithID returns h with its command-id field replaced.
func (h CommandHeader) WithID(id uint8) CommandHeader {
	return CommandHeader(uint16(h)&0x00ff | uint16(id)<<8)
}

// Rsp returns the SRSP header matching an SREQ header: the type field
// replaced with SRSP, equivalent to h+0x0040 given the bit layout above.
func (h CommandHeader) Rsp() CommandHeader { return h.WithType(CommandTypeSRSP) }

func (h CommandHeader) String() string {
	return fmt.Sprintf("%s.%s(0x%02x)", h.Subsystem(), h.Type(), h.ID())
}
