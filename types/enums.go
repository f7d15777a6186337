package types

import "fmt"

// DeviceState is the coprocessor's reported network participation state
// (Util.GetDeviceInfo, ZDO.StateChangeInd), per the original source's
// DeviceState enum.
type DeviceState uint8

const (
	DeviceStateInitializedNotStarted DeviceState = 0x00
	DeviceStateInitializedNotConnected DeviceState = 0x01
	DeviceStateDiscoveringPANs        DeviceState = 0x02
	DeviceStateJoining                DeviceState = 0x03
	DeviceStateReJoining              DeviceState = 0x04
	DeviceStateJoinedNotAuthenticated DeviceState = 0x05
	DeviceStateJoinedAsEndDevice      DeviceState = 0x06
	DeviceStateJoinedAsRouter         DeviceState = 0x07
	DeviceStateStartingAsCoordinator  DeviceState = 0x08
	DeviceStateStartedAsCoordinator   DeviceState = 0x09
	DeviceStateLostParent             DeviceState = 0x0A
)

var deviceStateNames = map[DeviceState]string{
	DeviceStateInitializedNotStarted:   "InitializedNotStarted",
	DeviceStateInitializedNotConnected: "InitializedNotConnected",
	DeviceStateDiscoveringPANs:         "DiscoveringPANs",
	DeviceStateJoining:                 "Joining",
	DeviceStateReJoining:               "ReJoining",
	DeviceStateJoinedNotAuthenticated:  "JoinedNotAuthenticated",
	DeviceStateJoinedAsEndDevice:       "JoinedAsEndDevice",
	DeviceStateJoinedAsRouter:          "JoinedAsRouter",
	DeviceStateStartingAsCoordinator:   "StartingAsCoordinator",
	DeviceStateStartedAsCoordinator:    "StartedAsCoordinator",
	DeviceStateLostParent:              "LostParent",
}

func (s DeviceState) String() string {
	if name, ok := deviceStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown_0x%02x", uint8(s))
}

// MTCapabilities is the bitmask the coprocessor reports in SYS.Ping.Rsp.
// Treated as opaque: individual bits are named for callers that need
// them, but round-tripping never requires any particular bit to be set.
type MTCapabilities uint16

const (
	CapSYS    MTCapabilities = 0x0001
	CapMAC    MTCapabilities = 0x0002
	CapNWK    MTCapabilities = 0x0004
	CapAF     MTCapabilities = 0x0008
	CapZDO    MTCapabilities = 0x0010
	CapSAPI   MTCapabilities = 0x0020
	CapUTIL   MTCapabilities = 0x0040
	CapDEBUG  MTCapabilities = 0x0080
	CapAPP    MTCapabilities = 0x0100
	CapZOAD   MTCapabilities = 0x1000
)

func (c MTCapabilities) Has(bit MTCapabilities) bool { return c&bit != 0 }

func (c MTCapabilities) String() string { return fmt.Sprintf("MTCapabilities(0x%04x)", uint16(c)) }

// BDBCommissioningMode is the bitmask argument to
// AppConfig.BDBStartCommissioning, per the Z-Stack BDB commissioning modes.
type BDBCommissioningMode uint8

const (
	BDBCommissioningInitiatorTL  BDBCommissioningMode = 0x01
	BDBCommissioningNwkSteering  BDBCommissioningMode = 0x02
	BDBCommissioningNwkFormation BDBCommissioningMode = 0x04
	BDBCommissioningFindingBinding BDBCommissioningMode = 0x08
	BDBCommissioningTouchlink    BDBCommissioningMode = 0x10
	BDBCommissioningParentLost   BDBCommissioningMode = 0x20
)

func (m BDBCommissioningMode) String() string {
	return fmt.Sprintf("BDBCommissioningMode(0x%02x)", uint8(m))
}

// NvId names an OSAL NVRAM item the coprocessor persists.
type NvId uint16

const (
	NvHasConfiguredZStack3 NvId = 0x0060
	NvNIB                  NvId = 0x0021
	NvExtendedPanId        NvId = 0x002D
	NvPreCfgKeysEnable     NvId = 0x0063
	NvLogicalType          NvId = 0x0087
	NvStartupOption        NvId = 0x0003
	NvZdoDirectCb          NvId = 0x008F
	NvConcentratorEnable   NvId = 0x00F0
	NvConcentratorDiscoveryTime NvId = 0x00F1
	NvConcentratorRadius   NvId = 0x00F2
	NvSrcRtgExpiryTime     NvId = 0x006B
	NvNwkChildAgeEnable    NvId = 0x00C2
)

// HasConfiguredSentinel is the byte value NvHasConfiguredZStack3 holds once
// the coprocessor has completed network formation at least once.
const HasConfiguredSentinel byte = 0x55
