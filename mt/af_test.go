package mt

import (
	"testing"

	"github.com/gozigbee/znp/types"
)

func Test_AfRegisterReq_roundtrip(t *testing.T) {
	cmd := &AfRegisterReq{
		Endpoint:       1,
		ProfileId:      0x0104,
		DeviceId:       0x0000,
		DeviceVersion:  0,
		LatencyReq:     0,
		InputClusters:  types.LVList[uint16]{0x0000, 0x0003},
		OutputClusters: types.LVList[uint16]{0x0006},
	}
	roundtrip(t, cmd, cmd)
}

func Test_AfDataRequestExtReq_roundtrip_NWK_address(t *testing.T) {
	cmd := &AfDataRequestExtReq{
		DstAddr:     types.NWKAddr(0x1234),
		DstEndpoint: 1,
		SrcEndpoint: 1,
		ClusterId:   0x0006,
		TSN:         7,
		Options:     0,
		Radius:      0,
		Data:        types.ShortBytes{0x01},
	}
	roundtrip(t, cmd, cmd)
}

func Test_AfDataRequestExtReq_roundtrip_IEEE_address(t *testing.T) {
	cmd := &AfDataRequestExtReq{
		DstAddr:     types.IEEEAddr(types.EUI64{1, 2, 3, 4, 5, 6, 7, 8}),
		DstEndpoint: 1,
		SrcEndpoint: 1,
		ClusterId:   0x0006,
		TSN:         7,
	}
	want := *cmd
	want.Data = types.ShortBytes{}
	roundtrip(t, cmd, &want)
}

func Test_AfIncomingMsg_roundtrip(t *testing.T) {
	cmd := &AfIncomingMsg{
		GroupId:      0,
		ClusterId:    0x0006,
		SrcAddr:      0x1234,
		SrcEndpoint:  1,
		DstEndpoint:  1,
		WasBroadcast: false,
		LinkQuality:  200,
		SecurityUse:  false,
		Timestamp:    1000,
		TSN:          5,
		Data:         types.ShortBytes{0x01, 0x00},
	}
	roundtrip(t, cmd, cmd)
}
