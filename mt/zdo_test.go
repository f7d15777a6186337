package mt

import (
	"testing"

	"github.com/gozigbee/znp/types"
)

func Test_ZdoStartupFromAppRsp_roundtrip(t *testing.T) {
	cmd := &ZdoStartupFromAppRsp{Status: types.StatusSuccess}
	roundtrip(t, cmd, cmd)
}

func Test_ZdoMgmtPermitJoinReq_roundtrip(t *testing.T) {
	cmd := &ZdoMgmtPermitJoinReq{AddrMode: uint8(types.AddrModeNWK), DstAddr: 0xfffc, Duration: 60, TCSignificance: 1}
	roundtrip(t, cmd, cmd)
}

func Test_ZdoMgmtLeaveReq_roundtrip(t *testing.T) {
	cmd := &ZdoMgmtLeaveReq{DstAddr: 0x0000, DeviceAddr: types.EUI64{1, 2, 3, 4, 5, 6, 7, 8}, RemoveChildrenRejoin: 0}
	roundtrip(t, cmd, cmd)
}

func Test_ZdoSrcRtgInd_roundtrip(t *testing.T) {
	cmd := &ZdoSrcRtgInd{DstAddr: 0x1234, RelayList: types.LVList[uint16]{0x5678, 0x9abc}}
	roundtrip(t, cmd, cmd)
}
