package mt

import (
	"testing"

	"github.com/gozigbee/znp/types"
)

func Test_SysResetInd_roundtrip(t *testing.T) {
	cmd := &SysResetInd{Reason: 0, TransportRev: 2, ProductId: 1, MajorRel: 2, MinorRel: 7, HwRev: 0}
	roundtrip(t, cmd, cmd)
}

func Test_SysVersionRsp_roundtrip(t *testing.T) {
	cmd := &SysVersionRsp{
		TransportRev:        2,
		ProductId:           1,
		MajorRel:            2,
		MinorRel:            7,
		MaintRel:            2,
		CodeRevision:        20210120,
		BootloaderBuildType: 0,
		BootloaderRevision:  0xffffffff,
	}
	roundtrip(t, cmd, cmd)
}

func Test_SysOSALNVReadRsp_roundtrip(t *testing.T) {
	cmd := &SysOSALNVReadRsp{Status: types.StatusSuccess, Value: types.ShortBytes{0x01, 0x02}}
	roundtrip(t, cmd, cmd)
}

func Test_SysSetTxPowerReq_roundtrip(t *testing.T) {
	cmd := &SysSetTxPowerReq{TxPower: 4}
	roundtrip(t, cmd, cmd)
}
