package mt

import (
	"testing"

	"github.com/gozigbee/znp/types"
)

func Test_UtilGetDeviceInfoRsp_roundtrip(t *testing.T) {
	cmd := &UtilGetDeviceInfoRsp{
		Status:       types.StatusSuccess,
		IEEEAddr:     types.EUI64{1, 2, 3, 4, 5, 6, 7, 8},
		ShortAddr:    0x0000,
		DeviceType:   0x07,
		DeviceState:  types.DeviceStateStartedAsCoordinator,
		AssocDevices: types.LVList[uint16]{0x1234, 0x5678},
	}
	roundtrip(t, cmd, cmd)
}

func Test_UtilSetChannelsReq_roundtrip(t *testing.T) {
	cmd := &UtilSetChannelsReq{Channels: types.ChannelsFromList(11, 15, 20)}
	roundtrip(t, cmd, cmd)
}

func Test_UtilSetPreConfigKeyReq_roundtrip(t *testing.T) {
	cmd := &UtilSetPreConfigKeyReq{Key: types.KeyData{0x01, 0x02, 0x03}}
	roundtrip(t, cmd, cmd)
}
