package mt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gozigbee/znp/types"
)

func Test_Lookup_unknown_header(t *testing.T) {
	_, ok := Lookup(types.NewCommandHeader(types.SubsystemZGP, types.CommandTypeSREQ, 0xfe))
	assert.False(t, ok)
}

func Test_Decode_rejects_trailing_data(t *testing.T) {
	header := SysPingReq{}.Header()
	_, err := Decode(header, []byte{0x01})
	assert.ErrorIs(t, err, ErrTrailingData)
}

func Test_Decode_unknown_header(t *testing.T) {
	_, err := Decode(types.NewCommandHeader(types.SubsystemZGP, types.CommandTypeSREQ, 0xfe), nil)
	assert.Error(t, err)
}

func Test_Register_panics_on_duplicate(t *testing.T) {
	header := types.NewCommandHeader(types.SubsystemReserved, types.CommandTypeSREQ, 0xee)
	Register(header, func() Command { return &SysPingReq{} })
	defer delete(registry, header)

	assert.Panics(t, func() {
		Register(header, func() Command { return &SysPingReq{} })
	})
}

// roundtrip encodes cmd, decodes it back through the catalog by header, and
// asserts the result equals cmd, exercising Encode/Decode/Lookup together
// the way the session's dispatch loop does for every inbound frame.
func roundtrip(t *testing.T, cmd Command, want Command) {
	t.Helper()
	payload := Encode(cmd)
	got, err := Decode(cmd.Header(), payload)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func Test_SysResetReq_roundtrip(t *testing.T) {
	cmd := &SysResetReq{Type: ResetTypeSoft}
	roundtrip(t, cmd, cmd)
}

func Test_SysPingRsp_roundtrip(t *testing.T) {
	cmd := &SysPingRsp{Capabilities: 0x002e}
	roundtrip(t, cmd, cmd)
}

func Test_SysOSALNVWriteReq_roundtrip(t *testing.T) {
	cmd := &SysOSALNVWriteReq{Id: 0x0060, Offset: 0, Value: types.ShortBytes{0x01, 0x02, 0x03}}
	roundtrip(t, cmd, cmd)
}

func Test_AfDataConfirm_roundtrip(t *testing.T) {
	cmd := &AfDataConfirm{Status: types.StatusSuccess, Endpoint: 1, TSN: 42}
	roundtrip(t, cmd, cmd)
}

func Test_ZdoActiveEpRspInd_roundtrip(t *testing.T) {
	cmd := &ZdoActiveEpRspInd{
		SrcAddr:         0x0000,
		Status:          types.StatusSuccess,
		NWKAddr:         0x1234,
		ActiveEndpoints: types.LVList[uint8]{1, 2, 3},
	}
	roundtrip(t, cmd, cmd)
}
