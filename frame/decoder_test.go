package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/gozigbee/znp/types"
)

func Test_Decoder_roundtrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		header := types.NewCommandHeader(types.SubsystemSYS, types.CommandTypeSREQ, rapid.Byte().Draw(t, "id"))
		payload := rapid.SliceOfN(rapid.Byte(), 0, MaxPayload).Draw(t, "payload")

		wire, err := (&Frame{Header: header, Payload: payload}).Encode()
		require.NoError(t, err)

		d := NewDecoder()
		got, err := feedT(d, wire)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, header, got.Header)
		assert.Equal(t, payload, got.Payload)
	})
}

func feedT(d *Decoder, b []byte) (*Frame, error) {
	var last *Frame
	for _, c := range b {
		f, err := d.Feed(c)
		if err != nil {
			return nil, err
		}
		if f != nil {
			last = f
		}
	}
	return last, nil
}

func Test_Decoder_rejects_bad_FCS_and_resyncs(t *testing.T) {
	wire, err := (&Frame{Header: types.NewCommandHeader(types.SubsystemSYS, types.CommandTypeSREQ, 0x01), Payload: []byte{0xaa}}).Encode()
	require.NoError(t, err)
	wire[len(wire)-1] ^= 0xff // corrupt the FCS byte

	d := NewDecoder()
	var sawErr bool
	for _, b := range wire {
		_, err := d.Feed(b)
		if err != nil {
			sawErr = true
			assert.ErrorIs(t, err, ErrBadFCS)
		}
	}
	assert.True(t, sawErr)

	// decoder must have resynced: a good frame right after still decodes
	good, err := (&Frame{Header: types.NewCommandHeader(types.SubsystemUTIL, types.CommandTypeAREQ, 0x02), Payload: nil}).Encode()
	require.NoError(t, err)
	f, err := feedT(d, good)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, types.NewCommandHeader(types.SubsystemUTIL, types.CommandTypeAREQ, 0x02), f.Header)
}

func Test_Decoder_drops_noise_before_SOF(t *testing.T) {
	wire, err := (&Frame{Header: types.NewCommandHeader(types.SubsystemSYS, types.CommandTypeSREQ, 0x01), Payload: []byte{0x01, 0x02}}).Encode()
	require.NoError(t, err)

	noisy := append([]byte{0x00, 0x11, 0x22, SOF}, wire[1:]...)
	d := NewDecoder()
	f, err := feedT(d, noisy)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, []byte{0x01, 0x02}, f.Payload)
}

func Test_Frame_Encode_rejects_oversized_payload(t *testing.T) {
	_, err := (&Frame{Payload: make([]byte, MaxPayload+1)}).Encode()
	assert.ErrorIs(t, err, ErrPayloadTooLong)
}
