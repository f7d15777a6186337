package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NIB_roundtrip_preserves_unmodeled_trailer(t *testing.T) {
	w := NewWriter()
	w.Uint8(15)
	w.Uint32(uint32(ChannelsFromList(11, 15)))
	w.Uint16(0x1a62)
	w.AppendEUI64(EUI64{1, 2, 3, 4, 5, 6, 7, 8})
	w.Raw([]byte{0xa0, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5})

	nib, err := DecodeNIB(w.Bytes())
	require.NoError(t, err)
	assert.Equal(t, uint8(15), nib.Channel)
	assert.Equal(t, ChannelsFromList(11, 15), nib.ChannelList)
	assert.Equal(t, PanId(0x1a62), nib.PanId)
	assert.Equal(t, EUI64{1, 2, 3, 4, 5, 6, 7, 8}, nib.ExtendedPanId)

	assert.Equal(t, w.Bytes(), nib.Bytes())
}

func Test_DecodeNIB_rejects_short_blob(t *testing.T) {
	_, err := DecodeNIB(make([]byte, nibHeaderSize-1))
	assert.ErrorIs(t, err, ErrShortBuffer)
}
