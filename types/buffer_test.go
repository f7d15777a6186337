package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func Test_Writer_Reader_roundtrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		u8 := rapid.Uint8().Draw(t, "u8")
		u16 := rapid.Uint16().Draw(t, "u16")
		u32 := rapid.Uint32().Draw(t, "u32")
		b := rapid.Bool().Draw(t, "b")
		raw := rapid.SliceOfN(rapid.Byte(), 0, 32).Draw(t, "raw")
		short := rapid.SliceOfN(rapid.Byte(), 0, 255).Draw(t, "short")

		w := NewWriter()
		w.Uint8(u8)
		w.Uint16(u16)
		w.Uint32(u32)
		w.Bool(b)
		w.Raw(raw)
		require.NoError(t, w.ShortBytes(short))

		r := NewReader(w.Bytes())
		gotU8, err := r.Uint8()
		require.NoError(t, err)
		gotU16, err := r.Uint16()
		require.NoError(t, err)
		gotU32, err := r.Uint32()
		require.NoError(t, err)
		gotB, err := r.Bool()
		require.NoError(t, err)
		gotRaw, err := r.Raw(len(raw))
		require.NoError(t, err)
		gotShort, err := r.ShortBytes()
		require.NoError(t, err)

		assert.Equal(t, u8, gotU8)
		assert.Equal(t, u16, gotU16)
		assert.Equal(t, u32, gotU32)
		assert.Equal(t, b, gotB)
		assert.Equal(t, raw, gotRaw)
		assert.Equal(t, short, gotShort)
		assert.Equal(t, 0, r.Len())
	})
}

func Test_Reader_short_buffer(t *testing.T) {
	r := NewReader([]byte{0x01})
	_, err := r.Uint16()
	assert.ErrorIs(t, err, ErrShortBuffer)

	r = NewReader(nil)
	_, err = r.Uint8()
	assert.ErrorIs(t, err, ErrShortBuffer)
}

func Test_Writer_ShortBytes_too_long(t *testing.T) {
	w := NewWriter()
	err := w.ShortBytes(make([]byte, 256))
	assert.ErrorIs(t, err, ErrFieldTooLong)
}

func Test_Reader_ShortBytes_truncated(t *testing.T) {
	// length prefix claims 5 bytes but only 2 follow
	r := NewReader([]byte{0x05, 0x01, 0x02})
	_, err := r.ShortBytes()
	assert.ErrorIs(t, err, ErrShortBuffer)
}

func Test_Float32_roundtrip(t *testing.T) {
	w := NewWriter()
	w.Float32(3.5)
	r := NewReader(w.Bytes())
	got, err := r.Float32()
	require.NoError(t, err)
	assert.Equal(t, float32(3.5), got)
}
