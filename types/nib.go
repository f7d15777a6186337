package types

// Struct is implemented by MT record ("struct") types: an ordered list of
// fields whose serialization concatenates field serializations and whose
// deserialization reads fields in order.
type Struct interface {
	Encode(*Writer)
	Decode(*Reader) error
}

// NIB is the subset of the coprocessor's Network Information Base the
// controller reads at startup and rewrites on a network update. The
// coprocessor's NVRAM blob for
// NvNIB carries many more fields than this; this driver treats everything
// outside the four it actually inspects as an opaque trailer it
// preserves byte-for-byte across a read/modify/write cycle.
type NIB struct {
	Channel         uint8
	ChannelList     Channels
	PanId           PanId
	ExtendedPanId   EUI64
	trailer         []byte
}

// nibHeaderSize is the byte offset of the opaque trailer within the raw
// NvNIB blob.
const nibHeaderSize = 1 + 4 + 2 + 8

// DecodeNIB parses a raw NvNIB NVRAM blob. Blobs shorter than the header
// this driver inspects are rejected; any bytes beyond the header are kept
// verbatim so a subsequent write round-trips fields this driver does not
// model.
func DecodeNIB(raw []byte) (NIB, error) {
	if len(raw) < nibHeaderSize {
		return NIB{}, ErrShortBuffer
	}
	r := NewReader(raw)
	ch, err := r.Uint8()
	if err != nil {
		return NIB{}, err
	}
	mask, err := r.Uint32()
	if err != nil {
		return NIB{}, err
	}
	pan, err := r.Uint16()
	if err != nil {
		return NIB{}, err
	}
	epid, err := r.DecodeEUI64()
	if err != nil {
		return NIB{}, err
	}
	return NIB{
		Channel:       ch,
		ChannelList:   Channels(mask),
		PanId:         PanId(pan),
		ExtendedPanId: epid,
		trailer:       append([]byte(nil), r.Rest()...),
	}, nil
}

// Encode serializes the NIB back to a raw NvNIB blob, preserving the
// trailer captured by DecodeNIB.
func (n NIB) Encode(w *Writer) {
	w.Uint8(n.Channel)
	w.Uint32(uint32(n.ChannelList))
	w.Uint16(uint16(n.PanId))
	w.AppendEUI64(n.ExtendedPanId)
	w.Raw(n.trailer)
}

// Decode implements Struct by delegating to DecodeNIB and copying the
// result into n.
func (n *NIB) Decode(r *Reader) error {
	parsed, err := DecodeNIB(r.Rest())
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Bytes serializes n to a raw NvNIB blob.
func (n NIB) Bytes() []byte {
	w := NewWriter()
	n.Encode(w)
	return w.Bytes()
}
