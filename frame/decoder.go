package frame

import "github.com/gozigbee/znp/types"

type decoderState int

const (
	stateAwaitSOF decoderState = iota
	stateAwaitLen
	stateAwaitCmd0
	stateAwaitCmd1
	stateAwaitPayload
	stateAwaitFCS
)

// Decoder is a byte-fed MT frame state machine: on FCS
// mismatch the partial frame is discarded and decoding resumes at
// AwaitSOF; no bytes beyond the bad frame are consumed speculatively, and
// bytes seen before the first SOF are dropped.
type Decoder struct {
	state   decoderState
	length  byte
	cmd0    byte
	cmd1    byte
	payload []byte
	fcs     byte
}

// NewDecoder returns a Decoder ready to receive bytes at AwaitSOF.
func NewDecoder() *Decoder { return &Decoder{} }

// Feed advances the state machine by one byte. It returns a non-nil *Frame
// exactly when that byte completed a frame with a matching FCS; a
// returned error indicates the frame was discarded (bad FCS), not that
// Feed itself failed — the Decoder has already reset to AwaitSOF and the
// caller should keep feeding subsequent bytes.
func (d *Decoder) Feed(b byte) (*Frame, error) {
	switch d.state {
	case stateAwaitSOF:
		if b == SOF {
			d.beginFrame()
			d.state = stateAwaitLen
		}
		return nil, nil

	case stateAwaitLen:
		d.length = b
		d.fcs = b
		d.state = stateAwaitCmd0
		return nil, nil

	case stateAwaitCmd0:
		d.cmd0 = b
		d.fcs ^= b
		d.state = stateAwaitCmd1
		return nil, nil

	case stateAwaitCmd1:
		d.cmd1 = b
		d.fcs ^= b
		if d.length == 0 {
			d.state = stateAwaitFCS
		} else {
			d.state = stateAwaitPayload
		}
		return nil, nil

	case stateAwaitPayload:
		d.payload = append(d.payload, b)
		d.fcs ^= b
		if len(d.payload) >= int(d.length) {
			d.state = stateAwaitFCS
		}
		return nil, nil

	case stateAwaitFCS:
		header := types.CommandHeader(uint16(d.cmd0) | uint16(d.cmd1)<<8)
		payload := append([]byte{}, d.payload...)
		match := b == d.fcs
		d.state = stateAwaitSOF
		if !match {
			return nil, ErrBadFCS
		}
		return &Frame{Header: header, Payload: payload}, nil

	default:
		d.state = stateAwaitSOF
		return nil, nil
	}
}

func (d *Decoder) beginFrame() {
	d.length = 0
	d.cmd0 = 0
	d.cmd1 = 0
	d.payload = d.payload[:0]
	d.fcs = 0
}

// ConnectionLost discards any in-progress partial frame and returns the
// decoder to AwaitSOF.
func (d *Decoder) ConnectionLost() {
	d.state = stateAwaitSOF
	d.beginFrame()
}
