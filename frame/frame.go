// Package frame implements the MT wire framing: SOF/LEN/header/payload/FCS.
package frame

import (
	"errors"
	"fmt"

	"github.com/gozigbee/znp/types"
)

// SOF is the start-of-frame byte.
const SOF byte = 0xFE

// MaxPayload is the largest payload LEN can encode.
const MaxPayload = 250

var (
	// ErrPayloadTooLong is returned by Encode when Payload exceeds MaxPayload.
	ErrPayloadTooLong = errors.New("frame: payload exceeds 250 bytes")
	// ErrBadFCS is returned when a decoded frame's FCS does not match.
	ErrBadFCS = errors.New("frame: FCS mismatch")
)

// Frame is one fully-decoded (or ready-to-encode) MT frame.
type Frame struct {
	Header  types.CommandHeader
	Payload []byte
}

// Encode serializes f to SOF|LEN|CMD0|CMD1|PAYLOAD|FCS.
func (f Frame) Encode() ([]byte, error) {
	if len(f.Payload) > MaxPayload {
		return nil, ErrPayloadTooLong
	}
	cmd0 := byte(f.Header & 0x00ff)
	cmd1 := f.Header.ID()
	b := make([]byte, 0, 5+len(f.Payload))
	b = append(b, SOF, byte(len(f.Payload)), cmd0, cmd1)
	b = append(b, f.Payload...)
	fcs := byte(len(f.Payload)) ^ cmd0 ^ cmd1
	for _, v := range f.Payload {
		fcs ^= v
	}
	b = append(b, fcs)
	return b, nil
}

func (f Frame) String() string {
	return fmt.Sprintf("Frame{%s, %d bytes}", f.Header, len(f.Payload))
}
