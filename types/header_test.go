package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CommandHeader_fields(t *testing.T) {
	h := NewCommandHeader(SubsystemAF, CommandTypeSREQ, 0x01)
	assert.Equal(t, SubsystemAF, h.Subsystem())
	assert.Equal(t, CommandTypeSREQ, h.Type())
	assert.Equal(t, uint8(0x01), h.ID())
}

func Test_CommandHeader_Rsp_is_plus_0x0040(t *testing.T) {
	h := NewCommandHeader(SubsystemSYS, CommandTypeSREQ, 0x01)
	assert.Equal(t, CommandHeader(uint16(h)+0x0040), h.Rsp())
	assert.Equal(t, CommandTypeSRSP, h.Rsp().Type())
	assert.Equal(t, h.Subsystem(), h.Rsp().Subsystem())
	assert.Equal(t, h.ID(), h.Rsp().ID())
}

func Test_CommandHeader_With_mutators_preserve_other_fields(t *testing.T) {
	h := NewCommandHeader(SubsystemZDO, CommandTypeAREQ, 0x80)
	h2 := h.WithSubsystem(SubsystemUTIL)
	assert.Equal(t, SubsystemUTIL, h2.Subsystem())
	assert.Equal(t, h.Type(), h2.Type())
	assert.Equal(t, h.ID(), h2.ID())

	h3 := h.WithID(0x01)
	assert.Equal(t, uint8(0x01), h3.ID())
	assert.Equal(t, h.Subsystem(), h3.Subsystem())
	assert.Equal(t, h.Type(), h3.Type())
}

func Test_CommandHeader_String(t *testing.T) {
	h := NewCommandHeader(SubsystemSYS, CommandTypeSREQ, 0x01)
	assert.Equal(t, "SYS.SREQ(0x01)", h.String())
}
