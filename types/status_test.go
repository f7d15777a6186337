package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Status_OK(t *testing.T) {
	assert.True(t, StatusSuccess.OK())
	assert.False(t, StatusFailure.OK())
}

func Test_Status_String_unknown_value(t *testing.T) {
	assert.Equal(t, "unknown_0x7f", Status(0x7f).String())
	assert.Equal(t, "Success", StatusSuccess.String())
}
