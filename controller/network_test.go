package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gozigbee/znp/clog"
	"github.com/gozigbee/znp/config"
	"github.com/gozigbee/znp/types"
)

func Test_UpdateNetwork_validates_channel_membership(t *testing.T) {
	c := New(config.DefaultConfig(), nil, clog.NewLogger("test"))

	ch := uint8(20)
	mask := types.ChannelsFromList(11, 15)
	err := c.UpdateNetwork(context.Background(), NetworkUpdate{Channel: &ch, Channels: &mask})
	assert.ErrorIs(t, err, ErrInvalidParam)
}

func Test_UpdateNetwork_no_reset_is_a_noop_once_valid(t *testing.T) {
	c := New(config.DefaultConfig(), nil, clog.NewLogger("test"))

	ch := uint8(15)
	mask := types.ChannelsFromList(11, 15)
	err := c.UpdateNetwork(context.Background(), NetworkUpdate{Channel: &ch, Channels: &mask})
	assert.NoError(t, err)
}
