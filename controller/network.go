package controller

import (
	"context"
	"fmt"

	"github.com/gozigbee/znp/mt"
	"github.com/gozigbee/znp/types"
	"github.com/gozigbee/znp/znp"
)

// NetworkUpdate names the network parameters UpdateNetwork may change.
// A nil field is left unchanged.
type NetworkUpdate struct {
	Channel       *uint8
	Channels      *types.Channels
	PanId         *types.PanId
	ExtendedPanId *types.EUI64
	NetworkKey    *types.KeyData
	Reset         bool
}

// UpdateNetwork applies u. With Reset=false it only
// validates (channel must be a member of channels, if both are given) and
// is otherwise a no-op. With Reset=true it pushes every given field to
// the coprocessor, rewrites the NIB, and soft-resets, awaiting ResetInd.
func (c *Controller) UpdateNetwork(ctx context.Context, u NetworkUpdate) error {
	if u.Channel != nil && u.Channels != nil && !u.Channels.Contains(int(*u.Channel)) {
		return fmt.Errorf("%w: channel %d not in channel mask %s", ErrInvalidParam, *u.Channel, *u.Channels)
	}
	if !u.Reset {
		return nil
	}

	if u.Channels != nil {
		rsp, err := c.session.Request(ctx, &mt.UtilSetChannelsReq{Channels: *u.Channels}, c.cfg.SreqTimeout)
		if err != nil {
			return fmt.Errorf("controller: update_network channels: %w", err)
		}
		if status := rsp.(*mt.UtilSetChannelsRsp).Status; !status.OK() {
			return fmt.Errorf("controller: update_network channels: %s", status)
		}
		if _, err := c.session.Request(ctx, &mt.AppConfigBDBSetChannelReq{IsPrimary: true, Channel: *u.Channels}, c.cfg.SreqTimeout); err != nil {
			return fmt.Errorf("controller: update_network primary channel: %w", err)
		}
		if _, err := c.session.Request(ctx, &mt.AppConfigBDBSetChannelReq{IsPrimary: false, Channel: 0}, c.cfg.SreqTimeout); err != nil {
			return fmt.Errorf("controller: update_network secondary channel: %w", err)
		}
	}

	if u.PanId != nil {
		rsp, err := c.session.Request(ctx, &mt.UtilSetPanIdReq{PanId: *u.PanId}, c.cfg.SreqTimeout)
		if err != nil {
			return fmt.Errorf("controller: update_network pan id: %w", err)
		}
		if status := rsp.(*mt.UtilSetPanIdRsp).Status; !status.OK() {
			return fmt.Errorf("controller: update_network pan id: %s", status)
		}
	}

	if u.ExtendedPanId != nil {
		ext := *u.ExtendedPanId
		if err := c.writeNV(ctx, types.NvExtendedPanId, ext[:]); err != nil {
			return fmt.Errorf("controller: update_network extended pan id: %w", err)
		}
	}

	if u.NetworkKey != nil {
		rsp, err := c.session.Request(ctx, &mt.UtilSetPreConfigKeyReq{Key: *u.NetworkKey}, c.cfg.SreqTimeout)
		if err != nil {
			return fmt.Errorf("controller: update_network key: %w", err)
		}
		if status := rsp.(*mt.UtilSetPreConfigKeyRsp).Status; !status.OK() {
			return fmt.Errorf("controller: update_network key: %s", status)
		}
		if err := c.writeNV(ctx, types.NvPreCfgKeysEnable, []byte{1}); err != nil {
			return fmt.Errorf("controller: update_network key enable: %w", err)
		}
	}

	nibRaw, err := c.readNV(ctx, types.NvNIB)
	if err != nil {
		return fmt.Errorf("controller: update_network reading NIB: %w", err)
	}
	nib, err := types.DecodeNIB(nibRaw)
	if err != nil {
		return fmt.Errorf("controller: update_network decoding NIB: %w", err)
	}
	if u.Channel != nil {
		nib.Channel = *u.Channel
	}
	if u.Channels != nil {
		nib.ChannelList = *u.Channels
	}
	if u.PanId != nil {
		nib.PanId = *u.PanId
	}
	if u.ExtendedPanId != nil {
		nib.ExtendedPanId = *u.ExtendedPanId
	}
	if err := c.writeNV(ctx, types.NvNIB, nib.Bytes()); err != nil {
		return fmt.Errorf("controller: update_network writing NIB: %w", err)
	}

	if err := c.session.Send(&mt.SysResetReq{Type: mt.ResetTypeSoft}); err != nil {
		return fmt.Errorf("controller: update_network reset: %w", err)
	}
	if _, err := c.session.WaitFor(ctx, mt.SysResetInd{}.Header(), znp.Any); err != nil {
		return fmt.Errorf("controller: update_network awaiting reset: %w", err)
	}
	return nil
}
