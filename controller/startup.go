package controller

import (
	"context"
	"fmt"

	"github.com/gozigbee/znp/mt"
	"github.com/gozigbee/znp/types"
	"github.com/gozigbee/znp/uart"
	"github.com/gozigbee/znp/znp"
)

// Startup runs the full coprocessor bring-up flow: reset, version and
// capability checks, NIB inspection, and network formation or rejoin. If
// autoForm is false and the coprocessor was never configured, it returns
// ErrNotConfigured instead of forming a network on the caller's behalf.
func (c *Controller) Startup(ctx context.Context, autoForm bool) error {
	if err := c.openLink(ctx); err != nil {
		return err
	}

	// Step 3: soft reset, await the AREQ confirming it completed.
	if err := c.session.Send(&mt.SysResetReq{Type: mt.ResetTypeSoft}); err != nil {
		return fmt.Errorf("controller: reset: %w", err)
	}
	if _, err := c.session.WaitFor(ctx, mt.SysResetInd{}.Header(), znp.Any); err != nil {
		return fmt.Errorf("controller: awaiting reset: %w", err)
	}

	// Step 4-5: capabilities and firmware triple, logged for operators;
	// neither gates startup.
	if rsp, err := c.session.Request(ctx, &mt.SysPingReq{}, c.cfg.SreqTimeout); err != nil {
		return fmt.Errorf("controller: ping: %w", err)
	} else {
		c.log.Debug("controller: capabilities %s", rsp.(*mt.SysPingRsp).Capabilities)
	}
	if rsp, err := c.session.Request(ctx, &mt.SysVersionReq{}, c.cfg.SreqTimeout); err != nil {
		return fmt.Errorf("controller: version: %w", err)
	} else {
		v := rsp.(*mt.SysVersionRsp)
		c.log.Debug("controller: firmware %d.%d.%d", v.MajorRel, v.MinorRel, v.MaintRel)
	}

	// Step 6: HAS_CONFIGURED_ZSTACK3 gate.
	configured, err := c.readNV(ctx, types.NvHasConfiguredZStack3)
	if err != nil {
		return fmt.Errorf("controller: reading HAS_CONFIGURED_ZSTACK3: %w", err)
	}
	if len(configured) == 0 || configured[0] != types.HasConfiguredSentinel {
		if !autoForm {
			return ErrNotConfigured
		}
		if err := c.formNetwork(ctx); err != nil {
			return fmt.Errorf("controller: forming network: %w", err)
		}
		return c.Startup(ctx, false)
	}

	// Step 7: decode NIB for the active channel/PAN/extended PAN id.
	nibRaw, err := c.readNV(ctx, types.NvNIB)
	if err != nil {
		return fmt.Errorf("controller: reading NIB: %w", err)
	}
	nib, err := types.DecodeNIB(nibRaw)
	if err != nil {
		return fmt.Errorf("controller: decoding NIB: %w", err)
	}
	c.log.Debug("controller: network channel=%d pan=%s extpan=%s", nib.Channel, nib.PanId, nib.ExtendedPanId)

	// Step 8: concentrator and child-aging NVRAM items.
	if err := c.writeNV(ctx, types.NvConcentratorEnable, []byte{1}); err != nil {
		return fmt.Errorf("controller: enabling concentrator: %w", err)
	}
	if err := c.writeNV(ctx, types.NvNwkChildAgeEnable, []byte{1}); err != nil {
		return fmt.Errorf("controller: enabling child aging: %w", err)
	}

	// Step 9: optional tx power.
	if c.cfg.TxPower != 0 {
		rsp, err := c.session.Request(ctx, &mt.SysSetTxPowerReq{TxPower: c.cfg.TxPower}, c.cfg.SreqTimeout)
		if err != nil {
			return fmt.Errorf("controller: setting tx power: %w", err)
		}
		if status := rsp.(*mt.SysSetTxPowerRsp).Status; !status.OK() {
			return fmt.Errorf("controller: setting tx power: %s", status)
		}
	}

	// Step 10: own device identity.
	devInfo, err := c.session.Request(ctx, &mt.UtilGetDeviceInfoReq{}, c.cfg.SreqTimeout)
	if err != nil {
		return fmt.Errorf("controller: device info: %w", err)
	}
	info := devInfo.(*mt.UtilGetDeviceInfoRsp)
	c.ownNWK = info.ShortAddr
	c.ownIEEE = info.IEEEAddr

	// Step 11: ZDO startup, await the coordinator-started state change.
	if _, err := c.session.RequestCallback(ctx, &mt.ZdoStartupFromAppReq{StartDelay: 0},
		mt.ZdoStateChangeInd{}.Header(), coordinatorStarted, c.cfg.ZdoRequestTimeout); err != nil {
		return fmt.Errorf("controller: ZDO startup: %w", err)
	}

	// Step 12: endpoint reconciliation.
	if err := c.reconcileEndpoints(ctx); err != nil {
		return fmt.Errorf("controller: reconciling endpoints: %w", err)
	}

	// Step 13: kick commissioning, wait for the notification AREQ.
	if _, err := c.session.RequestCallback(ctx, &mt.AppConfigBDBStartCommissioningReq{Mode: types.BDBCommissioningNwkFormation},
		mt.AppConfigBDBCommissioningNotification{}.Header(), znp.Any, c.cfg.ZdoRequestTimeout); err != nil {
		return fmt.Errorf("controller: commissioning: %w", err)
	}

	c.installHooks()
	return nil
}

func coordinatorStarted(cmd mt.Command) bool {
	ind, ok := cmd.(*mt.ZdoStateChangeInd)
	return ok && (ind.State == types.DeviceStateStartedAsCoordinator)
}

// formNetwork clears state, sets the coordinator logical type, writes
// NVRAM, then commissions network formation and steering.
func (c *Controller) formNetwork(ctx context.Context) error {
	if err := c.writeNV(ctx, types.NvLogicalType, []byte{0x00}); err != nil {
		return fmt.Errorf("setting logical type coordinator: %w", err)
	}
	if err := c.writeNV(ctx, types.NvStartupOption, []byte{0x02}); err != nil {
		return fmt.Errorf("clearing startup state: %w", err)
	}
	if err := c.applyNetworkParams(ctx); err != nil {
		return err
	}
	if err := c.writeNV(ctx, types.NvHasConfiguredZStack3, []byte{types.HasConfiguredSentinel}); err != nil {
		return fmt.Errorf("writing HAS_CONFIGURED_ZSTACK3: %w", err)
	}

	if _, err := c.session.RequestCallback(ctx, &mt.AppConfigBDBStartCommissioningReq{Mode: types.BDBCommissioningNwkFormation},
		mt.ZdoStateChangeInd{}.Header(), coordinatorStarted, c.cfg.ZdoRequestTimeout); err != nil {
		return fmt.Errorf("nwk formation commissioning: %w", err)
	}
	if _, err := c.session.Request(ctx, &mt.AppConfigBDBStartCommissioningReq{Mode: types.BDBCommissioningNwkSteering}, c.cfg.SreqTimeout); err != nil {
		return fmt.Errorf("nwk steering commissioning: %w", err)
	}
	return nil
}

// applyNetworkParams pushes the configured channel mask, PAN id,
// extended PAN id and preconfigured key to the coprocessor ahead of
// formation.
func (c *Controller) applyNetworkParams(ctx context.Context) error {
	if rsp, err := c.session.Request(ctx, &mt.UtilSetChannelsReq{Channels: c.cfg.Channels}, c.cfg.SreqTimeout); err != nil {
		return fmt.Errorf("setting channels: %w", err)
	} else if status := rsp.(*mt.UtilSetChannelsRsp).Status; !status.OK() {
		return fmt.Errorf("setting channels: %s", status)
	}
	if c.cfg.PanId != 0 {
		if rsp, err := c.session.Request(ctx, &mt.UtilSetPanIdReq{PanId: c.cfg.PanId}, c.cfg.SreqTimeout); err != nil {
			return fmt.Errorf("setting pan id: %w", err)
		} else if status := rsp.(*mt.UtilSetPanIdRsp).Status; !status.OK() {
			return fmt.Errorf("setting pan id: %s", status)
		}
	}
	if c.cfg.ExtendedPanId != (types.EUI64{}) {
		ext := c.cfg.ExtendedPanId
		if err := c.writeNV(ctx, types.NvExtendedPanId, ext[:]); err != nil {
			return fmt.Errorf("writing extended pan id: %w", err)
		}
	}
	if c.cfg.NetworkKey != (types.KeyData{}) {
		if rsp, err := c.session.Request(ctx, &mt.UtilSetPreConfigKeyReq{Key: c.cfg.NetworkKey}, c.cfg.SreqTimeout); err != nil {
			return fmt.Errorf("setting preconfigured key: %w", err)
		} else if status := rsp.(*mt.UtilSetPreConfigKeyRsp).Status; !status.OK() {
			return fmt.Errorf("setting preconfigured key: %s", status)
		}
		if err := c.writeNV(ctx, types.NvPreCfgKeysEnable, []byte{1}); err != nil {
			return fmt.Errorf("enabling preconfigured keys: %w", err)
		}
	}
	return nil
}

// reconcileEndpoints diffs the endpoints ZDO.ActiveEpReq reports against
// cfg.Endpoints and registers or deletes to match.
func (c *Controller) reconcileEndpoints(ctx context.Context) error {
	active, err := c.session.RequestCallback(ctx, &mt.ZdoActiveEpReq{DstAddr: c.ownNWK, NWKAddrOfInterest: c.ownNWK},
		mt.ZdoActiveEpRspInd{}.Header(), func(cmd mt.Command) bool {
			ind, ok := cmd.(*mt.ZdoActiveEpRspInd)
			return ok && ind.SrcAddr == c.ownNWK
		}, c.cfg.ZdoRequestTimeout)
	if err != nil {
		return fmt.Errorf("active endpoints: %w", err)
	}
	present := map[uint8]bool{}
	for _, ep := range active.(*mt.ZdoActiveEpRspInd).ActiveEndpoints {
		present[ep] = true
	}
	wanted := map[uint8]bool{}
	for _, ep := range c.cfg.Endpoints {
		wanted[ep.Endpoint] = true
		if present[ep.Endpoint] {
			continue
		}
		req := &mt.AfRegisterReq{
			Endpoint:      ep.Endpoint,
			ProfileId:     ep.ProfileId,
			DeviceId:      ep.DeviceId,
			DeviceVersion: ep.DeviceVersion,
		}
		req.InputClusters = append(types.LVList[uint16]{}, ep.InputClusters...)
		req.OutputClusters = append(types.LVList[uint16]{}, ep.OutputClusters...)
		rsp, err := c.session.Request(ctx, req, c.cfg.SreqTimeout)
		if err != nil {
			return fmt.Errorf("registering endpoint %d: %w", ep.Endpoint, err)
		}
		if status := rsp.(*mt.AfRegisterRsp).Status; !status.OK() {
			return fmt.Errorf("registering endpoint %d: %s", ep.Endpoint, status)
		}
	}
	for ep := range present {
		if wanted[ep] {
			continue
		}
		rsp, err := c.session.Request(ctx, &mt.AfDeleteReq{Endpoint: ep}, c.cfg.SreqTimeout)
		if err != nil {
			return fmt.Errorf("deleting endpoint %d: %w", ep, err)
		}
		if status := rsp.(*mt.AfDeleteRsp).Status; !status.OK() {
			return fmt.Errorf("deleting endpoint %d: %s", ep, status)
		}
	}
	return nil
}

// openLink resolves the configured device path (probing candidates when
// it is "auto"), opens the UART, and starts the session's dispatch and
// read-loop goroutines.
func (c *Controller) openLink(ctx context.Context) error {
	path := c.cfg.Device
	if path == "" || path == "auto" {
		found, ok := uart.AutoDetect(c.cfg.DeviceCandidates, c.cfg.BaudRate, c.cfg.SreqTimeout)
		if !ok {
			return fmt.Errorf("controller: no responsive device among candidates")
		}
		path = found
		c.cfg.Device = found
	}

	link, err := uart.Connect(uart.Config{
		Path:           path,
		BaudRate:       c.cfg.BaudRate,
		SkipBootloader: c.cfg.SkipBootloader,
	}, c.log)
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	session := znp.NewSession(link, c.log)

	c.mu.Lock()
	c.link = link
	c.session = session
	c.cancel = cancel
	c.mu.Unlock()

	go session.Run(runCtx)
	go link.ReadLoop(runCtx, session)
	go c.watchSession(runCtx, session)
	return nil
}

func (c *Controller) readNV(ctx context.Context, id types.NvId) ([]byte, error) {
	rsp, err := c.session.Request(ctx, &mt.SysOSALNVReadReq{Id: id}, c.cfg.SreqTimeout)
	if err != nil {
		return nil, err
	}
	r := rsp.(*mt.SysOSALNVReadRsp)
	if !r.Status.OK() {
		return nil, nil
	}
	return r.Value, nil
}

func (c *Controller) writeNV(ctx context.Context, id types.NvId, value []byte) error {
	rsp, err := c.session.Request(ctx, &mt.SysOSALNVWriteReq{Id: id, Value: value}, c.cfg.SreqTimeout)
	if err != nil {
		return err
	}
	if status := rsp.(*mt.SysOSALNVWriteRsp).Status; !status.OK() {
		return fmt.Errorf("nvram write %v: %s", id, status)
	}
	return nil
}

