package controller

import (
	"context"
	"fmt"

	"github.com/gozigbee/znp/mt"
	"github.com/gozigbee/znp/types"
)

// Request sends application data to device. If cluster
// is a ZDO cluster id it is intercepted and sent as the matching
// ZDO.*.Req SREQ; otherwise it goes out as AF.DataRequestExt and is
// correlated with its delivery result via AF.DataConfirm, matched by
// (Endpoint, TSN).
func (c *Controller) Request(ctx context.Context, device types.EUI64, nwk types.NWK, profile, cluster uint16, srcEp, dstEp uint8, seq uint8, data []byte, useIEEE bool) (types.Status, []byte, error) {
	addr := types.AddrModeAddress{Mode: types.AddrModeNWK, NWK: nwk}
	if useIEEE {
		addr = types.AddrModeAddress{Mode: types.AddrModeIEEE, IEEE: device}
	}

	if isZDOCluster(cluster) {
		return c.requestZDO(ctx, nwk, cluster, data)
	}

	req := &mt.AfDataRequestExtReq{
		DstAddr:     addr,
		DstEndpoint: dstEp,
		SrcEndpoint: srcEp,
		ClusterId:   cluster,
		TSN:         seq,
		Options:     0,
		Radius:      0,
		Data:        types.ShortBytes(data),
	}

	match := func(cmd mt.Command) bool {
		confirm, ok := cmd.(*mt.AfDataConfirm)
		return ok && confirm.Endpoint == srcEp && confirm.TSN == seq
	}

	result, err := c.session.RequestCallback(ctx, req, mt.AfDataConfirm{}.Header(), match, c.cfg.ZdoRequestTimeout)
	if err != nil {
		return 0, nil, fmt.Errorf("controller: data request: %w", err)
	}
	confirm := result.(*mt.AfDataConfirm)
	if !confirm.Status.OK() {
		return confirm.Status, nil, ErrDeliveryError
	}
	return confirm.Status, nil, nil
}

// isZDOCluster reports whether cluster looks like a ZDO cluster id
// (0x0000-0x00ff), per the Zigbee cluster library's reserved ZDO range.
func isZDOCluster(cluster uint16) bool { return cluster <= 0x00ff }

// requestZDO intercepts a ZDO request and maps it onto the corresponding
// MT SREQ, awaiting the matching response callback by source NWK address.
// Only the endpoint-discovery cluster is wired end-to-end; other ZDO
// clusters return an error naming the unsupported cluster, since the MT
// catalog built for this repo only covers that one ZDO request/response
// pair.
func (c *Controller) requestZDO(ctx context.Context, nwk types.NWK, cluster uint16, _ []byte) (types.Status, []byte, error) {
	const clusterActiveEpReq = 0x0005
	if cluster != clusterActiveEpReq {
		return 0, nil, fmt.Errorf("controller: unsupported ZDO cluster 0x%04x", cluster)
	}
	match := func(cmd mt.Command) bool {
		ind, ok := cmd.(*mt.ZdoActiveEpRspInd)
		return ok && ind.SrcAddr == nwk
	}
	result, err := c.session.RequestCallback(ctx, &mt.ZdoActiveEpReq{DstAddr: nwk, NWKAddrOfInterest: nwk},
		mt.ZdoActiveEpRspInd{}.Header(), match, c.cfg.ZdoRequestTimeout)
	if err != nil {
		return 0, nil, fmt.Errorf("controller: ZDO active endpoints: %w", err)
	}
	ind := result.(*mt.ZdoActiveEpRspInd)
	if !ind.Status.OK() {
		return ind.Status, nil, ErrDeliveryError
	}
	out := make([]byte, len(ind.ActiveEndpoints))
	copy(out, ind.ActiveEndpoints)
	return ind.Status, out, nil
}

// zdoClusterMgmtPermitJoin is the Mgmt_Permit_Joining_req ZDO cluster id.
// It is broadcast directly via AF.DataRequestExt rather than intercepted
// by requestZDO, since every router on the network (not just the
// coprocessor itself) needs to see it.
const zdoClusterMgmtPermitJoin = 0x0036

// broadcastPermitJoin sends the ZDO Mgmt_Permit_Joining_req as a raw
// AF.DataRequestExt broadcast to endpoint 0 and awaits its delivery
// confirm, so routers open their own joining window before the
// coprocessor's local ZDO.MgmtPermitJoinReq is issued.
func (c *Controller) broadcastPermitJoin(ctx context.Context, dst types.NWK, seconds uint8) error {
	tsn := c.nextTSN()
	w := types.NewWriter()
	w.Uint8(tsn)
	w.Uint8(seconds)
	w.Uint8(1) // TC_Significance

	req := &mt.AfDataRequestExtReq{
		DstAddr:     types.AddrModeAddress{Mode: types.AddrModeNWK, NWK: dst},
		DstEndpoint: 0,
		SrcEndpoint: 0,
		ClusterId:   zdoClusterMgmtPermitJoin,
		TSN:         tsn,
		Data:        types.ShortBytes(w.Bytes()),
	}
	match := func(cmd mt.Command) bool {
		confirm, ok := cmd.(*mt.AfDataConfirm)
		return ok && confirm.Endpoint == 0 && confirm.TSN == tsn
	}
	result, err := c.session.RequestCallback(ctx, req, mt.AfDataConfirm{}.Header(), match, c.cfg.ZdoRequestTimeout)
	if err != nil {
		return fmt.Errorf("controller: permit join broadcast: %w", err)
	}
	if status := result.(*mt.AfDataConfirm).Status; !status.OK() {
		return fmt.Errorf("controller: permit join broadcast: %s", status)
	}
	return nil
}

// Permit opens the network to joining for seconds: first sending the ZDO
// permit-join request to node, or broadcasting it to every router when
// node is 0, then issuing the coprocessor's
// own ZDO.MgmtPermitJoinReq and awaiting its management response.
func (c *Controller) Permit(ctx context.Context, seconds uint8, node types.NWK) error {
	dst := types.NWK(0xfffc) // all routers and coordinator broadcast
	if node != 0 {
		dst = node
	}

	if err := c.broadcastPermitJoin(ctx, dst, seconds); err != nil {
		return err
	}

	match := func(cmd mt.Command) bool {
		_, ok := cmd.(*mt.ZdoMgmtPermitJoinRspInd)
		return ok
	}
	result, err := c.session.RequestCallback(ctx, &mt.ZdoMgmtPermitJoinReq{
		AddrMode:       uint8(types.AddrModeNWK),
		DstAddr:        dst,
		Duration:       seconds,
		TCSignificance: 1,
	}, mt.ZdoMgmtPermitJoinRspInd{}.Header(), match, c.cfg.SreqTimeout)
	if err != nil {
		return fmt.Errorf("controller: permit join: %w", err)
	}
	if status := result.(*mt.ZdoMgmtPermitJoinRspInd).Status; !status.OK() {
		return fmt.Errorf("controller: permit join: %s", status)
	}
	return nil
}

// Remove force-removes a device from the network: try a
// device-initiated leave first, then fall back to a coordinator-initiated
// removal if that fails. Remove does not touch the caller's device table
// and calls no Hooks method, whatever the outcome.
func (c *Controller) Remove(ctx context.Context, nwk types.NWK, ieee types.EUI64) error {
	leave := func(dst types.NWK) (types.Status, error) {
		rsp, err := c.session.Request(ctx, &mt.ZdoMgmtLeaveReq{DstAddr: dst, DeviceAddr: ieee}, c.cfg.SreqTimeout)
		if err != nil {
			return 0, err
		}
		return rsp.(*mt.ZdoMgmtLeaveRsp).Status, nil
	}
	status, err := leave(nwk)
	if err == nil && status.OK() {
		return nil
	}
	status, err = leave(0x0000)
	if err != nil {
		return fmt.Errorf("controller: force remove: %w", err)
	}
	if !status.OK() {
		return fmt.Errorf("controller: force remove: %s", status)
	}
	return nil
}
