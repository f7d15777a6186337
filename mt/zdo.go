package mt

import "github.com/gozigbee/znp/types"

// ZdoStartupFromAppReq kicks the ZDO network layer into its startup
// sequence [ZDO.StartupFromApp].
type ZdoStartupFromAppReq struct {
	StartDelay uint16
}

func (ZdoStartupFromAppReq) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemZDO, types.CommandTypeSREQ, 0x40)
}
func (c ZdoStartupFromAppReq) Encode(w *types.Writer) { w.Uint16(c.StartDelay) }
func (c *ZdoStartupFromAppReq) Decode(r *types.Reader) error {
	v, err := r.Uint16()
	c.StartDelay = v
	return err
}

// ZdoStartupFromAppRsp is the SRSP to ZdoStartupFromAppReq.
type ZdoStartupFromAppRsp struct{ Status types.Status }

func (ZdoStartupFromAppRsp) Header() types.CommandHeader { return ZdoStartupFromAppReq{}.Header().Rsp() }
func (c ZdoStartupFromAppRsp) Encode(w *types.Writer)      { w.Uint8(uint8(c.Status)) }
func (c *ZdoStartupFromAppRsp) Decode(r *types.Reader) error {
	v, err := r.Uint8()
	c.Status = types.Status(v)
	return err
}

// ZdoStateChangeInd is the AREQ callback reporting the device's current
// network participation state [ZDO.StateChangeInd].
type ZdoStateChangeInd struct {
	State types.DeviceState
}

func (ZdoStateChangeInd) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemZDO, types.CommandTypeAREQ, 0xc0)
}
func (c ZdoStateChangeInd) Encode(w *types.Writer) { w.Uint8(uint8(c.State)) }
func (c *ZdoStateChangeInd) Decode(r *types.Reader) error {
	v, err := r.Uint8()
	c.State = types.DeviceState(v)
	return err
}

// ZdoActiveEpReq asks for the active endpoint list of a device
// [ZDO.ActiveEpReq].
type ZdoActiveEpReq struct {
	DstAddr      types.NWK
	NWKAddrOfInterest types.NWK
}

func (ZdoActiveEpReq) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemZDO, types.CommandTypeSREQ, 0x05)
}
func (c ZdoActiveEpReq) Encode(w *types.Writer) {
	w.Uint16(uint16(c.DstAddr))
	w.Uint16(uint16(c.NWKAddrOfInterest))
}
func (c *ZdoActiveEpReq) Decode(r *types.Reader) error {
	a, err := r.Uint16()
	if err != nil {
		return err
	}
	c.DstAddr = types.NWK(a)
	b, err := r.Uint16()
	c.NWKAddrOfInterest = types.NWK(b)
	return err
}

// ZdoActiveEpRsp is the SRSP to ZdoActiveEpReq (only acknowledges the
// request was accepted).
type ZdoActiveEpRsp struct{ Status types.Status }

func (ZdoActiveEpRsp) Header() types.CommandHeader { return ZdoActiveEpReq{}.Header().Rsp() }
func (c ZdoActiveEpRsp) Encode(w *types.Writer)      { w.Uint8(uint8(c.Status)) }
func (c *ZdoActiveEpRsp) Decode(r *types.Reader) error {
	v, err := r.Uint8()
	c.Status = types.Status(v)
	return err
}

// ZdoActiveEpRspInd is the AREQ callback carrying the actual active
// endpoint list [ZDO.ActiveEpRsp], matched by SrcAddr.
type ZdoActiveEpRspInd struct {
	SrcAddr  types.NWK
	Status   types.Status
	NWKAddr  types.NWK
	ActiveEndpoints types.LVList[uint8]
}

func (ZdoActiveEpRspInd) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemZDO, types.CommandTypeAREQ, 0x85)
}
func (c ZdoActiveEpRspInd) Encode(w *types.Writer) {
	w.Uint16(uint16(c.SrcAddr))
	w.Uint8(uint8(c.Status))
	w.Uint16(uint16(c.NWKAddr))
	_ = types.AppendLVList(w, c.ActiveEndpoints)
}
func (c *ZdoActiveEpRspInd) Decode(r *types.Reader) error {
	src, err := r.Uint16()
	if err != nil {
		return err
	}
	c.SrcAddr = types.NWK(src)
	status, err := r.Uint8()
	if err != nil {
		return err
	}
	c.Status = types.Status(status)
	nwk, err := r.Uint16()
	if err != nil {
		return err
	}
	c.NWKAddr = types.NWK(nwk)
	c.ActiveEndpoints, err = types.DecodeLVList[uint8](r)
	return err
}

// ZdoMgmtPermitJoinReq opens or closes the network to joining
// [ZDO.MgmtPermitJoinReq].
type ZdoMgmtPermitJoinReq struct {
	AddrMode       uint8
	DstAddr        types.NWK
	Duration       uint8
	TCSignificance uint8
}

func (ZdoMgmtPermitJoinReq) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemZDO, types.CommandTypeSREQ, 0x36)
}
func (c ZdoMgmtPermitJoinReq) Encode(w *types.Writer) {
	w.Uint8(c.AddrMode)
	w.Uint16(uint16(c.DstAddr))
	w.Uint8(c.Duration)
	w.Uint8(c.TCSignificance)
}
func (c *ZdoMgmtPermitJoinReq) Decode(r *types.Reader) error {
	var err error
	if c.AddrMode, err = r.Uint8(); err != nil {
		return err
	}
	a, err := r.Uint16()
	if err != nil {
		return err
	}
	c.DstAddr = types.NWK(a)
	if c.Duration, err = r.Uint8(); err != nil {
		return err
	}
	c.TCSignificance, err = r.Uint8()
	return err
}

// ZdoMgmtPermitJoinRsp is the SRSP to ZdoMgmtPermitJoinReq.
type ZdoMgmtPermitJoinRsp struct{ Status types.Status }

func (ZdoMgmtPermitJoinRsp) Header() types.CommandHeader { return ZdoMgmtPermitJoinReq{}.Header().Rsp() }
func (c ZdoMgmtPermitJoinRsp) Encode(w *types.Writer)      { w.Uint8(uint8(c.Status)) }
func (c *ZdoMgmtPermitJoinRsp) Decode(r *types.Reader) error {
	v, err := r.Uint8()
	c.Status = types.Status(v)
	return err
}

// ZdoMgmtPermitJoinRspInd is the AREQ callback confirming the network-wide
// permit-join result [ZDO.MgmtPermitJoinRsp]. SrcAddr reports the
// responding node's own address, not the broadcast/target address the
// request was sent to, so callers awaiting this callback must not filter
// on it.
type ZdoMgmtPermitJoinRspInd struct {
	SrcAddr types.NWK
	Status  types.Status
}

func (ZdoMgmtPermitJoinRspInd) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemZDO, types.CommandTypeAREQ, 0xb6)
}
func (c ZdoMgmtPermitJoinRspInd) Encode(w *types.Writer) {
	w.Uint16(uint16(c.SrcAddr))
	w.Uint8(uint8(c.Status))
}
func (c *ZdoMgmtPermitJoinRspInd) Decode(r *types.Reader) error {
	a, err := r.Uint16()
	if err != nil {
		return err
	}
	c.SrcAddr = types.NWK(a)
	s, err := r.Uint8()
	c.Status = types.Status(s)
	return err
}

// ZdoMgmtLeaveReq requests a device be removed from the network
// [ZDO.MgmtLeaveReq].
type ZdoMgmtLeaveReq struct {
	DstAddr               types.NWK
	DeviceAddr            types.EUI64
	RemoveChildrenRejoin  uint8
}

func (ZdoMgmtLeaveReq) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemZDO, types.CommandTypeSREQ, 0x34)
}
func (c ZdoMgmtLeaveReq) Encode(w *types.Writer) {
	w.Uint16(uint16(c.DstAddr))
	w.AppendEUI64(c.DeviceAddr)
	w.Uint8(c.RemoveChildrenRejoin)
}
func (c *ZdoMgmtLeaveReq) Decode(r *types.Reader) error {
	a, err := r.Uint16()
	if err != nil {
		return err
	}
	c.DstAddr = types.NWK(a)
	if c.DeviceAddr, err = r.DecodeEUI64(); err != nil {
		return err
	}
	c.RemoveChildrenRejoin, err = r.Uint8()
	return err
}

// ZdoMgmtLeaveRsp is the SRSP to ZdoMgmtLeaveReq.
type ZdoMgmtLeaveRsp struct{ Status types.Status }

func (ZdoMgmtLeaveRsp) Header() types.CommandHeader { return ZdoMgmtLeaveReq{}.Header().Rsp() }
func (c ZdoMgmtLeaveRsp) Encode(w *types.Writer)      { w.Uint8(uint8(c.Status)) }
func (c *ZdoMgmtLeaveRsp) Decode(r *types.Reader) error {
	v, err := r.Uint8()
	c.Status = types.Status(v)
	return err
}

// ZdoMgmtLeaveRspInd is the AREQ callback carrying the leave result
// [ZDO.MgmtLeaveRsp], matched by SrcAddr.
type ZdoMgmtLeaveRspInd struct {
	SrcAddr types.NWK
	Status  types.Status
}

func (ZdoMgmtLeaveRspInd) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemZDO, types.CommandTypeAREQ, 0xb4)
}
func (c ZdoMgmtLeaveRspInd) Encode(w *types.Writer) {
	w.Uint16(uint16(c.SrcAddr))
	w.Uint8(uint8(c.Status))
}
func (c *ZdoMgmtLeaveRspInd) Decode(r *types.Reader) error {
	a, err := r.Uint16()
	if err != nil {
		return err
	}
	c.SrcAddr = types.NWK(a)
	s, err := r.Uint8()
	c.Status = types.Status(s)
	return err
}

// ZdoEndDeviceAnnceInd is the AREQ callback announcing a device joined the
// network [ZDO.EndDeviceAnnceInd], projected onto HandleJoin.
type ZdoEndDeviceAnnceInd struct {
	SrcAddr      types.NWK
	NWKAddr      types.NWK
	IEEEAddr     types.EUI64
	Capabilities uint8
}

func (ZdoEndDeviceAnnceInd) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemZDO, types.CommandTypeAREQ, 0xc1)
}
func (c ZdoEndDeviceAnnceInd) Encode(w *types.Writer) {
	w.Uint16(uint16(c.SrcAddr))
	w.Uint16(uint16(c.NWKAddr))
	w.AppendEUI64(c.IEEEAddr)
	w.Uint8(c.Capabilities)
}
func (c *ZdoEndDeviceAnnceInd) Decode(r *types.Reader) error {
	s, err := r.Uint16()
	if err != nil {
		return err
	}
	c.SrcAddr = types.NWK(s)
	n, err := r.Uint16()
	if err != nil {
		return err
	}
	c.NWKAddr = types.NWK(n)
	if c.IEEEAddr, err = r.DecodeEUI64(); err != nil {
		return err
	}
	c.Capabilities, err = r.Uint8()
	return err
}

// ZdoTCDevInd is the AREQ callback reporting a device joined via the Trust
// Center [ZDO.TCDevInd].
type ZdoTCDevInd struct {
	SrcNwk   types.NWK
	SrcIEEE  types.EUI64
	ParentNwk types.NWK
}

func (ZdoTCDevInd) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemZDO, types.CommandTypeAREQ, 0xca)
}
func (c ZdoTCDevInd) Encode(w *types.Writer) {
	w.Uint16(uint16(c.SrcNwk))
	w.AppendEUI64(c.SrcIEEE)
	w.Uint16(uint16(c.ParentNwk))
}
func (c *ZdoTCDevInd) Decode(r *types.Reader) error {
	s, err := r.Uint16()
	if err != nil {
		return err
	}
	c.SrcNwk = types.NWK(s)
	if c.SrcIEEE, err = r.DecodeEUI64(); err != nil {
		return err
	}
	p, err := r.Uint16()
	c.ParentNwk = types.NWK(p)
	return err
}

// ZdoLeaveInd is the AREQ callback reporting a device left the network
// [ZDO.LeaveInd], projected onto HandleLeave.
type ZdoLeaveInd struct {
	SrcAddr types.NWK
	ExtAddr types.EUI64
	Request bool
	Remove  bool
	Rejoin  bool
}

func (ZdoLeaveInd) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemZDO, types.CommandTypeAREQ, 0xc9)
}
func (c ZdoLeaveInd) Encode(w *types.Writer) {
	w.Uint16(uint16(c.SrcAddr))
	w.AppendEUI64(c.ExtAddr)
	w.Bool(c.Request)
	w.Bool(c.Remove)
	w.Bool(c.Rejoin)
}
func (c *ZdoLeaveInd) Decode(r *types.Reader) error {
	s, err := r.Uint16()
	if err != nil {
		return err
	}
	c.SrcAddr = types.NWK(s)
	if c.ExtAddr, err = r.DecodeEUI64(); err != nil {
		return err
	}
	if c.Request, err = r.Bool(); err != nil {
		return err
	}
	if c.Remove, err = r.Bool(); err != nil {
		return err
	}
	c.Rejoin, err = r.Bool()
	return err
}

// ZdoSrcRtgInd is the AREQ callback reporting the source-route relay list
// for a packet [ZDO.SrcRtgInd], projected onto HandleRelays.
type ZdoSrcRtgInd struct {
	DstAddr    types.NWK
	RelayList  types.LVList[uint16]
}

func (ZdoSrcRtgInd) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemZDO, types.CommandTypeAREQ, 0xc4)
}
func (c ZdoSrcRtgInd) Encode(w *types.Writer) {
	w.Uint16(uint16(c.DstAddr))
	_ = types.AppendLVList(w, c.RelayList)
}
func (c *ZdoSrcRtgInd) Decode(r *types.Reader) error {
	a, err := r.Uint16()
	if err != nil {
		return err
	}
	c.DstAddr = types.NWK(a)
	c.RelayList, err = types.DecodeLVList[uint16](r)
	return err
}

func init() {
	Register(ZdoStartupFromAppReq{}.Header(), func() Command { return &ZdoStartupFromAppReq{} })
	Register(ZdoStartupFromAppRsp{}.Header(), func() Command { return &ZdoStartupFromAppRsp{} })
	Register(ZdoStateChangeInd{}.Header(), func() Command { return &ZdoStateChangeInd{} })
	Register(ZdoActiveEpReq{}.Header(), func() Command { return &ZdoActiveEpReq{} })
	Register(ZdoActiveEpRsp{}.Header(), func() Command { return &ZdoActiveEpRsp{} })
	Register(ZdoActiveEpRspInd{}.Header(), func() Command { return &ZdoActiveEpRspInd{} })
	Register(ZdoMgmtPermitJoinReq{}.Header(), func() Command { return &ZdoMgmtPermitJoinReq{} })
	Register(ZdoMgmtPermitJoinRsp{}.Header(), func() Command { return &ZdoMgmtPermitJoinRsp{} })
	Register(ZdoMgmtPermitJoinRspInd{}.Header(), func() Command { return &ZdoMgmtPermitJoinRspInd{} })
	Register(ZdoMgmtLeaveReq{}.Header(), func() Command { return &ZdoMgmtLeaveReq{} })
	Register(ZdoMgmtLeaveRsp{}.Header(), func() Command { return &ZdoMgmtLeaveRsp{} })
	Register(ZdoMgmtLeaveRspInd{}.Header(), func() Command { return &ZdoMgmtLeaveRspInd{} })
	Register(ZdoEndDeviceAnnceInd{}.Header(), func() Command { return &ZdoEndDeviceAnnceInd{} })
	Register(ZdoTCDevInd{}.Header(), func() Command { return &ZdoTCDevInd{} })
	Register(ZdoLeaveInd{}.Header(), func() Command { return &ZdoLeaveInd{} })
	Register(ZdoSrcRtgInd{}.Header(), func() Command { return &ZdoSrcRtgInd{} })
}
