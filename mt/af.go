package mt

import "github.com/gozigbee/znp/types"

// AfRegisterReq registers an application endpoint [AF.Register].
type AfRegisterReq struct {
	Endpoint       uint8
	ProfileId      uint16
	DeviceId       uint16
	DeviceVersion  uint8
	LatencyReq     uint8
	InputClusters  types.LVList[uint16]
	OutputClusters types.LVList[uint16]
}

func (AfRegisterReq) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemAF, types.CommandTypeSREQ, 0x00)
}
func (c AfRegisterReq) Encode(w *types.Writer) {
	w.Uint8(c.Endpoint)
	w.Uint16(c.ProfileId)
	w.Uint16(c.DeviceId)
	w.Uint8(c.DeviceVersion)
	w.Uint8(c.LatencyReq)
	_ = types.AppendLVList(w, c.InputClusters)
	_ = types.AppendLVList(w, c.OutputClusters)
}
func (c *AfRegisterReq) Decode(r *types.Reader) error {
	var err error
	if c.Endpoint, err = r.Uint8(); err != nil {
		return err
	}
	if c.ProfileId, err = r.Uint16(); err != nil {
		return err
	}
	if c.DeviceId, err = r.Uint16(); err != nil {
		return err
	}
	if c.DeviceVersion, err = r.Uint8(); err != nil {
		return err
	}
	if c.LatencyReq, err = r.Uint8(); err != nil {
		return err
	}
	if c.InputClusters, err = types.DecodeLVList[uint16](r); err != nil {
		return err
	}
	c.OutputClusters, err = types.DecodeLVList[uint16](r)
	return err
}

// AfRegisterRsp is the SRSP to AfRegisterReq.
type AfRegisterRsp struct{ Status types.Status }

func (AfRegisterRsp) Header() types.CommandHeader { return AfRegisterReq{}.Header().Rsp() }
func (c AfRegisterRsp) Encode(w *types.Writer)      { w.Uint8(uint8(c.Status)) }
func (c *AfRegisterRsp) Decode(r *types.Reader) error {
	v, err := r.Uint8()
	c.Status = types.Status(v)
	return err
}

// AfDeleteReq removes a previously registered endpoint [AF.Delete].
type AfDeleteReq struct{ Endpoint uint8 }

func (AfDeleteReq) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemAF, types.CommandTypeSREQ, 0x03)
}
func (c AfDeleteReq) Encode(w *types.Writer) { w.Uint8(c.Endpoint) }
func (c *AfDeleteReq) Decode(r *types.Reader) error {
	v, err := r.Uint8()
	c.Endpoint = v
	return err
}

// AfDeleteRsp is the SRSP to AfDeleteReq.
type AfDeleteRsp struct{ Status types.Status }

func (AfDeleteRsp) Header() types.CommandHeader { return AfDeleteReq{}.Header().Rsp() }
func (c AfDeleteRsp) Encode(w *types.Writer)      { w.Uint8(uint8(c.Status)) }
func (c *AfDeleteRsp) Decode(r *types.Reader) error {
	v, err := r.Uint8()
	c.Status = types.Status(v)
	return err
}

// AfDataRequestExtReq sends application data [AF.DataRequestExt].
type AfDataRequestExtReq struct {
	DstAddr     types.AddrModeAddress
	DstEndpoint uint8
	DstPanId    types.PanId
	SrcEndpoint uint8
	ClusterId   uint16
	TSN         uint8
	Options     uint8
	Radius      uint8
	Data        types.ShortBytes
}

func (AfDataRequestExtReq) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemAF, types.CommandTypeSREQ, 0x02)
}
func (c AfDataRequestExtReq) Encode(w *types.Writer) {
	c.DstAddr.Append(w)
	w.Uint8(c.DstEndpoint)
	w.Uint16(uint16(c.DstPanId))
	w.Uint8(c.SrcEndpoint)
	w.Uint16(c.ClusterId)
	w.Uint8(c.TSN)
	w.Uint8(c.Options)
	w.Uint8(c.Radius)
	_ = w.ShortBytes(c.Data)
}
func (c *AfDataRequestExtReq) Decode(r *types.Reader) error {
	addr, err := types.DecodeAddrModeAddress(r)
	if err != nil {
		return err
	}
	c.DstAddr = addr
	if c.DstEndpoint, err = r.Uint8(); err != nil {
		return err
	}
	pan, err := r.Uint16()
	if err != nil {
		return err
	}
	c.DstPanId = types.PanId(pan)
	if c.SrcEndpoint, err = r.Uint8(); err != nil {
		return err
	}
	if c.ClusterId, err = r.Uint16(); err != nil {
		return err
	}
	if c.TSN, err = r.Uint8(); err != nil {
		return err
	}
	if c.Options, err = r.Uint8(); err != nil {
		return err
	}
	if c.Radius, err = r.Uint8(); err != nil {
		return err
	}
	c.Data, err = r.ShortBytes()
	return err
}

// AfDataRequestExtRsp is the SRSP to AfDataRequestExtReq; it only
// acknowledges that the request was queued — the actual delivery result
// arrives later as AfDataConfirm.
type AfDataRequestExtRsp struct{ Status types.Status }

func (AfDataRequestExtRsp) Header() types.CommandHeader { return AfDataRequestExtReq{}.Header().Rsp() }
func (c AfDataRequestExtRsp) Encode(w *types.Writer)      { w.Uint8(uint8(c.Status)) }
func (c *AfDataRequestExtRsp) Decode(r *types.Reader) error {
	v, err := r.Uint8()
	c.Status = types.Status(v)
	return err
}

// AfDataConfirm is the AREQ callback correlating a data request with its
// delivery result, matched by (Endpoint, TSN).
type AfDataConfirm struct {
	Status   types.Status
	Endpoint uint8
	TSN      uint8
}

func (AfDataConfirm) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemAF, types.CommandTypeAREQ, 0x80)
}
func (c AfDataConfirm) Encode(w *types.Writer) {
	w.Uint8(uint8(c.Status))
	w.Uint8(c.Endpoint)
	w.Uint8(c.TSN)
}
func (c *AfDataConfirm) Decode(r *types.Reader) error {
	var err error
	var v uint8
	if v, err = r.Uint8(); err != nil {
		return err
	}
	c.Status = types.Status(v)
	if c.Endpoint, err = r.Uint8(); err != nil {
		return err
	}
	c.TSN, err = r.Uint8()
	return err
}

// AfIncomingMsg is the AREQ callback delivering an inbound application
// message [AF.IncomingMsg], projected onto the caller's HandleMessage hook.
type AfIncomingMsg struct {
	GroupId      uint16
	ClusterId    uint16
	SrcAddr      types.NWK
	SrcEndpoint  uint8
	DstEndpoint  uint8
	WasBroadcast bool
	LinkQuality  uint8
	SecurityUse  bool
	Timestamp    uint32
	TSN          uint8
	Data         types.ShortBytes
}

func (AfIncomingMsg) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemAF, types.CommandTypeAREQ, 0x81)
}
func (c AfIncomingMsg) Encode(w *types.Writer) {
	w.Uint16(c.GroupId)
	w.Uint16(c.ClusterId)
	w.Uint16(uint16(c.SrcAddr))
	w.Uint8(c.SrcEndpoint)
	w.Uint8(c.DstEndpoint)
	w.Bool(c.WasBroadcast)
	w.Uint8(c.LinkQuality)
	w.Bool(c.SecurityUse)
	w.Uint32(c.Timestamp)
	w.Uint8(c.TSN)
	_ = w.ShortBytes(c.Data)
}
func (c *AfIncomingMsg) Decode(r *types.Reader) error {
	var err error
	if c.GroupId, err = r.Uint16(); err != nil {
		return err
	}
	if c.ClusterId, err = r.Uint16(); err != nil {
		return err
	}
	src, err := r.Uint16()
	if err != nil {
		return err
	}
	c.SrcAddr = types.NWK(src)
	if c.SrcEndpoint, err = r.Uint8(); err != nil {
		return err
	}
	if c.DstEndpoint, err = r.Uint8(); err != nil {
		return err
	}
	if c.WasBroadcast, err = r.Bool(); err != nil {
		return err
	}
	if c.LinkQuality, err = r.Uint8(); err != nil {
		return err
	}
	if c.SecurityUse, err = r.Bool(); err != nil {
		return err
	}
	if c.Timestamp, err = r.Uint32(); err != nil {
		return err
	}
	if c.TSN, err = r.Uint8(); err != nil {
		return err
	}
	c.Data, err = r.ShortBytes()
	return err
}

func init() {
	Register(AfRegisterReq{}.Header(), func() Command { return &AfRegisterReq{} })
	Register(AfRegisterRsp{}.Header(), func() Command { return &AfRegisterRsp{} })
	Register(AfDeleteReq{}.Header(), func() Command { return &AfDeleteReq{} })
	Register(AfDeleteRsp{}.Header(), func() Command { return &AfDeleteRsp{} })
	Register(AfDataRequestExtReq{}.Header(), func() Command { return &AfDataRequestExtReq{} })
	Register(AfDataRequestExtRsp{}.Header(), func() Command { return &AfDataRequestExtRsp{} })
	Register(AfDataConfirm{}.Header(), func() Command { return &AfDataConfirm{} })
	Register(AfIncomingMsg{}.Header(), func() Command { return &AfIncomingMsg{} })
}
