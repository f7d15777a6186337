package mt

import "github.com/gozigbee/znp/types"

// UtilGetDeviceInfoReq requests the coprocessor's own device identity
// [UTIL.GetDeviceInfo].
type UtilGetDeviceInfoReq struct{}

func (UtilGetDeviceInfoReq) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemUTIL, types.CommandTypeSREQ, 0x00)
}
func (UtilGetDeviceInfoReq) Encode(*types.Writer)          {}
func (*UtilGetDeviceInfoReq) Decode(r *types.Reader) error { return nil }

// UtilGetDeviceInfoRsp is the SRSP to UtilGetDeviceInfoReq.
type UtilGetDeviceInfoRsp struct {
	Status       types.Status
	IEEEAddr     types.EUI64
	ShortAddr    types.NWK
	DeviceType   uint8
	DeviceState  types.DeviceState
	AssocDevices types.LVList[uint16]
}

func (UtilGetDeviceInfoRsp) Header() types.CommandHeader { return UtilGetDeviceInfoReq{}.Header().Rsp() }
func (c UtilGetDeviceInfoRsp) Encode(w *types.Writer) {
	w.Uint8(uint8(c.Status))
	w.AppendEUI64(c.IEEEAddr)
	w.Uint16(uint16(c.ShortAddr))
	w.Uint8(c.DeviceType)
	w.Uint8(uint8(c.DeviceState))
	_ = types.AppendLVList(w, c.AssocDevices)
}
func (c *UtilGetDeviceInfoRsp) Decode(r *types.Reader) error {
	s, err := r.Uint8()
	if err != nil {
		return err
	}
	c.Status = types.Status(s)
	if c.IEEEAddr, err = r.DecodeEUI64(); err != nil {
		return err
	}
	short, err := r.Uint16()
	if err != nil {
		return err
	}
	c.ShortAddr = types.NWK(short)
	if c.DeviceType, err = r.Uint8(); err != nil {
		return err
	}
	st, err := r.Uint8()
	if err != nil {
		return err
	}
	c.DeviceState = types.DeviceState(st)
	c.AssocDevices, err = types.DecodeLVList[uint16](r)
	return err
}

// UtilSetChannelsReq restricts the coprocessor to a channel mask before
// network formation [UTIL.SetChannels]. Most Z-Stack builds apply this via
// the NIB rather than a dedicated SREQ; it is kept here so the controller's
// network-update sequencer has a single call site regardless of which
// underlying mechanism a given stack build exposes.
type UtilSetChannelsReq struct {
	Channels types.Channels
}

func (UtilSetChannelsReq) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemUTIL, types.CommandTypeSREQ, 0x10)
}
func (c UtilSetChannelsReq) Encode(w *types.Writer) { w.Uint32(uint32(c.Channels)) }
func (c *UtilSetChannelsReq) Decode(r *types.Reader) error {
	v, err := r.Uint32()
	c.Channels = types.Channels(v)
	return err
}

// UtilSetChannelsRsp is the SRSP to UtilSetChannelsReq.
type UtilSetChannelsRsp struct{ Status types.Status }

func (UtilSetChannelsRsp) Header() types.CommandHeader { return UtilSetChannelsReq{}.Header().Rsp() }
func (c UtilSetChannelsRsp) Encode(w *types.Writer)      { w.Uint8(uint8(c.Status)) }
func (c *UtilSetChannelsRsp) Decode(r *types.Reader) error {
	v, err := r.Uint8()
	c.Status = types.Status(v)
	return err
}

// UtilSetPanIdReq forces the coprocessor's PAN ID ahead of network formation
// [UTIL.SetPanId].
type UtilSetPanIdReq struct{ PanId types.PanId }

func (UtilSetPanIdReq) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemUTIL, types.CommandTypeSREQ, 0x11)
}
func (c UtilSetPanIdReq) Encode(w *types.Writer) { w.Uint16(uint16(c.PanId)) }
func (c *UtilSetPanIdReq) Decode(r *types.Reader) error {
	v, err := r.Uint16()
	c.PanId = types.PanId(v)
	return err
}

// UtilSetPanIdRsp is the SRSP to UtilSetPanIdReq.
type UtilSetPanIdRsp struct{ Status types.Status }

func (UtilSetPanIdRsp) Header() types.CommandHeader { return UtilSetPanIdReq{}.Header().Rsp() }
func (c UtilSetPanIdRsp) Encode(w *types.Writer)      { w.Uint8(uint8(c.Status)) }
func (c *UtilSetPanIdRsp) Decode(r *types.Reader) error {
	v, err := r.Uint8()
	c.Status = types.Status(v)
	return err
}

// UtilSetPreConfigKeyReq installs the network's preconfigured trust center
// link key [UTIL.SetPreConfigKey].
type UtilSetPreConfigKeyReq struct{ Key types.KeyData }

func (UtilSetPreConfigKeyReq) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemUTIL, types.CommandTypeSREQ, 0x05)
}
func (c UtilSetPreConfigKeyReq) Encode(w *types.Writer) { w.AppendKeyData(c.Key) }
func (c *UtilSetPreConfigKeyReq) Decode(r *types.Reader) error {
	v, err := r.DecodeKeyData()
	c.Key = v
	return err
}

// UtilSetPreConfigKeyRsp is the SRSP to UtilSetPreConfigKeyReq.
type UtilSetPreConfigKeyRsp struct{ Status types.Status }

func (UtilSetPreConfigKeyRsp) Header() types.CommandHeader { return UtilSetPreConfigKeyReq{}.Header().Rsp() }
func (c UtilSetPreConfigKeyRsp) Encode(w *types.Writer)      { w.Uint8(uint8(c.Status)) }
func (c *UtilSetPreConfigKeyRsp) Decode(r *types.Reader) error {
	v, err := r.Uint8()
	c.Status = types.Status(v)
	return err
}

func init() {
	Register(UtilGetDeviceInfoReq{}.Header(), func() Command { return &UtilGetDeviceInfoReq{} })
	Register(UtilGetDeviceInfoRsp{}.Header(), func() Command { return &UtilGetDeviceInfoRsp{} })
	Register(UtilSetChannelsReq{}.Header(), func() Command { return &UtilSetChannelsReq{} })
	Register(UtilSetChannelsRsp{}.Header(), func() Command { return &UtilSetChannelsRsp{} })
	Register(UtilSetPanIdReq{}.Header(), func() Command { return &UtilSetPanIdReq{} })
	Register(UtilSetPanIdRsp{}.Header(), func() Command { return &UtilSetPanIdRsp{} })
	Register(UtilSetPreConfigKeyReq{}.Header(), func() Command { return &UtilSetPreConfigKeyReq{} })
	Register(UtilSetPreConfigKeyRsp{}.Header(), func() Command { return &UtilSetPreConfigKeyRsp{} })
}
