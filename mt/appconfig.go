package mt

import "github.com/gozigbee/znp/types"

// AppConfigBDBSetChannelReq sets the primary or secondary BDB channel mask
// ahead of commissioning [APPConfig.BDBSetChannel].
type AppConfigBDBSetChannelReq struct {
	IsPrimary bool
	Channel   types.Channels
}

func (AppConfigBDBSetChannelReq) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemAPPConfig, types.CommandTypeSREQ, 0x08)
}
func (c AppConfigBDBSetChannelReq) Encode(w *types.Writer) {
	w.Bool(c.IsPrimary)
	w.Uint32(uint32(c.Channel))
}
func (c *AppConfigBDBSetChannelReq) Decode(r *types.Reader) error {
	v, err := r.Bool()
	if err != nil {
		return err
	}
	c.IsPrimary = v
	ch, err := r.Uint32()
	c.Channel = types.Channels(ch)
	return err
}

// AppConfigBDBSetChannelRsp is the SRSP to AppConfigBDBSetChannelReq.
type AppConfigBDBSetChannelRsp struct{ Status types.Status }

func (AppConfigBDBSetChannelRsp) Header() types.CommandHeader {
	return AppConfigBDBSetChannelReq{}.Header().Rsp()
}
func (c AppConfigBDBSetChannelRsp) Encode(w *types.Writer) { w.Uint8(uint8(c.Status)) }
func (c *AppConfigBDBSetChannelRsp) Decode(r *types.Reader) error {
	v, err := r.Uint8()
	c.Status = types.Status(v)
	return err
}

// AppConfigBDBStartCommissioningReq kicks off one or more BDB commissioning
// modes [APPConfig.BDBStartCommissioning].
type AppConfigBDBStartCommissioningReq struct {
	Mode types.BDBCommissioningMode
}

func (AppConfigBDBStartCommissioningReq) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemAPPConfig, types.CommandTypeSREQ, 0x05)
}
func (c AppConfigBDBStartCommissioningReq) Encode(w *types.Writer) { w.Uint8(uint8(c.Mode)) }
func (c *AppConfigBDBStartCommissioningReq) Decode(r *types.Reader) error {
	v, err := r.Uint8()
	c.Mode = types.BDBCommissioningMode(v)
	return err
}

// AppConfigBDBStartCommissioningRsp is the SRSP to AppConfigBDBStartCommissioningReq.
type AppConfigBDBStartCommissioningRsp struct{ Status types.Status }

func (AppConfigBDBStartCommissioningRsp) Header() types.CommandHeader {
	return AppConfigBDBStartCommissioningReq{}.Header().Rsp()
}
func (c AppConfigBDBStartCommissioningRsp) Encode(w *types.Writer) { w.Uint8(uint8(c.Status)) }
func (c *AppConfigBDBStartCommissioningRsp) Decode(r *types.Reader) error {
	v, err := r.Uint8()
	c.Status = types.Status(v)
	return err
}

// BDBCommissioningStatus mirrors the Z-Stack bdbCommissioningStatus_t enum
// carried by AppConfigBDBCommissioningNotification.
type BDBCommissioningStatus uint8

const (
	BDBCommissioningSuccess             BDBCommissioningStatus = 0x00
	BDBCommissioningInProgress          BDBCommissioningStatus = 0x01
	BDBCommissioningNotAAPossible       BDBCommissioningStatus = 0x02
	BDBCommissioningNoNetwork           BDBCommissioningStatus = 0x03
	BDBCommissioningTargetNotFound      BDBCommissioningStatus = 0x04
	BDBCommissioningFormationFailure    BDBCommissioningStatus = 0x06
	BDBCommissioningParentLost          BDBCommissioningStatus = 0x09
)

// AppConfigBDBCommissioningNotification is the AREQ callback reporting
// progress of the commissioning mode started by
// AppConfigBDBStartCommissioningReq [APPConfig.BDBCommissioningNotification].
type AppConfigBDBCommissioningNotification struct {
	Status        BDBCommissioningStatus
	Mode          types.BDBCommissioningMode
	RemainingModes types.BDBCommissioningMode
}

func (AppConfigBDBCommissioningNotification) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemAPPConfig, types.CommandTypeAREQ, 0x80)
}
func (c AppConfigBDBCommissioningNotification) Encode(w *types.Writer) {
	w.Uint8(uint8(c.Status))
	w.Uint8(uint8(c.Mode))
	w.Uint8(uint8(c.RemainingModes))
}
func (c *AppConfigBDBCommissioningNotification) Decode(r *types.Reader) error {
	s, err := r.Uint8()
	if err != nil {
		return err
	}
	c.Status = BDBCommissioningStatus(s)
	m, err := r.Uint8()
	if err != nil {
		return err
	}
	c.Mode = types.BDBCommissioningMode(m)
	rem, err := r.Uint8()
	c.RemainingModes = types.BDBCommissioningMode(rem)
	return err
}

func init() {
	Register(AppConfigBDBSetChannelReq{}.Header(), func() Command { return &AppConfigBDBSetChannelReq{} })
	Register(AppConfigBDBSetChannelRsp{}.Header(), func() Command { return &AppConfigBDBSetChannelRsp{} })
	Register(AppConfigBDBStartCommissioningReq{}.Header(), func() Command { return &AppConfigBDBStartCommissioningReq{} })
	Register(AppConfigBDBStartCommissioningRsp{}.Header(), func() Command { return &AppConfigBDBStartCommissioningRsp{} })
	Register(AppConfigBDBCommissioningNotification{}.Header(), func() Command { return &AppConfigBDBCommissioningNotification{} })
}
