package mt

import "github.com/gozigbee/znp/types"

// ResetType selects a hard or soft reset for SYS.ResetReq.
type ResetType uint8

const (
	ResetTypeHard ResetType = 0
	ResetTypeSoft ResetType = 1
)

// SysResetReq requests a coprocessor reset [SYS.ResetReq]. It is an AREQ:
// the coprocessor does not SRSP it, it replies with SysResetInd once the
// reset has completed.
type SysResetReq struct {
	Type ResetType
}

func (SysResetReq) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemSYS, types.CommandTypeAREQ, 0x00)
}
func (c SysResetReq) Encode(w *types.Writer) { w.Uint8(uint8(c.Type)) }
func (c *SysResetReq) Decode(r *types.Reader) error {
	v, err := r.Uint8()
	c.Type = ResetType(v)
	return err
}

// SysResetInd is the AREQ callback confirming a reset completed [SYS.ResetInd].
type SysResetInd struct {
	Reason              uint8
	TransportRev        uint8
	ProductId           uint8
	MajorRel            uint8
	MinorRel            uint8
	HwRev               uint8
}

func (SysResetInd) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemSYS, types.CommandTypeAREQ, 0x80)
}
func (c SysResetInd) Encode(w *types.Writer) {
	w.Uint8(c.Reason)
	w.Uint8(c.TransportRev)
	w.Uint8(c.ProductId)
	w.Uint8(c.MajorRel)
	w.Uint8(c.MinorRel)
	w.Uint8(c.HwRev)
}
func (c *SysResetInd) Decode(r *types.Reader) error {
	var err error
	if c.Reason, err = r.Uint8(); err != nil {
		return err
	}
	if c.TransportRev, err = r.Uint8(); err != nil {
		return err
	}
	if c.ProductId, err = r.Uint8(); err != nil {
		return err
	}
	if c.MajorRel, err = r.Uint8(); err != nil {
		return err
	}
	if c.MinorRel, err = r.Uint8(); err != nil {
		return err
	}
	c.HwRev, err = r.Uint8()
	return err
}

// SysPingReq requests the coprocessor's capability bitmask [SYS.Ping].
type SysPingReq struct{}

func (SysPingReq) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemSYS, types.CommandTypeSREQ, 0x01)
}
func (SysPingReq) Encode(*types.Writer)          {}
func (*SysPingReq) Decode(r *types.Reader) error { return nil }

// SysPingRsp is the SRSP to SysPingReq.
type SysPingRsp struct {
	Capabilities types.MTCapabilities
}

func (SysPingRsp) Header() types.CommandHeader {
	return SysPingReq{}.Header().Rsp()
}
func (c SysPingRsp) Encode(w *types.Writer) { w.Uint16(uint16(c.Capabilities)) }
func (c *SysPingRsp) Decode(r *types.Reader) error {
	v, err := r.Uint16()
	c.Capabilities = types.MTCapabilities(v)
	return err
}

// SysVersionReq requests the firmware version triple [SYS.Version].
type SysVersionReq struct{}

func (SysVersionReq) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemSYS, types.CommandTypeSREQ, 0x02)
}
func (SysVersionReq) Encode(*types.Writer)          {}
func (*SysVersionReq) Decode(r *types.Reader) error { return nil }

// SysVersionRsp is the SRSP to SysVersionReq.
type SysVersionRsp struct {
	TransportRev        uint8
	ProductId           uint8
	MajorRel            uint8
	MinorRel            uint8
	MaintRel            uint8
	CodeRevision        uint32
	BootloaderBuildType uint8
	BootloaderRevision  uint32
}

func (SysVersionRsp) Header() types.CommandHeader { return SysVersionReq{}.Header().Rsp() }
func (c SysVersionRsp) Encode(w *types.Writer) {
	w.Uint8(c.TransportRev)
	w.Uint8(c.ProductId)
	w.Uint8(c.MajorRel)
	w.Uint8(c.MinorRel)
	w.Uint8(c.MaintRel)
	w.Uint32(c.CodeRevision)
	w.Uint8(c.BootloaderBuildType)
	w.Uint32(c.BootloaderRevision)
}
func (c *SysVersionRsp) Decode(r *types.Reader) error {
	var err error
	if c.TransportRev, err = r.Uint8(); err != nil {
		return err
	}
	if c.ProductId, err = r.Uint8(); err != nil {
		return err
	}
	if c.MajorRel, err = r.Uint8(); err != nil {
		return err
	}
	if c.MinorRel, err = r.Uint8(); err != nil {
		return err
	}
	if c.MaintRel, err = r.Uint8(); err != nil {
		return err
	}
	if c.CodeRevision, err = r.Uint32(); err != nil {
		return err
	}
	if c.BootloaderBuildType, err = r.Uint8(); err != nil {
		return err
	}
	c.BootloaderRevision, err = r.Uint32()
	return err
}

// SysOSALNVReadReq reads one NVRAM item [SYS.OSALNVRead].
type SysOSALNVReadReq struct {
	Id     types.NvId
	Offset uint8
}

func (SysOSALNVReadReq) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemSYS, types.CommandTypeSREQ, 0x08)
}
func (c SysOSALNVReadReq) Encode(w *types.Writer) {
	w.Uint16(uint16(c.Id))
	w.Uint8(c.Offset)
}
func (c *SysOSALNVReadReq) Decode(r *types.Reader) error {
	id, err := r.Uint16()
	if err != nil {
		return err
	}
	c.Id = types.NvId(id)
	c.Offset, err = r.Uint8()
	return err
}

// SysOSALNVReadRsp is the SRSP to SysOSALNVReadReq.
type SysOSALNVReadRsp struct {
	Status types.Status
	Value  types.ShortBytes
}

func (SysOSALNVReadRsp) Header() types.CommandHeader { return SysOSALNVReadReq{}.Header().Rsp() }
func (c SysOSALNVReadRsp) Encode(w *types.Writer) {
	w.Uint8(uint8(c.Status))
	_ = w.ShortBytes(c.Value)
}
func (c *SysOSALNVReadRsp) Decode(r *types.Reader) error {
	status, err := r.Uint8()
	if err != nil {
		return err
	}
	c.Status = types.Status(status)
	v, err := r.ShortBytes()
	c.Value = v
	return err
}

// SysOSALNVWriteReq writes one NVRAM item [SYS.OSALNVWrite].
type SysOSALNVWriteReq struct {
	Id     types.NvId
	Offset uint8
	Value  types.ShortBytes
}

func (SysOSALNVWriteReq) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemSYS, types.CommandTypeSREQ, 0x09)
}
func (c SysOSALNVWriteReq) Encode(w *types.Writer) {
	w.Uint16(uint16(c.Id))
	w.Uint8(c.Offset)
	_ = w.ShortBytes(c.Value)
}
func (c *SysOSALNVWriteReq) Decode(r *types.Reader) error {
	id, err := r.Uint16()
	if err != nil {
		return err
	}
	c.Id = types.NvId(id)
	if c.Offset, err = r.Uint8(); err != nil {
		return err
	}
	c.Value, err = r.ShortBytes()
	return err
}

// SysOSALNVWriteRsp is the SRSP to SysOSALNVWriteReq.
type SysOSALNVWriteRsp struct {
	Status types.Status
}

func (SysOSALNVWriteRsp) Header() types.CommandHeader { return SysOSALNVWriteReq{}.Header().Rsp() }
func (c SysOSALNVWriteRsp) Encode(w *types.Writer)     { w.Uint8(uint8(c.Status)) }
func (c *SysOSALNVWriteRsp) Decode(r *types.Reader) error {
	v, err := r.Uint8()
	c.Status = types.Status(v)
	return err
}

// SysSetTxPowerReq sets the radio transmit power [SYS.SetTxPower].
type SysSetTxPowerReq struct {
	TxPower int8
}

func (SysSetTxPowerReq) Header() types.CommandHeader {
	return types.NewCommandHeader(types.SubsystemSYS, types.CommandTypeSREQ, 0x14)
}
func (c SysSetTxPowerReq) Encode(w *types.Writer) { w.Uint8(uint8(c.TxPower)) }
func (c *SysSetTxPowerReq) Decode(r *types.Reader) error {
	v, err := r.Uint8()
	c.TxPower = int8(v)
	return err
}

// SysSetTxPowerRsp is the SRSP to SysSetTxPowerReq.
type SysSetTxPowerRsp struct {
	Status types.Status
}

func (SysSetTxPowerRsp) Header() types.CommandHeader { return SysSetTxPowerReq{}.Header().Rsp() }
func (c SysSetTxPowerRsp) Encode(w *types.Writer)      { w.Uint8(uint8(c.Status)) }
func (c *SysSetTxPowerRsp) Decode(r *types.Reader) error {
	v, err := r.Uint8()
	c.Status = types.Status(v)
	return err
}

func init() {
	Register(SysResetReq{}.Header(), func() Command { return &SysResetReq{} })
	Register(SysResetInd{}.Header(), func() Command { return &SysResetInd{} })
	Register(SysPingReq{}.Header(), func() Command { return &SysPingReq{} })
	Register(SysPingRsp{}.Header(), func() Command { return &SysPingRsp{} })
	Register(SysVersionReq{}.Header(), func() Command { return &SysVersionReq{} })
	Register(SysVersionRsp{}.Header(), func() Command { return &SysVersionRsp{} })
	Register(SysOSALNVReadReq{}.Header(), func() Command { return &SysOSALNVReadReq{} })
	Register(SysOSALNVReadRsp{}.Header(), func() Command { return &SysOSALNVReadRsp{} })
	Register(SysOSALNVWriteReq{}.Header(), func() Command { return &SysOSALNVWriteReq{} })
	Register(SysOSALNVWriteRsp{}.Header(), func() Command { return &SysOSALNVWriteRsp{} })
	Register(SysSetTxPowerReq{}.Header(), func() Command { return &SysSetTxPowerReq{} })
	Register(SysSetTxPowerRsp{}.Header(), func() Command { return &SysSetTxPowerRsp{} })
}
