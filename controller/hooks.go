package controller

import (
	"github.com/gozigbee/znp/mt"
	"github.com/gozigbee/znp/types"
	"github.com/gozigbee/znp/znp"
)

// installHooks wires the persistent ZDO/AF callbacks that project onto
// the caller's Hooks.
func (c *Controller) installHooks() {
	c.mu.Lock()
	session := c.session
	c.mu.Unlock()
	if session == nil {
		return
	}

	stops := []func(){
		session.CallbackFor(mt.ZdoEndDeviceAnnceInd{}.Header(), znp.Any, func(cmd mt.Command) {
			ind := cmd.(*mt.ZdoEndDeviceAnnceInd)
			c.hooks.HandleJoin(ind.NWKAddr, ind.IEEEAddr, ind.Capabilities)
		}),
		session.CallbackFor(mt.ZdoLeaveInd{}.Header(), znp.Any, func(cmd mt.Command) {
			ind := cmd.(*mt.ZdoLeaveInd)
			c.hooks.HandleLeave(ind.SrcAddr, ind.ExtAddr)
		}),
		session.CallbackFor(mt.ZdoTCDevInd{}.Header(), znp.Any, func(cmd mt.Command) {
			ind := cmd.(*mt.ZdoTCDevInd)
			c.hooks.HandleJoin(ind.SrcNwk, ind.SrcIEEE, 0)
		}),
		session.CallbackFor(mt.AfIncomingMsg{}.Header(), znp.Any, func(cmd mt.Command) {
			c.hooks.HandleMessage(*cmd.(*mt.AfIncomingMsg))
		}),
		session.CallbackFor(mt.ZdoSrcRtgInd{}.Header(), znp.Any, func(cmd mt.Command) {
			ind := cmd.(*mt.ZdoSrcRtgInd)
			relays := make([]types.NWK, len(ind.RelayList))
			for i, r := range ind.RelayList {
				relays[i] = types.NWK(r)
			}
			c.hooks.HandleRelays(ind.DstAddr, relays)
		}),
	}

	c.mu.Lock()
	c.cbStops = append(c.cbStops, stops...)
	c.mu.Unlock()
}
