// Package controller is the caller-facing façade composing the znp
// multiplexer's primitives into the Z-Stack startup, reconnect,
// data-request and network-management flows.
package controller

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/gozigbee/znp/clog"
	"github.com/gozigbee/znp/config"
	"github.com/gozigbee/znp/mt"
	"github.com/gozigbee/znp/types"
	"github.com/gozigbee/znp/uart"
	"github.com/gozigbee/znp/znp"
)

// Hooks is the caller contract a Controller drives.
type Hooks interface {
	// HandleJoin is called when a device announces itself on the network.
	HandleJoin(nwk types.NWK, ieee types.EUI64, capabilities uint8)
	// HandleLeave is called when a device leaves the network.
	HandleLeave(nwk types.NWK, ieee types.EUI64)
	// HandleMessage delivers an inbound application message.
	HandleMessage(msg mt.AfIncomingMsg)
	// HandleRelays reports the source-route relay list for a packet.
	HandleRelays(dst types.NWK, relays []types.NWK)
	// GetDevice resolves a known device's IEEE address by NWK address. The
	// Controller itself does not call it.
	GetDevice(nwk types.NWK) (types.EUI64, bool)
	// ConnectionLost is called when the UART link fails, before the
	// reconnect supervisor starts retrying.
	ConnectionLost(err error)
}

// Controller owns one coprocessor connection's lifetime: the UART link,
// the znp.Session built on top of it, and the state the startup and
// reconnect flows need across calls.
type Controller struct {
	cfg   config.Config
	hooks Hooks
	log   clog.Clog

	mu      sync.Mutex
	link    *uart.Link
	session *znp.Session
	cancel  context.CancelFunc
	cbStops []func()

	ownNWK  types.NWK
	ownIEEE types.EUI64

	tsn atomic.Uint32

	reconnectCancel context.CancelFunc
}

// New constructs a Controller. Call Startup before issuing any request.
func New(cfg config.Config, hooks Hooks, log clog.Clog) *Controller {
	return &Controller{cfg: cfg, hooks: hooks, log: log}
}

// Session returns the controller's current session, or nil before the
// first successful Startup. Exported for tests that need to drive the
// multiplexer directly.
func (c *Controller) Session() *znp.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

func (c *Controller) nextTSN() uint8 {
	return uint8(c.tsn.Add(1))
}
