package controller

import (
	"context"
	"time"
)

// watchSession waits for the session's dispatch loop to exit and, unless
// that was due to an explicit Shutdown, treats it as connection_lost and
// starts the reconnect loop.
func (c *Controller) watchSession(ownCtx context.Context, session sessionWaiter) {
	<-session.Done()
	select {
	case <-ownCtx.Done():
		return // Shutdown already cancelled this session; nothing to do
	default:
	}
	c.handleConnectionLost(session.Err())
}

// sessionWaiter is the subset of *znp.Session watchSession needs.
type sessionWaiter interface {
	Done() <-chan struct{}
	Err() error
}

// handleConnectionLost tears down the dead session, notifies the caller,
// and loops uart_connect + Startup(autoForm=false) every
// AUTO_RECONNECT_RETRY_DELAY until success or Shutdown.
func (c *Controller) handleConnectionLost(err error) {
	c.hooks.ConnectionLost(err)

	c.mu.Lock()
	if c.link != nil {
		c.link.Close()
	}
	c.link = nil
	c.session = nil
	for _, stop := range c.cbStops {
		stop()
	}
	c.cbStops = nil
	c.mu.Unlock()

	go c.reconnectLoop()
}

func (c *Controller) reconnectLoop() {
	ctx, cancel := context.WithCancel(context.Background())
	c.mu.Lock()
	c.reconnectCancel = cancel
	c.mu.Unlock()

	ticker := time.NewTicker(c.cfg.AutoReconnectRetryDelay)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if err := c.Startup(ctx, false); err == nil {
			return
		}
	}
}

// Shutdown cancels the reconnect supervisor and closes the UART.
func (c *Controller) Shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.reconnectCancel != nil {
		c.reconnectCancel()
	}
	if c.cancel != nil {
		c.cancel()
	}
	if c.link != nil {
		c.link.Close()
	}
	for _, stop := range c.cbStops {
		stop()
	}
	c.cbStops = nil
	c.link = nil
	c.session = nil
}
