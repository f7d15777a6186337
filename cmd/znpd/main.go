// Command znpd is a thin CLI harness around package controller: load a
// config file, bring the coprocessor up, and log what it reports. It is
// deliberately minimal — a place to exercise the controller by hand, not
// a product.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/gozigbee/znp/clog"
	"github.com/gozigbee/znp/config"
	"github.com/gozigbee/znp/controller"
	"github.com/gozigbee/znp/mt"
	"github.com/gozigbee/znp/types"
)

func main() {
	var (
		configPath = pflag.StringP("config", "c", "", "Path to the coprocessor YAML config.")
		autoForm   = pflag.Bool("form", false, "Form a new network if the coprocessor isn't already configured.")
		verbose    = pflag.BoolP("verbose", "v", false, "Enable debug logging.")
		help       = pflag.Bool("help", false, "Display help text.")
	)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "znpd - Z-Stack MT coprocessor driver\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s -c FILE [OPTIONS]\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}
	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "znpd: -c/--config is required")
		pflag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "znpd: %v\n", err)
		os.Exit(1)
	}

	log := clog.NewCharmLogger("znpd")
	log.LogMode(*verbose)

	hooks := &logHooks{log: log}
	c := controller.New(cfg, hooks, log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := c.Startup(ctx, *autoForm); err != nil {
		fmt.Fprintf(os.Stderr, "znpd: startup: %v\n", err)
		os.Exit(1)
	}
	log.Debug("znpd: coprocessor online")

	<-ctx.Done()
	log.Debug("znpd: shutting down")
	c.Shutdown()
}

// logHooks satisfies controller.Hooks by logging every callback, with no
// device table of its own — GetDevice always misses.
type logHooks struct {
	log clog.Clog
}

func (h *logHooks) HandleJoin(nwk types.NWK, ieee types.EUI64, capabilities uint8) {
	h.log.Debug("znpd: device joined nwk=%04x ieee=%s capabilities=%02x", uint16(nwk), ieee, capabilities)
}

func (h *logHooks) HandleLeave(nwk types.NWK, ieee types.EUI64) {
	h.log.Debug("znpd: device left nwk=%04x ieee=%s", uint16(nwk), ieee)
}

func (h *logHooks) HandleMessage(msg mt.AfIncomingMsg) {
	h.log.Debug("znpd: message src=%04x cluster=%04x ep=%d->%d len=%d",
		uint16(msg.SrcAddr), msg.ClusterId, msg.SrcEndpoint, msg.DstEndpoint, len(msg.Data))
}

func (h *logHooks) HandleRelays(dst types.NWK, relays []types.NWK) {
	h.log.Debug("znpd: source route to %04x via %d relay(s)", uint16(dst), len(relays))
}

func (h *logHooks) GetDevice(nwk types.NWK) (types.EUI64, bool) {
	return types.EUI64{}, false
}

func (h *logHooks) ConnectionLost(err error) {
	h.log.Error("znpd: connection lost: %v", err)
}
