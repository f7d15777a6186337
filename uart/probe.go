package uart

import (
	"context"
	"time"

	"github.com/gozigbee/znp/clog"
	"github.com/gozigbee/znp/mt"
	"github.com/gozigbee/znp/znp"
)

// Probe attempts a connect plus a single SYS.Ping SREQ against path. It
// returns true iff the ping completes within timeout.
func Probe(path string, baud uint32, timeout time.Duration) bool {
	link, err := Connect(Config{Path: path, BaudRate: baud}, clog.NewLogger("uart.probe"))
	if err != nil {
		return false
	}
	defer link.Close()

	sess := znp.NewSession(link, clog.NewLogger("uart.probe"))
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	go sess.Run(ctx)
	go link.ReadLoop(ctx, sess)

	_, err = sess.Request(ctx, &mt.SysPingReq{}, timeout)
	return err == nil
}

// AutoDetect tries every candidate path in order and returns the first
// one that probes successfully.
func AutoDetect(candidates []string, baud uint32, timeout time.Duration) (string, bool) {
	for _, path := range candidates {
		if Probe(path, baud, timeout) {
			return path, true
		}
	}
	return "", false
}
