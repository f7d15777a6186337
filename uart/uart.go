// Package uart wraps the physical serial link the controller drives the
// coprocessor over, adapting github.com/daedaluz/goserial to the
// znp.Transport interface and the byte-feed model znp.Session expects.
package uart

import (
	"context"
	"fmt"
	"time"

	serial "github.com/daedaluz/goserial"

	"github.com/gozigbee/znp/clog"
)

// bootloaderSkipByte is written once on connect for stacks whose
// bootloader waits for a "skip" byte before handing control to the
// application image.
const bootloaderSkipByte = 0xef

// Config describes how to open and configure the serial link.
type Config struct {
	Path          string
	BaudRate      uint32
	SkipBootloader bool
}

// Link is an open serial connection feeding a znp.Session.
type Link struct {
	port *serial.Port
	log  clog.Clog
}

// Connect opens path in raw mode at the given baud rate. If
// cfg.SkipBootloader is set, the bootloader-skip byte is written
// immediately after open, before any MT traffic.
func Connect(cfg Config, log clog.Clog) (*Link, error) {
	port, err := serial.Open(cfg.Path, nil)
	if err != nil {
		return nil, fmt.Errorf("uart: open %s: %w", cfg.Path, err)
	}
	if err := port.MakeRaw(); err != nil {
		port.Close()
		return nil, fmt.Errorf("uart: raw mode %s: %w", cfg.Path, err)
	}
	if attrs, err := port.GetAttr(); err == nil {
		attrs.SetSpeed(baudFlag(cfg.BaudRate))
		_ = port.SetAttr(serial.TCSANOW, attrs)
	}
	l := &Link{port: port, log: log}
	if cfg.SkipBootloader {
		if err := l.Write([]byte{bootloaderSkipByte}); err != nil {
			port.Close()
			return nil, fmt.Errorf("uart: bootloader skip byte: %w", err)
		}
	}
	return l, nil
}

// Write implements znp.Transport.
func (l *Link) Write(b []byte) error {
	_, err := l.port.Write(b)
	return err
}

// Close releases the underlying file descriptor.
func (l *Link) Close() error { return l.port.Close() }

// feeder is the subset of *znp.Session a ReadLoop needs; it keeps ReadLoop
// independent of the concrete session type, so a test double can stand in.
type feeder interface {
	Feed(b byte)
	ConnectionLost(err error)
}

// ReadLoop reads bytes from the link and feeds them to s until ctx is
// cancelled or a read error occurs, in which case s.ConnectionLost is
// called with that error. It is meant to run in its own goroutine for the
// lifetime of the link.
func (l *Link) ReadLoop(ctx context.Context, s feeder) {
	l.port.SetReadTimeout(250 * time.Millisecond)
	buf := make([]byte, 256)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		n, err := l.port.Read(buf)
		if err != nil {
			if isTimeout(err) {
				continue
			}
			s.ConnectionLost(err)
			return
		}
		for _, b := range buf[:n] {
			s.Feed(b)
		}
	}
}

func isTimeout(err error) bool {
	type timeouter interface{ Timeout() bool }
	t, ok := err.(timeouter)
	return ok && t.Timeout()
}

func baudFlag(rate uint32) serial.CFlag {
	switch rate {
	case 9600:
		return serial.B9600
	case 38400:
		return serial.B38400
	case 57600:
		return serial.B57600
	case 115200:
		return serial.B115200
	case 230400:
		return serial.B230400
	default:
		return serial.B115200
	}
}
