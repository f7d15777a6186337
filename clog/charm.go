package clog

import (
	"os"

	charm "github.com/charmbracelet/log"
)

// charmProvider adapts charmbracelet/log onto LogProvider, so callers that
// want structured, leveled output (timestamps, key=value fields) can plug
// it into a Clog the same way the default stdlib logger plugs in.
type charmProvider struct {
	l *charm.Logger
}

var _ LogProvider = charmProvider{}

// NewCharmLogger builds a Clog backed by charmbracelet/log with the given
// field prefix (e.g. "session" or "uart").
func NewCharmLogger(name string) Clog {
	l := charm.NewWithOptions(os.Stderr, charm.Options{
		ReportTimestamp: true,
		Prefix:          name,
		Level:           charm.DebugLevel,
	})
	return Clog{charmProvider{l}, 0}
}

func (sf charmProvider) Critical(format string, v ...interface{}) {
	sf.l.Errorf("[CRITICAL] "+format, v...)
}

func (sf charmProvider) Error(format string, v ...interface{}) {
	sf.l.Errorf(format, v...)
}

func (sf charmProvider) Warn(format string, v ...interface{}) {
	sf.l.Warnf(format, v...)
}

func (sf charmProvider) Debug(format string, v ...interface{}) {
	sf.l.Debugf(format, v...)
}
