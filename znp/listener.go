package znp

import "github.com/gozigbee/znp/mt"

// Matcher reports whether a decoded command satisfies an outstanding
// listener: every bound parameter of the expected command must equal the
// corresponding parameter of the actual one. A Matcher closure, not a
// field on mt.Command, carries that comparison so commands stay plain
// data and the comparison lives with the caller that needs it.
type Matcher func(mt.Command) bool

// Any matches every command with the given header; used for SRSP awaits,
// where the header alone identifies the expected reply.
func Any(mt.Command) bool { return true }

type listenerResult struct {
	cmd mt.Command
	err error
}

// listener is one entry in a Session's per-header listener list: either a
// one-shot await (ch set) or a persistent callback (handler set).
type listener struct {
	match   Matcher
	ch      chan listenerResult
	handler func(mt.Command)
}

func (l *listener) oneShot() bool { return l.handler == nil }
