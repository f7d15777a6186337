// Package znp implements the request/response multiplexer sitting between
// the MT frame codec and the controller state machine: one-shot awaits,
// persistent callbacks, and the SREQ/SRSP/AREQ discipline the MT protocol
// requires.
package znp

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gozigbee/znp/clog"
	"github.com/gozigbee/znp/frame"
	"github.com/gozigbee/znp/mt"
	"github.com/gozigbee/znp/types"
)

// Session owns one UART transport, one listener multimap and the single
// SREQ lock: one session = one UART transport + one listener map + one
// SREQ lock. The listener map is touched only from the
// run loop goroutine, reached either by a decoded frame arriving on
// frames or by a registration/removal closure arriving on ops — so the
// map itself needs no mutex; callers block only on sreqMu, which
// serializes SREQs, and wrMu, which serializes writes to the transport.
type Session struct {
	log clog.Clog
	tx  Transport

	sreqMu sync.Mutex
	wrMu   sync.Mutex

	decoder *frame.Decoder

	listeners map[types.CommandHeader][]*listener

	frames chan *frame.Frame
	ops    chan func()
	lost   chan error
	closed chan struct{}
	lostErr error

	closeOnce sync.Once
}

// NewSession constructs a Session writing frames to tx. Call Run in its own
// goroutine before issuing any request, and feed received bytes to Feed
// from the goroutine that owns the physical link.
func NewSession(tx Transport, log clog.Clog) *Session {
	return &Session{
		log:       log,
		tx:        tx,
		decoder:   frame.NewDecoder(),
		listeners: make(map[types.CommandHeader][]*listener),
		frames:    make(chan *frame.Frame),
		ops:       make(chan func()),
		lost:      make(chan error, 1),
		closed:    make(chan struct{}),
	}
}

// Run is the session's single dispatch loop. It returns when ctx is
// cancelled or ConnectionLost is called, either of which fails every
// outstanding listener and closes the session.
func (s *Session) Run(ctx context.Context) {
	defer s.closeOnce.Do(func() { close(s.closed) })
	for {
		select {
		case <-ctx.Done():
			s.failAll(ctx.Err())
			return
		case err := <-s.lost:
			s.lostErr = err
			s.failAll(err)
			return
		case op := <-s.ops:
			op()
		case f := <-s.frames:
			s.dispatch(f)
		}
	}
}

// Done returns a channel closed once Run has returned, either because ctx
// was cancelled or ConnectionLost fired.
func (s *Session) Done() <-chan struct{} { return s.closed }

// Err returns the error ConnectionLost was called with, or nil if Run
// ended because its context was cancelled.
func (s *Session) Err() error { return s.lostErr }

// Feed advances the frame decoder by one received byte. It must be called
// from a single goroutine (the UART reader); on a completed frame it is
// handed to the run loop over frames, on a bad FCS it is logged and
// dropped.
func (s *Session) Feed(b byte) {
	f, err := s.decoder.Feed(b)
	if err != nil {
		s.log.Warn("znp: dropping frame with bad FCS: %v", err)
		return
	}
	if f == nil {
		return
	}
	select {
	case s.frames <- f:
	case <-s.closed:
	}
}

// ConnectionLost reports a broken physical link. It fails every
// outstanding WaitFor/Request/RequestCallback with err (or
// ErrTransportLost if err is nil) and ends Run.
func (s *Session) ConnectionLost(err error) {
	if err == nil {
		err = ErrTransportLost
	}
	select {
	case s.lost <- err:
	case <-s.closed:
	}
}

func (s *Session) failAll(err error) {
	if err == nil {
		err = ErrTransportLost
	}
	for header, list := range s.listeners {
		for _, l := range list {
			if l.ch != nil {
				l.ch <- listenerResult{err: err}
			}
		}
		delete(s.listeners, header)
	}
	s.decoder.ConnectionLost()
}

// dispatch runs on the run-loop goroutine: locate the command class by
// header (log and drop if unknown), decode the payload (log and drop if
// malformed), then test every listener registered for that header in
// registration order. A one-shot listener is removed on first match; a
// callback keeps running. A single frame may satisfy several listeners.
func (s *Session) dispatch(f *frame.Frame) {
	factory, ok := mt.Lookup(f.Header)
	if !ok {
		s.log.Warn("znp: unknown command %s, dropping", f.Header)
		return
	}
	cmd := factory()
	r := types.NewReader(f.Payload)
	if err := cmd.Decode(r); err != nil || r.Len() != 0 {
		s.log.Warn("znp: malformed frame %s, dropping", f.Header)
		return
	}

	list := s.listeners[f.Header]
	if len(list) == 0 {
		return
	}
	remaining := list[:0]
	for _, l := range list {
		if !l.match(cmd) {
			remaining = append(remaining, l)
			continue
		}
		if l.oneShot() {
			l.ch <- listenerResult{cmd: cmd}
			continue
		}
		remaining = append(remaining, l)
		l.handler(cmd)
	}
	if len(remaining) == 0 {
		delete(s.listeners, f.Header)
	} else {
		s.listeners[f.Header] = remaining
	}
}

func (s *Session) addListener(l *listener, header types.CommandHeader) {
	done := make(chan struct{})
	op := func() {
		s.listeners[header] = append(s.listeners[header], l)
		close(done)
	}
	select {
	case s.ops <- op:
		<-done
	case <-s.closed:
	}
}

func (s *Session) removeListener(l *listener, header types.CommandHeader) {
	done := make(chan struct{})
	op := func() {
		list := s.listeners[header]
		for i, cur := range list {
			if cur == l {
				s.listeners[header] = append(list[:i], list[i+1:]...)
				break
			}
		}
		if len(s.listeners[header]) == 0 {
			delete(s.listeners, header)
		}
		close(done)
	}
	select {
	case s.ops <- op:
		<-done
	case <-s.closed:
	}
}

// write serializes a command to the wire. Concurrent callers are
// serialized by wrMu, independent of sreqMu, since AREQ sends (e.g.
// SysResetReq during startup) need not wait for a SREQ to complete but
// must still not interleave their bytes with one.
func (s *Session) write(cmd mt.Command) error {
	b, err := (&frame.Frame{Header: cmd.Header(), Payload: mt.Encode(cmd)}).Encode()
	if err != nil {
		return err
	}
	s.wrMu.Lock()
	defer s.wrMu.Unlock()
	return s.tx.Write(b)
}

// Send writes cmd without registering any listener: the fire-and-forget
// path for plain AREQs such as SysResetReq.
func (s *Session) Send(cmd mt.Command) error { return s.write(cmd) }

// WaitFor registers a one-shot listener for header and blocks until a
// matching frame arrives, ctx is cancelled, or the session ends. On
// cancellation the listener is removed; a later-arriving frame then finds
// no listener and is dropped.
func (s *Session) WaitFor(ctx context.Context, header types.CommandHeader, match Matcher) (mt.Command, error) {
	l := &listener{match: match, ch: make(chan listenerResult, 1)}
	s.addListener(l, header)
	select {
	case res := <-l.ch:
		return res.cmd, res.err
	case <-ctx.Done():
		s.removeListener(l, header)
		return nil, ctx.Err()
	case <-s.closed:
		return nil, ErrSessionClosed
	}
}

// CallbackFor registers a persistent listener for header that invokes
// handler on every match, until the returned func deregisters it or the
// session ends.
func (s *Session) CallbackFor(header types.CommandHeader, match Matcher, handler func(mt.Command)) func() {
	l := &listener{match: match, handler: handler}
	s.addListener(l, header)
	var once sync.Once
	return func() {
		once.Do(func() { s.removeListener(l, header) })
	}
}

// Request issues an SREQ and awaits its SRSP. It holds the session's
// single SREQ lock for the whole round trip so SRSPs arrive in issuance
// order; the lock is released whether the request succeeds, times out,
// or is cancelled.
func (s *Session) Request(ctx context.Context, req mt.Command, timeout time.Duration) (mt.Command, error) {
	s.sreqMu.Lock()
	defer s.sreqMu.Unlock()

	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	header := req.Header().Rsp()
	l := &listener{match: Any, ch: make(chan listenerResult, 1)}
	s.addListener(l, header)

	if err := s.write(req); err != nil {
		s.removeListener(l, header)
		return nil, fmt.Errorf("znp: write %s: %w", req.Header(), err)
	}

	select {
	case res := <-l.ch:
		return res.cmd, res.err
	case <-cctx.Done():
		s.removeListener(l, header)
		return nil, fmt.Errorf("znp: %s: %w", req.Header(), cctx.Err())
	case <-s.closed:
		return nil, ErrSessionClosed
	}
}

// RequestCallback implements the common SREQ-acks/AREQ-completes pattern:
// the callback listener for cbHeader/match is registered before Request
// is even called, so a
// coprocessor reply racing ahead of the caller can never be missed. The
// SRSP's content is not inspected: only a transport error or timeout on
// the SREQ aborts the wait. The callback command is what RequestCallback
// returns.
func (s *Session) RequestCallback(ctx context.Context, req mt.Command, cbHeader types.CommandHeader, match Matcher, timeout time.Duration) (mt.Command, error) {
	cb := &listener{match: match, ch: make(chan listenerResult, 1)}
	s.addListener(cb, cbHeader)

	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, err := s.Request(cctx, req, timeout); err != nil {
		s.removeListener(cb, cbHeader)
		return nil, err
	}

	select {
	case res := <-cb.ch:
		return res.cmd, res.err
	case <-cctx.Done():
		s.removeListener(cb, cbHeader)
		return nil, fmt.Errorf("znp: %s: %w", cbHeader, cctx.Err())
	case <-s.closed:
		return nil, ErrSessionClosed
	}
}
