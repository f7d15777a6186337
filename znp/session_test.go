package znp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gozigbee/znp/clog"
	"github.com/gozigbee/znp/frame"
	"github.com/gozigbee/znp/mt"
	"github.com/gozigbee/znp/types"
)

// loopbackTransport stands in for the UART link: every Write is decoded and
// handed to respond, which feeds a canned reply frame back into the
// session, mimicking a coprocessor that answers synchronously.
type loopbackTransport struct {
	session *Session
	respond func(mt.Command) []mt.Command
}

func (lt *loopbackTransport) Write(b []byte) error {
	cmd, err := decodeWire(b)
	if err != nil {
		return err
	}
	if lt.respond == nil {
		return nil
	}
	for _, reply := range lt.respond(cmd) {
		wire, err := (&frame.Frame{Header: reply.Header(), Payload: mt.Encode(reply)}).Encode()
		if err != nil {
			return err
		}
		for _, c := range wire {
			lt.session.Feed(c)
		}
	}
	return nil
}

func decodeWire(b []byte) (mt.Command, error) {
	d := frame.NewDecoder()
	var f *frame.Frame
	for _, c := range b {
		got, err := d.Feed(c)
		if err != nil {
			return nil, err
		}
		if got != nil {
			f = got
		}
	}
	return mt.Decode(f.Header, f.Payload)
}

func newTestSession(t *testing.T, respond func(mt.Command) []mt.Command) (*Session, context.CancelFunc) {
	t.Helper()
	lt := &loopbackTransport{respond: respond}
	s := NewSession(lt, clog.NewLogger("test"))
	lt.session = s
	ctx, cancel := context.WithCancel(context.Background())
	go s.Run(ctx)
	return s, cancel
}

func Test_Session_Request_roundtrip(t *testing.T) {
	s, cancel := newTestSession(t, func(cmd mt.Command) []mt.Command {
		if _, ok := cmd.(*mt.SysPingReq); ok {
			return []mt.Command{&mt.SysPingRsp{Capabilities: 0x002e}}
		}
		return nil
	})
	defer cancel()

	rsp, err := s.Request(context.Background(), &mt.SysPingReq{}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, &mt.SysPingRsp{Capabilities: 0x002e}, rsp)
}

func Test_Session_Request_timeout(t *testing.T) {
	s, cancel := newTestSession(t, func(mt.Command) []mt.Command { return nil })
	defer cancel()

	_, err := s.Request(context.Background(), &mt.SysPingReq{}, 20*time.Millisecond)
	assert.Error(t, err)
}

func Test_Session_sreq_mutual_exclusion(t *testing.T) {
	gate := make(chan struct{})
	s, cancel := newTestSession(t, func(cmd mt.Command) []mt.Command {
		<-gate // every SREQ blocks here until released, serially
		return []mt.Command{&mt.SysPingRsp{Capabilities: 0x0001}}
	})
	defer cancel()

	done := make(chan struct{})
	go func() {
		_, _ = s.Request(context.Background(), &mt.SysPingReq{}, time.Second)
		close(done)
	}()

	// give the first request time to reach the transport and block on gate
	time.Sleep(20 * time.Millisecond)

	second := make(chan struct{})
	go func() {
		_, _ = s.Request(context.Background(), &mt.SysPingReq{}, time.Second)
		close(second)
	}()

	select {
	case <-second:
		t.Fatal("second Request completed before the first was released")
	case <-time.After(30 * time.Millisecond):
	}

	close(gate)
	<-done
	<-second
}

func Test_Session_WaitFor_one_shot(t *testing.T) {
	s, cancel := newTestSession(t, nil)
	defer cancel()

	header := mt.ZdoEndDeviceAnnceInd{}.Header()
	ind := &mt.ZdoEndDeviceAnnceInd{SrcAddr: 0x1234, NWKAddr: 0x1234, IEEEAddr: types.EUI64{1, 2, 3, 4, 5, 6, 7, 8}, Capabilities: 0x80}

	var calls int
	match := func(cmd mt.Command) bool {
		calls++
		return true
	}

	resultCh := make(chan mt.Command, 1)
	go func() {
		got, err := s.WaitFor(context.Background(), header, match)
		require.NoError(t, err)
		resultCh <- got
	}()

	time.Sleep(10 * time.Millisecond)
	wire, err := (&frame.Frame{Header: ind.Header(), Payload: mt.Encode(ind)}).Encode()
	require.NoError(t, err)
	for _, b := range wire {
		s.Feed(b)
	}
	// a second identical frame must be dropped: the one-shot listener
	// already fired and was removed.
	for _, b := range wire {
		s.Feed(b)
	}

	select {
	case got := <-resultCh:
		assert.Equal(t, ind, got)
	case <-time.After(time.Second):
		t.Fatal("WaitFor never returned")
	}
	assert.Equal(t, 1, calls)
}

func Test_Session_CallbackFor_persists_until_deregistered(t *testing.T) {
	s, cancel := newTestSession(t, nil)
	defer cancel()

	header := mt.ZdoEndDeviceAnnceInd{}.Header()
	ind := &mt.ZdoEndDeviceAnnceInd{SrcAddr: 0x1234, NWKAddr: 0x1234, IEEEAddr: types.EUI64{}, Capabilities: 0}
	wire, err := (&frame.Frame{Header: ind.Header(), Payload: mt.Encode(ind)}).Encode()
	require.NoError(t, err)

	hits := make(chan struct{}, 8)
	stop := s.CallbackFor(header, Any, func(mt.Command) { hits <- struct{}{} })

	for _, b := range wire {
		s.Feed(b)
	}
	select {
	case <-hits:
	case <-time.After(time.Second):
		t.Fatal("callback never fired")
	}

	stop()

	for _, b := range wire {
		s.Feed(b)
	}
	select {
	case <-hits:
		t.Fatal("callback fired after deregistration")
	case <-time.After(50 * time.Millisecond):
	}
}

func Test_Session_ConnectionLost_fails_outstanding_requests(t *testing.T) {
	s, cancel := newTestSession(t, func(mt.Command) []mt.Command { return nil })
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		_, err := s.Request(context.Background(), &mt.SysPingReq{}, 5*time.Second)
		errCh <- err
	}()

	time.Sleep(10 * time.Millisecond)
	s.ConnectionLost(assert.AnError)

	select {
	case err := <-errCh:
		assert.Error(t, err)
	case <-time.After(time.Second):
		t.Fatal("Request never unblocked after ConnectionLost")
	}

	<-s.Done()
	assert.ErrorIs(t, s.Err(), assert.AnError)
}
