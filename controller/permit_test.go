package controller

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gozigbee/znp/clog"
	"github.com/gozigbee/znp/config"
	"github.com/gozigbee/znp/frame"
	"github.com/gozigbee/znp/mt"
	"github.com/gozigbee/znp/znp"
)

// loopbackTransport mimics a coprocessor that answers every SREQ
// synchronously, mirroring znp's own session_test.go fixture.
type loopbackTransport struct {
	session *znp.Session
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

func newLoopbackController(t *testing.T, respond func(mt.Command) []mt.Command) (*Controller, context.CancelFunc) {
	t.Helper()
	lt := &loopbackTransport{respond: respond}
	sess := znp.NewSession(lt, clog.NewLogger("test"))
	lt.session = sess
	ctx, cancel := context.WithCancel(context.Background())
	go sess.Run(ctx)

	c := New(config.DefaultConfig(), nil, clog.NewLogger("test"))
	c.mu.Lock()
	c.session = sess
	c.mu.Unlock()
	return c, cancel
}

func Test_Permit_broadcasts_then_issues_local_permit_join(t *testing.T) {
	var mu sync.Mutex
	var sawDataReq, sawPermitJoin bool

	c, cancel := newLoopbackController(t, func(cmd mt.Command) []mt.Command {
		switch req := cmd.(type) {
		case *mt.AfDataRequestExtReq:
			if req.SrcEndpoint != 0 || req.DstEndpoint != 0 {
				return nil
			}
			mu.Lock()
			sawDataReq = true
			mu.Unlock()
			return []mt.Command{
				&mt.AfDataRequestExtRsp{Status: 0},
				&mt.AfDataConfirm{Status: 0, Endpoint: 0, TSN: req.TSN},
			}
		case *mt.ZdoMgmtPermitJoinReq:
			mu.Lock()
			sawPermitJoin = true
			mu.Unlock()
			return []mt.Command{
				&mt.ZdoMgmtPermitJoinRsp{Status: 0},
				&mt.ZdoMgmtPermitJoinRspInd{SrcAddr: 0x0000, Status: 0},
			}
		default:
			return nil
		}
	})
	defer cancel()

	ctx, done := context.WithTimeout(context.Background(), time.Second)
	defer done()
	err := c.Permit(ctx, 10, 0)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, sawDataReq, "expected an AF.DataRequestExt broadcast to endpoint 0")
	assert.True(t, sawPermitJoin, "expected a ZDO.MgmtPermitJoinReq")
}

func Test_Permit_fails_when_management_response_reports_failure(t *testing.T) {
	c, cancel := newLoopbackController(t, func(cmd mt.Command) []mt.Command {
		switch req := cmd.(type) {
		case *mt.AfDataRequestExtReq:
			return []mt.Command{
				&mt.AfDataRequestExtRsp{Status: 0},
				&mt.AfDataConfirm{Status: 0, Endpoint: 0, TSN: req.TSN},
			}
		case *mt.ZdoMgmtPermitJoinReq:
			return []mt.Command{
				&mt.ZdoMgmtPermitJoinRsp{Status: 0},
				&mt.ZdoMgmtPermitJoinRspInd{SrcAddr: 0xffff, Status: 1},
			}
		default:
			return nil
		}
	})
	defer cancel()

	ctx, done := context.WithTimeout(context.Background(), time.Second)
	defer done()
	err := c.Permit(ctx, 10, 0)
	assert.Error(t, err)
}
