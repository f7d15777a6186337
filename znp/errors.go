package znp

import "errors"

// ErrTransportLost is the error every outstanding WaitFor/Request/
// RequestCallback fails with when the session's ConnectionLost is invoked
// with a nil error; a non-nil error passed to ConnectionLost is delivered
// as is. Either way the listener maps are dropped.
var ErrTransportLost = errors.New("znp: transport lost")

// ErrSessionClosed is returned by WaitFor, Request and RequestCallback once
// the session's run loop has ended.
var ErrSessionClosed = errors.New("znp: session closed")
