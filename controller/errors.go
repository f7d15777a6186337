package controller

import "errors"

// ErrNotConfigured is returned by Startup when HAS_CONFIGURED_ZSTACK3 does
// not hold the configured sentinel and the caller did not ask for auto-form.
var ErrNotConfigured = errors.New("controller: coprocessor not configured and auto-form disabled")

// ErrDeliveryError is returned by Request when the matching DataConfirm or
// ZDO response carries a non-Success status.
var ErrDeliveryError = errors.New("controller: delivery failed")

// ErrInvalidParam is returned by UpdateNetwork when channel is not a
// member of channels.
var ErrInvalidParam = errors.New("controller: invalid parameter")

// ErrShutdown is not returned by any Controller method: an operation in
// flight when Shutdown is called fails with znp.ErrSessionClosed or its
// context's error instead.
var ErrShutdown = errors.New("controller: shut down")
