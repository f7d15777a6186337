package znp

// Transport is the byte sink a Session writes encoded frames to. The
// reader side is not part of this interface: whatever owns the physical
// link (the uart package, or a test double) feeds received bytes to
// Session.Feed and reports link failure via Session.ConnectionLost.
type Transport interface {
	Write(b []byte) error
}
