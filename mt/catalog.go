// Package mt is the static MT command catalog: a duplicate-free mapping
// from CommandHeader to command class. Each subsystem's commands live in
// their own file (sys.go, af.go, zdo.go, util.go, appconfig.go).
package mt

import (
	"fmt"

	"github.com/gozigbee/znp/types"
)

// Command is implemented by every concrete MT command type. Instances are
// always fully bound — Go gives every struct a defined zero value, so
// there is no "partial" state to police — and are never mutated after
// Decode returns. Matching a partial or in-flight command against an
// expected reply is the job of a Matcher closure, not of Command itself.
type Command interface {
	// Header returns this command's fixed CommandHeader.
	Header() types.CommandHeader
	// Encode appends this command's parameters, in schema order, to w.
	Encode(w *types.Writer)
	// Decode populates this command's parameters, in schema order, from r.
	// Implementations need not check for trailing data; the package-level
	// Decode rejects any bytes left over.
	Decode(r *types.Reader) error
}

// Factory returns a new zero-valued instance of one command type, ready to
// Decode.
type Factory func() Command

// registry is the static header -> factory map, built once by each
// subsystem's init() via Register.
var registry = map[types.CommandHeader]Factory{}

// Register adds a command class to the catalog. It panics on a duplicate
// header, since the catalog is meant to be built once at package init from
// a fixed, hand-audited command list — a collision there is a programming
// error, not a runtime condition to recover from.
func Register(header types.CommandHeader, f Factory) {
	if _, exists := registry[header]; exists {
		panic(fmt.Sprintf("mt: duplicate command header %s", header))
	}
	registry[header] = f
}

// Lookup returns the factory registered for header, or false if the
// catalog has no command with that header.
func Lookup(header types.CommandHeader) (Factory, bool) {
	f, ok := registry[header]
	return f, ok
}

// ErrTrailingData is returned by Decode when bytes remain after the last
// schema field.
var ErrTrailingData = types.ErrTrailingData

// Decode looks up header in the catalog and fully decodes payload into a
// fresh Command, failing if the header is unknown or bytes remain after
// the last schema field.
func Decode(header types.CommandHeader, payload []byte) (Command, error) {
	factory, ok := Lookup(header)
	if !ok {
		return nil, fmt.Errorf("mt: unknown command header %s", header)
	}
	cmd := factory()
	r := types.NewReader(payload)
	if err := cmd.Decode(r); err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, ErrTrailingData
	}
	return cmd, nil
}

// Encode serializes cmd to its wire payload.
func Encode(cmd Command) []byte {
	w := types.NewWriter()
	cmd.Encode(w)
	return w.Bytes()
}
