// Package machine defines the mutable actor contract that concrete
// protocol implementations satisfy.
package machine

import (
	"fmt"

	"modelcheck/msg"
)

// ErrorTag classifies a failure a machine recorded about itself while
// handling a message. The zero value, NoError, means the machine has not
// failed.
type ErrorTag string

// NoError is the zero value of ErrorTag: the machine has not recorded a
// failure.
const NoError ErrorTag = ""

// BadMessageType is the sentinel a machine should record when it
// receives a message type it does not know how to handle, per the
// contract in the checker's specification.
const BadMessageType ErrorTag = "bad-message-type"

// Machine is the contract implemented by every protocol participant.
//
// Handlers must be pure with respect to anything outside the receiver
// and its returned message slice: no global state, no I/O, no wall
// clock, so that the outgoing messages are a deterministic function of
// the delivered message and the machine's prior value.
type Machine interface {
	// ID returns the machine's index in the state's machine sequence.
	// ID is fixed at construction and never changes.
	ID() int
	// Type returns the integer tag discriminating the machine variant.
	Type() int
	// Error returns the machine's recorded failure, or NoError.
	Error() ErrorTag
	// OnStartup runs once, when the machine is first installed into the
	// initial state. It may mutate the receiver and returns zero or more
	// messages to seed the initial frontier.
	OnStartup() []msg.Message
	// HandleMessage mutates the receiver in response to m and returns
	// zero or more outbound messages. Unknown message types must record
	// BadMessageType via the machine's error field rather than panicking.
	HandleMessage(m msg.Message) []msg.Message
	// Clone returns a machine that compares equal (full compare) to the
	// receiver, but whose subsequent mutation is invisible to it.
	Clone() Machine
	fmt.Stringer
}

// PayloadComparer is implemented by concrete machine types to compare
// the variant-specific state of two machines known to share a Type().
// id is never part of the payload comparison.
type PayloadComparer interface {
	// ComparePayload returns a three-way comparison of this machine's
	// state against rhs's. Only ever called when both machines have the
	// same Type().
	ComparePayload(rhs Machine) int
}

// PayloadKeyer is implemented by concrete machine types whose state must
// participate in the deterministic fingerprints used by the visited and
// canonical sets.
type PayloadKeyer interface {
	PayloadKey() string
}

// Base is embedded by concrete machine types to supply the id/type
// bookkeeping and the error sentinel.
type Base struct {
	IDVal int
	Kind  int
	Err   ErrorTag
}

func (b Base) ID() int          { return b.IDVal }
func (b Base) Type() int        { return b.Kind }
func (b Base) Error() ErrorTag  { return b.Err }
func (b *Base) SetError(e ErrorTag) { b.Err = e }

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// Compare performs the full three-way comparison specified for
// machines: id, then type, then state.
func Compare(a, b Machine) int {
	if c := sign(a.ID() - b.ID()); c != 0 {
		return c
	}
	if c := sign(a.Type() - b.Type()); c != 0 {
		return c
	}
	return payloadCompare(a, b)
}

// LogicalCompare performs the id-blind three-way comparison: type, then
// state. id is ignored.
func LogicalCompare(a, b Machine) int {
	if c := sign(a.Type() - b.Type()); c != 0 {
		return c
	}
	return payloadCompare(a, b)
}

func payloadCompare(a, b Machine) int {
	pc, ok := a.(PayloadComparer)
	if !ok {
		return 0
	}
	return pc.ComparePayload(b)
}

func payloadKey(m Machine) string {
	if pk, ok := m.(PayloadKeyer); ok {
		return pk.PayloadKey()
	}
	return ""
}

// Key returns a deterministic string identifying (id, type, state); used
// as a map key by the visited set.
func Key(m Machine) string {
	return fmt.Sprintf("%d|%d|%s", m.ID(), m.Type(), payloadKey(m))
}

// LogicalKey returns a deterministic string identifying (type, state),
// ignoring id; used by the symmetry reducer.
func LogicalKey(m Machine) string {
	return fmt.Sprintf("%d|%s", m.Type(), payloadKey(m))
}

// Equal reports whether a and b are fully equal (id, type, and state all
// agree).
func Equal(a, b Machine) bool { return Compare(a, b) == 0 }

// LogicallyEqual reports whether a and b are logically equal (type and
// state agree; id ignored).
func LogicallyEqual(a, b Machine) bool { return LogicalCompare(a, b) == 0 }
