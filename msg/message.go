// Package msg defines the immutable message envelope exchanged between
// machines during exploration.
package msg

import "fmt"

// Message is the basic unit of communication in the model checker.
// Messages are immutable once returned from a machine and are shared
// freely between states.
//
// Implementations embed Base for the id/type/may-drop bookkeeping and,
// if they carry a payload, implement PayloadComparer and PayloadKeyer.
type Message interface {
	// Src returns the id of the sending machine.
	Src() int
	// Dst returns the id of the receiving machine.
	Dst() int
	// Type returns the integer tag discriminating the message variant.
	Type() int
	// MayDrop reports whether a drop successor may be generated for this
	// message. Defaults to true unless a message opts out.
	MayDrop() bool
	fmt.Stringer
}

// PayloadComparer is implemented by concrete message types to compare the
// variant-specific payload of two messages known to share a Type().
type PayloadComparer interface {
	// ComparePayload returns a three-way comparison of this message's
	// payload against rhs's. Only ever called when both messages have the
	// same Type().
	ComparePayload(rhs Message) int
}

// PayloadKeyer is implemented by concrete message types whose payload
// must participate in the deterministic fingerprints used by the visited
// and canonical sets. Types with no payload need not implement it.
type PayloadKeyer interface {
	PayloadKey() string
}

// Base is embedded by concrete message types to supply the envelope
// fields and the default MayDrop behavior.
type Base struct {
	SrcID  int
	DstID  int
	Kind   int
	NoDrop bool
}

func (b Base) Src() int      { return b.SrcID }
func (b Base) Dst() int      { return b.DstID }
func (b Base) Type() int     { return b.Kind }
func (b Base) MayDrop() bool { return !b.NoDrop }

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

// Compare performs the full three-way comparison specified for messages:
// type, then src, then dst, then payload.
func Compare(a, b Message) int {
	if c := sign(a.Type() - b.Type()); c != 0 {
		return c
	}
	if c := sign(a.Src() - b.Src()); c != 0 {
		return c
	}
	if c := sign(a.Dst() - b.Dst()); c != 0 {
		return c
	}
	return payloadCompare(a, b)
}

// LogicalCompare performs the id-blind three-way comparison: type, then
// payload. src/dst are ignored.
func LogicalCompare(a, b Message) int {
	if c := sign(a.Type() - b.Type()); c != 0 {
		return c
	}
	return payloadCompare(a, b)
}

func payloadCompare(a, b Message) int {
	pc, ok := a.(PayloadComparer)
	if !ok {
		// No payload beyond the envelope: two same-typed messages with no
		// payload are always equal in that dimension.
		return 0
	}
	return pc.ComparePayload(b)
}

func payloadKey(m Message) string {
	if pk, ok := m.(PayloadKeyer); ok {
		return pk.PayloadKey()
	}
	return ""
}

// Key returns a deterministic string identifying (src, dst, type,
// payload); used as a map key by the visited set.
func Key(m Message) string {
	return fmt.Sprintf("%d|%d|%d|%s", m.Type(), m.Src(), m.Dst(), payloadKey(m))
}

// LogicalKey returns a deterministic string identifying (type, payload),
// ignoring src/dst; used by the symmetry reducer.
func LogicalKey(m Message) string {
	return fmt.Sprintf("%d|%s", m.Type(), payloadKey(m))
}

// Equal reports whether a and b are fully equal (src, dst, type, and
// payload all agree).
func Equal(a, b Message) bool { return Compare(a, b) == 0 }

// LogicallyEqual reports whether a and b are logically equal (type and
// payload agree; src/dst ignored).
func LogicallyEqual(a, b Message) bool { return LogicalCompare(a, b) == 0 }
