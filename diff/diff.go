// Package diff records a single causal step of a system state: the
// message that was delivered or dropped, and whatever was emitted in
// response.
package diff

import (
	"fmt"

	"modelcheck/msg"
)

// Diff is exactly one of a delivery or a drop. Delivered is set for a
// delivery successor, Dropped for a drop successor; the other is nil.
// Sent is the (possibly empty) ordered list of messages emitted while
// handling Delivered; it is always empty for a drop.
type Diff struct {
	Delivered msg.Message
	Dropped   msg.Message
	Sent      []msg.Message
}

// Delivery constructs a Diff recording that m was delivered and sent was
// emitted in response.
func Delivery(m msg.Message, sent []msg.Message) Diff {
	if m == nil {
		panic("diff: Delivery requires a non-nil message")
	}
	return Diff{Delivered: m, Sent: sent}
}

// Drop constructs a Diff recording that m was dropped before delivery.
func Drop(m msg.Message) Diff {
	if m == nil {
		panic("diff: Drop requires a non-nil message")
	}
	return Diff{Dropped: m}
}

// IsDrop reports whether this diff records a drop rather than a
// delivery.
func (d Diff) IsDrop() bool { return d.Dropped != nil }

// String renders the diff as a one-line causal entry: direction, type,
// endpoints, and a payload digest, followed by whatever was emitted.
func (d Diff) String() string {
	if d.IsDrop() {
		return fmt.Sprintf("drop    %v", d.Dropped)
	}
	if len(d.Sent) == 0 {
		return fmt.Sprintf("deliver %v", d.Delivered)
	}
	return fmt.Sprintf("deliver %v -> %v", d.Delivered, d.Sent)
}
