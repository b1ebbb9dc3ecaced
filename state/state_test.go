package state_test

import (
	"fmt"
	"testing"

	"modelcheck/diff"
	"modelcheck/machine"
	"modelcheck/msg"
	"modelcheck/state"
)

type ping struct{ msg.Base }

func (p ping) String() string { return fmt.Sprintf("Ping(%d->%d)", p.SrcID, p.DstID) }

type node struct {
	machine.Base
	N int
}

func newNode(id int) *node { return &node{Base: machine.Base{IDVal: id}} }
func (n *node) String() string             { return fmt.Sprintf("Node(%d,n=%d)", n.IDVal, n.N) }
func (n *node) Clone() machine.Machine     { clone := *n; return &clone }
func (n *node) OnStartup() []msg.Message   { return nil }
func (n *node) HandleMessage(msg.Message) []msg.Message { n.N++; return nil }
func (n *node) ComparePayload(rhs machine.Machine) int {
	other := rhs.(*node)
	switch {
	case n.N < other.N:
		return -1
	case n.N > other.N:
		return 1
	default:
		return 0
	}
}
func (n *node) PayloadKey() string { return fmt.Sprintf("%d", n.N) }

func TestNewRejectsMismatchedIDs(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when machine id does not match position")
		}
	}()
	state.New([]machine.Machine{newNode(1)})
}

func TestCopyIsIndependentOfMessages(t *testing.T) {
	s := state.New([]machine.Machine{newNode(0), newNode(1)})
	s.Messages = []msg.Message{ping{msg.Base{SrcID: 0, DstID: 1}}}

	c := s.Copy()
	c.Messages = append(c.Messages, ping{msg.Base{SrcID: 1, DstID: 0}})

	if len(s.Messages) != 1 {
		t.Fatalf("expected original state's message slice untouched, got %d messages", len(s.Messages))
	}
	if len(c.Messages) != 2 {
		t.Fatalf("expected copy to have 2 messages, got %d", len(c.Messages))
	}
}

func TestCompareExcludesHistoryAndDepth(t *testing.T) {
	a := state.New([]machine.Machine{newNode(0)})
	b := a.Copy()
	b.Depth = 5
	b.History = []diff.Diff{diff.Drop(ping{msg.Base{SrcID: 0, DstID: 0}})}

	if !state.Equal(a, b) {
		t.Fatal("states differing only in depth/history should compare equal")
	}
	if state.Key(a) != state.Key(b) {
		t.Fatal("Key should also ignore depth/history")
	}
}

func TestCompareOrdersByMessageCountFirst(t *testing.T) {
	a := state.New(nil)
	b := a.Copy()
	b.Messages = []msg.Message{ping{msg.Base{SrcID: 0, DstID: 0}}}

	if state.Compare(a, b) >= 0 {
		t.Fatal("state with fewer pending messages should sort first")
	}
}

func TestIsTerminating(t *testing.T) {
	s := state.New([]machine.Machine{newNode(0)})
	if !s.IsTerminating() {
		t.Fatal("state with no pending messages should be terminating")
	}
	s.Messages = []msg.Message{ping{msg.Base{SrcID: 0, DstID: 0}}}
	if s.IsTerminating() {
		t.Fatal("state with pending messages should not be terminating")
	}
}
