package diff_test

import (
	"fmt"
	"strings"
	"testing"

	"modelcheck/diff"
	"modelcheck/msg"
)

type plain struct{ msg.Base }

func (p plain) String() string { return fmt.Sprintf("M(%d->%d,t=%d)", p.SrcID, p.DstID, p.Kind) }

func TestDeliveryRequiresMessage(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on nil delivered message")
		}
	}()
	diff.Delivery(nil, nil)
}

func TestDropIsDrop(t *testing.T) {
	m := plain{msg.Base{SrcID: 0, DstID: 1, Kind: 1}}
	d := diff.Drop(m)
	if !d.IsDrop() {
		t.Fatal("expected IsDrop to be true")
	}
	if !strings.HasPrefix(d.String(), "drop") {
		t.Fatalf("expected drop diff string to start with 'drop', got %q", d.String())
	}
}

func TestDeliveryStringIncludesSent(t *testing.T) {
	m := plain{msg.Base{SrcID: 0, DstID: 1, Kind: 1}}
	reply := plain{msg.Base{SrcID: 1, DstID: 0, Kind: 2}}
	d := diff.Delivery(m, []msg.Message{reply})
	if d.IsDrop() {
		t.Fatal("expected IsDrop to be false")
	}
	if !strings.Contains(d.String(), reply.String()) {
		t.Fatalf("expected delivery string to mention emitted messages, got %q", d.String())
	}
}
