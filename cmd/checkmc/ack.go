package main

import (
	"github.com/spf13/cobra"

	"modelcheck/examples/ack"
	"modelcheck/machine"
	"modelcheck/model"
	"modelcheck/predicate"
	"modelcheck/state"
)

var ackFlags commonFlags

var ackCmd = &cobra.Command{
	Use:   "ack",
	Short: "Sender/Receiver ack-and-retransmit example",
	RunE: func(cmd *cobra.Command, args []string) error {
		sender := ack.NewSender(0, 1, ackFlags.participants)
		receiver := ack.NewReceiver(1)

		invariant := predicate.Invariant("receiver value matches sender value", func(s state.State) bool {
			r := s.Machines[1].(*ack.Receiver)
			snd := s.Machines[0].(*ack.Sender)
			if r.Received && r.Value != snd.Value {
				return false
			}
			if snd.Acked && r.Value != snd.Value {
				return false
			}
			return true
		})

		m := model.New([]machine.Machine{sender, receiver}, []predicate.Predicate{invariant}, ackFlags.modelOpts()...)
		exitWith(runModel(m, ackFlags.quiet, ackFlags.timed))
		return nil
	},
}

func init() {
	addCommonFlags(ackCmd, &ackFlags, 42, "value the sender transmits")
}
