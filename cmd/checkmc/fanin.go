package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"modelcheck/examples/fanin"
	"modelcheck/machine"
	"modelcheck/model"
)

var fanInFlags commonFlags

var fanInCmd = &cobra.Command{
	Use:   "fanin",
	Short: "Many-sender fan-in example",
	RunE: func(cmd *cobra.Command, args []string) error {
		n := fanInFlags.participants
		if n < 1 {
			return fmt.Errorf("fanin: participant count must be at least 1, got %d", n)
		}

		receiverID := n
		machines := make([]machine.Machine, 0, n+1)
		for i := 0; i < n; i++ {
			machines = append(machines, fanin.NewSender(i, receiverID, i))
		}
		machines = append(machines, fanin.NewReceiver(receiverID))

		m := model.New(machines, nil, fanInFlags.modelOpts()...)
		exitWith(runModel(m, fanInFlags.quiet, fanInFlags.timed))
		return nil
	},
}

func init() {
	addCommonFlags(fanInCmd, &fanInFlags, 9, "sender count")
}
