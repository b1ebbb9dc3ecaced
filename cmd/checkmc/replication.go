package main

import (
	"github.com/spf13/cobra"

	"modelcheck/examples/replication"
	"modelcheck/machine"
	"modelcheck/model"
	"modelcheck/predicate"
	"modelcheck/state"
)

var replicationFlags commonFlags

var replicationCmd = &cobra.Command{
	Use:   "replication",
	Short: "N-way replication example",
	RunE: func(cmd *cobra.Command, args []string) error {
		nodes := replicationFlags.participants
		data := []int{7, 11}

		machines := []machine.Machine{
			replication.NewClient(0, 1, data),
			replication.NewServer(1, 0, 2, nodes),
		}
		for i := 0; i < nodes; i++ {
			machines = append(machines, replication.NewNode(2+i, 1))
		}

		invariant := predicate.Invariant("replica logs are a prefix of the client's stream", func(s state.State) bool {
			for _, mm := range s.Machines {
				n, ok := mm.(*replication.Node)
				if !ok {
					continue
				}
				if len(n.Log) > len(data) {
					return false
				}
				for i, v := range n.Log {
					if v != data[i] {
						return false
					}
				}
			}
			return true
		})

		m := model.New(machines, []predicate.Predicate{invariant}, replicationFlags.modelOpts()...)
		exitWith(runModel(m, replicationFlags.quiet, replicationFlags.timed))
		return nil
	},
}

func init() {
	addCommonFlags(replicationCmd, &replicationFlags, 3, "replica node count")
}
