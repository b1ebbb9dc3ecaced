package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"modelcheck/examples/paxos"
	"modelcheck/machine"
	"modelcheck/model"
	"modelcheck/predicate"
	"modelcheck/state"
)

var (
	paxosFlags     commonFlags
	paxosProposer  int
	paxosProposer2 int
)

var paxosCmd = &cobra.Command{
	Use:   "paxos",
	Short: "Single-decree Paxos example",
	RunE: func(cmd *cobra.Command, args []string) error {
		n := paxosFlags.participants
		if n < 1 || paxosProposer >= n || paxosProposer2 >= n {
			return fmt.Errorf("paxos: proposer index out of range for %d machines", n)
		}

		machines := make([]machine.Machine, n)
		for i := 0; i < n; i++ {
			propose := i == paxosProposer || i == paxosProposer2
			machines[i] = paxos.NewStateMachine(i, n, propose, i+200)
		}

		invariant := predicate.Invariant("agreement", predicate.Eventually(func(s state.State) bool {
			learned := -1
			for _, mm := range s.Machines {
				sm := mm.(*paxos.StateMachine)
				if sm.FinalValue == -1 {
					continue
				}
				if learned == -1 {
					learned = sm.FinalValue
				} else if learned != sm.FinalValue {
					return false
				}
			}
			return true
		}))

		m := model.New(machines, []predicate.Predicate{invariant}, paxosFlags.modelOpts()...)
		exitWith(runModel(m, paxosFlags.quiet, paxosFlags.timed))
		return nil
	},
}

func init() {
	addCommonFlags(paxosCmd, &paxosFlags, 3, "cluster size")
	paxosCmd.Flags().IntVarP(&paxosProposer, "proposer", "p", 0, "index of the first proposer")
	paxosCmd.Flags().IntVarP(&paxosProposer2, "proposer2", "P", 0, "index of the second proposer")
}
