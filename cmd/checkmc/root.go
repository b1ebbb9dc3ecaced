// Command checkmc runs the worked protocol examples through the model
// checker and reports terminating states or invariant violations.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"modelcheck/config"
	"modelcheck/model"
)

// exit codes, per the checker's CLI contract: 0 success, 1 argument
// error, 2 invariant violation.
const (
	exitOK        = 0
	exitUsage     = 1
	exitViolation = 2
)

// commonFlags holds the flags shared by every worked-example subcommand.
type commonFlags struct {
	participants int
	maxDepth     int
	noSymmetry   bool
	quiet        bool
	timed        bool
}

func addCommonFlags(cmd *cobra.Command, f *commonFlags, defaultN int, nUsage string) {
	cmd.Flags().IntVarP(&f.participants, "participants", "n", defaultN, nUsage)
	cmd.Flags().IntVarP(&f.maxDepth, "depth", "d", -1, "depth bound; -1 means unbounded")
	cmd.Flags().BoolVarP(&f.noSymmetry, "no-symmetry", "o", false, "disable symmetry reduction")
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "suppress progress output")
	cmd.Flags().BoolVarP(&f.timed, "time", "t", false, "time the run")
}

func (f commonFlags) modelOpts() []config.ModelOpt {
	opts := []config.ModelOpt{
		config.MaxDepthOption{MaxDepth: f.maxDepth},
		config.ExcludeSymmetriesOption{Exclude: !f.noSymmetry},
	}
	if f.quiet {
		opts = append(opts, config.QuietOption{})
	}
	return opts
}

var rootCmd = &cobra.Command{
	Use:   "checkmc",
	Short: "Explicit-state model checker for distributed-protocol designs",
	Long: `checkmc explores the reachable state graph of a small set of
worked distributed-protocol examples, checking a named set of
invariants at every reachable configuration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(ackCmd)
	rootCmd.AddCommand(fanInCmd)
	rootCmd.AddCommand(paxosCmd)
	rootCmd.AddCommand(replicationCmd)
}

// runModel executes m, prints a one-line summary (unless quiet), and
// returns the process exit code appropriate to the outcome.
func runModel(m *model.Model, quiet, timed bool) int {
	start := time.Now()
	res, err := m.Run()
	elapsed := time.Since(start)

	if violation, ok := err.(*model.ViolationError); ok {
		fmt.Fprintln(os.Stderr, violation.Error())
		return exitViolation
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "run failed"))
		return exitViolation
	}

	if !quiet {
		fmt.Printf("exited with %d terminating states (%d nodes explored, %d visited)\n",
			len(res.Terminating), res.NodesExplored, res.Visited)
	}
	if timed {
		fmt.Printf("elapsed: %s\n", elapsed)
	}
	return exitOK
}

// exitWith terminates the process with code, flushing nothing further;
// each subcommand's RunE calls this after reporting its own outcome.
func exitWith(code int) {
	os.Exit(code)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
}
