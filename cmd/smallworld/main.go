// Command smallworld generates graph topologies, ingests edge lists, and
// reports their small-world metrics.
//
//	$ smallworld gen -t star -n 10 -seed 3
//	$ smallworld load -i graph.txt -d ,
//	$ smallworld export -t grid -n 4 -o grid.pairs
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func main() {
	if err := newRoot(os.Stdout, os.Stderr).Dispatch(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		os.Exit(1)
	}
}

// newRoot assembles the command tree; results go to out, logs to logw.
func newRoot(out, logw io.Writer) *commander.Command {
	return &commander.Command{
		UsageLine: "smallworld <command> [options]",
		Short:     "small-world graph generator and metrics",
		Subcommands: []*commander.Command{
			genCmd(out, logw),
			loadCmd(out, logw),
			exportCmd(out, logw),
		},
		Flag: *flag.NewFlagSet("smallworld", flag.ExitOnError),
	}
}
