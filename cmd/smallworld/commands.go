package main

import (
	"fmt"
	"io"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/smallworld/graphio"
)

func genCmd(out, logw io.Writer) *commander.Command {
	var (
		f     commonFlags
		quiet bool
	)
	cmd := &commander.Command{
		UsageLine: "gen [options]",
		Short:     "generates a topology and prints it with its metrics",
		Long: `
gen builds one of the registered topologies, prints its adjacency dump and
reports vertex count, edge count, average degree and average length.

	$ smallworld gen -t second-ring -n 12
	$ smallworld gen -t star -n 10 -seed 3 -log debug
`,
		Flag: *flag.NewFlagSet("gen", flag.ExitOnError),
	}
	f.register(cmd)
	cmd.Flag.BoolVar(&quiet, "q", false, "omit the adjacency dump")

	cmd.Run = func(cmd *commander.Command, args []string) error {
		if setFlags(cmd)["i"] {
			return fmt.Errorf("gen: -i is not accepted, gen always generates (use load or export)")
		}
		cfg, err := f.resolve(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger(logw, cfg)
		if err != nil {
			return err
		}
		g, err := f.acquire(cfg, logger)
		if err != nil {
			return err
		}
		if !quiet {
			if err := graphio.WriteAdjacency(out, g); err != nil {
				return err
			}
		}

		return summarize(out, g, cfg, logger)
	}

	return cmd
}

func loadCmd(out, logw io.Writer) *commander.Command {
	var f commonFlags
	cmd := &commander.Command{
		UsageLine: "load -i <file> [options]",
		Short:     "reads a delimited edge list and prints its metrics",
		Long: `
load ingests a text stream where every line is "first<d>second<d>third...":
an edge joins the first token to each following token.

	$ smallworld load -i graph.txt -d ,
`,
		Flag: *flag.NewFlagSet("load", flag.ExitOnError),
	}
	f.register(cmd)

	cmd.Run = func(cmd *commander.Command, args []string) error {
		if f.input == "" {
			return fmt.Errorf("load: missing -i <file>")
		}
		cfg, err := f.resolve(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger(logw, cfg)
		if err != nil {
			return err
		}
		g, err := f.acquire(cfg, logger)
		if err != nil {
			return err
		}

		return summarize(out, g, cfg, logger)
	}

	return cmd
}

func exportCmd(out, logw io.Writer) *commander.Command {
	var (
		f      commonFlags
		output string
	)
	cmd := &commander.Command{
		UsageLine: "export [options]",
		Short:     "writes the u->v: edge-pair dump of a loaded or generated graph",
		Long: `
export writes one "u->v:" line per edge with u < v. The graph comes from -i
when given, otherwise from the configured topology. Output goes to -o, or to
standard output.

	$ smallworld export -t grid -n 4 -o grid.pairs
	$ smallworld export -i graph.txt -d ,
`,
		Flag: *flag.NewFlagSet("export", flag.ExitOnError),
	}
	f.register(cmd)
	cmd.Flag.StringVar(&output, "o", "", "output file (default stdout)")

	cmd.Run = func(cmd *commander.Command, args []string) error {
		cfg, err := f.resolve(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger(logw, cfg)
		if err != nil {
			return err
		}
		g, err := f.acquire(cfg, logger)
		if err != nil {
			return err
		}
		if output == "" {
			return graphio.WriteEdgePairs(out, g)
		}
		if err := graphio.WriteEdgePairsFile(output, g); err != nil {
			return err
		}
		logger.Info("edge pairs written", "file", output, "edges", g.EdgeCount())

		return nil
	}

	return cmd
}
