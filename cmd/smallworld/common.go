package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/smallworld/builder"
	"github.com/katalvlaran/smallworld/config"
	"github.com/katalvlaran/smallworld/core"
	"github.com/katalvlaran/smallworld/graphio"
	"github.com/katalvlaran/smallworld/metrics"
)

// commonFlags are shared by every subcommand. A flag left off the command
// line leaves the corresponding config setting untouched.
type commonFlags struct {
	configPath  string
	topology    string
	size        int
	seed        int64
	input       string
	delimiter   string
	aggregation string
	logLevel    string
}

// register binds the flags onto cmd.
func (f *commonFlags) register(cmd *commander.Command) {
	cmd.Flag.StringVar(&f.configPath, "c", "", "YAML config file")
	cmd.Flag.StringVar(&f.topology, "t", "", "topology: "+fmt.Sprint(builder.Topologies()))
	cmd.Flag.IntVar(&f.size, "n", 0, "topology size")
	cmd.Flag.Int64Var(&f.seed, "seed", 0, "seed for the star hub draw")
	cmd.Flag.StringVar(&f.input, "i", "", "input edge list file")
	cmd.Flag.StringVar(&f.delimiter, "d", "", "input token delimiter")
	cmd.Flag.StringVar(&f.aggregation, "agg", "", "average length aggregation: clean | legacy")
	cmd.Flag.StringVar(&f.logLevel, "log", "", "log level: debug | info | warn | error")
}

// resolve loads the config file and applies the flags set on the command
// line. Only flags that were actually given override the config, so an
// explicit "-seed 0" still wins.
func (f *commonFlags) resolve(cmd *commander.Command) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	given := setFlags(cmd)
	if given["t"] {
		cfg.Topology = f.topology
	}
	if given["n"] {
		cfg.Size = f.size
	}
	if given["seed"] {
		cfg.Seed = f.seed
	}
	if given["d"] {
		cfg.Delimiter = f.delimiter
	}
	if given["agg"] {
		cfg.Aggregation = f.aggregation
	}
	if given["log"] {
		cfg.LogLevel = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setFlags returns the names of the flags given on the command line.
func setFlags(cmd *commander.Command) map[string]bool {
	given := make(map[string]bool)
	cmd.Flag.Visit(func(fl *flag.Flag) { given[fl.Name] = true })

	return given
}

// newLogger returns a text logger on w at the configured level.
func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// acquire reads the -i file when given, otherwise builds the configured topology.
func (f *commonFlags) acquire(cfg *config.Config, logger *slog.Logger) (*core.Graph, error) {
	if f.input != "" {
		g, err := graphio.ReadFile(f.input, cfg.Delimiter)
		if err != nil {
			return nil, err
		}
		logger.Info("graph loaded", "file", f.input, "vertices", g.VertexCount(), "edges", g.EdgeCount())

		return g, nil
	}

	ctor, err := builder.ByName(cfg.Topology, cfg.Size)
	if err != nil {
		return nil, err
	}
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(cfg.Seed), builder.WithLogger(logger)},
		ctor,
	)
	if err != nil {
		return nil, err
	}
	logger.Info("graph generated", "topology", cfg.Topology, "size", cfg.Size, "edges", g.EdgeCount())

	return g, nil
}

// summarize computes and prints the metric report of g.
func summarize(out io.Writer, g *core.Graph, cfg *config.Config, logger *slog.Logger) error {
	opts, err := cfg.MetricOptions()
	if err != nil {
		return err
	}
	s, err := metrics.Summarize(g, append(opts, metrics.WithLogger(logger))...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, s.String())

	return err
}
